package variantControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/de-scientist/Vice-Queen-Backend/models"
)

func setupVariantTest(t *testing.T) (*gorm.DB, *gin.Engine, models.Product) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Variant{}))

	category := models.Category{Name: "Soaps"}
	require.NoError(t, db.Create(&category).Error)
	product := models.Product{Name: "Bar Soap", Description: "200g", CurrentPrice: 45, CategoryID: category.ID}
	require.NoError(t, db.Create(&product).Error)

	r := gin.New()
	r.POST("/api/variant/:id", CreateVariant(db))
	r.GET("/api/variant", GetVariants(db))
	r.GET("/api/variant/:id", GetVariantByID(db))
	r.PUT("/api/variant/:id", UpdateVariant(db))
	r.DELETE("/api/variant/:id", DeleteVariant(db))

	return db, r, product
}

func variantRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateVariant(t *testing.T) {
	_, r, product := setupVariantTest(t)

	w := variantRequest(t, r, http.MethodPost, "/api/variant/"+product.ID, gin.H{
		"variantName": "scent",
		"variations":  []string{"lavender", "lemon"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var variant models.Variant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &variant))
	require.Equal(t, product.ID, variant.ProductID)
	require.ElementsMatch(t, []string{"lavender", "lemon"}, variant.Variations)
}

func TestCreateVariantUnknownProduct(t *testing.T) {
	_, r, _ := setupVariantTest(t)

	w := variantRequest(t, r, http.MethodPost, "/api/variant/11111111-1111-1111-1111-111111111111", gin.H{
		"variantName": "scent",
		"variations":  []string{"lavender"},
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateVariantMissing(t *testing.T) {
	_, r, _ := setupVariantTest(t)

	w := variantRequest(t, r, http.MethodPut, "/api/variant/11111111-1111-1111-1111-111111111111", gin.H{
		"variantName": "size",
		"variations":  []string{"S", "M"},
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteVariant(t *testing.T) {
	db, r, product := setupVariantTest(t)

	variant := models.Variant{ProductID: product.ID, VariantName: "size", Variations: []string{"S", "M"}}
	require.NoError(t, db.Create(&variant).Error)

	w := variantRequest(t, r, http.MethodDelete, "/api/variant/"+variant.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = variantRequest(t, r, http.MethodGet, "/api/variant/"+variant.ID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
