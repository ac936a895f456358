package categoryControllers

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

func setupCategoryTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Product{}))

	r := gin.New()
	r.POST("/api/categories", CreateCategory(db))
	r.GET("/api/categories", GetCategories(db))
	r.GET("/api/categories/:id", GetCategoryByID(db))
	r.PUT("/api/categories/:id", UpdateCategory(db))
	r.DELETE("/api/categories/:id", DeleteCategory(db))

	return db, r
}

func categoryRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
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

func TestCreateCategoryRejectsDuplicateName(t *testing.T) {
	_, r := setupCategoryTest(t)

	w := categoryRequest(t, r, http.MethodPost, "/api/categories", gin.H{"name": "Soaps"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = categoryRequest(t, r, http.MethodPost, "/api/categories", gin.H{"name": "Soaps"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "already exists")
}

func TestGetCategoryByIDIncludesProducts(t *testing.T) {
	db, r := setupCategoryTest(t)

	category := models.Category{Name: "Soaps"}
	require.NoError(t, db.Create(&category).Error)
	product := models.Product{Name: "Bar Soap", Description: "200g", CurrentPrice: 45, CategoryID: category.ID}
	require.NoError(t, db.Create(&product).Error)

	w := categoryRequest(t, r, http.MethodGet, "/api/categories/"+category.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Products, 1)
	require.Equal(t, "Bar Soap", got.Products[0].Name)
}

func TestGetCategoryByIDMissing(t *testing.T) {
	_, r := setupCategoryTest(t)

	w := categoryRequest(t, r, http.MethodGet, "/api/categories/11111111-1111-1111-1111-111111111111", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCategoryRequiresConfirmation(t *testing.T) {
	db, r := setupCategoryTest(t)

	category := models.Category{Name: "Soaps"}
	require.NoError(t, db.Create(&category).Error)
	for _, name := range []string{"Bar Soap", "Liquid Soap"} {
		require.NoError(t, db.Create(&models.Product{
			Name: name, Description: "x", CurrentPrice: 45, CategoryID: category.ID,
		}).Error)
	}

	w := categoryRequest(t, r, http.MethodDelete, "/api/categories/"+category.ID, nil)
	require.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		RequiresConfirmation bool  `json:"requiresConfirmation"`
		ProductCount         int64 `json:"productCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.RequiresConfirmation)
	require.EqualValues(t, 2, resp.ProductCount)

	// nothing was deleted
	var products int64
	db.Model(&models.Product{}).Count(&products)
	require.EqualValues(t, 2, products)
}

func TestDeleteCategoryConfirmedCascades(t *testing.T) {
	db, r := setupCategoryTest(t)

	category := models.Category{Name: "Soaps"}
	require.NoError(t, db.Create(&category).Error)
	require.NoError(t, db.Create(&models.Product{
		Name: "Bar Soap", Description: "x", CurrentPrice: 45, CategoryID: category.ID,
	}).Error)

	w := categoryRequest(t, r, http.MethodDelete, "/api/categories/"+category.ID+"?confirmed=true", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var categories, products int64
	db.Model(&models.Category{}).Count(&categories)
	db.Model(&models.Product{}).Count(&products)
	require.Zero(t, categories)
	require.Zero(t, products)
}

func TestDeleteEmptyCategoryNeedsNoConfirmation(t *testing.T) {
	db, r := setupCategoryTest(t)

	category := models.Category{Name: "Soaps"}
	require.NoError(t, db.Create(&category).Error)

	w := categoryRequest(t, r, http.MethodDelete, "/api/categories/"+category.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var categories int64
	db.Model(&models.Category{}).Count(&categories)
	require.Zero(t, categories)
}
