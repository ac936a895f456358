package productControllers

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

func setupProductTest(t *testing.T) (*gorm.DB, *gin.Engine, models.Category) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Review{}))

	category := models.Category{Name: "Home Care"}
	require.NoError(t, db.Create(&category).Error)

	r := gin.New()
	r.POST("/api/categories/:categoryId/product", CreateProduct(db))
	r.POST("/api/categories/:categoryId/products", CreateProducts(db))
	r.GET("/api/products", GetProducts(db))
	r.GET("/api/products/filter", FilterProducts(db))
	r.GET("/api/products/search", SearchProducts(db))
	r.GET("/api/products/:id", GetProductByID(db))
	r.PUT("/api/products/:id", UpdateProduct(db))
	r.DELETE("/api/products/:id", DeleteProduct(db))

	return db, r, category
}

func productRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
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

func seedProducts(t *testing.T, db *gorm.DB, category models.Category) {
	t.Helper()
	for _, p := range []models.Product{
		{Name: "Toilet Cleaner", Description: "750ml bottle", CurrentPrice: 180, Stock: 12, CategoryID: category.ID},
		{Name: "Glass Cleaner", Description: "500ml spray", CurrentPrice: 220, Stock: 0, CategoryID: category.ID},
		{Name: "Floor Polish", Description: "2L tin", CurrentPrice: 540, Stock: 4, CategoryID: category.ID},
	} {
		product := p
		require.NoError(t, db.Create(&product).Error)
	}
}

func TestCreateProductUnderCategory(t *testing.T) {
	_, r, category := setupProductTest(t)

	w := productRequest(t, r, http.MethodPost, "/api/categories/"+category.ID+"/product", gin.H{
		"name":         "Toilet Cleaner",
		"description":  "750ml bottle",
		"currentPrice": 180,
		"stock":        12,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var product models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	require.Equal(t, category.ID, product.CategoryID)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	_, r, _ := setupProductTest(t)

	w := productRequest(t, r, http.MethodPost, "/api/categories/11111111-1111-1111-1111-111111111111/product", gin.H{
		"name":         "Toilet Cleaner",
		"description":  "750ml bottle",
		"currentPrice": 180,
		"stock":        12,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestBulkCreateProducts(t *testing.T) {
	db, r, category := setupProductTest(t)

	w := productRequest(t, r, http.MethodPost, "/api/categories/"+category.ID+"/products", []gin.H{
		{"name": "Toilet Cleaner", "description": "750ml", "currentPrice": 180, "stock": 12},
		{"name": "Glass Cleaner", "description": "500ml", "currentPrice": 220, "stock": 6},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Product{}).Count(&count)
	require.EqualValues(t, 2, count)
}

func TestFilterProductsByPriceAndStock(t *testing.T) {
	db, r, category := setupProductTest(t)
	seedProducts(t, db, category)

	w := productRequest(t, r, http.MethodGet, "/api/products/filter?minPrice=100&maxPrice=300&stock=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	require.Equal(t, "Toilet Cleaner", products[0].Name)
}

func TestFilterProductsNoMatchIsNotFound(t *testing.T) {
	db, r, category := setupProductTest(t)
	seedProducts(t, db, category)

	w := productRequest(t, r, http.MethodGet, "/api/products/filter?minPrice=10000", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchProductsMatchesDescription(t *testing.T) {
	db, r, category := setupProductTest(t)
	seedProducts(t, db, category)

	w := productRequest(t, r, http.MethodGet, "/api/products/search?query=spray", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	require.Equal(t, "Glass Cleaner", products[0].Name)
}

func TestSearchProductsSuggestsOnMiss(t *testing.T) {
	db, r, category := setupProductTest(t)
	seedProducts(t, db, category)

	// "Floor Wax" misses, but the 3-char prefix matches "Floor Polish"
	w := productRequest(t, r, http.MethodGet, "/api/products/search?query=Floor+Wax", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp.Suggestions, "Floor Polish")
}

func TestSearchProductsShortQuery(t *testing.T) {
	_, r, _ := setupProductTest(t)

	w := productRequest(t, r, http.MethodGet, "/api/products/search?query=ab", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
