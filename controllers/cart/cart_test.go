package cartControllers

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

func setupCartTest(t *testing.T) (*gorm.DB, *gin.Engine, models.User, models.Product) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Product{},
		&models.Cart{}, &models.CartItem{},
	))

	user := models.User{Firstname: "Achieng", Lastname: "Odhiambo", Email: "achieng@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	category := models.Category{Name: "Cleaning"}
	require.NoError(t, db.Create(&category).Error)
	product := models.Product{Name: "Dish Soap", Description: "500ml", CurrentPrice: 120, Stock: 10, CategoryID: category.ID}
	require.NoError(t, db.Create(&product).Error)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", user.UserID)
		c.Set("role", models.RoleUser)
	})
	r.POST("/api/cart", CreateCart(db))
	r.GET("/api/cart", GetCart(db))
	r.PUT("/api/cart", UpdateCart(db))
	r.DELETE("/api/cart", DeleteCart(db))
	r.POST("/api/cart/add", AddProductToCart(db))
	r.POST("/api/cart/delete", DeleteProductFromCart(db))
	r.PUT("/api/cart/quantity/increment/:id", IncrementQuantity(db))
	r.PUT("/api/cart/quantity/decrement/:id", DecrementQuantity(db))

	return db, r, user, product
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
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

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) models.Cart {
	t.Helper()
	var cart models.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	return cart
}

func TestCreateCartRejectsSecondCart(t *testing.T) {
	_, r, _, product := setupCartTest(t)

	body := gin.H{"cartItems": []gin.H{{"productId": product.ID, "quantity": 2}}}
	w := doJSON(t, r, http.MethodPost, "/api/cart", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/cart", body)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateCartRejectsUnknownProduct(t *testing.T) {
	_, r, _, _ := setupCartTest(t)

	body := gin.H{"cartItems": []gin.H{{"productId": "11111111-1111-1111-1111-111111111111", "quantity": 1}}}
	w := doJSON(t, r, http.MethodPost, "/api/cart", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCartWithoutCart(t *testing.T) {
	_, r, _, _ := setupCartTest(t)

	w := doJSON(t, r, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddProductAccumulatesQuantity(t *testing.T) {
	_, r, _, product := setupCartTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/cart", gin.H{"cartItems": []gin.H{{"productId": product.ID, "quantity": 1}}})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/cart/add", gin.H{"productId": product.ID, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)

	cart := decodeCart(t, w)
	require.Len(t, cart.CartItems, 1)
	require.Equal(t, 3, cart.CartItems[0].Quantity)
}

func TestIncrementAndDecrementQuantity(t *testing.T) {
	_, r, _, product := setupCartTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/cart", gin.H{"cartItems": []gin.H{{"productId": product.ID, "quantity": 1}}})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/cart/quantity/increment/"+product.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart := decodeCart(t, w)
	require.Equal(t, 2, cart.CartItems[0].Quantity)

	w = doJSON(t, r, http.MethodPut, "/api/cart/quantity/decrement/"+product.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart = decodeCart(t, w)
	require.Equal(t, 1, cart.CartItems[0].Quantity)
}

func TestDecrementFromOneRemovesLine(t *testing.T) {
	db, r, _, product := setupCartTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/cart", gin.H{"cartItems": []gin.H{{"productId": product.ID, "quantity": 1}}})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/cart/quantity/decrement/"+product.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart := decodeCart(t, w)
	require.Empty(t, cart.CartItems)

	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	require.Zero(t, count)
}

func TestDeleteProductFromCart(t *testing.T) {
	_, r, _, product := setupCartTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/cart", gin.H{"cartItems": []gin.H{{"productId": product.ID, "quantity": 2}}})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/cart/delete", gin.H{"productId": product.ID})
	require.Equal(t, http.StatusOK, w.Code)
	cart := decodeCart(t, w)
	require.Empty(t, cart.CartItems)

	// line is gone, a second delete is a 404
	w = doJSON(t, r, http.MethodPost, "/api/cart/delete", gin.H{"productId": product.ID})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCartReplacesItems(t *testing.T) {
	db, r, _, product := setupCartTest(t)

	var category models.Category
	require.NoError(t, db.First(&category).Error)
	second := models.Product{Name: "Laundry Bar", Description: "800g", CurrentPrice: 90, Stock: 5, CategoryID: category.ID}
	require.NoError(t, db.Create(&second).Error)

	w := doJSON(t, r, http.MethodPost, "/api/cart", gin.H{"cartItems": []gin.H{{"productId": product.ID, "quantity": 2}}})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/cart", gin.H{"cartItems": []gin.H{{"productId": second.ID, "quantity": 4}}})
	require.Equal(t, http.StatusOK, w.Code)
	cart := decodeCart(t, w)
	require.Len(t, cart.CartItems, 1)
	require.Equal(t, second.ID, cart.CartItems[0].ProductID)
	require.Equal(t, 4, cart.CartItems[0].Quantity)
}

func TestDeleteCartRemovesItems(t *testing.T) {
	db, r, _, product := setupCartTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/cart", gin.H{"cartItems": []gin.H{{"productId": product.ID, "quantity": 2}}})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var carts, items int64
	db.Model(&models.Cart{}).Count(&carts)
	db.Model(&models.CartItem{}).Count(&items)
	require.Zero(t, carts)
	require.Zero(t, items)
}
