package authControllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/de-scientist/Vice-Queen-Backend/auth"
	"github.com/de-scientist/Vice-Queen-Backend/middleware"
	"github.com/de-scientist/Vice-Queen-Backend/models"
)

type RegisterInput struct {
	Firstname string `json:"firstname" binding:"required,min=3"`
	Lastname  string `json:"lastname" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /api/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var existing models.User
		if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email address in use."})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error in creating an account. Please try again."})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error in creating an account. Please try again."})
			return
		}

		user := models.User{
			Firstname: input.Firstname,
			Lastname:  input.Lastname,
			Email:     input.Email,
			Password:  string(hashed),
			Role:      models.RoleUser,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Failed to register user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error in creating an account. Please try again."})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Account created successfully.",
			"user":    user.Public(),
		})
	}
}

// POST /api/auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			log.Printf("Invalid login attempt for email: %s", input.Email)
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email address"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			log.Printf("Invalid password attempt for email: %s", input.Email)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid password"})
			return
		}

		token, err := auth.SignToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred. Please try again."})
			return
		}

		c.SetCookie("token", token, int(auth.TokenTTL.Seconds()), "/", "", false, true)
		c.Header("Authorization", "Bearer "+token)
		c.JSON(http.StatusOK, gin.H{
			"message": "User logged in successfully",
			"token":   token,
			"user":    user.Public(),
		})
	}
}

// POST /api/auth/logout
// Revokes the presented token for its remaining lifetime and clears the
// session cookie.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := middleware.ExtractToken(c)
		if token == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Token is missing"})
			return
		}

		revoked, err := auth.TokenBlacklist.IsRevoked(c.Request.Context(), token)
		if err == nil && revoked {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			return
		}

		ttl := auth.TokenTTL
		if claims, err := auth.ParseToken(token); err == nil && claims.ExpiresAt != nil {
			ttl = time.Until(claims.ExpiresAt.Time)
		}
		if err := auth.TokenBlacklist.Revoke(c.Request.Context(), token, ttl); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke token"})
			return
		}

		c.SetCookie("token", "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
	}
}
