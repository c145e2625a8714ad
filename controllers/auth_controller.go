// File: /controllers/auth_controller.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"sportmate-api/models"
	"sportmate-api/services"
	"sportmate-api/utils"
)

type AuthController struct {
	accountService *services.AccountService
	jwtSecret      string
}

func NewAuthController(accountService *services.AccountService, jwtSecret string) *AuthController {
	return &AuthController{
		accountService: accountService,
		jwtSecret:      jwtSecret,
	}
}

type SignupRequest struct {
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	MobileNumber string `json:"mobile_number" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (ac *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Field validation mirrors the signup form rules
	if !utils.IsValidName(req.FirstName) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "First name must be 2-50 letters, spaces, hyphens, and apostrophes"})
		return
	}
	if !utils.IsValidName(req.LastName) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Last name must be 2-50 letters, spaces, hyphens, and apostrophes"})
		return
	}
	if !utils.IsValidMobileNumber(req.MobileNumber) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mobile number must be exactly 10 digits"})
		return
	}
	if !utils.IsValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid email address"})
		return
	}
	if !utils.IsValidPassword(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be 8-50 characters with uppercase, lowercase, number, and special character (!@#$%^&*)"})
		return
	}

	user := models.User{
		ID:           uuid.New().String(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		MobileNumber: req.MobileNumber,
		Email:        req.Email,
		Password:     req.Password,
	}

	if err := ac.accountService.Register(&user); err != nil {
		switch {
		case errors.Is(err, services.ErrMobileRegistered):
			c.JSON(http.StatusConflict, gin.H{"error": "Mobile number already registered. Please use a different number."})
		case errors.Is(err, services.ErrEmailRegistered):
			c.JSON(http.StatusConflict, gin.H{"error": "Email address already registered. Please use a different email."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Signup successful",
		"user":    user,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.accountService.Authenticate(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required."})
		case errors.Is(err, services.ErrAccountNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email not registered. Please sign up first."})
		case errors.Is(err, services.ErrWrongPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password. Please try again."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	token, err := ac.generateJWT(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token: token,
		User:  *user,
	})
}

// Logout clears nothing server-side; the session lives in the token
// and the registry is untouched.
func (ac *AuthController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

func (ac *AuthController) generateJWT(userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(), // 7 days
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}
