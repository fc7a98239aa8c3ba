package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"food-delivery-backend/models"
	"food-delivery-backend/services"
	"food-delivery-backend/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// normalizeEmail keeps email matching case-insensitive everywhere.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (ac *AuthController) Register(c *gin.Context) {
	type request struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Phone    string `json:"phone" binding:"required"`
		Address  string `json:"address"`
		Password string `json:"password" binding:"required,min=8"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	email := normalizeEmail(req.Email)
	var count int64
	if err := ac.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if count > 0 {
		respondServiceError(c, services.NewError(services.KindDuplicateEmail, "email already registered"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		Phone:        req.Phone,
		Address:      req.Address,
		PasswordHash: string(hashed),
		IsActive:     true,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New user registered: %s", user.Email)
	utils.RespondJSON(c, http.StatusCreated, "User registered", user)
}

func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	// A single message for every failure mode: unknown email, wrong
	// password and deactivated account are indistinguishable to the caller.
	invalid := services.NewError(services.KindInvalidCredentials, "invalid credentials")

	var user models.User
	if err := ac.DB.Where("email = ?", normalizeEmail(input.Email)).First(&user).Error; err != nil {
		respondServiceError(c, invalid)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		respondServiceError(c, invalid)
		return
	}
	if !user.IsActive {
		respondServiceError(c, invalid)
		return
	}

	access, refresh, err := utils.GenerateTokenPair(&user)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Login successful: %s", user.Email)
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"user":          user,
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func (ac *AuthController) Refresh(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	claims, err := utils.ParseToken(input.RefreshToken, utils.TokenTypeRefresh)
	if err != nil {
		respondServiceError(c, services.NewError(services.KindInvalidToken, "invalid refresh token"))
		return
	}

	var user models.User
	if err := ac.DB.First(&user, claims.UserID).Error; err != nil || !user.IsActive {
		respondServiceError(c, services.NewError(services.KindInvalidToken, "invalid refresh token"))
		return
	}

	access, err := utils.GenerateAccessToken(&user)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Token refreshed", gin.H{
		"access_token": access,
	})
}
