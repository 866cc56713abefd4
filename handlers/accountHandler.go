package handlers

import (
	"errors"
	"net/http"

	"mealmax/middlewares"
	"mealmax/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateAccount は新規ユーザーを登録するハンドラです。
func CreateAccount(c *gin.Context, db *gorm.DB, logger *zap.Logger) {
	var request models.AccountRequest
	if err := c.ShouldBindJSON(&request); err != nil || request.Username == "" || request.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required."})
		return
	}

	var existing models.User
	if err := db.Where("username = ?", request.Username).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists."})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check username", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account."})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account."})
		return
	}

	user := models.User{Username: request.Username, PasswordHash: string(hash)}
	if err := db.Create(&user).Error; err != nil {
		logger.Error("Failed to create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account."})
		return
	}

	logger.Info("account created", zap.String("username", user.Username))
	c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully."})
}

// Login はユーザー認証を行いJWTを発行するハンドラです。
func Login(c *gin.Context, db *gorm.DB, logger *zap.Logger) {
	var request models.AccountRequest
	if err := c.ShouldBindJSON(&request); err != nil || request.Username == "" || request.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required."})
		return
	}

	var user models.User
	if err := db.Where("username = ?", request.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password."})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		logger.Warn("login failed", zap.String("username", request.Username))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password."})
		return
	}

	token, err := middlewares.GenerateToken(db, user)
	if err != nil {
		logger.Error("Token generation error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful.", "access_token": token})
}

// UpdatePassword changes the caller's password and revokes every
// existing session, so old tokens stop working immediately.
func UpdatePassword(c *gin.Context, db *gorm.DB, logger *zap.Logger) {
	var request models.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil || request.OldPassword == "" || request.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Old password and new password are required."})
		return
	}

	userID := c.GetUint("userID")
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.OldPassword)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect old password."})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password."})
		return
	}

	if err := db.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
		logger.Error("Failed to update password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password."})
		return
	}

	if err := middlewares.RevokeSessions(db, user.ID); err != nil {
		logger.Error("Failed to revoke sessions", zap.Uint("userID", user.ID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully."})
}
