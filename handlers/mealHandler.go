package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"mealmax/kitchen"
	"mealmax/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// mealJSON is the wire shape of a meal in every response.
func mealJSON(m *models.Meal) gin.H {
	return gin.H{
		"id":         m.ID,
		"meal":       m.Name,
		"cuisine":    m.Cuisine,
		"price":      m.Price,
		"difficulty": m.Difficulty,
		"battles":    m.Battles,
		"wins":       m.Wins,
	}
}

// CreateMeal は新しいmealを作成するハンドラです。
func CreateMeal(c *gin.Context, db *gorm.DB, logger *zap.Logger) {
	var request models.CreateMealRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		logger.Error("Create meal request bind error", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal, cuisine, price and difficulty are required"})
		return
	}

	meal, err := kitchen.CreateMeal(db, logger, request.Meal, request.Cuisine, request.Price, request.Difficulty)
	if err != nil {
		var vErr *kitchen.ValidationError
		if errors.Is(err, kitchen.ErrDuplicateMeal) || errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create meal", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meal"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "meal": meal.Name})
}

// DeleteMeal はmealをID指定で削除するハンドラです。
func DeleteMeal(c *gin.Context, db *gorm.DB, logger *zap.Logger) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal id must be a positive integer"})
		return
	}

	if err := kitchen.DeleteMeal(db, logger, uint(id)); err != nil {
		if errors.Is(err, kitchen.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "meal deleted"})
}

// GetMealByID はmealをID指定で取得するハンドラです。
func GetMealByID(c *gin.Context, db *gorm.DB, logger *zap.Logger) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal id must be a positive integer"})
		return
	}

	meal, err := kitchen.GetMealByID(db, uint(id))
	if err != nil {
		if errors.Is(err, kitchen.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to fetch meal", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "meal": mealJSON(meal)})
}

// GetMealByName はmealを名前指定で取得するハンドラです。
func GetMealByName(c *gin.Context, db *gorm.DB, logger *zap.Logger) {
	name := c.Param("name")
	meal, err := kitchen.GetMealByName(db, name)
	if err != nil {
		if errors.Is(err, kitchen.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to fetch meal", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "meal": mealJSON(meal)})
}

// Leaderboard はランキングを返すハンドラです。
func Leaderboard(c *gin.Context, db *gorm.DB, logger *zap.Logger) {
	sortBy := c.Query("sort")
	entries, err := kitchen.GetLeaderboard(db, sortBy)
	if err != nil {
		var vErr *kitchen.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to build leaderboard", zap.String("sort", sortBy), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "leaderboard": entries})
}
