package handlers

import (
	"net/http"

	"mealmax/database"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HealthCheck はサービスの死活確認用ハンドラです。
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// DBCheck verifies the database connection and the meals table.
func DBCheck(c *gin.Context, db *gorm.DB, logger *zap.Logger) {
	if err := database.CheckDatabase(db); err != nil {
		logger.Error("database check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"database_status": "healthy"})
}
