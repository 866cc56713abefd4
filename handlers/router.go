package handlers

import (
	"mealmax/battle"
	"mealmax/middlewares"
	"mealmax/movies"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RegisterRoutes wires every endpoint onto the router. Handlers get
// their collaborators passed explicitly instead of reaching for
// globals, which also makes the routing table reusable from tests.
func RegisterRoutes(router *gin.Engine, db *gorm.DB, logger *zap.Logger, model *battle.Model, movieClient *movies.Client) {
	api := router.Group("/api")

	api.GET("/health", HealthCheck)
	api.GET("/db-check", func(c *gin.Context) {
		DBCheck(c, db, logger)
	})

	api.POST("/create-meal", func(c *gin.Context) {
		CreateMeal(c, db, logger)
	})
	api.DELETE("/delete-meal/:id", func(c *gin.Context) {
		DeleteMeal(c, db, logger)
	})
	api.GET("/get-meal-by-id/:id", func(c *gin.Context) {
		GetMealByID(c, db, logger)
	})
	api.GET("/get-meal-by-name/:name", func(c *gin.Context) {
		GetMealByName(c, db, logger)
	})
	api.GET("/leaderboard", func(c *gin.Context) {
		Leaderboard(c, db, logger)
	})

	api.POST("/prep-combatant", func(c *gin.Context) {
		PrepCombatant(c, db, logger, model)
	})
	api.POST("/clear-combatants", func(c *gin.Context) {
		ClearCombatants(c, model)
	})
	api.GET("/get-combatants", func(c *gin.Context) {
		GetCombatants(c, model)
	})
	api.GET("/battle", func(c *gin.Context) {
		Battle(c, db, logger, model)
	})

	api.POST("/create-account", func(c *gin.Context) {
		CreateAccount(c, db, logger)
	})
	api.POST("/login", func(c *gin.Context) {
		Login(c, db, logger)
	})
	api.PUT("/update-password", middlewares.AuthMiddleware(db, logger), func(c *gin.Context) {
		UpdatePassword(c, db, logger)
	})

	if movieClient != nil {
		api.GET("/search-by-title", func(c *gin.Context) {
			SearchByTitle(c, movieClient, logger)
		})
		api.GET("/get-by-id", func(c *gin.Context) {
			GetByID(c, movieClient, logger)
		})
		api.GET("/get-by-title", func(c *gin.Context) {
			GetByTitle(c, movieClient, logger)
		})
		api.GET("/search-by-year", func(c *gin.Context) {
			SearchByYear(c, movieClient, logger)
		})
		api.GET("/search-by-type", func(c *gin.Context) {
			SearchByType(c, movieClient, logger)
		})
	}
}
