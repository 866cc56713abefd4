package handlers

import (
	"errors"
	"net/http"

	"mealmax/battle"
	"mealmax/kitchen"
	"mealmax/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PrepCombatant stages a stored meal, looked up by name, for the next
// battle.
func PrepCombatant(c *gin.Context, db *gorm.DB, logger *zap.Logger, model *battle.Model) {
	var request models.PrepCombatantRequest
	if err := c.ShouldBindJSON(&request); err != nil || request.Meal == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal name is required"})
		return
	}

	meal, err := kitchen.GetMealByName(db, request.Meal)
	if err != nil {
		if errors.Is(err, kitchen.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to fetch combatant", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal"})
		return
	}

	if err := model.PrepCombatant(*meal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	names := []string{}
	for _, combatant := range model.Combatants() {
		names = append(names, combatant.Name)
	}
	c.JSON(http.StatusOK, gin.H{"status": "combatant prepared", "combatants": names})
}

// ClearCombatants empties the staging slot.
func ClearCombatants(c *gin.Context, model *battle.Model) {
	model.ClearCombatants()
	c.JSON(http.StatusOK, gin.H{"status": "combatants cleared"})
}

// GetCombatants returns the currently staged meals.
func GetCombatants(c *gin.Context, model *battle.Model) {
	combatants := model.Combatants()
	out := make([]gin.H, 0, len(combatants))
	for i := range combatants {
		out = append(out, mealJSON(&combatants[i]))
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "combatants": out})
}

// Battle runs a battle between the two staged combatants.
func Battle(c *gin.Context, db *gorm.DB, logger *zap.Logger, model *battle.Model) {
	result, err := model.Battle(db)
	if err != nil {
		if errors.Is(err, battle.ErrNotEnoughCombatants) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// A staged meal was deleted before the battle ran. The slot still
		// holds the stale pair; the client clears it and stages fresh meals.
		if errors.Is(err, kitchen.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Battle failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Battle failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "battle complete",
		"winner": result.Winner.Name,
		"loser":  result.Loser.Name,
	})
}
