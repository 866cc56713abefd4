package kitchen

import (
	"errors"
	"fmt"
	"strings"

	"mealmax/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrMealNotFound  = errors.New("meal not found")
	ErrDuplicateMeal = errors.New("meal already exists")
)

// ValidationError marks bad input so the handler boundary can answer
// 400 instead of 500.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationf(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// Battle outcomes accepted by UpdateMealStats.
const (
	ResultWin  = "win"
	ResultLoss = "loss"
)

// CreateMeal validates and stores a new meal. New meals always start
// with zero battles and zero wins.
func CreateMeal(db *gorm.DB, logger *zap.Logger, name, cuisine string, price float64, difficulty string) (*models.Meal, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(cuisine) == "" {
		return nil, validationf("meal and cuisine are required")
	}
	if price <= 0 {
		return nil, validationf("invalid meal price: %.2f (must be positive)", price)
	}
	if !models.ValidDifficulty(difficulty) {
		return nil, validationf("invalid difficulty provided: %s (must be 'LOW', 'MED', or 'HIGH')", difficulty)
	}

	var existing models.Meal
	if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
		logger.Warn("duplicate meal name", zap.String("meal", name))
		return nil, fmt.Errorf("%w: %s", ErrDuplicateMeal, name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	meal := models.Meal{
		Name:       name,
		Cuisine:    cuisine,
		Price:      price,
		Difficulty: difficulty,
	}
	if err := db.Create(&meal).Error; err != nil {
		logger.Error("failed to create meal", zap.String("meal", name), zap.Error(err))
		return nil, err
	}
	logger.Info("meal created", zap.Uint("id", meal.ID), zap.String("meal", name))
	return &meal, nil
}

func GetMealByID(db *gorm.DB, id uint) (*models.Meal, error) {
	var meal models.Meal
	if err := db.First(&meal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrMealNotFound, id)
		}
		return nil, err
	}
	return &meal, nil
}

func GetMealByName(db *gorm.DB, name string) (*models.Meal, error) {
	var meal models.Meal
	if err := db.Where("name = ?", name).First(&meal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrMealNotFound, name)
		}
		return nil, err
	}
	return &meal, nil
}

// DeleteMeal soft-deletes a meal. The cron cleaner hard-deletes the
// row later, mirroring the two-stage room cleanup.
func DeleteMeal(db *gorm.DB, logger *zap.Logger, id uint) error {
	result := db.Delete(&models.Meal{}, id)
	if result.Error != nil {
		logger.Error("failed to delete meal", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrMealNotFound, id)
	}
	logger.Info("meal deleted", zap.Uint("id", id))
	return nil
}

// UpdateMealStats records one battle outcome for a meal. Battles
// always increments; wins increments only on a win, so wins can never
// exceed battles.
func UpdateMealStats(db *gorm.DB, id uint, result string) error {
	updates := map[string]interface{}{"battles": gorm.Expr("battles + 1")}
	switch result {
	case ResultWin:
		updates["wins"] = gorm.Expr("wins + 1")
	case ResultLoss:
	default:
		return fmt.Errorf("invalid battle result: %s (must be 'win' or 'loss')", result)
	}

	tx := db.Model(&models.Meal{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrMealNotFound, id)
	}
	return nil
}
