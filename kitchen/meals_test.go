package kitchen

import (
	"errors"
	"testing"

	"mealmax/models"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory sqlite database standing in for
// PostgreSQL. One connection max, so every query sees the same store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.Meal{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestCreateMealDefaults(t *testing.T) {
	db := newTestDB(t)
	logger := zap.NewNop()

	meal, err := CreateMeal(db, logger, "Pizza", "Italian", 20.00, models.DifficultyHigh)
	if err != nil {
		t.Fatalf("CreateMeal: %v", err)
	}
	if meal.Wins != 0 || meal.Battles != 0 {
		t.Errorf("new meal has wins=%d battles=%d, want 0/0", meal.Wins, meal.Battles)
	}

	got, err := GetMealByID(db, meal.ID)
	if err != nil {
		t.Fatalf("GetMealByID: %v", err)
	}
	if got.Name != "Pizza" || got.Cuisine != "Italian" || got.Price != 20.00 {
		t.Errorf("stored meal = %+v, want Pizza/Italian/20.00", got)
	}
}

func TestCreateMealValidation(t *testing.T) {
	db := newTestDB(t)
	logger := zap.NewNop()

	tests := []struct {
		name       string
		meal       string
		cuisine    string
		price      float64
		difficulty string
	}{
		{"blank name", "", "Italian", 10, "LOW"},
		{"blank cuisine", "Pizza", "", 10, "LOW"},
		{"zero price", "Pizza", "Italian", 0, "LOW"},
		{"negative price", "Pizza", "Italian", -19.99, "LOW"},
		{"bad difficulty", "Pizza", "Italian", 10, "EXTREME"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateMeal(db, logger, tt.meal, tt.cuisine, tt.price, tt.difficulty)
			if err == nil {
				t.Fatal("CreateMeal succeeded, want validation error")
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("error %v is not a ValidationError", err)
			}
			var count int64
			db.Model(&models.Meal{}).Count(&count)
			if count != 0 {
				t.Errorf("store has %d meals after failed create, want 0", count)
			}
		})
	}
}

func TestCreateMealDuplicate(t *testing.T) {
	db := newTestDB(t)
	logger := zap.NewNop()

	if _, err := CreateMeal(db, logger, "Pizza", "Italian", 20.00, "HIGH"); err != nil {
		t.Fatalf("CreateMeal: %v", err)
	}
	_, err := CreateMeal(db, logger, "Pizza", "Neapolitan", 15.00, "MED")
	if !errors.Is(err, ErrDuplicateMeal) {
		t.Errorf("duplicate create returned %v, want ErrDuplicateMeal", err)
	}
}

func TestGetMealNotFound(t *testing.T) {
	db := newTestDB(t)

	if _, err := GetMealByID(db, 999); !errors.Is(err, ErrMealNotFound) {
		t.Errorf("GetMealByID(999) = %v, want ErrMealNotFound", err)
	}
	if _, err := GetMealByName(db, "Nothing"); !errors.Is(err, ErrMealNotFound) {
		t.Errorf("GetMealByName = %v, want ErrMealNotFound", err)
	}
}

func TestDeleteMeal(t *testing.T) {
	db := newTestDB(t)
	logger := zap.NewNop()

	meal, err := CreateMeal(db, logger, "Burger", "American", 10.00, "LOW")
	if err != nil {
		t.Fatalf("CreateMeal: %v", err)
	}

	if err := DeleteMeal(db, logger, meal.ID); err != nil {
		t.Fatalf("DeleteMeal: %v", err)
	}
	if _, err := GetMealByID(db, meal.ID); !errors.Is(err, ErrMealNotFound) {
		t.Errorf("deleted meal still retrievable: %v", err)
	}

	// Deleting again, or deleting an unknown ID, is a not-found error,
	// never a silent success.
	if err := DeleteMeal(db, logger, meal.ID); !errors.Is(err, ErrMealNotFound) {
		t.Errorf("second delete = %v, want ErrMealNotFound", err)
	}
	if err := DeleteMeal(db, logger, 999); !errors.Is(err, ErrMealNotFound) {
		t.Errorf("delete unknown id = %v, want ErrMealNotFound", err)
	}
}

func TestUpdateMealStats(t *testing.T) {
	db := newTestDB(t)
	logger := zap.NewNop()

	meal, err := CreateMeal(db, logger, "Ramen", "Japanese", 12.00, "MED")
	if err != nil {
		t.Fatalf("CreateMeal: %v", err)
	}

	if err := UpdateMealStats(db, meal.ID, ResultWin); err != nil {
		t.Fatalf("UpdateMealStats(win): %v", err)
	}
	if err := UpdateMealStats(db, meal.ID, ResultLoss); err != nil {
		t.Fatalf("UpdateMealStats(loss): %v", err)
	}

	got, err := GetMealByID(db, meal.ID)
	if err != nil {
		t.Fatalf("GetMealByID: %v", err)
	}
	if got.Battles != 2 || got.Wins != 1 {
		t.Errorf("stats = %d battles / %d wins, want 2/1", got.Battles, got.Wins)
	}

	if err := UpdateMealStats(db, meal.ID, "draw"); err == nil {
		t.Error("UpdateMealStats accepted invalid result 'draw'")
	}
	if err := UpdateMealStats(db, 999, ResultWin); !errors.Is(err, ErrMealNotFound) {
		t.Errorf("UpdateMealStats(999) = %v, want ErrMealNotFound", err)
	}
}
