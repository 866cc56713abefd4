package models

import (
	"gorm.io/gorm"
)

// Difficulty levels accepted by the kitchen.
const (
	DifficultyLow  = "LOW"
	DifficultyMed  = "MED"
	DifficultyHigh = "HIGH"
)

// Meal モデルの定義
type Meal struct {
	gorm.Model
	Name       string  `gorm:"unique;not null"`
	Cuisine    string  `gorm:"not null"`
	Price      float64 `gorm:"not null"`
	Difficulty string  `gorm:"not null"`
	Battles    int     `gorm:"not null;default:0"`
	Wins       int     `gorm:"not null;default:0"`
}

// ValidDifficulty reports whether s is one of LOW, MED, HIGH.
func ValidDifficulty(s string) bool {
	switch s {
	case DifficultyLow, DifficultyMed, DifficultyHigh:
		return true
	}
	return false
}
