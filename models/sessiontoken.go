package models

import (
	"time"

	"gorm.io/gorm"
)

// SessionToken モデルの定義
type SessionToken struct {
	gorm.Model
	UserID    uint      `gorm:"not null;index"`
	Token     string    `gorm:"not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
}
