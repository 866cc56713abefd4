package middlewares

import (
	"testing"

	"mealmax/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

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
	if err := db.AutoMigrate(&models.User{}, &models.SessionToken{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestGenerateTokenRecordsSession(t *testing.T) {
	db := newTestDB(t)
	user := models.User{Username: "alice", PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	token, err := GenerateToken(db, user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken returned empty token")
	}

	var session models.SessionToken
	if err := db.Where("token = ?", token).First(&session).Error; err != nil {
		t.Fatalf("session row missing: %v", err)
	}
	if session.UserID != user.ID {
		t.Errorf("session user = %d, want %d", session.UserID, user.ID)
	}
}

func TestRevokeSessions(t *testing.T) {
	db := newTestDB(t)
	user := models.User{Username: "alice", PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := GenerateToken(db, user); err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := GenerateToken(db, user); err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if err := RevokeSessions(db, user.ID); err != nil {
		t.Fatalf("RevokeSessions: %v", err)
	}
	var count int64
	db.Model(&models.SessionToken{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 0 {
		t.Errorf("%d sessions remain after revoke, want 0", count)
	}
}
