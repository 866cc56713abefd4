package middlewares

import (
	"os"
	"time"

	"mealmax/models"

	jwt "github.com/dgrijalva/jwt-go"
	"gorm.io/gorm"
)

var jwtKey = loadJWTKey()

func loadJWTKey() []byte {
	if key := os.Getenv("JWT_SECRET"); key != "" {
		return []byte(key)
	}
	return []byte("your_secret_key")
}

const tokenLifetime = 24 * time.Hour

// GenerateToken issues a signed JWT for the user and records it in the
// session token table. Tokens absent from that table are rejected by
// the auth middleware, which is how password changes revoke sessions.
func GenerateToken(db *gorm.DB, user models.User) (string, error) {
	expirationTime := time.Now().Add(tokenLifetime)

	claims := &models.MyClaims{
		UserID:   user.ID,
		Username: user.Username,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtKey)
	if err != nil {
		return "", err
	}

	session := models.SessionToken{
		UserID:    user.ID,
		Token:     tokenString,
		ExpiresAt: expirationTime,
	}
	if err := db.Create(&session).Error; err != nil {
		return "", err
	}
	return tokenString, nil
}

// RevokeSessions deletes every session token for a user.
func RevokeSessions(db *gorm.DB, userID uint) error {
	return db.Where("user_id = ?", userID).Delete(&models.SessionToken{}).Error
}
