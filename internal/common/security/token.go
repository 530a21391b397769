package security

import (
	"errors"
	"time"

	"holiday_tracker/internal/platform/config"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

var TokenAuth *jwtauth.JWTAuth

func InitJWT() {
	TokenAuth = jwtauth.New("HS256", config.AppConfig.JWTKey, nil)
}

// GenerateSessionToken encodes the session reference into a signed token.
// The session record in the store stays authoritative: a token whose sid has
// been deleted (logout, expiry) is rejected even if the signature is valid.
func GenerateSessionToken(userID, role, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"sid":     sessionID,
		"exp":     time.Now().Add(config.AppConfig.SessionTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

// Helper functions to extract claims, can be used in middleware or services
func GetUserIDFromClaims(claims jwt.MapClaims) (string, error) {
	id, ok := claims["user_id"].(string)
	if !ok {
		return "", errors.New("user_id claim is missing or not a string")
	}
	return id, nil
}

func GetSessionIDFromClaims(claims jwt.MapClaims) (string, error) {
	sid, ok := claims["sid"].(string)
	if !ok {
		return "", errors.New("sid claim is missing or not a string")
	}
	return sid, nil
}
