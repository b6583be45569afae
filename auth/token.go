package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AndresWalter/petzone--template/models"
)

// IssueSessionToken signs a bearer token for the protected routes.
// This is transport plumbing, not account security: the account check
// behind it is the mock plaintext comparison in the session manager.
func IssueSessionToken(sess models.UserSession) (string, error) {
	claims := jwt.MapClaims{
		"username": sess.Username,
		"name":     sess.Name,
		"role":     sess.Role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
