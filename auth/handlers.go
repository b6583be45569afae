// Package auth holds the login, registration and session endpoints.
package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AndresWalter/petzone--template/models"
	"github.com/AndresWalter/petzone--template/session"
	"github.com/AndresWalter/petzone--template/validation"
)

type Credentials struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// POST /auth/login
func LoginHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input Credentials
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sess, err := sessions.Login(c.Request.Context(), input.Identifier, input.Password)
		if err != nil {
			if errors.Is(err, session.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}

		token, err := IssueSessionToken(sess)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": sess, "token": token})
	}
}

// POST /auth/register
func RegisterHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if errs := validation.Register(input); len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		sess, err := sessions.Register(c.Request.Context(), input)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to register user: " + err.Error()})
			return
		}

		token, err := IssueSessionToken(sess)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"user": sess, "token": token})
	}
}

// POST /auth/logout
func LogoutHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions.Logout()
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// GET /auth/session
func SessionHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessions.Session()
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": sess})
	}
}
