package handlers

import (
	"net/http"
	"strings"

	"mobileshop-server/gateway"
	"mobileshop-server/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const adminUsersTable = "admin_users"

type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func AdminSignup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Check if email exists
	existing, err := Gateway.Query(c.Request.Context(), adminUsersTable, gateway.QueryOptions{
		Filter: map[string]any{"email": email},
	})
	if err != nil {
		respondError(c, "create admin", err)
		return
	}
	if len(existing) > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Password error"})
		return
	}

	row, err := Gateway.Insert(c.Request.Context(), adminUsersTable, gateway.Row{
		"email":         email,
		"password_hash": string(hashedPassword),
		"full_name":     req.FullName,
	})
	if err != nil {
		respondError(c, "create admin", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Admin created successfully",
		"user_id": row["id"],
		"email":   email,
	})
}

func AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	rows, err := Gateway.Query(c.Request.Context(), adminUsersTable, gateway.QueryOptions{
		Filter: map[string]any{"email": email},
	})
	if err != nil {
		respondError(c, "log in", err)
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin not found"})
		return
	}

	row := rows[0]
	passwordHash, _ := row["password_hash"].(string)
	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	userID, ok := row["id"].(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	sess, err := Sessions.Begin(userID, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   sess.Token,
		"user": gin.H{
			"id":        row["id"],
			"email":     email,
			"full_name": row["full_name"],
		},
	})
}

func AdminLogout(c *gin.Context) {
	sess := currentSession(c)
	if sess != nil {
		Sessions.End(sess.Token)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// AuthMiddleware resolves the bearer token to a live session and stores
// it on the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
			c.Abort()
			return
		}
		tokenString := authHeader[7:]

		sess, err := Sessions.Lookup(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("session", sess)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	v, ok := c.Get("session")
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}
