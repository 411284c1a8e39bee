package server

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Alexiva1995/Networkx-back/internal/auth"
	"github.com/Alexiva1995/Networkx-back/internal/models"
	"github.com/Alexiva1995/Networkx-back/internal/utils"
)

const ctxUserKey = "auth_user"

// RequestLogger logs one line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// AuthRequired parses the bearer token and loads the authenticated user
// into the request context.
func AuthRequired(db *gorm.DB, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
			return
		}

		userID, err := auth.GetUserIDFromToken(token, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		var user models.User
		if err := db.WithContext(c.Request.Context()).First(&user, userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unknown user"})
			return
		}

		c.Set(ctxUserKey, &user)
		c.Next()
	}
}

// AdminRequired gates admin routes on the user's admin flag.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || !user.Admin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "admin access required"})
			return
		}
		c.Next()
	}
}

// AdminIPAllowlist restricts admin routes to the configured networks.
// An empty list allows everything.
func AdminIPAllowlist(cidrs []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(cidrs) > 0 && !utils.IsAllowedIP(c.ClientIP(), cidrs) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "forbidden network"})
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
