package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/alex-pricope/snackify/api/models"
	"github.com/alex-pricope/snackify/auth"
	"github.com/alex-pricope/snackify/logging"
	"github.com/gin-gonic/gin"
)

const (
	userKey  = "authUser"
	tokenKey = "authToken"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.User, error)
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(header[len("Bearer "):])
	return token, token != ""
}

// OptionalAuth attaches the user when a valid bearer token is present and
// lets every request through either way.
func OptionalAuth(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok || a == nil {
			c.Next()
			return
		}
		user, err := a.Authenticate(c.Request.Context(), token)
		if err == nil {
			c.Set(userKey, user)
			c.Set(tokenKey, token)
		}
		c.Next()
	}
}

func RequireAuth(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
			return
		}
		user, err := a.Authenticate(c.Request.Context(), token)
		if err != nil {
			logging.Log.Warnf("AUTH: rejected token on %s: %v", c.Request.URL.Path, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid or expired token"})
			return
		}
		c.Set(userKey, user)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil.
func CurrentUser(c *gin.Context) *auth.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*auth.User)
	return user
}

func CurrentToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}
