package api

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vladimiradmaev/dietlog/internal/domain"
	apperrors "github.com/vladimiradmaev/dietlog/internal/errors"
	"github.com/vladimiradmaev/dietlog/internal/logger"
)

const userContextKey = "user"

// requestLogger scopes a logger to the request. authRequired extends it with
// the user id, so the closing line and every handler log carry it.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqLogger := logger.GetLogger().With("method", c.Request.Method, "path", c.FullPath())
		c.Request = c.Request.WithContext(logger.IntoContext(c.Request.Context(), reqLogger))

		c.Next()

		logger.WithContext(c.Request.Context()).Info("HTTP request",
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}

// authRequired resolves the bearer token to a user and stores it on the context.
func (r *Router) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			respondError(c, apperrors.NewUnauthorizedError("Not authenticated"))
			return
		}

		user, err := r.services.Users.Authenticate(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			respondError(c, err)
			return
		}
		c.Set(userContextKey, user)
		ctx := c.Request.Context()
		c.Request = c.Request.WithContext(logger.IntoContext(ctx, logger.WithContext(ctx).With("user_id", user.ID)))
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	return c.MustGet(userContextKey).(*domain.User)
}
