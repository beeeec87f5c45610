package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"recharge-portal/internal/api/respond"
	"recharge-portal/internal/auth"
	"recharge-portal/internal/contract"
)

// UserIDKey is the gin context key holding the signed-in user's id.
const UserIDKey = "user_id"

// CurrentUserID returns the id set by AuthMiddleware or OptionalAuth.
func CurrentUserID(c *gin.Context) (string, bool) {
	id := c.GetString(UserIDKey)
	return id, id != ""
}

// CurrentUserPtr is CurrentUserID as an optional column value.
func CurrentUserPtr(c *gin.Context) *string {
	if id, ok := CurrentUserID(c); ok {
		return &id
	}
	return nil
}

// AuthMiddleware rejects requests without a valid session with 401.
func AuthMiddleware(sessions *auth.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := sessions.Verify(auth.TokenFromRequest(c.Request))
		if err != nil {
			respond.Unauthorized(c)
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// OptionalAuth attaches the user when a valid session is present and never rejects.
func OptionalAuth(sessions *auth.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := auth.TokenFromRequest(c.Request); token != "" {
			if userID, err := sessions.Verify(token); err == nil {
				c.Set(UserIDKey, userID)
			}
		}
		c.Next()
	}
}

// RequireAdmin runs after AuthMiddleware. Callers the policy does not admit get the
// same 401 as anonymous ones.
func RequireAdmin(policy auth.AdminPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			respond.Unauthorized(c)
			return
		}

		isAdmin, err := policy.IsAdmin(c.Request.Context(), userID)
		if err != nil {
			slog.ErrorContext(c.Request.Context(), "admin check failed", "user_id", userID, "error", err)
			respond.Error(c, http.StatusInternalServerError, contract.MsgInternal)
			return
		}
		if !isAdmin {
			respond.Unauthorized(c)
			return
		}
		c.Next()
	}
}
