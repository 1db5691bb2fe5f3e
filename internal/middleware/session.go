package middleware

import (
	"net/http"

	"github.com/classpoint/sis-backend/internal/response"
	"github.com/classpoint/sis-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// CheckAdminSession validates the JWT's JTI against the active session in
// Redis. A mismatch means the admin logged out elsewhere or the session was
// revoked, so the token is rejected even though it is still signed and
// unexpired.
func CheckAdminSession(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		if err := authService.ValidateAdminSession(c.Request.Context(), claims.UserID, claims.ID); err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrSessionInvalidated)
			return
		}

		c.Next()
	}
}
