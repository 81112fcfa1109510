package middleware

import (
	"net/http"
	"strings"

	"internship-portal-backend/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware memvalidasi JWT dari header Authorization (Bearer token)
// dan menyimpan principal (userID, role) ke dalam context.
// Role diambil dari klaim token, bukan query tabel per request.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			c.JSON(http.StatusUnauthorized,
				utils.BuildResponseFailed("Authorization token required", "missing_or_invalid_authorization_header", nil))
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized,
				utils.BuildResponseFailed("Authorization token required", "empty_token", nil))
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized,
				utils.BuildResponseFailed("Invalid or expired token", err.Error(), nil))
			c.Abort()
			return
		}

		// Inject principal ke context untuk dipakai di handler
		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
