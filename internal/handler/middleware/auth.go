package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"price-in-time/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards the mutating configuration endpoints. Tokens are
// minted by operations tooling; this service only validates them.
type AuthMiddleware struct {
	tokens *jwt.Service
}

const (
	ctxSubjectKey = "subject"
	ctxRoleKey    = "role"
)

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		if claims.Role != jwt.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Set(ctxSubjectKey, claims.Subject)
		c.Set(ctxRoleKey, claims.Role)
		c.Set("jwt_claims", map[string]any{
			"subject": claims.Subject,
			"role":    claims.Role,
		})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetSubject(c *gin.Context) (string, bool) {
	subject, exists := c.Get(ctxSubjectKey)
	if !exists {
		return "", false
	}
	s, ok := subject.(string)
	return s, ok
}
