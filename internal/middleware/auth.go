package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"member_web/internal/utils"
)

// 上下文鍵
const (
	ContextMemberID    = "memberID"
	ContextMemberEmail = "memberEmail"
)

// AuthMiddleware 驗證請求的 Bearer JWT token
func AuthMiddleware(tokens *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := tokens.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ContextMemberID, claims.MemberID)
		c.Set(ContextMemberEmail, claims.Email)
		c.Next()
	}
}
