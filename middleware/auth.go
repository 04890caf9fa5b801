// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	userRepo "moveboard/database/repository/user"
	"moveboard/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer token's signature and checks the
// stored token hash, so a revoked token fails even before it expires.
func JWTAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the token signature and expiration.
		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// Compute the token hash and look up its holder.
		computedHash := utils.HashToken(tokenString)
		usr, err := repo.GetByTokenHash(computedHash)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or account not found"})
			return
		}

		c.Set("userID", usr.ID)
		c.Next()
	}
}
