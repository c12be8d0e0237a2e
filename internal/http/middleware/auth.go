package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const authUserKey = "auth_user_id"

// AuthRequired rejects requests without a valid bearer token signed
// with secret.
func AuthRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if !strings.HasPrefix(raw, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if id, ok := claims["user_id"].(string); ok {
				c.Set(authUserKey, id)
			}
		}
		c.Next()
	}
}

// GetAuthUserID returns the authenticated user id, empty when the
// request carried no valid token.
func GetAuthUserID(c *gin.Context) string {
	if v, ok := c.Get(authUserKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
