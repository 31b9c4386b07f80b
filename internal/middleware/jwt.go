package middleware

import (
	"net/http"
	"strings"
	"time"

	"club-portal/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var JWTSecret = []byte("club-portal-secret-2026")

const tokenTTL = 7 * 24 * time.Hour

// NewToken signs the durable session record for a supervisor. The token is
// the client's persisted session; presenting it restores the identity.
func NewToken(s *model.Supervisor) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  s.ID,
		"name": s.Name,
		"role": s.Role,
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}).SignedString(JWTSecret)
}

func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		token, err := jwt.Parse(auth[7:], func(t *jwt.Token) (interface{}, error) {
			return JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		claims := token.Claims.(jwt.MapClaims)
		c.Set("user_id", claims["uid"].(string))
		c.Set("user_name", claims["name"].(string))
		c.Set("user_role", claims["role"].(string))

		// Renew when less than a day remains.
		if exp, ok := claims["exp"].(float64); ok {
			if time.Until(time.Unix(int64(exp), 0)) < 24*time.Hour {
				newToken, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
					"uid":  claims["uid"],
					"name": claims["name"],
					"role": claims["role"],
					"exp":  time.Now().Add(tokenTTL).Unix(),
				}).SignedString(JWTSecret)
				c.Header("X-New-Token", newToken)
			}
		}

		c.Next()
	}
}

// RequireRoles restricts a route group to the given roles. A signed-in user
// outside the allowed set is sent back to the public landing view instead of
// receiving an error page.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("user_role")
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		c.Redirect(http.StatusSeeOther, "/")
		c.Abort()
	}
}
