package middlewares

import (
	"strings"

	"github.com/Chandu5342/RestaurntBackend/entity"
	"github.com/Chandu5342/RestaurntBackend/pkg/resp"
	"github.com/Chandu5342/RestaurntBackend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware validates the bearer token and (if roles are given)
// enforces the allow-list. The token carries only the user id; the
// role comes from the store so approvals apply to tokens already in the
// wild.
func AuthMiddleware(db *gorm.DB, secret string, requiredRoles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(h, "Bearer "), secret)
		if err != nil {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		var user entity.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set("userId", user.ID)
		c.Set("role", user.Role)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if user.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Forbidden(c, "forbidden")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
