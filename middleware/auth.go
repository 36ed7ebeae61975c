package middleware

import (
	"net/http"
	"strings"
	"time"

	"Pulse/pkg/context"
	"Pulse/pkg/jwt"
	"Pulse/pkg/response"

	"github.com/gin-gonic/gin"
)

// 访问 token 剩余有效期低于该值时，通过响应头下发新 token
const rotateBuffer = 30 * time.Second

func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "无效的 token")
			return
		}

		if jwt.ShouldRotate(claims, rotateBuffer) {
			newToken, err := jwt.GenerateToken(secret, claims.UserID, jwt.TypeAccess, rotateBuffer*2)
			if err == nil {
				c.Header("X-New-Access-Token", newToken)
			}
		}

		c.Set(context.CtxUserID, claims.UserID)

		c.Next()
	}
}
