package middleware

import (
	"github.com/haierkeys/note-vault/pkg/app"
	"github.com/haierkeys/note-vault/pkg/code"

	"github.com/gin-gonic/gin"
)

func extractToken(c *gin.Context) string {
	var token string
	if s, exist := c.GetQuery("authorization"); exist {
		token = s
	} else if s, exist := c.GetQuery("Authorization"); exist {
		token = s
	} else if s := c.GetHeader("authorization"); len(s) != 0 {
		token = s
	} else if s := c.GetHeader("Authorization"); len(s) != 0 {
		token = s
	} else if s, exist := c.GetQuery("token"); exist {
		token = s
	} else if s, exist := c.GetQuery("Token"); exist {
		token = s
	} else if s = c.GetHeader("token"); len(s) != 0 {
		token = s
	} else if s = c.GetHeader("Token"); len(s) != 0 {
		token = s
	}
	return token
}

// UserAuthToken 用户 Token 认证中间件，无 Token 或 Token 非法时拒绝请求
func UserAuthToken(tm app.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := app.NewResponse(c)

		token := extractToken(c)
		if token == "" {
			response.ToResponse(code.ErrorNotUserAuthToken)
			c.Abort()
			return
		}

		user, err := tm.Parse(token)
		if err != nil {
			response.ToResponse(code.ErrorInvalidUserAuthToken)
			c.Abort()
			return
		}
		c.Set("user_token", user)

		c.Next()
	}
}

// OptionalUserAuthToken resolves the caller identity when a token is present
// but lets anonymous requests through as the guest identity. A token that is
// present but invalid is still rejected, silently downgrading a broken
// session to guest would mix collections.
// OptionalUserAuthToken 可选认证：无 Token 按访客处理，Token 非法仍拒绝
func OptionalUserAuthToken(tm app.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		user, err := tm.Parse(token)
		if err != nil {
			app.NewResponse(c).ToResponse(code.ErrorInvalidUserAuthToken)
			c.Abort()
			return
		}
		c.Set("user_token", user)

		c.Next()
	}
}
