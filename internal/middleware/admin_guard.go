package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/studio-site/internal/config"
)

const (
	SessionCookie    = "admin_session"
	ContextAdminUser = "adminUser"
)

// AdminGuard valida o token de sessão assinado em toda rota /admin
// (exceto o login). Sem token válido, volta para a tela de login.
func AdminGuard(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil || tokenString == "" {
			redirectToLogin(c)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {

			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.SessionSecret), nil
		})
		if err != nil || !token.Valid {
			redirectToLogin(c)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			redirectToLogin(c)
			return
		}

		username, ok := claims["sub"].(string)
		if !ok || username == "" {
			redirectToLogin(c)
			return
		}

		c.Set(ContextAdminUser, username)

		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/admin/login")
	c.Abort()
}
