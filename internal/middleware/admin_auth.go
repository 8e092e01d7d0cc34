package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vsugamele/clubedasbrabas-sub002/internal/logs"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/moderation"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/user"
)

// AdminOnlyMiddleware protege as rotas /api/admin. A mensagem de recusa é
// genérica de propósito: não diz qual verificação falhou.
func AdminOnlyMiddleware(auth moderation.Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		userID := c.GetString("user_id")

		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
			logs.LogJSON("WARN", "Non-authenticated user tried admin route", map[string]interface{}{
				"route": route,
			})
			return
		}

		email := c.GetString("email")
		if email == "" {
			// Tokens antigos não carregam o claim de e-mail
			email = user.EmailByID(userID)
		}

		if !auth.IsAdmin(email) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Acesso restrito aos administradores"})
			logs.LogJSON("WARN", "Non-admin user blocked from admin route", map[string]interface{}{
				"route":  route,
				"userID": userID,
			})
			return
		}

		c.Set("admin_email", email)
		c.Next()
	}
}
