package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminGate protege las rutas de administración del catálogo con la clave
// compartida del local (header X-Admin-Password). Es un gate simple de
// operador, no infraestructura de control de acceso.
func AdminGate(password string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if password == "" {
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "admin access disabled (ADMIN_PASSWORD not configured)",
			})
			return
		}

		provided := ctx.GetHeader("X-Admin-Password")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(password)) != 1 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid admin password",
			})
			return
		}

		ctx.Next()
	}
}
