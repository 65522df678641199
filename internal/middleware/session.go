package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// Session backs the OAuth state nonce with a signed cookie. The signing key
// comes from the environment; there is no compiled-in default.
func Session(secretKey string) gin.HandlerFunc {
	store := cookie.NewStore([]byte(secretKey))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
	})
	return sessions.Sessions("neoverse_session", store)
}
