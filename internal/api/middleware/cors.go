package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS lets the desktop shell's web view call the bridge.
func ConfigCORS(allowedOrigins []string) gin.HandlerFunc {
	conf := cors.DefaultConfig()
	conf.AllowHeaders = append(conf.AllowHeaders, HeaderUserID, "X-Request-ID")
	conf.ExposeHeaders = []string{"X-Request-ID"}
	conf.MaxAge = 12 * time.Hour
	if len(allowedOrigins) == 0 {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = allowedOrigins
	}

	return cors.New(conf)
}
