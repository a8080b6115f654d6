package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rowjay/countdown-token-service/internal/constants"
)

// CORS allows the configured origins, or any origin when the list holds "*".
// Origins must otherwise carry an http:// or https:// scheme.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", constants.RequestIDHeader},
		ExposeHeaders: []string{constants.RequestIDHeader},
		MaxAge:        constants.CORSMaxAge,
	}
	if len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cors.New(cfg)
}
