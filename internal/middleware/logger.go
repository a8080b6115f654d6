package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func Logger() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		event := log.Info()
		if param.StatusCode >= 500 {
			event = log.Error()
		} else if param.StatusCode >= 400 {
			event = log.Warn()
		}

		event = event.
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Str("protocol", param.Request.Proto).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Time("timestamp", param.TimeStamp)

		if id, ok := param.Keys[requestIDKey].(string); ok {
			event = event.Str("request_id", id)
		}
		if param.ErrorMessage != "" {
			event = event.Str("error", param.ErrorMessage)
		}

		event.Msg("HTTP Request")

		return ""
	})
}
