package constants

import "time"

const (
	CountdownPathPrefix   = "/countdown"
	DefaultPort           = "8080"
	DefaultEnvironment    = "development"
	DefaultMaxTitleLength = 100
	DefaultRateLimitRPS   = 10
	DefaultRateLimitBurst = 20
	RequestTimeout        = 30 * time.Second
	RequestIDHeader       = "X-Request-ID"
	CORSMaxAge            = 12 * time.Hour
)

var ValidEnvironments = []string{
	"development",
	"production",
	"testing",
}
