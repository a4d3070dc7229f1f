package configs

import (
	"net/url"
	"time"
)

// Platform configures the client for the external advertising platform:
// campaign registry, spend feed and budget mutations share one base URL and
// token.
type Platform struct {
	// BaseURL is the root of the platform API, e.g. https://ads.example.com.
	BaseURL url.URL `env:"BASE_URL" envDefault:"http://localhost:9090"`
	// Token is sent as a bearer token on every request.
	Token string `env:"TOKEN"`
	// Timeout applies to each individual call, independent of the cycle
	// interval, so one stuck campaign cannot block others.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
