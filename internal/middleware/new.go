package middleware

import (
	"personal-assistant/config"
	"personal-assistant/pkg/log"
)

type Middleware struct {
	l       log.Logger
	apiKey  string
	limiter *rateLimiter
}

func New(l log.Logger, cfg config.AuthConfig) Middleware {
	return Middleware{
		l:       l,
		apiKey:  cfg.APIKey,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
