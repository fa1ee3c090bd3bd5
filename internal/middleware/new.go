package middleware

import (
	"tasktracker-webui/config"
	"tasktracker-webui/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares the HTTP server
// installs in front of every route.
type Middleware struct {
	l       log.Logger
	limiter *ipRateLimiter
	config  *config.Config
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newIPRateLimiter(cfg.Form.RateLimitPerMin),
		config:  cfg,
	}
}
