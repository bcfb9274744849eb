package middleware

import (
	"delivery-route-optimizer/config"
	"delivery-route-optimizer/pkg/log"
)

type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
	rateEnabled bool
}

func New(l log.Logger, rateCfg config.RateLimitConfig) Middleware {
	perMin := rateCfg.RequestsPerMin
	if perMin <= 0 {
		perMin = 60
	}
	return Middleware{
		l:           l,
		rateLimiter: newRateLimiter(perMin),
		rateEnabled: rateCfg.Enabled,
	}
}
