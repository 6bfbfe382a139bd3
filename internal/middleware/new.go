package middleware

import (
	pkgLog "todochat/pkg/log"
)

type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

func New(l pkgLog.Logger, chatPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(chatPerMin),
	}
}
