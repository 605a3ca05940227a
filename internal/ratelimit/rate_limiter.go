package ratelimit

import (
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/bornholm/prometheustube/internal/syncx"
	"github.com/bornholm/prometheustube/pkg/log"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const DefaultIdleTimeout = 5 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

type RateLimiter struct {
	rate        rate.Limit
	burst       int
	idleTimeout time.Duration
	now         func() time.Time
	lastSweep   atomic.Int64
	clients     syncx.Map[string, *client]
}

type GetClientKeyFunc func(r *http.Request) (string, error)

// RemoteAddr identifies clients by the host part of the request's remote
// address.
func RemoteAddr(r *http.Request) (string, error) {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", errors.Wrapf(err, "could not parse remote address '%s'", r.RemoteAddr)
	}

	return host, nil
}

func (l *RateLimiter) Middleware(getClientKey GetClientKeyFunc) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			clientKey, err := getClientKey(r)
			if err != nil {
				slog.ErrorContext(ctx, "could not retrieve client key", log.Error(errors.WithStack(err)))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if !l.Allow(clientKey) {
				slog.WarnContext(ctx, "rate limit exceeded", slog.String("client", clientKey))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (l *RateLimiter) Allow(clientKey string) bool {
	now := l.now()

	c, exists := l.clients.Load(clientKey)
	if !exists {
		c, _ = l.clients.LoadOrStore(clientKey, &client{
			limiter: rate.NewLimiter(l.rate, l.burst),
		})
	}

	c.lastSeen.Store(now.UnixNano())
	allowed := c.limiter.AllowN(now, 1)

	l.sweep(now)

	return allowed
}

// sweep forgets the clients not seen for longer than the idle timeout. It
// runs at most once per idle timeout period.
func (l *RateLimiter) sweep(now time.Time) {
	if l.idleTimeout <= 0 {
		return
	}

	last := l.lastSweep.Load()
	if now.UnixNano()-last < int64(l.idleTimeout) {
		return
	}

	if !l.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}

	threshold := now.Add(-l.idleTimeout).UnixNano()

	l.clients.Range(func(key string, c *client) bool {
		if c.lastSeen.Load() < threshold {
			l.clients.CompareAndDelete(key, c)
		}

		return true
	})
}

func New(rate rate.Limit, burst int, funcs ...OptionFunc) *RateLimiter {
	opts := NewOptions(funcs...)

	return &RateLimiter{
		rate:        rate,
		burst:       burst,
		idleTimeout: opts.IdleTimeout,
		now:         opts.Clock,
	}
}
