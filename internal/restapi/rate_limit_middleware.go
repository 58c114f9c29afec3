package restapi

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/melendez-dev/transmetro-gtfs/internal/models"
)

// RateLimitMiddleware provides per-client-IP rate limiting.
type RateLimitMiddleware struct {
	limiters  map[string]*rate.Limiter
	mu        sync.Mutex
	rateLimit rate.Limit
	burstSize int
	cleanup   *time.Ticker
}

// NewRateLimitMiddleware creates rate limiting middleware allowing
// ratePerInterval requests per interval per client IP. A negative rate
// disables limiting; zero blocks all requests.
func NewRateLimitMiddleware(ratePerInterval int, interval time.Duration) func(http.Handler) http.Handler {
	var limit rate.Limit
	switch {
	case ratePerInterval < 0:
		limit = rate.Inf
	case ratePerInterval == 0:
		limit = 0
	default:
		limit = rate.Every(interval / time.Duration(ratePerInterval))
	}

	middleware := &RateLimitMiddleware{
		limiters:  make(map[string]*rate.Limiter),
		rateLimit: limit,
		burstSize: ratePerInterval,
		cleanup:   time.NewTicker(5 * time.Minute),
	}
	go middleware.cleanupIdleLimiters()

	return middleware.handler
}

func (rl *RateLimitMiddleware) limiterFor(client string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, ok := rl.limiters[client]; ok {
		return limiter
	}
	limiter := rate.NewLimiter(rl.rateLimit, rl.burstSize)
	rl.limiters[client] = limiter
	return limiter
}

func (rl *RateLimitMiddleware) handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			client = r.RemoteAddr
		}

		if !rl.limiterFor(client).Allow() {
			rl.sendRateLimitExceeded(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimitMiddleware) sendRateLimitExceeded(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", "1")
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.burstSize))
	w.Header().Set("X-RateLimit-Remaining", "0")
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(models.NewErrorResponse("rate limit exceeded, please try again later"))
}

// cleanupIdleLimiters drops limiters with a full token bucket so the map does
// not grow without bound. Idle clients are recreated on their next request.
func (rl *RateLimitMiddleware) cleanupIdleLimiters() {
	for range rl.cleanup.C {
		rl.mu.Lock()
		for client, limiter := range rl.limiters {
			if limiter.Tokens() >= float64(rl.burstSize) {
				delete(rl.limiters, client)
			}
		}
		rl.mu.Unlock()
	}
}
