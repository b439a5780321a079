package middleware

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/HenriqueMichelini/craftalism-economy-sub001/pkg/apperror"
	"github.com/HenriqueMichelini/craftalism-economy-sub001/pkg/response"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int // requests per window
	Burst  int // instantaneous burst
	Window time.Duration
}

// DefaultRateLimitRules returns the per-group limits.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"accounts": {Limit: 120, Burst: 20, Window: time.Minute},
		"players":  {Limit: 60, Burst: 10, Window: time.Minute},
		"admin":    {Limit: 10, Burst: 2, Window: time.Minute},
		"stats":    {Limit: 30, Burst: 5, Window: time.Minute},
	}
}

// RateLimitStore holds one token bucket per client identifier. Idle
// buckets expire, so the map stays bounded without a sweeper goroutine.
type RateLimitStore struct {
	mu       sync.Mutex
	limiters *lru.LRU[string, *rate.Limiter]
}

// NewRateLimitStore creates a store that remembers up to maxClients
// buckets, each dropped after idleTTL without refresh.
func NewRateLimitStore(maxClients int, idleTTL time.Duration) *RateLimitStore {
	return &RateLimitStore{
		limiters: lru.NewLRU[string, *rate.Limiter](maxClients, nil, idleTTL),
	}
}

// Allow reports whether the request identified by key fits the rule, and
// how many tokens remain.
func (s *RateLimitStore) Allow(key string, rule RateLimitRule) (allowed bool, remaining int) {
	s.mu.Lock()
	limiter, ok := s.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(float64(rule.Limit)/rule.Window.Seconds()), rule.Burst)
		s.limiters.Add(key, limiter)
	}
	s.mu.Unlock()

	allowed = limiter.Allow()
	remaining = int(limiter.Tokens())
	if remaining < 0 {
		remaining = 0
	}
	return allowed, remaining
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
func RateLimiter(store *RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", c.ClientIP(), group)

		allowed, remaining := store.Allow(key, rule)

		c.Header("X-RateLimit-Limit", strconv.Itoa(rule.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(rule.Window.Seconds())))
			log.Warn().Str("group", group).Str("client_ip", c.ClientIP()).Msg("rate limit exceeded")
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}
