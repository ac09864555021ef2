package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"meditrack-http-service/internal/error/code"
	"meditrack-http-service/internal/error/response"
)

// TokenBucket 简单的令牌桶限流器
type TokenBucket struct {
	rate       float64   // 每秒填充的令牌数
	capacity   int       // 桶的容量
	tokens     float64   // 当前令牌数
	lastRefill time.Time // 上次填充时间
	mu         sync.Mutex
}

// NewTokenBucket 创建新的令牌桶限流器
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// Allow 尝试获取令牌
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

// IPRateLimiter 按客户端IP限流，每个中间件实例维护自己的桶
func IPRateLimiter(rate float64, burst int) gin.HandlerFunc {
	var (
		limiters   = make(map[string]*TokenBucket)
		limitersMu sync.Mutex
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		limitersMu.Lock()
		limiter, ok := limiters[ip]
		if !ok {
			limiter = NewTokenBucket(rate, burst)
			limiters[ip] = limiter
		}
		limitersMu.Unlock()

		if !limiter.Allow() {
			response.FailWithMessage(c, code.ErrTooManyRequests, code.GetMessage(code.ErrTooManyRequests))
			c.Abort()
			return
		}
		c.Next()
	}
}

// PathRateLimiter 按请求路径限流，每个中间件实例维护自己的桶
func PathRateLimiter(rate float64, burst int) gin.HandlerFunc {
	var (
		limiters   = make(map[string]*TokenBucket)
		limitersMu sync.Mutex
	)

	return func(c *gin.Context) {
		path := c.FullPath()

		limitersMu.Lock()
		limiter, ok := limiters[path]
		if !ok {
			limiter = NewTokenBucket(rate, burst)
			limiters[path] = limiter
		}
		limitersMu.Unlock()

		if !limiter.Allow() {
			response.FailWithMessage(c, code.ErrTooManyRequests, code.GetMessage(code.ErrTooManyRequests))
			c.Abort()
			return
		}
		c.Next()
	}
}
