package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTokenBucketExhaustsAndRefills(t *testing.T) {
	bucket := NewTokenBucket(1000, 3)

	assert.True(t, bucket.Allow())
	assert.True(t, bucket.Allow())
	assert.True(t, bucket.Allow())
	// 桶空后拒绝
	assert.False(t, bucket.Allow())
}

func TestIPRateLimiterRejectsWhenExhausted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(IPRateLimiter(0.001, 2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
