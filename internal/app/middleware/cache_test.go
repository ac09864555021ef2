package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCacheServesSecondReadAndFlushesOnWrite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(InvalidateOnWrite())

	hits := 0
	r.GET("/items", Cache(CacheConfig{Expiration: time.Minute}), func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"hits": hits})
	})
	r.POST("/items", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	get := func() string {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items", nil))
		return w.Body.String()
	}

	// 第二次读取命中缓存，handler不再执行
	first := get()
	second := get()
	assert.Equal(t, first, second)
	assert.Equal(t, 1, hits)

	// 写请求清空缓存，下一次读取重新执行handler
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/items", nil))
	assert.Equal(t, http.StatusCreated, w.Code)

	third := get()
	assert.NotEqual(t, first, third)
	assert.Equal(t, 2, hits)
}
