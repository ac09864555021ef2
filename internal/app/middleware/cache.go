package middleware

import (
	"bytes"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// cacheEntry 缓存条目
type cacheEntry struct {
	Status     int
	Content    []byte
	Expiration time.Time
}

// memoryCache 进程内响应缓存
type memoryCache struct {
	sync.RWMutex
	items map[string]cacheEntry
}

var responseCache = &memoryCache{
	items: make(map[string]cacheEntry),
}

// CacheConfig 缓存配置
type CacheConfig struct {
	Expiration time.Duration
}

// cacheWriter 捕获响应体以便写入缓存
type cacheWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Cache 为GET请求缓存响应。只缓存200响应。
func Cache(config CacheConfig) gin.HandlerFunc {
	expiration := config.Expiration
	if expiration <= 0 {
		expiration = 5 * time.Minute
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.RequestURI()

		responseCache.RLock()
		entry, ok := responseCache.items[key]
		responseCache.RUnlock()

		if ok && time.Now().Before(entry.Expiration) {
			c.Data(entry.Status, "application/json; charset=utf-8", entry.Content)
			c.Abort()
			return
		}

		writer := &cacheWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer
		c.Next()

		if writer.Status() == http.StatusOK {
			responseCache.Lock()
			responseCache.items[key] = cacheEntry{
				Status:     writer.Status(),
				Content:    writer.body.Bytes(),
				Expiration: time.Now().Add(expiration),
			}
			responseCache.Unlock()
		}
	}
}

// InvalidateOnWrite 在任何变更请求完成后清空响应缓存，
// 保证变更后的读取立即可见。缓存范围小，整体清空代价可接受。
func InvalidateOnWrite() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method != http.MethodGet {
			responseCache.Lock()
			responseCache.items = make(map[string]cacheEntry)
			responseCache.Unlock()
		}
	}
}
