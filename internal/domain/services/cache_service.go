package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// InterfaceCacheService defines the JSON cache service interface
type InterfaceCacheService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
}

// CacheService handles Redis-backed JSON caching
type CacheService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewCacheService creates a new cache service around an existing client
func NewCacheService(client *redis.Client) InterfaceCacheService {
	return &CacheService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// 1 Set sets a key-value pair with expiration
func (s *CacheService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// 2 Get gets a value by key, redis.Nil表示未命中
func (s *CacheService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// 3 Delete removes a key
func (s *CacheService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}
