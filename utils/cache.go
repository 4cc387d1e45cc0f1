// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"counselhub/config"

	"github.com/go-redis/redis/v8"
)

// HoldCacheClient is the dedicated client for slot-hold bookkeeping.
var HoldCacheClient *redis.Client

// InitHoldCache initializes the Redis client tracking slot-hold expiry windows.
func InitHoldCache() {
	HoldCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisHoldDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := HoldCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Hold Cache): %v", err)
	}
}

// GetHoldCacheClient returns the Redis client for slot-hold bookkeeping.
func GetHoldCacheClient() *redis.Client {
	if HoldCacheClient == nil {
		InitHoldCache()
	}
	return HoldCacheClient
}
