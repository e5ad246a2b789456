// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"rentaldesk/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for revoked-token tracking.
	AuthCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client (property listings etc).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitAuthCache initializes the Redis client for revoked-token tracking.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for revoked-token tracking.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

const revokedKeyPrefix = "revoked:"

// RevokeToken records a token hash so middleware rejects it until it would have expired anyway.
func RevokeToken(ctx context.Context, tokenHash string, ttl time.Duration) error {
	return GetAuthCacheClient().Set(ctx, revokedKeyPrefix+tokenHash, "1", ttl).Err()
}

// IsTokenRevoked reports whether the token hash has been revoked.
func IsTokenRevoked(ctx context.Context, tokenHash string) bool {
	n, err := GetAuthCacheClient().Exists(ctx, revokedKeyPrefix+tokenHash).Result()
	if err != nil {
		// Fail open: a cache outage should not lock every session out.
		return false
	}
	return n > 0
}
