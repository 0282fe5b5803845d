package utils

import (
	"context"
	"log"
	"time"

	"cabinkeep/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix namespaces cached access-token hashes.
const AuthCachePrefix = "authToken:"

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching, or
// nil when InitAuthCache has not run. Callers treat a nil client as a
// permanent cache miss; only main initializes the connection.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}

// CacheAccessToken stores the hash of an issued access token so the auth
// middleware can skip signature validation on the hot path. The entry lives
// exactly as long as the token itself. Without a cache this is a no-op.
func CacheAccessToken(ctx context.Context, tokenHash, userID string, ttl time.Duration) error {
	client := GetAuthCacheClient()
	if client == nil {
		return nil
	}
	return client.Set(ctx, AuthCachePrefix+tokenHash, userID, ttl).Err()
}

// LookupAccessToken returns the user ID cached for a token hash, or an empty
// string on a cache miss. Without a cache every lookup misses.
func LookupAccessToken(ctx context.Context, tokenHash string) (string, error) {
	client := GetAuthCacheClient()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, AuthCachePrefix+tokenHash).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}
