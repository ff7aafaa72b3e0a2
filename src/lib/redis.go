package lib

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func GetRedisClient() *redis.Client {
	if redisClient != nil {
		return redisClient
	}
	redisHost := os.Getenv("REDIS_HOST")
	opt, err := redis.ParseURL(redisHost)
	if err != nil {
		log.Printf("[redis] Error parsing connection string: %s\n", err.Error())
		return nil
	}
	rdb := redis.NewClient(opt)
	redisClient = rdb
	return rdb
}

// NewRedisClient Replace redis instance with custom client implementation
func NewRedisClient(c *redis.Client) *redis.Client {
	redisClient = c
	return redisClient
}

// CacheGet returns the cached payload for key, or "" on miss or when no
// redis instance is configured.
func CacheGet(key string) string {
	rd := GetRedisClient()
	if rd == nil {
		return ""
	}
	val, err := rd.Get(context.Background(), key).Result()
	if err == redis.Nil {
		return ""
	} else if err != nil {
		log.Printf("[redis] Error retrieving value for %s: %s\n", key, err.Error())
		return ""
	}
	return val
}

func CacheSet(key, value string, ttl time.Duration) {
	rd := GetRedisClient()
	if rd == nil {
		return
	}
	if err := rd.Set(context.Background(), key, value, ttl).Err(); err != nil {
		log.Printf("[redis] Failed to set value for key %s: %s\n", key, err)
	}
}

func CacheDel(key string) {
	rd := GetRedisClient()
	if rd == nil {
		return
	}
	if err := rd.Del(context.Background(), key).Err(); err != nil {
		log.Printf("[redis] Failed to delete key %s: %s\n", key, err)
	}
}
