// Package cache is an optional Redis response cache. A nil client means
// caching is disabled and every read goes straight to the CSV store.
package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

// InitRedis connects the package client. An empty addr or a failed ping
// leaves the client nil and the service running uncached.
func InitRedis(addr string) {
	if addr == "" {
		log.Println("Redis not configured; serving without cache")
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr: addr,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection warning: %v (continuing without cache)", err)
		Client = nil
	} else {
		log.Println("Redis connected successfully")
	}
}

func GetClient() *redis.Client {
	return Client
}

// PageKey builds the cache key for one page response.
func PageKey(page, username string) string {
	return fmt.Sprintf("page:%s:%s", page, username)
}
