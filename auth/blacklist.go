package auth

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Blacklist records revoked tokens until their natural expiry.
type Blacklist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// TokenBlacklist is the process-wide revocation store. main swaps in the
// Redis-backed store when REDIS_ADDR is configured; the in-memory fallback
// is for single-instance runs only and is lost on restart.
var TokenBlacklist Blacklist = NewMemoryBlacklist()

// ConnectRedis wires TokenBlacklist to Redis. Returns false when REDIS_ADDR
// is unset, in which case the in-memory store stays active.
func ConnectRedis() bool {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("⚠️ REDIS_ADDR not set; token revocation is in-memory and will not survive restarts or scale across instances")
		return false
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("❌ Failed to connect Redis: %v", err)
	}
	TokenBlacklist = &RedisBlacklist{client: client}
	log.Println("✅ Redis connected; token revocation is shared")
	return true
}

const blacklistKeyPrefix = "revoked-token:"

type RedisBlacklist struct {
	client *redis.Client
}

func (b *RedisBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired, nothing to store
	}
	return b.client.Set(ctx, blacklistKeyPrefix+token, "1", ttl).Err()
}

func (b *RedisBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := b.client.Exists(ctx, blacklistKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MemoryBlacklist mirrors the Redis store for processes without one.
type MemoryBlacklist struct {
	mu     sync.Mutex
	tokens map[string]time.Time
}

func NewMemoryBlacklist() *MemoryBlacklist {
	return &MemoryBlacklist{tokens: make(map[string]time.Time)}
}

func (b *MemoryBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokens[token] = time.Now().Add(ttl)
	return nil
}

func (b *MemoryBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	expiry, ok := b.tokens[token]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(b.tokens, token)
		return false, nil
	}
	return true, nil
}
