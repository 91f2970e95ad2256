package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

const cachePrefix = "kaskelas:report:"

// Cache laporan. Semua method aman dipanggil saat Redis tidak tersedia.
type Cache interface {
	Get(ctx context.Context, key string, dst any) bool
	Set(ctx context.Context, key string, v any)
	Invalidate(ctx context.Context)
}

type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisCache: rdb nil → cache mati (Get selalu miss, Set/Invalidate no-op).
func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func (c *RedisCache) enabled() bool { return c != nil && c.rdb != nil }

func (c *RedisCache) Get(ctx context.Context, key string, dst any) bool {
	if !c.enabled() {
		return false
	}
	raw, err := c.rdb.Get(ctx, cachePrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[CACHE] gagal baca %s: %v", key, err)
		}
		return false
	}
	if err := sonic.Unmarshal(raw, dst); err != nil {
		log.Printf("[CACHE] data rusak %s: %v", key, err)
		return false
	}
	return true
}

func (c *RedisCache) Set(ctx context.Context, key string, v any) {
	if !c.enabled() {
		return
	}
	raw, err := sonic.Marshal(v)
	if err != nil {
		log.Printf("[CACHE] gagal encode %s: %v", key, err)
		return
	}
	if err := c.rdb.Set(ctx, cachePrefix+key, raw, c.ttl).Err(); err != nil {
		log.Printf("[CACHE] gagal simpan %s: %v", key, err)
	}
}

// Invalidate menghapus semua key laporan. Dipanggil setiap ada mutasi data kas.
func (c *RedisCache) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}
	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, cachePrefix+"*", 200).Result()
		if err != nil {
			log.Printf("[CACHE] gagal scan: %v", err)
			return
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				log.Printf("[CACHE] gagal hapus: %v", err)
				return
			}
		}
		if next == 0 {
			return
		}
		cursor = next
	}
}

type noCache struct{}

func (noCache) Get(context.Context, string, any) bool { return false }
func (noCache) Set(context.Context, string, any)      {}
func (noCache) Invalidate(context.Context)            {}
