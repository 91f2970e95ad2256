package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"kaskelas_backend/internals/configs"
)

var RDB *redis.Client

// ConnectRedis opsional: REDIS_ADDR kosong → cache laporan nonaktif.
func ConnectRedis() {
	if configs.RedisAddr == "" {
		log.Println("⚠️ REDIS_ADDR tidak diset, cache laporan dinonaktifkan.")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.GetEnv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := RDB.Ping(ctx).Err(); err != nil {
		log.Printf("❌ Redis tidak bisa dihubungi, cache dimatikan: %v", err)
		RDB = nil
		return
	}
	log.Println("✅ Redis connected.")
}
