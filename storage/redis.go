package storage

import (
	"log"

	"github.com/MDAMANAHMAD/Roam-Heaven/config"

	"github.com/go-redis/redis/v8"
)

var Redis *redis.Client

func InitializeRedis() {
	redisURL := config.C.RedisURL

	Redis = redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: "",
		DB:       0,
	})

	log.Println("Redis initialized with address:", redisURL)
}
