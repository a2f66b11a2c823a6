package config

import (
	"context"

	"github.com/redis/go-redis/v9"
)

func redisOptions() *redis.Options {
	return &redis.Options{
		Addr:     GetEnv("REDIS_ADDRESS"),
		Password: GetEnv("REDIS_PASSWORD"),
		DB:       0,
	}
}

func InitRedisServer(ctx context.Context) *redis.Client {
	client := redis.NewClient(redisOptions())

	_, err := client.Ping(ctx).Result()
	if err != nil {
		panic(err)
	}

	return client
}
