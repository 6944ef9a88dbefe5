package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wempyhq/wempy-ordering/config"
	"github.com/wempyhq/wempy-ordering/internal/app/model"
	"github.com/wempyhq/wempy-ordering/pkg/logger"
)

type redisCartRepository struct {
	client *redis.Client
	key    string
}

// NewRedisCartRepository returns a cart repository holding the cart
// snapshot under a single Redis key.
func NewRedisCartRepository(client *redis.Client, key string) CartRepository {
	return &redisCartRepository{client: client, key: key}
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	logger.Info("Connecting to Redis", map[string]interface{}{
		"addr": cfg.Addr(),
		"db":   cfg.DB,
	})

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func (r *redisCartRepository) Load() model.Cart {
	data, err := r.client.Get(context.Background(), r.key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("Failed to read persisted cart from Redis, starting empty", map[string]interface{}{
				"key":   r.key,
				"error": err.Error(),
			})
		}
		return model.Cart{}
	}

	var cart model.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		logger.Warn("Persisted cart in Redis is corrupt, starting empty", map[string]interface{}{
			"key":   r.key,
			"error": err.Error(),
		})
		return model.Cart{}
	}
	return cart
}

func (r *redisCartRepository) Save(cart model.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		logger.Error("Failed to serialize cart", err, map[string]interface{}{
			"key": r.key,
		})
		return err
	}

	if err := r.client.Set(context.Background(), r.key, data, 0).Err(); err != nil {
		logger.Error("Failed to persist cart to Redis", err, map[string]interface{}{
			"key": r.key,
		})
		return err
	}

	logger.Debug("Cart persisted to Redis", map[string]interface{}{
		"key":   r.key,
		"lines": len(cart),
	})
	return nil
}
