// Package kvstore expõe os contadores com expiração usados pelo limitador de
// requisições. O catálogo não guarda entidades aqui.
package kvstore

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// Client define o contrato que o middleware espera do armazenamento chave-valor.
type Client interface {
	Get(ctx context.Context, key string) (string, error)
	GetInt(ctx context.Context, key string) (int, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Incr(ctx context.Context, key string) (int64, error)
	Delete(ctx context.Context, key string) error
	Close() error
}

// ErrMiss é retornado quando a chave não existe (ou já expirou).
var ErrMiss = redis.Nil

// RedisClient é a implementação de Client sobre Redis.
type RedisClient struct {
	rdb *redis.Client
}

// NewRedisClient conecta ao Redis e confirma a conexão com PING.
func NewRedisClient(addr string) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, errors.Wrapf(err, "ping redis %s", addr)
	}

	return &RedisClient{rdb: rdb}, nil
}

func (c *RedisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMiss
	}
	return val, err
}

// GetInt lê um contador. Chave ausente retorna ErrMiss.
func (c *RedisClient) GetInt(ctx context.Context, key string) (int, error) {
	val, err := c.rdb.Get(ctx, key).Int()
	if errors.Is(err, redis.Nil) {
		return 0, ErrMiss
	}
	return val, err
}

func (c *RedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.rdb.Set(ctx, key, value, expiration).Err()
}

// Incr incrementa o contador sem alterar sua expiração.
func (c *RedisClient) Incr(ctx context.Context, key string) (int64, error) {
	return c.rdb.Incr(ctx, key).Result()
}

func (c *RedisClient) Delete(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}

func (c *RedisClient) Close() error {
	return c.rdb.Close()
}
