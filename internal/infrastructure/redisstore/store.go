// Package redisstore guarda cada documento como un valor JSON en Redis (<prefix><key>).
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/kondate-api/internal/application/ports"
	"github.com/jhoicas/kondate-api/internal/domain"
	"github.com/jhoicas/kondate-api/pkg/config"
)

var _ ports.DocumentStore = (*Store)(nil)

// Store adaptador sobre un cliente Redis.
type Store struct {
	rdb    redis.UniversalClient
	prefix string
}

// NewClient conecta y verifica con PING.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Address, err)
	}
	return rdb, nil
}

// New construye el store. Los documentos sin expiración.
func New(rdb redis.UniversalClient, prefix string) *Store {
	return &Store{rdb: rdb, prefix: prefix}
}

// Read devuelve el documento; redis.Nil se traduce a domain.ErrNotFound.
func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	val, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

// Write reemplaza el documento.
func (s *Store) Write(ctx context.Context, key string, doc []byte) error {
	if err := s.rdb.Set(ctx, s.prefix+key, doc, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
