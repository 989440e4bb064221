// Package storage elige el backend de documentos según STORE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/kondate-api/internal/application/ports"
	"github.com/jhoicas/kondate-api/internal/infrastructure/filestore"
	"github.com/jhoicas/kondate-api/internal/infrastructure/memstore"
	"github.com/jhoicas/kondate-api/internal/infrastructure/postgres"
	"github.com/jhoicas/kondate-api/internal/infrastructure/redisstore"
	"github.com/jhoicas/kondate-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/kondate-api/pkg/config"
)

// Open abre el store configurado. El cleanup devuelto libera conexiones y nunca es nil.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.DocumentStore, func(), error) {
	noop := func() {}
	log = log.With().Str("driver", cfg.Store.Driver).Logger()

	switch cfg.Store.Driver {
	case config.DriverFile:
		st, err := filestore.New(cfg.Store.Dir)
		if err != nil {
			return nil, noop, err
		}
		log.Info().Str("dir", cfg.Store.Dir).Msg("store de archivos listo")
		return st, noop, nil

	case config.DriverSQLite:
		st, err := sqlite.Open(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		log.Info().Str("path", cfg.Store.SQLitePath).Msg("store sqlite listo")
		return st, func() { _ = st.Close() }, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, noop, fmt.Errorf("conectar postgres: %w", err)
		}
		st := postgres.NewDocumentStore(pool)
		if err := st.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		log.Info().Msg("store postgres listo")
		return st, pool.Close, nil

	case config.DriverRedis:
		rdb, err := redisstore.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		log.Info().Str("addr", cfg.Redis.Address).Msg("store redis listo")
		return redisstore.New(rdb, cfg.Redis.KeyPrefix), func() { _ = rdb.Close() }, nil

	case config.DriverMemory:
		log.Warn().Msg("store en memoria: los datos se pierden al reiniciar")
		return memstore.New(), noop, nil
	}
	return nil, noop, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.Store.Driver)
}
