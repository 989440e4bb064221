// Package document implementa los repositorios de dominio sobre un ports.DocumentStore.
// Cada documento (ingredients, config, history) tiene su propio mutex, retenido durante
// todo el ciclo leer-modificar-escribir; no hay transacciones entre documentos.
package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/kondate-api/internal/application/ports"
	"github.com/jhoicas/kondate-api/internal/domain"
)

// doc estado compartido de un documento: clave, store y su bloqueo.
type doc struct {
	store ports.DocumentStore
	key   string
	mu    sync.RWMutex
	log   zerolog.Logger
}

func newDoc(store ports.DocumentStore, key string, log zerolog.Logger) *doc {
	return &doc{
		store: store,
		key:   key,
		log:   log.With().Str("document", key).Logger(),
	}
}

// decode lee el documento. found=false cuando la clave no existe (no es error).
// El caller debe tener el bloqueo.
func decode[T any](ctx context.Context, d *doc, dst *T) (found bool, err error) {
	raw, err := d.store.Read(ctx, d.key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("leer documento %s: %w", d.key, err)
	}
	if len(raw) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decodificar documento %s: %w", d.key, err)
	}
	return true, nil
}

// encode serializa y escribe el documento completo. El caller debe tener el bloqueo exclusivo.
func encode(ctx context.Context, d *doc, v any) error {
	raw, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("serializar documento %s: %w", d.key, err)
	}
	if err := d.store.Write(ctx, d.key, raw); err != nil {
		d.log.Error().Err(err).Msg("escritura de documento fallida")
		return fmt.Errorf("escribir documento %s: %w", d.key, err)
	}
	return nil
}
