// Package memstore implementa ports.DocumentStore en memoria (tests y STORE_DRIVER=memory).
package memstore

import (
	"context"
	"sync"

	"github.com/jhoicas/kondate-api/internal/application/ports"
	"github.com/jhoicas/kondate-api/internal/domain"
)

var _ ports.DocumentStore = (*Store)(nil)

// Store mapa clave → documento protegido por mutex.
type Store struct {
	mu   sync.RWMutex
	docs map[string][]byte

	failWrites error
}

// New crea un store vacío.
func New() *Store {
	return &Store{docs: make(map[string][]byte)}
}

// Read devuelve una copia del documento o domain.ErrNotFound.
func (s *Store) Read(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), doc...), nil
}

// Write reemplaza el documento.
func (s *Store) Write(_ context.Context, key string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites != nil {
		return s.failWrites
	}
	s.docs[key] = append([]byte(nil), doc...)
	return nil
}

// SetFailWrites hace que cada Write devuelva err (nil lo desactiva). Simula fallos de persistencia.
func (s *Store) SetFailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrites = err
}
