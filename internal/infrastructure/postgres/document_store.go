package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/kondate-api/internal/application/ports"
	"github.com/jhoicas/kondate-api/internal/domain"
)

var _ ports.DocumentStore = (*DocumentStore)(nil)

// Querier subconjunto común de *pgxpool.Pool y pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const schemaDocuments = `
	CREATE TABLE IF NOT EXISTS documents (
		key        TEXT PRIMARY KEY,
		body       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// DocumentStore guarda cada documento como una fila JSONB de la tabla documents.
type DocumentStore struct {
	q Querier
}

// NewDocumentStore construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentStore(q Querier) *DocumentStore {
	return &DocumentStore{q: q}
}

// EnsureSchema crea la tabla documents si no existe.
func (s *DocumentStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, schemaDocuments); err != nil {
		return fmt.Errorf("crear tabla documents: %w", err)
	}
	return nil
}

// Read obtiene el cuerpo del documento.
func (s *DocumentStore) Read(ctx context.Context, key string) ([]byte, error) {
	var body []byte
	err := s.q.QueryRow(ctx, `SELECT body FROM documents WHERE key = $1`, key).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return body, nil
}

// Write inserta o reemplaza el documento completo.
func (s *DocumentStore) Write(ctx context.Context, key string, doc []byte) error {
	query := `
		INSERT INTO documents (key, body, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key)
		DO UPDATE SET body = EXCLUDED.body, updated_at = now()`
	if _, err := s.q.Exec(ctx, query, key, doc); err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}
