package ports

import "context"

// Claves de los tres documentos independientes.
const (
	DocIngredients = "ingredients"
	DocConfig      = "config"
	DocHistory     = "history"
)

// DocumentStore almacenamiento durable clave → documento completo.
// Read devuelve domain.ErrNotFound si la clave no existe.
type DocumentStore interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, doc []byte) error
}
