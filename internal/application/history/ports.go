package history

import (
	"time"

	"github.com/jhoicas/kondate-api/internal/domain/entity"
)

// Report historial filtrado listo para exportar.
type Report struct {
	Month       string // YYYY-MM o vacío (todo el historial)
	Entries     []entity.HistoryEntry
	Total       int64
	GeneratedAt time.Time
}

// ReportRenderer genera la representación de un Report (PDF, XLSX…).
type ReportRenderer interface {
	Render(r Report) ([]byte, error)
	ContentType() string
	Extension() string
}
