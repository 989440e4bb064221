package ports

// Resultados de una generación de menú.
const (
	MenuResultStructured  = "structured"
	MenuResultFallback    = "fallback"
	MenuResultError       = "error"
	MenuResultNoInventory = "no_inventory"
)

// MetricsRecorder puerto para métricas de negocio.
type MetricsRecorder interface {
	MenuGenerated(result string)
	SettlementApplied(applied, skipped int)
	LedgerMutated(op string)
}

// NopMetrics no registra nada (tests y CLI).
type NopMetrics struct{}

func (NopMetrics) MenuGenerated(string)       {}
func (NopMetrics) SettlementApplied(int, int) {}
func (NopMetrics) LedgerMutated(string)       {}
