// Package metrics implementa ports.MetricsRecorder y las métricas HTTP con Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/kondate-api/internal/application/ports"
)

var _ ports.MetricsRecorder = (*Prometheus)(nil)

const namespace = "kondate"

// Prometheus colectores de negocio y HTTP sobre un registry propio.
type Prometheus struct {
	reg *prometheus.Registry

	menus           *prometheus.CounterVec
	settlements     prometheus.Counter
	settlementLines *prometheus.CounterVec
	ledgerMutations *prometheus.CounterVec
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New registra los colectores (incluye métricas de proceso y runtime de Go).
func New() *Prometheus {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Prometheus{
		reg: reg,
		menus: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "menu_generations_total",
			Help:      "Generaciones de menú por resultado (structured, fallback, error, no_inventory).",
		}, []string{"result"}),
		settlements: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_total",
			Help:      "Comidas confirmadas y liquidadas contra el ledger.",
		}),
		settlementLines: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlement_lines_total",
			Help:      "Ingredientes de platos confirmados, aplicados u omitidos.",
		}, []string{"outcome"}),
		ledgerMutations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_mutations_total",
			Help:      "Altas y bajas en el ledger de ingredientes.",
		}, []string{"op"}),
		requestCount: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Peticiones HTTP por método, ruta y status.",
		}, []string{"method", "route", "status"}),
		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latencia de las peticiones HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// MenuGenerated cuenta una generación por resultado.
func (p *Prometheus) MenuGenerated(result string) {
	p.menus.WithLabelValues(result).Inc()
}

// SettlementApplied cuenta una liquidación y sus líneas.
func (p *Prometheus) SettlementApplied(applied, skipped int) {
	p.settlements.Inc()
	p.settlementLines.WithLabelValues("applied").Add(float64(applied))
	p.settlementLines.WithLabelValues("skipped").Add(float64(skipped))
}

// LedgerMutated cuenta una mutación del ledger.
func (p *Prometheus) LedgerMutated(op string) {
	p.ledgerMutations.WithLabelValues(op).Inc()
}

// ObserveRequest registra una petición HTTP terminada.
func (p *Prometheus) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	p.requestCount.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler expone el registry en formato de texto de Prometheus.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{Registry: p.reg})
}

// Registry acceso directo (tests).
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.reg
}
