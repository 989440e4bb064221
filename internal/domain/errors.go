package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrNoInventory          = errors.New("no hay ingredientes registrados")
	ErrGeneration           = errors.New("falló la generación del menú")
	ErrSettlementIncomplete = errors.New("historial registrado pero el inventario no se actualizó")
)
