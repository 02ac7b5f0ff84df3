package repository

import (
	"context"
	"time"
)

// ItemRotationResult resultado crudo de la rotación de un item en un período.
// Lo produce el store; el use case lo convierte en DTO.
type ItemRotationResult struct {
	ItemID        string
	ItemName      string
	MovementCount int64
	UnitsIn       int64
	UnitsOut      int64
}

// LedgerTotalsResult totales del ledger en un período.
type LedgerTotalsResult struct {
	MovementCount int64
	UnitsIn       int64
	UnitsOut      int64
	ActiveItems   int64 // items con al menos un movimiento
	ActiveActors  int64 // responsables con al menos un movimiento
}

// AnalyticsRepository consultas de lectura agregadas sobre el ledger.
// Las implementaciones son read-only. El período es [start, end] inclusive.
type AnalyticsRepository interface {
	// GetItemRotation devuelve los items con movimientos en el período, ordenados por
	// unidades salidas descendente y luego por nombre. limit <= 0 no limita.
	GetItemRotation(ctx context.Context, start, end time.Time, limit int) ([]ItemRotationResult, error)

	// GetLedgerTotals agrega todo el ledger del período.
	GetLedgerTotals(ctx context.Context, start, end time.Time) (LedgerTotalsResult, error)
}
