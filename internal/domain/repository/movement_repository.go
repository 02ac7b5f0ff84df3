package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// MovementFilter filtros para el listado del ledger. Campos vacíos no filtran.
// Limit == 0 devuelve la secuencia completa.
type MovementFilter struct {
	ItemID  string
	ActorID string
	From    *time.Time
	To      *time.Time
	Limit   int
	Offset  int
}

// MovementRepository define el puerto del ledger de movimientos (append-only).
// No existe operación de actualización ni de borrado.
type MovementRepository interface {
	// Insert agrega un movimiento y completa ID y OccurredAt (ahora del store si viene en cero).
	// Debe ejecutarse dentro de la transacción del caller.
	// domain.ErrNotFound si el item o el actor referenciados no existen.
	Insert(ctx context.Context, movement *entity.Movement) error

	// List devuelve los movimientos ordenados por fecha descendente y, a igual fecha, por ID descendente.
	List(ctx context.Context, filter MovementFilter) ([]*entity.MovementView, error)

	// Count cuenta los movimientos que cumplen el filtro; ignora Limit y Offset.
	Count(ctx context.Context, filter MovementFilter) (int64, error)

	// CountByItem cuenta los movimientos de un item.
	CountByItem(ctx context.Context, itemID string) (int64, error)
}
