package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// LowStockItem resultado crudo del repositorio para un item por debajo del mínimo.
type LowStockItem struct {
	ItemID           string
	Name             string
	Quantity         int64
	MinimumThreshold int64
}

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	// List devuelve los items ordenados por nombre; search filtra por nombre (sin distinguir mayúsculas).
	List(ctx context.Context, search string) ([]*entity.Item, error)
	// Update edita nombre y mínimo. Nunca toca Quantity.
	Update(ctx context.Context, item *entity.Item) error
	// Delete devuelve domain.ErrConflict si el item tiene movimientos en el ledger.
	Delete(ctx context.Context, id string) error

	// ApplyDelta suma delta al saldo en una única sentencia y devuelve la fila resultante.
	// Debe ejecutarse dentro de la transacción del caller.
	// Errores: domain.ErrNotFound si el item no existe; domain.ErrInsufficientStock si
	// allowNegative es false y el saldo quedaría por debajo de cero.
	ApplyDelta(ctx context.Context, itemID string, delta int64, allowNegative bool) (*entity.Item, error)

	// ListBelowMinimum devuelve los items con quantity < minimum_threshold, mayor déficit primero.
	ListBelowMinimum(ctx context.Context) ([]LowStockItem, error)
}
