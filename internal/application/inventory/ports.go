package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a esa tx.
// Si fn devuelve error (o entra en pánico) la transacción se revierte completa.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		movementRepo repository.MovementRepository,
	) error) error
}

// MovementObserver recibe el resultado de cada intento de registro (métricas).
type MovementObserver interface {
	MovementRecorded(kind string, magnitude int64, belowMinimum bool)
	MovementRejected(reason string)
}

// KardexPDFGenerator genera la tarjeta de kardex (item + su ledger) en PDF.
type KardexPDFGenerator interface {
	GenerateItemCard(item *entity.Item, movements []*entity.MovementView, generatedAt time.Time) ([]byte, error)
}

type nopObserver struct{}

func (nopObserver) MovementRecorded(string, int64, bool) {}
func (nopObserver) MovementRejected(string)             {}
