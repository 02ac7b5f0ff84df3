package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// KardexUseCase arma la tarjeta de kardex en PDF de un item: cabecera con saldo actual
// y el ledger completo del item, más reciente primero.
type KardexUseCase struct {
	itemRepo     repository.ItemRepository
	movementRepo repository.MovementRepository
	pdfGen       KardexPDFGenerator
	now          func() time.Time
}

// NewKardexUseCase construye el caso de uso.
func NewKardexUseCase(itemRepo repository.ItemRepository, movementRepo repository.MovementRepository, pdfGen KardexPDFGenerator) *KardexUseCase {
	return &KardexUseCase{itemRepo: itemRepo, movementRepo: movementRepo, pdfGen: pdfGen, now: time.Now}
}

// GenerateItemCard devuelve el PDF y el nombre de archivo sugerido.
func (uc *KardexUseCase) GenerateItemCard(ctx context.Context, itemID string) ([]byte, string, error) {
	if _, err := uuid.Parse(itemID); err != nil {
		return nil, "", domain.ErrNotFound
	}
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, "", asStorageFailure(err)
	}
	if item == nil {
		return nil, "", domain.ErrNotFound
	}
	movements, err := uc.movementRepo.List(ctx, repository.MovementFilter{ItemID: itemID})
	if err != nil {
		return nil, "", asStorageFailure(err)
	}
	pdf, err := uc.pdfGen.GenerateItemCard(item, movements, uc.now())
	if err != nil {
		return nil, "", fmt.Errorf("generar kardex: %w", err)
	}
	return pdf, fmt.Sprintf("kardex-%s.pdf", item.ID), nil
}
