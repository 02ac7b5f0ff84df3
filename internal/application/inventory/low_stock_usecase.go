package inventory

import (
	"context"
	"sort"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// LowStockUseCase genera la lista de reposición: items con cantidad por debajo del mínimo.
type LowStockUseCase struct {
	itemRepo repository.ItemRepository
}

// NewLowStockUseCase construye el caso de uso de reposición.
func NewLowStockUseCase(itemRepo repository.ItemRepository) *LowStockUseCase {
	return &LowStockUseCase{itemRepo: itemRepo}
}

// GenerateLowStockList devuelve los items bajo el mínimo con la cantidad sugerida de
// reposición, ordenados por mayor déficit (desempate por nombre) y con prioridad 1..n.
func (uc *LowStockUseCase) GenerateLowStockList(ctx context.Context) ([]dto.LowStockItemDTO, error) {
	rows, err := uc.itemRepo.ListBelowMinimum(ctx)
	if err != nil {
		return nil, asStorageFailure(err)
	}

	out := make([]dto.LowStockItemDTO, 0, len(rows))
	for _, r := range rows {
		// El repositorio ya filtra, pero el criterio de "por debajo" vive en el dominio.
		if !inventory.BelowMinimum(r.Quantity, r.MinimumThreshold) {
			continue
		}
		out = append(out, dto.LowStockItemDTO{
			ItemID:           r.ItemID,
			Name:             r.Name,
			Quantity:         r.Quantity,
			MinimumThreshold: r.MinimumThreshold,
			Deficit:          r.MinimumThreshold - r.Quantity,
			SuggestedRestock: inventory.RestockQuantity(r.Quantity, r.MinimumThreshold),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Deficit != out[j].Deficit {
			return out[i].Deficit > out[j].Deficit
		}
		return out[i].Name < out[j].Name
	})
	for i := range out {
		out[i].Priority = i + 1
	}
	return out, nil
}
