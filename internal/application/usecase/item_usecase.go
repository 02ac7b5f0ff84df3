package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

const maxItemNameLength = 200

// ItemUseCase casos de uso CRUD para items. Quantity solo cambia vía movimientos;
// aquí se fija el saldo inicial y se editan nombre y mínimo.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create registra un item con su saldo inicial.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	name, err := normalizeItemName(in.Name)
	if err != nil {
		return nil, err
	}
	if in.Quantity < 0 || in.MinimumThreshold < 0 {
		return nil, fmt.Errorf("%w: cantidad y mínimo deben ser >= 0", domain.ErrInvalidInput)
	}
	now := time.Now().UTC()
	item := &entity.Item{
		ID:               uuid.New().String(),
		Name:             name,
		Quantity:         in.Quantity,
		MinimumThreshold: in.MinimumThreshold,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un item por ID.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista items en orden alfabético; q filtra por nombre.
func (uc *ItemUseCase) List(ctx context.Context, q string) (*dto.ItemListResponse, error) {
	list, err := uc.repo.List(ctx, strings.TrimSpace(q))
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{Items: items, Total: len(items)}, nil
}

// Update edita nombre y/o mínimo. No genera movimiento ni toca el saldo.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name, err := normalizeItemName(*in.Name)
		if err != nil {
			return nil, err
		}
		item.Name = name
	}
	if in.MinimumThreshold != nil {
		if *in.MinimumThreshold < 0 {
			return nil, fmt.Errorf("%w: el mínimo debe ser >= 0", domain.ErrInvalidInput)
		}
		item.MinimumThreshold = *in.MinimumThreshold
	}
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un item. Falla con domain.ErrConflict si tiene movimientos.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ItemUseCase) find(ctx context.Context, id string) (*entity.Item, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func normalizeItemName(s string) (string, error) {
	name := strings.TrimSpace(s)
	if name == "" {
		return "", fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if len([]rune(name)) > maxItemNameLength {
		return "", fmt.Errorf("%w: el nombre supera %d caracteres", domain.ErrInvalidInput, maxItemNameLength)
	}
	return name, nil
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:               it.ID,
		Name:             it.Name,
		Quantity:         it.Quantity,
		MinimumThreshold: it.MinimumThreshold,
		BelowMinimum:     it.BelowMinimum(),
		CreatedAt:        it.CreatedAt,
		UpdatedAt:        it.UpdatedAt,
	}
}
