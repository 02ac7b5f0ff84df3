package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*itemRepo)(nil)

type itemRepo struct {
	s  *Store
	tx *txState
}

func (r *itemRepo) Create(_ context.Context, item *entity.Item) error {
	if strings.TrimSpace(item.Name) == "" || item.MinimumThreshold < 0 {
		return domain.ErrInvalidInput
	}
	return r.s.do(r.tx, func(record func(func())) error {
		if _, exists := r.s.items[item.ID]; exists {
			return domain.ErrConflict
		}
		r.s.items[item.ID] = *item
		record(func() { delete(r.s.items, item.ID) })
		return nil
	})
}

func (r *itemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	var out *entity.Item
	err := r.s.do(r.tx, func(func(func())) error {
		if it, ok := r.s.items[id]; ok {
			out = &it
		}
		return nil
	})
	return out, err
}

func (r *itemRepo) List(_ context.Context, search string) ([]*entity.Item, error) {
	needle := strings.ToLower(search)
	list := make([]*entity.Item, 0)
	err := r.s.do(r.tx, func(func(func())) error {
		for _, it := range r.s.items {
			if needle != "" && !strings.Contains(strings.ToLower(it.Name), needle) {
				continue
			}
			it := it
			list = append(list, &it)
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool {
		a, b := strings.ToLower(list[i].Name), strings.ToLower(list[j].Name)
		if a != b {
			return a < b
		}
		return list[i].ID < list[j].ID
	})
	return list, err
}

func (r *itemRepo) Update(_ context.Context, item *entity.Item) error {
	if strings.TrimSpace(item.Name) == "" || item.MinimumThreshold < 0 {
		return domain.ErrInvalidInput
	}
	return r.s.do(r.tx, func(record func(func())) error {
		prev, ok := r.s.items[item.ID]
		if !ok {
			return domain.ErrNotFound
		}
		next := prev
		next.Name = item.Name
		next.MinimumThreshold = item.MinimumThreshold
		next.UpdatedAt = r.s.now()
		r.s.items[item.ID] = next
		record(func() { r.s.items[item.ID] = prev })

		item.Quantity = next.Quantity
		item.CreatedAt = next.CreatedAt
		item.UpdatedAt = next.UpdatedAt
		return nil
	})
}

func (r *itemRepo) Delete(_ context.Context, id string) error {
	return r.s.do(r.tx, func(record func(func())) error {
		prev, ok := r.s.items[id]
		if !ok {
			return domain.ErrNotFound
		}
		for _, m := range r.s.movements {
			if m.ItemID == id {
				return domain.ErrConflict
			}
		}
		delete(r.s.items, id)
		record(func() { r.s.items[id] = prev })
		return nil
	})
}

func (r *itemRepo) ApplyDelta(_ context.Context, itemID string, delta int64, allowNegative bool) (*entity.Item, error) {
	var out entity.Item
	err := r.s.do(r.tx, func(record func(func())) error {
		prev, ok := r.s.items[itemID]
		if !ok {
			return domain.ErrNotFound
		}
		if addOverflows(prev.Quantity, delta) {
			return fmt.Errorf("%w: el saldo excede el rango permitido", domain.ErrInvalidInput)
		}
		next := prev
		next.Quantity += delta
		if !allowNegative && next.Quantity < 0 {
			return domain.ErrInsufficientStock
		}
		next.UpdatedAt = r.s.now()
		r.s.items[itemID] = next
		record(func() { r.s.items[itemID] = prev })
		out = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *itemRepo) ListBelowMinimum(_ context.Context) ([]repository.LowStockItem, error) {
	list := make([]repository.LowStockItem, 0)
	err := r.s.do(r.tx, func(func(func())) error {
		for _, it := range r.s.items {
			if it.Quantity < it.MinimumThreshold {
				list = append(list, repository.LowStockItem{
					ItemID:           it.ID,
					Name:             it.Name,
					Quantity:         it.Quantity,
					MinimumThreshold: it.MinimumThreshold,
				})
			}
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool {
		di := list[i].MinimumThreshold - list[i].Quantity
		dj := list[j].MinimumThreshold - list[j].Quantity
		if di != dj {
			return di > dj
		}
		return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
	})
	return list, err
}

// addOverflows indica si q + delta se sale del rango de int64.
func addOverflows(q, delta int64) bool {
	if delta > 0 {
		return q > math.MaxInt64-delta
	}
	return q < math.MinInt64-delta
}
