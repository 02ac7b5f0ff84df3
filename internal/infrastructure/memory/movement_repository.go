package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*movementRepo)(nil)

type movementRepo struct {
	s  *Store
	tx *txState
}

// Insert agrega al final del ledger. Los IDs no se reutilizan aunque la transacción se revierta.
func (r *movementRepo) Insert(_ context.Context, m *entity.Movement) error {
	if m.Magnitude <= 0 || (m.Kind != entity.MovementKindIN && m.Kind != entity.MovementKindOUT) {
		return domain.ErrInvalidInput
	}
	return r.s.do(r.tx, func(record func(func())) error {
		if _, ok := r.s.items[m.ItemID]; !ok {
			return domain.ErrNotFound
		}
		if _, ok := r.s.users[m.ActorID]; !ok {
			return domain.ErrNotFound
		}
		r.s.lastID++
		m.ID = r.s.lastID
		if m.OccurredAt.IsZero() {
			m.OccurredAt = r.s.now()
		}
		row := *m
		if m.Note != nil {
			note := *m.Note
			row.Note = &note
		}
		r.s.movements = append(r.s.movements, row)
		n := len(r.s.movements) - 1
		record(func() { r.s.movements = r.s.movements[:n] })
		return nil
	})
}

func (r *movementRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.MovementView, error) {
	list := make([]*entity.MovementView, 0)
	err := r.s.do(r.tx, func(func(func())) error {
		for _, m := range r.s.movements {
			if !matches(m, f) {
				continue
			}
			if m.Note != nil {
				note := *m.Note
				m.Note = &note
			}
			list = append(list, &entity.MovementView{
				Movement:  m,
				ItemName:  r.s.items[m.ItemID].Name,
				ActorName: r.s.users[m.ActorID].Name,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if !a.OccurredAt.Equal(b.OccurredAt) {
			return a.OccurredAt.After(b.OccurredAt)
		}
		return a.ID > b.ID
	})

	start := min(f.Offset, len(list))
	end := len(list)
	if f.Limit > 0 && f.Limit < end-start {
		end = start + f.Limit
	}
	return list[start:end], nil
}

// Count cuenta los movimientos que cumplen el filtro, sin paginar.
func (r *movementRepo) Count(_ context.Context, f repository.MovementFilter) (int64, error) {
	var n int64
	err := r.s.do(r.tx, func(func(func())) error {
		for _, m := range r.s.movements {
			if matches(m, f) {
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r *movementRepo) CountByItem(_ context.Context, itemID string) (int64, error) {
	var n int64
	err := r.s.do(r.tx, func(func(func())) error {
		for _, m := range r.s.movements {
			if m.ItemID == itemID {
				n++
			}
		}
		return nil
	})
	return n, err
}

func matches(m entity.Movement, f repository.MovementFilter) bool {
	switch {
	case f.ItemID != "" && m.ItemID != f.ItemID:
		return false
	case f.ActorID != "" && m.ActorID != f.ActorID:
		return false
	case f.From != nil && m.OccurredAt.Before(*f.From):
		return false
	case f.To != nil && m.OccurredAt.After(*f.To):
		return false
	}
	return true
}
