package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*analyticsRepo)(nil)

type analyticsRepo struct {
	s *Store
}

func inPeriod(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func (r *analyticsRepo) GetItemRotation(_ context.Context, start, end time.Time, limit int) ([]repository.ItemRotationResult, error) {
	out := make([]repository.ItemRotationResult, 0)
	err := r.s.do(nil, func(func(func())) error {
		byItem := make(map[string]*repository.ItemRotationResult)
		for _, m := range r.s.movements {
			if !inPeriod(m.OccurredAt, start, end) {
				continue
			}
			res, ok := byItem[m.ItemID]
			if !ok {
				res = &repository.ItemRotationResult{ItemID: m.ItemID, ItemName: r.s.items[m.ItemID].Name}
				byItem[m.ItemID] = res
			}
			res.MovementCount++
			if m.Kind == entity.MovementKindIN {
				res.UnitsIn += m.Magnitude
			} else {
				res.UnitsOut += m.Magnitude
			}
		}
		for _, res := range byItem {
			out = append(out, *res)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UnitsOut != out[j].UnitsOut {
			return out[i].UnitsOut > out[j].UnitsOut
		}
		if out[i].ItemName != out[j].ItemName {
			return out[i].ItemName < out[j].ItemName
		}
		return out[i].ItemID < out[j].ItemID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *analyticsRepo) GetLedgerTotals(_ context.Context, start, end time.Time) (repository.LedgerTotalsResult, error) {
	var t repository.LedgerTotalsResult
	err := r.s.do(nil, func(func(func())) error {
		items := make(map[string]struct{})
		actors := make(map[string]struct{})
		for _, m := range r.s.movements {
			if !inPeriod(m.OccurredAt, start, end) {
				continue
			}
			t.MovementCount++
			if m.Kind == entity.MovementKindIN {
				t.UnitsIn += m.Magnitude
			} else {
				t.UnitsOut += m.Magnitude
			}
			items[m.ItemID] = struct{}{}
			actors[m.ActorID] = struct{}{}
		}
		t.ActiveItems = int64(len(items))
		t.ActiveActors = int64(len(actors))
		return nil
	})
	return t, err
}
