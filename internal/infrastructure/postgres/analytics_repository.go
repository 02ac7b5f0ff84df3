package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura agregadas sobre el ledger.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetItemRotation agrupa entradas y salidas por item en el período.
func (r *AnalyticsRepo) GetItemRotation(ctx context.Context, start, end time.Time, limit int) ([]repository.ItemRotationResult, error) {
	const query = `
	SELECT
	    i.id,
	    i.name,
	    COUNT(*)                                                     AS movement_count,
	    COALESCE(SUM(m.magnitude) FILTER (WHERE m.kind = 'IN'), 0)::bigint   AS units_in,
	    COALESCE(SUM(m.magnitude) FILTER (WHERE m.kind = 'OUT'), 0)::bigint  AS units_out
	FROM movements m
	JOIN items i ON i.id = m.item_id
	WHERE m.occurred_at BETWEEN $1 AND $2
	GROUP BY i.id, i.name
	ORDER BY units_out DESC, i.name ASC, i.id ASC
	LIMIT NULLIF($3, 0)`

	if limit < 0 {
		limit = 0
	}
	rows, err := r.q.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("item rotation: %w", err)
	}
	defer rows.Close()

	out := make([]repository.ItemRotationResult, 0)
	for rows.Next() {
		var res repository.ItemRotationResult
		if err := rows.Scan(&res.ItemID, &res.ItemName, &res.MovementCount, &res.UnitsIn, &res.UnitsOut); err != nil {
			return nil, fmt.Errorf("scan item rotation: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// GetLedgerTotals agrega movimientos, unidades e items/responsables activos del período.
func (r *AnalyticsRepo) GetLedgerTotals(ctx context.Context, start, end time.Time) (repository.LedgerTotalsResult, error) {
	const query = `
	SELECT
	    COUNT(*),
	    COALESCE(SUM(magnitude) FILTER (WHERE kind = 'IN'), 0)::bigint,
	    COALESCE(SUM(magnitude) FILTER (WHERE kind = 'OUT'), 0)::bigint,
	    COUNT(DISTINCT item_id),
	    COUNT(DISTINCT actor_id)
	FROM movements
	WHERE occurred_at BETWEEN $1 AND $2`

	var t repository.LedgerTotalsResult
	err := r.q.QueryRow(ctx, query, start, end).
		Scan(&t.MovementCount, &t.UnitsIn, &t.UnitsOut, &t.ActiveItems, &t.ActiveActors)
	if err != nil {
		return repository.LedgerTotalsResult{}, fmt.Errorf("ledger totals: %w", err)
	}
	return t, nil
}
