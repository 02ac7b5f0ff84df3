package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del ledger de movimientos sobre PostgreSQL (usable con pool o tx).
// Solo inserta y lee; el trigger trg_movements_immutable rechaza UPDATE/DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Insert agrega la fila del ledger. Sin OccurredAt se usa now() del servidor.
func (r *MovementRepo) Insert(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movements (item_id, actor_id, kind, magnitude, occurred_at, note)
		VALUES ($1, $2, $3, $4, COALESCE($5, now()), $6)
		RETURNING id, occurred_at`
	var occurredAt any
	if !m.OccurredAt.IsZero() {
		occurredAt = m.OccurredAt
	}
	err := r.q.QueryRow(ctx, query, m.ItemID, m.ActorID, m.Kind, m.Magnitude, occurredAt, m.Note).
		Scan(&m.ID, &m.OccurredAt)
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return fmt.Errorf("%w: item o actor inexistente", domain.ErrNotFound)
		case isCheckViolation(err):
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// List devuelve los movimientos decorados con nombre de item y actor,
// ordenados por occurred_at DESC, id DESC.
func (r *MovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.MovementView, error) {
	where, args := movementWhere(f)

	var sb strings.Builder
	sb.WriteString(`
		SELECT m.id, m.item_id, m.actor_id, m.kind, m.magnitude, m.occurred_at, m.note, i.name, u.name
		FROM movements m
		JOIN items i ON i.id = m.item_id
		JOIN users u ON u.id = m.actor_id`)
	sb.WriteString(where)
	sb.WriteString("\n\t\tORDER BY m.occurred_at DESC, m.id DESC")
	if f.Limit > 0 {
		args = append(args, f.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.MovementView, 0)
	for rows.Next() {
		var v entity.MovementView
		if err := rows.Scan(
			&v.ID, &v.ItemID, &v.ActorID, &v.Kind, &v.Magnitude, &v.OccurredAt, &v.Note,
			&v.ItemName, &v.ActorName,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Count cuenta los movimientos que cumplen el filtro, sin paginar.
func (r *MovementRepo) Count(ctx context.Context, f repository.MovementFilter) (int64, error) {
	where, args := movementWhere(f)
	var n int64
	if err := r.q.QueryRow(ctx, "SELECT COUNT(*) FROM movements m"+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}

// CountByItem cuenta los movimientos de un item.
func (r *MovementRepo) CountByItem(ctx context.Context, itemID string) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM movements WHERE item_id = $1`, itemID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}

// movementWhere arma la cláusula WHERE (con sus argumentos posicionales) del filtro.
func movementWhere(f repository.MovementFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.ItemID != "" {
		add("m.item_id = $%d", f.ItemID)
	}
	if f.ActorID != "" {
		add("m.actor_id = $%d", f.ActorID)
	}
	if f.From != nil {
		add("m.occurred_at >= $%d", *f.From)
	}
	if f.To != nil {
		add("m.occurred_at <= $%d", *f.To)
	}
	if len(conds) == 0 {
		return "", args
	}
	return "\n\t\tWHERE " + strings.Join(conds, " AND "), args
}
