package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, name, quantity, minimum_threshold, created_at, updated_at`

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de items. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	if err := row.Scan(&it.ID, &it.Name, &it.Quantity, &it.MinimumThreshold, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}
	return &it, nil
}

// Create persiste un item nuevo con su saldo inicial.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (id, name, quantity, minimum_threshold, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.Quantity, item.MinimumThreshold, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un item por ID.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	it, err := scanItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// List devuelve los items en orden alfabético; search filtra por subcadena sin distinguir mayúsculas.
func (r *ItemRepo) List(ctx context.Context, search string) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE $1::text = '' OR strpos(lower(name), lower($1::text)) > 0
		ORDER BY lower(name), id`
	rows, err := r.q.Query(ctx, query, search)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// Update edita nombre y mínimo; refresca Quantity y timestamps desde la fila.
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, minimum_threshold = $3, updated_at = now()
		WHERE id = $1
		RETURNING quantity, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, item.ID, item.Name, item.MinimumThreshold).
		Scan(&item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isCheckViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un item. La FK RESTRICT de movements lo impide si tiene ledger.
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ApplyDelta suma delta al saldo en un único UPDATE (lock de fila hasta el commit).
// Con allowNegative=false la condición de saldo no negativo se evalúa en la misma sentencia.
func (r *ItemRepo) ApplyDelta(ctx context.Context, itemID string, delta int64, allowNegative bool) (*entity.Item, error) {
	query := `
		UPDATE items
		SET quantity = quantity + $2, updated_at = now()
		WHERE id = $1 AND ($3::boolean OR quantity + $2 >= 0)
		RETURNING ` + itemColumns
	it, err := scanItem(r.q.QueryRow(ctx, query, itemID, delta, allowNegative))
	if err == nil {
		return it, nil
	}
	if isNumericOutOfRange(err) {
		return nil, fmt.Errorf("%w: el saldo excede el rango permitido", domain.ErrInvalidInput)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("apply delta: %w", err)
	}
	if allowNegative {
		return nil, domain.ErrNotFound
	}

	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM items WHERE id = $1)`, itemID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check item: %w", err)
	}
	if exists {
		return nil, domain.ErrInsufficientStock
	}
	return nil, domain.ErrNotFound
}

// ListBelowMinimum items con quantity < minimum_threshold, mayor déficit primero.
func (r *ItemRepo) ListBelowMinimum(ctx context.Context) ([]repository.LowStockItem, error) {
	query := `
		SELECT id, name, quantity, minimum_threshold
		FROM items
		WHERE quantity < minimum_threshold
		ORDER BY (minimum_threshold - quantity) DESC, lower(name)`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list below minimum: %w", err)
	}
	defer rows.Close()

	list := make([]repository.LowStockItem, 0)
	for rows.Next() {
		var it repository.LowStockItem
		if err := rows.Scan(&it.ItemID, &it.Name, &it.Quantity, &it.MinimumThreshold); err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}
