package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

// Store ledger en memoria para desarrollo (STORE_DRIVER=memory) y tests.
// Un único mutex serializa todas las transacciones: no hay concurrencia entre items.
// Los datos se pierden al reiniciar el proceso.
type Store struct {
	mu sync.Mutex

	items     map[string]entity.Item
	users     map[string]entity.User
	movements []entity.Movement
	lastID    int64

	now        func() time.Time
	commitHook func(ctx context.Context) error
}

// Option configura el Store.
type Option func(*Store)

// WithClock reemplaza el reloj usado para timestamps por defecto.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithCommitHook ejecuta hook justo antes de confirmar; si devuelve error la transacción se revierte.
func WithCommitHook(hook func(ctx context.Context) error) Option {
	return func(s *Store) { s.commitHook = hook }
}

// New crea un Store vacío.
func New(opts ...Option) *Store {
	s := &Store{
		items: make(map[string]entity.Item),
		users: make(map[string]entity.User),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Items repositorio de items fuera de transacción.
func (s *Store) Items() repository.ItemRepository { return &itemRepo{s: s} }

// Movements repositorio del ledger fuera de transacción (lecturas).
func (s *Store) Movements() repository.MovementRepository { return &movementRepo{s: s} }

// Users repositorio de responsables.
func (s *Store) Users() repository.UserRepository { return &userRepo{s: s} }

// Analytics devuelve el adaptador de consultas agregadas.
func (s *Store) Analytics() repository.AnalyticsRepository { return &analyticsRepo{s: s} }

// Ping siempre disponible.
func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

// txState acumula las operaciones inversas de la transacción en curso.
type txState struct {
	undo []func()
}

func (t *txState) push(fn func()) { t.undo = append(t.undo, fn) }

func (t *txState) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

// Run ejecuta fn con repositorios atados a la transacción. Cualquier error, pánico o
// cancelación antes del commit deshace todas las mutaciones hechas por fn.
func (s *Store) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	movementRepo repository.MovementRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &txState{}
	committed := false
	defer func() {
		if !committed {
			tx.rollback()
		}
	}()

	if err := fn(&itemRepo{s: s, tx: tx}, &movementRepo{s: s, tx: tx}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	if s.commitHook != nil {
		if err := s.commitHook(ctx); err != nil {
			return fmt.Errorf("commit transaction: %w", err)
		}
	}
	committed = true
	return nil
}

// do ejecuta fn con el estado bloqueado. Dentro de una transacción el lock ya lo tiene Run.
func (s *Store) do(tx *txState, fn func(record func(undo func())) error) error {
	if tx != nil {
		return fn(tx.push)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(func(func()) {})
}
