package inventory_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/stock-ledger-api/internal/infrastructure/memory"
)

// ─── Helpers ──────────────────────────────────────────────────────────────────

type recordingObserver struct {
	mu       sync.Mutex
	recorded []string
	rejected []string
	below    int
}

func (o *recordingObserver) MovementRecorded(kind string, _ int64, belowMinimum bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.recorded = append(o.recorded, kind)
	if belowMinimum {
		o.below++
	}
}

func (o *recordingObserver) MovementRejected(reason string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.rejected = append(o.rejected, reason)
}

type fixture struct {
	store   *memory.Store
	engine  *inventory.BalanceEngine
	obs     *recordingObserver
	itemID  string
	actorID string
}

func newFixture(t *testing.T, qty, minimum int64, policy string, opts ...memory.Option) *fixture {
	t.Helper()
	store := memory.New(opts...)
	obs := &recordingObserver{}
	engine, err := inventory.NewBalanceEngine(store, store.Movements(), inventory.EngineConfig{
		NegativeStock: policy,
		Observer:      obs,
	})
	require.NoError(t, err)

	ctx := context.Background()
	f := &fixture{store: store, engine: engine, obs: obs, itemID: uuid.NewString(), actorID: uuid.NewString()}
	require.NoError(t, store.Items().Create(ctx, &entity.Item{ID: f.itemID, Name: "Proyector", Quantity: qty, MinimumThreshold: minimum}))
	require.NoError(t, store.Users().Create(ctx, &entity.User{ID: f.actorID, Name: "Luis", Email: "luis@example.com"}))
	return f
}

func (f *fixture) quantity(t *testing.T) int64 {
	t.Helper()
	it, err := f.store.Items().GetByID(context.Background(), f.itemID)
	require.NoError(t, err)
	require.NotNil(t, it)
	return it.Quantity
}

func (f *fixture) ledgerLen(t *testing.T) int64 {
	t.Helper()
	n, err := f.store.Movements().CountByItem(context.Background(), f.itemID)
	require.NoError(t, err)
	return n
}

// ─── RecordMovement ───────────────────────────────────────────────────────────

func TestRecordMovement_BelowMinimumScenario(t *testing.T) {
	f := newFixture(t, 10, 5, "")
	ctx := context.Background()

	out, err := f.engine.RecordMovement(ctx, inventory.RecordMovementInput{
		ItemID: f.itemID, ActorID: f.actorID, Kind: "OUT", Magnitude: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.Item.Quantity)
	assert.True(t, out.BelowMinimum)
	assert.Equal(t, entity.MovementKindOUT, out.Movement.Kind)
	assert.Equal(t, int64(8), out.Movement.Magnitude)
	assert.NotZero(t, out.Movement.ID)
	assert.False(t, out.Movement.OccurredAt.IsZero())

	out, err = f.engine.RecordMovement(ctx, inventory.RecordMovementInput{
		ItemID: f.itemID, ActorID: f.actorID, Kind: "in", Magnitude: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), out.Item.Quantity)
	assert.False(t, out.BelowMinimum, "igual al mínimo no está por debajo")

	assert.Equal(t, int64(2), f.ledgerLen(t))
	assert.Equal(t, []string{"OUT", "IN"}, f.obs.recorded)
	assert.Equal(t, 1, f.obs.below)
}

func TestRecordMovement_AcceptsAliasesAndKeepsTimestamp(t *testing.T) {
	f := newFixture(t, 0, 0, "")
	at := time.Date(2026, 1, 15, 9, 30, 0, 0, time.FixedZone("COT", -5*3600))
	note := "  compra proveedor  "

	out, err := f.engine.RecordMovement(context.Background(), inventory.RecordMovementInput{
		ItemID: f.itemID, ActorID: f.actorID, Kind: "entrada", Magnitude: 4, OccurredAt: &at, Note: &note,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementKindIN, out.Movement.Kind)
	assert.True(t, out.Movement.OccurredAt.Equal(at))
	require.NotNil(t, out.Movement.Note)
	assert.Equal(t, "compra proveedor", *out.Movement.Note)
}

func TestRecordMovement_InvalidInput(t *testing.T) {
	f := newFixture(t, 10, 5, "")

	tests := []struct {
		name string
		in   inventory.RecordMovementInput
	}{
		{"magnitud cero", inventory.RecordMovementInput{ItemID: f.itemID, ActorID: f.actorID, Kind: "IN", Magnitude: 0}},
		{"magnitud negativa", inventory.RecordMovementInput{ItemID: f.itemID, ActorID: f.actorID, Kind: "OUT", Magnitude: -2}},
		{"tipo desconocido", inventory.RecordMovementInput{ItemID: f.itemID, ActorID: f.actorID, Kind: "TRANSFER", Magnitude: 1}},
		{"sin item", inventory.RecordMovementInput{ActorID: f.actorID, Kind: "IN", Magnitude: 1}},
		{"sin actor", inventory.RecordMovementInput{ItemID: f.itemID, Kind: "IN", Magnitude: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.engine.RecordMovement(context.Background(), tt.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Equal(t, int64(10), f.quantity(t))
	assert.Zero(t, f.ledgerLen(t))
}

func TestRecordMovement_NotFound(t *testing.T) {
	f := newFixture(t, 10, 5, "")
	ctx := context.Background()

	_, err := f.engine.RecordMovement(ctx, inventory.RecordMovementInput{
		ItemID: uuid.NewString(), ActorID: f.actorID, Kind: "IN", Magnitude: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.engine.RecordMovement(ctx, inventory.RecordMovementInput{
		ItemID: "no-es-uuid", ActorID: f.actorID, Kind: "IN", Magnitude: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Actor inexistente: el saldo ya se ajustó dentro de la tx y debe revertirse.
	_, err = f.engine.RecordMovement(ctx, inventory.RecordMovementInput{
		ItemID: f.itemID, ActorID: uuid.NewString(), Kind: "OUT", Magnitude: 3,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, int64(10), f.quantity(t))
	assert.Zero(t, f.ledgerLen(t))
	assert.Equal(t, []string{"not_found", "not_found", "not_found"}, f.obs.rejected)
}

func TestRecordMovement_NegativeStockPolicy(t *testing.T) {
	t.Run("allow", func(t *testing.T) {
		f := newFixture(t, 2, 0, "allow")
		out, err := f.engine.RecordMovement(context.Background(), inventory.RecordMovementInput{
			ItemID: f.itemID, ActorID: f.actorID, Kind: "OUT", Magnitude: 5,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(-3), out.Item.Quantity)
	})

	t.Run("reject", func(t *testing.T) {
		f := newFixture(t, 2, 0, "reject")
		_, err := f.engine.RecordMovement(context.Background(), inventory.RecordMovementInput{
			ItemID: f.itemID, ActorID: f.actorID, Kind: "OUT", Magnitude: 5,
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		assert.Equal(t, int64(2), f.quantity(t))
		assert.Zero(t, f.ledgerLen(t))

		out, err := f.engine.RecordMovement(context.Background(), inventory.RecordMovementInput{
			ItemID: f.itemID, ActorID: f.actorID, Kind: "OUT", Magnitude: 2,
		})
		require.NoError(t, err)
		assert.Zero(t, out.Item.Quantity)
	})
}

func TestRecordMovement_CommitFailureIsStorageFailure(t *testing.T) {
	cause := errors.New("connection reset")
	f := newFixture(t, 10, 5, "", memory.WithCommitHook(func(context.Context) error { return cause }))

	_, err := f.engine.RecordMovement(context.Background(), inventory.RecordMovementInput{
		ItemID: f.itemID, ActorID: f.actorID, Kind: "IN", Magnitude: 1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageFailure)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, int64(10), f.quantity(t))
	assert.Zero(t, f.ledgerLen(t))
	assert.Equal(t, []string{"storage_failure"}, f.obs.rejected)
}

func TestRecordMovement_CancelledContext(t *testing.T) {
	f := newFixture(t, 10, 5, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.engine.RecordMovement(ctx, inventory.RecordMovementInput{
		ItemID: f.itemID, ActorID: f.actorID, Kind: "IN", Magnitude: 1,
	})
	assert.ErrorIs(t, err, domain.ErrStorageFailure)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(10), f.quantity(t))
}

func TestRecordMovement_ConcurrentCallsLoseNoUpdates(t *testing.T) {
	const calls = 50
	f := newFixture(t, 100, 5, "")

	var g errgroup.Group
	for i := 0; i < calls; i++ {
		kind, magnitude := "IN", int64(i%7+1)
		if i%2 == 1 {
			kind = "OUT"
		}
		g.Go(func() error {
			_, err := f.engine.RecordMovement(context.Background(), inventory.RecordMovementInput{
				ItemID: f.itemID, ActorID: f.actorID, Kind: kind, Magnitude: magnitude,
			})
			return err
		})
	}
	require.NoError(t, g.Wait())

	var want int64 = 100
	for i := 0; i < calls; i++ {
		m := int64(i%7 + 1)
		if i%2 == 1 {
			want -= m
		} else {
			want += m
		}
	}
	assert.Equal(t, want, f.quantity(t))
	assert.Equal(t, int64(calls), f.ledgerLen(t))
}

func TestRecordMovementFromRequest_DefaultsActor(t *testing.T) {
	f := newFixture(t, 1, 3, "")

	out, err := f.engine.RecordMovementFromRequest(context.Background(), f.actorID, dto.RecordMovementRequest{
		ItemID: f.itemID, Kind: "IN", Magnitude: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, f.actorID, out.Movement.ActorID)
	assert.Equal(t, int64(2), out.Item.Quantity)
	assert.True(t, out.Item.BelowMinimum)
	assert.Equal(t, "Proyector", out.Item.Name)
}

func TestNewBalanceEngine_UnknownPolicy(t *testing.T) {
	store := memory.New()
	_, err := inventory.NewBalanceEngine(store, store.Movements(), inventory.EngineConfig{NegativeStock: "maybe"})
	assert.Error(t, err)
}

func TestRecordMovement_BalanceOverflowRejected(t *testing.T) {
	f := newFixture(t, 10, 5, "")

	_, err := f.engine.RecordMovement(context.Background(), inventory.RecordMovementInput{
		ItemID: f.itemID, ActorID: f.actorID, Kind: "IN", Magnitude: math.MaxInt64,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotErrorIs(t, err, domain.ErrStorageFailure)
	assert.Equal(t, int64(10), f.quantity(t))
	assert.Equal(t, int64(0), f.ledgerLen(t))
	assert.Equal(t, []string{"invalid_input"}, f.obs.rejected)
	assert.Empty(t, f.obs.recorded)
}

func TestListMovements_HugeLimit(t *testing.T) {
	f := newFixture(t, 0, 0, "")
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := f.engine.RecordMovement(ctx, inventory.RecordMovementInput{
			ItemID: f.itemID, ActorID: f.actorID, Kind: "IN", Magnitude: 1,
		})
		require.NoError(t, err)
	}

	list, err := f.engine.ListMovements(ctx, repository.MovementFilter{Limit: math.MaxInt, Offset: 1})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

// ─── ListMovements ────────────────────────────────────────────────────────────

func TestListMovements_FreshAndFiltered(t *testing.T) {
	f := newFixture(t, 0, 0, "")
	ctx := context.Background()

	for _, m := range []int64{1, 2, 3} {
		_, err := f.engine.RecordMovement(ctx, inventory.RecordMovementInput{
			ItemID: f.itemID, ActorID: f.actorID, Kind: "IN", Magnitude: m,
		})
		require.NoError(t, err)
	}

	list, err := f.engine.ListMovements(ctx, repository.MovementFilter{ItemID: f.itemID})
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i := 1; i < len(list); i++ {
		prev, cur := list[i-1], list[i]
		assert.False(t, cur.OccurredAt.After(prev.OccurredAt))
		if cur.OccurredAt.Equal(prev.OccurredAt) {
			assert.Less(t, cur.ID, prev.ID)
		}
	}
	assert.Equal(t, "Proyector", list[0].ItemName)
	assert.Equal(t, "Luis", list[0].ActorName)

	// Cada llamada lee de nuevo el store.
	_, err = f.engine.RecordMovement(ctx, inventory.RecordMovementInput{
		ItemID: f.itemID, ActorID: f.actorID, Kind: "OUT", Magnitude: 1,
	})
	require.NoError(t, err)
	list, err = f.engine.ListMovements(ctx, repository.MovementFilter{ItemID: f.itemID})
	require.NoError(t, err)
	assert.Len(t, list, 4)

	other, err := f.engine.ListMovements(ctx, repository.MovementFilter{ItemID: uuid.NewString()})
	require.NoError(t, err)
	assert.Empty(t, other)

	malformed, err := f.engine.ListMovements(ctx, repository.MovementFilter{ItemID: "xyz"})
	require.NoError(t, err)
	assert.Empty(t, malformed)
	n, err := f.engine.CountMovements(ctx, repository.MovementFilter{ItemID: "xyz"})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestListMovements_InvalidFilter(t *testing.T) {
	f := newFixture(t, 0, 0, "")
	from := time.Now()
	to := from.Add(-time.Hour)

	_, err := f.engine.ListMovements(context.Background(), repository.MovementFilter{Limit: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.engine.ListMovements(context.Background(), repository.MovementFilter{From: &from, To: &to})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListMovementsFromQuery_Page(t *testing.T) {
	f := newFixture(t, 0, 0, "")
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := f.engine.RecordMovement(ctx, inventory.RecordMovementInput{
			ItemID: f.itemID, ActorID: f.actorID, Kind: "IN", Magnitude: 1,
		})
		require.NoError(t, err)
	}

	out, err := f.engine.ListMovementsFromQuery(ctx, dto.ListMovementsQuery{ItemID: f.itemID, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 2, out.Page.Limit)
	assert.Equal(t, int64(3), out.Page.Total, "total de filas del filtro, no de la página")
	assert.Equal(t, "Luis", out.Items[0].ActorName)
}
