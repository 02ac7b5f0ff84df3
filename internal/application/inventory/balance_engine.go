package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/stock-ledger-api/pkg/logger"
)

const maxNoteLength = 1000

// EngineConfig dependencias opcionales del motor.
type EngineConfig struct {
	NegativeStock string // allow (default) | reject
	Observer      MovementObserver
	Logger        *logger.Logger
}

// BalanceEngine registra movimientos de forma transaccional: ajusta el saldo del item
// e inserta la fila inmutable del ledger en el mismo scope; cualquier fallo revierte ambos.
type BalanceEngine struct {
	txRunner      TxRunner
	movementRepo  repository.MovementRepository
	allowNegative bool
	observer      MovementObserver
	log           *logger.Logger
}

// NewBalanceEngine construye el motor. movementRepo se usa solo para lecturas fuera de transacción.
func NewBalanceEngine(txRunner TxRunner, movementRepo repository.MovementRepository, cfg EngineConfig) (*BalanceEngine, error) {
	policy := cfg.NegativeStock
	if policy == "" {
		policy = inventory.NegativeStockAllow
	}
	if !inventory.ValidNegativeStockPolicy(policy) {
		return nil, fmt.Errorf("política de saldo negativo desconocida: %q", policy)
	}
	e := &BalanceEngine{
		txRunner:      txRunner,
		movementRepo:  movementRepo,
		allowNegative: policy == inventory.NegativeStockAllow,
		observer:      cfg.Observer,
		log:           cfg.Logger,
	}
	if e.observer == nil {
		e.observer = nopObserver{}
	}
	if e.log == nil {
		e.log = logger.Nop()
	}
	return e, nil
}

// RecordMovementInput entrada validada para registrar un movimiento.
type RecordMovementInput struct {
	ItemID     string
	ActorID    string
	Kind       string
	Magnitude  int64
	OccurredAt *time.Time // nil = hora del servidor de BD
	Note       *string
}

// RecordMovementResult movimiento persistido y estado del item tras aplicarlo.
type RecordMovementResult struct {
	Movement     *entity.Movement
	Item         *entity.Item
	BelowMinimum bool
}

// RecordMovement valida, abre la transacción, aplica el delta con signo al saldo,
// inserta el movimiento y confirma. Exactamente una mutación de saldo y una fila
// de ledger por llamada exitosa; ninguna en caso de error. No reintenta.
func (e *BalanceEngine) RecordMovement(ctx context.Context, in RecordMovementInput) (*RecordMovementResult, error) {
	mov, delta, err := prepareMovement(in)
	if err != nil {
		e.observer.MovementRejected(rejectReason(err))
		return nil, err
	}

	var updated *entity.Item
	err = e.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, movementRepo repository.MovementRepository) error {
		item, err := itemRepo.ApplyDelta(ctx, mov.ItemID, delta, e.allowNegative)
		if err != nil {
			return err
		}
		if err := movementRepo.Insert(ctx, mov); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		err = asStorageFailure(err)
		e.observer.MovementRejected(rejectReason(err))
		if errors.Is(err, domain.ErrStorageFailure) {
			e.log.Error().Err(err).
				Str("item_id", mov.ItemID).
				Str("kind", mov.Kind).
				Int64("magnitude", mov.Magnitude).
				Msg("fallo registrando movimiento")
		}
		return nil, err
	}

	below := inventory.BelowMinimum(updated.Quantity, updated.MinimumThreshold)
	e.observer.MovementRecorded(mov.Kind, mov.Magnitude, below)
	if below {
		e.log.Warn().
			Str("item_id", updated.ID).
			Str("item", updated.Name).
			Int64("quantity", updated.Quantity).
			Int64("minimum", updated.MinimumThreshold).
			Msg("item por debajo del mínimo")
	}
	return &RecordMovementResult{Movement: mov, Item: updated, BelowMinimum: below}, nil
}

// RecordMovementFromRequest adapta el request HTTP al caso de uso.
// defaultActorID se usa cuando el request no trae actor_id.
func (e *BalanceEngine) RecordMovementFromRequest(ctx context.Context, defaultActorID string, in dto.RecordMovementRequest) (*dto.RecordMovementResponse, error) {
	actorID := strings.TrimSpace(in.ActorID)
	if actorID == "" {
		actorID = defaultActorID
	}
	res, err := e.RecordMovement(ctx, RecordMovementInput{
		ItemID:     in.ItemID,
		ActorID:    actorID,
		Kind:       in.Kind,
		Magnitude:  in.Magnitude,
		OccurredAt: in.OccurredAt,
		Note:       in.Note,
	})
	if err != nil {
		return nil, err
	}
	return &dto.RecordMovementResponse{
		Movement: toMovementResponse(res.Movement),
		Item: dto.MovementItemView{
			ID:               res.Item.ID,
			Name:             res.Item.Name,
			Quantity:         res.Item.Quantity,
			MinimumThreshold: res.Item.MinimumThreshold,
			BelowMinimum:     res.BelowMinimum,
		},
	}, nil
}

// ListMovements devuelve el historial (más reciente primero) leído en cada llamada.
// Filtros por ids que no son UUID devuelven lista vacía: no pueden existir filas.
func (e *BalanceEngine) ListMovements(ctx context.Context, filter repository.MovementFilter) ([]*entity.MovementView, error) {
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, domain.ErrInvalidInput
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, domain.ErrInvalidInput
	}
	if !validOptionalID(filter.ItemID) || !validOptionalID(filter.ActorID) {
		return []*entity.MovementView{}, nil
	}
	views, err := e.movementRepo.List(ctx, filter)
	if err != nil {
		return nil, asStorageFailure(err)
	}
	return views, nil
}

// CountMovements cuenta todos los movimientos que cumplen el filtro, ignorando la paginación.
func (e *BalanceEngine) CountMovements(ctx context.Context, filter repository.MovementFilter) (int64, error) {
	if !validOptionalID(filter.ItemID) || !validOptionalID(filter.ActorID) {
		return 0, nil
	}
	n, err := e.movementRepo.Count(ctx, filter)
	if err != nil {
		return 0, asStorageFailure(err)
	}
	return n, nil
}

// ListMovementsFromQuery adapta los parámetros HTTP y arma la respuesta paginada.
func (e *BalanceEngine) ListMovementsFromQuery(ctx context.Context, q dto.ListMovementsQuery) (*dto.MovementListResponse, error) {
	filter := repository.MovementFilter{
		ItemID:  strings.TrimSpace(q.ItemID),
		ActorID: strings.TrimSpace(q.ActorID),
		From:    q.From,
		To:      q.To,
		Limit:   q.Limit,
		Offset:  q.Offset,
	}
	views, err := e.ListMovements(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := e.CountMovements(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementViewDTO, 0, len(views))
	for _, v := range views {
		out = append(out, toMovementViewDTO(v))
	}
	return &dto.MovementListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total},
	}, nil
}

func prepareMovement(in RecordMovementInput) (*entity.Movement, int64, error) {
	itemID := strings.TrimSpace(in.ItemID)
	actorID := strings.TrimSpace(in.ActorID)
	if itemID == "" || actorID == "" {
		return nil, 0, fmt.Errorf("%w: item_id y actor_id son obligatorios", domain.ErrInvalidInput)
	}
	kind, err := inventory.ParseMovementKind(in.Kind)
	if err != nil {
		return nil, 0, err
	}
	delta, err := inventory.SignedDelta(kind, in.Magnitude)
	if err != nil {
		return nil, 0, err
	}
	note, err := normalizeNote(in.Note)
	if err != nil {
		return nil, 0, err
	}
	if _, err := uuid.Parse(itemID); err != nil {
		return nil, 0, fmt.Errorf("%w: item %s", domain.ErrNotFound, itemID)
	}
	if _, err := uuid.Parse(actorID); err != nil {
		return nil, 0, fmt.Errorf("%w: actor %s", domain.ErrNotFound, actorID)
	}

	mov := &entity.Movement{
		ItemID:    itemID,
		ActorID:   actorID,
		Kind:      kind,
		Magnitude: in.Magnitude,
		Note:      note,
	}
	if in.OccurredAt != nil && !in.OccurredAt.IsZero() {
		mov.OccurredAt = in.OccurredAt.UTC()
	}
	return mov, delta, nil
}

func normalizeNote(note *string) (*string, error) {
	if note == nil {
		return nil, nil
	}
	n := strings.TrimSpace(*note)
	if n == "" {
		return nil, nil
	}
	if len([]rune(n)) > maxNoteLength {
		return nil, fmt.Errorf("%w: nota supera %d caracteres", domain.ErrInvalidInput, maxNoteLength)
	}
	return &n, nil
}

func validOptionalID(id string) bool {
	if id == "" {
		return true
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// asStorageFailure deja pasar los errores de dominio y etiqueta el resto como fallo de almacenamiento.
func asStorageFailure(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrStorageFailure):
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrStorageFailure, err)
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	default:
		return "storage_failure"
	}
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:         m.ID,
		ItemID:     m.ItemID,
		ActorID:    m.ActorID,
		Kind:       m.Kind,
		Magnitude:  m.Magnitude,
		OccurredAt: m.OccurredAt,
		Note:       m.Note,
	}
}

func toMovementViewDTO(v *entity.MovementView) dto.MovementViewDTO {
	return dto.MovementViewDTO{
		MovementID: v.ID,
		ItemID:     v.ItemID,
		ItemName:   v.ItemName,
		ActorID:    v.ActorID,
		ActorName:  v.ActorName,
		Kind:       v.Kind,
		Magnitude:  v.Magnitude,
		Timestamp:  v.OccurredAt,
		Note:       v.Note,
	}
}
