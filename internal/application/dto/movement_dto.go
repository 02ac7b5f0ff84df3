package dto

import "time"

// RecordMovementRequest body para POST /api/movements.
// ActorID es opcional: si viene vacío se usa el usuario del token.
type RecordMovementRequest struct {
	ItemID     string     `json:"item_id"`
	ActorID    string     `json:"actor_id,omitempty"`
	Kind       string     `json:"kind"`
	Magnitude  int64      `json:"magnitude"`
	OccurredAt *time.Time `json:"occurred_at,omitempty"`
	Note       *string    `json:"note,omitempty"`
}

// MovementResponse movimiento registrado.
type MovementResponse struct {
	ID         int64     `json:"id"`
	ItemID     string    `json:"item_id"`
	ActorID    string    `json:"actor_id"`
	Kind       string    `json:"kind"`
	Magnitude  int64     `json:"magnitude"`
	OccurredAt time.Time `json:"occurred_at"`
	Note       *string   `json:"note"`
}

// MovementItemView estado del item después del movimiento.
type MovementItemView struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Quantity         int64  `json:"quantity"`
	MinimumThreshold int64  `json:"minimum_threshold"`
	BelowMinimum     bool   `json:"below_minimum"`
}

// RecordMovementResponse salida de POST /api/movements.
type RecordMovementResponse struct {
	Movement MovementResponse `json:"movement"`
	Item     MovementItemView `json:"item"`
}

// ListMovementsQuery parámetros de GET /api/movements.
type ListMovementsQuery struct {
	ItemID  string     `query:"item_id"`
	ActorID string     `query:"actor_id"`
	From    *time.Time `query:"from"`
	To      *time.Time `query:"to"`
	Limit   int        `query:"limit"`
	Offset  int        `query:"offset"`
}

// MovementViewDTO fila del historial de movimientos.
type MovementViewDTO struct {
	MovementID int64     `json:"movement_id"`
	ItemID     string    `json:"item_id"`
	ItemName   string    `json:"item_name"`
	ActorID    string    `json:"actor_id"`
	ActorName  string    `json:"actor_name"`
	Kind       string    `json:"kind"`
	Magnitude  int64     `json:"magnitude"`
	Timestamp  time.Time `json:"timestamp"`
	Note       *string   `json:"note"`
}

// MovementListResponse historial paginado.
type MovementListResponse struct {
	Items []MovementViewDTO `json:"items"`
	Page  PageResponse      `json:"page"`
}
