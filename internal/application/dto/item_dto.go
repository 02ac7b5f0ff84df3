package dto

import "time"

// CreateItemRequest entrada para registrar un item. Quantity es el saldo inicial.
type CreateItemRequest struct {
	Name             string `json:"name" validate:"required,min=1,max=200"`
	Quantity         int64  `json:"quantity" validate:"min=0"`
	MinimumThreshold int64  `json:"minimum_threshold" validate:"min=0"`
}

// UpdateItemRequest entrada para editar un item (sin Quantity: el saldo solo cambia vía movimientos).
type UpdateItemRequest struct {
	Name             *string `json:"name" validate:"omitempty,min=1,max=200"`
	MinimumThreshold *int64  `json:"minimum_threshold" validate:"omitempty,min=0"`
}

// ItemResponse vista de un item con la alerta de mínimo.
type ItemResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Quantity         int64     `json:"quantity"`
	MinimumThreshold int64     `json:"minimum_threshold"`
	BelowMinimum     bool      `json:"below_minimum"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ItemListResponse lista de items.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}

// LowStockItemDTO item por debajo del mínimo con la reposición sugerida.
type LowStockItemDTO struct {
	ItemID           string `json:"item_id"`
	Name             string `json:"name"`
	Quantity         int64  `json:"quantity"`
	MinimumThreshold int64  `json:"minimum_threshold"`
	Deficit          int64  `json:"deficit"`           // MinimumThreshold - Quantity
	SuggestedRestock int64  `json:"suggested_restock"` // hasta MinimumThreshold * 1.5
	Priority         int    `json:"priority"`          // 1 = más urgente
}
