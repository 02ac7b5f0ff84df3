package entity

import "time"

// Item representa un producto o equipo del inventario con su saldo actual.
// Quantity solo cambia a través del motor de saldos (movimientos); Name y MinimumThreshold
// se editan por separado y no generan registro en el ledger.
type Item struct {
	ID               string
	Name             string
	Quantity         int64
	MinimumThreshold int64 // >= 0
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// BelowMinimum indica si el saldo está estrictamente por debajo del mínimo.
// Se calcula en lectura; nunca se persiste.
func (i *Item) BelowMinimum() bool {
	return i.Quantity < i.MinimumThreshold
}
