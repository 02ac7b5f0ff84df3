package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementKindIN  = "IN"  // entrada
	MovementKindOUT = "OUT" // salida
)

// Movement es un registro inmutable del ledger: una vez confirmado no se actualiza ni se borra.
// Magnitude siempre es positiva; la dirección la da Kind.
type Movement struct {
	ID         int64 // asignado por el store, monótono
	ItemID     string
	ActorID    string
	Kind       string
	Magnitude  int64
	OccurredAt time.Time
	Note       *string
}

// MovementView movimiento decorado con los nombres del item y del responsable (para listados).
type MovementView struct {
	Movement
	ItemName  string
	ActorName string
}
