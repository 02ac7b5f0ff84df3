package inventory

import (
	"strings"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// Política de saldo negativo ante una salida mayor que el stock actual.
const (
	NegativeStockAllow  = "allow"  // permite saldo negativo (comportamiento de referencia: backorder)
	NegativeStockReject = "reject" // rechaza la salida con ErrInsufficientStock
)

// ParseMovementKind normaliza el tipo de movimiento. Acepta IN/OUT sin importar mayúsculas
// y los alias "entrada"/"saida".
func ParseMovementKind(s string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case entity.MovementKindIN, "ENTRADA":
		return entity.MovementKindIN, nil
	case entity.MovementKindOUT, "SAIDA", "SAÍDA":
		return entity.MovementKindOUT, nil
	}
	return "", domain.ErrInvalidInput
}

// SignedDelta convierte (tipo, magnitud) en el delta con signo que se aplica al saldo.
// La magnitud debe ser estrictamente positiva.
func SignedDelta(kind string, magnitude int64) (int64, error) {
	if magnitude <= 0 {
		return 0, domain.ErrInvalidInput
	}
	switch kind {
	case entity.MovementKindIN:
		return magnitude, nil
	case entity.MovementKindOUT:
		return -magnitude, nil
	}
	return 0, domain.ErrInvalidInput
}

// BelowMinimum: cantidad estrictamente menor al mínimo (igual NO está por debajo).
func BelowMinimum(quantity, minimumThreshold int64) bool {
	return quantity < minimumThreshold
}

// RestockQuantity sugiere cuánto reponer para llegar al stock ideal (mínimo * 1.5, redondeado hacia arriba).
// Devuelve 0 si el saldo ya alcanza el ideal.
func RestockQuantity(quantity, minimumThreshold int64) int64 {
	ideal := (minimumThreshold*3 + 1) / 2
	if quantity >= ideal {
		return 0
	}
	return ideal - quantity
}

// ValidNegativeStockPolicy indica si la política configurada es conocida.
func ValidNegativeStockPolicy(p string) bool {
	return p == NegativeStockAllow || p == NegativeStockReject
}
