package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Las capas externas los comparan con errors.Is: los adaptadores pueden envolverlos con %w.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// ErrStorageFailure agrupa fallos del almacenamiento (conexión, commit, constraint, deadlock).
	// La operación no dejó efectos parciales; el caller puede reintentarla completa.
	ErrStorageFailure = errors.New("fallo de almacenamiento")
)
