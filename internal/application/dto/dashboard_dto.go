package dto

// DashboardSummaryDTO respuesta de GET /api/analytics/dashboard.
// KPIs del ledger del día y del mes en curso, más el Top-5 de items por salidas del mes.
type DashboardSummaryDTO struct {
	Today        LedgerTotalsDTO   `json:"today"`
	Month        LedgerTotalsDTO   `json:"month"`
	TopItems     []ItemRotationDTO `json:"top_items"`
	BelowMinimum int               `json:"below_minimum"` // items con saldo bajo el mínimo ahora
	DateLabel    string            `json:"date_label"`    // ej: "Febrero 2026"
}
