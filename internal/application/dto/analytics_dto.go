package dto

// ── Query parameters ──────────────────────────────────────────────────────────

// RotationReportRequest parámetros para GET /api/analytics/rotation.
type RotationReportRequest struct {
	StartDate string `query:"start_date"` // YYYY-MM-DD; por defecto primer día del mes actual
	EndDate   string `query:"end_date"`   // YYYY-MM-DD; por defecto hoy
	TopN      int    `query:"top_n"`      // máx items a devolver (default 20, max 200)
}

// ── Totales ───────────────────────────────────────────────────────────────────

// LedgerTotalsDTO agregados del ledger en el período.
type LedgerTotalsDTO struct {
	MovementCount int64 `json:"movement_count"`
	UnitsIn       int64 `json:"units_in"`
	UnitsOut      int64 `json:"units_out"`
	NetChange     int64 `json:"net_change"` // UnitsIn - UnitsOut
	ActiveItems   int64 `json:"active_items"`
	ActiveActors  int64 `json:"active_actors"`
}

// ── Por item ──────────────────────────────────────────────────────────────────

// ItemRotationDTO rotación de un item, ordenado por salidas.
type ItemRotationDTO struct {
	Rank             int     `json:"rank"`
	ItemID           string  `json:"item_id"`
	ItemName         string  `json:"item_name"`
	MovementCount    int64   `json:"movement_count"`
	UnitsIn          int64   `json:"units_in"`
	UnitsOut         int64   `json:"units_out"`
	NetChange        int64   `json:"net_change"`
	OutPct           float64 `json:"out_pct"`            // participación % en las salidas totales
	CumulativeOutPct float64 `json:"cumulative_out_pct"` // acumulado para la curva Pareto
	IsTopPareto      bool    `json:"is_top_pareto"`      // dentro del primer 80% de salidas
}

// ── Respuesta ─────────────────────────────────────────────────────────────────

// PeriodDTO rango de fechas del reporte (YYYY-MM-DD).
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// RotationReportDTO respuesta de GET /api/analytics/rotation.
type RotationReportDTO struct {
	Period      PeriodDTO         `json:"period"`
	Totals      LedgerTotalsDTO   `json:"totals"`
	Ranking     []ItemRotationDTO `json:"ranking"`
	ParetoItems []ItemRotationDTO `json:"pareto_items"`
}
