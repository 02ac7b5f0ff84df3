package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

const (
	defaultTopN     = 20
	maxTopN         = 200
	paretoThreshold = 80.0 // el top de items que concentra ~80% de las salidas
)

// AnalyticsUseCase orquesta las consultas de rotación del ledger:
//   - Totales del período.
//   - Ranking de items por unidades salidas con análisis Pareto.
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(analyticsRepo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// WithClock fija el reloj usado para los períodos por defecto (tests).
func (uc *AnalyticsUseCase) WithClock(now func() time.Time) *AnalyticsUseCase {
	uc.now = now
	return uc
}

// GetRotationReport genera el reporte de rotación para un período.
func (uc *AnalyticsUseCase) GetRotationReport(ctx context.Context, req dto.RotationReportRequest) (*dto.RotationReportDTO, error) {
	start, end, err := ParsePeriod(req.StartDate, req.EndDate, uc.now())
	if err != nil {
		return nil, err
	}
	topN := req.TopN
	if topN <= 0 {
		topN = defaultTopN
	}
	if topN > maxTopN {
		topN = maxTopN
	}

	var (
		totals repository.LedgerTotalsResult
		rows   []repository.ItemRotationResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if totals, err = uc.analyticsRepo.GetLedgerTotals(gctx, start, end); err != nil {
			return fmt.Errorf("analytics: totales: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if rows, err = uc.analyticsRepo.GetItemRotation(gctx, start, end, topN); err != nil {
			return fmt.Errorf("analytics: rotación: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageFailure, err)
	}

	ranking := BuildRotationRanking(rows, totals.UnitsOut)
	pareto := make([]dto.ItemRotationDTO, 0)
	for _, r := range ranking {
		if r.IsTopPareto {
			pareto = append(pareto, r)
		}
	}

	return &dto.RotationReportDTO{
		Period: dto.PeriodDTO{
			StartDate: start.Format("2006-01-02"),
			EndDate:   end.Format("2006-01-02"),
		},
		Totals:      ToLedgerTotalsDTO(totals),
		Ranking:     ranking,
		ParetoItems: pareto,
	}, nil
}

// ToLedgerTotalsDTO convierte los totales crudos en DTO.
func ToLedgerTotalsDTO(t repository.LedgerTotalsResult) dto.LedgerTotalsDTO {
	return dto.LedgerTotalsDTO{
		MovementCount: t.MovementCount,
		UnitsIn:       t.UnitsIn,
		UnitsOut:      t.UnitsOut,
		NetChange:     t.UnitsIn - t.UnitsOut,
		ActiveItems:   t.ActiveItems,
		ActiveActors:  t.ActiveActors,
	}
}

// BuildRotationRanking enriquece las filas con:
//   - Rank (posición ordinal por salidas descendente).
//   - OutPct respecto de totalOut (salidas de todo el período, no solo del top).
//   - CumulativeOutPct e IsTopPareto: verdadero mientras el acumulado no supere el 80%.
//
// El primer item siempre cuenta como Pareto; items sin salidas nunca.
func BuildRotationRanking(rows []repository.ItemRotationResult, totalOut int64) []dto.ItemRotationDTO {
	ranking := make([]dto.ItemRotationDTO, 0, len(rows))
	var cumulative float64
	for i, r := range rows {
		var outPct float64
		if totalOut > 0 {
			outPct = float64(r.UnitsOut) * 100 / float64(totalOut)
		}
		cumulative += outPct
		ranking = append(ranking, dto.ItemRotationDTO{
			Rank:             i + 1,
			ItemID:           r.ItemID,
			ItemName:         r.ItemName,
			MovementCount:    r.MovementCount,
			UnitsIn:          r.UnitsIn,
			UnitsOut:         r.UnitsOut,
			NetChange:        r.UnitsIn - r.UnitsOut,
			OutPct:           round2(outPct),
			CumulativeOutPct: round2(cumulative),
			IsTopPareto:      r.UnitsOut > 0 && (i == 0 || round2(cumulative) <= paretoThreshold),
		})
	}
	return ranking
}

// ParsePeriod convierte fechas YYYY-MM-DD en un rango inclusivo; aplica valores por defecto si están vacías.
// Sin inicio: primer día del mes de now. Sin fin: now.
func ParsePeriod(startStr, endStr string, now time.Time) (start, end time.Time, err error) {
	if endStr == "" {
		end = now
	} else {
		end, err = time.ParseInLocation("2006-01-02", endStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date inválido", domain.ErrInvalidInput)
		}
		end = end.Add(24*time.Hour - time.Nanosecond) // inclusive hasta el final del día
	}

	if startStr == "" {
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	} else {
		start, err = time.ParseInLocation("2006-01-02", startStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date inválido", domain.ErrInvalidInput)
		}
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date no puede ser posterior a end_date", domain.ErrInvalidInput)
	}
	return start, end, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
