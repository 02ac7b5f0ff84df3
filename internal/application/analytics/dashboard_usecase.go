// Package analytics contiene el resumen del ledger para el tablero de inventario.
package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/usecase"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

const dashboardTopItems = 5 // número de items en el widget del dashboard

// DashboardUseCase genera el resumen del ledger del día y del mes en curso.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	itemRepo      repository.ItemRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, itemRepo repository.ItemRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, itemRepo: itemRepo, now: time.Now}
}

// WithClock fija el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro consultas en paralelo:
//  1. GetLedgerTotals(hoy)
//  2. GetLedgerTotals(mes)
//  3. GetItemRotation(mes, top 5)
//  4. ListBelowMinimum
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var (
		today, month repository.LedgerTotalsResult
		top          []repository.ItemRotationResult
		low          []repository.LowStockItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if today, err = uc.analyticsRepo.GetLedgerTotals(gctx, todayStart, todayEnd); err != nil {
			err = fmt.Errorf("dashboard: totales de hoy: %w", err)
		}
		return err
	})
	g.Go(func() (err error) {
		if month, err = uc.analyticsRepo.GetLedgerTotals(gctx, monthStart, todayEnd); err != nil {
			err = fmt.Errorf("dashboard: totales del mes: %w", err)
		}
		return err
	})
	g.Go(func() (err error) {
		if top, err = uc.analyticsRepo.GetItemRotation(gctx, monthStart, todayEnd, dashboardTopItems); err != nil {
			err = fmt.Errorf("dashboard: top items: %w", err)
		}
		return err
	})
	g.Go(func() (err error) {
		if low, err = uc.itemRepo.ListBelowMinimum(gctx); err != nil {
			err = fmt.Errorf("dashboard: bajo mínimo: %w", err)
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageFailure, err)
	}

	return &dto.DashboardSummaryDTO{
		Today:        usecase.ToLedgerTotalsDTO(today),
		Month:        usecase.ToLedgerTotalsDTO(month),
		TopItems:     usecase.BuildRotationRanking(top, month.UnitsOut),
		BelowMinimum: len(low),
		DateLabel:    monthLabel(now),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
