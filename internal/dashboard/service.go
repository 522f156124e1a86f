package dashboard

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"logiflow/pkg/rodizio"

	"github.com/google/uuid"
)

type InterfaceService interface {
	GetDashboardService(ctx context.Context, companyID uuid.UUID) (Response, error)
}

type Service struct {
	repo InterfaceRepository
	now  func() time.Time
}

func NewDashboardService(repo InterfaceRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (p *Service) GetDashboardService(ctx context.Context, companyID uuid.UUID) (Response, error) {
	response := Response{TrucksRestrictedToday: []RestrictedTruck{}}

	fleet, err := p.repo.GetFleetSummary(ctx, companyID)
	if err != nil {
		return Response{}, fmt.Errorf("fleet summary: %w", err)
	}
	response.ParseFleet(fleet)

	routes, err := p.repo.GetRouteSummary(ctx, companyID)
	if err != nil {
		return Response{}, fmt.Errorf("route summary: %w", err)
	}
	response.ParseRoutes(routes)

	response.PendingOrders, err = p.repo.CountPendingDeliveryOrders(ctx, companyID)
	if err != nil {
		return Response{}, fmt.Errorf("pending orders: %w", err)
	}

	point, err := p.repo.GetDefaultStartingPoint(ctx, companyID)
	switch {
	case err == nil:
		response.DefaultStartingPoint = &StartingPointInfo{ID: point.ID, Name: point.Name, Address: point.Address}
	case !errors.Is(err, sql.ErrNoRows):
		return Response{}, fmt.Errorf("default starting point: %w", err)
	}

	trucks, err := p.repo.ListTrucksByCompany(ctx, companyID)
	if err != nil {
		return Response{}, fmt.Errorf("trucks: %w", err)
	}
	now := p.now()
	for _, t := range trucks {
		if rodizio.IsRestrictedOn(t.Rodizio, now) {
			response.TrucksRestrictedToday = append(response.TrucksRestrictedToday, RestrictedTruck{
				ID:      t.ID,
				Plate:   t.Plate,
				Rodizio: t.Rodizio,
				Status:  t.Status,
			})
		}
	}

	return response, nil
}

func roundOne(v float64) float64 {
	return math.Round(v*10) / 10
}
