package dashboard

import (
	"context"
	"database/sql"
	"testing"
	"time"

	db "logiflow/db/sqlc"
	"logiflow/pkg/rodizio"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetFleetSummary(ctx context.Context, companyID uuid.UUID) (db.GetFleetSummaryRow, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(db.GetFleetSummaryRow), args.Error(1)
}

func (m *MockRepository) GetRouteSummary(ctx context.Context, companyID uuid.UUID) (db.GetRouteSummaryRow, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(db.GetRouteSummaryRow), args.Error(1)
}

func (m *MockRepository) CountPendingDeliveryOrders(ctx context.Context, companyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) GetDefaultStartingPoint(ctx context.Context, companyID uuid.UUID) (db.StartingPoint, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(db.StartingPoint), args.Error(1)
}

func (m *MockRepository) ListTrucksByCompany(ctx context.Context, companyID uuid.UUID) ([]db.Truck, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]db.Truck), args.Error(1)
}

// 2024-03-05 is a Tuesday.
var tuesday = time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)

func TestGetDashboardService(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("aggregates fleet, orders and routes", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetFleetSummary", ctx, companyID).
			Return(db.GetFleetSummaryRow{TotalTrucks: 3, FreeTrucks: 2, AllocatedTrucks: 1, AvgOccupancy: 0.2346}, nil)
		repo.On("GetRouteSummary", ctx, companyID).
			Return(db.GetRouteSummaryRow{ActiveRoutes: 1, CompletedRoutes: 4, AvgMinutesPerStop: sql.NullFloat64{Float64: 12.25, Valid: true}}, nil)
		repo.On("CountPendingDeliveryOrders", ctx, companyID).Return(int64(6), nil)
		repo.On("GetDefaultStartingPoint", ctx, companyID).Return(db.StartingPoint{ID: 1, Name: "CD", Address: "Rua X"}, nil)
		repo.On("ListTrucksByCompany", ctx, companyID).Return([]db.Truck{
			{ID: 1, Plate: "ABC1234", Rodizio: rodizio.Tuesday},
			{ID: 2, Plate: "ABC1239", Rodizio: rodizio.Friday},
		}, nil)

		svc := NewDashboardService(repo)
		svc.now = func() time.Time { return tuesday }

		result, err := svc.GetDashboardService(ctx, companyID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), result.TotalTrucks)
		assert.Equal(t, int64(6), result.PendingOrders)
		assert.Equal(t, 23.5, result.AvgOccupancyPct)
		assert.Equal(t, 12.3, result.AvgMinutesPerDelivery)
		require.NotNil(t, result.DefaultStartingPoint)
		assert.Equal(t, "Rua X", result.DefaultStartingPoint.Address)
		require.Len(t, result.TrucksRestrictedToday, 1)
		assert.Equal(t, "ABC1234", result.TrucksRestrictedToday[0].Plate)
	})

	t.Run("empty company uses the placeholder", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetFleetSummary", ctx, companyID).Return(db.GetFleetSummaryRow{}, nil)
		repo.On("GetRouteSummary", ctx, companyID).Return(db.GetRouteSummaryRow{}, nil)
		repo.On("CountPendingDeliveryOrders", ctx, companyID).Return(int64(0), nil)
		repo.On("GetDefaultStartingPoint", ctx, companyID).Return(db.StartingPoint{}, sql.ErrNoRows)
		repo.On("ListTrucksByCompany", ctx, companyID).Return([]db.Truck{}, nil)

		result, err := NewDashboardService(repo).GetDashboardService(ctx, companyID)
		require.NoError(t, err)
		assert.Zero(t, result.AvgOccupancyPct)
		assert.Equal(t, DefaultMinutesPerDelivery, result.AvgMinutesPerDelivery)
		assert.Nil(t, result.DefaultStartingPoint)
		assert.Empty(t, result.TrucksRestrictedToday)
	})
}
