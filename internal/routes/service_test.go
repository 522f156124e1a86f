package routes

import (
	"context"
	"database/sql"
	"testing"
	"time"

	db "logiflow/db/sqlc"
	"logiflow/internal/localstore"
	"logiflow/pkg/maps"
	"logiflow/pkg/rodizio"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListDeliveryOrdersByIDs(ctx context.Context, arg db.ListDeliveryOrdersByIDsParams) ([]db.DeliveryOrder, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).([]db.DeliveryOrder), args.Error(1)
}

func (m *MockRepository) ListFreeTrucksByCapacity(ctx context.Context, arg db.ListFreeTrucksByCapacityParams) ([]db.Truck, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).([]db.Truck), args.Error(1)
}

func (m *MockRepository) GetTruckByID(ctx context.Context, arg db.GetTruckByIDParams) (db.Truck, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Truck), args.Error(1)
}

func (m *MockRepository) GetStartingPointByID(ctx context.Context, arg db.GetStartingPointByIDParams) (db.StartingPoint, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.StartingPoint), args.Error(1)
}

func (m *MockRepository) GetDefaultStartingPoint(ctx context.Context, companyID uuid.UUID) (db.StartingPoint, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(db.StartingPoint), args.Error(1)
}

func (m *MockRepository) ConfirmRoute(ctx context.Context, arg ConfirmRouteTx) (db.Route, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Route), args.Error(1)
}

func (m *MockRepository) CompleteRoute(ctx context.Context, route db.Route) (db.Route, error) {
	args := m.Called(ctx, route)
	return args.Get(0).(db.Route), args.Error(1)
}

func (m *MockRepository) GetRouteByID(ctx context.Context, arg db.GetRouteByIDParams) (db.Route, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Route), args.Error(1)
}

func (m *MockRepository) ListRoutes(ctx context.Context, arg db.ListRoutesParams) ([]db.Route, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).([]db.Route), args.Error(1)
}

func (m *MockRepository) ListRouteStops(ctx context.Context, routeID int64) ([]db.ListRouteStopsRow, error) {
	args := m.Called(ctx, routeID)
	return args.Get(0).([]db.ListRouteStopsRow), args.Error(1)
}

type stubDirections struct {
	origin string
	stops  []string
	result maps.Result
}

func (s *stubDirections) Optimize(_ context.Context, origin string, stops []string) (maps.Result, error) {
	s.origin = origin
	s.stops = stops
	return s.result, nil
}

type recordedEvents struct {
	history  []localstore.HistoryEvent
	tracking []localstore.TrackingInfo
}

func (r *recordedEvents) UpsertTracking(_ context.Context, arg localstore.TrackingInfo) error {
	r.tracking = append(r.tracking, arg)
	return nil
}

func (r *recordedEvents) UpsertHistory(_ context.Context, arg localstore.HistoryEvent) error {
	r.history = append(r.history, arg)
	return nil
}

type broadcast struct {
	companyID string
	eventType string
}

type recordingNotifier struct {
	sent []broadcast
}

func (n *recordingNotifier) Broadcast(companyID string, eventType string, _ any) {
	n.sent = append(n.sent, broadcast{companyID, eventType})
}

// 2024-03-04 is a Monday.
var monday = time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

type fixture struct {
	repo       *MockRepository
	directions *stubDirections
	events     *recordedEvents
	notifier   *recordingNotifier
	svc        *Service
}

func newFixture() *fixture {
	f := &fixture{
		repo:       new(MockRepository),
		directions: &stubDirections{},
		events:     &recordedEvents{},
		notifier:   &recordingNotifier{},
	}
	f.svc = NewRoutesService(f.repo, f.directions, f.events, f.notifier)
	f.svc.now = func() time.Time { return monday }
	return f
}

func pendingOrders() []db.DeliveryOrder {
	return []db.DeliveryOrder{
		{ID: 1, Address: "Rua A, 1", Volume: 3, Status: "pending"},
		{ID: 2, Address: "Rua B, 2", Volume: 4, Status: "pending"},
	}
}

func TestSuggestTruckService(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	ordersKey := db.ListDeliveryOrdersByIDsParams{CompanyID: companyID, Ids: []int64{1, 2}}

	t.Run("smallest free truck that fits", func(t *testing.T) {
		f := newFixture()
		f.repo.On("ListDeliveryOrdersByIDs", ctx, ordersKey).Return(pendingOrders(), nil)
		f.repo.On("ListFreeTrucksByCapacity", ctx, db.ListFreeTrucksByCapacityParams{CompanyID: companyID, Capacity: 7}).
			Return([]db.Truck{
				{ID: 3, Capacity: 20, Status: truckFree, MaxWeight: 1000, Rodizio: rodizio.Friday},
				{ID: 4, Capacity: 8, Status: truckFree, MaxWeight: 0, Rodizio: rodizio.Monday},
			}, nil)

		result, err := f.svc.SuggestTruckService(ctx, SuggestTruckDto{
			Request:   SuggestTruckRequest{OrderIDs: []int64{1, 2, 2}},
			CompanyID: companyID,
		})
		require.NoError(t, err)
		require.NotNil(t, result.Truck)
		assert.Equal(t, int64(4), result.Truck.ID)
		assert.Equal(t, 7.0, result.TotalVolume)
		assert.ElementsMatch(t, []string{WarningRodizioToday, WarningMaxWeightUnknown}, result.Warnings)
	})

	t.Run("manual truck too small", func(t *testing.T) {
		f := newFixture()
		truckID := int64(5)
		f.repo.On("ListDeliveryOrdersByIDs", ctx, ordersKey).Return(pendingOrders(), nil)
		f.repo.On("GetTruckByID", ctx, db.GetTruckByIDParams{ID: 5, CompanyID: companyID}).
			Return(db.Truck{ID: 5, Capacity: 5, Status: truckFree, MaxWeight: 500, Rodizio: rodizio.Friday}, nil)

		result, err := f.svc.SuggestTruckService(ctx, SuggestTruckDto{
			Request:   SuggestTruckRequest{OrderIDs: []int64{1, 2}, TruckID: &truckID},
			CompanyID: companyID,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{WarningCapacityExceeded}, result.Warnings)
		f.repo.AssertNotCalled(t, "ListFreeTrucksByCapacity", mock.Anything, mock.Anything)
	})

	t.Run("no truck available", func(t *testing.T) {
		f := newFixture()
		f.repo.On("ListDeliveryOrdersByIDs", ctx, ordersKey).Return(pendingOrders(), nil)
		f.repo.On("ListFreeTrucksByCapacity", ctx, mock.Anything).Return([]db.Truck{}, nil)

		result, err := f.svc.SuggestTruckService(ctx, SuggestTruckDto{
			Request:   SuggestTruckRequest{OrderIDs: []int64{1, 2}},
			CompanyID: companyID,
		})
		require.NoError(t, err)
		assert.Nil(t, result.Truck)
		assert.Equal(t, []string{WarningNoTruckAvailable}, result.Warnings)
	})

	t.Run("unknown order", func(t *testing.T) {
		f := newFixture()
		f.repo.On("ListDeliveryOrdersByIDs", ctx, ordersKey).Return(pendingOrders()[:1], nil)

		_, err := f.svc.SuggestTruckService(ctx, SuggestTruckDto{
			Request:   SuggestTruckRequest{OrderIDs: []int64{1, 2}},
			CompanyID: companyID,
		})
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("empty order list", func(t *testing.T) {
		_, err := newFixture().svc.SuggestTruckService(ctx, SuggestTruckDto{CompanyID: companyID})
		assert.ErrorIs(t, err, ErrInvalidRoute)
	})
}

func TestConfirmRouteService(t *testing.T) {
	ctx := context.Background()
	companyID, userID := uuid.New(), uuid.New()
	ordersKey := db.ListDeliveryOrdersByIDsParams{CompanyID: companyID, Ids: []int64{1, 2}}

	t.Run("allocates best fit truck in optimized order", func(t *testing.T) {
		f := newFixture()
		f.directions.result = maps.Result{Order: []int{1, 0}, DistanceMeters: 12340, DurationSeconds: 1800, Polyline: "abc", Source: maps.SourceGoogle}
		f.repo.On("ListDeliveryOrdersByIDs", ctx, ordersKey).Return(pendingOrders(), nil)
		f.repo.On("ListFreeTrucksByCapacity", ctx, mock.Anything).
			Return([]db.Truck{{ID: 9, Capacity: 10, Status: truckFree, MaxWeight: 800, Rodizio: rodizio.Friday}}, nil)
		f.repo.On("GetDefaultStartingPoint", ctx, companyID).Return(db.StartingPoint{Address: "Depósito Central"}, nil)
		f.repo.On("ConfirmRoute", ctx, mock.MatchedBy(func(arg ConfirmRouteTx) bool {
			return assert.ObjectsAreEqual([]int64{2, 1}, arg.OrderIDs) &&
				arg.Route.TruckID.Int64 == 9 &&
				arg.Route.TotalVolume == 7 &&
				arg.Route.StartAddress == "Depósito Central" &&
				arg.Route.Status == StatusInProgress &&
				arg.Route.DistanceKm == 12.34 &&
				arg.Route.DurationMin == 30 &&
				arg.Route.Polyline.String == "abc"
		})).Return(db.Route{ID: 50, CompanyID: companyID, TruckID: sql.NullInt64{Int64: 9, Valid: true}, TotalVolume: 7, Status: StatusInProgress}, nil).Once()

		result, err := f.svc.ConfirmRouteService(ctx, ConfirmRouteDto{
			Request:   ConfirmRouteRequest{OrderIDs: []int64{1, 2}},
			CompanyID: companyID,
			UserID:    userID,
		})
		require.NoError(t, err)
		f.repo.AssertExpectations(t)

		assert.Equal(t, "Depósito Central", f.directions.origin)
		require.Len(t, result.Stops, 2)
		assert.Equal(t, int64(2), result.Stops[0].OrderID)
		assert.Equal(t, int32(1), result.Stops[0].Position)
		assert.Equal(t, int64(1), result.Stops[1].OrderID)

		require.Len(t, f.events.history, 1)
		assert.Equal(t, EventRouteConfirmed, f.events.history[0].EventType)
		assert.Equal(t, companyID.String(), f.events.history[0].CompanyID)
		assert.Len(t, f.events.tracking, 2)
		assert.Equal(t, []broadcast{{companyID.String(), EventRouteConfirmed}}, f.notifier.sent)
	})

	t.Run("capacity exceeded is refused", func(t *testing.T) {
		f := newFixture()
		truckID := int64(5)
		f.repo.On("ListDeliveryOrdersByIDs", ctx, ordersKey).Return(pendingOrders(), nil)
		f.repo.On("GetTruckByID", ctx, mock.Anything).Return(db.Truck{ID: 5, Capacity: 6, Status: truckFree}, nil)

		_, err := f.svc.ConfirmRouteService(ctx, ConfirmRouteDto{
			Request:   ConfirmRouteRequest{OrderIDs: []int64{1, 2}, TruckID: &truckID},
			CompanyID: companyID,
		})
		assert.ErrorIs(t, err, ErrCapacityExceeded)
		f.repo.AssertNotCalled(t, "ConfirmRoute", mock.Anything, mock.Anything)
		assert.Empty(t, f.notifier.sent)
	})

	t.Run("allocated truck is refused", func(t *testing.T) {
		f := newFixture()
		truckID := int64(5)
		f.repo.On("ListDeliveryOrdersByIDs", ctx, ordersKey).Return(pendingOrders(), nil)
		f.repo.On("GetTruckByID", ctx, mock.Anything).Return(db.Truck{ID: 5, Capacity: 30, Status: truckAllocated}, nil)

		_, err := f.svc.ConfirmRouteService(ctx, ConfirmRouteDto{
			Request:   ConfirmRouteRequest{OrderIDs: []int64{1, 2}, TruckID: &truckID},
			CompanyID: companyID,
		})
		assert.ErrorIs(t, err, ErrTruckAllocated)
	})

	t.Run("orders must be pending", func(t *testing.T) {
		f := newFixture()
		orders := pendingOrders()
		orders[1].Status = "allocated"
		f.repo.On("ListDeliveryOrdersByIDs", ctx, ordersKey).Return(orders, nil)

		_, err := f.svc.ConfirmRouteService(ctx, ConfirmRouteDto{
			Request:   ConfirmRouteRequest{OrderIDs: []int64{1, 2}},
			CompanyID: companyID,
		})
		assert.ErrorIs(t, err, ErrOrderNotPending)
	})

	t.Run("no starting point", func(t *testing.T) {
		f := newFixture()
		f.directions.result = maps.Result{Order: []int{0, 1}, DistanceMeters: 30000, Source: maps.SourceSimulated}
		f.repo.On("ListDeliveryOrdersByIDs", ctx, ordersKey).Return(pendingOrders(), nil)
		f.repo.On("ListFreeTrucksByCapacity", ctx, mock.Anything).
			Return([]db.Truck{{ID: 9, Capacity: 10, Status: truckFree}}, nil)
		f.repo.On("GetDefaultStartingPoint", ctx, companyID).Return(db.StartingPoint{}, sql.ErrNoRows)
		f.repo.On("ConfirmRoute", ctx, mock.MatchedBy(func(arg ConfirmRouteTx) bool {
			return arg.Route.StartAddress == NoStartAddress
		})).Return(db.Route{ID: 51, StartAddress: NoStartAddress}, nil)

		result, err := f.svc.ConfirmRouteService(ctx, ConfirmRouteDto{
			Request:   ConfirmRouteRequest{OrderIDs: []int64{1, 2}},
			CompanyID: companyID,
		})
		require.NoError(t, err)
		assert.Equal(t, NoStartAddress, result.StartAddress)
		assert.Equal(t, "Rua A, 1", f.directions.origin)
	})

	t.Run("unknown starting point", func(t *testing.T) {
		f := newFixture()
		pointID := int64(77)
		f.repo.On("ListDeliveryOrdersByIDs", ctx, ordersKey).Return(pendingOrders(), nil)
		f.repo.On("ListFreeTrucksByCapacity", ctx, mock.Anything).
			Return([]db.Truck{{ID: 9, Capacity: 10, Status: truckFree}}, nil)
		f.repo.On("GetStartingPointByID", ctx, db.GetStartingPointByIDParams{ID: 77, CompanyID: companyID}).
			Return(db.StartingPoint{}, sql.ErrNoRows)

		_, err := f.svc.ConfirmRouteService(ctx, ConfirmRouteDto{
			Request:   ConfirmRouteRequest{OrderIDs: []int64{1, 2}, StartingPointID: &pointID},
			CompanyID: companyID,
		})
		assert.ErrorIs(t, err, ErrStartingPointNotFound)
	})
}

func TestCompleteRouteService(t *testing.T) {
	ctx := context.Background()
	companyID, userID := uuid.New(), uuid.New()
	key := db.GetRouteByIDParams{ID: 50, CompanyID: companyID}

	t.Run("completes route and frees the truck", func(t *testing.T) {
		f := newFixture()
		route := db.Route{ID: 50, CompanyID: companyID, TruckID: sql.NullInt64{Int64: 9, Valid: true}, Status: StatusInProgress}
		f.repo.On("GetRouteByID", ctx, key).Return(route, nil)
		f.repo.On("CompleteRoute", ctx, route).
			Return(db.Route{ID: 50, CompanyID: companyID, TruckID: sql.NullInt64{Int64: 9, Valid: true}, Status: StatusCompleted, CompletedAt: sql.NullTime{Time: monday, Valid: true}}, nil)
		f.repo.On("ListRouteStops", ctx, int64(50)).Return([]db.ListRouteStopsRow{
			{OrderID: 2, Position: 1, Address: "Rua B, 2", Status: orderDelivered},
			{OrderID: 1, Position: 2, Address: "Rua A, 1", Status: orderDelivered},
		}, nil)

		result, err := f.svc.CompleteRouteService(ctx, 50, companyID, userID)
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, result.Status)
		require.NotNil(t, result.CompletedAt)
		assert.Len(t, result.Stops, 2)
		assert.Len(t, f.events.tracking, 2)
		assert.Equal(t, orderDelivered, f.events.tracking[0].StatusUpdate)
		assert.Equal(t, []broadcast{{companyID.String(), EventRouteCompleted}}, f.notifier.sent)
	})

	t.Run("already completed", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetRouteByID", ctx, key).Return(db.Route{ID: 50, Status: StatusCompleted}, nil)

		_, err := f.svc.CompleteRouteService(ctx, 50, companyID, userID)
		assert.ErrorIs(t, err, ErrRouteCompleted)
		f.repo.AssertNotCalled(t, "CompleteRoute", mock.Anything, mock.Anything)
	})

	t.Run("unknown route", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetRouteByID", ctx, key).Return(db.Route{}, sql.ErrNoRows)

		_, err := f.svc.CompleteRouteService(ctx, 50, companyID, userID)
		assert.ErrorIs(t, err, ErrRouteNotFound)
	})
}

func TestListRoutesService_InvalidStatus(t *testing.T) {
	_, err := newFixture().svc.ListRoutesService(context.Background(), uuid.New(), "paused")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestApplyOrder(t *testing.T) {
	orders := pendingOrders()

	assert.Equal(t, []int64{2, 1}, ids(applyOrder(orders, []int{1, 0})))
	assert.Equal(t, []int64{1, 2}, ids(applyOrder(orders, []int{1, 1})))
	assert.Equal(t, []int64{1, 2}, ids(applyOrder(orders, []int{0})))
}

func ids(orders []db.DeliveryOrder) []int64 {
	result := make([]int64, 0, len(orders))
	for _, o := range orders {
		result = append(result, o.ID)
	}
	return result
}
