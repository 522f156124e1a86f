package truck

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

func (m *MockRepository) CreateTruck(ctx context.Context, arg db.CreateTruckParams) (db.Truck, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Truck), args.Error(1)
}

func (m *MockRepository) UpdateTruck(ctx context.Context, arg db.UpdateTruckParams) (db.Truck, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Truck), args.Error(1)
}

func (m *MockRepository) DeleteTruck(ctx context.Context, arg db.DeleteTruckParams) (int64, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) GetTruckByID(ctx context.Context, arg db.GetTruckByIDParams) (db.Truck, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Truck), args.Error(1)
}

func (m *MockRepository) GetTruckByPlate(ctx context.Context, arg db.GetTruckByPlateParams) (db.Truck, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Truck), args.Error(1)
}

func (m *MockRepository) ListTrucksByCompany(ctx context.Context, companyID uuid.UUID) ([]db.Truck, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]db.Truck), args.Error(1)
}

// 2024-03-04 is a Monday.
var monday = time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

func newTestService(repo InterfaceRepository) *Service {
	svc := NewTruckService(repo)
	svc.now = func() time.Time { return monday }
	return svc
}

func TestCreateTruckService(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("normalizes plate and computes rodizio", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetTruckByPlate", ctx, db.GetTruckByPlateParams{CompanyID: companyID, Plate: "ABC1232"}).
			Return(db.Truck{}, sql.ErrNoRows)
		repo.On("CreateTruck", ctx, mock.MatchedBy(func(arg db.CreateTruckParams) bool {
			return arg.Plate == "ABC1232" && arg.Rodizio == rodizio.Monday && arg.CompanyID == companyID
		})).Return(db.Truck{ID: 1, CompanyID: companyID, Plate: "ABC1232", Capacity: 20, Status: StatusFree, Rodizio: rodizio.Monday}, nil)

		result, err := newTestService(repo).CreateTruckService(ctx, CreateTruckDto{
			TruckRequest: TruckRequest{Plate: "abc-1232", Capacity: 20},
			CompanyID:    companyID,
		})
		require.NoError(t, err)
		assert.Equal(t, StatusFree, result.Status)
		assert.True(t, result.RestrictedToday)
		assert.Zero(t, result.OccupancyPct)
		repo.AssertExpectations(t)
	})

	t.Run("mercosul plate accepted", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetTruckByPlate", ctx, mock.Anything).Return(db.Truck{}, sql.ErrNoRows)
		repo.On("CreateTruck", ctx, mock.MatchedBy(func(arg db.CreateTruckParams) bool {
			return arg.Plate == "BRA2E90" && arg.Rodizio == rodizio.Friday
		})).Return(db.Truck{ID: 2, Plate: "BRA2E90", Capacity: 10, Rodizio: rodizio.Friday}, nil)

		result, err := newTestService(repo).CreateTruckService(ctx, CreateTruckDto{
			TruckRequest: TruckRequest{Plate: "bra2e90", Capacity: 10},
			CompanyID:    companyID,
		})
		require.NoError(t, err)
		assert.False(t, result.RestrictedToday)
	})

	t.Run("capacity derived from dimensions", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetTruckByPlate", ctx, mock.Anything).Return(db.Truck{}, sql.ErrNoRows)
		repo.On("CreateTruck", ctx, mock.MatchedBy(func(arg db.CreateTruckParams) bool {
			return arg.Capacity == 30
		})).Return(db.Truck{ID: 3, Plate: "ABC1234", Capacity: 30}, nil)

		_, err := newTestService(repo).CreateTruckService(ctx, CreateTruckDto{
			TruckRequest: TruckRequest{Plate: "ABC1234", Length: 5, Width: 2, Height: 3},
			CompanyID:    companyID,
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("invalid plate", func(t *testing.T) {
		repo := new(MockRepository)
		_, err := newTestService(repo).CreateTruckService(ctx, CreateTruckDto{
			TruckRequest: TruckRequest{Plate: "AB-12", Capacity: 10},
			CompanyID:    companyID,
		})
		assert.ErrorIs(t, err, ErrInvalidPlate)
	})

	t.Run("capacity must be positive", func(t *testing.T) {
		repo := new(MockRepository)
		_, err := newTestService(repo).CreateTruckService(ctx, CreateTruckDto{
			TruckRequest: TruckRequest{Plate: "ABC1234", Capacity: 0},
			CompanyID:    companyID,
		})
		assert.ErrorIs(t, err, ErrInvalidTruck)
	})

	t.Run("duplicate plate", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetTruckByPlate", ctx, mock.Anything).Return(db.Truck{ID: 9}, nil)

		_, err := newTestService(repo).CreateTruckService(ctx, CreateTruckDto{
			TruckRequest: TruckRequest{Plate: "ABC1234", Capacity: 10},
			CompanyID:    companyID,
		})
		assert.ErrorIs(t, err, ErrDuplicatePlate)
		repo.AssertNotCalled(t, "CreateTruck", mock.Anything, mock.Anything)
	})
}

func TestUpdateTruckService_KeepsOwnPlate(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	repo := new(MockRepository)
	repo.On("GetTruckByID", ctx, db.GetTruckByIDParams{ID: 3, CompanyID: companyID}).Return(db.Truck{ID: 3}, nil)
	repo.On("GetTruckByPlate", ctx, mock.Anything).Return(db.Truck{ID: 3}, nil)
	repo.On("UpdateTruck", ctx, mock.MatchedBy(func(arg db.UpdateTruckParams) bool {
		return arg.ID == 3 && arg.Capacity == 30 && arg.Rodizio == rodizio.Tuesday
	})).Return(db.Truck{ID: 3, Plate: "ABC1233", Capacity: 30, OccupiedVolume: 10, Rodizio: rodizio.Tuesday}, nil)

	result, err := newTestService(repo).UpdateTruckService(ctx, UpdateTruckDto{
		TruckRequest: TruckRequest{Plate: "ABC1233", Capacity: 30},
		ID:           3,
		CompanyID:    companyID,
	})
	require.NoError(t, err)
	assert.Equal(t, 33.3, result.OccupancyPct)
	assert.False(t, result.RestrictedToday)
}

func TestUpdateTruckService_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("GetTruckByID", ctx, mock.Anything).Return(db.Truck{}, sql.ErrNoRows)

	_, err := newTestService(repo).UpdateTruckService(ctx, UpdateTruckDto{
		TruckRequest: TruckRequest{Plate: "ABC1233", Capacity: 30},
		ID:           3,
		CompanyID:    uuid.New(),
	})
	assert.ErrorIs(t, err, ErrTruckNotFound)
}

func TestDeleteTruckService(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	repo := new(MockRepository)
	repo.On("GetTruckByID", ctx, db.GetTruckByIDParams{ID: 1, CompanyID: companyID}).Return(db.Truck{ID: 1, Status: StatusAllocated}, nil)
	repo.On("GetTruckByID", ctx, db.GetTruckByIDParams{ID: 2, CompanyID: companyID}).Return(db.Truck{ID: 2, Status: StatusFree}, nil)
	repo.On("GetTruckByID", ctx, db.GetTruckByIDParams{ID: 3, CompanyID: companyID}).Return(db.Truck{}, sql.ErrNoRows)
	repo.On("DeleteTruck", ctx, db.DeleteTruckParams{ID: 2, CompanyID: companyID}).Return(int64(1), nil).Once()
	svc := newTestService(repo)

	assert.ErrorIs(t, svc.DeleteTruckService(ctx, 1, companyID), ErrTruckAllocated)
	assert.NoError(t, svc.DeleteTruckService(ctx, 2, companyID))
	assert.ErrorIs(t, svc.DeleteTruckService(ctx, 3, companyID), ErrTruckNotFound)
	repo.AssertExpectations(t)
}

func TestDeleteTruckService_AfterCompletedRoute(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	// a truck freed by a completed route is deleted, its routes keep a null truck
	repo := new(MockRepository)
	repo.On("GetTruckByID", ctx, mock.Anything).Return(db.Truck{ID: 4, Status: StatusFree}, nil).Once()
	repo.On("DeleteTruck", ctx, db.DeleteTruckParams{ID: 4, CompanyID: companyID}).Return(int64(1), nil).Once()

	assert.NoError(t, newTestService(repo).DeleteTruckService(ctx, 4, companyID))
	repo.AssertExpectations(t)
}

func TestDeleteTruckService_AllocatedMeanwhile(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	repo := new(MockRepository)
	repo.On("GetTruckByID", ctx, mock.Anything).Return(db.Truck{ID: 4, Status: StatusFree}, nil).Once()
	repo.On("DeleteTruck", ctx, mock.Anything).Return(int64(0), nil).Once()

	assert.ErrorIs(t, newTestService(repo).DeleteTruckService(ctx, 4, companyID), ErrTruckAllocated)
}

func TestUpdateTruckService_CapacityBelowLoad(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	repo := new(MockRepository)
	repo.On("GetTruckByID", ctx, mock.Anything).
		Return(db.Truck{ID: 3, Status: StatusAllocated, Capacity: 30, OccupiedVolume: 20}, nil).Once()
	svc := newTestService(repo)

	_, err := svc.UpdateTruckService(ctx, UpdateTruckDto{
		TruckRequest: TruckRequest{Plate: "ABC1233", Capacity: 15},
		ID:           3,
		CompanyID:    companyID,
	})
	assert.ErrorIs(t, err, ErrBelowLoad)
	repo.AssertNotCalled(t, "UpdateTruck", mock.Anything, mock.Anything)
}

func TestUpdateTruckService_LoadGrewMeanwhile(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	repo.On("GetTruckByID", ctx, mock.Anything).Return(db.Truck{ID: 3, Status: StatusFree}, nil).Once()
	repo.On("GetTruckByPlate", ctx, mock.Anything).Return(db.Truck{}, sql.ErrNoRows).Once()
	repo.On("UpdateTruck", ctx, mock.Anything).Return(db.Truck{}, sql.ErrNoRows).Once()

	_, err := newTestService(repo).UpdateTruckService(ctx, UpdateTruckDto{
		TruckRequest: TruckRequest{Plate: "ABC1233", Capacity: 15},
		ID:           3,
		CompanyID:    uuid.New(),
	})
	assert.ErrorIs(t, err, ErrBelowLoad)
}

func TestListTrucksService(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	repo := new(MockRepository)
	repo.On("ListTrucksByCompany", ctx, companyID).Return([]db.Truck{
		{ID: 1, Plate: "ABC1231", Capacity: 10, OccupiedVolume: 5, Rodizio: rodizio.Monday},
		{ID: 2, Plate: "ABC1235", Capacity: 10, Rodizio: rodizio.Tuesday},
	}, nil)

	result, err := newTestService(repo).ListTrucksService(ctx, companyID)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.True(t, result[0].RestrictedToday)
	assert.Equal(t, 50.0, result[0].OccupancyPct)
	assert.False(t, result[1].RestrictedToday)
}

func TestCheckRodizioService(t *testing.T) {
	svc := newTestService(new(MockRepository))

	result := svc.CheckRodizioService("abc-1231")
	assert.Equal(t, "ABC1231", result.Plate)
	assert.Equal(t, rodizio.Monday, result.Day)
	assert.True(t, result.RestrictedToday)

	result = svc.CheckRodizioService("ab1")
	assert.Equal(t, rodizio.None, result.Day)
	assert.False(t, result.RestrictedToday)
}

func TestOccupancy(t *testing.T) {
	assert.Equal(t, 0.0, Occupancy(5, 0))
	assert.Equal(t, 100.0, Occupancy(10, 10))
	assert.Equal(t, 66.7, Occupancy(2, 3))
}
