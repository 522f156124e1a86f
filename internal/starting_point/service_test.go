package starting_point

import (
	"context"
	"database/sql"
	"testing"

	db "logiflow/db/sqlc"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateStartingPoint(ctx context.Context, arg db.CreateStartingPointParams) (db.StartingPoint, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.StartingPoint), args.Error(1)
}

func (m *MockRepository) ListStartingPoints(ctx context.Context, companyID uuid.UUID) ([]db.StartingPoint, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]db.StartingPoint), args.Error(1)
}

func (m *MockRepository) GetStartingPointByID(ctx context.Context, arg db.GetStartingPointByIDParams) (db.StartingPoint, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.StartingPoint), args.Error(1)
}

func (m *MockRepository) GetDefaultStartingPoint(ctx context.Context, companyID uuid.UUID) (db.StartingPoint, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(db.StartingPoint), args.Error(1)
}

func (m *MockRepository) CountStartingPoints(ctx context.Context, companyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) SetDefaultStartingPoint(ctx context.Context, arg db.SetDefaultStartingPointParams) (db.StartingPoint, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.StartingPoint), args.Error(1)
}

func (m *MockRepository) DeleteStartingPoint(ctx context.Context, arg db.DeleteStartingPointParams) error {
	return m.Called(ctx, arg).Error(0)
}

func TestCreateStartingPointService(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	dto := CreateStartingPointDto{
		StartingPointRequest: StartingPointRequest{Name: " CD Norte ", Address: "Av. Brasil, 100"},
		CompanyID:            companyID,
	}

	t.Run("first point becomes default", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("CountStartingPoints", ctx, companyID).Return(int64(0), nil)
		repo.On("CreateStartingPoint", ctx, db.CreateStartingPointParams{
			CompanyID: companyID, Name: "CD Norte", Address: "Av. Brasil, 100", IsDefault: true,
		}).Return(db.StartingPoint{ID: 1, Name: "CD Norte", IsDefault: true}, nil)

		result, err := NewStartingPointService(repo).CreateStartingPointService(ctx, dto)
		require.NoError(t, err)
		assert.True(t, result.IsDefault)
		repo.AssertExpectations(t)
	})

	t.Run("later points are not default", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("CountStartingPoints", ctx, companyID).Return(int64(2), nil)
		repo.On("CreateStartingPoint", ctx, mock.MatchedBy(func(arg db.CreateStartingPointParams) bool {
			return !arg.IsDefault
		})).Return(db.StartingPoint{ID: 3}, nil)

		result, err := NewStartingPointService(repo).CreateStartingPointService(ctx, dto)
		require.NoError(t, err)
		assert.False(t, result.IsDefault)
	})

	t.Run("concurrent first point falls back to non default", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("CountStartingPoints", ctx, companyID).Return(int64(0), nil)
		repo.On("CreateStartingPoint", ctx, mock.MatchedBy(func(arg db.CreateStartingPointParams) bool {
			return arg.IsDefault
		})).Return(db.StartingPoint{}, &pq.Error{Code: "23505"}).Once()
		repo.On("CreateStartingPoint", ctx, mock.MatchedBy(func(arg db.CreateStartingPointParams) bool {
			return !arg.IsDefault
		})).Return(db.StartingPoint{ID: 2}, nil).Once()

		result, err := NewStartingPointService(repo).CreateStartingPointService(ctx, dto)
		require.NoError(t, err)
		assert.False(t, result.IsDefault)
		repo.AssertExpectations(t)
	})

	t.Run("name is required", func(t *testing.T) {
		repo := new(MockRepository)
		_, err := NewStartingPointService(repo).CreateStartingPointService(ctx, CreateStartingPointDto{
			StartingPointRequest: StartingPointRequest{Name: " ", Address: "Rua X"},
		})
		assert.ErrorIs(t, err, ErrInvalidStartingPoint)
		repo.AssertNotCalled(t, "CountStartingPoints", mock.Anything, mock.Anything)
	})
}

func TestSetDefaultStartingPointService(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("sets default", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetStartingPointByID", ctx, db.GetStartingPointByIDParams{ID: 2, CompanyID: companyID}).
			Return(db.StartingPoint{ID: 2}, nil)
		repo.On("SetDefaultStartingPoint", ctx, db.SetDefaultStartingPointParams{ID: 2, CompanyID: companyID}).
			Return(db.StartingPoint{ID: 2, IsDefault: true}, nil)

		result, err := NewStartingPointService(repo).SetDefaultStartingPointService(ctx, 2, companyID)
		require.NoError(t, err)
		assert.True(t, result.IsDefault)
	})

	t.Run("unknown point", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetStartingPointByID", ctx, mock.Anything).Return(db.StartingPoint{}, sql.ErrNoRows)

		_, err := NewStartingPointService(repo).SetDefaultStartingPointService(ctx, 9, companyID)
		assert.ErrorIs(t, err, ErrStartingPointNotFound)
		repo.AssertNotCalled(t, "SetDefaultStartingPoint", mock.Anything, mock.Anything)
	})
}

func TestDeleteStartingPointService(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("default point is refused", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetStartingPointByID", ctx, mock.Anything).Return(db.StartingPoint{ID: 1, IsDefault: true}, nil)

		err := NewStartingPointService(repo).DeleteStartingPointService(ctx, 1, companyID)
		assert.ErrorIs(t, err, ErrDefaultStartingPoint)
		repo.AssertNotCalled(t, "DeleteStartingPoint", mock.Anything, mock.Anything)
	})

	t.Run("other point is deleted", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetStartingPointByID", ctx, mock.Anything).Return(db.StartingPoint{ID: 4}, nil)
		repo.On("DeleteStartingPoint", ctx, db.DeleteStartingPointParams{ID: 4, CompanyID: companyID}).Return(nil)

		assert.NoError(t, NewStartingPointService(repo).DeleteStartingPointService(ctx, 4, companyID))
		repo.AssertExpectations(t)
	})
}

func TestGetDefaultStartingPointService(t *testing.T) {
	repo := new(MockRepository)
	companyID := uuid.New()
	repo.On("GetDefaultStartingPoint", mock.Anything, companyID).Return(db.StartingPoint{}, sql.ErrNoRows)

	_, err := NewStartingPointService(repo).GetDefaultStartingPointService(context.Background(), companyID)
	assert.ErrorIs(t, err, ErrStartingPointNotFound)
}
