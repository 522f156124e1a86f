package order

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	db "logiflow/db/sqlc"
	"logiflow/internal/localstore"
	"logiflow/internal/records"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateDeliveryOrder(ctx context.Context, arg db.CreateDeliveryOrderParams) (db.DeliveryOrder, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.DeliveryOrder), args.Error(1)
}

func (m *MockRepository) GetDeliveryOrderByID(ctx context.Context, arg db.GetDeliveryOrderByIDParams) (db.DeliveryOrder, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.DeliveryOrder), args.Error(1)
}

func (m *MockRepository) ListDeliveryOrders(ctx context.Context, arg db.ListDeliveryOrdersParams) ([]db.DeliveryOrder, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).([]db.DeliveryOrder), args.Error(1)
}

func (m *MockRepository) DeleteDeliveryOrder(ctx context.Context, arg db.DeleteDeliveryOrderParams) error {
	return m.Called(ctx, arg).Error(0)
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) SaveActionService(ctx context.Context, owner records.Owner, actionType string, details any) (localstore.UserAction, error) {
	args := m.Called(ctx, owner, actionType, details)
	return args.Get(0).(localstore.UserAction), args.Error(1)
}

func TestCreateOrderService(t *testing.T) {
	ctx := context.Background()
	companyID, userID := uuid.New(), uuid.New()

	t.Run("creates pending order and records the action", func(t *testing.T) {
		repo := new(MockRepository)
		recorder := new(MockRecorder)
		repo.On("CreateDeliveryOrder", ctx, db.CreateDeliveryOrderParams{CompanyID: companyID, Address: "Rua A, 10", Volume: 2.5}).
			Return(db.DeliveryOrder{ID: 7, CompanyID: companyID, Address: "Rua A, 10", Volume: 2.5, Status: StatusPending}, nil)
		recorder.On("SaveActionService", ctx,
			records.Owner{UserID: userID.String(), CompanyID: companyID.String()},
			ActionOrderCreated, mock.Anything).
			Return(localstore.UserAction{}, nil).Once()

		result, err := NewOrderService(repo, recorder).CreateOrderService(ctx, CreateOrderDto{
			OrderRequest: OrderRequest{Address: "  Rua A, 10 ", Volume: 2.5},
			CompanyID:    companyID,
			UserID:       userID,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), result.ID)
		assert.Equal(t, StatusPending, result.Status)
		assert.Nil(t, result.TruckID)
		repo.AssertExpectations(t)
		recorder.AssertExpectations(t)
	})

	t.Run("recorder failure does not fail the order", func(t *testing.T) {
		repo := new(MockRepository)
		recorder := new(MockRecorder)
		repo.On("CreateDeliveryOrder", ctx, mock.Anything).Return(db.DeliveryOrder{ID: 8, Status: StatusPending}, nil)
		recorder.On("SaveActionService", ctx, mock.Anything, ActionOrderCreated, mock.Anything).
			Return(localstore.UserAction{}, errors.New("badger closed"))

		_, err := NewOrderService(repo, recorder).CreateOrderService(ctx, CreateOrderDto{
			OrderRequest: OrderRequest{Address: "Rua B", Volume: 1},
			CompanyID:    companyID,
			UserID:       userID,
		})
		assert.NoError(t, err)
	})

	t.Run("rejects blank address and zero volume", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewOrderService(repo, nil)

		_, err := svc.CreateOrderService(ctx, CreateOrderDto{OrderRequest: OrderRequest{Address: "   ", Volume: 1}})
		assert.ErrorIs(t, err, ErrInvalidOrder)

		_, err = svc.CreateOrderService(ctx, CreateOrderDto{OrderRequest: OrderRequest{Address: "Rua C", Volume: 0}})
		assert.ErrorIs(t, err, ErrInvalidOrder)

		repo.AssertNotCalled(t, "CreateDeliveryOrder", mock.Anything, mock.Anything)
	})
}

func TestListOrdersService(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("filters by status", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("ListDeliveryOrders", ctx, db.ListDeliveryOrdersParams{CompanyID: companyID, Status: StatusAllocated}).
			Return([]db.DeliveryOrder{{ID: 1, Status: StatusAllocated, TruckID: sql.NullInt64{Int64: 3, Valid: true}}}, nil)

		result, err := NewOrderService(repo, nil).ListOrdersService(ctx, companyID, StatusAllocated)
		require.NoError(t, err)
		require.Len(t, result, 1)
		require.NotNil(t, result[0].TruckID)
		assert.Equal(t, int64(3), *result[0].TruckID)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := NewOrderService(new(MockRepository), nil).ListOrdersService(ctx, companyID, "lost")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestDeleteOrderService(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	key := db.GetDeliveryOrderByIDParams{ID: 5, CompanyID: companyID}

	t.Run("pending order is deleted", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetDeliveryOrderByID", ctx, key).Return(db.DeliveryOrder{ID: 5, Status: StatusPending}, nil)
		repo.On("DeleteDeliveryOrder", ctx, db.DeleteDeliveryOrderParams{ID: 5, CompanyID: companyID}).Return(nil)

		assert.NoError(t, NewOrderService(repo, nil).DeleteOrderService(ctx, 5, companyID))
		repo.AssertExpectations(t)
	})

	t.Run("allocated order is kept", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetDeliveryOrderByID", ctx, key).Return(db.DeliveryOrder{ID: 5, Status: StatusAllocated}, nil)

		err := NewOrderService(repo, nil).DeleteOrderService(ctx, 5, companyID)
		assert.ErrorIs(t, err, ErrOrderNotPending)
		repo.AssertNotCalled(t, "DeleteDeliveryOrder", mock.Anything, mock.Anything)
	})

	t.Run("missing order", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetDeliveryOrderByID", ctx, key).Return(db.DeliveryOrder{}, sql.ErrNoRows)

		err := NewOrderService(repo, nil).DeleteOrderService(ctx, 5, companyID)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}
