package profile

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

func (m *MockRepository) GetUserByID(ctx context.Context, id uuid.UUID) (db.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(db.User), args.Error(1)
}

func (m *MockRepository) UpdateUser(ctx context.Context, arg db.UpdateUserParams) (db.User, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.User), args.Error(1)
}

func TestGetProfileService(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := new(MockRepository)
	repo.On("GetUserByID", ctx, userID).Return(db.User{
		ID:    userID,
		Name:  "Ana",
		Email: "ana@logiflow.com",
		Phone: sql.NullString{String: "11999998888", Valid: true},
	}, nil)
	repo.On("GetUserByID", ctx, mock.Anything).Return(db.User{}, sql.ErrNoRows)
	svc := NewProfileService(repo)

	result, err := svc.GetProfileService(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "11999998888", result.Phone)
	assert.Nil(t, result.UpdatedAt)

	_, err = svc.GetProfileService(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpdateProfileService(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("trims and updates", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("UpdateUser", ctx, db.UpdateUserParams{
			ID:    userID,
			Name:  "Ana Souza",
			Email: "ana@logiflow.com",
			Phone: sql.NullString{},
		}).Return(db.User{ID: userID, Name: "Ana Souza", Email: "ana@logiflow.com"}, nil)

		result, err := NewProfileService(repo).UpdateProfileService(ctx, UpdateProfileDto{
			UpdateProfileRequest: UpdateProfileRequest{Name: " Ana Souza ", Email: "ana@logiflow.com"},
			UserID:               userID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Ana Souza", result.Name)
		repo.AssertExpectations(t)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewProfileService(repo)

		_, err := svc.UpdateProfileService(ctx, UpdateProfileDto{
			UpdateProfileRequest: UpdateProfileRequest{Name: "", Email: "ana@logiflow.com"},
			UserID:               userID,
		})
		assert.ErrorIs(t, err, ErrInvalidProfile)

		_, err = svc.UpdateProfileService(ctx, UpdateProfileDto{
			UpdateProfileRequest: UpdateProfileRequest{Name: "Ana", Email: "ana"},
			UserID:               userID,
		})
		assert.ErrorIs(t, err, ErrInvalidProfile)
		repo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
	})

	t.Run("email taken", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("UpdateUser", ctx, mock.Anything).Return(db.User{}, &pq.Error{Code: "23505"})

		_, err := NewProfileService(repo).UpdateProfileService(ctx, UpdateProfileDto{
			UpdateProfileRequest: UpdateProfileRequest{Name: "Ana", Email: "bia@logiflow.com"},
			UserID:               userID,
		})
		assert.ErrorIs(t, err, ErrEmailInUse)
	})
}
