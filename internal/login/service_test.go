package login

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	db "logiflow/db/sqlc"
	"logiflow/infra/token"
	"logiflow/pkg/crypt"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetUserByEmail(ctx context.Context, email string) (db.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(db.User), args.Error(1)
}

func (m *MockRepository) CreateUser(ctx context.Context, arg db.CreateUserParams) (db.User, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.User), args.Error(1)
}

func (m *MockRepository) UpdateUserPassword(ctx context.Context, arg db.UpdateUserPasswordParams) error {
	return m.Called(ctx, arg).Error(0)
}

func (m *MockRepository) GetUserCompanies(ctx context.Context, userID uuid.UUID) ([]db.GetUserCompaniesRow, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]db.GetUserCompaniesRow), args.Error(1)
}

type MockSession struct {
	mock.Mock
}

func (m *MockSession) ClearSelectionService(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

const testKey = "12345678901234567890123456789012"

func newTestService(t *testing.T, repo RepositoryInterface, session SessionCleaner) (*Service, *miniredis.Miniredis) {
	t.Helper()
	maker, err := token.NewPasetoMaker(testKey)
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewService(repo, maker, rdb, session, "http://localhost/reset"), mr
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, err := crypt.HashPassword("Senha@123")
	require.NoError(t, err)

	user := db.User{ID: uuid.New(), Name: "Ana", Email: "ana@logiflow.com", Password: hash}
	companyID := uuid.New()

	repo := new(MockRepository)
	repo.On("GetUserByEmail", ctx, "ana@logiflow.com").Return(user, nil)
	repo.On("GetUserByEmail", ctx, "ghost@logiflow.com").Return(db.User{}, sql.ErrNoRows)
	repo.On("GetUserCompanies", ctx, user.ID).Return([]db.GetUserCompaniesRow{{ID: companyID, Name: "Silva", Role: "admin"}}, nil)

	svc, _ := newTestService(t, repo, nil)

	result, err := svc.Login(ctx, RequestLogin{Email: "ana@logiflow.com", Password: "Senha@123"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, user.ID, result.User.ID)
	require.Len(t, result.Companies, 1)
	assert.Equal(t, companyID, result.Companies[0].ID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), result.ExpiresAt, time.Minute)

	payload, err := svc.maker.VerifyToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, payload.UserID)

	_, err = svc.Login(ctx, RequestLogin{Email: "ana@logiflow.com", Password: "errada"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, RequestLogin{Email: "ghost@logiflow.com", Password: "Senha@123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("registers and hashes password", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetUserByEmail", ctx, "bia@logiflow.com").Return(db.User{}, sql.ErrNoRows)
		repo.On("CreateUser", ctx, mock.MatchedBy(func(arg db.CreateUserParams) bool {
			return arg.Email == "bia@logiflow.com" &&
				arg.Phone.Valid &&
				strings.HasPrefix(arg.Password, "$2") &&
				crypt.CheckPasswordHash("Senha@123", arg.Password)
		})).Return(db.User{ID: uuid.New(), Name: "Bia", Email: "bia@logiflow.com"}, nil)
		repo.On("GetUserCompanies", ctx, mock.Anything).Return([]db.GetUserCompaniesRow{}, nil)

		svc, _ := newTestService(t, repo, nil)
		result, err := svc.CreateUser(ctx, RequestCreateUser{
			Name:     "Bia",
			Email:    " bia@logiflow.com ",
			Password: "Senha@123",
			Phone:    "11999998888",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Empty(t, result.Companies)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetUserByEmail", ctx, "bia@logiflow.com").Return(db.User{ID: uuid.New()}, nil)

		svc, _ := newTestService(t, repo, nil)
		_, err := svc.CreateUser(ctx, RequestCreateUser{Name: "Bia", Email: "bia@logiflow.com", Password: "Senha@123"})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("invalid input", func(t *testing.T) {
		svc, _ := newTestService(t, new(MockRepository), nil)

		_, err := svc.CreateUser(ctx, RequestCreateUser{Name: "Bia", Email: "bia", Password: "Senha@123"})
		assert.ErrorIs(t, err, ErrInvalidEmail)

		_, err = svc.CreateUser(ctx, RequestCreateUser{Name: "Bia", Email: "bia@logiflow.com", Password: "fraca"})
		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}

func TestLogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	session := new(MockSession)
	session.On("ClearSelectionService", ctx, userID).Return(nil).Once()

	svc, _ := newTestService(t, new(MockRepository), session)
	require.NoError(t, svc.Logout(ctx, userID))
	session.AssertExpectations(t)
}

func TestResetPasswordFlow(t *testing.T) {
	ctx := context.Background()
	user := db.User{ID: uuid.New(), Email: "ana@logiflow.com"}

	repo := new(MockRepository)
	repo.On("GetUserByEmail", ctx, "ana@logiflow.com").Return(user, nil)
	repo.On("GetUserByEmail", ctx, "ghost@logiflow.com").Return(db.User{}, sql.ErrNoRows)
	repo.On("UpdateUserPassword", ctx, mock.MatchedBy(func(arg db.UpdateUserPasswordParams) bool {
		return arg.ID == user.ID && crypt.CheckPasswordHash("Nova@1234", arg.Password)
	})).Return(nil).Once()

	svc, mr := newTestService(t, repo, nil)

	require.NoError(t, svc.ResetPassword(ctx, RequestResetPassword{Email: "ghost@logiflow.com"}))
	assert.Empty(t, mr.Keys())

	require.NoError(t, svc.ResetPassword(ctx, RequestResetPassword{Email: "ana@logiflow.com"}))
	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Equal(t, time.Hour, mr.TTL(keys[0]))
	resetToken := strings.TrimPrefix(keys[0], resetTokenPrefix)

	err := svc.ConfirmResetPassword(ctx, RequestConfirmResetPassword{Token: "invalido", Password: "Nova@1234"})
	assert.ErrorIs(t, err, ErrInvalidResetToken)

	require.NoError(t, svc.ConfirmResetPassword(ctx, RequestConfirmResetPassword{Token: resetToken, Password: "Nova@1234"}))
	assert.False(t, mr.Exists(keys[0]))

	err = svc.ConfirmResetPassword(ctx, RequestConfirmResetPassword{Token: resetToken, Password: "Nova@1234"})
	assert.ErrorIs(t, err, ErrInvalidResetToken)
	repo.AssertExpectations(t)
}

func TestResetTokenExpires(t *testing.T) {
	ctx := context.Background()
	user := db.User{ID: uuid.New(), Email: "ana@logiflow.com"}
	repo := new(MockRepository)
	repo.On("GetUserByEmail", ctx, "ana@logiflow.com").Return(user, nil)

	svc, mr := newTestService(t, repo, nil)
	require.NoError(t, svc.ResetPassword(ctx, RequestResetPassword{Email: "ana@logiflow.com"}))
	resetToken := strings.TrimPrefix(mr.Keys()[0], resetTokenPrefix)

	mr.FastForward(time.Hour + time.Second)
	err := svc.ConfirmResetPassword(ctx, RequestConfirmResetPassword{Token: resetToken, Password: "Nova@1234"})
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}
