package login

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	db "logiflow/db/sqlc"
	"logiflow/infra/database"
	"logiflow/infra/token"
	"logiflow/pkg/crypt"
	"logiflow/validation"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrWeakPassword       = errors.New("password must have at least 8 characters, an uppercase letter, a digit and a special character")
	ErrInvalidResetToken  = errors.New("reset token is invalid or has expired")
)

const (
	resetTokenPrefix = "reset_password:"
	resetTokenTTL    = time.Hour
)

// SessionCleaner forgets the user's selected company and stops background sync.
type SessionCleaner interface {
	ClearSelectionService(ctx context.Context, userID uuid.UUID) error
}

type ServiceInterface interface {
	Login(context.Context, RequestLogin) (ResponseLogin, error)
	CreateUser(context.Context, RequestCreateUser) (ResponseLogin, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	ResetPassword(ctx context.Context, data RequestResetPassword) error
	ConfirmResetPassword(ctx context.Context, data RequestConfirmResetPassword) error
}

type Service struct {
	repository RepositoryInterface
	maker      token.Maker
	rdb        *redis.Client
	session    SessionCleaner
	resetURL   string
}

func NewService(
	repository RepositoryInterface,
	maker token.Maker,
	rdb *redis.Client,
	session SessionCleaner,
	resetURL string,
) *Service {
	return &Service{repository, maker, rdb, session, resetURL}
}

func (s *Service) Login(ctx context.Context, data RequestLogin) (response ResponseLogin, err error) {
	result, err := s.repository.GetUserByEmail(ctx, strings.TrimSpace(data.Email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return response, ErrInvalidCredentials
		}
		return response, err
	}

	if !crypt.CheckPasswordHash(data.Password, result.Password) {
		return response, ErrInvalidCredentials
	}

	return s.buildSession(ctx, result)
}

func (s *Service) CreateUser(ctx context.Context, data RequestCreateUser) (response ResponseLogin, err error) {
	data.Email = strings.TrimSpace(data.Email)
	if !validation.ValidateEmail(data.Email) {
		return response, ErrInvalidEmail
	}
	if !validation.ValidatePassword(data.Password) {
		return response, ErrWeakPassword
	}

	_, err = s.repository.GetUserByEmail(ctx, data.Email)
	if err == nil {
		return response, ErrUserAlreadyExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return response, err
	}

	hashedPassword, err := crypt.HashPassword(data.Password)
	if err != nil {
		return response, err
	}

	result, err := s.repository.CreateUser(ctx, data.ParseCreateToUser(hashedPassword))
	if database.IsUniqueViolation(err) {
		return response, ErrUserAlreadyExists
	}
	if err != nil {
		return response, err
	}

	log.WithField("user_id", result.ID).Info("usuário cadastrado")

	return s.buildSession(ctx, result)
}

func (s *Service) buildSession(ctx context.Context, user db.User) (ResponseLogin, error) {
	tokenStr, payload, err := s.maker.CreateToken(user.ID, user.Name, user.Email, tokenDuration)
	if err != nil {
		return ResponseLogin{}, err
	}

	companies, err := s.repository.GetUserCompanies(ctx, user.ID)
	if err != nil {
		return ResponseLogin{}, err
	}

	response := ResponseLogin{
		Token:     tokenStr,
		ExpiresAt: payload.ExpiredAt,
		Companies: make([]CompanyResponse, 0, len(companies)),
	}
	response.User.ParseFromUserObject(user)
	for _, c := range companies {
		response.Companies = append(response.Companies, CompanyResponse{ID: c.ID, Name: c.Name, Role: c.Role})
	}
	return response, nil
}

func (s *Service) Logout(ctx context.Context, userID uuid.UUID) error {
	if s.session == nil {
		return nil
	}
	return s.session.ClearSelectionService(ctx, userID)
}

// ResetPassword answers the same way whether or not the email exists.
func (s *Service) ResetPassword(ctx context.Context, data RequestResetPassword) error {
	user, err := s.repository.GetUserByEmail(ctx, strings.TrimSpace(data.Email))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("pedido de redefinição para email desconhecido")
		return nil
	}
	if err != nil {
		return err
	}

	resetToken := uuid.NewString()
	if err := s.rdb.Set(ctx, resetTokenPrefix+resetToken, user.ID.String(), resetTokenTTL).Err(); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	// e-mail delivery is not wired yet; the link goes to the log
	log.WithField("user_id", user.ID).Infof("link de redefinição de senha: %s?token=%s", s.resetURL, resetToken)
	return nil
}

func (s *Service) ConfirmResetPassword(ctx context.Context, data RequestConfirmResetPassword) error {
	if !validation.ValidatePassword(data.Password) {
		return ErrWeakPassword
	}

	key := resetTokenPrefix + data.Token
	raw, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return ErrInvalidResetToken
	}
	if err != nil {
		return err
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return ErrInvalidResetToken
	}

	hashedPassword, err := crypt.HashPassword(data.Password)
	if err != nil {
		return err
	}

	if err := s.repository.UpdateUserPassword(ctx, db.UpdateUserPasswordParams{ID: userID, Password: hashedPassword}); err != nil {
		return err
	}

	return s.rdb.Del(ctx, key).Err()
}
