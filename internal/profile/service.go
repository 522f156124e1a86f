package profile

import (
	"context"
	"database/sql"
	"errors"

	"logiflow/infra/database"
	"logiflow/validation"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidProfile  = errors.New("name and a valid email are required")
	ErrEmailInUse      = errors.New("email already in use")
)

type InterfaceService interface {
	GetProfileService(ctx context.Context, userID uuid.UUID) (ProfileResponse, error)
	UpdateProfileService(ctx context.Context, data UpdateProfileDto) (ProfileResponse, error)
}

type Service struct {
	InterfaceService InterfaceRepository
}

func NewProfileService(InterfaceService InterfaceRepository) *Service {
	return &Service{InterfaceService}
}

func (p *Service) GetProfileService(ctx context.Context, userID uuid.UUID) (ProfileResponse, error) {
	result, err := p.InterfaceService.GetUserByID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return ProfileResponse{}, ErrProfileNotFound
	}
	if err != nil {
		return ProfileResponse{}, err
	}

	response := ProfileResponse{}
	response.ParseFromUserObject(result)
	return response, nil
}

func (p *Service) UpdateProfileService(ctx context.Context, data UpdateProfileDto) (ProfileResponse, error) {
	arg := data.ParseUpdateToUser()
	if arg.Name == "" || !validation.ValidateEmail(arg.Email) {
		return ProfileResponse{}, ErrInvalidProfile
	}

	result, err := p.InterfaceService.UpdateUser(ctx, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return ProfileResponse{}, ErrProfileNotFound
	}
	if database.IsUniqueViolation(err) {
		return ProfileResponse{}, ErrEmailInUse
	}
	if err != nil {
		return ProfileResponse{}, err
	}

	response := ProfileResponse{}
	response.ParseFromUserObject(result)
	return response, nil
}
