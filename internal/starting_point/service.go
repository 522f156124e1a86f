package starting_point

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	db "logiflow/db/sqlc"
	"logiflow/infra/database"
	"logiflow/validation"

	"github.com/google/uuid"
)

var (
	ErrStartingPointNotFound = errors.New("starting point not found")
	ErrDefaultStartingPoint  = errors.New("the default starting point cannot be deleted")
	ErrInvalidStartingPoint  = errors.New("name and address are required")
)

type InterfaceService interface {
	CreateStartingPointService(ctx context.Context, data CreateStartingPointDto) (StartingPointResponse, error)
	ListStartingPointsService(ctx context.Context, companyID uuid.UUID) ([]StartingPointResponse, error)
	SetDefaultStartingPointService(ctx context.Context, id int64, companyID uuid.UUID) (StartingPointResponse, error)
	DeleteStartingPointService(ctx context.Context, id int64, companyID uuid.UUID) error
	GetDefaultStartingPointService(ctx context.Context, companyID uuid.UUID) (StartingPointResponse, error)
}

type Service struct {
	InterfaceService InterfaceRepository
}

func NewStartingPointService(InterfaceService InterfaceRepository) *Service {
	return &Service{InterfaceService}
}

// CreateStartingPointService makes the company's first point its default.
func (p *Service) CreateStartingPointService(ctx context.Context, data CreateStartingPointDto) (StartingPointResponse, error) {
	data.StartingPointRequest.Name = strings.TrimSpace(data.StartingPointRequest.Name)
	data.StartingPointRequest.Address = strings.TrimSpace(data.StartingPointRequest.Address)
	if err := validation.Validate(data.StartingPointRequest); err != nil {
		return StartingPointResponse{}, ErrInvalidStartingPoint
	}

	count, err := p.InterfaceService.CountStartingPoints(ctx, data.CompanyID)
	if err != nil {
		return StartingPointResponse{}, err
	}

	isDefault := count == 0
	result, err := p.InterfaceService.CreateStartingPoint(ctx, data.ParseCreateToStartingPoint(isDefault))
	// another first point got the default in between
	if isDefault && database.IsUniqueViolation(err) {
		result, err = p.InterfaceService.CreateStartingPoint(ctx, data.ParseCreateToStartingPoint(false))
	}
	if err != nil {
		return StartingPointResponse{}, err
	}

	response := StartingPointResponse{}
	response.ParseFromStartingPointObject(result)
	return response, nil
}

func (p *Service) ListStartingPointsService(ctx context.Context, companyID uuid.UUID) ([]StartingPointResponse, error) {
	result, err := p.InterfaceService.ListStartingPoints(ctx, companyID)
	if err != nil {
		return nil, err
	}

	points := make([]StartingPointResponse, 0, len(result))
	for _, item := range result {
		response := StartingPointResponse{}
		response.ParseFromStartingPointObject(item)
		points = append(points, response)
	}
	return points, nil
}

func (p *Service) SetDefaultStartingPointService(ctx context.Context, id int64, companyID uuid.UUID) (StartingPointResponse, error) {
	if _, err := p.get(ctx, id, companyID); err != nil {
		return StartingPointResponse{}, err
	}

	result, err := p.InterfaceService.SetDefaultStartingPoint(ctx, db.SetDefaultStartingPointParams{ID: id, CompanyID: companyID})
	if err != nil {
		return StartingPointResponse{}, err
	}

	response := StartingPointResponse{}
	response.ParseFromStartingPointObject(result)
	return response, nil
}

func (p *Service) DeleteStartingPointService(ctx context.Context, id int64, companyID uuid.UUID) error {
	point, err := p.get(ctx, id, companyID)
	if err != nil {
		return err
	}
	if point.IsDefault {
		return ErrDefaultStartingPoint
	}

	return p.InterfaceService.DeleteStartingPoint(ctx, db.DeleteStartingPointParams{ID: id, CompanyID: companyID})
}

func (p *Service) GetDefaultStartingPointService(ctx context.Context, companyID uuid.UUID) (StartingPointResponse, error) {
	result, err := p.InterfaceService.GetDefaultStartingPoint(ctx, companyID)
	if errors.Is(err, sql.ErrNoRows) {
		return StartingPointResponse{}, ErrStartingPointNotFound
	}
	if err != nil {
		return StartingPointResponse{}, err
	}

	response := StartingPointResponse{}
	response.ParseFromStartingPointObject(result)
	return response, nil
}

func (p *Service) get(ctx context.Context, id int64, companyID uuid.UUID) (db.StartingPoint, error) {
	result, err := p.InterfaceService.GetStartingPointByID(ctx, db.GetStartingPointByIDParams{ID: id, CompanyID: companyID})
	if errors.Is(err, sql.ErrNoRows) {
		return db.StartingPoint{}, ErrStartingPointNotFound
	}
	return result, err
}
