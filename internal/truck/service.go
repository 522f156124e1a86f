package truck

import (
	"context"
	"database/sql"
	"errors"
	"time"

	db "logiflow/db/sqlc"
	"logiflow/infra/database"
	"logiflow/pkg/rodizio"
	"logiflow/validation"

	"github.com/google/uuid"
)

var (
	ErrTruckNotFound  = errors.New("truck not found")
	ErrTruckAllocated = errors.New("truck is allocated to a route")
	ErrInvalidPlate   = errors.New("invalid plate, use AAA9999 or AAA9A99")
	ErrDuplicatePlate = errors.New("plate already registered for this company")
	ErrInvalidTruck   = errors.New("capacity must be greater than zero and dimensions cannot be negative")
	ErrBelowLoad      = errors.New("capacity cannot be lower than the volume the truck is carrying")
)

type InterfaceService interface {
	CreateTruckService(ctx context.Context, data CreateTruckDto) (TruckResponse, error)
	UpdateTruckService(ctx context.Context, data UpdateTruckDto) (TruckResponse, error)
	DeleteTruckService(ctx context.Context, id int64, companyID uuid.UUID) error
	ListTrucksService(ctx context.Context, companyID uuid.UUID) ([]TruckResponse, error)
	GetTruckService(ctx context.Context, id int64, companyID uuid.UUID) (TruckResponse, error)
	CheckRodizioService(plate string) RodizioResponse
}

type Service struct {
	InterfaceService InterfaceRepository
	now              func() time.Time
}

func NewTruckService(InterfaceService InterfaceRepository) *Service {
	return &Service{InterfaceService: InterfaceService, now: time.Now}
}

func (p *Service) response(result db.Truck) TruckResponse {
	response := TruckResponse{}
	response.ParseFromTruckObject(result, p.now())
	return response
}

func normalizeAndValidate(request TruckRequest) (string, error) {
	plate := validation.NormalizePlate(request.Plate)
	if !validation.ValidatePlate(plate) {
		return "", ErrInvalidPlate
	}
	if err := validation.Validate(request); err != nil || request.EffectiveCapacity() <= 0 {
		return "", ErrInvalidTruck
	}
	return plate, nil
}

func (p *Service) CreateTruckService(ctx context.Context, data CreateTruckDto) (TruckResponse, error) {
	plate, err := normalizeAndValidate(data.TruckRequest)
	if err != nil {
		return TruckResponse{}, err
	}

	_, err = p.InterfaceService.GetTruckByPlate(ctx, db.GetTruckByPlateParams{CompanyID: data.CompanyID, Plate: plate})
	if err == nil {
		return TruckResponse{}, ErrDuplicatePlate
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return TruckResponse{}, err
	}

	result, err := p.InterfaceService.CreateTruck(ctx, data.ParseCreateToTruck(plate))
	if database.IsUniqueViolation(err) {
		return TruckResponse{}, ErrDuplicatePlate
	}
	if err != nil {
		return TruckResponse{}, err
	}

	return p.response(result), nil
}

func (p *Service) UpdateTruckService(ctx context.Context, data UpdateTruckDto) (TruckResponse, error) {
	plate, err := normalizeAndValidate(data.TruckRequest)
	if err != nil {
		return TruckResponse{}, err
	}

	current, err := p.InterfaceService.GetTruckByID(ctx, db.GetTruckByIDParams{ID: data.ID, CompanyID: data.CompanyID})
	if errors.Is(err, sql.ErrNoRows) {
		return TruckResponse{}, ErrTruckNotFound
	}
	if err != nil {
		return TruckResponse{}, err
	}
	if data.TruckRequest.EffectiveCapacity() < current.OccupiedVolume {
		return TruckResponse{}, ErrBelowLoad
	}

	existing, err := p.InterfaceService.GetTruckByPlate(ctx, db.GetTruckByPlateParams{CompanyID: data.CompanyID, Plate: plate})
	if err == nil && existing.ID != data.ID {
		return TruckResponse{}, ErrDuplicatePlate
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return TruckResponse{}, err
	}

	result, err := p.InterfaceService.UpdateTruck(ctx, data.ParseUpdateToTruck(plate))
	if database.IsUniqueViolation(err) {
		return TruckResponse{}, ErrDuplicatePlate
	}
	// the update only matches while the new capacity covers the load
	if errors.Is(err, sql.ErrNoRows) {
		return TruckResponse{}, ErrBelowLoad
	}
	if err != nil {
		return TruckResponse{}, err
	}

	return p.response(result), nil
}

func (p *Service) DeleteTruckService(ctx context.Context, id int64, companyID uuid.UUID) error {
	result, err := p.InterfaceService.GetTruckByID(ctx, db.GetTruckByIDParams{ID: id, CompanyID: companyID})
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTruckNotFound
	}
	if err != nil {
		return err
	}
	if result.Status == StatusAllocated {
		return ErrTruckAllocated
	}

	// routes keep their history with a null truck once it is gone
	deleted, err := p.InterfaceService.DeleteTruck(ctx, db.DeleteTruckParams{ID: id, CompanyID: companyID})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrTruckAllocated
	}
	return nil
}

func (p *Service) ListTrucksService(ctx context.Context, companyID uuid.UUID) ([]TruckResponse, error) {
	result, err := p.InterfaceService.ListTrucksByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	trucks := make([]TruckResponse, 0, len(result))
	for _, t := range result {
		trucks = append(trucks, p.response(t))
	}
	return trucks, nil
}

func (p *Service) GetTruckService(ctx context.Context, id int64, companyID uuid.UUID) (TruckResponse, error) {
	result, err := p.InterfaceService.GetTruckByID(ctx, db.GetTruckByIDParams{ID: id, CompanyID: companyID})
	if errors.Is(err, sql.ErrNoRows) {
		return TruckResponse{}, ErrTruckNotFound
	}
	if err != nil {
		return TruckResponse{}, err
	}

	return p.response(result), nil
}

func (p *Service) CheckRodizioService(plate string) RodizioResponse {
	plate = validation.NormalizePlate(plate)
	day := rodizio.DayForPlate(plate)
	return RodizioResponse{
		Plate:           plate,
		Day:             day,
		RestrictedToday: rodizio.IsRestrictedOn(day, p.now()),
	}
}
