package company

import (
	"context"
	"database/sql"
	"errors"

	db "logiflow/db/sqlc"
	"logiflow/infra/database"
	"logiflow/validation"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrCompanyNotFound    = errors.New("company not found")
	ErrMemberNotFound     = errors.New("user is not a member of this company")
	ErrAlreadyMember      = errors.New("user is already a member of this company")
	ErrInvalidRole        = errors.New("invalid role, use admin, manager or user")
	ErrNotCompanyAdmin    = errors.New("only company admins can manage members")
	ErrCompanyNameMissing = errors.New("company name is required")
)

type InterfaceService interface {
	CreateCompanyService(ctx context.Context, data CreateCompanyDto) (CompanyResponse, error)
	GetUserCompaniesService(ctx context.Context, userID uuid.UUID) ([]CompanyResponse, error)
	GetCompanyService(ctx context.Context, id uuid.UUID) (CompanyResponse, error)
	HasAccessToCompanyService(ctx context.Context, userID, companyID uuid.UUID) bool
	GetUserRoleInCompanyService(ctx context.Context, userID, companyID uuid.UUID) (string, error)
	AddUserToCompanyService(ctx context.Context, data MemberDto) (MembershipResponse, error)
	RemoveUserFromCompanyService(ctx context.Context, actorID, companyID, userID uuid.UUID) error
	GetCompanyUsersService(ctx context.Context, companyID uuid.UUID) ([]CompanyUserResponse, error)
	UpdateUserRoleInCompanyService(ctx context.Context, data MemberDto) (MembershipResponse, error)
}

type Service struct {
	InterfaceService InterfaceRepository
}

func NewCompanyService(InterfaceService InterfaceRepository) *Service {
	return &Service{InterfaceService}
}

func (p *Service) CreateCompanyService(ctx context.Context, data CreateCompanyDto) (CompanyResponse, error) {
	if err := validation.Validate(data.CreateCompanyRequest); err != nil {
		return CompanyResponse{}, ErrCompanyNameMissing
	}

	arg := data.ParseCreateToCompany()
	result, err := p.InterfaceService.CreateCompanyWithAdmin(ctx, arg, data.UserID)
	if err != nil {
		return CompanyResponse{}, err
	}

	log.WithFields(log.Fields{"company_id": result.ID, "user_id": data.UserID}).Info("empresa criada")

	response := CompanyResponse{}
	response.ParseFromCompanyObject(result)
	response.Role = RoleAdmin
	return response, nil
}

func (p *Service) GetUserCompaniesService(ctx context.Context, userID uuid.UUID) ([]CompanyResponse, error) {
	result, err := p.InterfaceService.GetUserCompanies(ctx, userID)
	if err != nil {
		return nil, err
	}

	companies := make([]CompanyResponse, 0, len(result))
	for _, row := range result {
		response := CompanyResponse{}
		response.ParseFromUserCompanyRow(row)
		companies = append(companies, response)
	}
	return companies, nil
}

func (p *Service) GetCompanyService(ctx context.Context, id uuid.UUID) (CompanyResponse, error) {
	result, err := p.InterfaceService.GetCompanyByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return CompanyResponse{}, ErrCompanyNotFound
	}
	if err != nil {
		return CompanyResponse{}, err
	}

	response := CompanyResponse{}
	response.ParseFromCompanyObject(result)
	return response, nil
}

// HasAccessToCompanyService treats lookup errors as no access.
func (p *Service) HasAccessToCompanyService(ctx context.Context, userID, companyID uuid.UUID) bool {
	role, err := p.GetUserRoleInCompanyService(ctx, userID, companyID)
	if err != nil {
		log.WithError(err).Warn("erro ao verificar acesso à empresa")
		return false
	}
	return role != ""
}

// GetUserRoleInCompanyService returns "" when the user is not a member.
func (p *Service) GetUserRoleInCompanyService(ctx context.Context, userID, companyID uuid.UUID) (string, error) {
	role, err := p.InterfaceService.GetUserCompanyRole(ctx, db.GetUserCompanyRoleParams{
		UserID:    userID,
		CompanyID: companyID,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return role, err
}

func (p *Service) requireAdmin(ctx context.Context, actorID, companyID uuid.UUID) error {
	role, err := p.GetUserRoleInCompanyService(ctx, actorID, companyID)
	if err != nil {
		return err
	}
	if role != RoleAdmin {
		return ErrNotCompanyAdmin
	}
	return nil
}

func (p *Service) AddUserToCompanyService(ctx context.Context, data MemberDto) (MembershipResponse, error) {
	role := data.MemberRequest.Role
	if role == "" {
		role = RoleUser
	}
	if !ValidRole(role) {
		return MembershipResponse{}, ErrInvalidRole
	}
	if err := p.requireAdmin(ctx, data.ActorID, data.CompanyID); err != nil {
		return MembershipResponse{}, err
	}

	result, err := p.InterfaceService.CreateUserCompany(ctx, db.CreateUserCompanyParams{
		UserID:    data.MemberRequest.UserID,
		CompanyID: data.CompanyID,
		Role:      role,
	})
	if database.IsUniqueViolation(err) {
		return MembershipResponse{}, ErrAlreadyMember
	}
	if err != nil {
		return MembershipResponse{}, err
	}

	response := MembershipResponse{}
	response.ParseFromUserCompanyObject(result)
	return response, nil
}

func (p *Service) RemoveUserFromCompanyService(ctx context.Context, actorID, companyID, userID uuid.UUID) error {
	if err := p.requireAdmin(ctx, actorID, companyID); err != nil {
		return err
	}

	rows, err := p.InterfaceService.DeleteUserCompany(ctx, db.DeleteUserCompanyParams{
		UserID:    userID,
		CompanyID: companyID,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (p *Service) GetCompanyUsersService(ctx context.Context, companyID uuid.UUID) ([]CompanyUserResponse, error) {
	result, err := p.InterfaceService.GetCompanyUsers(ctx, companyID)
	if err != nil {
		return nil, err
	}

	users := make([]CompanyUserResponse, 0, len(result))
	for _, row := range result {
		response := CompanyUserResponse{}
		response.ParseFromCompanyUserRow(row)
		users = append(users, response)
	}
	return users, nil
}

func (p *Service) UpdateUserRoleInCompanyService(ctx context.Context, data MemberDto) (MembershipResponse, error) {
	if !ValidRole(data.MemberRequest.Role) {
		return MembershipResponse{}, ErrInvalidRole
	}
	if err := p.requireAdmin(ctx, data.ActorID, data.CompanyID); err != nil {
		return MembershipResponse{}, err
	}

	result, err := p.InterfaceService.UpdateUserCompanyRole(ctx, db.UpdateUserCompanyRoleParams{
		UserID:    data.MemberRequest.UserID,
		CompanyID: data.CompanyID,
		Role:      data.MemberRequest.Role,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return MembershipResponse{}, ErrMemberNotFound
	}
	if err != nil {
		return MembershipResponse{}, err
	}

	response := MembershipResponse{}
	response.ParseFromUserCompanyObject(result)
	return response, nil
}
