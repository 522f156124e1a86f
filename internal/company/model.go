package company

import (
	"time"

	db "logiflow/db/sqlc"

	"github.com/google/uuid"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

type CreateCompanyRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateCompanyDto struct {
	CreateCompanyRequest CreateCompanyRequest
	UserID               uuid.UUID `json:"user_id"`
}

func (p *CreateCompanyDto) ParseCreateToCompany() db.CreateCompanyParams {
	return db.CreateCompanyParams{
		ID:   uuid.New(),
		Name: p.CreateCompanyRequest.Name,
	}
}

type CompanyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *CompanyResponse) ParseFromCompanyObject(result db.Company) {
	p.ID = result.ID
	p.Name = result.Name
	p.CreatedAt = result.CreatedAt
}

func (p *CompanyResponse) ParseFromUserCompanyRow(result db.GetUserCompaniesRow) {
	p.ID = result.ID
	p.Name = result.Name
	p.Role = result.Role
	p.CreatedAt = result.CreatedAt
}

type MemberRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Role   string    `json:"role"`
}

// MemberDto carries a membership change made by ActorID inside CompanyID.
type MemberDto struct {
	MemberRequest MemberRequest
	CompanyID     uuid.UUID
	ActorID       uuid.UUID
}

type CompanyUserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *CompanyUserResponse) ParseFromCompanyUserRow(result db.GetCompanyUsersRow) {
	p.ID = result.ID
	p.Name = result.Name
	p.Email = result.Email
	p.Role = result.Role
	p.CreatedAt = result.CreatedAt
}

type MembershipResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	CompanyID uuid.UUID `json:"company_id"`
	Role      string    `json:"role"`
}

func (p *MembershipResponse) ParseFromUserCompanyObject(result db.UserCompany) {
	p.UserID = result.UserID
	p.CompanyID = result.CompanyID
	p.Role = result.Role
}
