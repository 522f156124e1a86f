package company

import (
	"context"
	"database/sql"
	"fmt"

	db "logiflow/db/sqlc"

	"github.com/google/uuid"
)

type InterfaceRepository interface {
	CreateCompanyWithAdmin(ctx context.Context, arg db.CreateCompanyParams, userID uuid.UUID) (db.Company, error)
	GetCompanyByID(ctx context.Context, id uuid.UUID) (db.Company, error)
	GetUserCompanies(ctx context.Context, userID uuid.UUID) ([]db.GetUserCompaniesRow, error)
	GetUserCompanyRole(ctx context.Context, arg db.GetUserCompanyRoleParams) (string, error)
	CreateUserCompany(ctx context.Context, arg db.CreateUserCompanyParams) (db.UserCompany, error)
	DeleteUserCompany(ctx context.Context, arg db.DeleteUserCompanyParams) (int64, error)
	GetCompanyUsers(ctx context.Context, companyID uuid.UUID) ([]db.GetCompanyUsersRow, error)
	UpdateUserCompanyRole(ctx context.Context, arg db.UpdateUserCompanyRoleParams) (db.UserCompany, error)
}

type Repository struct {
	Conn    *sql.DB
	DBtx    db.DBTX
	Queries *db.Queries
	SqlConn *sql.DB
}

func NewCompanyRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		DBtx:    Conn,
		Queries: q,
		SqlConn: Conn,
	}
}

// CreateCompanyWithAdmin inserts the company and the creator's admin membership atomically.
func (r *Repository) CreateCompanyWithAdmin(ctx context.Context, arg db.CreateCompanyParams, userID uuid.UUID) (db.Company, error) {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return db.Company{}, err
	}
	defer tx.Rollback()

	qtx := r.Queries.WithTx(tx)
	company, err := qtx.CreateCompany(ctx, arg)
	if err != nil {
		return db.Company{}, fmt.Errorf("create company: %w", err)
	}

	_, err = qtx.CreateUserCompany(ctx, db.CreateUserCompanyParams{
		UserID:    userID,
		CompanyID: company.ID,
		Role:      RoleAdmin,
	})
	if err != nil {
		return db.Company{}, fmt.Errorf("create admin membership: %w", err)
	}

	return company, tx.Commit()
}

func (r *Repository) GetCompanyByID(ctx context.Context, id uuid.UUID) (db.Company, error) {
	return r.Queries.GetCompanyByID(ctx, id)
}
func (r *Repository) GetUserCompanies(ctx context.Context, userID uuid.UUID) ([]db.GetUserCompaniesRow, error) {
	return r.Queries.GetUserCompanies(ctx, userID)
}
func (r *Repository) GetUserCompanyRole(ctx context.Context, arg db.GetUserCompanyRoleParams) (string, error) {
	return r.Queries.GetUserCompanyRole(ctx, arg)
}
func (r *Repository) CreateUserCompany(ctx context.Context, arg db.CreateUserCompanyParams) (db.UserCompany, error) {
	return r.Queries.CreateUserCompany(ctx, arg)
}
func (r *Repository) DeleteUserCompany(ctx context.Context, arg db.DeleteUserCompanyParams) (int64, error) {
	return r.Queries.DeleteUserCompany(ctx, arg)
}
func (r *Repository) GetCompanyUsers(ctx context.Context, companyID uuid.UUID) ([]db.GetCompanyUsersRow, error) {
	return r.Queries.GetCompanyUsers(ctx, companyID)
}
func (r *Repository) UpdateUserCompanyRole(ctx context.Context, arg db.UpdateUserCompanyRoleParams) (db.UserCompany, error) {
	return r.Queries.UpdateUserCompanyRole(ctx, arg)
}
