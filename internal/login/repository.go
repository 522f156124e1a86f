package login

import (
	"context"
	"database/sql"

	db "logiflow/db/sqlc"

	"github.com/google/uuid"
)

type RepositoryInterface interface {
	GetUserByEmail(ctx context.Context, email string) (db.User, error)
	CreateUser(ctx context.Context, arg db.CreateUserParams) (db.User, error)
	UpdateUserPassword(ctx context.Context, arg db.UpdateUserPasswordParams) error
	GetUserCompanies(ctx context.Context, userID uuid.UUID) ([]db.GetUserCompaniesRow, error)
}

type Repository struct {
	Conn    *sql.DB
	DBtx    db.DBTX
	Queries *db.Queries
	SqlConn *sql.DB
}

func NewRepository(conn *sql.DB) *Repository {
	q := db.New(conn)
	return &Repository{
		Conn:    conn,
		DBtx:    conn,
		Queries: q,
		SqlConn: conn,
	}
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (db.User, error) {
	return r.Queries.GetUserByEmail(ctx, email)
}

func (r *Repository) CreateUser(ctx context.Context, arg db.CreateUserParams) (db.User, error) {
	return r.Queries.CreateUser(ctx, arg)
}

func (r *Repository) UpdateUserPassword(ctx context.Context, arg db.UpdateUserPasswordParams) error {
	return r.Queries.UpdateUserPassword(ctx, arg)
}

func (r *Repository) GetUserCompanies(ctx context.Context, userID uuid.UUID) ([]db.GetUserCompaniesRow, error) {
	return r.Queries.GetUserCompanies(ctx, userID)
}
