package profile

import (
	"context"
	"database/sql"

	db "logiflow/db/sqlc"

	"github.com/google/uuid"
)

type InterfaceRepository interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (db.User, error)
	UpdateUser(ctx context.Context, arg db.UpdateUserParams) (db.User, error)
}

type Repository struct {
	Conn    *sql.DB
	DBtx    db.DBTX
	Queries *db.Queries
	SqlConn *sql.DB
}

func NewProfileRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		DBtx:    Conn,
		Queries: q,
		SqlConn: Conn,
	}
}

func (r *Repository) GetUserByID(ctx context.Context, id uuid.UUID) (db.User, error) {
	return r.Queries.GetUserByID(ctx, id)
}
func (r *Repository) UpdateUser(ctx context.Context, arg db.UpdateUserParams) (db.User, error) {
	return r.Queries.UpdateUser(ctx, arg)
}
