package starting_point

import (
	"context"
	"database/sql"
	"fmt"

	db "logiflow/db/sqlc"

	"github.com/google/uuid"
)

type InterfaceRepository interface {
	CreateStartingPoint(ctx context.Context, arg db.CreateStartingPointParams) (db.StartingPoint, error)
	ListStartingPoints(ctx context.Context, companyID uuid.UUID) ([]db.StartingPoint, error)
	GetStartingPointByID(ctx context.Context, arg db.GetStartingPointByIDParams) (db.StartingPoint, error)
	GetDefaultStartingPoint(ctx context.Context, companyID uuid.UUID) (db.StartingPoint, error)
	CountStartingPoints(ctx context.Context, companyID uuid.UUID) (int64, error)
	SetDefaultStartingPoint(ctx context.Context, arg db.SetDefaultStartingPointParams) (db.StartingPoint, error)
	DeleteStartingPoint(ctx context.Context, arg db.DeleteStartingPointParams) error
}

type Repository struct {
	Conn    *sql.DB
	DBtx    db.DBTX
	Queries *db.Queries
	SqlConn *sql.DB
}

func NewStartingPointRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		DBtx:    Conn,
		Queries: q,
		SqlConn: Conn,
	}
}

func (r *Repository) CreateStartingPoint(ctx context.Context, arg db.CreateStartingPointParams) (db.StartingPoint, error) {
	return r.Queries.CreateStartingPoint(ctx, arg)
}

func (r *Repository) ListStartingPoints(ctx context.Context, companyID uuid.UUID) ([]db.StartingPoint, error) {
	return r.Queries.ListStartingPoints(ctx, companyID)
}

func (r *Repository) GetStartingPointByID(ctx context.Context, arg db.GetStartingPointByIDParams) (db.StartingPoint, error) {
	return r.Queries.GetStartingPointByID(ctx, arg)
}

func (r *Repository) GetDefaultStartingPoint(ctx context.Context, companyID uuid.UUID) (db.StartingPoint, error) {
	return r.Queries.GetDefaultStartingPoint(ctx, companyID)
}

func (r *Repository) CountStartingPoints(ctx context.Context, companyID uuid.UUID) (int64, error) {
	return r.Queries.CountStartingPoints(ctx, companyID)
}

// SetDefaultStartingPoint clears the current default and flags the new one in a single transaction.
func (r *Repository) SetDefaultStartingPoint(ctx context.Context, arg db.SetDefaultStartingPointParams) (db.StartingPoint, error) {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return db.StartingPoint{}, err
	}
	defer tx.Rollback()

	qtx := r.Queries.WithTx(tx)
	if err := qtx.ClearDefaultStartingPoints(ctx, arg.CompanyID); err != nil {
		return db.StartingPoint{}, fmt.Errorf("clear default: %w", err)
	}

	result, err := qtx.SetDefaultStartingPoint(ctx, arg)
	if err != nil {
		return db.StartingPoint{}, err
	}

	if err := tx.Commit(); err != nil {
		return db.StartingPoint{}, err
	}
	return result, nil
}

func (r *Repository) DeleteStartingPoint(ctx context.Context, arg db.DeleteStartingPointParams) error {
	return r.Queries.DeleteStartingPoint(ctx, arg)
}
