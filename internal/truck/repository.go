package truck

import (
	"context"
	"database/sql"

	db "logiflow/db/sqlc"

	"github.com/google/uuid"
)

type InterfaceRepository interface {
	CreateTruck(ctx context.Context, arg db.CreateTruckParams) (db.Truck, error)
	UpdateTruck(ctx context.Context, arg db.UpdateTruckParams) (db.Truck, error)
	DeleteTruck(ctx context.Context, arg db.DeleteTruckParams) (int64, error)
	GetTruckByID(ctx context.Context, arg db.GetTruckByIDParams) (db.Truck, error)
	GetTruckByPlate(ctx context.Context, arg db.GetTruckByPlateParams) (db.Truck, error)
	ListTrucksByCompany(ctx context.Context, companyID uuid.UUID) ([]db.Truck, error)
}

type Repository struct {
	Conn    *sql.DB
	DBtx    db.DBTX
	Queries *db.Queries
	SqlConn *sql.DB
}

func NewTruckRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		DBtx:    Conn,
		Queries: q,
		SqlConn: Conn,
	}
}

func (r *Repository) CreateTruck(ctx context.Context, arg db.CreateTruckParams) (db.Truck, error) {
	return r.Queries.CreateTruck(ctx, arg)
}
func (r *Repository) UpdateTruck(ctx context.Context, arg db.UpdateTruckParams) (db.Truck, error) {
	return r.Queries.UpdateTruck(ctx, arg)
}
func (r *Repository) DeleteTruck(ctx context.Context, arg db.DeleteTruckParams) (int64, error) {
	return r.Queries.DeleteTruck(ctx, arg)
}
func (r *Repository) GetTruckByID(ctx context.Context, arg db.GetTruckByIDParams) (db.Truck, error) {
	return r.Queries.GetTruckByID(ctx, arg)
}
func (r *Repository) GetTruckByPlate(ctx context.Context, arg db.GetTruckByPlateParams) (db.Truck, error) {
	return r.Queries.GetTruckByPlate(ctx, arg)
}
func (r *Repository) ListTrucksByCompany(ctx context.Context, companyID uuid.UUID) ([]db.Truck, error) {
	return r.Queries.ListTrucksByCompany(ctx, companyID)
}
