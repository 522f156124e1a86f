package order

import (
	"context"
	"database/sql"

	db "logiflow/db/sqlc"
)

type InterfaceRepository interface {
	CreateDeliveryOrder(ctx context.Context, arg db.CreateDeliveryOrderParams) (db.DeliveryOrder, error)
	GetDeliveryOrderByID(ctx context.Context, arg db.GetDeliveryOrderByIDParams) (db.DeliveryOrder, error)
	ListDeliveryOrders(ctx context.Context, arg db.ListDeliveryOrdersParams) ([]db.DeliveryOrder, error)
	DeleteDeliveryOrder(ctx context.Context, arg db.DeleteDeliveryOrderParams) error
}

type Repository struct {
	Conn    *sql.DB
	DBtx    db.DBTX
	Queries *db.Queries
	SqlConn *sql.DB
}

func NewOrderRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		DBtx:    Conn,
		Queries: q,
		SqlConn: Conn,
	}
}

func (r *Repository) CreateDeliveryOrder(ctx context.Context, arg db.CreateDeliveryOrderParams) (db.DeliveryOrder, error) {
	return r.Queries.CreateDeliveryOrder(ctx, arg)
}

func (r *Repository) GetDeliveryOrderByID(ctx context.Context, arg db.GetDeliveryOrderByIDParams) (db.DeliveryOrder, error) {
	return r.Queries.GetDeliveryOrderByID(ctx, arg)
}

func (r *Repository) ListDeliveryOrders(ctx context.Context, arg db.ListDeliveryOrdersParams) ([]db.DeliveryOrder, error) {
	return r.Queries.ListDeliveryOrders(ctx, arg)
}

func (r *Repository) DeleteDeliveryOrder(ctx context.Context, arg db.DeleteDeliveryOrderParams) error {
	return r.Queries.DeleteDeliveryOrder(ctx, arg)
}
