package dashboard

import (
	"context"
	"database/sql"

	db "logiflow/db/sqlc"

	"github.com/google/uuid"
)

type InterfaceRepository interface {
	GetFleetSummary(ctx context.Context, companyID uuid.UUID) (db.GetFleetSummaryRow, error)
	GetRouteSummary(ctx context.Context, companyID uuid.UUID) (db.GetRouteSummaryRow, error)
	CountPendingDeliveryOrders(ctx context.Context, companyID uuid.UUID) (int64, error)
	GetDefaultStartingPoint(ctx context.Context, companyID uuid.UUID) (db.StartingPoint, error)
	ListTrucksByCompany(ctx context.Context, companyID uuid.UUID) ([]db.Truck, error)
}

type Repository struct {
	Conn    *sql.DB
	DBtx    db.DBTX
	Queries *db.Queries
	SqlConn *sql.DB
}

func NewDashboardRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		DBtx:    Conn,
		Queries: q,
		SqlConn: Conn,
	}
}

func (r *Repository) GetFleetSummary(ctx context.Context, companyID uuid.UUID) (db.GetFleetSummaryRow, error) {
	return r.Queries.GetFleetSummary(ctx, companyID)
}

func (r *Repository) GetRouteSummary(ctx context.Context, companyID uuid.UUID) (db.GetRouteSummaryRow, error) {
	return r.Queries.GetRouteSummary(ctx, companyID)
}

func (r *Repository) CountPendingDeliveryOrders(ctx context.Context, companyID uuid.UUID) (int64, error) {
	return r.Queries.CountPendingDeliveryOrders(ctx, companyID)
}

func (r *Repository) GetDefaultStartingPoint(ctx context.Context, companyID uuid.UUID) (db.StartingPoint, error) {
	return r.Queries.GetDefaultStartingPoint(ctx, companyID)
}

func (r *Repository) ListTrucksByCompany(ctx context.Context, companyID uuid.UUID) ([]db.Truck, error) {
	return r.Queries.ListTrucksByCompany(ctx, companyID)
}
