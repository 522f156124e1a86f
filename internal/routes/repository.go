package routes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	db "logiflow/db/sqlc"

	"github.com/google/uuid"
)

const (
	orderAllocated = "allocated"
	orderDelivered = "delivered"
	truckAllocated = "allocated"
	truckFree      = "free"
)

type InterfaceRepository interface {
	ListDeliveryOrdersByIDs(ctx context.Context, arg db.ListDeliveryOrdersByIDsParams) ([]db.DeliveryOrder, error)
	ListFreeTrucksByCapacity(ctx context.Context, arg db.ListFreeTrucksByCapacityParams) ([]db.Truck, error)
	GetTruckByID(ctx context.Context, arg db.GetTruckByIDParams) (db.Truck, error)
	GetStartingPointByID(ctx context.Context, arg db.GetStartingPointByIDParams) (db.StartingPoint, error)
	GetDefaultStartingPoint(ctx context.Context, companyID uuid.UUID) (db.StartingPoint, error)
	ConfirmRoute(ctx context.Context, arg ConfirmRouteTx) (db.Route, error)
	CompleteRoute(ctx context.Context, route db.Route) (db.Route, error)
	GetRouteByID(ctx context.Context, arg db.GetRouteByIDParams) (db.Route, error)
	ListRoutes(ctx context.Context, arg db.ListRoutesParams) ([]db.Route, error)
	ListRouteStops(ctx context.Context, routeID int64) ([]db.ListRouteStopsRow, error)
}

type Repository struct {
	Conn    *sql.DB
	DBtx    db.DBTX
	Queries *db.Queries
	SqlConn *sql.DB
}

func NewRoutesRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		DBtx:    Conn,
		Queries: q,
		SqlConn: Conn,
	}
}

func (r *Repository) ListDeliveryOrdersByIDs(ctx context.Context, arg db.ListDeliveryOrdersByIDsParams) ([]db.DeliveryOrder, error) {
	return r.Queries.ListDeliveryOrdersByIDs(ctx, arg)
}
func (r *Repository) ListFreeTrucksByCapacity(ctx context.Context, arg db.ListFreeTrucksByCapacityParams) ([]db.Truck, error) {
	return r.Queries.ListFreeTrucksByCapacity(ctx, arg)
}
func (r *Repository) GetTruckByID(ctx context.Context, arg db.GetTruckByIDParams) (db.Truck, error) {
	return r.Queries.GetTruckByID(ctx, arg)
}
func (r *Repository) GetStartingPointByID(ctx context.Context, arg db.GetStartingPointByIDParams) (db.StartingPoint, error) {
	return r.Queries.GetStartingPointByID(ctx, arg)
}
func (r *Repository) GetDefaultStartingPoint(ctx context.Context, companyID uuid.UUID) (db.StartingPoint, error) {
	return r.Queries.GetDefaultStartingPoint(ctx, companyID)
}
func (r *Repository) GetRouteByID(ctx context.Context, arg db.GetRouteByIDParams) (db.Route, error) {
	return r.Queries.GetRouteByID(ctx, arg)
}
func (r *Repository) ListRoutes(ctx context.Context, arg db.ListRoutesParams) ([]db.Route, error) {
	return r.Queries.ListRoutes(ctx, arg)
}
func (r *Repository) ListRouteStops(ctx context.Context, routeID int64) ([]db.ListRouteStopsRow, error) {
	return r.Queries.ListRouteStops(ctx, routeID)
}

// ConfirmRoute writes the route, its stops, the order allocations and the truck
// occupation in one transaction.
func (r *Repository) ConfirmRoute(ctx context.Context, arg ConfirmRouteTx) (db.Route, error) {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return db.Route{}, err
	}
	defer tx.Rollback()

	route, err := confirmLocked(ctx, r.Queries.WithTx(tx), arg)
	if err != nil {
		return db.Route{}, err
	}

	if err := tx.Commit(); err != nil {
		return db.Route{}, err
	}
	return route, nil
}

// confirmQuerier is the part of db.Queries the confirm transaction runs on.
type confirmQuerier interface {
	LockDeliveryOrdersByIDs(ctx context.Context, arg db.LockDeliveryOrdersByIDsParams) ([]db.DeliveryOrder, error)
	LockTruckByID(ctx context.Context, arg db.LockTruckByIDParams) (db.Truck, error)
	CreateRoute(ctx context.Context, arg db.CreateRouteParams) (db.Route, error)
	CreateRouteOrder(ctx context.Context, arg db.CreateRouteOrderParams) error
	AllocateDeliveryOrder(ctx context.Context, arg db.AllocateDeliveryOrderParams) (int64, error)
	UpdateTruckAllocation(ctx context.Context, arg db.UpdateTruckAllocationParams) (db.Truck, error)
}

// confirmLocked re-reads the orders and then the truck with FOR UPDATE. A
// concurrent confirm for any of them blocks here and then sees the committed
// allocation. Orders are always locked before the truck, in id order.
func confirmLocked(ctx context.Context, q confirmQuerier, arg ConfirmRouteTx) (db.Route, error) {
	orders, err := q.LockDeliveryOrdersByIDs(ctx, db.LockDeliveryOrdersByIDsParams{
		CompanyID: arg.Route.CompanyID,
		Ids:       arg.OrderIDs,
	})
	if err != nil {
		return db.Route{}, err
	}
	if err := checkPending(orders, arg.OrderIDs); err != nil {
		return db.Route{}, err
	}

	truckID := arg.Route.TruckID.Int64
	truck, err := q.LockTruckByID(ctx, db.LockTruckByIDParams{ID: truckID, CompanyID: arg.Route.CompanyID})
	if errors.Is(err, sql.ErrNoRows) {
		return db.Route{}, ErrTruckNotFound
	}
	if err != nil {
		return db.Route{}, err
	}
	if truck.Status != truckFree {
		return db.Route{}, ErrTruckAllocated
	}
	if arg.Route.TotalVolume > truck.Capacity {
		return db.Route{}, ErrCapacityExceeded
	}

	route, err := q.CreateRoute(ctx, arg.Route)
	if err != nil {
		return db.Route{}, fmt.Errorf("create route: %w", err)
	}

	for i, orderID := range arg.OrderIDs {
		err = q.CreateRouteOrder(ctx, db.CreateRouteOrderParams{
			RouteID:  route.ID,
			OrderID:  orderID,
			Position: int32(i + 1),
		})
		if err != nil {
			return db.Route{}, fmt.Errorf("create route stop %d: %w", orderID, err)
		}

		allocated, err := q.AllocateDeliveryOrder(ctx, db.AllocateDeliveryOrderParams{ID: orderID, TruckID: truckID})
		if err != nil {
			return db.Route{}, fmt.Errorf("allocate order %d: %w", orderID, err)
		}
		if allocated == 0 {
			return db.Route{}, ErrOrderNotPending
		}
	}

	_, err = q.UpdateTruckAllocation(ctx, db.UpdateTruckAllocationParams{
		ID:             truckID,
		Status:         truckAllocated,
		OccupiedVolume: arg.Route.TotalVolume,
	})
	if err != nil {
		return db.Route{}, fmt.Errorf("allocate truck: %w", err)
	}
	return route, nil
}

// CompleteRoute closes the route, delivers its orders and frees the truck.
func (r *Repository) CompleteRoute(ctx context.Context, route db.Route) (db.Route, error) {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return db.Route{}, err
	}
	defer tx.Rollback()

	completed, err := completeInTx(ctx, r.Queries.WithTx(tx), route)
	if err != nil {
		return db.Route{}, err
	}

	if err := tx.Commit(); err != nil {
		return db.Route{}, err
	}
	return completed, nil
}

type completeQuerier interface {
	CompleteRoute(ctx context.Context, id int64) (db.Route, error)
	SetDeliveryOrdersStatusByRoute(ctx context.Context, arg db.SetDeliveryOrdersStatusByRouteParams) error
	UpdateTruckAllocation(ctx context.Context, arg db.UpdateTruckAllocationParams) (db.Truck, error)
}

func completeInTx(ctx context.Context, q completeQuerier, route db.Route) (db.Route, error) {
	completed, err := q.CompleteRoute(ctx, route.ID)
	if err != nil {
		return db.Route{}, err
	}

	err = q.SetDeliveryOrdersStatusByRoute(ctx, db.SetDeliveryOrdersStatusByRouteParams{RouteID: route.ID, Status: orderDelivered})
	if err != nil {
		return db.Route{}, fmt.Errorf("deliver orders: %w", err)
	}

	// the truck may have been deleted since
	if route.TruckID.Valid {
		_, err = q.UpdateTruckAllocation(ctx, db.UpdateTruckAllocationParams{ID: route.TruckID.Int64, Status: truckFree})
		if err != nil {
			return db.Route{}, fmt.Errorf("free truck: %w", err)
		}
	}
	return completed, nil
}
