package data_sync

import (
	"context"
	"database/sql"

	db "logiflow/db/sqlc"
	"logiflow/internal/localstore"
)

// RemoteRepository is the shared store every node reconciles its local records with.
type RemoteRepository interface {
	UpsertUserAction(ctx context.Context, arg localstore.UserAction) error
	ListUserActions(ctx context.Context, userID, companyID string) ([]localstore.UserAction, error)
	UpsertForm(ctx context.Context, arg localstore.Form) error
	ListForms(ctx context.Context, userID, companyID string) ([]localstore.Form, error)
	UpsertOrder(ctx context.Context, arg localstore.Order) error
	ListOrders(ctx context.Context, userID, companyID string) ([]localstore.Order, error)
	ListTracking(ctx context.Context, companyID string) ([]localstore.TrackingInfo, error)
	ListHistory(ctx context.Context, userID, companyID string) ([]localstore.HistoryEvent, error)
}

// EventWriter publishes the pull-only kinds. Route operations write through it.
type EventWriter interface {
	UpsertTracking(ctx context.Context, arg localstore.TrackingInfo) error
	UpsertHistory(ctx context.Context, arg localstore.HistoryEvent) error
}

// Remote is what the container wires: both sides of the shared store.
type Remote interface {
	RemoteRepository
	EventWriter
}

type Repository struct {
	Conn    *sql.DB
	DBtx    db.DBTX
	Queries *db.Queries
	SqlConn *sql.DB
}

var _ Remote = (*Repository)(nil)

func NewSyncRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		DBtx:    Conn,
		Queries: q,
		SqlConn: Conn,
	}
}

func (r *Repository) UpsertUserAction(ctx context.Context, arg localstore.UserAction) error {
	return r.Queries.UpsertUserAction(ctx, ParseToUpsertUserAction(arg))
}

func (r *Repository) ListUserActions(ctx context.Context, userID, companyID string) ([]localstore.UserAction, error) {
	rows, err := r.Queries.ListUserActionsByOwner(ctx, db.ListUserActionsByOwnerParams{
		UserID:    userID,
		CompanyID: companyID,
	})
	if err != nil {
		return nil, err
	}

	result := make([]localstore.UserAction, 0, len(rows))
	for _, row := range rows {
		result = append(result, ParseFromUserAction(row))
	}
	return result, nil
}

func (r *Repository) UpsertForm(ctx context.Context, arg localstore.Form) error {
	return r.Queries.UpsertForm(ctx, ParseToUpsertForm(arg))
}

func (r *Repository) ListForms(ctx context.Context, userID, companyID string) ([]localstore.Form, error) {
	rows, err := r.Queries.ListFormsByOwner(ctx, db.ListFormsByOwnerParams{
		UserID:    userID,
		CompanyID: companyID,
	})
	if err != nil {
		return nil, err
	}

	result := make([]localstore.Form, 0, len(rows))
	for _, row := range rows {
		result = append(result, ParseFromForm(row))
	}
	return result, nil
}

func (r *Repository) UpsertOrder(ctx context.Context, arg localstore.Order) error {
	return r.Queries.UpsertOrder(ctx, ParseToUpsertOrder(arg))
}

func (r *Repository) ListOrders(ctx context.Context, userID, companyID string) ([]localstore.Order, error) {
	rows, err := r.Queries.ListOrdersByOwner(ctx, db.ListOrdersByOwnerParams{
		UserID:    userID,
		CompanyID: companyID,
	})
	if err != nil {
		return nil, err
	}

	result := make([]localstore.Order, 0, len(rows))
	for _, row := range rows {
		result = append(result, ParseFromOrder(row))
	}
	return result, nil
}

func (r *Repository) UpsertTracking(ctx context.Context, arg localstore.TrackingInfo) error {
	return r.Queries.UpsertTracking(ctx, db.UpsertTrackingParams{
		ID:           arg.ID,
		OrderID:      arg.OrderID,
		UserID:       arg.UserID,
		CompanyID:    arg.CompanyID,
		Location:     toNullRaw(arg.Location),
		StatusUpdate: arg.StatusUpdate,
		Timestamp:    arg.Timestamp,
	})
}

func (r *Repository) UpsertHistory(ctx context.Context, arg localstore.HistoryEvent) error {
	return r.Queries.UpsertHistory(ctx, db.UpsertHistoryParams{
		ID:           arg.ID,
		UserID:       arg.UserID,
		CompanyID:    arg.CompanyID,
		EventType:    arg.EventType,
		EventDetails: toNullRaw(arg.EventDetails),
		CreatedAt:    arg.CreatedAt,
	})
}

func (r *Repository) ListTracking(ctx context.Context, companyID string) ([]localstore.TrackingInfo, error) {
	rows, err := r.Queries.ListTrackingByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]localstore.TrackingInfo, 0, len(rows))
	for _, row := range rows {
		result = append(result, ParseFromTracking(row))
	}
	return result, nil
}

func (r *Repository) ListHistory(ctx context.Context, userID, companyID string) ([]localstore.HistoryEvent, error) {
	rows, err := r.Queries.ListHistoryByOwner(ctx, db.ListHistoryByOwnerParams{
		UserID:    userID,
		CompanyID: companyID,
	})
	if err != nil {
		return nil, err
	}

	result := make([]localstore.HistoryEvent, 0, len(rows))
	for _, row := range rows {
		result = append(result, ParseFromHistory(row))
	}
	return result, nil
}
