package data_sync

import (
	"encoding/json"
	"time"

	db "logiflow/db/sqlc"
	"logiflow/internal/localstore"

	"github.com/sqlc-dev/pqtype"
)

type KindReport struct {
	Kind       localstore.Kind `json:"kind"`
	Pushed     int             `json:"pushed"`
	PushErrors int             `json:"push_errors"`
	Pulled     int             `json:"pulled"`
	Error      string          `json:"error,omitempty"`
}

type PassReport struct {
	UserID     string       `json:"user_id"`
	CompanyID  string       `json:"company_id"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Kinds      []KindReport `json:"kinds"`
}

func (r PassReport) Failed() bool {
	for _, k := range r.Kinds {
		if k.Error != "" || k.PushErrors > 0 {
			return true
		}
	}
	return false
}

type StatusResponse struct {
	Running   bool        `json:"running"`
	InFlight  bool        `json:"in_flight"`
	UserID    string      `json:"user_id,omitempty"`
	CompanyID string      `json:"company_id,omitempty"`
	Interval  string      `json:"interval"`
	LastPass  *PassReport `json:"last_pass,omitempty"`
	PassCount int64       `json:"pass_count"`
	SkipCount int64       `json:"skip_count"`
}

func toNullRaw(raw json.RawMessage) pqtype.NullRawMessage {
	return pqtype.NullRawMessage{RawMessage: raw, Valid: len(raw) > 0}
}

func fromNullRaw(raw pqtype.NullRawMessage) json.RawMessage {
	if !raw.Valid {
		return nil
	}
	return raw.RawMessage
}

func ParseToUpsertUserAction(a localstore.UserAction) db.UpsertUserActionParams {
	return db.UpsertUserActionParams{
		ID:         a.ID,
		UserID:     a.UserID,
		CompanyID:  a.CompanyID,
		ActionType: a.ActionType,
		Details:    toNullRaw(a.Details),
		CreatedAt:  a.CreatedAt,
	}
}

func ParseFromUserAction(a db.UserAction) localstore.UserAction {
	return localstore.UserAction{
		ID:         a.ID,
		UserID:     a.UserID,
		CompanyID:  a.CompanyID,
		ActionType: a.ActionType,
		Details:    fromNullRaw(a.Details),
		CreatedAt:  a.CreatedAt,
	}
}

func ParseToUpsertForm(f localstore.Form) db.UpsertFormParams {
	return db.UpsertFormParams{
		ID:        f.ID,
		UserID:    f.UserID,
		CompanyID: f.CompanyID,
		FormData:  toNullRaw(f.FormData),
		Status:    f.Status,
		CreatedAt: f.CreatedAt,
	}
}

func ParseFromForm(f db.Form) localstore.Form {
	return localstore.Form{
		ID:        f.ID,
		UserID:    f.UserID,
		CompanyID: f.CompanyID,
		FormData:  fromNullRaw(f.FormData),
		Status:    f.Status,
		CreatedAt: f.CreatedAt,
	}
}

func ParseToUpsertOrder(o localstore.Order) db.UpsertOrderParams {
	return db.UpsertOrderParams{
		ID:          o.ID,
		UserID:      o.UserID,
		CompanyID:   o.CompanyID,
		OrderNumber: o.OrderNumber,
		Status:      o.Status,
		Details:     toNullRaw(o.Details),
		CreatedAt:   o.CreatedAt,
	}
}

func ParseFromOrder(o db.Order) localstore.Order {
	return localstore.Order{
		ID:          o.ID,
		UserID:      o.UserID,
		CompanyID:   o.CompanyID,
		OrderNumber: o.OrderNumber,
		Status:      o.Status,
		Details:     fromNullRaw(o.Details),
		CreatedAt:   o.CreatedAt,
	}
}

func ParseFromTracking(t db.Tracking) localstore.TrackingInfo {
	return localstore.TrackingInfo{
		ID:           t.ID,
		OrderID:      t.OrderID,
		UserID:       t.UserID,
		CompanyID:    t.CompanyID,
		Location:     fromNullRaw(t.Location),
		StatusUpdate: t.StatusUpdate,
		Timestamp:    t.Timestamp,
	}
}

func ParseFromHistory(h db.History) localstore.HistoryEvent {
	return localstore.HistoryEvent{
		ID:           h.ID,
		UserID:       h.UserID,
		CompanyID:    h.CompanyID,
		EventType:    h.EventType,
		EventDetails: fromNullRaw(h.EventDetails),
		CreatedAt:    h.CreatedAt,
	}
}
