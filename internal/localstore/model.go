package localstore

import (
	"encoding/json"
	"time"
)

type Kind string

const (
	KindUserActions Kind = "user_actions"
	KindForms       Kind = "forms"
	KindOrders      Kind = "orders"
	KindTracking    Kind = "tracking"
	KindHistory     Kind = "history"
)

const FormStatusDraft = "draft"

// Record is implemented by every kind kept in the store.
type Record interface {
	Kind() Kind
	Key() string
	Owner() (userID, companyID string)
}

// companyWide records are visible to every member of their company, regardless of user.
type companyWide interface {
	companyWide()
}

type UserAction struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	CompanyID  string          `json:"company_id"`
	ActionType string          `json:"action_type"`
	Details    json.RawMessage `json:"details,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (UserAction) Kind() Kind { return KindUserActions }
func (a UserAction) Key() string { return a.ID }
func (a UserAction) Owner() (string, string) { return a.UserID, a.CompanyID }

type Form struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	CompanyID string          `json:"company_id"`
	FormData  json.RawMessage `json:"form_data,omitempty"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

func (Form) Kind() Kind { return KindForms }
func (f Form) Key() string { return f.ID }
func (f Form) Owner() (string, string) { return f.UserID, f.CompanyID }

type Order struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	CompanyID   string          `json:"company_id"`
	OrderNumber string          `json:"order_number"`
	Status      string          `json:"status"`
	Details     json.RawMessage `json:"details,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (Order) Kind() Kind { return KindOrders }
func (o Order) Key() string { return o.ID }
func (o Order) Owner() (string, string) { return o.UserID, o.CompanyID }

type TrackingInfo struct {
	ID           string          `json:"id"`
	OrderID      string          `json:"order_id"`
	UserID       string          `json:"user_id"`
	CompanyID    string          `json:"company_id"`
	Location     json.RawMessage `json:"location,omitempty"`
	StatusUpdate string          `json:"status_update"`
	Timestamp    time.Time       `json:"timestamp"`
}

func (TrackingInfo) Kind() Kind { return KindTracking }
func (t TrackingInfo) Key() string { return t.ID }
func (t TrackingInfo) Owner() (string, string) { return t.UserID, t.CompanyID }
func (TrackingInfo) companyWide() {}

type HistoryEvent struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	CompanyID    string          `json:"company_id"`
	EventType    string          `json:"event_type"`
	EventDetails json.RawMessage `json:"event_details,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (HistoryEvent) Kind() Kind { return KindHistory }
func (h HistoryEvent) Key() string { return h.ID }
func (h HistoryEvent) Owner() (string, string) { return h.UserID, h.CompanyID }
