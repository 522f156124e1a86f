package records

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"logiflow/internal/data_sync"
	"logiflow/internal/localstore"
)

var ErrInvalidRecord = errors.New("invalid record")

type InterfaceService interface {
	SaveActionService(ctx context.Context, owner Owner, actionType string, details any) (localstore.UserAction, error)
	SaveFormService(ctx context.Context, owner Owner, data SaveFormRequest) (localstore.Form, error)
	SaveOrderService(ctx context.Context, owner Owner, data SaveOrderRequest) (localstore.Order, error)
	GetFormsService(ctx context.Context, owner Owner) ([]localstore.Form, error)
	GetOrdersService(ctx context.Context, owner Owner) ([]localstore.Order, error)
	GetHistoryService(ctx context.Context, owner Owner) ([]localstore.HistoryEvent, error)
	GetTrackingService(ctx context.Context, owner Owner) ([]localstore.TrackingInfo, error)
	GetActionsService(ctx context.Context, owner Owner) ([]localstore.UserAction, error)
	ForceSyncService(ctx context.Context, owner Owner) (data_sync.PassReport, error)
	SyncStatusService(owner Owner) data_sync.StatusResponse
}

type Service struct {
	store *localstore.Store
	sync  data_sync.InterfaceService

	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

func NewRecordsService(store *localstore.Store, syncer data_sync.InterfaceService) *Service {
	return &Service{store: store, sync: syncer, now: time.Now}
}

// stamp returns a strictly increasing time so ids generated in a burst never collide.
func (s *Service) stamp() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.now()
	if !t.After(s.last) {
		t = s.last.Add(time.Nanosecond)
	}
	s.last = t
	return t
}

func (s *Service) SaveActionService(ctx context.Context, owner Owner, actionType string, details any) (localstore.UserAction, error) {
	if actionType == "" {
		return localstore.UserAction{}, ErrInvalidRecord
	}

	var raw json.RawMessage
	switch d := details.(type) {
	case nil:
	case json.RawMessage:
		raw = d
	default:
		encoded, err := json.Marshal(details)
		if err != nil {
			return localstore.UserAction{}, err
		}
		raw = encoded
	}

	now := s.stamp()
	action := localstore.UserAction{
		ID:         recordID(localstore.KindUserActions, owner.UserID, now),
		UserID:     owner.UserID,
		CompanyID:  owner.CompanyID,
		ActionType: actionType,
		Details:    raw,
		CreatedAt:  now.UTC(),
	}
	return action, localstore.Put(ctx, s.store, action)
}

func (s *Service) SaveFormService(ctx context.Context, owner Owner, data SaveFormRequest) (localstore.Form, error) {
	if len(data.FormData) == 0 || !json.Valid(data.FormData) {
		return localstore.Form{}, ErrInvalidRecord
	}
	status := data.Status
	if status == "" {
		status = localstore.FormStatusDraft
	}

	now := s.stamp()
	form := localstore.Form{
		ID:        recordID(localstore.KindForms, owner.UserID, now),
		UserID:    owner.UserID,
		CompanyID: owner.CompanyID,
		FormData:  data.FormData,
		Status:    status,
		CreatedAt: now.UTC(),
	}
	return form, localstore.Put(ctx, s.store, form)
}

func (s *Service) SaveOrderService(ctx context.Context, owner Owner, data SaveOrderRequest) (localstore.Order, error) {
	if data.OrderNumber == "" || data.Status == "" {
		return localstore.Order{}, ErrInvalidRecord
	}
	if len(data.Details) > 0 && !json.Valid(data.Details) {
		return localstore.Order{}, ErrInvalidRecord
	}

	now := s.stamp()
	order := localstore.Order{
		ID:          recordID(localstore.KindOrders, owner.UserID, now),
		UserID:      owner.UserID,
		CompanyID:   owner.CompanyID,
		OrderNumber: data.OrderNumber,
		Status:      data.Status,
		Details:     data.Details,
		CreatedAt:   now.UTC(),
	}
	return order, localstore.Put(ctx, s.store, order)
}

func (s *Service) GetFormsService(ctx context.Context, owner Owner) ([]localstore.Form, error) {
	return localstore.List[localstore.Form](ctx, s.store, owner.UserID, owner.CompanyID)
}

func (s *Service) GetOrdersService(ctx context.Context, owner Owner) ([]localstore.Order, error) {
	return localstore.List[localstore.Order](ctx, s.store, owner.UserID, owner.CompanyID)
}

func (s *Service) GetHistoryService(ctx context.Context, owner Owner) ([]localstore.HistoryEvent, error) {
	return localstore.List[localstore.HistoryEvent](ctx, s.store, owner.UserID, owner.CompanyID)
}

func (s *Service) GetTrackingService(ctx context.Context, owner Owner) ([]localstore.TrackingInfo, error) {
	return localstore.List[localstore.TrackingInfo](ctx, s.store, owner.UserID, owner.CompanyID)
}

func (s *Service) GetActionsService(ctx context.Context, owner Owner) ([]localstore.UserAction, error) {
	return localstore.List[localstore.UserAction](ctx, s.store, owner.UserID, owner.CompanyID)
}

func (s *Service) ForceSyncService(ctx context.Context, owner Owner) (data_sync.PassReport, error) {
	return s.sync.ForceSyncNowService(ctx, owner.UserID, owner.CompanyID)
}

func (s *Service) SyncStatusService(owner Owner) data_sync.StatusResponse {
	return s.sync.StatusService(owner.UserID, owner.CompanyID)
}
