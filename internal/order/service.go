package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	db "logiflow/db/sqlc"
	"logiflow/internal/localstore"
	"logiflow/internal/records"
	"logiflow/validation"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderNotPending = errors.New("only pending orders can be deleted")
	ErrInvalidOrder    = errors.New("address is required and volume must be greater than zero")
	ErrInvalidStatus   = errors.New("invalid order status")
)

const ActionOrderCreated = "order_created"

// ActionRecorder keeps a local trace of what the user did so it reaches the remote store on the next sync.
type ActionRecorder interface {
	SaveActionService(ctx context.Context, owner records.Owner, actionType string, details any) (localstore.UserAction, error)
}

type InterfaceService interface {
	CreateOrderService(ctx context.Context, data CreateOrderDto) (OrderResponse, error)
	ListOrdersService(ctx context.Context, companyID uuid.UUID, status string) ([]OrderResponse, error)
	GetOrderService(ctx context.Context, id int64, companyID uuid.UUID) (OrderResponse, error)
	DeleteOrderService(ctx context.Context, id int64, companyID uuid.UUID) error
}

type Service struct {
	InterfaceService InterfaceRepository
	actions          ActionRecorder
}

func NewOrderService(InterfaceService InterfaceRepository, actions ActionRecorder) *Service {
	return &Service{InterfaceService: InterfaceService, actions: actions}
}

func (p *Service) CreateOrderService(ctx context.Context, data CreateOrderDto) (OrderResponse, error) {
	data.OrderRequest.Address = strings.TrimSpace(data.OrderRequest.Address)
	if err := validation.Validate(data.OrderRequest); err != nil {
		return OrderResponse{}, ErrInvalidOrder
	}

	result, err := p.InterfaceService.CreateDeliveryOrder(ctx, data.ParseCreateToOrder())
	if err != nil {
		return OrderResponse{}, fmt.Errorf("create order: %w", err)
	}

	if p.actions != nil {
		owner := records.Owner{UserID: data.UserID.String(), CompanyID: data.CompanyID.String()}
		details := map[string]any{"order_id": result.ID, "address": result.Address, "volume": result.Volume}
		if _, err := p.actions.SaveActionService(ctx, owner, ActionOrderCreated, details); err != nil {
			log.WithError(err).WithField("order_id", result.ID).Warn("erro ao registrar ação do usuário")
		}
	}

	response := OrderResponse{}
	response.ParseFromOrderObject(result)
	return response, nil
}

func (p *Service) ListOrdersService(ctx context.Context, companyID uuid.UUID, status string) ([]OrderResponse, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	result, err := p.InterfaceService.ListDeliveryOrders(ctx, db.ListDeliveryOrdersParams{CompanyID: companyID, Status: status})
	if err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0, len(result))
	for _, item := range result {
		response := OrderResponse{}
		response.ParseFromOrderObject(item)
		orders = append(orders, response)
	}
	return orders, nil
}

func (p *Service) GetOrderService(ctx context.Context, id int64, companyID uuid.UUID) (OrderResponse, error) {
	result, err := p.InterfaceService.GetDeliveryOrderByID(ctx, db.GetDeliveryOrderByIDParams{ID: id, CompanyID: companyID})
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, ErrOrderNotFound
	}
	if err != nil {
		return OrderResponse{}, err
	}

	response := OrderResponse{}
	response.ParseFromOrderObject(result)
	return response, nil
}

func (p *Service) DeleteOrderService(ctx context.Context, id int64, companyID uuid.UUID) error {
	result, err := p.InterfaceService.GetDeliveryOrderByID(ctx, db.GetDeliveryOrderByIDParams{ID: id, CompanyID: companyID})
	if errors.Is(err, sql.ErrNoRows) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}
	if result.Status != StatusPending {
		return ErrOrderNotPending
	}

	return p.InterfaceService.DeleteDeliveryOrder(ctx, db.DeleteDeliveryOrderParams{ID: id, CompanyID: companyID})
}
