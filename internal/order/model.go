package order

import (
	"time"

	db "logiflow/db/sqlc"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusAllocated = "allocated"
	StatusDelivered = "delivered"
)

type OrderRequest struct {
	Address string  `json:"address" validate:"required"`
	Volume  float64 `json:"volume"  validate:"gt=0"`
}

type CreateOrderDto struct {
	OrderRequest OrderRequest
	CompanyID    uuid.UUID
	UserID       uuid.UUID
}

func (p *CreateOrderDto) ParseCreateToOrder() db.CreateDeliveryOrderParams {
	return db.CreateDeliveryOrderParams{
		CompanyID: p.CompanyID,
		Address:   p.OrderRequest.Address,
		Volume:    p.OrderRequest.Volume,
	}
}

type OrderResponse struct {
	ID        int64     `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	Address   string    `json:"address"`
	Volume    float64   `json:"volume"`
	Status    string    `json:"status"`
	TruckID   *int64    `json:"truck_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *OrderResponse) ParseFromOrderObject(result db.DeliveryOrder) {
	p.ID = result.ID
	p.CompanyID = result.CompanyID
	p.Address = result.Address
	p.Volume = result.Volume
	p.Status = result.Status
	if result.TruckID.Valid {
		truckID := result.TruckID.Int64
		p.TruckID = &truckID
	}
	p.CreatedAt = result.CreatedAt
}

func ValidStatus(status string) bool {
	switch status {
	case "", StatusPending, StatusAllocated, StatusDelivered:
		return true
	}
	return false
}
