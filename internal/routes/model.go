package routes

import (
	"time"

	db "logiflow/db/sqlc"

	"github.com/google/uuid"
)

const (
	StatusPlanned    = "planned"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"

	WarningRodizioToday     = "rodizio_today"
	WarningCapacityExceeded = "capacity_exceeded"
	WarningMaxWeightUnknown = "max_weight_unknown"
	WarningTruckAllocated   = "truck_allocated"
	WarningNoTruckAvailable = "no_truck_available"

	NoStartAddress = "Não definido"

	EventRouteConfirmed = "route_confirmed"
	EventRouteCompleted = "route_completed"
)

type SuggestTruckRequest struct {
	OrderIDs []int64 `json:"order_ids" validate:"required,min=1"`
	TruckID  *int64  `json:"truck_id,omitempty"`
}

type ConfirmRouteRequest struct {
	OrderIDs        []int64 `json:"order_ids"                   validate:"required,min=1"`
	TruckID         *int64  `json:"truck_id,omitempty"`
	StartingPointID *int64  `json:"starting_point_id,omitempty"`
}

type SuggestTruckDto struct {
	Request   SuggestTruckRequest
	CompanyID uuid.UUID
}

type ConfirmRouteDto struct {
	Request   ConfirmRouteRequest
	CompanyID uuid.UUID
	UserID    uuid.UUID
}

// ConfirmRouteTx carries everything the repository writes when a route is confirmed.
type ConfirmRouteTx struct {
	Route db.CreateRouteParams
	// OrderIDs in visiting order.
	OrderIDs []int64
}

type TruckSummary struct {
	ID        int64   `json:"id"`
	Plate     string  `json:"plate"`
	Capacity  float64 `json:"capacity"`
	MaxWeight float64 `json:"max_weight"`
	Status    string  `json:"status"`
	Rodizio   string  `json:"rodizio"`
}

func (p *TruckSummary) ParseFromTruckObject(result db.Truck) {
	p.ID = result.ID
	p.Plate = result.Plate
	p.Capacity = result.Capacity
	p.MaxWeight = result.MaxWeight
	p.Status = result.Status
	p.Rodizio = result.Rodizio
}

type SuggestionResponse struct {
	Truck       *TruckSummary `json:"truck,omitempty"`
	TotalVolume float64       `json:"total_volume"`
	Warnings    []string      `json:"warnings"`
}

type StopResponse struct {
	OrderID  int64   `json:"order_id"`
	Position int32   `json:"position"`
	Address  string  `json:"address"`
	Volume   float64 `json:"volume"`
	Status   string  `json:"status"`
}

type RouteResponse struct {
	ID           int64          `json:"id"`
	CompanyID    uuid.UUID      `json:"company_id"`
	TruckID      *int64         `json:"truck_id"`
	TotalVolume  float64        `json:"total_volume"`
	DistanceKm   float64        `json:"distance_km"`
	DurationMin  float64        `json:"duration_min"`
	StartAddress string         `json:"start_address"`
	Polyline     string         `json:"polyline,omitempty"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
	Stops        []StopResponse `json:"stops,omitempty"`
	Warnings     []string       `json:"warnings,omitempty"`
}

func (p *RouteResponse) ParseFromRouteObject(result db.Route) {
	p.ID = result.ID
	p.CompanyID = result.CompanyID
	if result.TruckID.Valid {
		truckID := result.TruckID.Int64
		p.TruckID = &truckID
	}
	p.TotalVolume = result.TotalVolume
	p.DistanceKm = result.DistanceKm
	p.DurationMin = result.DurationMin
	p.StartAddress = result.StartAddress
	p.Polyline = result.Polyline.String
	p.Status = result.Status
	p.CreatedAt = result.CreatedAt
	if result.CompletedAt.Valid {
		completedAt := result.CompletedAt.Time
		p.CompletedAt = &completedAt
	}
}

func (p *RouteResponse) ParseStops(rows []db.ListRouteStopsRow) {
	p.Stops = make([]StopResponse, 0, len(rows))
	for _, row := range rows {
		p.Stops = append(p.Stops, StopResponse{
			OrderID:  row.OrderID,
			Position: row.Position,
			Address:  row.Address,
			Volume:   row.Volume,
			Status:   row.Status,
		})
	}
}
