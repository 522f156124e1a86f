package dashboard

import (
	db "logiflow/db/sqlc"
)

// Shown until a completed route carries a measured duration.
const DefaultMinutesPerDelivery = 45.0

type StartingPointInfo struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type RestrictedTruck struct {
	ID      int64  `json:"id"`
	Plate   string `json:"plate"`
	Rodizio string `json:"rodizio"`
	Status  string `json:"status"`
}

type Response struct {
	TotalTrucks           int64              `json:"total_trucks"`
	FreeTrucks            int64              `json:"free_trucks"`
	AllocatedTrucks       int64              `json:"allocated_trucks"`
	PendingOrders         int64              `json:"pending_orders"`
	ActiveRoutes          int64              `json:"active_routes"`
	CompletedRoutes       int64              `json:"completed_routes"`
	AvgOccupancyPct       float64            `json:"avg_occupancy_pct"`
	AvgMinutesPerDelivery float64            `json:"avg_minutes_per_delivery"`
	DefaultStartingPoint  *StartingPointInfo `json:"default_starting_point,omitempty"`
	TrucksRestrictedToday []RestrictedTruck  `json:"trucks_restricted_today"`
}

func (p *Response) ParseFleet(row db.GetFleetSummaryRow) {
	p.TotalTrucks = row.TotalTrucks
	p.FreeTrucks = row.FreeTrucks
	p.AllocatedTrucks = row.AllocatedTrucks
	if row.TotalTrucks > 0 {
		p.AvgOccupancyPct = roundOne(row.AvgOccupancy * 100)
	}
}

func (p *Response) ParseRoutes(row db.GetRouteSummaryRow) {
	p.ActiveRoutes = row.ActiveRoutes
	p.CompletedRoutes = row.CompletedRoutes
	p.AvgMinutesPerDelivery = DefaultMinutesPerDelivery
	if row.AvgMinutesPerStop.Valid && row.AvgMinutesPerStop.Float64 > 0 {
		p.AvgMinutesPerDelivery = roundOne(row.AvgMinutesPerStop.Float64)
	}
}
