package truck

import (
	"math"
	"time"

	db "logiflow/db/sqlc"
	"logiflow/pkg/rodizio"

	"github.com/google/uuid"
)

const (
	StatusFree      = "free"
	StatusAllocated = "allocated"
)

type TruckRequest struct {
	Plate     string  `json:"plate"      validate:"required"`
	Capacity  float64 `json:"capacity"   validate:"gte=0"`
	MaxWeight float64 `json:"max_weight" validate:"gte=0"`
	Length    float64 `json:"length"     validate:"gte=0"`
	Width     float64 `json:"width"      validate:"gte=0"`
	Height    float64 `json:"height"     validate:"gte=0"`
}

// EffectiveCapacity falls back to length x width x height when no capacity is given.
func (r TruckRequest) EffectiveCapacity() float64 {
	if r.Capacity > 0 {
		return r.Capacity
	}
	if r.Length > 0 && r.Width > 0 && r.Height > 0 {
		return math.Round(r.Length*r.Width*r.Height*100) / 100
	}
	return 0
}

type CreateTruckDto struct {
	TruckRequest TruckRequest
	CompanyID    uuid.UUID
}

func (p *CreateTruckDto) ParseCreateToTruck(plate string) db.CreateTruckParams {
	return db.CreateTruckParams{
		CompanyID: p.CompanyID,
		Plate:     plate,
		Capacity:  p.TruckRequest.EffectiveCapacity(),
		MaxWeight: p.TruckRequest.MaxWeight,
		Length:    p.TruckRequest.Length,
		Width:     p.TruckRequest.Width,
		Height:    p.TruckRequest.Height,
		Rodizio:   rodizio.DayForPlate(plate),
	}
}

type UpdateTruckDto struct {
	TruckRequest TruckRequest
	ID           int64
	CompanyID    uuid.UUID
}

func (p *UpdateTruckDto) ParseUpdateToTruck(plate string) db.UpdateTruckParams {
	return db.UpdateTruckParams{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		Plate:     plate,
		Capacity:  p.TruckRequest.EffectiveCapacity(),
		MaxWeight: p.TruckRequest.MaxWeight,
		Length:    p.TruckRequest.Length,
		Width:     p.TruckRequest.Width,
		Height:    p.TruckRequest.Height,
		Rodizio:   rodizio.DayForPlate(plate),
	}
}

type TruckResponse struct {
	ID              int64      `json:"id"`
	CompanyID       uuid.UUID  `json:"company_id"`
	Plate           string     `json:"plate"`
	Capacity        float64    `json:"capacity"`
	MaxWeight       float64    `json:"max_weight"`
	Length          float64    `json:"length"`
	Width           float64    `json:"width"`
	Height          float64    `json:"height"`
	Status          string     `json:"status"`
	Rodizio         string     `json:"rodizio"`
	RestrictedToday bool       `json:"restricted_today"`
	OccupiedVolume  float64    `json:"occupied_volume"`
	OccupancyPct    float64    `json:"occupancy_pct"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

func (p *TruckResponse) ParseFromTruckObject(result db.Truck, now time.Time) {
	p.ID = result.ID
	p.CompanyID = result.CompanyID
	p.Plate = result.Plate
	p.Capacity = result.Capacity
	p.MaxWeight = result.MaxWeight
	p.Length = result.Length
	p.Width = result.Width
	p.Height = result.Height
	p.Status = result.Status
	p.Rodizio = result.Rodizio
	p.RestrictedToday = rodizio.IsRestrictedOn(result.Rodizio, now)
	p.OccupiedVolume = result.OccupiedVolume
	p.OccupancyPct = Occupancy(result.OccupiedVolume, result.Capacity)
	p.CreatedAt = result.CreatedAt
	if result.UpdatedAt.Valid {
		p.UpdatedAt = &result.UpdatedAt.Time
	}
}

// Occupancy is the used share of capacity in percent, rounded to one decimal.
func Occupancy(occupied, capacity float64) float64 {
	if capacity <= 0 {
		return 0
	}
	pct := occupied / capacity * 100
	return float64(int64(pct*10+0.5)) / 10
}

type RodizioResponse struct {
	Plate           string `json:"plate"`
	Day             string `json:"day"`
	RestrictedToday bool   `json:"restricted_today"`
}
