package maps

import "context"

const (
	SourceGoogle    = "google"
	SourceSimulated = "simulated"
)

// DirectionsProvider orders delivery stops starting (and ending) at origin.
type DirectionsProvider interface {
	Optimize(ctx context.Context, origin string, stops []string) (Result, error)
}

type Result struct {
	// Order holds indexes into the stops slice in visiting order.
	Order           []int   `json:"order"`
	DistanceMeters  int     `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
	Polyline        string  `json:"polyline,omitempty"`
	Source          string  `json:"source"`
}

func (r Result) DistanceKm() float64 {
	return float64(r.DistanceMeters) / 1000
}

func (r Result) DurationMinutes() float64 {
	return r.DurationSeconds / 60
}

type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}
