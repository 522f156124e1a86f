package maps

import (
	"context"
	"errors"

	"googlemaps.github.io/maps"
)

var ErrNoStops = errors.New("at least one stop is required")
var ErrNoRoute = errors.New("no route found")

type GoogleProvider struct {
	client *maps.Client
}

func NewGoogleProvider(apiKey string) (*GoogleProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GoogleProvider{client: client}, nil
}

// Optimize asks for a round trip from origin so every stop is a reorderable waypoint.
func (g *GoogleProvider) Optimize(ctx context.Context, origin string, stops []string) (Result, error) {
	if len(stops) == 0 {
		return Result{}, ErrNoStops
	}

	routeRequest := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: origin,
		Waypoints:   stops,
		Optimize:    true,
		Mode:        maps.TravelModeDriving,
		Region:      "br",
		Language:    "pt-BR",
	}
	routes, _, err := g.client.Directions(ctx, routeRequest)
	if err != nil {
		return Result{}, err
	}
	if len(routes) == 0 {
		return Result{}, ErrNoRoute
	}

	route := routes[0]
	result := Result{
		Order:    route.WaypointOrder,
		Polyline: route.OverviewPolyline.Points,
		Source:   SourceGoogle,
	}
	if len(result.Order) != len(stops) {
		result.Order = identityOrder(len(stops))
	}
	for _, leg := range route.Legs {
		result.DistanceMeters += leg.Distance.Meters
		result.DurationSeconds += leg.Duration.Seconds()
	}

	return result, nil
}

// DecodePath expands an encoded overview polyline into coordinates.
func DecodePath(polyline string) ([]LatLng, error) {
	if polyline == "" {
		return nil, nil
	}
	points, err := maps.DecodePolyline(polyline)
	if err != nil {
		return nil, err
	}

	path := make([]LatLng, 0, len(points))
	for _, p := range points {
		path = append(path, LatLng{Latitude: p.Lat, Longitude: p.Lng})
	}
	return path, nil
}
