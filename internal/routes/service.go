package routes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	db "logiflow/db/sqlc"
	"logiflow/internal/data_sync"
	"logiflow/internal/localstore"
	"logiflow/pkg/maps"
	"logiflow/pkg/metrics"
	"logiflow/pkg/rodizio"
	"logiflow/validation"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidRoute          = errors.New("at least one order is required")
	ErrOrderNotFound         = errors.New("one or more orders were not found")
	ErrOrderNotPending       = errors.New("all orders must be pending")
	ErrTruckNotFound         = errors.New("truck not found")
	ErrTruckAllocated        = errors.New("truck is already allocated")
	ErrNoTruckAvailable      = errors.New("no free truck fits the total volume")
	ErrCapacityExceeded      = errors.New("total volume exceeds the truck capacity")
	ErrStartingPointNotFound = errors.New("starting point not found")
	ErrRouteNotFound         = errors.New("route not found")
	ErrRouteCompleted        = errors.New("route is already completed")
	ErrInvalidStatus         = errors.New("invalid route status")
)

type InterfaceService interface {
	SuggestTruckService(ctx context.Context, data SuggestTruckDto) (SuggestionResponse, error)
	ConfirmRouteService(ctx context.Context, data ConfirmRouteDto) (RouteResponse, error)
	CompleteRouteService(ctx context.Context, id int64, companyID, userID uuid.UUID) (RouteResponse, error)
	ListRoutesService(ctx context.Context, companyID uuid.UUID, status string) ([]RouteResponse, error)
	GetRouteService(ctx context.Context, id int64, companyID uuid.UUID) (RouteResponse, error)
}

type Service struct {
	InterfaceService InterfaceRepository
	directions       maps.DirectionsProvider
	events           data_sync.EventWriter
	notifier         data_sync.Notifier
	now              func() time.Time
}

func NewRoutesService(InterfaceService InterfaceRepository, directions maps.DirectionsProvider, events data_sync.EventWriter, notifier data_sync.Notifier) *Service {
	return &Service{
		InterfaceService: InterfaceService,
		directions:       directions,
		events:           events,
		notifier:         notifier,
		now:              time.Now,
	}
}

func (s *Service) SuggestTruckService(ctx context.Context, data SuggestTruckDto) (SuggestionResponse, error) {
	if err := validation.Validate(data.Request); err != nil {
		return SuggestionResponse{}, ErrInvalidRoute
	}

	orders, err := s.loadOrders(ctx, data.CompanyID, data.Request.OrderIDs)
	if err != nil {
		return SuggestionResponse{}, err
	}
	total := totalVolume(orders)

	response := SuggestionResponse{TotalVolume: total, Warnings: []string{}}

	var truck db.Truck
	if data.Request.TruckID != nil {
		truck, err = s.getTruck(ctx, *data.Request.TruckID, data.CompanyID)
		if err != nil {
			return SuggestionResponse{}, err
		}
	} else {
		var found bool
		truck, found, err = s.bestFit(ctx, data.CompanyID, total)
		if err != nil {
			return SuggestionResponse{}, err
		}
		if !found {
			response.Warnings = append(response.Warnings, WarningNoTruckAvailable)
			return response, nil
		}
	}

	response.Truck = &TruckSummary{}
	response.Truck.ParseFromTruckObject(truck)
	response.Warnings = append(response.Warnings, truckWarnings(truck, total, s.now())...)
	return response, nil
}

func (s *Service) ConfirmRouteService(ctx context.Context, data ConfirmRouteDto) (RouteResponse, error) {
	if err := validation.Validate(data.Request); err != nil {
		return RouteResponse{}, ErrInvalidRoute
	}

	orders, err := s.loadOrders(ctx, data.CompanyID, data.Request.OrderIDs)
	if err != nil {
		return RouteResponse{}, err
	}
	if err := checkPending(orders, nil); err != nil {
		return RouteResponse{}, err
	}
	total := totalVolume(orders)

	var truck db.Truck
	if data.Request.TruckID != nil {
		truck, err = s.getTruck(ctx, *data.Request.TruckID, data.CompanyID)
		if err != nil {
			return RouteResponse{}, err
		}
		if truck.Status != truckFree {
			return RouteResponse{}, ErrTruckAllocated
		}
	} else {
		var found bool
		truck, found, err = s.bestFit(ctx, data.CompanyID, total)
		if err != nil {
			return RouteResponse{}, err
		}
		if !found {
			return RouteResponse{}, ErrNoTruckAvailable
		}
	}
	if total > truck.Capacity {
		return RouteResponse{}, ErrCapacityExceeded
	}

	startAddress, err := s.resolveStart(ctx, data.CompanyID, data.Request.StartingPointID)
	if err != nil {
		return RouteResponse{}, err
	}

	addresses := make([]string, 0, len(orders))
	for _, o := range orders {
		addresses = append(addresses, o.Address)
	}
	origin := startAddress
	if origin == NoStartAddress {
		origin = addresses[0]
	}

	directions, err := s.directions.Optimize(ctx, origin, addresses)
	if err != nil {
		return RouteResponse{}, fmt.Errorf("optimize route: %w", err)
	}
	visiting := applyOrder(orders, directions.Order)

	orderIDs := make([]int64, 0, len(visiting))
	for _, o := range visiting {
		orderIDs = append(orderIDs, o.ID)
	}

	route, err := s.InterfaceService.ConfirmRoute(ctx, ConfirmRouteTx{
		Route: db.CreateRouteParams{
			CompanyID:    data.CompanyID,
			TruckID:      sql.NullInt64{Int64: truck.ID, Valid: true},
			TotalVolume:  total,
			DistanceKm:   round(directions.DistanceKm(), 2),
			DurationMin:  round(directions.DurationMinutes(), 1),
			StartAddress: startAddress,
			Polyline:     validation.NullString(directions.Polyline),
			Status:       StatusInProgress,
		},
		OrderIDs: orderIDs,
	})
	if err != nil {
		return RouteResponse{}, err
	}
	metrics.RoutesConfirmed.Inc()

	response := RouteResponse{}
	response.ParseFromRouteObject(route)
	response.Stops = make([]StopResponse, 0, len(visiting))
	for i, o := range visiting {
		response.Stops = append(response.Stops, StopResponse{
			OrderID:  o.ID,
			Position: int32(i + 1),
			Address:  o.Address,
			Volume:   o.Volume,
			Status:   orderAllocated,
		})
	}
	response.Warnings = truckWarnings(truck, total, s.now())

	s.publish(ctx, data.UserID, data.CompanyID, EventRouteConfirmed, response, orderIDs, orderAllocated)

	log.WithFields(log.Fields{
		"route_id":   route.ID,
		"truck_id":   truck.ID,
		"company_id": data.CompanyID,
		"stops":      len(orderIDs),
		"source":     directions.Source,
	}).Info("rota confirmada")

	return response, nil
}

func (s *Service) CompleteRouteService(ctx context.Context, id int64, companyID, userID uuid.UUID) (RouteResponse, error) {
	route, err := s.InterfaceService.GetRouteByID(ctx, db.GetRouteByIDParams{ID: id, CompanyID: companyID})
	if errors.Is(err, sql.ErrNoRows) {
		return RouteResponse{}, ErrRouteNotFound
	}
	if err != nil {
		return RouteResponse{}, err
	}
	if route.Status == StatusCompleted {
		return RouteResponse{}, ErrRouteCompleted
	}

	completed, err := s.InterfaceService.CompleteRoute(ctx, route)
	if err != nil {
		return RouteResponse{}, err
	}

	response := RouteResponse{}
	response.ParseFromRouteObject(completed)

	stops, err := s.InterfaceService.ListRouteStops(ctx, completed.ID)
	if err != nil {
		return RouteResponse{}, err
	}
	response.ParseStops(stops)

	orderIDs := make([]int64, 0, len(stops))
	for _, stop := range stops {
		orderIDs = append(orderIDs, stop.OrderID)
	}
	s.publish(ctx, userID, companyID, EventRouteCompleted, response, orderIDs, orderDelivered)

	return response, nil
}

func (s *Service) ListRoutesService(ctx context.Context, companyID uuid.UUID, status string) ([]RouteResponse, error) {
	switch status {
	case "", StatusPlanned, StatusInProgress, StatusCompleted:
	default:
		return nil, ErrInvalidStatus
	}

	result, err := s.InterfaceService.ListRoutes(ctx, db.ListRoutesParams{CompanyID: companyID, Status: status})
	if err != nil {
		return nil, err
	}

	routes := make([]RouteResponse, 0, len(result))
	for _, item := range result {
		response := RouteResponse{}
		response.ParseFromRouteObject(item)
		routes = append(routes, response)
	}
	return routes, nil
}

func (s *Service) GetRouteService(ctx context.Context, id int64, companyID uuid.UUID) (RouteResponse, error) {
	route, err := s.InterfaceService.GetRouteByID(ctx, db.GetRouteByIDParams{ID: id, CompanyID: companyID})
	if errors.Is(err, sql.ErrNoRows) {
		return RouteResponse{}, ErrRouteNotFound
	}
	if err != nil {
		return RouteResponse{}, err
	}

	stops, err := s.InterfaceService.ListRouteStops(ctx, route.ID)
	if err != nil {
		return RouteResponse{}, err
	}

	response := RouteResponse{}
	response.ParseFromRouteObject(route)
	response.ParseStops(stops)
	return response, nil
}

func (s *Service) loadOrders(ctx context.Context, companyID uuid.UUID, ids []int64) ([]db.DeliveryOrder, error) {
	unique := dedupe(ids)
	orders, err := s.InterfaceService.ListDeliveryOrdersByIDs(ctx, db.ListDeliveryOrdersByIDsParams{CompanyID: companyID, Ids: unique})
	if err != nil {
		return nil, err
	}
	if len(orders) != len(unique) {
		return nil, ErrOrderNotFound
	}
	return orders, nil
}

func (s *Service) getTruck(ctx context.Context, id int64, companyID uuid.UUID) (db.Truck, error) {
	truck, err := s.InterfaceService.GetTruckByID(ctx, db.GetTruckByIDParams{ID: id, CompanyID: companyID})
	if errors.Is(err, sql.ErrNoRows) {
		return db.Truck{}, ErrTruckNotFound
	}
	return truck, err
}

// bestFit returns the smallest free truck that holds total.
func (s *Service) bestFit(ctx context.Context, companyID uuid.UUID, total float64) (db.Truck, bool, error) {
	trucks, err := s.InterfaceService.ListFreeTrucksByCapacity(ctx, db.ListFreeTrucksByCapacityParams{CompanyID: companyID, Capacity: total})
	if err != nil {
		return db.Truck{}, false, err
	}
	if len(trucks) == 0 {
		return db.Truck{}, false, nil
	}

	best := trucks[0]
	for _, t := range trucks[1:] {
		if t.Capacity < best.Capacity {
			best = t
		}
	}
	return best, true, nil
}

func (s *Service) resolveStart(ctx context.Context, companyID uuid.UUID, pointID *int64) (string, error) {
	if pointID != nil {
		point, err := s.InterfaceService.GetStartingPointByID(ctx, db.GetStartingPointByIDParams{ID: *pointID, CompanyID: companyID})
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrStartingPointNotFound
		}
		if err != nil {
			return "", err
		}
		return point.Address, nil
	}

	point, err := s.InterfaceService.GetDefaultStartingPoint(ctx, companyID)
	if errors.Is(err, sql.ErrNoRows) {
		return NoStartAddress, nil
	}
	if err != nil {
		return "", err
	}
	return point.Address, nil
}

// publish records the route change in the shared history and tracking tables and
// notifies connected clients. Failures are logged only.
func (s *Service) publish(ctx context.Context, userID, companyID uuid.UUID, eventType string, route RouteResponse, orderIDs []int64, orderStatus string) {
	now := s.now()
	logger := log.WithFields(log.Fields{"route_id": route.ID, "event": eventType})

	if s.events != nil {
		details, err := json.Marshal(route)
		if err != nil {
			logger.WithError(err).Warn("erro ao serializar evento da rota")
		} else {
			err = s.events.UpsertHistory(ctx, localstore.HistoryEvent{
				ID:           fmt.Sprintf("%s-%d-%d", localstore.KindHistory, route.ID, now.UnixNano()),
				UserID:       userID.String(),
				CompanyID:    companyID.String(),
				EventType:    eventType,
				EventDetails: details,
				CreatedAt:    now,
			})
			if err != nil {
				logger.WithError(err).Warn("erro ao registrar histórico da rota")
			}
		}

		for _, orderID := range orderIDs {
			location, _ := json.Marshal(map[string]any{"route_id": route.ID, "address": stopAddress(route.Stops, orderID)})
			err := s.events.UpsertTracking(ctx, localstore.TrackingInfo{
				ID:           fmt.Sprintf("%s-%d-%d", localstore.KindTracking, orderID, now.UnixNano()),
				OrderID:      fmt.Sprint(orderID),
				UserID:       userID.String(),
				CompanyID:    companyID.String(),
				Location:     location,
				StatusUpdate: orderStatus,
				Timestamp:    now,
			})
			if err != nil {
				logger.WithError(err).WithField("order_id", orderID).Warn("erro ao registrar rastreamento")
			}
		}
	}

	if s.notifier != nil {
		s.notifier.Broadcast(companyID.String(), eventType, route)
	}
}

func truckWarnings(truck db.Truck, total float64, now time.Time) []string {
	warnings := []string{}
	if truck.Status != truckFree {
		warnings = append(warnings, WarningTruckAllocated)
	}
	if rodizio.IsRestrictedOn(truck.Rodizio, now) {
		warnings = append(warnings, WarningRodizioToday)
	}
	if total > truck.Capacity {
		warnings = append(warnings, WarningCapacityExceeded)
	}
	if truck.MaxWeight <= 0 {
		warnings = append(warnings, WarningMaxWeightUnknown)
	}
	return warnings
}

// checkPending fails unless every order is pending and, when ids is set, every id was found.
func checkPending(orders []db.DeliveryOrder, ids []int64) error {
	if ids != nil && len(orders) != len(dedupe(ids)) {
		return ErrOrderNotFound
	}
	for _, o := range orders {
		if o.Status != "pending" {
			return fmt.Errorf("order %d is %s: %w", o.ID, o.Status, ErrOrderNotPending)
		}
	}
	return nil
}

// applyOrder reorders orders by the provider's waypoint order, keeping the
// input order when the answer is not a permutation.
func applyOrder(orders []db.DeliveryOrder, order []int) []db.DeliveryOrder {
	if len(order) != len(orders) {
		return orders
	}
	seen := make([]bool, len(orders))
	result := make([]db.DeliveryOrder, 0, len(orders))
	for _, idx := range order {
		if idx < 0 || idx >= len(orders) || seen[idx] {
			return orders
		}
		seen[idx] = true
		result = append(result, orders[idx])
	}
	return result
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

func totalVolume(orders []db.DeliveryOrder) float64 {
	var total float64
	for _, o := range orders {
		total += o.Volume
	}
	return round(total, 3)
}

func stopAddress(stops []StopResponse, orderID int64) string {
	for _, stop := range stops {
		if stop.OrderID == orderID {
			return stop.Address
		}
	}
	return ""
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
