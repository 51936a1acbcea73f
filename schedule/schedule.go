package schedule

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrDuplicateID is returned when an entity ID is added twice.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrUnknownRoute is returned when a trip references a route that was never added.
	ErrUnknownRoute = errors.New("unknown route")
	// ErrUnknownStop is returned when a stop time references a stop that cannot be resolved.
	ErrUnknownStop = errors.New("unknown stop")
	// ErrUnknownShape is returned when a trip references a shape that cannot be resolved.
	ErrUnknownShape = errors.New("unknown shape")
	// ErrMissingArrival is returned when a stop time without arrival time is used for timing.
	ErrMissingArrival = errors.New("missing arrival time")
)

// Schedule stores a transit schedule in memory for ordered enumeration and
// lookups by ID. It is not safe to add entities while other goroutines read.
type Schedule struct {
	stops  []*Stop
	shapes []*Shape
	routes []*Route
	trips  []*Trip

	stopByID  map[string]*Stop
	shapeByID map[string]*Shape
	routeByID map[string]*Route
	tripByID  map[string]*Trip

	routeTrips map[string][]*Trip // route_id -> trips in insertion order
}

// New creates an empty schedule.
func New() *Schedule {
	return &Schedule{
		stopByID:   map[string]*Stop{},
		shapeByID:  map[string]*Shape{},
		routeByID:  map[string]*Route{},
		tripByID:   map[string]*Trip{},
		routeTrips: map[string][]*Trip{},
	}
}

// AddStop adds a stop. Stop IDs must be unique.
func (s *Schedule) AddStop(stop Stop) error {
	if _, ok := s.stopByID[stop.ID]; ok {
		return fmt.Errorf("stop %q: %w", stop.ID, ErrDuplicateID)
	}
	st := stop
	s.stops = append(s.stops, &st)
	s.stopByID[st.ID] = &st
	return nil
}

// AddShape adds a shape. Points are kept in the given order.
func (s *Schedule) AddShape(shape Shape) error {
	if _, ok := s.shapeByID[shape.ID]; ok {
		return fmt.Errorf("shape %q: %w", shape.ID, ErrDuplicateID)
	}
	sh := shape
	sh.Points = append([]ShapePoint(nil), shape.Points...)
	s.shapes = append(s.shapes, &sh)
	s.shapeByID[sh.ID] = &sh
	return nil
}

// AddRoute adds a route. Route IDs must be unique.
func (s *Schedule) AddRoute(route Route) error {
	if _, ok := s.routeByID[route.ID]; ok {
		return fmt.Errorf("route %q: %w", route.ID, ErrDuplicateID)
	}
	r := route
	s.routes = append(s.routes, &r)
	s.routeByID[r.ID] = &r
	return nil
}

// AddTrip adds a trip to its route. The route must already exist; stop and
// shape references are resolved lazily. Stop times are ordered by sequence.
func (s *Schedule) AddTrip(trip Trip) error {
	if _, ok := s.tripByID[trip.ID]; ok {
		return fmt.Errorf("trip %q: %w", trip.ID, ErrDuplicateID)
	}
	if _, ok := s.routeByID[trip.RouteID]; !ok {
		return fmt.Errorf("trip %q references route %q: %w", trip.ID, trip.RouteID, ErrUnknownRoute)
	}
	t := trip
	t.StopTimes = append([]StopTime(nil), trip.StopTimes...)
	sort.SliceStable(t.StopTimes, func(i, j int) bool { return t.StopTimes[i].Sequence < t.StopTimes[j].Sequence })
	s.trips = append(s.trips, &t)
	s.tripByID[t.ID] = &t
	s.routeTrips[t.RouteID] = append(s.routeTrips[t.RouteID], &t)
	return nil
}

// Accessor methods

func (s *Schedule) Stops() []*Stop    { return s.stops }
func (s *Schedule) Shapes() []*Shape  { return s.shapes }
func (s *Schedule) Routes() []*Route  { return s.routes }
func (s *Schedule) AllTrips() []*Trip { return s.trips }

func (s *Schedule) Stop(id string) (*Stop, bool) {
	v, ok := s.stopByID[id]
	return v, ok
}

func (s *Schedule) Shape(id string) (*Shape, bool) {
	v, ok := s.shapeByID[id]
	return v, ok
}

func (s *Schedule) Route(id string) (*Route, bool) {
	v, ok := s.routeByID[id]
	return v, ok
}

func (s *Schedule) Trip(id string) (*Trip, bool) {
	v, ok := s.tripByID[id]
	return v, ok
}

// RoutesOfType returns the routes whose GTFS route_type equals routeType.
func (s *Schedule) RoutesOfType(routeType int) []*Route {
	var out []*Route
	for _, r := range s.routes {
		if r.Type == routeType {
			out = append(out, r)
		}
	}
	return out
}

// Trips returns the trips of a route in insertion order.
func (s *Schedule) Trips(route *Route) []*Trip { return s.routeTrips[route.ID] }

// ShapeOf resolves the shape of a trip. It returns nil, nil for trips
// without a shape and ErrUnknownShape for dangling references.
func (s *Schedule) ShapeOf(trip *Trip) (*Shape, error) {
	if trip.ShapeID == "" {
		return nil, nil
	}
	sh, ok := s.shapeByID[trip.ShapeID]
	if !ok {
		return nil, fmt.Errorf("trip %q references shape %q: %w", trip.ID, trip.ShapeID, ErrUnknownShape)
	}
	return sh, nil
}

// StopOf resolves the stop referenced by a stop time.
func (s *Schedule) StopOf(st StopTime) (*Stop, error) {
	stop, ok := s.stopByID[st.StopID]
	if !ok {
		return nil, fmt.Errorf("stop %q: %w", st.StopID, ErrUnknownStop)
	}
	return stop, nil
}

// TripStops resolves every stop visited by a trip, in sequence order.
func (s *Schedule) TripStops(trip *Trip) ([]*Stop, error) {
	stops := make([]*Stop, 0, len(trip.StopTimes))
	for _, st := range trip.StopTimes {
		stop, err := s.StopOf(st)
		if err != nil {
			return nil, fmt.Errorf("trip %q: %w", trip.ID, err)
		}
		stops = append(stops, stop)
	}
	return stops, nil
}
