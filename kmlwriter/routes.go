package kmlwriter

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/mazznoer/colorgrad"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/gtfs-to-kml/kml"
	"github.com/theoremus-urban-solutions/gtfs-to-kml/schedule"
	"github.com/theoremus-urban-solutions/gtfs-to-kml/utils"
)

const routeLineWidth = 4

// paletteColors seed the gradient used for routes without a route_color.
var paletteColors = []string{"#e41a1c", "#377eb8", "#4daf4a", "#984ea3", "#ff7f00"}

func routeStyleID(route *schedule.Route) string {
	return "route_" + route.ID
}

// routesFolder returns one Style per emitted route and the Routes folder.
// Both are empty/nil when no route qualifies.
func (w *Writer) routesFolder(s *schedule.Schedule) ([]*kml.Element, *kml.Element, error) {
	routes := s.Routes()
	if w.opts.RouteType != nil {
		routes = s.RoutesOfType(*w.opts.RouteType)
	}
	if len(routes) == 0 {
		return nil, nil, nil
	}

	palette, err := routePalette(len(routes))
	if err != nil {
		return nil, nil, err
	}

	var styles []*kml.Element
	folder := kml.Folder("Routes", true, "")
	for i, route := range routes {
		rf, err := w.routeFolder(s, route)
		if err != nil {
			return nil, nil, fmt.Errorf("route %s: %w", route.ID, err)
		}
		if rf == nil {
			w.log.Debug("skipping empty route", zap.String("route", route.ID))
			continue
		}
		styles = append(styles, kml.Style(routeStyleID(route), routeColor(route, palette[i]), routeLineWidth))
		folder.Add(rf)
	}
	if len(folder.FindAll("Folder")) == 0 {
		return nil, nil, nil
	}
	w.log.Debug("routes folder", zap.Int("routes", len(styles)))
	return styles, folder, nil
}

// routeFolder returns the folder of a single route. A route with no content
// is kept only if it has a name.
func (w *Writer) routeFolder(s *schedule.Schedule, route *schedule.Route) (*kml.Element, error) {
	styleID := routeStyleID(route)

	patterns, err := w.routePatternsFolder(s, route, styleID)
	if err != nil {
		return nil, err
	}
	shapes, err := w.routeShapesFolder(s, route, styleID)
	if err != nil {
		return nil, err
	}
	var trips *kml.Element
	if w.opts.ShowTrips {
		if trips, err = w.routeTripsFolder(s, route, styleID); err != nil {
			return nil, err
		}
	}

	name := route.Name()
	if patterns == nil && shapes == nil && trips == nil && name == "" {
		return nil, nil
	}
	if name == "" {
		name = route.ID
	}
	return kml.Folder(name, true, route.Desc).Add(patterns, shapes, trips), nil
}

// routePatternsFolder draws each distinct stop pattern of the route once,
// using the stop locations in sequence order. Returns nil when the route has
// no trips with stops.
func (w *Writer) routePatternsFolder(s *schedule.Schedule, route *schedule.Route, styleID string) (*kml.Element, error) {
	groups := groupByPattern(s.Trips(route))
	if len(groups) == 0 {
		return nil, nil
	}
	folder := kml.Folder("Patterns", true, "")
	for _, g := range groups {
		rep := g.trips[0]
		stops, err := s.TripStops(rep)
		if err != nil {
			return nil, err
		}
		p := kml.Placemark(rep.Name(), true, styleID, tripListDescription("Trips using this pattern", g.trips))
		p.Add(kml.LineString(stopCoords(stops)))
		folder.Add(p)
	}
	return folder, nil
}

// routeShapesFolder draws each distinct shape used by the route's trips once.
// Returns nil when no trip has a shape.
func (w *Writer) routeShapesFolder(s *schedule.Schedule, route *schedule.Route, styleID string) (*kml.Element, error) {
	var (
		order  []*schedule.Shape
		byID   = map[string][]*schedule.Trip{}
		shapes = map[string]*schedule.Shape{}
	)
	for _, trip := range s.Trips(route) {
		shape, err := s.ShapeOf(trip)
		if err != nil {
			return nil, err
		}
		if shape == nil {
			continue
		}
		if _, seen := shapes[shape.ID]; !seen {
			shapes[shape.ID] = shape
			order = append(order, shape)
		}
		byID[shape.ID] = append(byID[shape.ID], trip)
	}
	if len(order) == 0 {
		return nil, nil
	}
	folder := kml.Folder("Shapes", false, "")
	for _, shape := range order {
		desc := tripListDescription("Trips using this shape", byID[shape.ID]) + "\nLength: " + shapeLength(shape)
		p := kml.Placemark(shape.ID, false, styleID, desc)
		p.Add(lineStringForShape(shape))
		folder.Add(p)
	}
	return folder, nil
}

// routeTripsFolder draws every trip of the route over its stop locations.
// With a non-zero AltitudePerSec each point is raised by the time elapsed
// since the first stop. Returns nil when the route has no trips with stops.
func (w *Writer) routeTripsFolder(s *schedule.Schedule, route *schedule.Route, styleID string) (*kml.Element, error) {
	withAlt := w.opts.AltitudePerSec != 0
	folder := kml.Folder("Trips", false, "")
	for _, trip := range s.Trips(route) {
		if len(trip.StopTimes) == 0 {
			continue
		}
		stops, err := s.TripStops(trip)
		if err != nil {
			return nil, err
		}
		coords := stopCoords(stops)
		if withAlt {
			alts, err := tripAltitudes(trip, w.opts.AltitudePerSec)
			if err != nil {
				return nil, err
			}
			for i, stop := range stops {
				coords[i] = kml.CoordAlt(stop.Point(), alts[i])
			}
		}
		p := kml.Placemark(trip.Name(), false, styleID, tripDescription(trip))
		p.Add(kml.LineString(coords))
		folder.Add(p)
	}
	if len(folder.FindAll("Placemark")) == 0 {
		return nil, nil
	}
	return folder, nil
}

// tripAltitudes returns (arrival_i - arrival_0) * perSec for every stop time.
func tripAltitudes(trip *schedule.Trip, perSec float64) ([]float64, error) {
	alts := make([]float64, len(trip.StopTimes))
	first := trip.StopTimes[0].Arrival
	for i, st := range trip.StopTimes {
		if !st.Arrival.Valid() || !first.Valid() {
			return nil, fmt.Errorf("trip %s stop %s: %w", trip.ID, st.StopID, schedule.ErrMissingArrival)
		}
		alts[i] = float64(st.Arrival.Seconds()-first.Seconds()) * perSec
	}
	return alts, nil
}

type patternGroup struct {
	trips []*schedule.Trip
}

// groupByPattern groups trips by their full ordered stop ID sequence, keeping
// first-seen order. Trips without stop times are left out.
func groupByPattern(trips []*schedule.Trip) []*patternGroup {
	var groups []*patternGroup
	index := map[string]*patternGroup{}
	for _, trip := range trips {
		if len(trip.StopTimes) == 0 {
			continue
		}
		key := patternKey(trip.Pattern())
		g, ok := index[key]
		if !ok {
			g = &patternGroup{}
			index[key] = g
			groups = append(groups, g)
		}
		g.trips = append(g.trips, trip)
	}
	return groups
}

// patternKey length-prefixes every ID so that no two different sequences
// share a key.
func patternKey(ids []string) string {
	var b strings.Builder
	for _, id := range ids {
		b.WriteString(strconv.Itoa(len(id)))
		b.WriteByte(':')
		b.WriteString(id)
	}
	return b.String()
}

func stopCoords(stops []*schedule.Stop) []kml.Coordinate {
	coords := make([]kml.Coordinate, len(stops))
	for i, stop := range stops {
		coords[i] = kml.Coord(stop.Point())
	}
	return coords
}

func tripListDescription(title string, trips []*schedule.Trip) string {
	ids := make([]string, len(trips))
	for i, t := range trips {
		ids[i] = t.ID
	}
	return fmt.Sprintf("%s (%d in total): %s", title, len(trips), strings.Join(ids, ", "))
}

// tripDescription reports the first departure and last arrival of a trip.
func tripDescription(trip *schedule.Trip) string {
	first := trip.StopTimes[0]
	last := trip.StopTimes[len(trip.StopTimes)-1]
	dep := first.Departure
	if !dep.Valid() {
		dep = first.Arrival
	}
	arr := last.Arrival
	if !arr.Valid() {
		arr = last.Departure
	}
	if !dep.Valid() || !arr.Valid() {
		return ""
	}
	return fmt.Sprintf("Departs %s, arrives %s (%s)", dep, arr,
		utils.Iso8601Duration(int64(arr.Seconds()-dep.Seconds())))
}

// routePalette returns n colours spread over the palette gradient.
func routePalette(n int) ([]color.Color, error) {
	grad, err := colorgrad.NewGradient().HtmlColors(paletteColors...).Build()
	if err != nil {
		return nil, err
	}
	colors := grad.Colors(uint(max(n, 2)))
	out := make([]color.Color, n)
	for i := range out {
		out[i] = colors[i]
	}
	return out, nil
}

// routeColor parses the route's RRGGBB colour, falling back to def.
func routeColor(route *schedule.Route, def color.Color) color.Color {
	hex := strings.TrimPrefix(route.Color, "#")
	if len(hex) != 6 {
		return def
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return def
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
