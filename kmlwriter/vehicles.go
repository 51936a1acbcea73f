package kmlwriter

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/gtfs-to-kml/kml"
	"github.com/theoremus-urban-solutions/gtfs-to-kml/realtime"
	"github.com/theoremus-urban-solutions/gtfs-to-kml/schedule"
	"github.com/theoremus-urban-solutions/gtfs-to-kml/utils"
)

// vehiclesFolder plots the realtime vehicles as points. Vehicles on a styled
// route reuse the route style. With a route type filter, vehicles whose route
// cannot be resolved to that type are left out. Returns nil when nothing is
// plotted.
func (w *Writer) vehiclesFolder(s *schedule.Schedule, styles []*kml.Element) *kml.Element {
	if len(w.opts.Vehicles) == 0 {
		return nil
	}
	styled := make(map[string]bool, len(styles))
	for _, st := range styles {
		styled[st.Attr("id")] = true
	}

	folder := kml.Folder("Vehicles", true, "")
	skipped := 0
	for _, v := range w.opts.Vehicles {
		route := vehicleRoute(s, v)
		if w.opts.RouteType != nil && (route == nil || route.Type != *w.opts.RouteType) {
			skipped++
			continue
		}
		styleID := ""
		if route != nil && styled[routeStyleID(route)] {
			styleID = routeStyleID(route)
		}
		p := kml.Placemark(v.Name(), true, styleID, vehicleDescription(s, v, route))
		p.Add(kml.Point(kml.Coord(orb.Point{v.Lon, v.Lat})))
		folder.Add(p)
	}
	if skipped > 0 {
		w.log.Debug("vehicles filtered by route type", zap.Int("skipped", skipped))
	}
	if len(folder.FindAll("Placemark")) == 0 {
		return nil
	}
	return folder
}

// vehicleRoute resolves the route from the vehicle's route ID, falling back
// to the route of its trip.
func vehicleRoute(s *schedule.Schedule, v realtime.Vehicle) *schedule.Route {
	if v.RouteID != "" {
		if r, ok := s.Route(v.RouteID); ok {
			return r
		}
	}
	if v.TripID != "" {
		if t, ok := s.Trip(v.TripID); ok {
			if r, ok := s.Route(t.RouteID); ok {
				return r
			}
		}
	}
	return nil
}

func vehicleDescription(s *schedule.Schedule, v realtime.Vehicle, route *schedule.Route) string {
	var lines []string
	if route != nil {
		name := route.Name()
		if name == "" {
			name = route.ID
		}
		lines = append(lines, "Route: "+name)
	} else if v.RouteID != "" {
		lines = append(lines, "Route: "+v.RouteID)
	}
	if v.TripID != "" {
		trip := v.TripID
		if t, ok := s.Trip(v.TripID); ok {
			trip = t.Name()
		}
		lines = append(lines, "Trip: "+trip)
	}
	if v.HasBearing {
		lines = append(lines, fmt.Sprintf("Bearing: %.0f", v.Bearing))
	}
	if v.Timestamp > 0 {
		lines = append(lines, "Updated: "+utils.Iso8601FromUnixSeconds(v.Timestamp))
	}
	return strings.Join(lines, "\n")
}
