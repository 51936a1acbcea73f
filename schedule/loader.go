package schedule

import (
	"sort"
	"strings"

	"github.com/patrickbr/gtfsparser"
	gtfs "github.com/patrickbr/gtfsparser/gtfs"
	"github.com/pkg/errors"
)

// Load parses a GTFS zip file or directory and builds a schedule from it.
func Load(path string) (*Schedule, error) {
	feed := gtfsparser.NewFeed()
	if err := feed.Parse(path); err != nil {
		return nil, errors.Wrapf(err, "parse gtfs feed %s", path)
	}
	return FromFeed(feed)
}

// FromFeed converts a parsed gtfsparser feed. Feed maps are walked in ID
// order so that the resulting schedule enumerates deterministically.
func FromFeed(feed *gtfsparser.Feed) (*Schedule, error) {
	s := New()

	for _, id := range sortedKeys(feed.Stops) {
		v := feed.Stops[id]
		if err := s.AddStop(Stop{
			ID:   v.Id,
			Code: v.Code,
			Name: v.Name,
			Desc: v.Desc,
			Lat:  float64(v.Lat),
			Lon:  float64(v.Lon),
		}); err != nil {
			return nil, errors.Wrap(err, "stops.txt")
		}
	}

	for _, id := range sortedKeys(feed.Shapes) {
		v := feed.Shapes[id]
		pts := make([]ShapePoint, 0, len(v.Points))
		for _, p := range v.Points {
			pts = append(pts, ShapePoint{
				Lat:          float64(p.Lat),
				Lon:          float64(p.Lon),
				DistTraveled: float64(p.Dist_traveled),
			})
		}
		if err := s.AddShape(Shape{ID: v.Id, Points: pts}); err != nil {
			return nil, errors.Wrap(err, "shapes.txt")
		}
	}

	for _, id := range sortedKeys(feed.Routes) {
		v := feed.Routes[id]
		if err := s.AddRoute(Route{
			ID:        v.Id,
			ShortName: v.Short_name,
			LongName:  v.Long_name,
			Desc:      v.Desc,
			Type:      int(v.Type),
			Color:     routeColor(v),
		}); err != nil {
			return nil, errors.Wrap(err, "routes.txt")
		}
	}

	for _, id := range sortedKeys(feed.Trips) {
		v := feed.Trips[id]
		if v.Route == nil {
			return nil, errors.Errorf("trips.txt: trip %s has no route", v.Id)
		}
		trip := Trip{
			ID:        v.Id,
			RouteID:   v.Route.Id,
			ShortName: v.Short_name,
			Headsign:  v.Headsign,
		}
		if v.Shape != nil {
			trip.ShapeID = v.Shape.Id
		}
		for _, st := range v.StopTimes {
			if st.Stop == nil {
				return nil, errors.Wrapf(ErrUnknownStop, "stop_times.txt: trip %s sequence %d", v.Id, st.Sequence)
			}
			trip.StopTimes = append(trip.StopTimes, StopTime{
				StopID:            st.Stop.Id,
				Arrival:           fromGtfsTime(st.Arrival_time),
				Departure:         fromGtfsTime(st.Departure_time),
				Sequence:          st.Sequence,
				ShapeDistTraveled: float64(st.Shape_dist_traveled),
			})
		}
		if err := s.AddTrip(trip); err != nil {
			return nil, errors.Wrap(err, "trips.txt")
		}
	}

	return s, nil
}

// routeColor returns the route colour, or "" when it was absent from the
// feed. gtfsparser fills a missing route_color with FFFFFF and a missing
// route_text_color with 000000, so that pair is read as unset.
func routeColor(r *gtfs.Route) string {
	if strings.EqualFold(r.Color, "FFFFFF") && strings.EqualFold(r.Text_color, "000000") {
		return ""
	}
	return r.Color
}

func fromGtfsTime(t gtfs.Time) Time {
	if t.Empty() {
		return NoTime
	}
	return NewTime(int(t.Hour), int(t.Minute), int(t.Second))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
