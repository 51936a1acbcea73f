package schedule

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Time is a GTFS service time in seconds since the start of the service day.
// Values past 24:00:00 are valid for trips running over midnight.
type Time int

// NoTime marks a stop time without an arrival or departure value.
const NoTime Time = -1

// NewTime builds a Time from hours, minutes and seconds.
func NewTime(h, m, s int) Time {
	return Time(h*3600 + m*60 + s)
}

// Valid reports whether t carries a value.
func (t Time) Valid() bool { return t >= 0 }

// Seconds returns t as seconds since the start of the service day.
func (t Time) Seconds() int { return int(t) }

// String formats t as HH:MM:SS, or "" for NoTime.
func (t Time) String() string {
	if !t.Valid() {
		return ""
	}
	s := int(t)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}

// Stop is a place where vehicles pick up or drop off riders.
type Stop struct {
	ID   string
	Code string
	Name string
	Desc string
	Lat  float64
	Lon  float64
}

// Point returns the stop position in (lon, lat) order.
func (s *Stop) Point() orb.Point { return orb.Point{s.Lon, s.Lat} }

// ShapePoint is a single vertex of a Shape.
type ShapePoint struct {
	Lat          float64
	Lon          float64
	DistTraveled float64 // NaN when the feed does not provide it
}

// Shape is an ordered polyline that trips may follow.
type Shape struct {
	ID     string
	Points []ShapePoint
}

// LineString returns the shape geometry in (lon, lat) order.
func (s *Shape) LineString() orb.LineString {
	ls := make(orb.LineString, 0, len(s.Points))
	for _, p := range s.Points {
		ls = append(ls, orb.Point{p.Lon, p.Lat})
	}
	return ls
}

// Route is a group of trips displayed to riders as a single service.
type Route struct {
	ID        string
	ShortName string
	LongName  string
	Desc      string
	Type      int    // GTFS route_type
	Color     string // RRGGBB, empty when unset
}

// Name returns the route display name built from its short and long names.
// It is empty when the route has neither.
func (r *Route) Name() string {
	switch {
	case r.ShortName != "" && r.LongName != "":
		return r.ShortName + " - " + r.LongName
	case r.ShortName != "":
		return r.ShortName
	default:
		return r.LongName
	}
}

// StopTime is a trip's visit to a stop.
type StopTime struct {
	StopID            string
	Arrival           Time
	Departure         Time
	Sequence          int
	ShapeDistTraveled float64 // NaN when absent
}

// Trip is a single journey of a vehicle along a route.
type Trip struct {
	ID        string
	RouteID   string
	ShortName string
	Headsign  string
	ShapeID   string // empty when the trip has no shape
	StopTimes []StopTime
}

// Name returns the trip display name: short name, then headsign, then ID.
func (t *Trip) Name() string {
	if t.ShortName != "" {
		return t.ShortName
	}
	if t.Headsign != "" {
		return t.Headsign
	}
	return t.ID
}

// Pattern returns the ordered stop IDs visited by the trip.
func (t *Trip) Pattern() []string {
	ids := make([]string, len(t.StopTimes))
	for i, st := range t.StopTimes {
		ids[i] = st.StopID
	}
	return ids
}
