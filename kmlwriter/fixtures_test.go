package kmlwriter

import (
	"testing"

	"github.com/theoremus-urban-solutions/gtfs-to-kml/kml"
	"github.com/theoremus-urban-solutions/gtfs-to-kml/schedule"
)

// newFlattenSchedule builds a small schedule with seven routes covering the
// pattern, shape and trip cases the writer distinguishes:
//
//	route_1: one trip, one shape
//	route_2: two trips, two shapes
//	route_3: two trips with different patterns, one shape
//	route_4: two trips with the same pattern, no shapes
//	route_5: subway (type 1), one trip
//	route_6: one trip, colour set
//	route_7: no trips
func newFlattenSchedule(t *testing.T) *schedule.Schedule {
	t.Helper()
	s := schedule.New()
	for _, st := range []schedule.Stop{
		{ID: "stop1", Name: "Furnace Creek Resort", Code: "FUR", Lat: 36.425288, Lon: -117.133162},
		{ID: "stop2", Name: "Nye County Airport", Lat: 36.868446, Lon: -116.784582},
		{ID: "stop3", Name: "Bullfrog", Desc: "Bullfrog ghost town", Lat: 36.881080, Lon: -116.817970},
		{ID: "stop4", Name: "Stagecoach Hotel", Lat: 36.915682, Lon: -116.751677},
		{ID: "stop5", Name: "Doing Ave", Lat: 36.909489, Lon: -116.768242},
	} {
		if err := s.AddStop(st); err != nil {
			t.Fatalf("AddStop(%s): %v", st.ID, err)
		}
	}
	for _, sh := range []schedule.Shape{
		{ID: "shape_1", Points: []schedule.ShapePoint{{Lat: 36.425288, Lon: -117.133162}, {Lat: 36.868446, Lon: -116.784582}}},
		{ID: "shape_2", Points: []schedule.ShapePoint{{Lat: 36.868446, Lon: -116.784582}, {Lat: 36.881080, Lon: -116.817970}}},
		{ID: "shape_3", Points: []schedule.ShapePoint{{Lat: 1, Lon: 1}, {Lat: 2, Lon: 4}, {Lat: 3, Lon: 9}}},
	} {
		if err := s.AddShape(sh); err != nil {
			t.Fatalf("AddShape(%s): %v", sh.ID, err)
		}
	}
	for _, r := range []schedule.Route{
		{ID: "route_1", ShortName: "1", LongName: "route with a single trip", Type: 3, Color: "FF0000"},
		{ID: "route_2", ShortName: "2", LongName: "route with two trips and two shapes", Type: 3},
		{ID: "route_3", ShortName: "3", LongName: "route with two trips and one shape", Type: 3},
		{ID: "route_4", ShortName: "4", LongName: "route with two equal trips", Type: 3},
		{ID: "route_5", ShortName: "5", LongName: "subway", Type: 1},
		{ID: "route_6", ShortName: "6", Type: 3, Color: "123456"},
		{ID: "route_7", LongName: "route without trips", Type: 3},
	} {
		if err := s.AddRoute(r); err != nil {
			t.Fatalf("AddRoute(%s): %v", r.ID, err)
		}
	}

	addTrip(t, s, "route_1_1", "route_1", "shape_1", []string{"stop1", "stop2", "stop3"}, []int{0, 600, 1200})
	addTrip(t, s, "route_2_1", "route_2", "shape_1", []string{"stop1", "stop2"}, []int{0, 600})
	addTrip(t, s, "route_2_2", "route_2", "shape_2", []string{"stop2", "stop3"}, []int{0, 600})
	addTrip(t, s, "route_3_1", "route_3", "shape_3", []string{"stop1", "stop2", "stop3"}, []int{0, 600, 1200})
	addTrip(t, s, "route_3_2", "route_3", "shape_3", []string{"stop1", "stop3", "stop2"}, []int{0, 600, 1200})
	addTrip(t, s, "route_4_1", "route_4", "", []string{"stop1", "stop2", "stop3"}, []int{0, 7200, 10800})
	addTrip(t, s, "route_4_2", "route_4", "", []string{"stop1", "stop2", "stop3"}, []int{3600, 10800, 14400})
	addTrip(t, s, "route_5_1", "route_5", "", []string{"stop4", "stop5"}, []int{0, 300})
	addTrip(t, s, "route_6_1", "route_6", "", []string{"stop3", "stop4", "stop5", "stop1"}, []int{0, 60, 120, 180})
	return s
}

func addTrip(t *testing.T, s *schedule.Schedule, id, routeID, shapeID string, stops []string, arrivals []int) {
	t.Helper()
	trip := schedule.Trip{ID: id, RouteID: routeID, ShapeID: shapeID}
	for i, stopID := range stops {
		trip.StopTimes = append(trip.StopTimes, schedule.StopTime{
			StopID:    stopID,
			Sequence:  i + 1,
			Arrival:   schedule.Time(arrivals[i]),
			Departure: schedule.Time(arrivals[i]),
		})
	}
	if err := s.AddTrip(trip); err != nil {
		t.Fatalf("AddTrip(%s): %v", id, err)
	}
}

func mustRoute(t *testing.T, s *schedule.Schedule, id string) *schedule.Route {
	t.Helper()
	r, ok := s.Route(id)
	if !ok {
		t.Fatalf("route %s not found", id)
	}
	return r
}

func mustBuild(t *testing.T, w *Writer, s *schedule.Schedule) *kml.Element {
	t.Helper()
	root, err := w.Build(s)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	doc := root.Find("Document")
	if doc == nil {
		t.Fatal("Document element missing")
	}
	return doc
}

// childFolder returns the direct child folder with the given name.
func childFolder(parent *kml.Element, name string) *kml.Element {
	for _, f := range parent.FindAll("Folder") {
		if f.ChildText("name") == name {
			return f
		}
	}
	return nil
}

func placemark(parent *kml.Element, name string) *kml.Element {
	for _, p := range parent.FindAll("Placemark") {
		if p.ChildText("name") == name {
			return p
		}
	}
	return nil
}

func placemarkNames(parent *kml.Element) map[string]bool {
	names := map[string]bool{}
	for _, p := range parent.FindAll("Placemark") {
		names[p.ChildText("name")] = true
	}
	return names
}
