/*
Package schedule provides the in-memory transit schedule consumed by the KML writer.

The model is built once, either by hand through the Add* methods or from a GTFS
feed through Load, and is read-only afterwards. All enumerations return entities
in insertion order so that output built from a schedule is deterministic.

# Basic Usage

Load a GTFS zip or directory:

	s, err := schedule.Load("feed.zip")
	if err != nil {
	    log.Fatal(err)
	}

	for _, route := range s.Routes() {
	    for _, trip := range s.Trips(route) {
	        fmt.Println(route.Name(), trip.Name(), len(trip.StopTimes))
	    }
	}

Build one by hand (tests, synthetic feeds):

	s := schedule.New()
	_ = s.AddStop(schedule.Stop{ID: "A", Name: "Alpha", Lat: 36.42, Lon: -117.13})
	_ = s.AddRoute(schedule.Route{ID: "R1", ShortName: "1", Type: 3})
	_ = s.AddTrip(schedule.Trip{ID: "T1", RouteID: "R1", StopTimes: ...})

# Snapshots

Parsing a large feed can take seconds. WriteSnapshot and ReadSnapshot persist a
loaded schedule with encoding/gob so repeated conversions can skip the parser.
*/
package schedule
