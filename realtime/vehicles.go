package realtime

import (
	"fmt"
	"os"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// Vehicle is a single vehicle position from a realtime feed.
type Vehicle struct {
	ID         string
	Label      string
	TripID     string
	RouteID    string
	Lat        float64
	Lon        float64
	Bearing    float64
	HasBearing bool
	Timestamp  int64 // unix seconds, 0 when unknown
}

// Name returns the label, falling back to the vehicle ID.
func (v Vehicle) Name() string {
	if v.Label != "" {
		return v.Label
	}
	return v.ID
}

// Feed holds the vehicles decoded from one FeedMessage.
type Feed struct {
	Timestamp int64
	Vehicles  []Vehicle
}

// Decode parses a serialized FeedMessage. Entities without a vehicle position
// are skipped. Vehicle timestamps default to the header timestamp.
func Decode(b []byte) (*Feed, error) {
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return nil, fmt.Errorf("decode feed message: %w", err)
	}

	feed := &Feed{}
	if fm.Header != nil && fm.Header.Timestamp != nil {
		feed.Timestamp = int64(*fm.Header.Timestamp)
	}
	for _, e := range fm.Entity {
		vp := e.Vehicle
		if vp == nil || vp.Position == nil {
			continue
		}
		v := Vehicle{
			ID:        e.GetId(),
			Lat:       float64(vp.Position.GetLatitude()),
			Lon:       float64(vp.Position.GetLongitude()),
			Timestamp: feed.Timestamp,
		}
		if vp.Position.Bearing != nil {
			v.Bearing = float64(*vp.Position.Bearing)
			v.HasBearing = true
		}
		if vp.Vehicle != nil {
			if vp.Vehicle.Id != nil {
				v.ID = *vp.Vehicle.Id
			}
			v.Label = vp.Vehicle.GetLabel()
		}
		if vp.Trip != nil {
			v.TripID = vp.Trip.GetTripId()
			v.RouteID = vp.Trip.GetRouteId()
		}
		if vp.Timestamp != nil {
			v.Timestamp = int64(*vp.Timestamp)
		}
		feed.Vehicles = append(feed.Vehicles, v)
	}
	return feed, nil
}

// ReadFile reads and decodes a VehiclePositions protobuf file.
func ReadFile(path string) (*Feed, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vehicle positions %s: %w", path, err)
	}
	feed, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return feed, nil
}
