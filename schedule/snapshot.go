package schedule

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

// snapshot is the gob wire form of a Schedule. Entities are stored in
// insertion order so a decoded schedule enumerates in the same order as the encoded one.
type snapshot struct {
	Stops  []Stop
	Shapes []Shape
	Routes []Route
	Trips  []Trip
}

// WriteSnapshot encodes s to w using gob encoding.
//
// Example:
//
//	s, _ := schedule.Load("feed.zip")
//	f, _ := os.Create("feed.gob")
//	defer f.Close()
//	if err := schedule.WriteSnapshot(s, f); err != nil {
//	    // handle error
//	}
func WriteSnapshot(s *Schedule, w io.Writer) error {
	snap := snapshot{
		Stops:  make([]Stop, 0, len(s.stops)),
		Shapes: make([]Shape, 0, len(s.shapes)),
		Routes: make([]Route, 0, len(s.routes)),
		Trips:  make([]Trip, 0, len(s.trips)),
	}
	for _, v := range s.stops {
		snap.Stops = append(snap.Stops, *v)
	}
	for _, v := range s.shapes {
		snap.Shapes = append(snap.Shapes, *v)
	}
	for _, v := range s.routes {
		snap.Routes = append(snap.Routes, *v)
	}
	for _, v := range s.trips {
		snap.Trips = append(snap.Trips, *v)
	}
	if err := gob.NewEncoder(w).Encode(&snap); err != nil {
		return fmt.Errorf("failed to encode schedule: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a schedule previously written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (*Schedule, error) {
	var snap snapshot
	if err := gob.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode schedule: %w", err)
	}
	s := New()
	for _, v := range snap.Stops {
		if err := s.AddStop(v); err != nil {
			return nil, err
		}
	}
	for _, v := range snap.Shapes {
		if err := s.AddShape(v); err != nil {
			return nil, err
		}
	}
	for _, v := range snap.Routes {
		if err := s.AddRoute(v); err != nil {
			return nil, err
		}
	}
	for _, v := range snap.Trips {
		if err := s.AddTrip(v); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// WriteSnapshotFile writes s to path, replacing any existing file.
func WriteSnapshotFile(s *Schedule, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteSnapshot(s, f)
}

// ReadSnapshotFile reads a schedule snapshot from path.
func ReadSnapshotFile(path string) (*Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	defer f.Close()
	return ReadSnapshot(f)
}
