package schedule

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := newTestSchedule(t)
	_ = s.AddTrip(Trip{ID: "T1", RouteID: "R1", ShapeID: "S1", StopTimes: []StopTime{
		{StopID: "A", Sequence: 1, Arrival: NewTime(8, 0, 0), Departure: NewTime(8, 0, 0)},
		{StopID: "B", Sequence: 2, Arrival: NewTime(8, 10, 0), Departure: NoTime},
	}})

	var buf bytes.Buffer
	if err := WriteSnapshot(s, &buf); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}
	got, err := ReadSnapshot(&buf)
	if err != nil {
		t.Fatalf("ReadSnapshot: %v", err)
	}

	if len(got.Stops()) != 3 || len(got.Routes()) != 2 || len(got.Shapes()) != 1 || len(got.AllTrips()) != 1 {
		t.Fatalf("unexpected entity counts: stops=%d routes=%d shapes=%d trips=%d",
			len(got.Stops()), len(got.Routes()), len(got.Shapes()), len(got.AllTrips()))
	}
	trip, ok := got.Trip("T1")
	if !ok {
		t.Fatal("trip T1 missing after round trip")
	}
	if trip.StopTimes[1].Arrival != NewTime(8, 10, 0) || trip.StopTimes[1].Departure.Valid() {
		t.Errorf("stop times not preserved: %+v", trip.StopTimes)
	}
	r1, _ := got.Route("R1")
	if len(got.Trips(r1)) != 1 {
		t.Errorf("route index not rebuilt")
	}
}

func TestSnapshotFile(t *testing.T) {
	s := newTestSchedule(t)
	path := filepath.Join(t.TempDir(), "schedule.gob")

	if err := WriteSnapshotFile(s, path); err != nil {
		t.Fatalf("WriteSnapshotFile: %v", err)
	}
	got, err := ReadSnapshotFile(path)
	if err != nil {
		t.Fatalf("ReadSnapshotFile: %v", err)
	}
	if len(got.Stops()) != len(s.Stops()) {
		t.Errorf("expected %d stops, got %d", len(s.Stops()), len(got.Stops()))
	}
}

func TestReadSnapshotFile_Missing(t *testing.T) {
	if _, err := ReadSnapshotFile(filepath.Join(t.TempDir(), "missing.gob")); err == nil {
		t.Error("expected error for missing snapshot file")
	}
}

func TestReadSnapshot_Corrupt(t *testing.T) {
	if _, err := ReadSnapshot(bytes.NewReader([]byte("not gob"))); err == nil {
		t.Error("expected error for corrupt snapshot")
	}
}
