// Package kmlwriter renders a transit schedule as a KML document.
//
// The document holds up to three folders, each omitted when it would be
// empty:
//
//   - Stops: one point placemark per stop.
//   - Shapes: one line placemark per shape in the schedule.
//   - Routes: one folder per route with Patterns, Shapes and (optionally)
//     Trips sub-folders.
//
// A route pattern is the ordered sequence of stop IDs a trip visits. Trips
// sharing a pattern are drawn once. When Options.AltitudePerSec is non-zero
// trip lines get a third coordinate encoding the time elapsed since the first
// stop, which lets 3D viewers show a timetable as stacked lines.
//
// Basic usage:
//
//	s, err := schedule.Load("feed.zip")
//	if err != nil {
//		return err
//	}
//	w := kmlwriter.New(kmlwriter.Options{ShowTrips: true}, logger)
//	if err := w.WriteFile(s, "feed.kml"); err != nil {
//		return err
//	}
package kmlwriter
