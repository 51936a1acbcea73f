package kmlwriter

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/gtfs-to-kml/kml"
	"github.com/theoremus-urban-solutions/gtfs-to-kml/realtime"
	"github.com/theoremus-urban-solutions/gtfs-to-kml/schedule"
)

// Options controls what the writer emits. The zero value writes stops,
// shapes and route patterns without altitude.
type Options struct {
	// AltitudePerSec scales the time since a trip's first stop into meters of
	// altitude. Zero disables altitude.
	AltitudePerSec float64
	// ShowTrips adds a Trips folder with one placemark per trip to each route.
	ShowTrips bool
	// RouteType restricts the Routes folder to routes of one GTFS route_type.
	RouteType *int
	// DocumentName is written as the Document name when non-empty.
	DocumentName string
	// Vehicles are plotted in a Vehicles folder when non-empty.
	Vehicles []realtime.Vehicle
}

// Writer converts schedules to KML. It is safe for concurrent use.
type Writer struct {
	opts Options
	log  *zap.Logger
}

// New creates a writer. A nil logger disables logging.
func New(opts Options, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.RouteType != nil {
		rt := *opts.RouteType
		opts.RouteType = &rt
	}
	opts.Vehicles = append([]realtime.Vehicle(nil), opts.Vehicles...)
	return &Writer{opts: opts, log: logger}
}

// Options returns a copy of the writer options.
func (w *Writer) Options() Options {
	return w.opts
}

// Build walks s and returns the root kml element.
func (w *Writer) Build(s *schedule.Schedule) (*kml.Element, error) {
	doc := kml.Document(w.opts.DocumentName)

	doc.Add(w.stopsFolder(s))
	doc.Add(w.shapesFolder(s))

	styles, routes, err := w.routesFolder(s)
	if err != nil {
		return nil, err
	}
	doc.Add(styles...)
	doc.Add(routes)
	doc.Add(w.vehiclesFolder(s, styles))

	w.log.Debug("built kml document",
		zap.Int("stops", len(s.Stops())),
		zap.Int("shapes", len(s.Shapes())),
		zap.Int("styles", len(styles)),
		zap.Bool("routes", routes != nil))
	return kml.Root(doc), nil
}

// Write builds the document for s and writes it to out. Errors from out are
// returned unmodified.
func (w *Writer) Write(s *schedule.Schedule, out io.Writer) error {
	root, err := w.Build(s)
	if err != nil {
		return err
	}
	return kml.WriteDocument(out, root, "  ")
}

// WriteFile writes the document for s to path, replacing any existing file.
func (w *Writer) WriteFile(s *schedule.Schedule, path string) (err error) {
	root, err := w.Build(s)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := kml.WriteDocument(f, root, "  "); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	w.log.Info("wrote kml", zap.String("path", path))
	return nil
}
