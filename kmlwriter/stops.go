package kmlwriter

import (
	"strings"

	"github.com/paulmach/orb/geo"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/gtfs-to-kml/kml"
	"github.com/theoremus-urban-solutions/gtfs-to-kml/schedule"
	"github.com/theoremus-urban-solutions/gtfs-to-kml/utils"
)

// stopsFolder returns a folder with one point placemark per stop, or nil when
// the schedule has no stops.
func (w *Writer) stopsFolder(s *schedule.Schedule) *kml.Element {
	stops := s.Stops()
	if len(stops) == 0 {
		return nil
	}
	folder := kml.Folder("Stops", true, "")
	for _, stop := range stops {
		p := kml.Placemark(stop.Name, true, "", stopDescription(stop))
		p.Add(kml.Point(kml.Coord(stop.Point())))
		folder.Add(p)
	}
	w.log.Debug("stops folder", zap.Int("placemarks", len(stops)))
	return folder
}

func stopDescription(stop *schedule.Stop) string {
	var lines []string
	if stop.Code != "" {
		lines = append(lines, "Code: "+stop.Code)
	}
	if stop.Desc != "" {
		lines = append(lines, stop.Desc)
	}
	return strings.Join(lines, "\n")
}

// shapesFolder returns a hidden folder with one line placemark per shape in
// the schedule, or nil when there are none.
func (w *Writer) shapesFolder(s *schedule.Schedule) *kml.Element {
	shapes := s.Shapes()
	if len(shapes) == 0 {
		return nil
	}
	folder := kml.Folder("Shapes", false, "")
	for _, shape := range shapes {
		p := kml.Placemark(shape.ID, false, "", "Length: "+shapeLength(shape))
		p.Add(lineStringForShape(shape))
		folder.Add(p)
	}
	w.log.Debug("shapes folder", zap.Int("placemarks", len(shapes)))
	return folder
}

// lineStringForShape draws the shape points in (lon, lat) order without altitude.
func lineStringForShape(shape *schedule.Shape) *kml.Element {
	return kml.LineString(kml.Coords(shape.LineString()))
}

func shapeLength(shape *schedule.Shape) string {
	m := geo.Length(shape.LineString())
	return utils.PresentableDistance(m) + " (" + utils.PresentableMiles(m) + ")"
}
