package kml

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// Coordinate is a single KML coordinate. Alt is written only when HasAlt is set.
type Coordinate struct {
	Lon    float64
	Lat    float64
	Alt    float64
	HasAlt bool
}

// Coord converts an orb point, which is already in (lon, lat) order.
func Coord(p orb.Point) Coordinate {
	return Coordinate{Lon: p.Lon(), Lat: p.Lat()}
}

// CoordAlt converts an orb point and attaches an altitude in meters.
func CoordAlt(p orb.Point, alt float64) Coordinate {
	return Coordinate{Lon: p.Lon(), Lat: p.Lat(), Alt: alt, HasAlt: true}
}

// Coords converts a line string into 2D coordinates.
func Coords(ls orb.LineString) []Coordinate {
	out := make([]Coordinate, len(ls))
	for i, p := range ls {
		out[i] = Coord(p)
	}
	return out
}

// Document creates a Document element with an optional name.
func Document(name string) *Element {
	doc := NewElement("Document")
	if name != "" {
		doc.Add(TextElement("name", name))
	}
	return doc.Add(TextElement("open", "1"))
}

// Root wraps doc into the top level kml element.
func Root(doc *Element) *Element {
	return NewElement("kml", doc).SetAttr("xmlns", Namespace)
}

// Folder creates a Folder element. A visibility marker is added only for
// hidden folders and the description only when non-empty.
func Folder(name string, visible bool, description string) *Element {
	f := NewElement("Folder", TextElement("name", name))
	if !visible {
		f.Add(TextElement("visibility", "0"))
	}
	if description != "" {
		f.Add(TextElement("description", description))
	}
	return f
}

// Placemark creates a Placemark element. Visibility, style reference and
// description are added only when they differ from the defaults.
func Placemark(name string, visible bool, styleID, description string) *Element {
	p := NewElement("Placemark", TextElement("name", name))
	if !visible {
		p.Add(TextElement("visibility", "0"))
	}
	if styleID != "" {
		p.Add(TextElement("styleUrl", "#"+styleID))
	}
	if description != "" {
		p.Add(TextElement("description", description))
	}
	return p
}

// LineString creates a tessellated LineString. If any coordinate carries an
// altitude, absolute altitude mode is set and every point is written with
// three components; callers decide altitude for the whole line.
func LineString(coords []Coordinate) *Element {
	withAlt := false
	for _, c := range coords {
		if c.HasAlt {
			withAlt = true
			break
		}
	}
	ls := NewElement("LineString", TextElement("tessellate", "1"))
	if withAlt {
		ls.Add(TextElement("altitudeMode", "absolute"))
	}
	return ls.Add(TextElement("coordinates", formatCoordinates(coords, withAlt)))
}

// Point creates a Point element.
func Point(c Coordinate) *Element {
	return NewElement("Point", TextElement("coordinates", formatCoordinates([]Coordinate{c}, c.HasAlt)))
}

// Style creates a shared style with a line colour and width.
func Style(id string, c color.Color, width float64) *Element {
	return NewElement("Style",
		NewElement("LineStyle",
			TextElement("color", Color(c)),
			TextElement("width", strconv.FormatFloat(width, 'f', -1, 64)),
		),
	).SetAttr("id", id)
}

// Color formats c as a KML aabbggrr hex string.
func Color(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("%02x%02x%02x%02x", n.A, n.B, n.G, n.R)
}

func formatCoordinates(coords []Coordinate, withAlt bool) string {
	var b strings.Builder
	for i, c := range coords {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatFloat(c.Lon))
		b.WriteByte(',')
		b.WriteString(formatFloat(c.Lat))
		if withAlt {
			b.WriteByte(',')
			b.WriteString(formatFloat(c.Alt))
		}
	}
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
