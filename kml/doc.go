// Package kml provides a minimal KML element tree with constructors for the
// elements the transit writer emits, XML serialization and decoding.
//
// Builders return *Element values that are attached with Add. Add skips nil
// children, so a builder can return nil for an absent node and the parent
// needs no special casing:
//
//	doc := kml.Document("feed")
//	doc.Add(stopsFolder(), shapesFolder()) // either may be nil
//
// Serialization is done with encoding/xml tokens for precise control over
// element order and coordinate formatting.
package kml
