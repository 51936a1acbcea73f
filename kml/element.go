package kml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Namespace is the KML 2.2 XML namespace.
const Namespace = "http://www.opengis.net/kml/2.2"

// Element is a node of a KML document.
type Element struct {
	Name     string
	Attrs    []xml.Attr
	Text     string
	Children []*Element
}

// NewElement creates an element with the given children. Nil children are skipped.
func NewElement(name string, children ...*Element) *Element {
	e := &Element{Name: name}
	return e.Add(children...)
}

// TextElement creates a leaf element holding text.
func TextElement(name, text string) *Element {
	return &Element{Name: name, Text: text}
}

// Add appends children to e, skipping nil ones, and returns e.
func (e *Element) Add(children ...*Element) *Element {
	for _, c := range children {
		if c != nil {
			e.Children = append(e.Children, c)
		}
	}
	return e
}

// SetAttr sets an attribute, replacing an existing one with the same name.
func (e *Element) SetAttr(name, value string) *Element {
	for i := range e.Attrs {
		if e.Attrs[i].Name.Local == name {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
	return e
}

// Attr returns the value of an attribute, or "" when absent.
func (e *Element) Attr(name string) string {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// Find returns the first direct child with the given name.
func (e *Element) Find(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// FindAll returns every direct child with the given name.
func (e *Element) FindAll(name string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// ChildText returns the text of the first direct child with the given name.
func (e *Element) ChildText(name string) string {
	if c := e.Find(name); c != nil {
		return c.Text
	}
	return ""
}

// Walk calls fn for e and every descendant, depth first. Returning false from
// fn skips the descendants of that element.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

// MarshalXML implements xml.Marshaler. start is ignored.
func (e *Element) MarshalXML(enc *xml.Encoder, _ xml.StartElement) error {
	return e.encode(enc)
}

func (e *Element) encode(enc *xml.Encoder) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Name}, Attr: e.Attrs}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.Text != "" {
		if err := enc.EncodeToken(xml.CharData(e.Text)); err != nil {
			return err
		}
	}
	for _, c := range e.Children {
		if err := c.encode(enc); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// Write writes e to w without an XML header.
func (e *Element) Write(w io.Writer) error {
	return e.write(w, "")
}

func (e *Element) write(w io.Writer, indent string) error {
	enc := xml.NewEncoder(w)
	if indent != "" {
		enc.Indent("", indent)
	}
	if err := e.encode(enc); err != nil {
		return err
	}
	return enc.Flush()
}

// String returns the compact XML form of e.
func (e *Element) String() string {
	var b bytes.Buffer
	if err := e.Write(&b); err != nil {
		return fmt.Sprintf("<!-- %v -->", err)
	}
	return b.String()
}

// WriteDocument writes the XML header followed by root. An empty indent
// produces compact output.
func WriteDocument(w io.Writer, root *Element, indent string) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	if err := root.write(w, indent); err != nil {
		return err
	}
	if indent != "" {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

// Decode reads a KML (or any XML) document into an element tree. Namespaces
// are dropped from element names. Leaf text is kept as written; text of
// elements with children only holds indentation and is trimmed.
func Decode(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	var (
		root  *Element
		stack []*Element
		text  []string
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode kml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name.Local}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, xml.Attr{Name: xml.Name{Local: a.Name.Local}, Value: a.Value})
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			} else if root == nil {
				root = el
			}
			stack = append(stack, el)
			text = append(text, "")
		case xml.CharData:
			if len(text) > 0 {
				text[len(text)-1] += string(t)
			}
		case xml.EndElement:
			el := stack[len(stack)-1]
			el.Text = text[len(text)-1]
			if len(el.Children) > 0 {
				el.Text = strings.TrimSpace(el.Text)
			}
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		}
	}
	if root == nil {
		return nil, fmt.Errorf("decode kml: empty document")
	}
	return root, nil
}
