package gpx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// timeLayout is the fixed metadata timestamp format (YYYY-MM-DDThh:mm:ssZ).
const timeLayout = "2006-01-02T15:04:05Z"

// ParseError reports a GPX document that violates the required schema subset.
// Msg names the missing element/attribute or carries the offending raw text.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

// Document element shapes for decoding. Pointer fields distinguish a missing
// element/attribute from one that is present but empty.
type gpxDoc struct {
	Metadata *metadataElem `xml:"metadata"`
	Tracks   []trackElem   `xml:"trk"`
}

type metadataElem struct {
	Time *string `xml:"time"`
}

type trackElem struct {
	Name     *string       `xml:"name"`
	Segments []segmentElem `xml:"trkseg"`
}

type segmentElem struct {
	Points []pointElem `xml:"trkpt"`
}

type pointElem struct {
	Lat *string `xml:"lat,attr"`
	Lon *string `xml:"lon,attr"`
	Ele *string `xml:"ele"`
}

// ParseFile reads and parses one GPX file. Any failure is annotated with the
// source file path.
func ParseFile(path string) (*Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w while parsing %q", err, path)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w while parsing %q", err, path)
	}
	return t, nil
}

// Parse decodes one GPX document. Rules are checked in order and the first
// violation aborts with a *ParseError; there is no best-effort mode.
func Parse(data []byte) (*Track, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	root, err := rootElement(dec)
	if err != nil {
		return nil, err
	}
	if root.Name.Local != "gpx" {
		return nil, &ParseError{Msg: "missing root element"}
	}

	var doc gpxDoc
	if err := dec.DecodeElement(&doc, root); err != nil {
		return nil, &ParseError{Msg: fmt.Sprintf("failed reading XML document: %v", err)}
	}

	date, err := parseDate(doc.Metadata)
	if err != nil {
		return nil, err
	}

	if len(doc.Tracks) == 0 {
		return nil, &ParseError{Msg: "missing trk element"}
	}
	trk := doc.Tracks[0] // additional tracks are silently ignored

	if trk.Name == nil {
		return nil, &ParseError{Msg: "missing name element"}
	}
	if len(trk.Segments) == 0 {
		return nil, &ParseError{Msg: "missing trkseg element"}
	}

	coords, err := parseCoordinates(trk.Segments[0])
	if err != nil {
		return nil, err
	}

	return &Track{
		Name:        *trk.Name,
		Date:        date,
		Coordinates: coords,
	}, nil
}

// rootElement scans forward to the document's first start element.
func rootElement(dec *xml.Decoder) (*xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, &ParseError{Msg: "missing root element"}
		}
		if err != nil {
			return nil, &ParseError{Msg: fmt.Sprintf("failed reading XML document: %v", err)}
		}
		if start, ok := tok.(xml.StartElement); ok {
			return &start, nil
		}
	}
}

// parseDate extracts the calendar date from metadata/time. Only the date
// portion of the timestamp is retained.
func parseDate(md *metadataElem) (time.Time, error) {
	if md == nil {
		return time.Time{}, &ParseError{Msg: "missing metadata element"}
	}
	if md.Time == nil {
		return time.Time{}, &ParseError{Msg: "missing metadata time element"}
	}
	raw := strings.TrimSpace(*md.Time)
	ts, err := time.Parse(timeLayout, raw)
	if err != nil {
		return time.Time{}, &ParseError{Msg: fmt.Sprintf("unparsable timestamp %q", raw)}
	}
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
}

func parseCoordinates(seg segmentElem) ([]Coordinate, error) {
	coords := make([]Coordinate, 0, len(seg.Points))
	for _, p := range seg.Points {
		if p.Lat == nil || p.Lon == nil {
			return nil, &ParseError{Msg: "missing lat/lon attributes"}
		}
		if p.Ele == nil {
			return nil, &ParseError{Msg: "missing ele element"}
		}
		lat, err := parseDecimal(*p.Lat)
		if err != nil {
			return nil, err
		}
		lon, err := parseDecimal(*p.Lon)
		if err != nil {
			return nil, err
		}
		ele, err := parseDecimal(*p.Ele)
		if err != nil {
			return nil, err
		}
		coords = append(coords, Coordinate{Lat: lat, Lon: lon, Ele: ele})
	}
	return coords, nil
}

func parseDecimal(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &ParseError{Msg: fmt.Sprintf("unparsable number %q", raw)}
	}
	return v, nil
}
