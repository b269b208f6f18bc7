package kml

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BuschnicK/GpxToKml/internal/gpx"
)

// Fixed style identifiers referenced by the placemark.
const (
	styleID    = "style1"
	styleMapID = "stylemap_id00"

	// KML color order is alpha, blue, green, red: opaque red line, width 4.
	lineColor = "ff0000ff"
	lineWidth = "4"
)

// WriteError reports an I/O failure while saving the output document.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed writing to %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Write renders track and saves it to path. basename is the unsanitized
// "<date> <name>" stem used for the document and placemark names. The file is
// opened with O_EXCL so a concurrently created file is never overwritten.
func Write(track *gpx.Track, basename, path string) error {
	doc := Render(track, basename)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if _, err := f.Write(doc); err != nil {
		f.Close()
		return &WriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// Render produces the complete KML document for one track.
func Render(track *gpx.Track, basename string) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<kml xmlns="http://www.opengis.net/kml/2.2"` +
		` xmlns:gx="http://www.google.com/kml/ext/2.2"` +
		` xmlns:kml="http://www.opengis.net/kml/2.2"` +
		` xmlns:atom="http://www.w3.org/2005/Atom">`)
	b.WriteString("<Document>")
	b.WriteString("<name>")
	b.WriteString(xmlEscape(basename + ".kml"))
	b.WriteString("</name>")

	writeStyle(&b)
	writeStyleMap(&b)
	writePlacemark(&b, track, basename)

	b.WriteString("</Document>")
	b.WriteString("</kml>\n")
	return []byte(b.String())
}

func writeStyle(b *strings.Builder) {
	b.WriteString(`<Style id="` + styleID + `">`)
	b.WriteString("<LineStyle>")
	b.WriteString("<color>" + lineColor + "</color>")
	b.WriteString("<width>" + lineWidth + "</width>")
	b.WriteString("</LineStyle>")
	b.WriteString("</Style>")
}

func writeStyleMap(b *strings.Builder) {
	b.WriteString(`<StyleMap id="` + styleMapID + `">`)
	for _, key := range []string{"normal", "highlight"} {
		b.WriteString("<Pair>")
		b.WriteString("<key>" + key + "</key>")
		b.WriteString("<styleUrl>" + styleID + "</styleUrl>")
		b.WriteString("</Pair>")
	}
	b.WriteString("</StyleMap>")
}

func writePlacemark(b *strings.Builder, track *gpx.Track, basename string) {
	b.WriteString("<Placemark>")
	b.WriteString("<name>")
	b.WriteString(xmlEscape(basename))
	b.WriteString("</name>")
	b.WriteString("<styleUrl>#" + styleMapID + "</styleUrl>")
	b.WriteString("<MultiGeometry><LineString><coordinates>")
	b.WriteString(CoordinateString(track.Coordinates))
	b.WriteString("</coordinates></LineString></MultiGeometry>")
	b.WriteString("</Placemark>")
}

// CoordinateString renders points as "lon,lat,ele" with exactly 7 fractional
// digits, space-separated, with a trailing space after the final point.
// Longitude comes first: KML coordinate order, not the GPX lat-first order.
func CoordinateString(coords []gpx.Coordinate) string {
	var b strings.Builder
	for _, c := range coords {
		b.WriteString(strconv.FormatFloat(c.Lon, 'f', 7, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(c.Lat, 'f', 7, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(c.Ele, 'f', 7, 64))
		b.WriteByte(' ')
	}
	return b.String()
}

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
