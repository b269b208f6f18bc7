// Package gpx parses GPX track-log documents into Track values.
//
// Parsing is strict: the subset of the GPX schema needed to produce a single
// polyline is required, and the first violated rule aborts the whole file.
// Only the first track and its first segment are used; additional tracks and
// segments are silently ignored.
package gpx

import "time"

// Coordinate is one track point. No range validation is performed;
// out-of-range values pass through unchanged.
type Coordinate struct {
	Lat float64
	Lon float64
	Ele float64
}

// Track is one named, dated, ordered sequence of geographic points extracted
// from one GPX file. Coordinates preserve document order and may be empty.
type Track struct {
	Name        string
	Date        time.Time // Calendar date only; time-of-day is not retained.
	Coordinates []Coordinate
}
