package pipeline

import (
	"fmt"

	"github.com/BuschnicK/GpxToKml/internal/gpx"
	"github.com/BuschnicK/GpxToKml/internal/kml"
	"github.com/BuschnicK/GpxToKml/internal/naming"
)

// Task converts one input file. Each task owns its parsed track and resolved
// output path exclusively for its lifetime; no state is shared across tasks.
type Task struct {
	Source    string
	OutputDir string
}

// Outcome is the single terminal result of one Task: either Output is the
// written path, or Err carries the failure annotated with the source path.
type Outcome struct {
	Source string
	Output string
	Err    error
}

// Succeeded reports whether the task produced an output file.
func (o Outcome) Succeeded() bool { return o.Err == nil }

// Convert runs parse → resolve → serialize for one file. The first failing
// stage short-circuits; exactly one Outcome is produced either way. No
// retries, no partial recovery.
func (t Task) Convert() Outcome {
	track, err := gpx.ParseFile(t.Source)
	if err != nil {
		// ParseFile already annotates with the source path.
		return Outcome{Source: t.Source, Err: err}
	}

	out := naming.OutputPath(t.OutputDir, track.Date, track.Name)
	if err := naming.CheckCollision(out); err != nil {
		return t.failed(err)
	}

	base := naming.Basename(track.Date, track.Name)
	if err := kml.Write(track, base, out); err != nil {
		return t.failed(err)
	}
	return Outcome{Source: t.Source, Output: out}
}

func (t Task) failed(err error) Outcome {
	return Outcome{Source: t.Source, Err: fmt.Errorf("%w while parsing %q", err, t.Source)}
}
