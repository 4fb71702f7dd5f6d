// SPDX-License-Identifier: MIT

package bpass

import "fmt"

// Window selects data rows [Start, Stop) keeping every Stride-th one.
// Stop <= 0 reads to the end of the input.
type Window struct {
	Start  int `yaml:"start"`
	Stop   int `yaml:"stop"`
	Stride int `yaml:"stride"`
}

// FullWindow selects every row.
var FullWindow = Window{Start: 0, Stop: 0, Stride: 1}

// Validate checks the window bounds.
func (w Window) Validate() error {
	switch {
	case w.Start < 0:
		return fmt.Errorf("start=%d: %w", w.Start, ErrInvalidWindow)
	case w.Stride <= 0:
		return fmt.Errorf("stride=%d: %w", w.Stride, ErrInvalidWindow)
	case w.Stop > 0 && w.Stop <= w.Start:
		return fmt.Errorf("stop=%d <= start=%d: %w", w.Stop, w.Start, ErrInvalidWindow)
	}

	return nil
}

// selects reports whether data row idx is kept and whether reading can stop.
func (w Window) selects(idx int) (keep, done bool) {
	if w.Stop > 0 && idx >= w.Stop {
		return false, true
	}
	if idx < w.Start {
		return false, false
	}

	return (idx-w.Start)%w.Stride == 0, false
}

func (w Window) String() string {
	stop := "end"
	if w.Stop > 0 {
		stop = fmt.Sprint(w.Stop)
	}

	return fmt.Sprintf("[%d:%s:%d]", w.Start, stop, w.Stride)
}
