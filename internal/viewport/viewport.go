package viewport

import (
	"fmt"
	"strconv"
	"strings"
)

// Breakpoint is the viewport width, in CSS pixels, below which the mobile
// layout is used.
const Breakpoint = 755

// HintHeader is the client hint carrying the viewport width.
const HintHeader = "Sec-CH-Viewport-Width"

// LayoutMode selects which of the two home page layouts is shown.
type LayoutMode int

const (
	Desktop LayoutMode = iota
	Mobile
)

func (m LayoutMode) String() string {
	if m == Mobile {
		return "mobile"
	}
	return "desktop"
}

// Classify maps a viewport width to a layout.
func Classify(width float64) LayoutMode {
	if width < Breakpoint {
		return Mobile
	}
	return Desktop
}

// FromHint parses a Sec-CH-Viewport-Width value. ok is false when the hint is
// absent or unusable.
func FromHint(header string) (mode LayoutMode, ok bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return Desktop, false
	}
	w, err := strconv.ParseFloat(header, 64)
	if err != nil || w <= 0 {
		return Desktop, false
	}
	return Classify(w), true
}

// Classifier holds a layout mode that is decided once. There is no resize
// handling: later Init calls return the stored mode.
type Classifier struct {
	done bool
	mode LayoutMode
	err  error
}

// Init reads the viewport width through read and stores the resulting mode.
// A failing read leaves the mode at Desktop.
func (c *Classifier) Init(read func() (float64, error)) LayoutMode {
	if c.done {
		return c.mode
	}
	c.done = true
	w, err := read()
	if err != nil {
		c.err = fmt.Errorf("read viewport width: %w", err)
		return c.mode
	}
	c.mode = Classify(w)
	return c.mode
}

func (c *Classifier) Mode() LayoutMode { return c.mode }

// Err returns the error from the initial read, if any.
func (c *Classifier) Err() error { return c.err }
