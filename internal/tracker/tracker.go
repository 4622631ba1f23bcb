// Package tracker moves the mascot's eye sprites toward the pointer.
//
// The page runtime is reached only through the Locator and EventSource
// interfaces, so the component runs the same way against the browser DOM and
// against in-memory fakes.
package tracker

import (
	"errors"
	"strconv"

	"github.com/ozpv/ozpv/internal/geometry"
)

var ErrAlreadyMounted = errors.New("tracker already mounted")

// ContainerID is the element the eye anchors and styles are relative to.
const ContainerID = "mascot-image"

// Sprite is an element whose inline style can be replaced.
type Sprite interface {
	SetStyle(style string)
}

// Locator finds sprites by element id and reports where the anchors'
// container currently sits on the page. Both are consulted on every event.
type Locator interface {
	Lookup(id string) (Sprite, bool)
	Origin() geometry.Point
}

// PageEvents reports the page being hidden and shown again. persisted is
// true when the page goes into, or comes back from, the back/forward cache.
type PageEvents interface {
	OnPageHide(fn func(persisted bool)) (cancel func())
	OnPageShow(fn func(persisted bool)) (cancel func())
}

// EventSource delivers pointer positions in page coordinates. The returned
// cancel func removes the subscription.
type EventSource interface {
	OnPointerMove(fn func(geometry.Point)) (cancel func())
}

// Eye is one sprite and its resting position inside the mascot container.
type Eye struct {
	ID     string
	Anchor geometry.Point
}

// DefaultEyes returns the anchors used by the home page markup. They must match
// the initial inline styles of the sprites.
func DefaultEyes() []Eye {
	return []Eye{
		{ID: "right-eye", Anchor: geometry.Point{X: 260, Y: 218}},
		{ID: "left-eye", Anchor: geometry.Point{X: 386, Y: 218}},
	}
}

type Tracker struct {
	loc    Locator
	eyes   []Eye
	cancel func()
}

// New copies eyes so later changes by the caller are not observed.
func New(loc Locator, eyes []Eye) *Tracker {
	snapshot := make([]Eye, len(eyes))
	copy(snapshot, eyes)
	return &Tracker{loc: loc, eyes: snapshot}
}

// Eyes returns a copy of the anchors the tracker was built with.
func (t *Tracker) Eyes() []Eye {
	out := make([]Eye, len(t.eyes))
	copy(out, t.eyes)
	return out
}

// Mount subscribes the tracker to src.
func (t *Tracker) Mount(src EventSource) error {
	if t.cancel != nil {
		return ErrAlreadyMounted
	}
	t.cancel = src.OnPointerMove(func(p geometry.Point) { t.Move(p) })
	if t.cancel == nil {
		t.cancel = func() {}
	}
	return nil
}

// Mounted reports whether the tracker currently holds a subscription.
func (t *Tracker) Mounted() bool { return t.cancel != nil }

// Unmount drops the subscription. Calling it again is a no-op.
func (t *Tracker) Unmount() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	t.cancel = nil
}

// Attach mounts the tracker on src and follows the page lifecycle: it unmounts
// while the page sits in the back/forward cache and mounts again when the page
// is restored. The returned channel is closed once the page is unloaded for
// good, after every listener has been removed.
func (t *Tracker) Attach(src EventSource, page PageEvents) (<-chan struct{}, error) {
	if err := t.Mount(src); err != nil {
		return nil, err
	}
	done := make(chan struct{})
	var stopShow, stopHide func()
	stopShow = page.OnPageShow(func(persisted bool) {
		if persisted && !t.Mounted() {
			_ = t.Mount(src)
		}
	})
	stopHide = page.OnPageHide(func(persisted bool) {
		t.Unmount()
		if persisted {
			return
		}
		stopShow()
		stopHide()
		close(done)
	})
	return done, nil
}

// Move repositions every sprite for pointer p, given in page coordinates, and
// returns how many were written. Sprites that cannot be found are skipped.
func (t *Tracker) Move(p geometry.Point) int {
	local := p.Sub(t.loc.Origin())
	n := 0
	for _, eye := range t.eyes {
		s, ok := t.loc.Lookup(eye.ID)
		if !ok || s == nil {
			continue
		}
		s.SetStyle(Style(geometry.Displace(eye.Anchor, local)))
		n++
	}
	return n
}

// Style formats p as an absolute position, e.g. "left:295px;top:218px;".
func Style(p geometry.Point) string {
	b := make([]byte, 0, 32)
	b = append(b, "left:"...)
	b = strconv.AppendFloat(b, p.X, 'f', -1, 64)
	b = append(b, "px;top:"...)
	b = strconv.AppendFloat(b, p.Y, 'f', -1, 64)
	b = append(b, "px;"...)
	return string(b)
}
