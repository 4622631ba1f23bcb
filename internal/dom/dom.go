//go:build js && wasm

package dom

import (
	"errors"
	"syscall/js"

	"github.com/ozpv/ozpv/internal/geometry"
	"github.com/ozpv/ozpv/internal/tracker"
	"github.com/ozpv/ozpv/internal/viewport"
)

const (
	DesktopLayoutID = "desktop-layout"
	MobileLayoutID  = "mobile-layout"
)

var errNoWindow = errors.New("window is not available")

func window() js.Value { return js.Global().Get("window") }

func document() js.Value { return js.Global().Get("document") }

// Element wraps a DOM element.
type Element struct {
	v js.Value
}

func (e Element) SetStyle(style string) { e.v.Call("setAttribute", "style", style) }

func (e Element) SetHidden(hidden bool) { e.v.Set("hidden", hidden) }

// Document looks elements up by id on every call. Container is the id of the
// element that sprite positions are relative to.
type Document struct {
	Container string
}

func (Document) Lookup(id string) (tracker.Sprite, bool) {
	el, ok := byID(id)
	if !ok {
		return nil, false
	}
	return el, true
}

// Origin returns the page position of the container's top-left corner, or
// the page origin when the container is missing.
func (d Document) Origin() geometry.Point {
	el, ok := byID(d.Container)
	if !ok {
		return geometry.Point{}
	}
	rect := el.v.Call("getBoundingClientRect")
	w := window()
	return geometry.Point{
		X: rect.Get("left").Float() + w.Get("scrollX").Float(),
		Y: rect.Get("top").Float() + w.Get("scrollY").Float(),
	}
}

func byID(id string) (Element, bool) {
	doc := document()
	if !doc.Truthy() {
		return Element{}, false
	}
	v := doc.Call("getElementById", id)
	if !v.Truthy() {
		return Element{}, false
	}
	return Element{v}, true
}

// Window is the global event source.
type Window struct{}

// listen adds a window listener for event. The cancel func removes the
// listener and releases the callback.
func listen(event string, fn func(ev js.Value)) func() {
	w := window()
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(args[0])
		}
		return nil
	})
	w.Call("addEventListener", event, cb)
	return func() {
		w.Call("removeEventListener", event, cb)
		cb.Release()
	}
}

// OnPointerMove reports mousemove positions in page coordinates.
func (Window) OnPointerMove(fn func(geometry.Point)) func() {
	return listen("mousemove", func(ev js.Value) {
		fn(geometry.Point{X: ev.Get("pageX").Float(), Y: ev.Get("pageY").Float()})
	})
}

func (Window) OnPageHide(fn func(persisted bool)) func() {
	return listen("pagehide", func(ev js.Value) { fn(ev.Get("persisted").Truthy()) })
}

func (Window) OnPageShow(fn func(persisted bool)) func() {
	return listen("pageshow", func(ev js.Value) { fn(ev.Get("persisted").Truthy()) })
}

// InnerWidth reads window.innerWidth.
func InnerWidth() (float64, error) {
	w := window()
	if !w.Truthy() {
		return 0, errNoWindow
	}
	v := w.Get("innerWidth")
	if v.Type() != js.TypeNumber {
		return 0, errors.New("window.innerWidth is not a number")
	}
	return v.Float(), nil
}

// SetLayout shows the container for mode and hides the other one. Missing
// containers are ignored.
func SetLayout(mode viewport.LayoutMode) {
	if el, ok := byID(DesktopLayoutID); ok {
		el.SetHidden(mode != viewport.Desktop)
	}
	if el, ok := byID(MobileLayoutID); ok {
		el.SetHidden(mode != viewport.Mobile)
	}
}
