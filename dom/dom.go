// Package dom adapts browser objects to the small interfaces the meter and
// visualizer are written against.
package dom

import (
	"github.com/gopherjs/gopherjs/js"
)

// present reports whether a lookup returned a real object.
func present(o *js.Object) bool {
	return o != nil && o != js.Undefined
}

// Element wraps an HTML element.
type Element struct {
	*js.Object
}

// Wrap returns nil for null or undefined objects.
func Wrap(o *js.Object) *Element {
	if !present(o) {
		return nil
	}
	return &Element{Object: o}
}

func (e *Element) SetText(text string) {
	e.Set("textContent", text)
}

func (e *Element) Text() string {
	return e.Get("textContent").String()
}

// SetProperty sets a CSS custom property such as --progress.
func (e *Element) SetProperty(name, value string) {
	e.Get("style").Call("setProperty", name, value)
}

// SetStyle sets a regular style property such as transform.
func (e *Element) SetStyle(name, value string) {
	e.Get("style").Set(name, value)
}

// Query returns the first descendant matching selector, or nil.
func (e *Element) Query(selector string) *Element {
	return Wrap(e.Call("querySelector", selector))
}

// Document is the page document.
type Document struct {
	*js.Object
}

func NewDocument(o *js.Object) *Document {
	return &Document{Object: o}
}

// Query returns the first element matching selector, or nil.
func (d *Document) Query(selector string) *Element {
	return Wrap(d.Call("querySelector", selector))
}

// QueryAll returns every element matching selector in document order.
func (d *Document) QueryAll(selector string) []*Element {
	list := d.Call("querySelectorAll", selector)
	if !present(list) {
		return nil
	}
	n := list.Get("length").Int()
	out := make([]*Element, 0, n)
	for i := 0; i < n; i++ {
		if el := Wrap(list.Call("item", i)); el != nil {
			out = append(out, el)
		}
	}
	return out
}
