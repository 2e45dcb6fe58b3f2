package view

import "github.com/delaneyj/animparty/animated"

// Element is a rendered element whose animated properties are set by a
// Props leaf. It keeps the last style it received.
type Element struct {
	name     string
	style    animated.StyleValues
	applied  int
	recorder *Recorder
}

var _ animated.View = (*Element)(nil)

// NewElement creates an element. recorder may be nil.
func NewElement(name string, recorder *Recorder) *Element {
	return &Element{name: name, recorder: recorder}
}

func (e *Element) ApplyStyle(values animated.StyleValues) {
	e.style = values
	e.applied++
	if e.recorder != nil {
		e.recorder.record(e.name, values)
	}
}

func (e *Element) Name() string {
	return e.name
}

func (e *Element) Style() animated.StyleValues {
	return e.style
}

// Property returns a named property from the last applied style.
func (e *Element) Property(name string) (float64, bool) {
	v, ok := e.style.Properties[name]
	return v, ok
}

// TransformValue returns the named entry of the last applied transform.
func (e *Element) TransformValue(name string) (float64, bool) {
	for _, t := range e.style.Transform {
		if t.Name == name {
			return t.Value, true
		}
	}
	return 0, false
}

// Applied counts how many times a style was applied.
func (e *Element) Applied() int {
	return e.applied
}
