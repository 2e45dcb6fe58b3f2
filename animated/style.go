package animated

import (
	"maps"
	"slices"
)

// TransformOp is one entry of a transform list, e.g. translateX or scale.
type TransformOp struct {
	Name  string
	Input Scalar
}

type TransformValue struct {
	Name  string
	Value float64
}

// Transform is an ordered list of transform operations whose inputs may come
// from unrelated values.
type Transform struct {
	nodeBase
	ops []TransformOp
}

func NewTransform(ops ...TransformOp) *Transform {
	return &Transform{ops: slices.Clone(ops)}
}

func (t *Transform) Values() []TransformValue {
	values := make([]TransformValue, len(t.ops))
	for i, op := range t.ops {
		values[i] = TransformValue{Name: op.Name, Value: op.Input.Value()}
	}
	return values
}

func (t *Transform) attach() {
	for _, op := range t.ops {
		addChild(op.Input, t)
	}
}

func (t *Transform) detach() {
	for _, op := range t.ops {
		removeChild(op.Input, t)
	}
}

// StyleValues is the fully composed output of a Style.
type StyleValues struct {
	Properties map[string]float64
	Transform  []TransformValue
}

// Keys returns the property names in sorted order.
func (s StyleValues) Keys() []string {
	return slices.Sorted(maps.Keys(s.Properties))
}

// Style groups named scalar properties and an optional transform.
type Style struct {
	nodeBase
	properties map[string]Scalar
	transform  *Transform
}

func NewStyle(properties map[string]Scalar, transform *Transform) *Style {
	return &Style{
		properties: maps.Clone(properties),
		transform:  transform,
	}
}

func (s *Style) Values() StyleValues {
	values := StyleValues{
		Properties: make(map[string]float64, len(s.properties)),
	}
	for name, input := range s.properties {
		values.Properties[name] = input.Value()
	}
	if s.transform != nil {
		values.Transform = s.transform.Values()
	}
	return values
}

func (s *Style) attach() {
	for _, name := range s.names() {
		addChild(s.properties[name], s)
	}
	if s.transform != nil {
		addChild(s.transform, s)
	}
}

func (s *Style) detach() {
	for _, name := range s.names() {
		removeChild(s.properties[name], s)
	}
	if s.transform != nil {
		removeChild(s.transform, s)
	}
}

// names fixes the order edges are created and removed in.
func (s *Style) names() []string {
	return slices.Sorted(maps.Keys(s.properties))
}
