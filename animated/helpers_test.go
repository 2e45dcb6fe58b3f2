package animated_test

import (
	"github.com/delaneyj/animparty/animated"
)

// scripted is an animation driven by hand from the test.
type scripted struct {
	interaction bool
	settleNow   bool

	starts   int
	stops    int
	from     float64
	previous animated.Animation
	onUpdate func(float64)
	onEnd    func(animated.EndResult)
}

func (s *scripted) Start(from float64, onUpdate func(float64), onEnd func(animated.EndResult), previous animated.Animation) {
	s.starts++
	s.from = from
	s.onUpdate = onUpdate
	s.onEnd = onEnd
	s.previous = previous
	if s.settleNow {
		s.Settle()
	}
}

func (s *scripted) Stop() {
	s.stops++
}

func (s *scripted) IsInteraction() bool {
	return s.interaction
}

func (s *scripted) Tick(v float64) {
	s.onUpdate(v)
}

func (s *scripted) Settle() {
	s.onEnd(animated.EndResult{Finished: true})
}

// countingView remembers every style it was given.
type countingView struct {
	applied []animated.StyleValues
}

func (v *countingView) ApplyStyle(values animated.StyleValues) {
	v.applied = append(v.applied, values)
}

func (v *countingView) last() animated.StyleValues {
	return v.applied[len(v.applied)-1]
}

func (v *countingView) count() int {
	return len(v.applied)
}

func mustInterpolate(parent animated.Scalar, in, out []float64) *animated.Interpolation {
	i, err := animated.Interpolate(parent, animated.InterpolationConfig{
		InputRange:  in,
		OutputRange: out,
	})
	if err != nil {
		panic(err)
	}
	return i
}

func bind(view animated.View, properties map[string]animated.Scalar, ops ...animated.TransformOp) *animated.Props {
	var transform *animated.Transform
	if len(ops) > 0 {
		transform = animated.NewTransform(ops...)
	}
	return animated.NewProps(animated.NewStyle(properties, transform), view)
}
