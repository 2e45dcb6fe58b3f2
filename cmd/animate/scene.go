package main

import (
	"fmt"

	"github.com/delaneyj/animparty/animated"
	"github.com/delaneyj/animparty/frameloop"
	"github.com/delaneyj/animparty/interaction"
	"github.com/delaneyj/animparty/view"
)

// scene is a card sliding right while it grows, with a shadow that springs
// after it.
type scene struct {
	loop         *frameloop.Loop
	interactions *interaction.Manager
	recorder     *view.Recorder

	x, scale, shadowX *animated.ValueNode
	card, shadow      *view.Element
	props             []*animated.Props
}

type frameRow struct {
	Frame   int
	X       float64
	Opacity float64
	Scale   float64
	ShadowX float64
	Pending int
}

func newScene() (*scene, error) {
	s := &scene{
		loop:         frameloop.New(),
		interactions: interaction.NewManager(),
		recorder:     view.NewRecorder(),
	}
	rt := animated.CreateRuntime(s.interactions)

	s.x = animated.Value(rt, 0)
	s.scale = animated.Value(rt, 1)
	s.shadowX = animated.Value(rt, 0)

	opacity, err := s.x.Interpolate(animated.InterpolationConfig{
		InputRange:       []float64{0, 100},
		OutputRange:      []float64{1, 0.2},
		ExtrapolateLeft:  animated.ExtrapolateClamp,
		ExtrapolateRight: animated.ExtrapolateClamp,
	})
	if err != nil {
		return nil, fmt.Errorf("card opacity: %w", err)
	}

	s.card = view.NewElement("card", s.recorder)
	s.shadow = view.NewElement("shadow", s.recorder)
	s.props = []*animated.Props{
		animated.NewProps(animated.NewStyle(
			map[string]animated.Scalar{"opacity": opacity},
			animated.NewTransform(
				animated.TransformOp{Name: "translateX", Input: s.x},
				animated.TransformOp{Name: "scale", Input: s.scale},
			),
		), s.card),
		animated.NewProps(animated.NewStyle(
			nil,
			animated.NewTransform(animated.TransformOp{Name: "translateX", Input: s.shadowX}),
		), s.shadow),
	}
	return s, nil
}

func (s *scene) start(cfg config, onSettled func(name string)) error {
	easing, err := easingByName(cfg.Easing)
	if err != nil {
		return err
	}

	slide, err := animated.Timing(s.loop, animated.TimingConfig{
		ToValue:  100,
		Duration: cfg.Duration,
		Easing:   easing,
	})
	if err != nil {
		return fmt.Errorf("slide: %w", err)
	}
	grow, err := animated.Spring(s.loop, animated.SpringConfig{ToValue: 1.5, NonInteractive: true})
	if err != nil {
		return fmt.Errorf("grow: %w", err)
	}

	s.shadowX.Track(animated.NewTracking(s.x, func(to float64) animated.Animation {
		a, err := animated.Spring(s.loop, animated.SpringConfig{ToValue: to, Stiffness: 180, Damping: 24})
		if err != nil {
			panic(err)
		}
		return a
	}, nil))
	s.x.Animate(slide, func(animated.EndResult) { onSettled("slide") })
	s.scale.Animate(grow, func(animated.EndResult) { onSettled("grow") })
	return nil
}

func (s *scene) step(cfg config) frameRow {
	s.loop.Step(cfg.frameDuration())
	opacity, _ := s.card.Property("opacity")
	return frameRow{
		Frame:   s.loop.Frame(),
		X:       s.x.Value(),
		Opacity: opacity,
		Scale:   s.scale.Value(),
		ShadowX: s.shadowX.Value(),
		Pending: s.interactions.Pending(),
	}
}

func (s *scene) stop() {
	for _, p := range s.props {
		p.Detach()
	}
}
