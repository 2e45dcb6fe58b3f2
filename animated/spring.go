package animated

import (
	"fmt"
	"math"
	"time"
)

const (
	springStep     = time.Millisecond
	springMaxFrame = 64 * time.Millisecond
)

type SpringConfig struct {
	ToValue float64
	// Stiffness, Damping and Mass default to 100, 10 and 1.
	Stiffness float64
	Damping   float64
	Mass      float64
	// Velocity is the initial velocity in units per second. When zero, a
	// spring taking over from another spring keeps that spring's velocity.
	Velocity float64
	// Rest thresholds default to 0.001.
	RestDisplacementThreshold float64
	RestSpeedThreshold        float64
	// OvershootClamping settles the spring the moment it passes ToValue.
	OvershootClamping bool
	NonInteractive    bool
}

// SpringAnimation moves toward ToValue as a damped harmonic oscillator,
// integrated in fixed one millisecond steps.
type SpringAnimation struct {
	cfg       SpringConfig
	scheduler Scheduler

	from     float64
	position float64
	velocity float64
	onUpdate func(float64)
	onEnd    func(EndResult)
	frame    FrameID
	waiting  bool
	done     bool
}

func Spring(scheduler Scheduler, cfg SpringConfig) (*SpringAnimation, error) {
	if cfg.Stiffness == 0 {
		cfg.Stiffness = 100
	}
	if cfg.Damping == 0 {
		cfg.Damping = 10
	}
	if cfg.Mass == 0 {
		cfg.Mass = 1
	}
	if cfg.RestDisplacementThreshold == 0 {
		cfg.RestDisplacementThreshold = 0.001
	}
	if cfg.RestSpeedThreshold == 0 {
		cfg.RestSpeedThreshold = 0.001
	}
	switch {
	case cfg.Stiffness < 0:
		return nil, fmt.Errorf("%w: stiffness must be positive, got %v", ErrInvalidConfig, cfg.Stiffness)
	case cfg.Damping < 0:
		return nil, fmt.Errorf("%w: damping must be positive, got %v", ErrInvalidConfig, cfg.Damping)
	case cfg.Mass < 0:
		return nil, fmt.Errorf("%w: mass must be positive, got %v", ErrInvalidConfig, cfg.Mass)
	}
	return &SpringAnimation{cfg: cfg, scheduler: scheduler}, nil
}

func (a *SpringAnimation) IsInteraction() bool {
	return !a.cfg.NonInteractive
}

// Velocity is the current velocity in units per second.
func (a *SpringAnimation) Velocity() float64 {
	return a.velocity
}

func (a *SpringAnimation) Start(from float64, onUpdate func(float64), onEnd func(EndResult), previous Animation) {
	a.onUpdate = onUpdate
	a.onEnd = onEnd
	a.from = from
	a.position = from
	a.velocity = a.cfg.Velocity
	a.done = false

	if prev, ok := previous.(*SpringAnimation); ok && a.cfg.Velocity == 0 {
		a.velocity = prev.velocity
	}

	if a.atRest() {
		a.finish()
		return
	}
	a.request()
}

func (a *SpringAnimation) Stop() {
	if a.done {
		return
	}
	a.done = true
	if a.waiting {
		a.waiting = false
		a.scheduler.CancelFrame(a.frame)
	}
}

func (a *SpringAnimation) request() {
	a.waiting = true
	a.frame = a.scheduler.RequestFrame(a.onFrame)
}

func (a *SpringAnimation) onFrame(dt time.Duration) {
	a.waiting = false
	if a.done {
		return
	}
	dt = min(dt, springMaxFrame)

	h := springStep.Seconds()
	for elapsed := time.Duration(0); elapsed < dt; elapsed += springStep {
		displacement := a.position - a.cfg.ToValue
		accel := (-a.cfg.Stiffness*displacement - a.cfg.Damping*a.velocity) / a.cfg.Mass
		a.velocity += accel * h
		a.position += a.velocity * h
	}

	if a.atRest() || a.overshot() {
		a.finish()
		return
	}
	a.onUpdate(a.position)
	if a.done {
		return
	}
	a.request()
}

func (a *SpringAnimation) atRest() bool {
	return math.Abs(a.velocity) <= a.cfg.RestSpeedThreshold &&
		math.Abs(a.position-a.cfg.ToValue) <= a.cfg.RestDisplacementThreshold
}

func (a *SpringAnimation) overshot() bool {
	if !a.cfg.OvershootClamping {
		return false
	}
	if a.from < a.cfg.ToValue {
		return a.position > a.cfg.ToValue
	}
	return a.position < a.cfg.ToValue
}

func (a *SpringAnimation) finish() {
	a.position = a.cfg.ToValue
	a.velocity = 0
	a.onUpdate(a.cfg.ToValue)
	if a.done {
		return
	}
	a.done = true
	a.onEnd(EndResult{Finished: true})
}
