package animated

import (
	"fmt"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type TimingConfig struct {
	ToValue  float64
	Duration time.Duration
	// Easing defaults to ease.InOutQuad.
	Easing ease.TweenFunc
	// NonInteractive lets idle-time work run while the animation plays.
	NonInteractive bool
}

// TimingAnimation tweens toward ToValue over a fixed duration, one step per
// frame delivered by its scheduler.
type TimingAnimation struct {
	cfg       TimingConfig
	scheduler Scheduler

	tween    *gween.Tween
	onUpdate func(float64)
	onEnd    func(EndResult)
	frame    FrameID
	waiting  bool
	done     bool
}

func Timing(scheduler Scheduler, cfg TimingConfig) (*TimingAnimation, error) {
	if cfg.Duration < 0 {
		return nil, fmt.Errorf("%w: negative duration %s", ErrInvalidConfig, cfg.Duration)
	}
	if cfg.Easing == nil {
		cfg.Easing = ease.InOutQuad
	}
	return &TimingAnimation{cfg: cfg, scheduler: scheduler}, nil
}

func (a *TimingAnimation) IsInteraction() bool {
	return !a.cfg.NonInteractive
}

func (a *TimingAnimation) Start(from float64, onUpdate func(float64), onEnd func(EndResult), previous Animation) {
	a.onUpdate = onUpdate
	a.onEnd = onEnd
	a.done = false

	if a.cfg.Duration == 0 {
		a.finish()
		return
	}
	a.tween = gween.New(float32(from), float32(a.cfg.ToValue), float32(a.cfg.Duration.Seconds()), a.cfg.Easing)
	a.request()
}

func (a *TimingAnimation) Stop() {
	if a.done {
		return
	}
	a.done = true
	if a.waiting {
		a.waiting = false
		a.scheduler.CancelFrame(a.frame)
	}
}

func (a *TimingAnimation) request() {
	a.waiting = true
	a.frame = a.scheduler.RequestFrame(a.onFrame)
}

func (a *TimingAnimation) onFrame(dt time.Duration) {
	a.waiting = false
	if a.done {
		return
	}
	current, finished := a.tween.Update(float32(dt.Seconds()))
	if finished {
		a.finish()
		return
	}
	a.onUpdate(float64(current))
	if a.done {
		return
	}
	a.request()
}

// finish lands exactly on ToValue; the float32 tween can stop a hair short.
func (a *TimingAnimation) finish() {
	a.onUpdate(a.cfg.ToValue)
	if a.done {
		return
	}
	a.done = true
	a.onEnd(EndResult{Finished: true})
}
