package frameloop

import (
	"time"

	"github.com/delaneyj/animparty/animated"
)

type request struct {
	id        animated.FrameID
	cb        animated.FrameCallback
	cancelled bool
}

// Loop is a manually stepped frame scheduler. Callbacks requested while a
// step is running are deferred to the next step, the same way a display link
// would deliver them on the following vsync.
type Loop struct {
	next    animated.FrameID
	queue   []*request
	running []*request
	frame   int
	elapsed time.Duration
}

func New() *Loop {
	return &Loop{}
}

func (l *Loop) RequestFrame(cb animated.FrameCallback) animated.FrameID {
	l.next++
	l.queue = append(l.queue, &request{id: l.next, cb: cb})
	return l.next
}

// CancelFrame drops a queued callback. Cancelling a callback that belongs to
// the step currently running prevents it from firing later in that step.
func (l *Loop) CancelFrame(id animated.FrameID) {
	for i, r := range l.queue {
		if r.id == id {
			l.queue = append(l.queue[:i], l.queue[i+1:]...)
			return
		}
	}
	for _, r := range l.running {
		if r.id == id {
			r.cancelled = true
			return
		}
	}
}

// Step advances the clock by dt and runs every callback that was queued
// before the step started. It reports how many callbacks ran.
func (l *Loop) Step(dt time.Duration) int {
	l.frame++
	l.elapsed += dt

	l.running = l.queue
	l.queue = nil
	defer func() { l.running = nil }()

	ran := 0
	for _, r := range l.running {
		if r.cancelled {
			continue
		}
		r.cb(dt)
		ran++
	}
	return ran
}

// Run steps until nothing is queued or maxFrames steps have run, returning
// the number of steps taken.
func (l *Loop) Run(dt time.Duration, maxFrames int) int {
	steps := 0
	for steps < maxFrames && len(l.queue) > 0 {
		l.Step(dt)
		steps++
	}
	return steps
}

// Pending is the number of callbacks waiting for the next step.
func (l *Loop) Pending() int {
	return len(l.queue)
}

func (l *Loop) Frame() int {
	return l.frame
}

func (l *Loop) Elapsed() time.Duration {
	return l.elapsed
}
