package animated

import "time"

// EndResult is handed to an animation's settle callback.
type EndResult struct {
	Finished bool
}

// Animation is a strategy that moves a value over time.
//
// Start begins at from and calls onUpdate for every new value. onEnd is
// called at most once, and only when the animation settles by itself. Stop
// interrupts the animation; it is called at most once per Start and must
// not call onEnd. previous is the animation that was driving the value
// before this one, if any, so strategies can carry over velocity.
type Animation interface {
	Start(from float64, onUpdate func(value float64), onEnd func(EndResult), previous Animation)
	Stop()
	// IsInteraction reports whether the animation holds an interaction
	// handle while it runs.
	IsInteraction() bool
}

type FrameID uint64

type FrameCallback func(dt time.Duration)

// Scheduler delivers frame callbacks to animation strategies.
type Scheduler interface {
	RequestFrame(cb FrameCallback) FrameID
	CancelFrame(id FrameID)
}
