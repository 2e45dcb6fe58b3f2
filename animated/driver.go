package animated

import "github.com/delaneyj/animparty/interaction"

// driver is the single thing allowed to mutate a ValueNode's base value.
// It is either an *animationDriver or a *trackingDriver; a nil driver means
// the node is idle.
type driver interface {
	isDriver()
}

type animationDriver struct {
	run *run
}

type trackingDriver struct {
	tracking *Tracking
}

func (*animationDriver) isDriver() {}
func (*trackingDriver) isDriver()  {}

// run is one started animation instance bound to a value. Once stopped or
// settled it ignores any further callbacks from its strategy.
type run struct {
	value     *ValueNode
	animation Animation
	handle    interaction.Handle
	hasHandle bool
	active    bool
}

// newRun binds animation to v, acquiring an interaction handle if the
// animation wants one. The run does nothing until start is called.
func (v *ValueNode) newRun(animation Animation) *run {
	r := &run{
		value:     v,
		animation: animation,
		active:    true,
	}
	if animation.IsInteraction() {
		r.handle = v.rt.interactions.CreateHandle()
		r.hasHandle = true
	}
	return r
}

// start begins the animation from the value's current base. onSettle runs
// after the handle is released, and only on natural completion.
func (r *run) start(previous Animation, onSettle func(result EndResult)) {
	v := r.value
	r.animation.Start(
		v.value,
		func(value float64) {
			if !r.active {
				return
			}
			v.updateValue(value)
		},
		func(result EndResult) {
			if !r.active {
				return
			}
			r.active = false
			r.release()
			onSettle(result)
		},
		previous,
	)
}

// stop interrupts a running animation and releases its handle. Stopping an
// already finished run is a no-op.
func (r *run) stop() {
	if !r.active {
		return
	}
	r.active = false
	r.animation.Stop()
	r.release()
}

func (r *run) release() {
	if !r.hasHandle {
		return
	}
	r.hasHandle = false
	r.value.rt.interactions.ClearHandle(r.handle)
}
