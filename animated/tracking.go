package animated

// Tracking keeps a value chasing another scalar. Every change of the source
// restarts an animation, built by newAnimation, from the value's current
// position toward the source's new value.
//
// The inner animation belongs to the tracking relationship, so the value it
// is bound to only ever sees one driver.
type Tracking struct {
	nodeBase
	source       Scalar
	newAnimation func(toValue float64) Animation
	callback     func(EndResult)

	value    *ValueNode
	current  *run
	released bool
}

// NewTracking builds an unbound tracking relationship. Bind it with
// ValueNode.Track. callback, if set, is called each time an inner animation
// settles by itself.
func NewTracking(source Scalar, newAnimation func(toValue float64) Animation, callback func(EndResult)) *Tracking {
	return &Tracking{
		source:       source,
		newAnimation: newAnimation,
		callback:     callback,
	}
}

func (t *Tracking) Source() Scalar {
	return t.source
}

func (t *Tracking) bind(v *ValueNode, previous Animation) {
	if t.value != nil || t.released {
		panic("animated: tracking is already bound")
	}
	t.value = v
	addChild(t.source, t)
	t.follow(previous)
}

// update runs when the source changed.
func (t *Tracking) update() {
	if t.released {
		return
	}
	t.follow(nil)
}

func (t *Tracking) follow(previous Animation) {
	if t.current != nil {
		previous = t.current.animation
		t.current.stop()
		t.current = nil
	}

	r := t.value.newRun(t.newAnimation(t.source.Value()))
	t.current = r
	r.start(previous, func(result EndResult) {
		if t.current == r {
			t.current = nil
		}
		if t.callback != nil {
			t.callback(result)
		}
	})
}

// release stops the inner animation and unsubscribes from the source. It
// returns the inner animation if one was still running.
func (t *Tracking) release() (previous Animation) {
	if t.released {
		return nil
	}
	t.released = true
	if t.current != nil {
		previous = t.current.animation
		t.current.stop()
		t.current = nil
	}
	removeChild(t.source, t)
	return previous
}

func (t *Tracking) attach() {}
func (t *Tracking) detach() {}
