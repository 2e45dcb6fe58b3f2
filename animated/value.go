package animated

type ListenerID uint64

type ValueEvent struct {
	Value float64
}

type ValueListener func(ValueEvent)

// ValueNode is a mutable scalar at the source end of the graph. Its
// effective value is base plus offset. At most one driver (an animation or
// a tracking relationship) moves the base at any time.
type ValueNode struct {
	nodeBase
	rt        *Runtime
	value     float64
	offset    float64
	driver    driver
	listeners map[ListenerID]ValueListener
}

func Value(rt *Runtime, initial float64) *ValueNode {
	return &ValueNode{
		rt:        rt,
		value:     initial,
		listeners: map[ListenerID]ValueListener{},
	}
}

// Value returns the effective value, base plus offset.
func (v *ValueNode) Value() float64 {
	return v.value + v.offset
}

func (v *ValueNode) Base() float64 {
	return v.value
}

func (v *ValueNode) Offset() float64 {
	return v.offset
}

// SetValue stops whatever is driving the value, without calling its
// completion callback, then updates dependents and listeners.
func (v *ValueNode) SetValue(value float64) {
	v.clearDriver()
	v.updateValue(value)
}

// SetOffset replaces the offset. Dependents see it the next time the value
// is propagated; nothing is recomputed here.
func (v *ValueNode) SetOffset(offset float64) {
	v.offset = offset
}

// FlattenOffset merges the offset into the base and resets the offset to
// zero. The effective value does not change.
func (v *ValueNode) FlattenOffset() {
	v.value += v.offset
	v.offset = 0
}

// ExtractOffset moves the whole effective value into the offset and resets
// the base to zero. The effective value does not change.
func (v *ValueNode) ExtractOffset() {
	v.offset += v.value
	v.value = 0
}

// AddListener registers fn to be called with the effective value after every
// update. The returned id is never reused by the runtime.
func (v *ValueNode) AddListener(fn ValueListener) ListenerID {
	id := v.rt.listenerID()
	v.listeners[id] = fn
	return id
}

func (v *ValueNode) RemoveListener(id ListenerID) {
	delete(v.listeners, id)
}

func (v *ValueNode) RemoveAllListeners() {
	clear(v.listeners)
}

func (v *ValueNode) HasListeners() bool {
	return len(v.listeners) > 0
}

// StopAnimation stops tracking and any running animation, neither of which
// gets its completion callback, then calls fn with the current value.
func (v *ValueNode) StopAnimation(fn func(value float64)) {
	v.clearDriver()
	if fn != nil {
		fn(v.Value())
	}
}

// Animate makes animation the value's only driver. A running animation or
// tracking relationship is stopped first and handed to the new animation as
// its predecessor. callback, if set, receives the result when the animation
// settles by itself; it is never called for an interrupted animation.
func (v *ValueNode) Animate(animation Animation, callback func(EndResult)) {
	r := v.newRun(animation)
	previous := v.clearDriver()

	d := &animationDriver{run: r}
	v.driver = d
	r.start(previous, func(result EndResult) {
		if v.driver == driver(d) {
			v.driver = nil
		}
		if callback != nil {
			callback(result)
		}
	})
}

// Track makes t the value's only driver, stopping any running animation or
// previous tracking relationship first. A Tracking can be bound to one
// value, once.
func (v *ValueNode) Track(t *Tracking) {
	previous := v.clearDriver()
	v.driver = &trackingDriver{tracking: t}
	t.bind(v, previous)
}

// StopTracking releases the tracking relationship, if there is one. A
// running animation is left alone.
func (v *ValueNode) StopTracking() {
	if _, ok := v.driver.(*trackingDriver); ok {
		v.clearDriver()
	}
}

func (v *ValueNode) IsAnimating() bool {
	_, ok := v.driver.(*animationDriver)
	return ok
}

func (v *ValueNode) IsTracking() bool {
	_, ok := v.driver.(*trackingDriver)
	return ok
}

func (v *ValueNode) Interpolate(cfg InterpolationConfig) (*Interpolation, error) {
	return Interpolate(v, cfg)
}

// clearDriver unlinks and stops the current driver, returning the animation
// that was moving the value so a successor can continue from it.
func (v *ValueNode) clearDriver() (previous Animation) {
	switch d := v.driver.(type) {
	case nil:
		return nil
	case *animationDriver:
		v.driver = nil
		d.run.stop()
		return d.run.animation
	case *trackingDriver:
		v.driver = nil
		return d.tracking.release()
	default:
		panic("not a driver")
	}
}

// updateValue is the single write path for the base value: store it,
// recompute every reachable output, then notify listeners so they observe a
// graph that already reflects the new value.
func (v *ValueNode) updateValue(value float64) {
	v.value = value
	flush(v)

	event := ValueEvent{Value: v.Value()}
	for _, fn := range v.listeners {
		fn(event)
	}
}

func (v *ValueNode) attach() {}

// detach runs when the last dependent goes away. The driver is stopped so
// nothing keeps calling back into a value no one reads. The node itself
// stays usable and re-attaches when a new dependent arrives.
func (v *ValueNode) detach() {
	v.clearDriver()
}
