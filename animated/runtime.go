// Package animated propagates numeric values through a dependency graph of
// derived nodes into view bindings.
//
// A ValueNode is the mutable source. Interpolations and composites derive new
// scalars from it, a Style gathers scalars into named properties, and a Props
// leaf pushes the gathered style into a View. Setting a value, an animation
// tick, or a tracked source change recomputes every reachable Props leaf
// exactly once before the value's listeners are told about the change.
//
//	rt := animated.CreateRuntime(nil)
//	x := animated.Value(rt, 0)
//	opacity, _ := x.Interpolate(animated.InterpolationConfig{
//		InputRange:  []float64{0, 100},
//		OutputRange: []float64{1, 0},
//	})
//	style := animated.NewStyle(map[string]animated.Scalar{"opacity": opacity}, nil)
//	props := animated.NewProps(style, element)
//	defer props.Detach()
//	x.SetValue(50) // element receives opacity 0.5
//
// Everything in this package is single threaded and synchronous.
package animated

import "github.com/delaneyj/animparty/interaction"

// InteractionRegistry hands out handles that keep idle-time work from
// starving a running animation.
type InteractionRegistry interface {
	CreateHandle() interaction.Handle
	ClearHandle(h interaction.Handle)
}

type Runtime struct {
	interactions   InteractionRegistry
	nextListenerID ListenerID
}

// CreateRuntime returns a runtime using the given interaction registry, or
// a fresh interaction.Manager when interactions is nil.
func CreateRuntime(interactions InteractionRegistry) *Runtime {
	if interactions == nil {
		interactions = interaction.NewManager()
	}
	return &Runtime{interactions: interactions}
}

func (rt *Runtime) Interactions() InteractionRegistry {
	return rt.interactions
}

func (rt *Runtime) listenerID() ListenerID {
	rt.nextListenerID++
	return rt.nextListenerID
}
