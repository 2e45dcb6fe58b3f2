package animated

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// Extrapolate decides what an interpolation does with input outside its
// input range.
type Extrapolate uint8

const (
	// ExtrapolateExtend keeps following the nearest segment.
	ExtrapolateExtend Extrapolate = iota
	// ExtrapolateClamp pins the output to the range edge.
	ExtrapolateClamp
	// ExtrapolateIdentity returns the input unchanged.
	ExtrapolateIdentity
)

func (e Extrapolate) String() string {
	switch e {
	case ExtrapolateExtend:
		return "extend"
	case ExtrapolateClamp:
		return "clamp"
	case ExtrapolateIdentity:
		return "identity"
	default:
		return "unknown"
	}
}

type InterpolationConfig struct {
	InputRange  []float64
	OutputRange []float64
	// Easing shapes each segment. Nil means linear.
	Easing           ease.TweenFunc
	ExtrapolateLeft  Extrapolate
	ExtrapolateRight Extrapolate
}

// Interpolation maps its parent's value through a piecewise function.
type Interpolation struct {
	nodeBase
	parent Scalar
	mapFn  func(float64) float64
}

// Interpolate derives a node from parent. parent is not modified; the new
// node subscribes to it once something depends on the interpolation.
func Interpolate(parent Scalar, cfg InterpolationConfig) (*Interpolation, error) {
	mapFn, err := createInterpolation(cfg)
	if err != nil {
		return nil, fmt.Errorf("create interpolation: %w", err)
	}
	return &Interpolation{parent: parent, mapFn: mapFn}, nil
}

func (i *Interpolation) Value() float64 {
	return i.mapFn(i.parent.Value())
}

func (i *Interpolation) Interpolate(cfg InterpolationConfig) (*Interpolation, error) {
	return Interpolate(i, cfg)
}

func (i *Interpolation) attach() {
	addChild(i.parent, i)
}

func (i *Interpolation) detach() {
	removeChild(i.parent, i)
}

func createInterpolation(cfg InterpolationConfig) (func(float64) float64, error) {
	in, out := cfg.InputRange, cfg.OutputRange
	if len(in) < 2 {
		return nil, fmt.Errorf("%w: input range needs at least 2 entries, got %d", ErrInvalidRange, len(in))
	}
	if len(in) != len(out) {
		return nil, fmt.Errorf("%w: input range has %d entries, output range has %d", ErrInvalidRange, len(in), len(out))
	}
	for i := 1; i < len(in); i++ {
		if in[i] < in[i-1] {
			return nil, fmt.Errorf("%w: input range must be non-decreasing, got %v", ErrInvalidRange, in)
		}
	}

	easing := linear
	if cfg.Easing != nil {
		fn := cfg.Easing
		easing = func(t float64) float64 {
			return float64(fn(float32(t), 0, 1, 1))
		}
	}

	in = append([]float64(nil), in...)
	out = append([]float64(nil), out...)
	left, right := cfg.ExtrapolateLeft, cfg.ExtrapolateRight

	return func(input float64) float64 {
		r := findRange(input, in)
		return interpolate(input, in[r], in[r+1], out[r], out[r+1], easing, left, right)
	}, nil
}

func linear(t float64) float64 {
	return t
}

// findRange returns the index of the segment that input falls into. Input
// before the first or after the last breakpoint uses the outer segments.
func findRange(input float64, inputRange []float64) int {
	i := 1
	for ; i < len(inputRange)-1; i++ {
		if inputRange[i] >= input {
			break
		}
	}
	return i - 1
}

func interpolate(
	input, inMin, inMax, outMin, outMax float64,
	easing func(float64) float64,
	left, right Extrapolate,
) float64 {
	result := input

	if result < inMin {
		switch left {
		case ExtrapolateIdentity:
			return result
		case ExtrapolateClamp:
			result = inMin
		}
	}
	if result > inMax {
		switch right {
		case ExtrapolateIdentity:
			return result
		case ExtrapolateClamp:
			result = inMax
		}
	}

	if outMin == outMax {
		return outMin
	}
	if inMin == inMax {
		if input <= inMin {
			return outMin
		}
		return outMax
	}

	switch {
	case math.IsInf(inMin, -1):
		result = -result
	case math.IsInf(inMax, 1):
		result = result - inMin
	default:
		result = (result - inMin) / (inMax - inMin)
	}

	result = easing(result)

	switch {
	case math.IsInf(outMin, -1):
		result = -result
	case math.IsInf(outMax, 1):
		result = result + outMin
	default:
		result = result*(outMax-outMin) + outMin
	}
	return result
}
