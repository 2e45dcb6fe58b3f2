package animated

// Addition is the sum of two scalars, typically a value plus an offset
// value driven by a gesture.
type Addition struct {
	nodeBase
	a, b Scalar
}

func Add(a, b Scalar) *Addition {
	return &Addition{a: a, b: b}
}

func (n *Addition) Value() float64 {
	return n.a.Value() + n.b.Value()
}

func (n *Addition) Interpolate(cfg InterpolationConfig) (*Interpolation, error) {
	return Interpolate(n, cfg)
}

func (n *Addition) attach() {
	addChild(n.a, n)
	addChild(n.b, n)
}

func (n *Addition) detach() {
	removeChild(n.a, n)
	removeChild(n.b, n)
}

type Multiplication struct {
	nodeBase
	a, b Scalar
}

func Multiply(a, b Scalar) *Multiplication {
	return &Multiplication{a: a, b: b}
}

func (n *Multiplication) Value() float64 {
	return n.a.Value() * n.b.Value()
}

func (n *Multiplication) Interpolate(cfg InterpolationConfig) (*Interpolation, error) {
	return Interpolate(n, cfg)
}

func (n *Multiplication) attach() {
	addChild(n.a, n)
	addChild(n.b, n)
}

func (n *Multiplication) detach() {
	removeChild(n.a, n)
	removeChild(n.b, n)
}
