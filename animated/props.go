package animated

// View receives the composed style of a Props leaf.
type View interface {
	ApplyStyle(values StyleValues)
}

// Props binds a Style to a View. It is the output end of the graph: every
// propagation that reaches it recomputes the whole style from its inputs
// and applies it to the view.
type Props struct {
	nodeBase
	style    *Style
	view     View
	detached bool
}

// NewProps subscribes to style and applies its current values to view.
func NewProps(style *Style, view View) *Props {
	p := &Props{style: style, view: view}
	p.attach()
	p.update()
	return p
}

// Detach unsubscribes from the style. Values that are no longer read by
// anything stop their animations. The view is not written again.
func (p *Props) Detach() {
	if p.detached {
		return
	}
	p.detach()
}

func (p *Props) update() {
	if p.detached {
		return
	}
	p.view.ApplyStyle(p.style.Values())
}

func (p *Props) attach() {
	addChild(p.style, p)
}

func (p *Props) detach() {
	p.detached = true
	removeChild(p.style, p)
}
