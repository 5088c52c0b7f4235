package vdom

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement   Kind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindComponent             // Stateful component
	KindRaw                   // Raw HTML (dangerous)
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is a virtual element tree node.
type VNode struct {
	Kind     Kind
	Tag      string    // Element tag name (e.g., "div")
	Props    Props     // Attributes
	Children []*VNode  // Child nodes
	Key      string    // Reconciliation key
	Text     string    // For KindText and KindRaw
	Comp     Component // For KindComponent
}

// Props holds element attributes.
type Props map[string]any

// Ctx is the capability surface the host runtime hands a component
// while it renders. Hook calls must happen in the same order on every
// render of an instance; slots are matched positionally.
type Ctx interface {
	// UseState returns the value held in the current hook slot,
	// storing initial on the first render. The setter replaces the
	// value and schedules a re-render of this instance.
	UseState(initial any) (value any, set func(any))

	// UseEffect schedules fn to run after commit. It re-runs on a
	// later commit only when deps differs from the previous deps by
	// length or by positional reference. The returned cleanup, if any,
	// runs before the next invocation and on unmount.
	UseEffect(fn func() (cleanup func()), deps []any)

	// Invalidate schedules a re-render of this instance.
	Invalidate()
}

// Component renders to a VNode. Returning a *signal.Suspension error
// tells the runtime to abandon the pass and retry once the pending
// value settles; any other error propagates to the runtime's caller.
type Component interface {
	Render(Ctx) (*VNode, error)
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func(Ctx) (*VNode, error)
}

// Render implements Component.
func (f *FuncComponent) Render(ctx Ctx) (*VNode, error) {
	return f.render(ctx)
}

// Func creates a component from a render function.
func Func(render func(Ctx) (*VNode, error)) Component {
	return &FuncComponent{render: render}
}
