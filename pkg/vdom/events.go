package vdom

// Handler is a UI event callback.
type Handler func()

// Handlers holds the callbacks of a clickable region. A nil handler means the
// event is not wired and firing it does nothing.
type Handlers struct {
	OnClick      Handler
	OnMouseEnter Handler
	OnMouseLeave Handler
}

// Event identifies a pointer event delivered to a clickable region.
type Event uint8

const (
	EventClick Event = iota
	EventMouseEnter
	EventMouseLeave
)

// String returns the DOM-style event name.
func (e Event) String() string {
	switch e {
	case EventClick:
		return "click"
	case EventMouseEnter:
		return "mouseenter"
	case EventMouseLeave:
		return "mouseleave"
	default:
		return "unknown"
	}
}

func (h Handlers) get(e Event) Handler {
	switch e {
	case EventClick:
		return h.OnClick
	case EventMouseEnter:
		return h.OnMouseEnter
	case EventMouseLeave:
		return h.OnMouseLeave
	default:
		return nil
	}
}

// Wired reports whether a handler is set for e.
func (h Handlers) Wired(e Event) bool {
	return h.get(e) != nil
}

// Fire delivers e to v. The handler is invoked at most once and only when v
// is a clickable region with a handler wired for e. Fire reports whether a
// handler ran.
func (v *VNode) Fire(e Event) bool {
	if v == nil || v.Kind != KindClickable {
		return false
	}
	h := v.Handlers.get(e)
	if h == nil {
		return false
	}
	h()
	return true
}
