package inspect

type handlerKind uint8

const (
	kindCase handlerKind = iota
	kindDefault
	kindEmpty
)

// Handler is one entry of an ordered handler set. All handlers passed to a
// single dispatch produce the same result type R.
//
// Build handlers with [Case], [Default] and [Empty], or with the statement
// variants [CaseDo], [DefaultDo] and [EmptyDo].
type Handler[R any] struct {
	kind   handlerKind
	param  string
	accept func(p probe) bool
	call   func(payload any) R
	empty  func() R
}

// Param returns the printable type the handler accepts. It is "any" for a
// wildcard and empty for a zero-argument handler.
func (h Handler[R]) Param() string { return h.param }

// accepts reports whether h can take a payload delivered as f.
func (h Handler[R]) accepts(f Form) bool {
	switch h.kind {
	case kindDefault:
		return true
	case kindCase:
		// The zero Handler accepts nothing.
		return h.accept != nil && h.accept(f.probe)
	default:
		return false
	}
}

// Case returns a handler for payloads of type T.
//
// T matches a case payload P when P is T, when T is an interface that the
// concrete type P implements, or when T is any. An interface-typed P is only
// matched by an identical T or by any.
//
// A Case over any takes the first form of a case, like [Default]: on a
// Result it receives Success or Failure, not the bare value.
//
//	inspect.Case(func(c Circle) float64 { return math.Pi * c.R * c.R })
func Case[T, R any](fn func(T) R) Handler[R] {
	return Handler[R]{
		kind:   kindCase,
		param:  typeName[T](),
		accept: acceptsAs[T],
		call: func(payload any) R {
			// A nil interface payload asserts to nothing; the zero T is the
			// value that was stored.
			t, _ := payload.(T)
			return fn(t)
		},
	}
}

// Default returns a wildcard handler. It accepts the payload of every case
// that carries one and is not taken by an earlier handler. The payload is
// delivered in the first form of its case, so the cases of a Result arrive
// as Success and Failure.
func Default[R any](fn func(payload any) R) Handler[R] {
	return Handler[R]{
		kind:  kindDefault,
		param: "any",
		call:  fn,
	}
}

// Empty returns a zero-argument handler for cases without payload, such as
// the absent state of an Option.
func Empty[R any](fn func() R) Handler[R] {
	return Handler[R]{
		kind:  kindEmpty,
		empty: fn,
	}
}

func acceptsAs[T any](p probe) bool {
	if _, ok := p.ident.(*T); ok {
		return true
	}
	if identical[T, any]() {
		return true
	}
	if p.zero == nil {
		return false
	}
	_, ok := p.zero.(T)
	return ok
}

// bound returns the function that delivers a raw payload of c, in form f, to
// h. Form is ignored for empty cases.
func (h Handler[R]) bound(c CaseInfo, form int) func(payload any) R {
	if c.IsEmpty() {
		empty := h.empty
		return func(any) R { return empty() }
	}
	f := c.Forms[form]
	call := h.call
	return func(payload any) R { return call(f.deliver(payload)) }
}
