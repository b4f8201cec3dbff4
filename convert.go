package inspect

import "golang.org/x/exp/constraints"

// Unit is the result type of handlers run for their effect only.
type Unit struct{}

// CaseDo is Case for a handler without result.
func CaseDo[T any](fn func(T)) Handler[Unit] {
	return Case(func(t T) Unit {
		fn(t)
		return Unit{}
	})
}

// DefaultDo is Default for a handler without result.
func DefaultDo(fn func(payload any)) Handler[Unit] {
	return Default(func(payload any) Unit {
		fn(payload)
		return Unit{}
	})
}

// EmptyDo is Empty for a handler without result.
func EmptyDo(fn func()) Handler[Unit] {
	return Empty(func() Unit {
		fn()
		return Unit{}
	})
}

// Discard drops the result of h so it can join a handler set run with Do.
// A statement dispatch accepts handlers of any result type this way.
func Discard[R any](h Handler[R]) Handler[Unit] {
	return Convert(h, func(R) Unit { return Unit{} })
}

// Textual is the set of types convertible to a string type.
type Textual interface {
	~string | ~[]byte | ~[]rune
}

// AsText converts the result of h to the string type R.
//
//	type label string
//
//	inspect.Inspect[string](u,
//	    inspect.AsText[string](inspect.Case(func(A) label { return "an" })),
//	    inspect.Case(func(any) string { return "a" }),
//	)
func AsText[R ~string, S Textual](h Handler[S]) Handler[R] {
	return Convert(h, func(s S) R { return R(s) })
}

// Number is the set of types that convert to each other numerically.
type Number interface {
	constraints.Integer | constraints.Float
}

// AsNumber converts the result of h to the numeric type R using Go's
// conversion rules (truncation toward zero for float to integer).
func AsNumber[R, S Number](h Handler[S]) Handler[R] {
	return Convert(h, func(s S) R { return R(s) })
}

// Convert maps the result of h through fn. Acceptance and precedence of h
// are unchanged.
func Convert[S, R any](h Handler[S], fn func(S) R) Handler[R] {
	out := Handler[R]{
		kind:   h.kind,
		param:  h.param,
		accept: h.accept,
	}
	if h.call != nil {
		call := h.call
		out.call = func(payload any) R { return fn(call(payload)) }
	}
	if h.empty != nil {
		empty := h.empty
		out.empty = func() R { return fn(empty()) }
	}
	return out
}
