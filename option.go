package inspect

import "fmt"

// Option is a value that is either present, carrying a T, or absent.
// The zero Option is absent.
type Option[T any] struct {
	ok bool
	v  T
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{ok: true, v: v}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns Some(*p), or None when p is nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromOk adapts the comma-ok idiom: Some(v) when ok, None otherwise.
//
//	inspect.FromOk(m[key])
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// IsSome reports whether the value is present.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether the value is absent.
func (o Option[T]) IsNone() bool { return !o.ok }

// Get returns the value and true, or the zero T and false.
func (o Option[T]) Get() (T, bool) { return o.v, o.ok }

// MustGet returns the value. It panics when the Option is absent.
func (o Option[T]) MustGet() T {
	if !o.ok {
		panic(fmt.Sprintf("inspect: MustGet on absent Option[%s]", typeName[T]()))
	}
	return o.v
}

// OrElse returns the value, or fallback when absent.
func (o Option[T]) OrElse(fallback T) T {
	if !o.ok {
		return fallback
	}
	return o.v
}

// Shape implements the Value interface.
func (Option[T]) Shape() Shape { return ShapeOptional }

// Cases returns "present" (index 0, payload T) and "absent" (index 1).
func (Option[T]) Cases() []CaseInfo {
	return []CaseInfo{
		PayloadCase[T](0, "present"),
		EmptyCase(1, "absent"),
	}
}

// Active implements the Value interface.
func (o Option[T]) Active() (int, any) {
	if o.ok {
		return 0, o.v
	}
	return 1, nil
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.v)
}

// MatchOption calls some with the value when present, none otherwise. Both
// handlers are required by the signature.
func MatchOption[T, R any](o Option[T], some func(T) R, none func() R) R {
	if o.ok {
		return some(o.v)
	}
	return none()
}
