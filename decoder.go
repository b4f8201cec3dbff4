package inspect

import (
	"encoding/json"
	"errors"
	"fmt"
)

// validatable is the interface for payload validation.
// Compatible with github.com/go-ozzo/ozzo-validation/v4.
type validatable interface {
	Validate() error
}

// Decoder builds members of a sealed family from raw messages, so that
// messages of several shapes arriving on one stream can be inspected with
// one exhaustive handler set.
//
// Usage:
//  1. Create a decoder with NewDecoder
//  2. Bind each variant to a discriminator with Route
//  3. Verify every variant is routed with Check
//  4. Decode messages and Inspect the result
//
// A Decoder is safe for concurrent use after configuration. Do not call
// Route after calling Decode.
type Decoder[S any] struct {
	fam       *Family[S]
	inspector Inspector
	routes    []route[S]
	hooks     hooks
}

type route[S any] struct {
	variant int
	name    string
	disc    Discriminator
	path    string
	decode  func(payload []byte) (S, error)
}

// NewDecoder creates a Decoder for the variants of fam.
//
// Example:
//
//	dec := inspect.NewDecoder(Shapes,
//	    inspect.WithOnUnmarshalError(func(variant string, err error) error {
//	        slog.Error("bad payload", "variant", variant, "error", err)
//	        return nil // skip
//	    }),
//	)
func NewDecoder[S any](fam *Family[S], opts ...Setting) *Decoder[S] {
	c := newConfig(opts)
	return &Decoder[S]{
		fam:       fam,
		inspector: c.inspector,
		hooks:     c.hooks,
	}
}

// Route binds variant V to messages matched by disc. The payload found at
// path (the whole message when path is empty) is unmarshaled into V and
// validated when V or *V has a Validate() error method.
//
// Routes are tried in registration order and the first match decides.
//
// This is a package-level function (not a method) due to Go generics
// limitations: methods cannot have type parameters independent of the
// receiver. It panics when V is not a variant of the decoder's family.
//
// Example:
//
//	inspect.Route[Circle](dec, inspect.FieldEquals("kind", "circle"), "shape")
//	inspect.Route[Square](dec, inspect.FieldEquals("kind", "square"), "shape")
func Route[V, S any](d *Decoder[S], disc Discriminator, path string) {
	var zero V
	idx := -1
	if s, ok := any(zero).(S); ok {
		for i, v := range d.fam.variants {
			if v.is(s) {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		panic(fmt.Errorf("inspect: route for %s: %w", typeName[V](), ErrNotMember))
	}

	d.routes = append(d.routes, route[S]{
		variant: idx,
		name:    typeName[V](),
		disc:    disc,
		path:    path,
		decode: func(payload []byte) (S, error) {
			var data V
			var out S
			if err := json.Unmarshal(payload, &data); err != nil {
				return out, &unmarshalError{err: err}
			}

			if v, ok := any(data).(validatable); ok {
				if err := v.Validate(); err != nil {
					return out, &validationError{err: err}
				}
			} else if v, ok := any(&data).(validatable); ok {
				if err := v.Validate(); err != nil {
					return out, &validationError{err: err}
				}
			}

			out, _ = any(data).(S)
			return out, nil
		},
	})
}

// Decode picks the first route whose discriminator matches raw, decodes its
// payload and returns the family member.
//
// The Option is absent when a hook chose to skip the message. Without hooks
// every failure is returned as an error: [ErrNoRoute] when no route matches,
// and wrapped unmarshal or validation errors otherwise.
func (d *Decoder[S]) Decode(raw []byte) (Option[Member[S]], error) {
	view, err := d.inspector.Inspect(raw)
	if err != nil {
		return None[Member[S]](), fmt.Errorf("inspect message: %w", err)
	}

	for i, r := range d.routes {
		if !r.disc.Match(view) {
			continue
		}

		d.hooks.dispatched(ShapeUnion, d.fam.cases[r.variant], i)

		payload, ok := view.GetBytes(r.path)
		if !ok {
			return d.skipOr(d.hooks.unmarshalFailed(r.name, fmt.Errorf("payload path %q not found", r.path)))
		}

		s, err := r.decode(payload)

		var uerr *unmarshalError
		if errors.As(err, &uerr) {
			return d.skipOr(d.hooks.unmarshalFailed(r.name, uerr.err))
		}
		var verr *validationError
		if errors.As(err, &verr) {
			return d.skipOr(d.hooks.validationFailed(r.name, verr.err))
		}

		return Some(Member[S]{fam: d.fam, idx: r.variant, value: s}), nil
	}

	return d.skipOr(d.hooks.noRoute(raw))
}

// Check reports every variant of the family that no route produces, using
// the same diagnostics as handler coverage.
func (d *Decoder[S]) Check() error {
	routed := make([]bool, len(d.fam.cases))
	for _, r := range d.routes {
		routed[r.variant] = true
	}

	cerr := &CoverageError{Shape: ShapeUnion}
	for i, c := range d.fam.cases {
		if !routed[i] {
			cerr.Errs = append(cerr.Errs, &MissingHandlerError{Shape: ShapeUnion, Case: c})
		}
	}
	if len(cerr.Errs) > 0 {
		return cerr
	}
	return nil
}

func (d *Decoder[S]) skipOr(err error) (Option[Member[S]], error) {
	return None[Member[S]](), err
}

// unmarshalError wraps unmarshal errors so we can identify them.
type unmarshalError struct {
	err error
}

func (e *unmarshalError) Error() string { return e.err.Error() }
func (e *unmarshalError) Unwrap() error { return e.err }

// validationError wraps validation errors so we can identify them.
type validationError struct {
	err error
}

func (e *validationError) Error() string { return e.err.Error() }
func (e *validationError) Unwrap() error { return e.err }
