package inspect

import "fmt"

// OnDispatchFunc is called when a case has been selected, just before its
// handler runs. For a Decoder, handler is the position of the matching route.
type OnDispatchFunc func(shape Shape, c CaseInfo, handler int)

// OnNoRouteFunc is called when no decoder route matches a message.
// Return nil to skip the message, return an error to fail.
type OnNoRouteFunc func(raw []byte) error

// OnUnmarshalErrorFunc is called when a routed payload fails to unmarshal.
// Return nil to skip, return an error to fail.
type OnUnmarshalErrorFunc func(variant string, err error) error

// OnValidationErrorFunc is called when a routed payload fails validation.
// Return nil to skip, return an error to fail.
type OnValidationErrorFunc func(variant string, err error) error

// hooks holds all configured hook functions.
type hooks struct {
	onDispatch        []OnDispatchFunc
	onNoRoute         []OnNoRouteFunc
	onUnmarshalError  []OnUnmarshalErrorFunc
	onValidationError []OnValidationErrorFunc
}

type config struct {
	inspector Inspector
	hooks     hooks
}

func newConfig(opts []Setting) config {
	c := config{inspector: JSONInspector()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Setting configures a Matcher or a Decoder.
type Setting func(*config)

// WithInspector sets the inspector a Decoder uses to evaluate discriminators.
// The default is JSONInspector.
func WithInspector(i Inspector) Setting {
	return func(c *config) {
		c.inspector = i
	}
}

// WithOnDispatch adds a hook called when a case is selected.
// Multiple hooks are called in order.
//
// Example:
//
//	inspect.WithOnDispatch(func(shape inspect.Shape, c inspect.CaseInfo, handler int) {
//	    slog.Debug("inspect", "shape", shape, "case", c.Name, "handler", handler)
//	})
func WithOnDispatch(fn OnDispatchFunc) Setting {
	return func(c *config) {
		c.hooks.onDispatch = append(c.hooks.onDispatch, fn)
	}
}

// WithOnNoRoute adds a hook called when no decoder route matches.
// If any hook returns an error, that error is returned. If all hooks return
// nil, the message is skipped.
//
// Example:
//
//	inspect.WithOnNoRoute(func(raw []byte) error {
//	    slog.Warn("unroutable message", "size", len(raw))
//	    return nil // skip
//	})
func WithOnNoRoute(fn OnNoRouteFunc) Setting {
	return func(c *config) {
		c.hooks.onNoRoute = append(c.hooks.onNoRoute, fn)
	}
}

// WithOnUnmarshalError adds a hook called when a routed payload fails to
// unmarshal. If any hook returns an error, that error is returned. If all
// hooks return nil, the message is skipped.
func WithOnUnmarshalError(fn OnUnmarshalErrorFunc) Setting {
	return func(c *config) {
		c.hooks.onUnmarshalError = append(c.hooks.onUnmarshalError, fn)
	}
}

// WithOnValidationError adds a hook called when a routed payload fails
// validation. If any hook returns an error, that error is returned. If all
// hooks return nil, the message is skipped.
//
// Example:
//
//	inspect.WithOnValidationError(func(variant string, err error) error {
//	    return fmt.Errorf("invalid %s: %w", variant, err)
//	})
func WithOnValidationError(fn OnValidationErrorFunc) Setting {
	return func(c *config) {
		c.hooks.onValidationError = append(c.hooks.onValidationError, fn)
	}
}

func (h *hooks) dispatched(shape Shape, c CaseInfo, handler int) {
	for _, fn := range h.onDispatch {
		fn(shape, c, handler)
	}
}

// noRoute returns the error for an unroutable message, or nil to skip it.
func (h *hooks) noRoute(raw []byte) error {
	for _, fn := range h.onNoRoute {
		if err := fn(raw); err != nil {
			return err
		}
	}
	if len(h.onNoRoute) > 0 {
		return nil
	}
	return ErrNoRoute
}

func (h *hooks) unmarshalFailed(variant string, err error) error {
	return firstError(h.onUnmarshalError, variant, err, "unmarshal %s: %w")
}

func (h *hooks) validationFailed(variant string, err error) error {
	return firstError(h.onValidationError, variant, err, "validate %s: %w")
}

// firstError runs fns in order and returns the first error they produce.
// Without hooks the original error is wrapped with format.
func firstError[F ~func(string, error) error](fns []F, variant string, err error, format string) error {
	for _, fn := range fns {
		if herr := fn(variant, err); herr != nil {
			return herr
		}
	}
	if len(fns) > 0 {
		return nil
	}
	return fmt.Errorf(format, variant, err)
}
