package inspect

import "fmt"

// Inspect dispatches v to the first handler that accepts its active case and
// returns the handler's result.
//
// Before any handler runs, the whole case set of v is checked: every case
// must be accepted by at least one handler. An incomplete handler set is a
// programming error, and Inspect panics with the [*CoverageError] that
// [Check] would return. Run the inspect analyzer (cmd/inspectcheck) to
// catch these at build time.
//
// When several handlers accept a case, the earliest one wins:
//
//	inspect.Inspect(u,
//	    inspect.Case(func(n int) string { return "int" }),     // wins for int
//	    inspect.Default(func(any) string { return "other" }),  // everything else
//	)
//
// R is normally inferred from the handlers. Pin it to coerce handler results
// through the adapters in convert.go:
//
//	inspect.Inspect[string](u, inspect.AsText[string](inspect.Case(label)), ...)
func Inspect[R any](v Value, hs ...Handler[R]) R {
	t, err := build(v, hs)
	if err != nil {
		panic(err)
	}
	idx, payload := v.Active()
	return t.dispatch(idx, payload)
}

// Do is the statement form of Inspect.
//
//	inspect.Do(opt,
//	    inspect.CaseDo(func(n int) { fmt.Println("Value:", n) }),
//	    inspect.EmptyDo(func() { fmt.Println("No Value") }),
//	)
func Do(v Value, hs ...Handler[Unit]) {
	Inspect(v, hs...)
}

// Check runs the coverage validation of Inspect without dispatching. It
// returns nil when every case of set is handled, or a [*CoverageError]
// listing every uncovered case.
func Check[R any](set CaseSet, hs ...Handler[R]) error {
	_, err := build(set, hs)
	return err
}

// table maps every case of a set to the handler selected for it.
type table[R any] struct {
	shape   Shape
	cases   []CaseInfo
	entries []entry[R]
}

func (t *table[R]) dispatch(idx int, payload any) R {
	if idx < 0 || idx >= len(t.entries) {
		panic(fmt.Errorf("inspect: active case %d outside %s of %d cases: %w", idx, t.shape, len(t.entries), ErrCaseSetMismatch))
	}
	return t.entries[idx].call(payload)
}

type entry[R any] struct {
	handler int
	call    func(payload any) R
}

// build validates hs against set and resolves one handler per case.
func build[R any](set CaseSet, hs []Handler[R]) (*table[R], error) {
	if len(hs) == 0 {
		return nil, fmt.Errorf("inspect: %w", ErrNoHandlers)
	}

	shape := set.Shape()
	cases := set.Cases()
	t := &table[R]{
		shape:   shape,
		cases:   cases,
		entries: make([]entry[R], len(cases)),
	}

	var missing []CaseInfo
	for i, c := range cases {
		hi, form, ok := selectHandler(c, hs)
		if !ok {
			missing = append(missing, c)
			continue
		}
		t.entries[i] = entry[R]{handler: hi, call: hs[hi].bound(c, form)}
	}

	if len(missing) > 0 {
		return nil, diagnose(shape, cases, missing, hs)
	}
	return t, nil
}

// selectHandler returns the first handler accepting c and the form it takes.
// Handler order decides before form order.
func selectHandler[R any](c CaseInfo, hs []Handler[R]) (handler, form int, ok bool) {
	for hi, h := range hs {
		if c.IsEmpty() {
			if h.kind == kindEmpty {
				return hi, -1, true
			}
			continue
		}
		for fi, f := range c.Forms {
			if h.accepts(f) {
				return hi, fi, true
			}
		}
	}
	return 0, 0, false
}

func diagnose[R any](shape Shape, cases, missing []CaseInfo, hs []Handler[R]) error {
	cerr := &CoverageError{Shape: shape}

	if shape == ShapeOptional {
		oerr := &IncompleteOptionalError{}
		for _, c := range cases {
			if !c.IsEmpty() {
				oerr.ValueType = c.Type
			}
		}
		for _, c := range missing {
			if c.IsEmpty() {
				oerr.MissingEmpty = true
			} else {
				oerr.MissingValue = true
			}
		}
		cerr.Errs = append(cerr.Errs, oerr)
		return cerr
	}

	for _, c := range missing {
		if aerr := ambiguity(c, hs); aerr != nil {
			cerr.Errs = append(cerr.Errs, aerr)
			continue
		}
		cerr.Errs = append(cerr.Errs, &MissingHandlerError{Shape: shape, Case: c})
	}
	return cerr
}

// ambiguity reports the first handler that would have taken a shadowed form
// of c, which means it cannot tell c apart from a sibling case.
func ambiguity[R any](c CaseInfo, hs []Handler[R]) error {
	for hi, h := range hs {
		if h.kind != kindCase {
			continue
		}
		for _, f := range c.shadowed {
			if h.accept(f.probe) {
				return &AmbiguousPayloadError{Case: c, Handler: hi, Param: h.param}
			}
		}
	}
	return nil
}
