package inspect

import "fmt"

// Matcher is a validated handler set frozen against the case set of V.
// Coverage is checked once by Compile; each Inspect is then a case-tag read
// and one handler call.
//
// Usage:
//  1. Compile the handlers against a sample value at startup
//  2. Call Inspect with any value of the same type
//
// A Matcher is immutable and safe for concurrent use.
type Matcher[V Value, R any] struct {
	table *table[R]
	id    any
	hooks hooks
}

// Compile validates hs against the case set of sample and returns a Matcher
// for values of the same type. Only the case set of sample is used, never
// its active case.
//
//	var describe = inspect.MustCompile(inspect.None[int](),
//	    inspect.Case(func(n int) string { return "Value: " + strconv.Itoa(n) }),
//	    inspect.Empty(func() string { return "No Value" }),
//	)
//
//	describe.Inspect(inspect.Some(42)) // "Value: 42"
func Compile[V Value, R any](sample V, hs ...Handler[R]) (*Matcher[V, R], error) {
	t, err := build(sample, hs)
	if err != nil {
		return nil, err
	}
	return &Matcher[V, R]{table: t, id: setID(sample)}, nil
}

// MustCompile is like Compile but panics if the handler set is incomplete.
// It simplifies safe initialization of package-level matchers.
func MustCompile[V Value, R any](sample V, hs ...Handler[R]) *Matcher[V, R] {
	m, err := Compile(sample, hs...)
	if err != nil {
		panic(err)
	}
	return m
}

// With returns a copy of m configured with opts. Only dispatch hooks apply
// to matchers.
func (m *Matcher[V, R]) With(opts ...Setting) *Matcher[V, R] {
	c := newConfig(opts)
	out := *m
	out.hooks.onDispatch = append(append([]OnDispatchFunc(nil), m.hooks.onDispatch...), c.hooks.onDispatch...)
	return &out
}

// Inspect dispatches v to the handler compiled for its active case.
// It panics with [ErrCaseSetMismatch] when v belongs to a different family
// than the sample m was compiled from.
func (m *Matcher[V, R]) Inspect(v V) R {
	if id := setID(v); id != m.id {
		panic(fmt.Errorf("inspect: matcher compiled for another family: %w", ErrCaseSetMismatch))
	}
	idx, payload := v.Active()
	if len(m.hooks.onDispatch) > 0 && idx >= 0 && idx < len(m.table.cases) {
		m.hooks.dispatched(m.table.shape, m.table.cases[idx], m.table.entries[idx].handler)
	}
	return m.table.dispatch(idx, payload)
}

// Handler returns the position of the handler selected for case index idx,
// and false when idx is outside the case set.
func (m *Matcher[V, R]) Handler(idx int) (int, bool) {
	if idx < 0 || idx >= len(m.table.entries) {
		return 0, false
	}
	return m.table.entries[idx].handler, true
}

// Cases returns the case set the matcher was compiled for.
func (m *Matcher[V, R]) Cases() []CaseInfo {
	return append([]CaseInfo(nil), m.table.cases...)
}

// setID returns the identity of the case set of values whose type alone does
// not determine it, such as family members.
func setID(v any) any {
	if s, ok := v.(interface{ caseSetID() any }); ok {
		return s.caseSetID()
	}
	return nil
}
