// Package inspect provides exhaustive pattern matching over Go sum types.
//
// The inspect package dispatches a tagged-union-like value (an N-case union,
// an optional value, or a success/failure result) to one of an ordered set
// of typed handlers. It checks that the handlers cover every case before
// anything runs, keeps a single result type across handlers, and names the
// uncovered case when coverage is incomplete.
//
// # Quick Start
//
// Inspect a union with one handler per alternative:
//
//	u := inspect.Of3A[int, float64, string](42)
//
//	s := inspect.Inspect(u,
//	    inspect.Case(func(n int) string { return "int " + strconv.Itoa(n) }),
//	    inspect.Case(func(f float64) string { return "float" }),
//	    inspect.Case(func(s string) string { return "string " + s }),
//	)
//
// Leaving out the float64 handler is reported twice: by the analyzer at the
// call site, and by the validation pass before dispatch:
//
//	inspect: incomplete coverage of union: no handler for union case "B" (float64)
//
// # Shapes
//
// Three shapes are understood, each normalized into the same case contract:
//
//   - Union: Union2..Union5 (positional alternatives, repeats allowed) and
//     sealed-interface families declared with Sealed and Alt
//   - Optional: Option, with cases "present" and "absent"
//   - Result: Result, with cases "success" and "failure"
//
// Classify reports the shape of any value. Types outside this package become
// inspectable by implementing Value.
//
// # Handlers
//
// Handlers are built with:
//
//   - Case: accepts one payload type (or an interface it implements)
//   - Default: wildcard, accepts any payload not taken by an earlier handler
//   - Empty: zero arguments, for cases without payload such as "absent"
//
// CaseDo, DefaultDo and EmptyDo build the same handlers for Do, the
// statement form.
//
// # Precedence
//
// When several handlers accept a case, the first in declaration order wins.
// A wildcard placed before an explicit handler shadows it:
//
//	inspect.Inspect(u,
//	    inspect.Case(func(n int) string { return "int" }),   // int goes here
//	    inspect.Default(func(any) string { return "other" }), // the rest
//	)
//
// # Result Types
//
// The result type R is inferred from the handlers. Pinning it explicitly
// coerces handler results through typed adapters, which the compiler checks:
//
//	inspect.Inspect[string](u,
//	    inspect.AsText[string](inspect.Case(func(n int) label { return "an" })),
//	    inspect.Default(func(any) string { return "a" }),
//	)
//
// A handler whose result cannot be converted does not compile. Discard lets
// a handler with any result join a Do.
//
// # Optional Values
//
// An Option needs a handler for the value and a zero-argument handler for the
// absent state. Both are mandatory:
//
//	inspect.Inspect(inspect.Some(42),
//	    inspect.Case(func(n int) string { return "Value: " + strconv.Itoa(n) }),
//	    inspect.Empty(func() string { return "No Value" }),
//	)
//
// # Success and Failure
//
// Result handlers take the bare payload types or the case-tagged wrappers
// Success and Failure. When both payload types are the same, only the
// wrappers tell the cases apart, and bare handlers are rejected with
// AmbiguousPayloadError.
//
// # Matchers
//
// Inspect validates on every call. For hot paths, validate once with Compile
// and reuse the Matcher; MustCompile on a package-level variable turns an
// incomplete handler set into a startup failure.
//
// # Fixed-Arity Matching
//
// MatchOption, MatchResult and MatchUnion2..MatchUnion5 take one function per
// case as positional arguments. The compiler alone enforces their coverage.
//
// # Decoding
//
// A Decoder turns raw messages into family members using Discriminators over
// an Inspector View (gjson by default), so one exhaustive handler set can
// serve a stream of mixed messages:
//
//	dec := inspect.NewDecoder(Shapes)
//	inspect.Route[Circle](dec, inspect.FieldEquals("kind", "circle"), "shape")
//	inspect.Route[Square](dec, inspect.FieldEquals("kind", "square"), "shape")
//
// # Static Checking
//
// The analyzer in pkg/inspectanalysis runs the same coverage rules over the
// source, reporting diagnostics at the call site. Run it with
// cmd/inspectcheck or as a golangci-lint module plugin.
//
// # Thread Safety
//
// Dispatch is synchronous and holds no state. Matchers and Families are
// immutable. A Decoder is safe for concurrent use after configuration.
package inspect
