package union

import (
	"bytes"
	"fmt"

	"github.com/bjaus/inspect"
)

type label string

func missing(u inspect.Union3[int, float64, string]) string {
	return inspect.Inspect(u, // want `incomplete coverage of union: no handler for union case "B" \(float64\)`
		inspect.Case(func(n int) string { return "int" }),
		inspect.Case(func(s string) string { return s }),
	)
}

func missingTwo(u inspect.Union3[int, float64, string]) string {
	return inspect.Inspect(u, inspect.Case(func(n int) string { return "int" })) // want `no handler for union case "B" \(float64\)` `no handler for union case "C" \(string\)`
}

// wildcard covers the rest
func wildcard(u inspect.Union3[int, float64, string]) string {
	return inspect.Inspect(u,
		inspect.Case(func(n int) string { return "int" }),
		inspect.Default(func(any) string { return "other" }),
	)
}

// one handler covers repeated payload types
func repeated(u inspect.Union2[int, int]) string {
	return inspect.Inspect(u, inspect.Case(func(n int) string { return "int" }))
}

// an interface parameter covers the concrete types implementing it
func implemented(u inspect.Union2[*bytes.Buffer, error]) string {
	return inspect.Inspect(u, // want `no handler for union case "B" \(error\)`
		inspect.Case(func(s fmt.Stringer) string { return s.String() }),
	)
}

// coercion adapters keep the handler they wrap
func coerced(u inspect.Union2[int, string]) string {
	return inspect.Inspect[string](u,
		inspect.AsText[string](inspect.Case(func(n int) label { return "int" })),
		inspect.Convert(inspect.Case(func(s string) int { return len(s) }), func(n int) string { return "string" }),
	)
}

func statement(u inspect.Union2[int, string]) {
	inspect.Do(u, inspect.CaseDo(func(int) {})) // want `no handler for union case "B" \(string\)`

	inspect.Do(u,
		inspect.Discard(inspect.Case(func(n int) int { return n })),
		inspect.CaseDo(func(string) {}),
	)
}

func check(u inspect.Union2[int, string]) error {
	return inspect.Check(u, inspect.Case(func(n int) bool { return true })) // want `no handler for union case "B" \(string\)`
}

// handlers that are not built inline are left to the run-time check
func dynamic(u inspect.Union2[int, string], hs []inspect.Handler[string], h inspect.Handler[string]) {
	_ = inspect.Inspect(u, hs...)
	_ = inspect.Inspect(u, h)
}

// fixed-arity matching is checked by the compiler
func fixed(u inspect.Union2[int, string]) string {
	return inspect.MatchUnion2(u,
		func(n int) string { return "int" },
		func(s string) string { return s },
	)
}
