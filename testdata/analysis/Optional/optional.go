package optional

import (
	"strconv"

	"github.com/bjaus/inspect"
)

func both(o inspect.Option[int]) string {
	return inspect.Inspect(o,
		inspect.Case(func(n int) string { return "Value: " + strconv.Itoa(n) }),
		inspect.Empty(func() string { return "No Value" }),
	)
}

func noEmpty(o inspect.Option[int]) string {
	return inspect.Inspect(o, // want `incomplete coverage of optional: optional of int: no handler for the absent state`
		inspect.Case(func(n int) string { return "Value: " + strconv.Itoa(n) }),
	)
}

// a wildcard does not cover the absent state
func wildcard(o inspect.Option[int]) string {
	return inspect.Inspect(o, // want `optional of int: no handler for the absent state`
		inspect.Default(func(any) string { return "something" }),
	)
}

func noValue(o inspect.Option[int]) string {
	return inspect.Inspect(o, // want `optional of int: no handler for the present value \(int\)$`
		inspect.Empty(func() string { return "No Value" }),
	)
}

func wrongValue(o inspect.Option[int]) string {
	return inspect.Inspect(o, // want `optional of int: no handler for the present value \(int\) and no handler for the absent state`
		inspect.Case(func(s string) string { return s }),
	)
}

var describe = inspect.MustCompile(inspect.None[string](), // want `optional of string: no handler for the absent state`
	inspect.Case(func(s string) string { return s }),
)

func statement(o inspect.Option[string]) {
	inspect.Do(o, // want `optional of string: no handler for the absent state`
		inspect.CaseDo(func(string) {}),
	)

	inspect.Do(o,
		inspect.CaseDo(func(string) {}),
		inspect.EmptyDo(func() {}),
	)
}
