package result

import (
	"strconv"

	"github.com/bjaus/inspect"
)

func bare(r inspect.Result[int, error]) string {
	return inspect.Inspect(r,
		inspect.Case(func(n int) string { return strconv.Itoa(n) }),
		inspect.Case(func(err error) string { return err.Error() }),
	)
}

func wrapped(r inspect.Result[int, error]) string {
	return inspect.Inspect(r,
		inspect.Case(func(s inspect.Success[int]) string { return strconv.Itoa(s.Value) }),
		inspect.Case(func(f inspect.Failure[error]) string { return f.Value.Error() }),
	)
}

func missingFailure(r inspect.Result[int, string]) string {
	return inspect.Inspect(r, // want `incomplete coverage of result: no handler for result case "failure" \(string\)`
		inspect.Case(func(n int) string { return strconv.Itoa(n) }),
	)
}

// bare handlers cannot tell the cases of a same-type result apart
func ambiguous(r inspect.Result[int, int]) string {
	return inspect.Inspect(r, // want `case "success" \(int\) is not covered: handler 0 takes int, which does not identify the case; write it against inspect\.Success\[int\]` `case "failure" \(int\) is not covered: handler 0 takes int, which does not identify the case; write it against inspect\.Failure\[int\]`
		inspect.Case(func(n int) string { return strconv.Itoa(n) }),
	)
}

func sameType(r inspect.Result[int, int]) string {
	return inspect.Inspect(r,
		inspect.Case(func(s inspect.Success[int]) string { return "ok" }),
		inspect.Case(func(f inspect.Failure[int]) string { return "failed" }),
	)
}

func fromError(s string) int {
	return inspect.Inspect(inspect.FromError(strconv.Atoi(s)), // want `no handler for result case "failure" \(error\)`
		inspect.Case(func(n int) int { return n }),
	)
}
