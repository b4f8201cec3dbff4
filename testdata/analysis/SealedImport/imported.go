package imported

import (
	"github.com/bjaus/inspect"

	subset "github.com/bjaus/inspect/testdata/analysis/SealedSubset"
)

func name(s subset.Shape) string {
	return inspect.Inspect(subset.Quads.Of(s),
		inspect.Case(func(subset.Circle) string { return "circle" }),
		inspect.Case(func(subset.Square) string { return "square" }),
	)
}

func missing() error {
	return inspect.Check(subset.Quads, // want `no handler for union case "subset.Square" \(subset.Square\)`
		inspect.Case(func(subset.Circle) bool { return true }),
	)
}
