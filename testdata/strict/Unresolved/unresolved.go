package unresolved

import "github.com/bjaus/inspect"

func dynamic(u inspect.Union2[int, string], hs []inspect.Handler[string]) string {
	return inspect.Inspect(u, hs...) // want `cannot check coverage of inspect.Inspect: handlers are not built inline`
}

func variable(u inspect.Union2[int, string], h inspect.Handler[string]) error {
	return inspect.Check(u, h) // want `cannot check coverage of inspect.Check: handlers are not built inline`
}

func inline(u inspect.Union2[int, string]) string {
	return inspect.Inspect(u, inspect.Default(func(any) string { return "any" }))
}
