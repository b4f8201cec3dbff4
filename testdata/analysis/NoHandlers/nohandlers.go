package nohandlers

import "github.com/bjaus/inspect"

func empty(u inspect.Union2[int, string]) string {
	return inspect.Inspect[string](u) // want `inspect.Inspect called without handlers`
}

func check(o inspect.Option[int]) error {
	return inspect.Check[string](o) // want `inspect.Check called without handlers`
}
