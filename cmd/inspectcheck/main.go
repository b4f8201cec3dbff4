// Command inspectcheck reports inspect dispatch calls with incomplete
// handler sets.
//
//	go run github.com/bjaus/inspect/cmd/inspectcheck ./...
//
// Pass -strict to also report calls whose handlers are not built inline.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/bjaus/inspect/pkg/inspectanalysis"
)

func main() {
	singlechecker.Main(inspectanalysis.Analyzer)
}
