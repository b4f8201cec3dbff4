// golangcilintinspect package provides a plugin for golangci-lint to
// integrate the inspect analyzer. To build a custom golangci-lint binary with
// this plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// The plugin accepts one setting:
//
//	linters:
//	  settings:
//	    custom:
//	      inspect:
//	        type: module
//	        settings:
//	          strict: true
package golangcilintinspect

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/bjaus/inspect/pkg/inspectanalysis"
)

func init() {
	register.Plugin("inspect", New)
}

func New(settings any) (register.LinterPlugin, error) {
	cfg, err := register.DecodeSettings[inspectanalysis.Config](settings)
	if err != nil {
		return nil, err
	}
	return InspectLinter{cfg: cfg}, nil
}

type InspectLinter struct {
	cfg inspectanalysis.Config
}

func (l InspectLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{inspectanalysis.New(l.cfg)}, nil
}

func (InspectLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
