// Package inspectanalysis reports inspect dispatch calls whose handler set
// does not cover every case of the inspected value.
//
// The checks run on the source before the program does, and report at the
// call site the same diagnostics that the inspect validation pass would
// produce at run time: missing handlers, incomplete optional coverage,
// ambiguous same-type result handlers and empty handler sets.
package inspectanalysis

import (
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	astinspect "golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// PkgPath is the import path of the inspect package.
const PkgPath = "github.com/bjaus/inspect"

const doc = `check exhaustiveness of inspect handler sets

For every call to inspect.Inspect, Do, Check, Compile and MustCompile whose
handlers are built inline with Case, Default, Empty (or their Do and
coercion variants), report each case of the inspected value that no handler
accepts.`

// Config configures the analyzer.
type Config struct {
	// Strict reports dispatch calls that cannot be checked statically, for
	// example a handler slice passed with "hs..." or a family member whose
	// family declaration is not visible.
	Strict bool `json:"strict"`
}

// Analyzer checks inspect handler sets with the default configuration.
var Analyzer = New(Config{})

// New returns an analyzer using cfg. The -strict flag overrides cfg.Strict.
func New(cfg Config) *analysis.Analyzer {
	c := &checker{cfg: cfg}
	a := &analysis.Analyzer{
		Name:      "inspectcheck",
		Doc:       doc,
		Requires:  []*analysis.Analyzer{astinspect.Analyzer},
		Run:       c.run,
		FactTypes: []analysis.Fact{new(familyFact)},
	}
	a.Flags.BoolVar(&c.cfg.Strict, "strict", cfg.Strict, "report dispatch calls that cannot be checked statically")
	return a
}

var dispatchFuncs = map[string]bool{
	"Inspect":     true,
	"Do":          true,
	"Check":       true,
	"Compile":     true,
	"MustCompile": true,
}

type checker struct {
	cfg Config
}

func (c *checker) run(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Path() == PkgPath {
		return nil, nil
	}

	insp := pass.ResultOf[astinspect.Analyzer].(*inspector.Inspector)
	fams := collectFamilies(pass, insp)
	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		fn := inspectFunc(pass, call)
		if fn == nil || !dispatchFuncs[fn.Name()] {
			return
		}
		c.checkCall(pass, fams, fn, call)
	})
	return nil, nil
}

func (c *checker) checkCall(pass *analysis.Pass, fams families, fn *types.Func, call *ast.CallExpr) {
	if len(call.Args) == 0 {
		return
	}

	t := pass.TypesInfo.TypeOf(call.Args[0])
	var variants []types.Type
	if isFamily(t) {
		vs, ok := fams.variantsOf(pass, call.Args[0])
		if !ok {
			if c.cfg.Strict {
				pass.Reportf(call.Pos(), "cannot check coverage of inspect.%s: the family is not a variable declared with inspect.Sealed", fn.Name())
			}
			return
		}
		variants = vs
	}

	set, ok := caseSetOf(t, variants)
	if !ok {
		return
	}

	if call.Ellipsis.IsValid() {
		c.unresolved(pass, fn, call)
		return
	}

	if len(call.Args) == 1 {
		pass.Reportf(call.Pos(), "inspect.%s called without handlers", fn.Name())
		return
	}

	hs := make([]handler, 0, len(call.Args)-1)
	for _, arg := range call.Args[1:] {
		h, ok := resolveHandler(pass, arg)
		if !ok {
			c.unresolved(pass, fn, call)
			return
		}
		hs = append(hs, h)
	}

	for _, msg := range cover(set, hs) {
		pass.Reportf(call.Pos(), "incomplete coverage of %s: %s", set.shape, msg)
	}
}

func (c *checker) unresolved(pass *analysis.Pass, fn *types.Func, call *ast.CallExpr) {
	if c.cfg.Strict {
		pass.Reportf(call.Pos(), "cannot check coverage of inspect.%s: handlers are not built inline", fn.Name())
	}
}

// inspectFunc returns the package-level inspect function called by call.
func inspectFunc(pass *analysis.Pass, call *ast.CallExpr) *types.Func {
	fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != PkgPath {
		return nil
	}
	if sig, ok := fn.Type().(*types.Signature); ok && sig.Recv() != nil {
		return nil
	}
	return fn
}

// resolveHandler recovers the kind and parameter type of an inline handler
// expression.
func resolveHandler(pass *analysis.Pass, expr ast.Expr) (handler, bool) {
	call, ok := ast.Unparen(expr).(*ast.CallExpr)
	if !ok {
		return handler{}, false
	}
	fn := inspectFunc(pass, call)
	if fn == nil {
		return handler{}, false
	}

	switch fn.Name() {
	case "Case", "CaseDo":
		param := caseParam(pass, call)
		if param == nil {
			return handler{}, false
		}
		if _, generic := param.(*types.TypeParam); generic {
			return handler{}, false
		}
		return handler{kind: kindCase, param: param}, true
	case "Default", "DefaultDo":
		return handler{kind: kindDefault}, true
	case "Empty", "EmptyDo":
		return handler{kind: kindEmpty}, true
	case "Discard", "AsText", "AsNumber", "Convert":
		if len(call.Args) == 0 {
			return handler{}, false
		}
		return resolveHandler(pass, call.Args[0])
	}
	return handler{}, false
}

// caseParam returns T of a Case[T, R] or CaseDo[T] call.
func caseParam(pass *analysis.Pass, call *ast.CallExpr) types.Type {
	if id := funcIdent(call.Fun); id != nil {
		if inst, ok := pass.TypesInfo.Instances[id]; ok && inst.TypeArgs.Len() > 0 {
			return inst.TypeArgs.At(0)
		}
	}
	if len(call.Args) != 1 {
		return nil
	}
	t := pass.TypesInfo.TypeOf(call.Args[0])
	if t == nil {
		return nil
	}
	if sig, ok := t.Underlying().(*types.Signature); ok && sig.Params().Len() == 1 {
		return sig.Params().At(0).Type()
	}
	return nil
}

func funcIdent(fun ast.Expr) *ast.Ident {
	switch f := ast.Unparen(fun).(type) {
	case *ast.Ident:
		return f
	case *ast.SelectorExpr:
		return f.Sel
	case *ast.IndexExpr:
		return funcIdent(f.X)
	case *ast.IndexListExpr:
		return funcIdent(f.X)
	}
	return nil
}

// qualifier prints package-level names the way fmt's %T does, so static
// and run-time diagnostics read the same.
func qualifier(p *types.Package) string { return p.Name() }

func typeString(t types.Type) string {
	return types.TypeString(t, qualifier)
}

func caseString(c caseInfo) string {
	if c.typ == nil {
		return fmt.Sprintf("%q (no payload)", c.name)
	}
	return fmt.Sprintf("%q (%s)", c.name, typeString(c.typ))
}
