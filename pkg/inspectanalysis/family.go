package inspectanalysis

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"
)

// familyFact records the variants of a package-level family declared with
// inspect.Sealed, so packages using the family can check against them.
type familyFact struct {
	Variants []variantRef
}

// variantRef names a variant type by package and type name.
type variantRef struct {
	PkgPath string
	Name    string
	Pointer bool
}

func (*familyFact) AFact() {}

func (f *familyFact) String() string {
	names := make([]string, len(f.Variants))
	for i, v := range f.Variants {
		names[i] = v.PkgPath + "." + v.Name
		if v.Pointer {
			names[i] = "*" + names[i]
		}
	}
	return "family(" + strings.Join(names, ", ") + ")"
}

// families maps every variable initialized with inspect.Sealed in the
// package to the types of its variants, in declaration order. Package-level
// families are exported as facts.
type families map[types.Object][]types.Type

func collectFamilies(pass *analysis.Pass, insp *inspector.Inspector) families {
	fams := make(families)
	record := func(id *ast.Ident, value ast.Expr) {
		obj := pass.TypesInfo.Defs[id]
		if obj == nil {
			return
		}
		vs, ok := sealedVariants(pass, value)
		if !ok {
			return
		}
		fams[obj] = vs
		if obj.Parent() != pass.Pkg.Scope() {
			return
		}
		if fact, ok := newFamilyFact(vs); ok {
			pass.ExportObjectFact(obj, fact)
		}
	}

	insp.Preorder([]ast.Node{(*ast.ValueSpec)(nil), (*ast.AssignStmt)(nil)}, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.ValueSpec:
			if len(n.Values) != len(n.Names) {
				return
			}
			for i, id := range n.Names {
				record(id, n.Values[i])
			}
		case *ast.AssignStmt:
			if n.Tok != token.DEFINE || len(n.Lhs) != len(n.Rhs) {
				return
			}
			for i, lhs := range n.Lhs {
				if id, ok := lhs.(*ast.Ident); ok {
					record(id, n.Rhs[i])
				}
			}
		}
	})
	return fams
}

// sealedVariants returns V of every inspect.Alt[V, S]() argument of an
// inspect.Sealed call. A spread argument list is not resolved.
func sealedVariants(pass *analysis.Pass, expr ast.Expr) ([]types.Type, bool) {
	call, ok := ast.Unparen(expr).(*ast.CallExpr)
	if !ok || call.Ellipsis.IsValid() {
		return nil, false
	}
	if fn := inspectFunc(pass, call); fn == nil || fn.Name() != "Sealed" {
		return nil, false
	}

	vs := make([]types.Type, 0, len(call.Args))
	for _, arg := range call.Args {
		alt, ok := ast.Unparen(arg).(*ast.CallExpr)
		if !ok {
			return nil, false
		}
		if fn := inspectFunc(pass, alt); fn == nil || fn.Name() != "Alt" {
			return nil, false
		}
		id := funcIdent(alt.Fun)
		if id == nil {
			return nil, false
		}
		inst, ok := pass.TypesInfo.Instances[id]
		if !ok || inst.TypeArgs.Len() == 0 {
			return nil, false
		}
		v := inst.TypeArgs.At(0)
		if _, generic := v.(*types.TypeParam); generic {
			return nil, false
		}
		vs = append(vs, v)
	}
	return vs, len(vs) > 0
}

// newFamilyFact describes vs by name. Variants that cannot be looked up
// from another package, such as local or instantiated types, leave the
// family without a fact.
func newFamilyFact(vs []types.Type) (*familyFact, bool) {
	fact := &familyFact{Variants: make([]variantRef, 0, len(vs))}
	for _, v := range vs {
		var ref variantRef
		t := types.Unalias(v)
		if p, ok := t.(*types.Pointer); ok {
			ref.Pointer = true
			t = types.Unalias(p.Elem())
		}
		named, ok := t.(*types.Named)
		if !ok || named.TypeArgs().Len() > 0 {
			return nil, false
		}
		obj := named.Obj()
		if obj.Pkg() == nil || obj.Parent() != obj.Pkg().Scope() {
			return nil, false
		}
		ref.PkgPath, ref.Name = obj.Pkg().Path(), obj.Name()
		fact.Variants = append(fact.Variants, ref)
	}
	return fact, true
}

// resolve looks up the variant types of f from the packages visible to pkgs.
func (f *familyFact) resolve(pkgs ...*types.Package) ([]types.Type, bool) {
	vs := make([]types.Type, 0, len(f.Variants))
	for _, ref := range f.Variants {
		pkg := findPackage(ref.PkgPath, pkgs)
		if pkg == nil {
			return nil, false
		}
		tn, ok := pkg.Scope().Lookup(ref.Name).(*types.TypeName)
		if !ok {
			return nil, false
		}
		t := tn.Type()
		if ref.Pointer {
			t = types.NewPointer(t)
		}
		vs = append(vs, t)
	}
	return vs, true
}

func findPackage(path string, roots []*types.Package) *types.Package {
	seen := make(map[*types.Package]bool)
	queue := append([]*types.Package(nil), roots...)
	for len(queue) > 0 {
		pkg := queue[0]
		queue = queue[1:]
		if pkg == nil || seen[pkg] {
			continue
		}
		seen[pkg] = true
		if pkg.Path() == path {
			return pkg
		}
		queue = append(queue, pkg.Imports()...)
	}
	return nil
}

// variantsOf returns the variants of the family that expr takes from: a
// family variable, or a call to its Of method.
func (fams families) variantsOf(pass *analysis.Pass, expr ast.Expr) ([]types.Type, bool) {
	expr = ast.Unparen(expr)
	if call, ok := expr.(*ast.CallExpr); ok {
		sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
		if !ok || !isFamilyMethod(pass, sel, "Of") {
			return nil, false
		}
		expr = ast.Unparen(sel.X)
	}

	var id *ast.Ident
	switch e := expr.(type) {
	case *ast.Ident:
		id = e
	case *ast.SelectorExpr:
		id = e.Sel
	default:
		return nil, false
	}
	v, ok := pass.TypesInfo.Uses[id].(*types.Var)
	if !ok || v.IsField() {
		return nil, false
	}

	if vs, ok := fams[v]; ok {
		return vs, true
	}
	var fact familyFact
	if !pass.ImportObjectFact(v, &fact) {
		return nil, false
	}
	return fact.resolve(v.Pkg(), pass.Pkg)
}

func isFamilyMethod(pass *analysis.Pass, sel *ast.SelectorExpr, name string) bool {
	s, ok := pass.TypesInfo.Selections[sel]
	if !ok || s.Kind() != types.MethodVal {
		return false
	}
	fn, ok := s.Obj().(*types.Func)
	if !ok || fn.Name() != name || fn.Pkg() == nil || fn.Pkg().Path() != PkgPath {
		return false
	}
	return isFamily(s.Recv())
}
