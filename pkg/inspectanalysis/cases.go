package inspectanalysis

import (
	"fmt"
	"go/types"
	"strings"
)

type caseInfo struct {
	name     string
	typ      types.Type // nil for a case without payload
	forms    []types.Type
	shadowed []types.Type
}

type caseSet struct {
	shape string
	cases []caseInfo
}

type handlerKind int

const (
	kindCase handlerKind = iota
	kindDefault
	kindEmpty
)

type handler struct {
	kind  handlerKind
	param types.Type
}

// inspectNamed returns the named inspect type behind t, looking through
// aliases and one pointer. Only *Family is used through a pointer.
func inspectNamed(t types.Type) (*types.Named, bool) {
	if t == nil {
		return nil, false
	}
	t = types.Unalias(t)
	if p, ok := t.(*types.Pointer); ok {
		t = types.Unalias(p.Elem())
	}
	named, ok := t.(*types.Named)
	if !ok || named.Obj().Pkg() == nil || named.Obj().Pkg().Path() != PkgPath {
		return nil, false
	}
	return named, true
}

// isFamily reports whether t is a Member or *Family, whose cases depend on
// the declaration of the family rather than on t.
func isFamily(t types.Type) bool {
	named, ok := inspectNamed(t)
	if !ok {
		return false
	}
	name := named.Obj().Name()
	return name == "Member" || name == "Family"
}

// caseSetOf derives the case set of an inspect value type. The cases of a
// family are its declared variants. It returns false for types it does not
// know, which are then left unchecked.
func caseSetOf(t types.Type, variants []types.Type) (caseSet, bool) {
	named, ok := inspectNamed(t)
	if !ok {
		return caseSet{}, false
	}

	args := named.TypeArgs()
	for i := 0; i < args.Len(); i++ {
		if _, generic := args.At(i).(*types.TypeParam); generic {
			return caseSet{}, false
		}
	}

	pkg := named.Obj().Pkg()
	switch name := named.Obj().Name(); name {
	case "Option":
		v := args.At(0)
		return caseSet{shape: "optional", cases: []caseInfo{
			{name: "present", typ: v, forms: []types.Type{v}},
			{name: "absent"},
		}}, true

	case "Result":
		v, e := args.At(0), args.At(1)
		success, failure := instantiate(pkg, "Success", v), instantiate(pkg, "Failure", e)
		if success == nil || failure == nil {
			return caseSet{}, false
		}
		s := caseInfo{name: "success", typ: v, forms: []types.Type{success}}
		f := caseInfo{name: "failure", typ: e, forms: []types.Type{failure}}
		if types.Identical(v, e) {
			s.shadowed = []types.Type{v}
			f.shadowed = []types.Type{e}
		} else {
			s.forms = append(s.forms, v)
			f.forms = append(f.forms, e)
		}
		return caseSet{shape: "result", cases: []caseInfo{s, f}}, true

	case "Union2", "Union3", "Union4", "Union5":
		set := caseSet{shape: "union"}
		for i := 0; i < args.Len(); i++ {
			a := args.At(i)
			set.cases = append(set.cases, caseInfo{
				name:  string(rune('A' + i)),
				typ:   a,
				forms: []types.Type{a},
			})
		}
		return set, true

	case "Member", "Family":
		if len(variants) == 0 {
			return caseSet{}, false
		}
		set := caseSet{shape: "union"}
		for _, v := range variants {
			set.cases = append(set.cases, caseInfo{name: typeString(v), typ: v, forms: []types.Type{v}})
		}
		return set, true
	}
	return caseSet{}, false
}

func instantiate(pkg *types.Package, name string, arg types.Type) types.Type {
	tn, ok := pkg.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		return nil
	}
	t, err := types.Instantiate(nil, tn.Type(), []types.Type{arg}, false)
	if err != nil {
		return nil
	}
	return t
}

// accepts mirrors the run-time acceptance rule of inspect.Case: identical
// types, any, or a concrete payload implementing an interface parameter.
func accepts(param, form types.Type) bool {
	if types.Identical(param, form) {
		return true
	}
	if types.Identical(param, types.Universe.Lookup("any").Type()) {
		return true
	}
	if types.IsInterface(form) {
		return false
	}
	if iface, ok := param.Underlying().(*types.Interface); ok {
		return types.Implements(form, iface)
	}
	return false
}

// cover returns one message per diagnostic, in case order.
func cover(set caseSet, hs []handler) []string {
	var missing []caseInfo
	for _, c := range set.cases {
		if !covered(c, hs) {
			missing = append(missing, c)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	if set.shape == "optional" {
		return []string{optionalMessage(set, missing)}
	}

	msgs := make([]string, 0, len(missing))
	for _, c := range missing {
		if hi, h, ok := ambiguous(c, hs); ok {
			msgs = append(msgs, fmt.Sprintf("case %s is not covered: handler %d takes %s, which does not identify the case; write it against %s",
				caseString(c), hi, typeString(h.param), typeString(c.forms[0])))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("no handler for %s case %s", set.shape, caseString(c)))
	}
	return msgs
}

func covered(c caseInfo, hs []handler) bool {
	for _, h := range hs {
		if c.typ == nil {
			if h.kind == kindEmpty {
				return true
			}
			continue
		}
		switch h.kind {
		case kindDefault:
			return true
		case kindCase:
			for _, f := range c.forms {
				if accepts(h.param, f) {
					return true
				}
			}
		}
	}
	return false
}

func ambiguous(c caseInfo, hs []handler) (int, handler, bool) {
	for hi, h := range hs {
		if h.kind != kindCase {
			continue
		}
		for _, f := range c.shadowed {
			if accepts(h.param, f) {
				return hi, h, true
			}
		}
	}
	return 0, handler{}, false
}

func optionalMessage(set caseSet, missing []caseInfo) string {
	var value string
	for _, c := range set.cases {
		if c.typ != nil {
			value = typeString(c.typ)
		}
	}

	var parts []string
	for _, c := range missing {
		if c.typ == nil {
			parts = append(parts, "no handler for the absent state; add inspect.Empty(func() R { ... })")
		} else {
			parts = append(parts, fmt.Sprintf("no handler for the present value (%s)", value))
		}
	}
	return fmt.Sprintf("optional of %s: %s", value, strings.Join(parts, " and "))
}
