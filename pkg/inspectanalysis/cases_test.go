package inspectanalysis

import (
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccepts(t *testing.T) {
	var (
		intT    = types.Typ[types.Int]
		stringT = types.Typ[types.String]
		anyT    = types.Universe.Lookup("any").Type()
		errorT  = types.Universe.Lookup("error").Type()
	)

	// type myErr struct{}; func (myErr) Error() string
	pkg := types.NewPackage("example.com/p", "p")
	obj := types.NewTypeName(token.NoPos, pkg, "myErr", nil)
	myErr := types.NewNamed(obj, types.NewStruct(nil, nil), nil)
	sig := types.NewSignatureType(types.NewVar(token.NoPos, pkg, "", myErr), nil, nil, nil,
		types.NewTuple(types.NewVar(token.NoPos, pkg, "", stringT)), false)
	myErr.AddMethod(types.NewFunc(token.NoPos, pkg, "Error", sig))

	tests := map[string]struct {
		param, form types.Type
		want        bool
	}{
		"identical":             {intT, intT, true},
		"different":             {intT, stringT, false},
		"any takes concrete":    {anyT, intT, true},
		"any takes interface":   {anyT, errorT, true},
		"interface implemented": {errorT, myErr, true},
		"interface missing":     {errorT, intT, false},
		"interface payload":     {errorT, errorT, true},
		"concrete for iface":    {myErr, errorT, false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, accepts(tt.param, tt.form))
		})
	}
}

func TestCover(t *testing.T) {
	intT := types.Typ[types.Int]
	stringT := types.Typ[types.String]

	union := caseSet{shape: "union", cases: []caseInfo{
		{name: "A", typ: intT, forms: []types.Type{intT}},
		{name: "B", typ: stringT, forms: []types.Type{stringT}},
	}}
	optional := caseSet{shape: "optional", cases: []caseInfo{
		{name: "present", typ: intT, forms: []types.Type{intT}},
		{name: "absent"},
	}}

	t.Run("covered", func(t *testing.T) {
		assert.Empty(t, cover(union, []handler{{kind: kindCase, param: intT}, {kind: kindDefault}}))
	})

	t.Run("missing", func(t *testing.T) {
		got := cover(union, []handler{{kind: kindCase, param: intT}})
		assert.Equal(t, []string{`no handler for union case "B" (string)`}, got)
	})

	t.Run("empty handler does not take payload", func(t *testing.T) {
		got := cover(union, []handler{{kind: kindEmpty}})
		assert.Len(t, got, 2)
	})

	t.Run("optional", func(t *testing.T) {
		got := cover(optional, []handler{{kind: kindDefault}})
		assert.Equal(t, []string{"optional of int: no handler for the absent state; add inspect.Empty(func() R { ... })"}, got)

		got = cover(optional, []handler{{kind: kindEmpty}})
		assert.Equal(t, []string{"optional of int: no handler for the present value (int)"}, got)

		assert.Empty(t, cover(optional, []handler{{kind: kindEmpty}, {kind: kindCase, param: intT}}))
	})

	t.Run("ambiguous", func(t *testing.T) {
		pkg := types.NewPackage(PkgPath, "inspect")
		success := types.NewNamed(types.NewTypeName(token.NoPos, pkg, "Success", nil), types.NewStruct(nil, nil), nil)
		result := caseSet{shape: "result", cases: []caseInfo{
			{name: "success", typ: intT, forms: []types.Type{success}, shadowed: []types.Type{intT}},
		}}

		got := cover(result, []handler{{kind: kindCase, param: intT}})
		assert.Equal(t, []string{`case "success" (int) is not covered: handler 0 takes int, which does not identify the case; write it against inspect.Success`}, got)
	})
}
