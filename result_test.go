package inspect

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ResultSuite struct {
	suite.Suite
}

func TestResultSuite(t *testing.T) {
	suite.Run(t, new(ResultSuite))
}

func (s *ResultSuite) TestBareHandlers() {
	handle := func(r Result[int, string]) string {
		return Inspect(r,
			Case(func(n int) string { return "ok " + strconv.Itoa(n) }),
			Case(func(code string) string { return "error " + code }),
		)
	}

	s.Assert().Equal("ok 100", handle(Ok[int, string](100)))
	s.Assert().Equal("error E42", handle(Fail[int]("E42")))
}

func (s *ResultSuite) TestWrappedHandlers() {
	handle := func(r Result[int, string]) string {
		return Inspect(r,
			Case(func(v Success[int]) string { return "ok " + strconv.Itoa(v.Value) }),
			Case(func(f Failure[string]) string { return "error " + f.Value }),
		)
	}

	s.Assert().Equal("ok 100", handle(Ok[int, string](100)))
	s.Assert().Equal("error E42", handle(Fail[int]("E42")))
}

func (s *ResultSuite) TestSameTypeWithWrappers() {
	handle := func(r Result[int, int]) string {
		return Inspect(r,
			Case(func(v Success[int]) string { return "ok " + strconv.Itoa(v.Value) }),
			Case(func(f Failure[int]) string { return "failed " + strconv.Itoa(f.Value) }),
		)
	}

	s.Assert().Equal("ok 55", handle(Ok[int, int](55)))
	s.Assert().Equal("failed 55", handle(Fail[int](55)))
}

func (s *ResultSuite) TestSameTypeBareHandlerIsAmbiguous() {
	err := Check(Ok[int, int](55), Case(func(n int) string { return strconv.Itoa(n) }))

	s.Require().Error(err)
	s.Assert().ErrorIs(err, ErrAmbiguousPayload)
	s.Assert().ErrorIs(err, ErrMissingHandler)

	var cerr *CoverageError
	s.Require().ErrorAs(err, &cerr)
	s.Require().Len(cerr.Errs, 2)

	var aerr *AmbiguousPayloadError
	s.Require().ErrorAs(cerr.Errs[0], &aerr)
	s.Assert().Equal("success", aerr.Case.Name)
	s.Assert().Equal(0, aerr.Handler)
	s.Assert().Equal("int", aerr.Param)
	s.Assert().Equal(`case "success" (int) is not covered: handler 0 takes int, which does not identify the case; write it against inspect.Success[int]`, aerr.Error())

	s.Require().ErrorAs(cerr.Errs[1], &aerr)
	s.Assert().Equal("failure", aerr.Case.Name)
	s.Assert().Contains(aerr.Error(), "write it against inspect.Failure[int]")
}

func (s *ResultSuite) TestSameTypeMixedHandlers() {
	// The wrapper covers success; the bare handler cannot stand for failure.
	err := Check(Ok[int, int](1),
		Case(func(v Success[int]) int { return v.Value }),
		Case(func(n int) int { return n }),
	)

	var aerr *AmbiguousPayloadError
	s.Require().ErrorAs(err, &aerr)
	s.Assert().Equal("failure", aerr.Case.Name)
	s.Assert().Equal(1, aerr.Handler)
}

func (s *ResultSuite) TestHandlerOrderBeforeFormOrder() {
	r := Ok[int, string](3)

	got := Inspect(r,
		Case(func(n int) string { return "bare" }),
		Case(func(v Success[int]) string { return "wrapped" }),
		Case(func(string) string { return "failure" }),
	)
	s.Assert().Equal("bare", got)
}

func (s *ResultSuite) TestWildcardReceivesWrapper() {
	describe := func(p any) string { return fmt.Sprintf("%T", p) }
	hs := []Handler[string]{Default(describe)}

	s.Assert().Equal("inspect.Success[int]", Inspect(Ok[int, int](1), hs...))
	s.Assert().Equal("inspect.Failure[int]", Inspect(Fail[int](1), hs...))
}

func (s *ResultSuite) TestCaseOverAnyReceivesWrapper() {
	hs := []Handler[string]{Case(func(p any) string { return fmt.Sprintf("%T", p) })}

	s.Assert().Equal("inspect.Success[int]", Inspect(Ok[int, string](1), hs...))
	s.Assert().Equal("inspect.Failure[string]", Inspect(Fail[int]("e"), hs...))
}

func (s *ResultSuite) TestMissingFailure() {
	err := Check(Ok[int, error](1), Case(func(n int) int { return n }))

	s.Require().Error(err)
	s.Assert().Equal(`inspect: incomplete coverage of result: no handler for result case "failure" (error)`, err.Error())
}

func TestFromError(t *testing.T) {
	ok := FromError(strconv.Atoi("12"))
	assert.True(t, ok.IsOk())
	v, _ := ok.Value()
	assert.Equal(t, 12, v)

	failed := FromError(strconv.Atoi("x"))
	assert.True(t, failed.IsErr())
	err, _ := failed.Err()
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	got := Inspect(failed,
		Case(func(n int) string { return "number" }),
		Case(func(err error) string { return "not a number" }),
	)
	assert.Equal(t, "not a number", got)
}

// expected is a result-like type written elsewhere.
type expected struct {
	v   string
	err error
}

func (e expected) IsOk() bool { return e.err == nil }
func (e expected) Ok() string { return e.v }
func (e expected) Err() error { return e.err }

func TestFromOutcome(t *testing.T) {
	r := FromOutcome[string, error](expected{v: "done"})
	assert.Equal(t, "Ok(done)", r.String())

	boom := errors.New("boom")
	r = FromOutcome[string, error](expected{err: boom})
	assert.Equal(t, "Fail(boom)", r.String())

	e, ok := r.Err()
	require.True(t, ok)
	assert.Same(t, boom, e)
}

func TestResult_Accessors(t *testing.T) {
	ok := Ok[int, string](7)
	fail := Fail[int]("bad")
	var zero Result[int, string]

	v, isOk := ok.Value()
	assert.True(t, isOk)
	assert.Equal(t, 7, v)
	_, isErr := ok.Err()
	assert.False(t, isErr)

	_, isOk = fail.Value()
	assert.False(t, isOk)
	e, isErr := fail.Err()
	assert.True(t, isErr)
	assert.Equal(t, "bad", e)

	assert.True(t, zero.IsOk(), "zero Result is a success")
	assert.Equal(t, "Ok(0)", zero.String())
}

func TestMatchResult(t *testing.T) {
	ok := func(n int) string { return "ok " + strconv.Itoa(n) }
	fail := func(n int) string { return "failed " + strconv.Itoa(n) }

	assert.Equal(t, "ok 55", MatchResult(Ok[int, int](55), ok, fail))
	assert.Equal(t, "failed 55", MatchResult(Fail[int](55), ok, fail))
}

func TestResult_Cases(t *testing.T) {
	t.Run("distinct types", func(t *testing.T) {
		cases := Ok[int, string](0).Cases()
		require.Len(t, cases, 2)
		assert.Equal(t, []string{"inspect.Success[int]", "int"}, formTypes(cases[0]))
		assert.Equal(t, []string{"inspect.Failure[string]", "string"}, formTypes(cases[1]))
	})

	t.Run("same type", func(t *testing.T) {
		cases := Ok[int, int](0).Cases()
		require.Len(t, cases, 2)
		assert.Equal(t, []string{"inspect.Success[int]"}, formTypes(cases[0]))
		assert.Equal(t, []string{"inspect.Failure[int]"}, formTypes(cases[1]))
	})
}

func formTypes(c CaseInfo) []string {
	out := make([]string, len(c.Forms))
	for i, f := range c.Forms {
		out[i] = f.Type
	}
	return out
}
