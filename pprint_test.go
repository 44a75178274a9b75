package pprint_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
	"unsafe"

	"github.com/bjaus/pprint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test types: enums ---

type suit int

type color uint8

// loudSuit has a symbolic name available; rendering must ignore it only if
// classification says so (it classifies native via Stringer).
type loudSuit int

func (loudSuit) String() string { return "spades" }

// --- Test types: booleans with extra capabilities ---

type loudBool bool

func (loudBool) String() string { return "LOUD" }

// --- Test types: string-likes ---

type name string

type blob []byte

// --- Test types: callables ---

// handler is a func type with an incidental String method. It must render
// as a callable, not via its native text.
type handler func()

func (handler) String() string { return "handler" }

type greeter struct{}

func (greeter) Invoke(args ...any) any { return "hi" }

// --- Test types: native text ---

type version struct{ major, minor int }

func (v version) String() string { return "v1.2" }

type badText struct{}

func (badText) MarshalText() ([]byte, error) { return nil, errors.New("nope") }

type okText struct{}

func (okText) MarshalText() ([]byte, error) { return []byte("marked"), nil }

// --- Helpers ---

var errWriteFailed = errors.New("write failed")

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

// failAfterN fails on the (n+1)th call to Write.
type failAfterN struct {
	n     int
	calls int
}

func (f *failAfterN) Write(p []byte) (int, error) {
	if f.calls >= f.n {
		return 0, errWriteFailed
	}
	f.calls++
	return len(p), nil
}

// ============================================================
// Tests
// ============================================================

func TestSprintScalars(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input any
		want  string
	}{
		"true":           {input: true, want: "true"},
		"false":          {input: false, want: "false"},
		"bool stringer":  {input: loudBool(true), want: "true"},
		"int":            {input: 42, want: "42"},
		"negative int":   {input: -7, want: "-7"},
		"uint":           {input: uint(7), want: "7"},
		"float":          {input: 3.14, want: "3.14"},
		"complex":        {input: complex(1, 2), want: "(1+2i)"},
		"string":         {input: "Hello", want: `"Hello"`},
		"named string":   {input: name("Ada"), want: `"Ada"`},
		"bytes":          {input: []byte("hey"), want: `"hey"`},
		"named bytes":    {input: blob("raw"), want: `"raw"`},
		"runes":          {input: []rune("héllo"), want: `"héllo"`},
		"byte array":     {input: [2]byte{'h', 'i'}, want: `"hi"`},
		"embedded quote": {input: `say "hi"`, want: `"say "hi""`},
		"enum":           {input: suit(2), want: "2"},
		"uint enum":      {input: color(3), want: "3"},
		"enum stringer":  {input: loudSuit(1), want: "spades"},
		"stringer":       {input: version{1, 2}, want: "v1.2"},
		"duration":       {input: 3 * time.Second, want: "3s"},
		"error":          {input: errors.New("boom"), want: "boom"},
		"text marshaler": {input: okText{}, want: "marked"},
		"bad marshaler":  {input: badText{}, want: "<unknown>"},
	}
	for tname, tc := range tests {
		t.Run(tname, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, pprint.Sprint(tc.input))
		})
	}
}

func TestSprintContainers(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input any
		want  string
	}{
		"ints":         {input: []int{1, 2, 3}, want: "{1,2,3}"},
		"empty":        {input: []int{}, want: "{}"},
		"nil slice":    {input: []int(nil), want: "{}"},
		"single":       {input: []int{9}, want: "{9}"},
		"array":        {input: [3]int{4, 5, 6}, want: "{4,5,6}"},
		"strings":      {input: []string{"a", "b"}, want: `{"a","b"}`},
		"mixed":        {input: []any{1, "hi", true}, want: `{1,"hi",true}`},
		"nested":       {input: [][]int{{1, 2}, {3}}, want: "{{1,2},{3}}"},
		"map":          {input: map[string]int{"b": 2, "a": 1}, want: `{("a",1),("b",2)}`},
		"empty map":    {input: map[string]int{}, want: "{}"},
		"nested inner": {input: []any{[]int{1}, nil}, want: "{{1},<nil>}"},
	}
	for tname, tc := range tests {
		t.Run(tname, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, pprint.Sprint(tc.input))
		})
	}
}

func TestSprintPairsAndTuples(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input any
		want  string
	}{
		"pair":        {input: pprint.PairOf(1, 2), want: "(1,2)"},
		"pair nested": {input: pprint.PairOf(1, pprint.PairOf(2, 3)), want: "(1,(2,3))"},
		"pair quoted": {input: pprint.PairOf("k", 7), want: `("k",7)`},
		"tuple":       {input: pprint.NewTuple("Hello", 42), want: `("Hello",42)`},
		"tuple three": {input: pprint.NewTuple(1, 2, 3), want: "(1,2,3)"},
		"empty tuple": {input: pprint.NewTuple(), want: "()"},
		"tuple pair":  {input: pprint.NewTuple(pprint.PairOf(1, 2), true), want: "((1,2),true)"},
	}
	for tname, tc := range tests {
		t.Run(tname, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, pprint.Sprint(tc.input))
		})
	}
}

func TestSprintCallables(t *testing.T) {
	t.Parallel()
	add := func(a, b int) int { return a + b }
	bound := pprint.Bind(add, 1)
	tests := map[string]struct {
		input any
		want  string
	}{
		"func":            {input: add, want: "<callable (func)>"},
		"nil func":        {input: (func())(nil), want: "<callable (func)>"},
		"invoker":         {input: greeter{}, want: "<callable (object)>"},
		"bound":           {input: bound, want: "<callable (bound)>"},
		"bound pointer":   {input: &bound, want: "<callable (bound)>"},
		"reflect value":   {input: reflect.ValueOf(add), want: "<callable (reflect)>"},
		"invalid reflect": {input: reflect.Value{}, want: "<callable (reflect)>"},
	}
	for tname, tc := range tests {
		t.Run(tname, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, pprint.Sprint(tc.input))
		})
	}
}

// TestCallableBeatsNativeText guards the resolution rule that a type whose
// textual conversion is incidental to being invocable renders as a
// callable, never via its String method.
func TestCallableBeatsNativeText(t *testing.T) {
	t.Parallel()
	var h handler = func() {}
	require.Implements(t, (*interface{ String() string })(nil), h)
	assert.Equal(t, "<callable (func)>", pprint.Sprint(h))
	assert.Equal(t, pprint.ShapeCallable, pprint.ShapeOf(h))
}

func TestSprintOpaque(t *testing.T) {
	t.Parallel()
	type plain struct{ a, b int }
	var np *int
	tests := map[string]struct {
		input any
		want  string
	}{
		"struct":         {input: plain{1, 2}, want: "<struct>"},
		"chan":           {input: make(chan int), want: "<chan>"},
		"nil":            {input: nil, want: "<nil>"},
		"nil pointer":    {input: np, want: "<nil>"},
		"unsafe pointer": {input: unsafe.Pointer(&np), want: "<unknown>"},
	}
	for tname, tc := range tests {
		t.Run(tname, func(t *testing.T) {
			t.Parallel()
			got := pprint.Sprint(tc.input)
			assert.Equal(t, tc.want, got)
			assert.NotEmpty(t, got)
		})
	}
}

func TestSprintPointerIndirection(t *testing.T) {
	t.Parallel()
	x := 42
	px := &x
	ppx := &px
	assert.Equal(t, "42", pprint.Sprint(px))
	assert.Equal(t, "42", pprint.Sprint(ppx))

	s := []int{1, 2}
	assert.Equal(t, "{1,2}", pprint.Sprint(&s))
}

func TestSprintSeq(t *testing.T) {
	t.Parallel()
	seq := func(yield func(int) bool) {
		for _, n := range []int{1, 2, 3} {
			if !yield(n) {
				return
			}
		}
	}
	seq2 := func(yield func(string, int) bool) {
		if !yield("a", 1) {
			return
		}
		yield("b", 2)
	}
	empty := func(yield func(int) bool) {}

	assert.Equal(t, "{1,2,3}", pprint.Sprint(seq))
	assert.Equal(t, `{("a",1),("b",2)}`, pprint.Sprint(seq2))
	assert.Equal(t, "{}", pprint.Sprint(empty))

	// A nil iterator is traversable by shape and renders as the empty
	// container, like a nil slice. It must never be invoked.
	var nilSeq func(func(int) bool)
	assert.Equal(t, pprint.ShapeIterable, pprint.ShapeOf(nilSeq))
	assert.Equal(t, "{}", pprint.Sprint(nilSeq))
	var nilSeq2 func(func(string, int) bool)
	assert.Equal(t, "{}", pprint.Sprint(nilSeq2))
}

func TestWithDelimiters(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ">1,2,3>", pprint.Sprint([]int{1, 2, 3}, pprint.WithDelimiters(">", ">", ",")))
	// The override binds to the outermost container only.
	assert.Equal(t, "[{1,2};{3}]", pprint.Sprint([][]int{{1, 2}, {3}}, pprint.WithDelimiters("[", "]", ";")))
	// Non-container values ignore the override.
	assert.Equal(t, "42", pprint.Sprint(42, pprint.WithDelimiters("[", "]", ";")))
}

func TestWithMaxWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "{1...", pprint.Sprint([]int{1, 2, 3}, pprint.WithMaxWidth(5)))
	assert.Equal(t, "{1,2,3}", pprint.Sprint([]int{1, 2, 3}, pprint.WithMaxWidth(80)))
	// Width counts terminal cells: each rune below is two cells wide.
	assert.Equal(t, `"你...`, pprint.Sprint("你好世界", pprint.WithMaxWidth(6)))
}

func TestRendererHandle(t *testing.T) {
	t.Parallel()
	r := pprint.Render([]int{1, 2}, pprint.WithDelimiters("<", ">", "|"))

	// A handle is reusable and referentially transparent.
	assert.Equal(t, "<1|2>", r.String())
	assert.Equal(t, "<1|2>", r.String())

	var sb strings.Builder
	n, err := r.WriteTo(&sb)
	require.NoError(t, err)
	assert.Equal(t, int64(len("<1|2>")), n)
	assert.Equal(t, "<1|2>", sb.String())
}

func TestWrite(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	err := pprint.Write(&sb, pprint.PairOf(1, 2))
	require.NoError(t, err)
	assert.Equal(t, "(1,2)", sb.String())
}

func TestWriteSinkFailure(t *testing.T) {
	t.Parallel()
	err := pprint.Write(&errWriter{}, []int{1, 2, 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, pprint.ErrSinkUnavailable)
	assert.ErrorIs(t, err, errWriteFailed)
}

func TestWriteSinkFailureMidStream(t *testing.T) {
	t.Parallel()
	w := &failAfterN{n: 3}
	err := pprint.Write(w, []int{1, 2, 3, 4})
	require.Error(t, err)
	assert.ErrorIs(t, err, pprint.ErrSinkUnavailable)
}

func TestWriteMaxWidthSinkFailure(t *testing.T) {
	t.Parallel()
	err := pprint.Write(&errWriter{}, []int{1, 2, 3}, pprint.WithMaxWidth(4))
	require.Error(t, err)
	assert.ErrorIs(t, err, pprint.ErrSinkUnavailable)
}

func TestRenderingDoesNotMutate(t *testing.T) {
	t.Parallel()
	arr := [3]byte{'a', 'b', 'c'}
	before := arr
	assert.Equal(t, `"abc"`, pprint.Sprint(arr))
	assert.Equal(t, before, arr)

	vals := []int{3, 1, 2}
	assert.Equal(t, "{3,1,2}", pprint.Sprint(vals))
	assert.Equal(t, []int{3, 1, 2}, vals)
}

func TestShapeOf(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input any
		want  pprint.Shape
	}{
		"bool":      {input: true, want: pprint.ShapeBoolean},
		"string":    {input: "x", want: pprint.ShapeString},
		"int":       {input: 1, want: pprint.ShapeNative},
		"stringer":  {input: version{}, want: pprint.ShapeNative},
		"func":      {input: func() {}, want: pprint.ShapeCallable},
		"slice":     {input: []int{}, want: pprint.ShapeIterable},
		"map":       {input: map[int]int{}, want: pprint.ShapeIterable},
		"pair":      {input: pprint.PairOf(1, 2), want: pprint.ShapePair},
		"tuple":     {input: pprint.NewTuple(1), want: pprint.ShapeTuple},
		"enum":      {input: suit(0), want: pprint.ShapeEnum},
		"struct":    {input: struct{}{}, want: pprint.ShapeOpaque},
		"chan":      {input: make(chan int), want: pprint.ShapeOpaque},
		"nil":       {input: nil, want: pprint.ShapeOpaque},
		"unsafe":    {input: unsafe.Pointer(nil), want: pprint.ShapeUnknown},
		"deref int": {input: new(int), want: pprint.ShapeNative},
	}
	for tname, tc := range tests {
		t.Run(tname, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, pprint.ShapeOf(tc.input))
		})
	}
}

func TestShapeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "boolean", pprint.ShapeBoolean.String())
	assert.Equal(t, "iterable", pprint.ShapeIterable.String())
	assert.Equal(t, "unknown", pprint.ShapeUnknown.String())
	assert.Equal(t, "unknown", pprint.Shape(99).String())
}

func TestBoundFuncInvoke(t *testing.T) {
	t.Parallel()
	add := func(a, b int) int { return a + b }
	b := pprint.Bind(add, 1)
	assert.Equal(t, 3, b.Invoke(2))

	div := func(a, b int) (int, int) { return a / b, a % b }
	assert.Equal(t, []any{3, 1}, pprint.Bind(div, 7).Invoke(2))

	noop := pprint.Bind(func() {})
	assert.Nil(t, noop.Invoke())
}
