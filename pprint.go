package pprint

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Sentinel errors for programmatic error handling.
var (
	ErrSinkUnavailable   = errors.New("sink unavailable")
	ErrInvalidDelimiters = errors.New("invalid delimiter config")
)

// maxDeref bounds pointer/interface indirection before a value is given up
// on. Guards against self-referential pointer types.
const maxDeref = 8

// --- Capability Interfaces ---

// Paired marks a two-element product. Pairs render as (first,second).
type Paired interface {
	Pair() (first, second any)
}

// Tupled marks a fixed positional product. Tuples render as (e1,e2,...).
type Tupled interface {
	Tuple() []any
}

// Invoker marks a general invocable object. The renderer never invokes it;
// it only emits a callable marker.
type Invoker interface {
	Invoke(args ...any) any
}

// Delimited lets a container type carry its own delimiters. It outranks
// registry registrations but yields to a per-call [WithDelimiters] override.
type Delimited interface {
	Delims() (opener, closer, sep string)
}

// --- Entry Points ---

// Renderer is a deferred rendering of a single value. It performs the
// classify-and-emit pipeline when materialized against a sink via WriteTo,
// or into a string via String. A Renderer is reusable: rendering never
// mutates the value or the Renderer itself.
type Renderer struct {
	v        any
	override *Delimiters
	maxWidth int
}

// Render returns a handle that renders v when written to a sink. It accepts
// values of any shape; shapes matching no classification render as a fixed
// sentinel rather than failing.
func Render(v any, opts ...Option) *Renderer {
	r := &Renderer{v: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WriteTo renders the value into w. It implements [io.WriterTo]. The only
// failure mode is the sink rejecting output, reported as a
// [ErrSinkUnavailable] wrap of the sink's own error.
func (r *Renderer) WriteTo(w io.Writer) (int64, error) {
	if r.maxWidth > 0 {
		// Width truncation needs the whole text before anything reaches w.
		var sb strings.Builder
		s := &sink{w: &sb}
		r.render(s)
		out := sb.String()
		if runewidth.StringWidth(out) > r.maxWidth {
			out = runewidth.Truncate(out, r.maxWidth, "...")
		}
		n, err := io.WriteString(w, out)
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrSinkUnavailable, err)
		}
		return int64(n), err
	}
	s := &sink{w: w}
	r.render(s)
	return s.n, s.err
}

// String renders the value into a string. An in-memory sink cannot fail, so
// no error is possible.
func (r *Renderer) String() string {
	var sb strings.Builder
	_, _ = r.WriteTo(&sb)
	return sb.String()
}

func (r *Renderer) render(s *sink) {
	p := &printer{s: s}
	if r.override != nil {
		d := *r.override
		p.override = &d
	}
	p.print(r.v)
}

// Write renders v into w.
func Write(w io.Writer, v any, opts ...Option) error {
	_, err := Render(v, opts...).WriteTo(w)
	return err
}

// Sprint renders v into a string.
func Sprint(v any, opts ...Option) string {
	return Render(v, opts...).String()
}

// --- Dispatch ---

// printer walks one value tree, re-entering print for every nested value so
// shape resolution and delimiter lookup apply at every depth.
type printer struct {
	s        *sink
	override *Delimiters // consumed by the outermost container, if any
}

func (p *printer) print(v any) {
	if v == nil {
		p.s.writeString(markerNil)
		return
	}
	rv := reflect.ValueOf(v)
	for range maxDeref + 1 {
		// A nil indirection is "no value" even when its type carries a
		// textual conversion: calling the conversion could dereference nil.
		switch rv.Kind() {
		case reflect.Pointer, reflect.Interface:
			if rv.IsNil() {
				p.s.writeString(markerNil)
				return
			}
		}
		if s := shapeOf(rv.Type()); s != ShapeUnknown {
			p.printShape(s, rv)
			return
		}
		// Unclassifiable as-is: peel one level of indirection and retry.
		switch rv.Kind() {
		case reflect.Pointer, reflect.Interface:
			rv = rv.Elem()
		default:
			p.s.writeString(markerUnknown)
			return
		}
	}
	p.s.writeString(markerUnknown)
}

func (p *printer) printShape(s Shape, rv reflect.Value) {
	switch s {
	case ShapeBoolean:
		p.printBoolean(rv)
	case ShapeString:
		p.printQuoted(rv)
	case ShapeNative:
		p.printNative(rv)
	case ShapeCallable:
		p.printCallable(rv)
	case ShapeIterable:
		p.printIterable(rv)
	case ShapePair:
		p.printPair(rv)
	case ShapeTuple:
		p.printTuple(rv)
	case ShapeEnum:
		p.printEnum(rv)
	case ShapeOpaque:
		p.printOpaque(rv)
	default:
		p.s.writeString(markerUnknown)
	}
}

// subRender renders a nested value in isolation, with no per-call override.
func subRender(v any) string {
	var sb strings.Builder
	p := &printer{s: &sink{w: &sb}}
	p.print(v)
	return sb.String()
}
