package pprint

import "reflect"

// Pair is a two-element product that renders as (first,second).
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf builds a Pair with inferred component types.
func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Pair returns the two components. It implements [Paired].
func (p Pair[A, B]) Pair() (any, any) { return p.First, p.Second }

// Tuple is a fixed positional product that renders as (e1,e2,...). The
// element slice is private so a Tuple is not itself traversable.
type Tuple struct {
	elems []any
}

// NewTuple builds a Tuple from the given components in positional order.
func NewTuple(elems ...any) Tuple { return Tuple{elems: elems} }

// Tuple returns the components in positional order. It implements [Tupled].
func (t Tuple) Tuple() []any { return t.elems }

func (p *printer) printPair(rv reflect.Value) {
	first, second := rv.Interface().(Paired).Pair()
	p.s.writeString("(")
	p.print(first)
	p.s.writeString(",")
	p.print(second)
	p.s.writeString(")")
}

func (p *printer) printTuple(rv reflect.Value) {
	p.s.writeString("(")
	for i, e := range rv.Interface().(Tupled).Tuple() {
		if i > 0 {
			p.s.writeString(",")
		}
		p.print(e)
	}
	p.s.writeString(")")
}
