package pprint

import (
	"reflect"
	"sync"
)

// rule binds one predicate combination to a shape. Rules are evaluated in
// order and the first match wins; that ordering, not the predicates
// themselves, is what guarantees exactly one strategy per value.
type rule struct {
	matches func(capSet) bool
	shape   Shape
}

// rules is the resolution order. Boolean and string-like preempt native
// text because both have a native conversion but need different surface
// syntax. Callable preempts native text so that types whose textual
// conversion is incidental to being invocable still render as callables.
// The remaining shapes are ordered by specificity.
var rules = []rule{
	{func(c capSet) bool { return c.boolean }, ShapeBoolean},
	{func(c capSet) bool { return c.stringLike }, ShapeString},
	{func(c capSet) bool { return c.nativeText && !c.invocable }, ShapeNative},
	{func(c capSet) bool { return c.invocable }, ShapeCallable},
	{func(c capSet) bool { return c.traversable }, ShapeIterable},
	{func(c capSet) bool { return c.pair }, ShapePair},
	{func(c capSet) bool { return c.tuple }, ShapeTuple},
	{func(c capSet) bool { return c.enumerated }, ShapeEnum},
	{func(c capSet) bool { return c.opaque }, ShapeOpaque},
}

// shapeCache memoizes resolution per type. The capability set is a pure
// function of the type, so the shape is too.
var shapeCache sync.Map // map[reflect.Type]Shape

func shapeOf(t reflect.Type) Shape {
	if s, ok := shapeCache.Load(t); ok {
		return s.(Shape)
	}
	s := resolve(capsOf(t))
	shapeCache.Store(t, s)
	return s
}

func resolve(c capSet) Shape {
	for _, r := range rules {
		if r.matches(c) {
			return r.shape
		}
	}
	return ShapeUnknown
}
