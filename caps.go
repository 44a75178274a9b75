package pprint

import (
	"encoding"
	"fmt"
	"reflect"
)

// capSet is the capability tuple computed once per type. Predicates are not
// disjoint; the resolver's rule order picks the single winner.
type capSet struct {
	nativeText  bool
	boolean     bool
	stringLike  bool
	traversable bool
	pair        bool
	tuple       bool
	enumerated  bool
	invocable   bool
	opaque      bool
}

var (
	errType           = reflect.TypeOf((*error)(nil)).Elem()
	stringerType      = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	pairedType        = reflect.TypeOf((*Paired)(nil)).Elem()
	tupledType        = reflect.TypeOf((*Tupled)(nil)).Elem()
	invokerType       = reflect.TypeOf((*Invoker)(nil)).Elem()
	boundType         = reflect.TypeOf(BoundFunc{})
	reflectValueType  = reflect.TypeOf(reflect.Value{})
	byteType          = reflect.TypeOf(byte(0))
	runeType          = reflect.TypeOf(rune(0))
)

func capsOf(t reflect.Type) capSet {
	return capSet{
		nativeText:  hasNativeText(t),
		boolean:     t.Kind() == reflect.Bool,
		stringLike:  isStringLike(t),
		traversable: isTraversable(t),
		pair:        t.Implements(pairedType),
		tuple:       t.Implements(tupledType),
		enumerated:  isEnumerated(t),
		invocable:   isInvocable(t),
		opaque:      isOpaqueAggregate(t),
	}
}

// hasNativeText reports whether t carries its own textual conversion: an
// error, fmt.Stringer, or encoding.TextMarshaler implementation, or a
// predeclared numeric kind. Defined integer types are excluded; they
// classify as enumerations and render by ordinal.
func hasNativeText(t reflect.Type) bool {
	if t.Implements(errType) || t.Implements(stringerType) || t.Implements(textMarshalerType) {
		return true
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr:
		return t.PkgPath() == ""
	}
	return false
}

// isStringLike covers strings and byte/rune sequences, fixed-size or not.
func isStringLike(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.String:
		return true
	case reflect.Slice, reflect.Array:
		return t.Elem() == byteType || t.Elem() == runeType
	}
	return false
}

// isTraversable covers the shapes that expose sequential traversal: slices,
// arrays, maps, and iterator functions. Seq-shaped functions are
// traversable, not invocable.
func isTraversable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	case reflect.Func:
		return isSeqFunc(t)
	}
	return false
}

// isSeqFunc reports whether t has the shape of iter.Seq[V] or
// iter.Seq2[K, V]: func(yield func(...) bool).
func isSeqFunc(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return false
	}
	y := t.In(0)
	return y.Kind() == reflect.Func &&
		(y.NumIn() == 1 || y.NumIn() == 2) &&
		!y.IsVariadic() &&
		y.NumOut() == 1 &&
		y.Out(0).Kind() == reflect.Bool
}

// isEnumerated reports whether t is a defined integer type, the closest Go
// relative of an enum. Predeclared integer kinds render as native text
// instead.
func isEnumerated(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr:
		return t.PkgPath() != ""
	}
	return false
}

// isInvocable covers plain functions, Invoker implementations, bound
// partial applications, and reflect.Value, Go's library-native callable
// wrapper. reflect.Value also satisfies fmt.Stringer, which is exactly the
// incidental-conversion case the resolver guards against.
func isInvocable(t reflect.Type) bool {
	if t.Kind() == reflect.Func {
		return !isSeqFunc(t)
	}
	return t.Implements(invokerType) || t == boundType || t == reflectValueType
}

// isOpaqueAggregate covers aggregates with no defined textual form. The
// "no value" cases (nil interfaces, nil pointers) are handled before
// classification.
func isOpaqueAggregate(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Struct, reflect.Chan:
		return true
	}
	return false
}
