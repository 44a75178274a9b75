package pprint

import "reflect"

// Shape is the rendering classification of a value. Every value resolves to
// exactly one Shape. Shapes are listed in resolution priority order, except
// ShapeUnknown, which is the zero value and the terminal fallback.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeBoolean
	ShapeString
	ShapeNative
	ShapeCallable
	ShapeIterable
	ShapePair
	ShapeTuple
	ShapeEnum
	ShapeOpaque
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeBoolean:
		return "boolean"
	case ShapeString:
		return "string"
	case ShapeNative:
		return "native"
	case ShapeCallable:
		return "callable"
	case ShapeIterable:
		return "iterable"
	case ShapePair:
		return "pair"
	case ShapeTuple:
		return "tuple"
	case ShapeEnum:
		return "enum"
	case ShapeOpaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// ShapeOf reports how v would be rendered. It follows the same indirection
// rules as rendering: pointers and interfaces are peeled until a
// classifiable value appears, and nil indirections count as "no value"
// (opaque).
func ShapeOf(v any) Shape {
	if v == nil {
		return ShapeOpaque
	}
	rv := reflect.ValueOf(v)
	for range maxDeref + 1 {
		switch rv.Kind() {
		case reflect.Pointer, reflect.Interface:
			if rv.IsNil() {
				return ShapeOpaque
			}
		}
		if s := shapeOf(rv.Type()); s != ShapeUnknown {
			return s
		}
		switch rv.Kind() {
		case reflect.Pointer, reflect.Interface:
			rv = rv.Elem()
		default:
			return ShapeUnknown
		}
	}
	return ShapeUnknown
}
