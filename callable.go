package pprint

import "reflect"

// BoundFunc is a partial application: a function bundled with leading
// arguments. It renders as a bound callable; the renderer never invokes it.
type BoundFunc struct {
	fn   any
	args []any
}

// Bind binds leading arguments to fn. The returned BoundFunc implements
// [Invoker].
func Bind(fn any, args ...any) BoundFunc {
	return BoundFunc{fn: fn, args: args}
}

// Invoke calls the bound function with the bound arguments followed by
// args. A single result is returned as-is, multiple results as []any.
func (b BoundFunc) Invoke(args ...any) any {
	fn := reflect.ValueOf(b.fn)
	in := make([]reflect.Value, 0, len(b.args)+len(args))
	for _, a := range b.args {
		in = append(in, reflect.ValueOf(a))
	}
	for _, a := range args {
		in = append(in, reflect.ValueOf(a))
	}
	out := fn.Call(in)
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0].Interface()
	default:
		results := make([]any, len(out))
		for i, o := range out {
			results[i] = o.Interface()
		}
		return results
	}
}

// printCallable emits a bracketed marker naming the callable sub-kind. The
// callable itself is never invoked.
func (p *printer) printCallable(rv reflect.Value) {
	p.s.writeString("<callable ")
	p.s.writeString(callableKind(rv))
	p.s.writeString(">")
}

func callableKind(rv reflect.Value) string {
	if rv.Kind() == reflect.Func {
		return "(func)"
	}
	switch rv.Interface().(type) {
	case BoundFunc, *BoundFunc:
		return "(bound)"
	case reflect.Value:
		return "(reflect)"
	default:
		return "(object)"
	}
}
