package pprint

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
)

// printBoolean emits the canonical true/false words, regardless of any
// other conversion the type carries.
func (p *printer) printBoolean(rv reflect.Value) {
	if rv.Bool() {
		p.s.writeString("true")
	} else {
		p.s.writeString("false")
	}
}

// printQuoted frames the raw character content in double quotes. Content is
// reproduced verbatim; embedded quotes are not escaped.
func (p *printer) printQuoted(rv reflect.Value) {
	p.s.writeString(`"`)
	p.s.writeString(stringContent(rv))
	p.s.writeString(`"`)
}

func stringContent(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Slice:
		if rv.Type().Elem() == runeType {
			return string(rv.Convert(reflect.TypeOf([]rune(nil))).Interface().([]rune))
		}
		return string(rv.Convert(reflect.TypeOf([]byte(nil))).Interface().([]byte))
	case reflect.Array:
		// Copy out: the operand may be unaddressable and must not be mutated.
		n := rv.Len()
		elems := reflect.MakeSlice(reflect.SliceOf(rv.Type().Elem()), n, n)
		reflect.Copy(elems, rv)
		return stringContent(elems)
	}
	return ""
}

// printNative delegates to the value's own textual conversion, emitted
// verbatim.
func (p *printer) printNative(rv reflect.Value) {
	switch v := rv.Interface().(type) {
	case error:
		p.s.writeString(v.Error())
		return
	case fmt.Stringer:
		p.s.writeString(v.String())
		return
	case encoding.TextMarshaler:
		text, err := v.MarshalText()
		if err != nil {
			// Rendering never fails; a broken conversion degrades to the
			// sentinel marker.
			p.s.writeString(markerUnknown)
			return
		}
		p.s.writeString(string(text))
		return
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		p.s.writeString(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		p.s.writeString(strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32:
		p.s.writeString(strconv.FormatFloat(rv.Float(), 'g', -1, 32))
	case reflect.Float64:
		p.s.writeString(strconv.FormatFloat(rv.Float(), 'g', -1, 64))
	case reflect.Complex64:
		p.s.writeString(strconv.FormatComplex(rv.Complex(), 'g', -1, 64))
	case reflect.Complex128:
		p.s.writeString(strconv.FormatComplex(rv.Complex(), 'g', -1, 128))
	default:
		p.s.writeString(markerUnknown)
	}
}

// printEnum emits the underlying ordinal, never the enumerator's name.
func (p *printer) printEnum(rv reflect.Value) {
	if rv.CanUint() {
		p.s.writeString(strconv.FormatUint(rv.Uint(), 10))
		return
	}
	p.s.writeString(strconv.FormatInt(rv.Int(), 10))
}
