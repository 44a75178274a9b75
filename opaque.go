package pprint

import "reflect"

// Fixed markers for shapes with no defined textual form.
const (
	markerStruct  = "<struct>"
	markerChan    = "<chan>"
	markerNil     = "<nil>"
	markerUnknown = "<unknown>"
)

// printOpaque distinguishes aggregate, channel, and no-value shapes. It
// never inspects fields.
func (p *printer) printOpaque(rv reflect.Value) {
	switch rv.Kind() {
	case reflect.Struct:
		p.s.writeString(markerStruct)
	case reflect.Chan:
		p.s.writeString(markerChan)
	default:
		p.s.writeString(markerNil)
	}
}
