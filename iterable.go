package pprint

import (
	"reflect"
	"sort"
)

// printIterable emits opener, the elements rendered through the full
// pipeline separated by the separator, then closer. An empty container
// emits opener+closer with no separator.
func (p *printer) printIterable(rv reflect.Value) {
	d := p.delimsFor(rv)
	switch rv.Kind() {
	case reflect.Map:
		p.printMap(rv, d)
	case reflect.Func:
		p.printSeq(rv, d)
	default:
		p.printList(rv, d)
	}
}

func (p *printer) printList(rv reflect.Value, d Delimiters) {
	p.s.writeString(d.Open)
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			p.s.writeString(d.Sep)
		}
		p.print(rv.Index(i).Interface())
	}
	p.s.writeString(d.Close)
}

// printMap renders entries as (key,value) pairs ordered by rendered key
// text, so equal maps render equally despite Go's randomized iteration
// order.
func (p *printer) printMap(rv reflect.Value, d Delimiters) {
	type entry struct {
		key string
		val reflect.Value
	}
	entries := make([]entry, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		entries = append(entries, entry{key: subRender(k.Interface()), val: rv.MapIndex(k)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	p.s.writeString(d.Open)
	for i, e := range entries {
		if i > 0 {
			p.s.writeString(d.Sep)
		}
		p.s.writeString("(")
		p.s.writeString(e.key)
		p.s.writeString(",")
		p.print(e.val.Interface())
		p.s.writeString(")")
	}
	p.s.writeString(d.Close)
}

// printSeq traverses an iterator function exactly once, in its own yield
// order. Two-argument iterators (iter.Seq2 shapes) render entries as (k,v)
// pairs. Traversal stops early once the sink has failed. A nil iterator is
// the empty container, like a nil slice or map.
func (p *printer) printSeq(rv reflect.Value, d Delimiters) {
	p.s.writeString(d.Open)
	if rv.IsNil() {
		p.s.writeString(d.Close)
		return
	}
	yieldType := rv.Type().In(0)
	first := true
	yield := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
		if !first {
			p.s.writeString(d.Sep)
		}
		first = false
		if len(args) == 2 {
			p.s.writeString("(")
			p.print(args[0].Interface())
			p.s.writeString(",")
			p.print(args[1].Interface())
			p.s.writeString(")")
		} else {
			p.print(args[0].Interface())
		}
		// The declared yield result may be a defined bool type.
		more := reflect.ValueOf(p.s.err == nil).Convert(yieldType.Out(0))
		return []reflect.Value{more}
	})
	rv.Call([]reflect.Value{yield})
	p.s.writeString(d.Close)
}
