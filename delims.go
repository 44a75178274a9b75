package pprint

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Delimiters frame a rendered container.
type Delimiters struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
	Sep   string `yaml:"sep"`
}

// DefaultDelimiters frame containers with no more specific registration.
var DefaultDelimiters = Delimiters{Open: "{", Close: "}", Sep: ","}

var (
	delimMu    sync.RWMutex
	delimTypes = map[reflect.Type]Delimiters{}
	delimNames = map[string]Delimiters{}
)

// RegisterDelimiters associates delimiters with container type T
// process-wide. Re-registering replaces the previous entry: last
// registration wins, silently. Intended for setup, before concurrent
// rendering starts.
func RegisterDelimiters[T any](opener, closer, sep string) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	delimMu.Lock()
	delimTypes[t] = Delimiters{Open: opener, Close: closer, Sep: sep}
	delimMu.Unlock()
}

// LookupDelimiters reports the registered delimiters for container type T,
// if any. Name-keyed entries loaded via [LoadDelimiters] are consulted
// after explicit type registrations.
func LookupDelimiters[T any]() (Delimiters, bool) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	delimMu.RLock()
	defer delimMu.RUnlock()
	if d, ok := delimTypes[t]; ok {
		return d, true
	}
	d, ok := delimNames[t.String()]
	return d, ok
}

// DelimiterEntry is one registration in a registry snapshot.
type DelimiterEntry struct {
	// Type is the registered container type. Nil for name-keyed entries
	// loaded from config.
	Type reflect.Type
	// Name is the type name the entry is keyed by.
	Name string
	// Delims is the associated delimiter triple.
	Delims Delimiters
}

// DelimiterEntries returns a snapshot of all registrations for diagnostics,
// sorted by name.
func DelimiterEntries() []DelimiterEntry {
	delimMu.RLock()
	entries := make([]DelimiterEntry, 0, len(delimTypes)+len(delimNames))
	for t, d := range delimTypes {
		entries = append(entries, DelimiterEntry{Type: t, Name: t.String(), Delims: d})
	}
	for n, d := range delimNames {
		entries = append(entries, DelimiterEntry{Name: n, Delims: d})
	}
	delimMu.RUnlock()
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// ResetDelimiters clears all registrations. Mainly for tests.
func ResetDelimiters() {
	delimMu.Lock()
	delimTypes = map[reflect.Type]Delimiters{}
	delimNames = map[string]Delimiters{}
	delimMu.Unlock()
}

// LoadDelimiters reads a YAML document mapping type names, as printed by
// reflect.Type.String (e.g. "[]int" or "mypkg.List"), to delimiter triples
// and registers each entry. Later entries and later loads win.
func LoadDelimiters(r io.Reader) error {
	var doc map[string]Delimiters
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDelimiters, err)
	}
	delimMu.Lock()
	for name, d := range doc {
		delimNames[name] = d
	}
	delimMu.Unlock()
	return nil
}

// WriteDelimiters dumps the current registrations as YAML keyed by type
// name. The output round-trips through [LoadDelimiters].
func WriteDelimiters(w io.Writer) error {
	doc := make(map[string]Delimiters)
	for _, e := range DelimiterEntries() {
		doc[e.Name] = e.Delims
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// delimsFor resolves the delimiters for one container: per-call override
// first (outermost container only), then the type's own Delimited
// declaration, then registry entries, then the default.
func (p *printer) delimsFor(rv reflect.Value) Delimiters {
	if p.override != nil {
		d := *p.override
		p.override = nil
		return d
	}
	if d, ok := rv.Interface().(Delimited); ok {
		opener, closer, sep := d.Delims()
		return Delimiters{Open: opener, Close: closer, Sep: sep}
	}
	t := rv.Type()
	delimMu.RLock()
	defer delimMu.RUnlock()
	if d, ok := delimTypes[t]; ok {
		return d
	}
	if d, ok := delimNames[t.String()]; ok {
		return d
	}
	return DefaultDelimiters
}
