// Package pprint renders a value of any shape as deterministic text.
//
// Every value is classified into exactly one rendering shape by a fixed,
// priority-ordered rule table, then rendered by the strategy bound to that
// shape. Classification is driven purely by capabilities: what the type can
// do (convert itself to text, be traversed, be called), never by its name.
// The central entry points are [Render], [Write], and [Sprint].
//
// # Shape Resolution
//
// Capabilities overlap (a type can satisfy fmt.Stringer and still be a
// function), so resolution is first-match-wins over a strict order:
//
//  1. boolean → canonical "true" / "false"
//  2. string-like → content framed in double quotes, no escaping
//  3. native text → the value's own conversion (error, [fmt.Stringer],
//     [encoding.TextMarshaler], predeclared numerics), unless the type is
//     also invocable
//  4. callable → "<callable (func|object|bound|reflect)>", never invoked
//  5. iterable → opener + elements + closer (slices, arrays, maps,
//     iter.Seq-shaped functions)
//  6. pair → "(first,second)" via [Paired]
//  7. tuple → "(e1,e2,...)" via [Tupled]
//  8. enum → the ordinal of a defined integer type
//  9. opaque → "<struct>", "<chan>", or "<nil>"
//  10. unknown → "<unknown>", the non-failing terminal fallback
//
// Booleans and strings outrank native text because both have a native
// conversion but need different surface syntax. Callables outrank native
// text so that a function type with an incidental String method still
// renders as a callable. Use [ShapeOf] to see how a value will classify.
//
// # Recursion
//
// Container strategies re-enter the full pipeline for every element, so
// classification and delimiter lookup apply at every nesting depth:
//
//	pprint.Sprint([]any{1, "hi", true})     // {1,"hi",true}
//	pprint.Sprint(pprint.PairOf(1, 2))      // (1,2)
//	pprint.Sprint(pprint.NewTuple("a", 42)) // ("a",42)
//
// Maps render entries as (key,value) pairs sorted by rendered key text, so
// output is deterministic despite Go's randomized map iteration.
//
// # Delimiters
//
// Container output is framed by a [Delimiters] triple, default "{", "}",
// ",". Three override levels exist, strongest first:
//
//   - [WithDelimiters]: one call, outermost container only
//   - [Delimited]: a container type declaring its own triple
//   - [RegisterDelimiters]: process-wide, per container type
//
// Process-wide registrations can also be loaded from a YAML document with
// [LoadDelimiters] and dumped with [WriteDelimiters]. Conflicting
// registrations are not an error: the last one wins.
//
// # Errors
//
// Rendering itself cannot fail; every value maps to a shape and the unknown
// fallback is total. The only error surface is the sink: write failures are
// reported wrapped in [ErrSinkUnavailable]. Invalid YAML passed to
// [LoadDelimiters] is reported as [ErrInvalidDelimiters].
//
// # Concurrency
//
// A render call is a plain synchronous call tree over borrowed data.
// Independent calls on disjoint sinks may run concurrently; delimiter
// registration is safe for concurrent use but intended for setup time.
package pprint
