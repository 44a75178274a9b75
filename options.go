package pprint

// Option adjusts a single render call.
type Option func(*Renderer)

// WithDelimiters overrides the delimiter triple for the outermost container
// encountered during this call only. The process-wide registry is
// untouched, and nested containers resolve delimiters normally.
func WithDelimiters(opener, closer, sep string) Option {
	return func(r *Renderer) {
		r.override = &Delimiters{Open: opener, Close: closer, Sep: sep}
	}
}

// WithMaxWidth truncates the rendered text to at most width display
// columns, eliding with "...". Width is measured in terminal cells, not
// bytes, so wide characters count double.
func WithMaxWidth(width int) Option {
	return func(r *Renderer) {
		r.maxWidth = width
	}
}
