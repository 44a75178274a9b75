package pprint

import (
	"fmt"
	"io"
)

// sink wraps the caller's io.Writer and latches the first write error so
// strategies can append unconditionally. The byte count feeds io.WriterTo.
type sink struct {
	w   io.Writer
	n   int64
	err error
}

func (s *sink) writeString(str string) {
	if s.err != nil {
		return
	}
	n, err := io.WriteString(s.w, str)
	s.n += int64(n)
	if err != nil {
		s.err = fmt.Errorf("%w: %w", ErrSinkUnavailable, err)
	}
}
