package countio

import (
	"io"
)

// WriteSeeker counts the bytes written through it and the bytes skipped
// over by advancing the cursor without writing.
type WriteSeeker struct {
	w io.WriteSeeker
	n int64
	s int64
}

func NewWriteSeeker(w io.WriteSeeker) *WriteSeeker {
	return &WriteSeeker{
		w: w,
	}
}

func (cw *WriteSeeker) Write(p []byte) (n int, err error) {
	n, err = cw.w.Write(p)
	cw.n += int64(n)
	return
}

// Skip advances the cursor n bytes past the current position.
func (cw *WriteSeeker) Skip(n int64) error {
	if _, err := cw.w.Seek(n, io.SeekCurrent); err != nil {
		return err
	}
	cw.s += n
	return nil
}

func (cw *WriteSeeker) BytesWritten() int64 {
	return cw.n
}

func (cw *WriteSeeker) BytesSkipped() int64 {
	return cw.s
}

// Offset is the logical position reached by writes and skips.
func (cw *WriteSeeker) Offset() int64 {
	return cw.n + cw.s
}
