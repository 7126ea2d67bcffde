package untrust

import "errors"

// ErrEndOfInput is returned by any read that needs more bytes than
// remain. It is the only error this package produces; higher layers
// attach their own context.
var ErrEndOfInput = errors.New("untrust: end of input")

// Reader is a read-only, forward-only cursor over the data in an Input.
//
// Its remaining window is always a suffix of the Input it was built
// from: every successful read shrinks it, no operation ever grows or
// rewinds it, and a failed read leaves it untouched. A Reader belongs
// to exactly one call stack at a time and must not be shared across
// goroutines.
//
// Prefer ReadAll or ReadAllOptional over NewReader in consumer code;
// direct construction bypasses the fully-consumed check.
type Reader struct {
	input Input
}

// NewReader constructs a Reader positioned at the start of in.
func NewReader(in Input) *Reader {
	return &Reader{input: in}
}

// AtEnd reports whether zero bytes remain.
func (r *Reader) AtEnd() bool { return r.input.IsEmpty() }

// Len returns the number of unread bytes.
func (r *Reader) Len() int { return r.input.Len() }

// Peek reports whether at least one byte remains and that byte equals
// b. It never consumes.
func (r *Reader) Peek(b byte) bool {
	first, ok := r.input.First()
	return ok && first == b
}

// ReadByte consumes and returns the next byte, or ErrEndOfInput if
// none remain. On failure the Reader is unchanged.
func (r *Reader) ReadByte() (byte, error) {
	b, rest, ok := r.input.SplitFirst()
	if !ok {
		return 0, ErrEndOfInput
	}
	r.input = rest
	return b, nil
}

// ReadBytes consumes exactly n bytes and returns them as an Input
// aliasing the original buffer. If fewer than n bytes remain (or n is
// negative) it returns ErrEndOfInput and consumes nothing. This is the
// all-or-nothing primitive higher-level field extraction builds on.
func (r *Reader) ReadBytes(n int) (Input, error) {
	before, after, ok := r.input.SplitAt(n)
	if !ok {
		return Input{}, ErrEndOfInput
	}
	r.input = after
	return before, nil
}

// ReadBytesToEnd consumes all remaining bytes and returns them as an
// Input. It never fails; at end it returns an empty Input. Reading to
// the end is the explicit opt-out of the no-unread-bytes guarantee
// that ReadAll enforces.
func (r *Reader) ReadBytesToEnd() Input {
	rest := r.input
	r.input = Input{}
	return rest
}

// Skip consumes n bytes, discarding them. It returns ErrEndOfInput and
// consumes nothing if fewer than n remain.
func (r *Reader) Skip(n int) error {
	_, err := r.ReadBytes(n)
	return err
}

// SkipToEnd consumes any remaining bytes. Use it to deliberately
// ignore trailing content without tripping the incomplete-read error
// from ReadAll.
func (r *Reader) SkipToEnd() {
	_ = r.ReadBytesToEnd()
}
