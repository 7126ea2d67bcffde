// Package untrust provides safe, zero-panic, zero-copy parsing of
// untrusted binary input.
//
// The package is built around two types: Input, an immutable read-only
// window over a caller-owned byte buffer, and Reader, a forward-only
// cursor over an Input. Parsers are written recursive-descent style:
// each parsing function takes a *Reader, consumes the bytes it
// understands, and returns a value or an error. The top-level entry
// points wrap the buffer in an Input and hand it to ReadAll (or
// ReadAllOptional), which rejects input the parser did not fully
// consume. This pattern makes it hard to accidentally read a byte
// twice or silently ignore trailing garbage.
//
// No method in this package panics, no method copies buffer data, and
// every Input returned by a read aliases the original buffer. Those
// guarantees hold only while all processing goes through the
// Input/Reader API; AsSliceLessSafe is the single escape hatch for
// interop with code that needs a raw slice, and call sites using it
// forfeit the guarantees and should be auditable by searching for that
// one identifier.
//
// The package works best for formats with a small fixed amount of
// lookahead and no backtracking, such as ASN.1 DER, TLS records and
// TCP/IP headers. Streaming input is out of scope: the full buffer
// must be available up front.
package untrust

import "bytes"

// Input is a read-only view over a caller-owned byte buffer.
//
// An Input is a plain value wrapping a slice header; copying one never
// copies or mutates the underlying bytes. It exposes no mutators, so
// any number of Inputs may alias the same buffer. The caller must keep
// the source buffer alive and unmodified for as long as any Input over
// it is in use.
type Input struct {
	value []byte
}

// NewInput wraps data in an Input.
//
// The position arithmetic in Reader relies on i+1 > i for every valid
// index i, which holds for any Go slice since its length is bounded by
// the maximum int.
func NewInput(data []byte) Input {
	return Input{value: data}
}

// First returns the first byte of the input, or ok=false if it is empty.
func (in Input) First() (b byte, ok bool) {
	if len(in.value) == 0 {
		return 0, false
	}
	return in.value[0], true
}

// IsEmpty reports whether the input contains no bytes.
func (in Input) IsEmpty() bool { return len(in.value) == 0 }

// Len returns the number of bytes in the input.
func (in Input) Len() int { return len(in.value) }

// SplitFirst returns the first byte and an Input over the rest, or
// ok=false if the input is empty. The receiver is left unchanged.
func (in Input) SplitFirst() (b byte, rest Input, ok bool) {
	if len(in.value) == 0 {
		return 0, Input{}, false
	}
	return in.value[0], Input{value: in.value[1:]}, true
}

// SplitAt splits the input into bytes [0,i) and [i,len). Out-of-range
// requests, including negative i, fail closed with ok=false; nothing
// is clamped and nothing panics.
func (in Input) SplitAt(i int) (before, after Input, ok bool) {
	if i < 0 || i > len(in.value) {
		return Input{}, Input{}, false
	}
	return Input{value: in.value[:i]}, Input{value: in.value[i:]}, true
}

// Equal reports whether two Inputs hold equal bytes. Equality is
// structural: where each view came from does not matter.
func (in Input) Equal(other Input) bool {
	return bytes.Equal(in.value, other.value)
}

// EqualBytes reports whether the input's bytes equal b.
func (in Input) EqualBytes(b []byte) bool {
	return bytes.Equal(in.value, b)
}

// AsSliceLessSafe returns the underlying bytes directly.
//
// This is the only operation that exposes raw memory. Code that uses
// it steps outside the Input/Reader framework and loses the no-panic
// and no-double-read guarantees; keep such call sites at the edges
// where interop with slice-based code is unavoidable.
func (in Input) AsSliceLessSafe() []byte { return in.value }
