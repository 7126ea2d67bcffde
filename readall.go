package untrust

// ReadAll runs read with a fresh Reader over in and requires it to
// consume every byte.
//
// If read fails, its error propagates unchanged. If read succeeds but
// leaves bytes unread, the result is discarded and incompleteRead is
// returned: leftover bytes mean the grammar did not match the whole
// input, which this package treats the same as truncation. Only a
// callback that succeeds exactly at end-of-input yields its value.
func ReadAll[V any](in Input, incompleteRead error, read func(*Reader) (V, error)) (V, error) {
	r := NewReader(in)
	v, err := read(r)
	if err != nil {
		var zero V
		return zero, err
	}
	if !r.AtEnd() {
		var zero V
		return zero, incompleteRead
	}
	return v, nil
}

// ReadAllOptional behaves like ReadAll when in is non-nil. When in is
// nil, read is invoked with a nil Reader and no consumption check
// runs, since there is nothing to consume. This lets one parsing
// function handle "field present" and "field absent" uniformly.
func ReadAllOptional[V any](in *Input, incompleteRead error, read func(*Reader) (V, error)) (V, error) {
	if in == nil {
		return read(nil)
	}
	return ReadAll(*in, incompleteRead, read)
}

// ReadPartial runs read against r and, on success, returns both read's
// value and an Input covering exactly the bytes that invocation
// consumed. The consumed range is recovered from the length delta, so
// no bytes are copied or re-read.
func ReadPartial[V any](r *Reader, read func(*Reader) (V, error)) (Input, V, error) {
	original := r.input
	v, err := read(r)
	if err != nil {
		var zero V
		return Input{}, zero, err
	}
	consumed, _, _ := original.SplitAt(original.Len() - r.input.Len())
	return consumed, v, nil
}
