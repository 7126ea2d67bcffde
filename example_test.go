package untrust_test

import (
	"errors"
	"fmt"

	"github.com/rawbytedev/untrust"
)

var errBadRecord = errors.New("bad record")

// A record here is a single length byte followed by that many bytes of
// payload, the shape of the simplest DER-style constructs.
func readRecord(r *untrust.Reader) (untrust.Input, error) {
	n, err := r.ReadByte()
	if err != nil {
		return untrust.Input{}, err
	}
	return r.ReadBytes(int(n))
}

func ExampleReadAll() {
	wire := []byte{0x05, 'h', 'e', 'l', 'l', 'o'}
	payload, err := untrust.ReadAll(untrust.NewInput(wire), errBadRecord, readRecord)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s\n", payload.AsSliceLessSafe())
	// Output: hello
}

func ExampleReadAll_trailingBytes() {
	// one stray byte after the record means the grammar did not match
	// the whole input, so the parsed value is discarded
	wire := []byte{0x05, 'h', 'e', 'l', 'l', 'o', 0x00}
	_, err := untrust.ReadAll(untrust.NewInput(wire), errBadRecord, readRecord)
	fmt.Println(err)
	// Output: bad record
}

func ExampleReadAllOptional() {
	parse := func(in *untrust.Input) (byte, error) {
		return untrust.ReadAllOptional(in, errBadRecord, func(r *untrust.Reader) (byte, error) {
			if r == nil {
				return 0xff, nil // field absent, use the default
			}
			return r.ReadByte()
		})
	}

	present := untrust.NewInput([]byte{0x2a})
	v, _ := parse(&present)
	fmt.Println(v)

	v, _ = parse(nil)
	fmt.Println(v)
	// Output:
	// 42
	// 255
}

func ExampleReadPartial() {
	wire := []byte{0x02, 0xaa, 0xbb, 0x99}
	r := untrust.NewReader(untrust.NewInput(wire))

	raw, payload, err := untrust.ReadPartial(r, readRecord)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("record: %x payload: %x remaining: %d\n",
		raw.AsSliceLessSafe(), payload.AsSliceLessSafe(), r.Len())
	// Output: record: 02aabb payload: aabb remaining: 1
}
