package main

import (
	"errors"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/untrust"
)

// Profiling harness for the zero-allocation claim: runs a parse loop
// under a 1-byte mem profile rate and writes mem.prof. Any allocation
// attributed to the Reader hot path shows up immediately.
func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	wire := make([]byte, 0, 6*1024)
	for i := 0; i < 1024; i++ {
		wire = append(wire, byte(i), 4, 0xde, 0xad, 0xbe, 0xef)
	}
	in := untrust.NewInput(wire)
	errIncomplete := errors.New("incomplete")

	for i := 0; i < 10000; i++ {
		_, err := untrust.ReadAll(in, errIncomplete, func(r *untrust.Reader) (int, error) {
			count := 0
			for !r.AtEnd() {
				if err := r.Skip(2); err != nil {
					return 0, err
				}
				if err := r.Skip(4); err != nil {
					return 0, err
				}
				count++
			}
			return count, nil
		})
		if err != nil {
			log.Fatal(err)
		}
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
