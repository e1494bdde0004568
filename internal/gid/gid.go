// Package gid identifies the calling goroutine, the Go analogue of the
// pthread_self()/pthread_equal pairing that the original thread pool
// (cacti.c's map_thread_to_index) used to let a worker discover which slot
// of served_actor belongs to it. Go exposes no public goroutine identity,
// so this parses the numeric id out of the runtime's own stack trace
// header, exactly as the small number of goroutine-local-storage shims in
// the wild do. It is deliberately minimal: the runtime calls it once per
// message a worker dispatches and once per Self() call.
package gid

import (
	"bytes"
	"runtime"
	"strconv"
)

// Current returns the id of the calling goroutine.
func Current() uint64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	buf = buf[:n]

	// Header looks like "goroutine 18 [running]:".
	const prefix = "goroutine "
	start := bytes.Index(buf, []byte(prefix))
	if start < 0 {
		return 0
	}
	start += len(prefix)
	end := bytes.IndexByte(buf[start:], ' ')
	if end < 0 {
		return 0
	}
	id, err := strconv.ParseUint(string(buf[start:start+end]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
