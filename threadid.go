package countnet

import (
	"encoding/binary"
	"runtime"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// goroutineStackBufPool pools the scratch buffer used by goroutineID, the
// same pattern catrate's Limiter uses to pool per-category bookkeeping
// (sync.Pool over a small, fixed-shape struct) to keep the hot path
// allocation-light.
var goroutineStackBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 64)
		return &b
	},
}

// goroutineID returns the calling goroutine's runtime-assigned numeric id,
// parsed out of the header line of runtime.Stack's output. There is no
// supported public API for this; parsing the stack trace header is the
// standard (if inelegant) technique used across the ecosystem by debugging
// and tracing libraries that need a stable per-goroutine identity.
func goroutineID() uint64 {
	bufPtr := goroutineStackBufPool.Get().(*[]byte)
	defer goroutineStackBufPool.Put(bufPtr)

	buf := *bufPtr
	for {
		n := runtime.Stack(buf, false)
		if n < len(buf) {
			buf = buf[:n]
			break
		}
		buf = make([]byte, len(buf)*2)
	}
	*bufPtr = buf

	const prefix = "goroutine "
	if len(buf) > len(prefix) {
		buf = buf[len(prefix):]
	}

	var id uint64
	for _, c := range buf {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}

// entryWire maps a thread (goroutine) identity to an entry wire in
// 0..width, via a commodity non-cryptographic hash. Tying the entry wire
// to thread identity, rather than to a shared round-robin counter,
// stabilizes which cache lines a given goroutine first touches on
// repeated calls, reducing ping-pong between cores. Uniform distribution
// is not required for correctness (only for performance): the step
// property holds for any assignment of wires to threads.
func entryWire(id uint64, width int) int {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], id)
	h := xxhash.Sum64(b[:])
	return int(h & uint64(width-1))
}
