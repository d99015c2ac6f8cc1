package rng_test

import (
	"encoding/binary"
	"io"
)

// uint32CounterReader emits an infinite stream of big-endian uint32 values: 0,1,2,3,...
type uint32CounterReader struct {
	next uint32
	buf  [4]byte
	off  int
}

func (r *uint32CounterReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if r.off == 0 {
			binary.BigEndian.PutUint32(r.buf[:], r.next)
			r.next++
		}
		copied := copy(p[n:], r.buf[r.off:])
		n += copied
		r.off = (r.off + copied) % 4
	}
	return n, nil
}

type scriptedReader struct {
	chunks [][]byte
	i      int
	off    int
}

func (r *scriptedReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) && r.i < len(r.chunks) {
		c := r.chunks[r.i]
		if r.off >= len(c) {
			r.i++
			r.off = 0
			continue
		}
		copied := copy(p[n:], c[r.off:])
		n += copied
		r.off += copied
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

type xorshift32 struct {
	x uint32
}

func (r *xorshift32) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i++ {
		r.x ^= r.x << 13
		r.x ^= r.x >> 17
		r.x ^= r.x << 5
		p[i] = byte(r.x >> 24)
	}
	return len(p), nil
}

// byteCycleReader returns deterministic bytes cycling through 0..255.
// It is NOT safe for concurrent use without a lock.
type byteCycleReader struct {
	b byte
}

func (r *byteCycleReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.b
		r.b++
	}
	return len(p), nil
}
