//go:build !unix

package tui

import (
	"io"
	"os"
)

// chanReader pumps stdin from a goroutine into a buffered channel so the
// game loop can drain it without blocking. The goroutine may stay parked in
// Read after close; it exits with the process.
type chanReader struct {
	ch   chan byte
	done chan struct{}
	eof  chan struct{}
}

func newKeyReader(f *os.File) (keyReader, error) {
	r := &chanReader{
		ch:   make(chan byte, 64),
		done: make(chan struct{}),
		eof:  make(chan struct{}),
	}
	go r.pump(f)
	return r, nil
}

func (r *chanReader) pump(f *os.File) {
	defer close(r.eof)
	buf := make([]byte, 16)
	for {
		n, err := f.Read(buf)
		for _, b := range buf[:n] {
			select {
			case r.ch <- b:
			case <-r.done:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

func (r *chanReader) readAvailable(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		select {
		case b := <-r.ch:
			p[n] = b
			n++
		default:
			if n == 0 {
				select {
				case <-r.eof:
					if len(r.ch) == 0 {
						return 0, io.EOF
					}
				default:
				}
			}
			return n, nil
		}
	}
	return n, nil
}

func (r *chanReader) close() {
	close(r.done)
}
