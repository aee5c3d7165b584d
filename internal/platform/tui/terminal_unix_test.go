//go:build unix

package tui

import (
	"errors"
	"io"
	"os"
	"testing"
)

func newPipeReader(t *testing.T) (*pollReader, *os.File, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	return &pollReader{fd: int(r.Fd())}, r, w
}

func TestPollReaderNoInput(t *testing.T) {
	pr, _, _ := newPipeReader(t)

	n, err := pr.readAvailable(make([]byte, 8))
	if n != 0 || err != nil {
		t.Errorf("readAvailable() = (%d, %v), expected (0, nil)", n, err)
	}
}

func TestPollReaderReadsPending(t *testing.T) {
	pr, _, w := newPipeReader(t)
	if _, err := w.Write([]byte("wq")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	buf := make([]byte, 8)
	n, err := pr.readAvailable(buf)
	if err != nil || string(buf[:n]) != "wq" {
		t.Errorf("readAvailable() = (%q, %v), expected (\"wq\", nil)", buf[:n], err)
	}
}

func TestPollReaderHangup(t *testing.T) {
	pr, _, w := newPipeReader(t)
	w.Close()

	if _, err := pr.readAvailable(make([]byte, 8)); !errors.Is(err, io.EOF) {
		t.Errorf("readAvailable() after writer closed error = %v, expected EOF", err)
	}
}

func TestPollReaderInvalidDescriptor(t *testing.T) {
	pr, r, _ := newPipeReader(t)
	r.Close()

	if _, err := pr.readAvailable(make([]byte, 8)); !errors.Is(err, io.EOF) {
		t.Errorf("readAvailable() on a closed descriptor error = %v, expected EOF", err)
	}
}

func TestEnableVirtualTerminalNoop(t *testing.T) {
	restore, err := enableVirtualTerminal(os.Stdout)
	if err != nil {
		t.Fatalf("enableVirtualTerminal() error = %v", err)
	}
	restore()
}
