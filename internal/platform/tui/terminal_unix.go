//go:build unix

package tui

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// pollReader reads stdin only after a zero-timeout poll reports input.
type pollReader struct {
	fd int
}

func newKeyReader(f *os.File) (keyReader, error) {
	return &pollReader{fd: int(f.Fd())}, nil
}

func (r *pollReader) readAvailable(p []byte) (int, error) {
	fds := []unix.PollFd{
		{Fd: int32(r.fd), Events: unix.POLLIN},
	}

	n, err := unix.Poll(fds, 0)
	if err != nil {
		if err == unix.EINTR {
			return 0, nil
		}
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	revents := fds[0].Revents
	if revents&(unix.POLLIN|unix.POLLHUP) == 0 {
		// POLLERR or POLLNVAL: stdin is gone and will never become readable
		if revents&(unix.POLLERR|unix.POLLNVAL) != 0 {
			return 0, io.EOF
		}
		return 0, nil
	}

	rn, err := unix.Read(r.fd, p)
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, nil
		}
		return 0, err
	}
	if rn == 0 {
		return 0, io.EOF
	}
	return rn, nil
}

func (r *pollReader) close() {}
