//go:build windows

package tui

import (
	"os"

	"golang.org/x/sys/windows"
)

// enableVirtualTerminal turns on ANSI sequence processing for the console
// behind f and returns a function restoring the previous mode.
func enableVirtualTerminal(f *os.File) (func(), error) {
	h := windows.Handle(f.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return nil, err
	}
	if err := windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		return nil, err
	}

	return func() {
		//nolint:errcheck // Best-effort restore on exit
		windows.SetConsoleMode(h, mode)
	}, nil
}
