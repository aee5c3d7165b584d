//go:build !windows

package tui

import "os"

// enableVirtualTerminal is a no-op: terminals here interpret ANSI natively.
func enableVirtualTerminal(*os.File) (func(), error) {
	return func() {}, nil
}
