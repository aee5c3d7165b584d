package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Terminal is the surface the game loop reads keys from and draws on.
// Rows and columns are 0-indexed.
type Terminal interface {
	// PollKey reports whether a key is ready. It never blocks.
	PollKey() bool
	// ReadKey returns the next key, or 0 when none is ready.
	ReadKey() byte

	MoveCursor(row, col int)
	WriteCell(ch rune, color core.Color)
	WriteString(s string)
	ClearScreen()

	// Flush makes everything written so far visible.
	Flush() error
}

// Pre-built ANSI sequences
const (
	csiClear      = "\x1b[2J\x1b[H"
	csiReset      = "\x1b[0m"
	csiCursorHide = "\x1b[?25l"
	csiCursorShow = "\x1b[?25h"
)

// newColorStyles maps core.Color to lipgloss styles bound to the renderer
// of the output they are written to.
func newColorStyles(r *lipgloss.Renderer) map[core.Color]lipgloss.Style {
	return map[core.Color]lipgloss.Style{
		core.ColorDefault: r.NewStyle(),
		core.ColorRed:     r.NewStyle().Foreground(lipgloss.Color("1")),
		core.ColorGreen:   r.NewStyle().Foreground(lipgloss.Color("2")),
		core.ColorYellow:  r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// keyReader is the platform-specific source of raw input bytes.
type keyReader interface {
	// readAvailable copies whatever input is pending into p without blocking.
	// It returns io.EOF once the input is closed.
	readAvailable(p []byte) (int, error)
	close()
}

// Console is a Terminal on the process's stdin/stdout in raw mode.
// It must be released with Close to restore the terminal.
type Console struct {
	inFd       int
	oldState   *term.State
	restoreOut func()
	out        *bufio.Writer
	input      keyReader

	renderer *lipgloss.Renderer
	styles   map[core.Color]lipgloss.Style

	pending  []byte // Raw bytes read but not yet returned as keys
	buf      []byte
	eof      bool
	escStart time.Time // When the unfinished escape in pending was first seen
	now      func() time.Time
}

// Open switches the terminal to raw mode, hides the cursor and clears the
// screen. Stdin must be a terminal.
func Open() (*Console, error) {
	inFd := int(os.Stdin.Fd())
	if !term.IsTerminal(inFd) {
		return nil, errors.New("tui: stdin is not a terminal")
	}

	old, err := term.MakeRaw(inFd)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot enter raw mode: %w", err)
	}

	input, err := newKeyReader(os.Stdin)
	if err != nil {
		//nolint:errcheck // Already failing, best-effort restore
		term.Restore(inFd, old)
		return nil, fmt.Errorf("tui: cannot set up key polling: %w", err)
	}

	c := newConsole(os.Stdout, input)
	c.inFd = inFd
	c.oldState = old

	restoreOut, err := enableVirtualTerminal(os.Stdout)
	if err != nil {
		//nolint:errcheck // Already failing, best-effort restore
		c.Close()
		return nil, fmt.Errorf("tui: cannot enable ANSI output: %w", err)
	}
	c.restoreOut = restoreOut

	c.out.WriteString(csiCursorHide)
	c.ClearScreen()
	if err := c.Flush(); err != nil {
		//nolint:errcheck // Already failing, best-effort restore
		c.Close()
		return nil, err
	}
	return c, nil
}

// newConsole wires a console to the given output and key source without
// touching terminal modes.
func newConsole(out io.Writer, input keyReader) *Console {
	renderer := lipgloss.NewRenderer(out)
	return &Console{
		out:      bufio.NewWriterSize(out, 16*1024),
		input:    input,
		renderer: renderer,
		styles:   newColorStyles(renderer),
		buf:      make([]byte, 64),
		now:      time.Now,
	}
}

// Close shows the cursor again and restores the original terminal mode.
// Safe to call on every exit path.
func (c *Console) Close() error {
	c.out.WriteString(csiReset)
	c.out.WriteString(csiCursorShow)
	flushErr := c.out.Flush()

	if c.input != nil {
		c.input.close()
		c.input = nil
	}

	if c.restoreOut != nil {
		c.restoreOut()
		c.restoreOut = nil
	}

	if c.oldState != nil {
		if err := term.Restore(c.inFd, c.oldState); err != nil {
			return fmt.Errorf("tui: cannot restore terminal: %w", err)
		}
		c.oldState = nil
	}

	if flushErr != nil {
		return fmt.Errorf("tui: cannot write to terminal: %w", flushErr)
	}
	return nil
}

// PollKey reports whether a key is ready. A closed input also counts as
// ready so callers waiting for a key do not spin forever.
func (c *Console) PollKey() bool {
	if c.keyReady() {
		return true
	}
	c.fill()
	return c.keyReady() || c.eof
}

// ReadKey returns the next key, or 0 when none is ready.
// Arrow keys are translated to W/A/S/D.
func (c *Console) ReadKey() byte {
	if !c.keyReady() {
		c.fill()
		if !c.keyReady() {
			return 0
		}
	}

	key, n := decodeKey(c.pending)
	if n == 0 {
		// Escape that never completed
		key, n = keyEsc, len(c.pending)
	}
	c.pending = c.pending[n:]
	c.escStart = time.Time{}
	return key
}

// keyReady reports whether pending starts with a whole key. An unfinished
// escape sequence becomes ready once input ends or escapeTimeout passes.
func (c *Console) keyReady() bool {
	if len(c.pending) == 0 {
		return false
	}
	if _, n := decodeKey(c.pending); n > 0 || c.eof {
		return true
	}

	now := c.now()
	if c.escStart.IsZero() {
		c.escStart = now
		return false
	}
	return now.Sub(c.escStart) >= escapeTimeout
}

// fill appends any pending input to the key queue.
func (c *Console) fill() {
	if c.input == nil || c.eof {
		return
	}
	n, err := c.input.readAvailable(c.buf)
	if n > 0 {
		c.pending = append(c.pending, c.buf[:n]...)
	}
	if err != nil {
		// Any read failure ends input for good
		if !errors.Is(err, io.EOF) {
			c.pending = append(c.pending, keyCtrlC)
		}
		c.eof = true
	}
}

// MoveCursor positions the cursor at the 0-indexed row and column.
func (c *Console) MoveCursor(row, col int) {
	fmt.Fprintf(c.out, "\x1b[%d;%dH", row+1, col+1)
}

// WriteCell writes one glyph in the style of its color category.
func (c *Console) WriteCell(ch rune, color core.Color) {
	if color == core.ColorDefault {
		c.out.WriteRune(ch)
		return
	}
	style, ok := c.styles[color]
	if !ok {
		style = c.styles[core.ColorDefault]
	}
	c.out.WriteString(style.Render(string(ch)))
}

// WriteString writes unstyled text at the cursor.
func (c *Console) WriteString(s string) {
	c.out.WriteString(s)
}

// ClearScreen erases the screen and homes the cursor.
func (c *Console) ClearScreen() {
	c.out.WriteString(csiClear)
}

// Flush writes buffered output to the terminal.
func (c *Console) Flush() error {
	return c.out.Flush()
}
