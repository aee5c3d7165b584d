package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	fakeRows = 32
	fakeCols = 100
)

// fakeClock advances only when the loop sleeps.
type fakeClock struct {
	now    uint64
	sleeps int
}

func (c *fakeClock) NowMs() uint64 {
	return c.now
}

func (c *fakeClock) SleepMs(ms uint32) {
	c.now += uint64(ms)
	c.sleeps++
}

// timedKey is a key that becomes readable once the clock reaches at.
type timedKey struct {
	at  uint64
	key byte
}

type cellWrite struct {
	row, col int
	ch       rune
	color    core.Color
}

// fakeTerminal records output on a virtual screen. Once every scripted key
// has been read it behaves like closed input: always ready, key 0.
type fakeTerminal struct {
	clock *fakeClock
	keys  []timedKey
	read  []byte

	row, col int
	screen   [fakeRows][fakeCols]rune

	cells   []cellWrite
	texts   []string
	clears  int
	flushes int

	flushErr error
}

func newFakeTerminal(clock *fakeClock, keys ...timedKey) *fakeTerminal {
	t := &fakeTerminal{clock: clock, keys: keys}
	t.blank()
	return t
}

func (t *fakeTerminal) blank() {
	for r := range t.screen {
		for c := range t.screen[r] {
			t.screen[r][c] = ' '
		}
	}
}

func (t *fakeTerminal) PollKey() bool {
	if len(t.keys) == 0 {
		return true
	}
	return t.keys[0].at <= t.clock.now
}

func (t *fakeTerminal) ReadKey() byte {
	if !t.PollKey() || len(t.keys) == 0 {
		return 0
	}
	k := t.keys[0].key
	t.keys = t.keys[1:]
	t.read = append(t.read, k)
	return k
}

func (t *fakeTerminal) MoveCursor(row, col int) {
	t.row, t.col = row, col
}

func (t *fakeTerminal) put(ch rune) {
	if t.row >= 0 && t.row < fakeRows && t.col >= 0 && t.col < fakeCols {
		t.screen[t.row][t.col] = ch
	}
	t.col++
}

func (t *fakeTerminal) WriteCell(ch rune, color core.Color) {
	t.cells = append(t.cells, cellWrite{row: t.row, col: t.col, ch: ch, color: color})
	t.put(ch)
}

func (t *fakeTerminal) WriteString(s string) {
	t.texts = append(t.texts, s)
	for _, ch := range s {
		t.put(ch)
	}
}

func (t *fakeTerminal) ClearScreen() {
	t.blank()
	t.row, t.col = 0, 0
	t.clears++
}

func (t *fakeTerminal) Flush() error {
	t.flushes++
	return t.flushErr
}

// line returns a screen row with trailing blanks removed.
func (t *fakeTerminal) line(row int) string {
	return strings.TrimRight(string(t.screen[row][:]), " ")
}

// span returns n runes of a screen row starting at col.
func (t *fakeTerminal) span(row, col, n int) string {
	return string(t.screen[row][col : col+n])
}

// resetRecords forgets recorded writes but keeps the screen.
func (t *fakeTerminal) resetRecords() {
	t.cells = nil
	t.texts = nil
	t.flushes = 0
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
