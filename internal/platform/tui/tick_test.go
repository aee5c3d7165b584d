package tui

import "testing"

func TestSystemClockAdvances(t *testing.T) {
	c := NewSystemClock()
	start := c.NowMs()

	c.SleepMs(5)

	if elapsed := c.NowMs() - start; elapsed < 5 {
		t.Errorf("Elapsed after SleepMs(5) = %d ms, expected at least 5", elapsed)
	}
}
