package config

// Interval returns the tick interval in milliseconds for the given
// difficulty level, starting from the averaged base interval.
// Level 1 is the starting level. Integer division truncates.
func (s SpeedCurve) Interval(base, level int) int {
	result := base * (100 - (level-1)*s.PercentPerLevel) / 100
	if result < s.MinInterval {
		result = s.MinInterval
	}
	return result
}
