// Package assurance provides the level discretization, recommendation
// lookup, and risk classification tables that drive report generation.
package assurance

import "strconv"

// Level is a discretized assurance level in the range 1 to 5.
type Level int

// DiscretizeLevel maps a continuous quantitative score onto a Level
// using fixed thresholds. Scores below every threshold land on level 1.
func DiscretizeLevel(quant float64) Level {
	switch {
	case quant >= 4.5:
		return 5
	case quant >= 3.5:
		return 4
	case quant >= 2.5:
		return 3
	case quant >= 1.5:
		return 2
	default:
		return 1
	}
}

// DefaultMetric is the value substituted for missing or non-numeric
// severity and controllability fields.
const DefaultMetric = 3.0

// ParseMetric parses a severity or controllability field. Empty or
// non-numeric input degrades to DefaultMetric rather than erroring;
// legacy files carry free-text in these fields.
func ParseMetric(raw string) float64 {
	if raw == "" {
		return DefaultMetric
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return DefaultMetric
	}
	return v
}

// LevelText renders a level for prose output.
func (l Level) String() string {
	return strconv.Itoa(int(l))
}
