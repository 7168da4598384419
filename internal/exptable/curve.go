package exptable

import "math"

// Default polynomial curve parameters: 100 * level^1.5 total experience.
const (
	DefaultCurveBase     = 100
	DefaultCurveExponent = 1.5
)

// Curve describes cumulative experience as Base * level^Exponent.
// Total experience to reach level 0 or 1 is zero.
type Curve struct {
	Base     float64
	Exponent float64
}

// DefaultCurve returns the standard 100 * level^1.5 curve.
func DefaultCurve() Curve {
	return Curve{Base: DefaultCurveBase, Exponent: DefaultCurveExponent}
}

// TotalForLevel returns the cumulative experience required to reach level.
func (c Curve) TotalForLevel(level int) float64 {
	if level <= 1 {
		return 0
	}
	return c.Base * math.Pow(float64(level), c.Exponent)
}

// StepAt returns the experience needed for a stat at level to advance once.
// Stats start at level 0, which sits at curve level 1.
func (c Curve) StepAt(level int) float64 {
	return c.TotalForLevel(level+2) - c.TotalForLevel(level+1)
}

// Table materializes the first levelCount steps of the curve into a Table.
func (c Curve) Table(levelCount int) *Table {
	if levelCount <= 0 {
		return &Table{}
	}

	requirements := make([]float64, levelCount)
	for level := range requirements {
		requirements[level] = c.StepAt(level)
	}
	return &Table{requirements: requirements}
}
