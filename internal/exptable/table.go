// Package exptable holds experience requirement schedules: how much
// experience a stat must accumulate at each level before it can advance.
package exptable

// Table is an ordered experience schedule indexed by level. Entry 0 is the
// experience needed to advance from level 0 to level 1, entry 1 from level 1
// to level 2, and so on. Levels past the end of the schedule are unknown.
//
// A nil *Table is valid and knows no levels.
type Table struct {
	requirements []float64
}

// New creates a table from an explicit list of requirements.
func New(requirements ...float64) *Table {
	t := &Table{}
	t.SetRequirements(requirements)
	return t
}

// GenerateFromMultiplier builds a table with exactly levelCount entries.
// Entry 0 is baseExp. When multiplier is greater than 1 each entry is the
// previous one times multiplier; otherwise multiplier is treated as a
// percentage increase and each entry is previous + previous*multiplier.
func GenerateFromMultiplier(baseExp, multiplier float64, levelCount int) *Table {
	if levelCount <= 0 {
		return &Table{}
	}

	requirements := make([]float64, 0, levelCount)
	requirements = append(requirements, baseExp)
	last := baseExp

	for i := 1; i < levelCount; i++ {
		next := last * multiplier
		if multiplier <= 1 {
			next += last
		}
		requirements = append(requirements, next)
		last = next
	}

	return &Table{requirements: requirements}
}

// RequirementFor returns the experience needed to advance past level.
// The second return value is false when the table does not cover level.
func (t *Table) RequirementFor(level int) (float64, bool) {
	if t == nil || level < 0 || level >= len(t.requirements) {
		return 0, false
	}
	return t.requirements[level], true
}

// RemainingToLevelUp returns how much experience is still needed at level
// given currentExp. It reports false when the requirement is unknown, in
// which case the returned amount is meaningless.
func (t *Table) RemainingToLevelUp(level int, currentExp float64) (float64, bool) {
	required, ok := t.RequirementFor(level)
	if !ok {
		return 0, false
	}
	return required - currentExp, true
}

// CanLevelUp reports whether currentExp meets the known requirement for level.
func (t *Table) CanLevelUp(level int, currentExp float64) bool {
	required, ok := t.RequirementFor(level)
	if !ok {
		return false
	}
	return currentExp >= required
}

// Len returns the number of levels the table covers.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.requirements)
}

// Requirements returns a copy of the schedule.
func (t *Table) Requirements() []float64 {
	if t == nil {
		return nil
	}
	result := make([]float64, len(t.requirements))
	copy(result, t.requirements)
	return result
}

// SetRequirements replaces the schedule. The slice is copied.
func (t *Table) SetRequirements(requirements []float64) {
	t.requirements = make([]float64, len(requirements))
	copy(t.requirements, requirements)
}
