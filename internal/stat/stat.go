// Package stat implements leveled character attributes: a stat accumulates
// experience, converts it into levels using an experience schedule, and
// notifies observers once for every level gained or lost.
//
// A stat is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
package stat

import "github.com/lawnchairsociety/rpgstat/internal/exptable"

// Schedule answers how much experience each level requires.
// *exptable.Table is the standard implementation.
type Schedule interface {
	RequirementFor(level int) (float64, bool)
	RemainingToLevelUp(level int, currentExp float64) (float64, bool)
}

// Stat is a leveled attribute. Progression is the default implementation;
// alternative leveling policies can satisfy this interface instead.
type Stat interface {
	Name() string
	DisplayName() string
	SetDisplayName(name string)

	Level() int
	Exp() float64
	MinLevel() int
	MaxLevel() int
	Schedule() Schedule

	GainExperience(amount float64)
	ReduceExperience(amount float64)
	RaiseLevel(numLevels int)
	ReduceLevel(numLevels int)
	SetLevel(newLevel int, useLevelingLogic bool)
	SetMinLevel(newMin int, useLevelingLogic bool)
	SetMaxLevel(newMax int, useLevelingLogic bool)

	OnLevelRaised(fn func())
	OnLevelReduced(fn func())
}

var _ Stat = (*Progression)(nil)
var _ Schedule = (*exptable.Table)(nil)
