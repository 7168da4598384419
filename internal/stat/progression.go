package stat

import (
	"github.com/lawnchairsociety/rpgstat/internal/exptable"
	"github.com/lawnchairsociety/rpgstat/internal/logger"
)

// Progression is the default Stat. It starts at level 0 with no experience
// and a minimum level of 0.
type Progression struct {
	name        string
	displayName string

	level    int
	exp      float64
	minLevel int
	maxLevel int

	schedule Schedule

	onLevelRaised  []func()
	onLevelReduced []func()
}

// New creates a stat with no experience schedule. Until one is assigned with
// SetSchedule the stat can only change level directly. A negative maxLevel
// is raised to the min level of 0.
func New(name string, maxLevel int) *Progression {
	if maxLevel < 0 {
		maxLevel = 0
	}
	return &Progression{
		name:        name,
		displayName: name,
		maxLevel:    maxLevel,
	}
}

// NewWithMultiplier creates a stat whose schedule is generated from baseExp
// and multiplier, with one entry per level up to maxLevel.
func NewWithMultiplier(name string, maxLevel int, baseExp, multiplier float64) *Progression {
	p := New(name, maxLevel)
	p.schedule = exptable.GenerateFromMultiplier(baseExp, multiplier, p.maxLevel)
	return p
}

// NewWithSchedule creates a stat using an existing schedule. Schedules may be
// shared between stats.
func NewWithSchedule(name string, maxLevel int, schedule Schedule) *Progression {
	p := New(name, maxLevel)
	p.schedule = schedule
	return p
}

// Name returns the stat's identifier.
func (p *Progression) Name() string { return p.name }

// DisplayName returns the name shown to players. Defaults to Name.
func (p *Progression) DisplayName() string { return p.displayName }

// SetDisplayName changes the name shown to players.
func (p *Progression) SetDisplayName(name string) { p.displayName = name }

// Level returns the current level.
func (p *Progression) Level() int { return p.level }

// Exp returns the experience accumulated toward the next level.
func (p *Progression) Exp() float64 { return p.exp }

// MinLevel returns the level floor.
func (p *Progression) MinLevel() int { return p.minLevel }

// MaxLevel returns the level ceiling.
func (p *Progression) MaxLevel() int { return p.maxLevel }

// Schedule returns the experience schedule, which may be nil.
func (p *Progression) Schedule() Schedule { return p.schedule }

// SetSchedule replaces the experience schedule.
func (p *Progression) SetSchedule(schedule Schedule) { p.schedule = schedule }

// OnLevelRaised registers fn to run once for every level gained.
// Callbacks run in registration order. A nil fn is ignored when firing.
func (p *Progression) OnLevelRaised(fn func()) {
	p.onLevelRaised = append(p.onLevelRaised, fn)
}

// OnLevelReduced registers fn to run once for every level lost.
func (p *Progression) OnLevelReduced(fn func()) {
	p.onLevelReduced = append(p.onLevelReduced, fn)
}

func (p *Progression) remainingToLevelUp() (float64, bool) {
	if p.schedule == nil {
		return 0, false
	}
	return p.schedule.RemainingToLevelUp(p.level, p.exp)
}

func (p *Progression) requirement() float64 {
	if p.schedule == nil {
		return 0
	}
	required, ok := p.schedule.RequirementFor(p.level)
	if !ok || required < 0 {
		return 0
	}
	return required
}

// GainExperience adds experience, leveling up as many times as the amount
// allows. Experience spent crossing a level is consumed; the leftover carries
// into the next level. Gains stop at the max level or when the schedule has
// no entry for the current level, and anything left over is discarded.
// Non-positive amounts are ignored.
func (p *Progression) GainExperience(amount float64) {
	if amount <= 0 {
		return
	}

	for p.level < p.maxLevel && amount > 0 {
		remaining, ok := p.remainingToLevelUp()
		if !ok {
			logger.Debug("Experience gain stalled", "stat", p.name, "level", p.level, "discarded", amount)
			return
		}

		if amount < remaining {
			p.exp += amount
			return
		}

		if remaining > 0 {
			amount -= remaining
		}
		p.RaiseLevel(1)
	}
}

// ReduceExperience removes experience, dropping levels when the amount is
// more than the current level holds. Each level dropped lands the stat at the
// full requirement of the level it enters, and removal continues from there.
// At the minimum level experience bottoms out at zero.
func (p *Progression) ReduceExperience(amount float64) {
	for amount > 0 {
		if amount <= p.exp {
			p.exp -= amount
			amount = 0
		} else if p.level <= p.minLevel {
			p.exp = 0
			amount = 0
		} else {
			amount -= p.exp
			p.ReduceLevel(1)
			p.exp = p.requirement()
		}
	}

	if p.exp < 0 {
		p.exp = 0
	}
}

// RaiseLevel increases the level one step at a time, up to numLevels steps or
// until the max level. Every step resets experience and fires the
// level-raised callbacks before the next step.
func (p *Progression) RaiseLevel(numLevels int) {
	for numLevels > 0 && p.level < p.maxLevel {
		p.level++
		p.exp = 0
		logger.Debug("Stat level raised", "stat", p.name, "from", p.level-1, "to", p.level)
		fire(p.onLevelRaised)
		numLevels--
	}
}

// ReduceLevel decreases the level one step at a time, up to numLevels steps
// or until the min level. Every step resets experience and fires the
// level-reduced callbacks before the next step.
func (p *Progression) ReduceLevel(numLevels int) {
	for numLevels > 0 && p.level > p.minLevel {
		p.level--
		p.exp = 0
		logger.Debug("Stat level reduced", "stat", p.name, "from", p.level+1, "to", p.level)
		fire(p.onLevelReduced)
		numLevels--
	}
}

// SetLevel moves the stat to newLevel. With useLevelingLogic the stat walks
// there through RaiseLevel or ReduceLevel, firing a notification per step.
// Without it the level is assigned directly (clamped to the bounds) and
// nothing else changes, which suits restoring saved state.
func (p *Progression) SetLevel(newLevel int, useLevelingLogic bool) {
	if !useLevelingLogic {
		p.level = clamp(newLevel, p.minLevel, p.maxLevel)
		return
	}

	if p.level < newLevel {
		p.RaiseLevel(newLevel - p.level)
	}
	if p.level > newLevel {
		p.ReduceLevel(p.level - newLevel)
	}
}

// SetMinLevel changes the level floor, first raising the current level to
// the new floor if it sits below it. The floor never exceeds the max level.
func (p *Progression) SetMinLevel(newMin int, useLevelingLogic bool) {
	if newMin > p.maxLevel {
		newMin = p.maxLevel
	}
	if newMin == p.minLevel {
		return
	}
	if p.level < newMin {
		p.SetLevel(newMin, useLevelingLogic)
	}

	p.minLevel = newMin
}

// SetMaxLevel changes the level ceiling, first lowering the current level to
// the new ceiling if it sits above it. The ceiling never drops below the min
// level.
func (p *Progression) SetMaxLevel(newMax int, useLevelingLogic bool) {
	if newMax < p.minLevel {
		newMax = p.minLevel
	}
	if newMax == p.maxLevel {
		return
	}
	if p.level > newMax {
		p.SetLevel(newMax, useLevelingLogic)
	}

	p.maxLevel = newMax
}

func fire(callbacks []func()) {
	for _, fn := range callbacks {
		if fn != nil {
			fn()
		}
	}
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
