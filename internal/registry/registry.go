// Package registry creates stats and remembers them for enumeration.
// A Registry is owned by whoever creates it; there is no global instance.
package registry

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/lawnchairsociety/rpgstat/internal/exptable"
	"github.com/lawnchairsociety/rpgstat/internal/logger"
	"github.com/lawnchairsociety/rpgstat/internal/stat"
)

// ErrStatNotFound is returned when no registered stat matches a lookup.
var ErrStatNotFound = errors.New("stat not found")

// Entry pairs a registered stat with the ID it was assigned.
type Entry struct {
	ID   string
	Stat stat.Stat
}

// Registry holds every stat created through it, in creation order.
// Names are not required to be unique.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	byID    map[string]stat.Stat
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		byID: make(map[string]stat.Stat),
	}
}

// Create makes a stat with no experience schedule and registers it.
func (r *Registry) Create(name string, maxLevel int) *stat.Progression {
	s := stat.New(name, maxLevel)
	r.Register(s)
	return s
}

// CreateWithMultiplier makes a stat whose schedule is generated from baseExp
// and multiplier, one entry per level up to maxLevel, and registers it.
func (r *Registry) CreateWithMultiplier(name string, maxLevel int, baseExp, multiplier float64) *stat.Progression {
	s := stat.NewWithMultiplier(name, maxLevel, baseExp, multiplier)
	r.Register(s)
	return s
}

// CreateWithTable makes a stat that uses an explicit schedule and registers it.
func (r *Registry) CreateWithTable(name string, maxLevel int, table *exptable.Table) *stat.Progression {
	s := stat.NewWithSchedule(name, maxLevel, table)
	r.Register(s)
	return s
}

// Register adds any Stat implementation and returns its assigned ID.
func (r *Registry) Register(s stat.Stat) string {
	id := uuid.NewString()

	r.mu.Lock()
	r.entries = append(r.entries, Entry{ID: id, Stat: s})
	r.byID[id] = s
	r.mu.Unlock()

	logger.Debug("Stat registered", "id", id, "stat", s.Name(), "max_level", s.MaxLevel())
	return id
}

// All returns every registered stat in creation order.
func (r *Registry) All() []stat.Stat {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]stat.Stat, len(r.entries))
	for i, entry := range r.entries {
		result[i] = entry.Stat
	}
	return result
}

// Entries returns a copy of the registered entries in creation order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Entry, len(r.entries))
	copy(result, r.entries)
	return result
}

// Get returns the first stat registered under name.
func (r *Registry) Get(name string) (stat.Stat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.entries {
		if entry.Stat.Name() == name {
			return entry.Stat, nil
		}
	}
	return nil, ErrStatNotFound
}

// Lookup returns the stat registered with id.
func (r *Registry) Lookup(id string) (stat.Stat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, ErrStatNotFound
	}
	return s, nil
}

// Count returns the number of registered stats.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}
