// Package metrics exports stat level transitions to Prometheus.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/lawnchairsociety/rpgstat/internal/stat"
)

// Metric names and labels
const (
	MetricNameLevelRaised  = "level_raised_total"
	MetricNameLevelReduced = "level_reduced_total"
	MetricNameCurrentLevel = "current_level"

	HelpTextLevelRaised  = "Total number of single-level increases per stat"
	HelpTextLevelReduced = "Total number of single-level decreases per stat"
	HelpTextCurrentLevel = "Current level of each stat"

	LabelStat = "stat"
)

// Observer counts level transitions for every stat it watches.
type Observer struct {
	LevelRaised  *prometheus.CounterVec
	LevelReduced *prometheus.CounterVec
	CurrentLevel *LevelCollector
}

// LevelCollector reports the level of every watched stat at collection time,
// so direct assignments that fire no notifications are still visible.
// Collecting reads each stat, so scrapes must be serialized with the stat's
// owner like any other access.
type LevelCollector struct {
	desc *prometheus.Desc

	mu    sync.Mutex
	stats []stat.Stat
}

// NewObserver registers the stat metrics with reg under namespace.
func NewObserver(reg prometheus.Registerer, namespace string) *Observer {
	factory := promauto.With(reg)

	levels := &LevelCollector{
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", MetricNameCurrentLevel),
			HelpTextCurrentLevel,
			[]string{LabelStat},
			nil,
		),
	}
	if reg != nil {
		reg.MustRegister(levels)
	}

	return &Observer{
		LevelRaised: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      MetricNameLevelRaised,
				Help:      HelpTextLevelRaised,
			},
			[]string{LabelStat},
		),
		LevelReduced: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      MetricNameLevelReduced,
				Help:      HelpTextLevelReduced,
			},
			[]string{LabelStat},
		),
		CurrentLevel: levels,
	}
}

// Watch subscribes to s's level notifications and reports its current level.
// Watching a stat whose name is already watched replaces the earlier one in
// the current_level series.
func (o *Observer) Watch(s stat.Stat) {
	name := s.Name()
	o.CurrentLevel.add(s)

	s.OnLevelRaised(func() {
		o.LevelRaised.WithLabelValues(name).Inc()
	})
	s.OnLevelReduced(func() {
		o.LevelReduced.WithLabelValues(name).Inc()
	})
}

func (c *LevelCollector) add(s stat.Stat) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.stats {
		if existing.Name() == s.Name() {
			c.stats[i] = s
			return
		}
	}
	c.stats = append(c.stats, s)
}

// Describe implements prometheus.Collector.
func (c *LevelCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *LevelCollector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, s := range c.stats {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(s.Level()), s.Name())
	}
}
