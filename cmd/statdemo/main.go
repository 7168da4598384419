package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lawnchairsociety/rpgstat/internal/config"
	"github.com/lawnchairsociety/rpgstat/internal/logger"
	"github.com/lawnchairsociety/rpgstat/internal/metrics"
	"github.com/lawnchairsociety/rpgstat/internal/registry"
	"github.com/lawnchairsociety/rpgstat/internal/stat"
)

func main() {
	configFile := flag.String("config", "data/engine.yaml", "Path to engine config YAML file")
	loggingConfig := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	statsFile := flag.String("stats", "", "Path to stat definitions YAML file (overrides config)")
	gain := flag.Float64("gain", 1000, "Experience to add to the demo stat")
	flag.Parse()

	logConfig, err := logger.LoadConfig(*loggingConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Using default logging config: %v\n", err)
	}
	if err := logger.Initialize(logConfig); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	engineConfig, err := config.LoadConfig(*configFile)
	if err != nil {
		logger.Warning("Using default engine config", "error", err)
	}
	if *statsFile != "" {
		engineConfig.Stats.DefinitionsPath = *statsFile
	}

	stats := registry.New()
	defaults := registry.Defaults{
		MaxLevel:   engineConfig.Stats.DefaultMaxLevel,
		BaseExp:    engineConfig.Stats.DefaultBaseExp,
		Multiplier: engineConfig.Stats.DefaultMultiplier,
	}
	if _, err := stats.LoadFromYAML(engineConfig.Stats.DefinitionsPath, defaults); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("No stat definitions file", "path", engineConfig.Stats.DefinitionsPath)
		} else {
			fatal("Failed to load stat definitions", err)
		}
	}

	var observer *metrics.Observer
	var promRegistry *prometheus.Registry
	if engineConfig.Metrics.Enabled {
		promRegistry = prometheus.NewRegistry()
		observer = metrics.NewObserver(promRegistry, engineConfig.Metrics.Namespace)
		for _, s := range stats.All() {
			observer.Watch(s)
		}
	}

	poppingPower := stats.CreateWithMultiplier("Popping Power", 50, defaults.BaseExp, defaults.Multiplier)
	if observer != nil {
		observer.Watch(poppingPower)
	}
	poppingPower.OnLevelRaised(func() {
		fmt.Printf("You leveled up! Current level: %d\n", poppingPower.Level())
	})

	poppingPower.RaiseLevel(1)
	poppingPower.GainExperience(*gain)

	fmt.Println("======")
	fmt.Printf("Exp before removing: %.2f\n", poppingPower.Exp())
	poppingPower.ReduceLevel(1)
	fmt.Printf("Exp after removing: %.2f\n", poppingPower.Exp())
	fmt.Printf("Stat level is: %d\n", poppingPower.Level())

	fmt.Println("======")
	printStats(stats.All())

	if promRegistry != nil {
		families, err := promRegistry.Gather()
		if err != nil {
			logger.Error("Failed to gather metrics", "error", err)
			return
		}
		logger.Info("Metrics gathered", "families", len(families))
	}
}

// fatal logs err, flushes the logger and exits. Deferred calls in main do
// not run after os.Exit, so the logger is closed here.
func fatal(msg string, err error) {
	logger.Error(msg, "error", err)
	logger.Close()
	os.Exit(1)
}

func printStats(all []stat.Stat) {
	for _, s := range all {
		fmt.Printf("%-20s level %3d/%-3d exp %10.2f\n", s.DisplayName(), s.Level(), s.MaxLevel(), s.Exp())
	}
}
