package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lawnchairsociety/rpgstat/internal/exptable"
)

func main() {
	base := flag.Float64("base", exptable.DefaultCurveBase, "Experience required to advance from level 0 (also the curve base)")
	multiplier := flag.Float64("multiplier", 1.5, "Growth factor (values <= 1 are a percentage increase)")
	levels := flag.Int("levels", 20, "Number of levels to generate")
	useCurve := flag.Bool("curve", false, "Use the polynomial curve base * level^exponent instead of a multiplier")
	exponent := flag.Float64("exponent", exptable.DefaultCurveExponent, "Curve exponent (implies -curve)")
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "exponent" {
			*useCurve = true
		}
	})

	if *levels <= 0 {
		fmt.Fprintln(os.Stderr, "levels must be positive")
		os.Exit(1)
	}

	var table *exptable.Table
	if *useCurve {
		if *exponent <= 0 {
			fmt.Fprintln(os.Stderr, "exponent must be positive")
			os.Exit(1)
		}
		// Start from DefaultCurve and apply only the flags that were set.
		curve := exptable.DefaultCurve()
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "base":
				curve.Base = *base
			case "exponent":
				curve.Exponent = *exponent
			}
		})
		table = curve.Table(*levels)
	} else {
		table = exptable.GenerateFromMultiplier(*base, *multiplier, *levels)
	}

	fmt.Printf("%-6s %14s %14s\n", "Level", "To Next", "Cumulative")
	total := 0.0
	for level, required := range table.Requirements() {
		total += required
		fmt.Printf("%-6d %14.2f %14.2f\n", level, required, total)
	}
}
