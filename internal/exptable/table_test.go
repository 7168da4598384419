package exptable

import (
	"math"
	"testing"
)

func TestRequirementFor(t *testing.T) {
	table := New(100, 200, 300)

	tests := []struct {
		level    int
		expected float64
		ok       bool
	}{
		{0, 100, true},
		{1, 200, true},
		{2, 300, true},
		{3, 0, false}, // Past the end is unknown, not zero
		{-1, 0, false},
	}

	for _, tt := range tests {
		required, ok := table.RequirementFor(tt.level)
		if ok != tt.ok {
			t.Errorf("RequirementFor(%d) ok = %v, want %v", tt.level, ok, tt.ok)
		}
		if ok && required != tt.expected {
			t.Errorf("RequirementFor(%d) = %v, want %v", tt.level, required, tt.expected)
		}
	}
}

func TestNilTableKnowsNothing(t *testing.T) {
	var table *Table

	if _, ok := table.RequirementFor(0); ok {
		t.Error("nil table should not know level 0")
	}
	if table.CanLevelUp(0, 1000) {
		t.Error("nil table should never allow leveling")
	}
	if table.Len() != 0 {
		t.Errorf("nil table Len() = %d, want 0", table.Len())
	}
}

func TestRemainingToLevelUp(t *testing.T) {
	table := New(100, 200)

	remaining, ok := table.RemainingToLevelUp(1, 50)
	if !ok {
		t.Fatal("RemainingToLevelUp(1, 50) reported unknown")
	}
	if remaining != 150 {
		t.Errorf("RemainingToLevelUp(1, 50) = %v, want 150", remaining)
	}

	if _, ok := table.RemainingToLevelUp(2, 0); ok {
		t.Error("RemainingToLevelUp(2, 0) should be unknown")
	}
}

func TestCanLevelUp(t *testing.T) {
	table := New(100, 200)

	tests := []struct {
		level    int
		exp      float64
		expected bool
	}{
		{0, 99, false},
		{0, 100, true},
		{0, 150, true},
		{1, 199.5, false},
		{1, 200, true},
		{2, 1e9, false}, // Unknown level
	}

	for _, tt := range tests {
		if got := table.CanLevelUp(tt.level, tt.exp); got != tt.expected {
			t.Errorf("CanLevelUp(%d, %v) = %v, want %v", tt.level, tt.exp, got, tt.expected)
		}
	}
}

func TestGenerateFromMultiplier(t *testing.T) {
	tests := []struct {
		name       string
		base       float64
		multiplier float64
		levels     int
		expected   []float64
	}{
		{"geometric", 100, 2, 4, []float64{100, 200, 400, 800}},
		{"percentage", 100, 0.5, 4, []float64{100, 150, 225, 337.5}},
		{"multiplier of one doubles", 10, 1, 3, []float64{10, 20, 40}},
		{"single level", 50, 3, 1, []float64{50}},
		{"no levels", 50, 3, 0, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := GenerateFromMultiplier(tt.base, tt.multiplier, tt.levels)
			got := table.Requirements()
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d entries, want %d", len(got), len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("entry %d = %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestGenerateFromMultiplierGrowth(t *testing.T) {
	multipliers := []float64{0.01, 0.1, 0.5, 0.99, 1, 1.01, 1.5, 2, 3.75}

	for _, multiplier := range multipliers {
		table := GenerateFromMultiplier(25, multiplier, 30)
		requirements := table.Requirements()

		if len(requirements) != 30 {
			t.Fatalf("multiplier %v: got %d entries, want 30", multiplier, len(requirements))
		}

		for i := 1; i < len(requirements); i++ {
			if requirements[i] < 0 {
				t.Errorf("multiplier %v: entry %d is negative (%v)", multiplier, i, requirements[i])
			}
			if requirements[i] <= requirements[i-1] {
				t.Errorf("multiplier %v: entry %d (%v) not greater than entry %d (%v)",
					multiplier, i, requirements[i], i-1, requirements[i-1])
			}
		}
	}
}

func TestGenerateFromMultiplierZeroInputs(t *testing.T) {
	table := GenerateFromMultiplier(0, 0, 5)
	for i, required := range table.Requirements() {
		if required != 0 {
			t.Errorf("entry %d = %v, want 0", i, required)
		}
	}
}

func TestRequirementsIsCopy(t *testing.T) {
	source := []float64{100, 200}
	table := New(source...)
	source[0] = 1

	got := table.Requirements()
	got[1] = 2

	if required, _ := table.RequirementFor(0); required != 100 {
		t.Errorf("table shares caller slice: level 0 = %v", required)
	}
	if required, _ := table.RequirementFor(1); required != 200 {
		t.Errorf("Requirements() leaked internal slice: level 1 = %v", required)
	}
}

func TestSetRequirements(t *testing.T) {
	table := New(100)
	table.SetRequirements([]float64{5, 10, 15})

	if table.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", table.Len())
	}
	if required, _ := table.RequirementFor(2); required != 15 {
		t.Errorf("RequirementFor(2) = %v, want 15", required)
	}
}

func TestCurveTable(t *testing.T) {
	curve := DefaultCurve()
	table := curve.Table(10)

	if table.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", table.Len())
	}

	// Level 0 sits at curve level 1, so its step is the full total for curve level 2.
	first, _ := table.RequirementFor(0)
	want := 100 * math.Pow(2, 1.5)
	if math.Abs(first-want) > 1e-9 {
		t.Errorf("RequirementFor(0) = %v, want %v", first, want)
	}

	requirements := table.Requirements()
	for i := 1; i < len(requirements); i++ {
		if requirements[i] <= requirements[i-1] {
			t.Errorf("curve step %d (%v) not greater than step %d (%v)", i, requirements[i], i-1, requirements[i-1])
		}
	}
}

func TestCurveTotalForLevel(t *testing.T) {
	curve := DefaultCurve()

	tests := []struct {
		level    int
		expected float64
	}{
		{0, 0},
		{1, 0},
		{4, 800},
		{9, 2700},
	}

	for _, tt := range tests {
		if got := curve.TotalForLevel(tt.level); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("TotalForLevel(%d) = %v, want %v", tt.level, got, tt.expected)
		}
	}
}
