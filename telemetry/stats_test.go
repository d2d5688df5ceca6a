package telemetry

import (
	"math"
	"testing"
)

func TestComputePowerStats(t *testing.T) {
	ratios := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}
	mean, std, p50 := ComputePowerStats(ratios)

	if math.Abs(mean-0.55) > 0.001 {
		t.Errorf("mean = %v, want 0.55", mean)
	}
	if std <= 0.2 || std >= 0.4 {
		t.Errorf("std = %v, want ~0.30", std)
	}
	if math.Abs(p50-0.5) > 0.11 {
		t.Errorf("p50 = %v, want ~0.5", p50)
	}
}

func TestComputePowerStatsEmpty(t *testing.T) {
	mean, std, p50 := ComputePowerStats(nil)

	if mean != 0 || std != 0 || p50 != 0 {
		t.Error("empty sample should return all zeros")
	}
}

func TestComputePowerStatsSingle(t *testing.T) {
	mean, std, p50 := ComputePowerStats([]float64{0.7})

	if mean != 0.7 || p50 != 0.7 {
		t.Errorf("mean, p50 = %v, %v, want 0.7, 0.7", mean, p50)
	}
	if std != 0 {
		t.Errorf("std = %v, want 0 for single sample", std)
	}
}

func TestComputePowerStatsDoesNotMutateInput(t *testing.T) {
	ratios := []float64{0.9, 0.1, 0.5}
	ComputePowerStats(ratios)

	if ratios[0] != 0.9 || ratios[1] != 0.1 || ratios[2] != 0.5 {
		t.Error("input slice was reordered")
	}
}
