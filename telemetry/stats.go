package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one stats window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Live bodies at window end
	Alive int `csv:"alive"`

	// Events during window
	Collisions       int `csv:"collisions"`
	Eliminations     int `csv:"eliminations"`
	WallBounces      int `csv:"wall_bounces"`
	SpawnExhaustions int `csv:"spawn_exhaustions"`

	// Power ratio distribution (sampled at window end)
	PowerMean float64 `csv:"power_mean"`
	PowerStd  float64 `csv:"power_std"`
	PowerP50  float64 `csv:"power_p50"`
}

// ComputePowerStats returns mean, standard deviation and median of the given
// power ratios. All zeros for an empty sample.
func ComputePowerStats(ratios []float64) (mean, std, p50 float64) {
	if len(ratios) == 0 {
		return 0, 0, 0
	}

	sorted := make([]float64, len(ratios))
	copy(sorted, ratios)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	if len(sorted) > 1 {
		std = stat.StdDev(sorted, nil)
	}
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)

	return mean, std, p50
}

// LogStats emits the window to the structured log.
func (s WindowStats) LogStats() {
	slog.Info("window stats",
		"tick", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"alive", s.Alive,
		"collisions", s.Collisions,
		"eliminations", s.Eliminations,
		"wall_bounces", s.WallBounces,
		"power_mean", s.PowerMean,
		"power_p50", s.PowerP50,
	)
}
