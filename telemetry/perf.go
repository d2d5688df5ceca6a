package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for the simulation step.
const (
	PhaseIntegrate = "integrate"
	PhaseGrid      = "spatial_grid"
	PhaseCollide   = "collision"
	PhaseCull      = "cull"
	PhaseSnapshot  = "snapshot"
)

// phaseOrder fixes the CSV column and log line ordering.
var phaseOrder = []string{PhaseIntegrate, PhaseGrid, PhaseCollide, PhaseCull, PhaseSnapshot}

// PerfSample holds timing data for a single tick.
type PerfSample struct {
	TickDuration time.Duration
	Phases       map[string]time.Duration
}

// PerfCollector tracks per-phase tick timing over a rolling window.
type PerfCollector struct {
	windowSize    int
	samples       []PerfSample
	writeIndex    int
	sampleCount   int
	currentPhases map[string]time.Duration
	tickStart     time.Time
	phaseStart    time.Time
	lastPhase     string
}

// NewPerfCollector creates a performance collector.
// windowSize: number of ticks to average over (e.g., 120 for 2 seconds at 60fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartTick begins timing a new simulation tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a specific phase, ending the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndTick finishes timing the current tick and records the sample.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}

	p.samples[p.writeIndex] = PerfSample{
		TickDuration: now.Sub(p.tickStart),
		Phases:       p.currentPhases,
	}

	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// PerfStats holds averaged timings over the rolling window.
type PerfStats struct {
	Ticks    int
	TickMean time.Duration
	TickMax  time.Duration
	Phases   map[string]time.Duration // mean per phase
}

// Stats computes averages over the recorded samples.
func (p *PerfCollector) Stats() PerfStats {
	stats := PerfStats{
		Ticks:  p.sampleCount,
		Phases: make(map[string]time.Duration),
	}
	if p.sampleCount == 0 {
		return stats
	}

	var total time.Duration
	phaseTotals := make(map[string]time.Duration)

	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		total += s.TickDuration
		if s.TickDuration > stats.TickMax {
			stats.TickMax = s.TickDuration
		}
		for name, d := range s.Phases {
			phaseTotals[name] += d
		}
	}

	stats.TickMean = total / time.Duration(p.sampleCount)
	for name, d := range phaseTotals {
		stats.Phases[name] = d / time.Duration(p.sampleCount)
	}

	return stats
}

// LogStats emits the averaged timings to the structured log.
func (s PerfStats) LogStats() {
	args := []any{
		"ticks", s.Ticks,
		"tick_mean", s.TickMean,
		"tick_max", s.TickMax,
	}
	for _, name := range phaseOrder {
		if d, ok := s.Phases[name]; ok {
			args = append(args, name, d)
		}
	}
	slog.Info("perf stats", args...)
}
