package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollectorRecordsPhases(t *testing.T) {
	p := NewPerfCollector(4)

	p.StartTick()
	p.StartPhase(PhaseIntegrate)
	time.Sleep(time.Millisecond)
	p.StartPhase(PhaseCollide)
	p.EndTick()

	stats := p.Stats()
	if stats.Ticks != 1 {
		t.Fatalf("ticks = %d, want 1", stats.Ticks)
	}
	if stats.TickMean <= 0 {
		t.Error("tick mean should be positive")
	}
	if stats.Phases[PhaseIntegrate] <= 0 {
		t.Error("integrate phase not recorded")
	}
	if _, ok := stats.Phases[PhaseCull]; ok {
		t.Error("unstarted phase must not appear")
	}
}

func TestPerfCollectorRollingWindow(t *testing.T) {
	p := NewPerfCollector(2)

	for i := 0; i < 5; i++ {
		p.StartTick()
		p.EndTick()
	}

	if stats := p.Stats(); stats.Ticks != 2 {
		t.Errorf("window holds %d samples, want 2", stats.Ticks)
	}
}

func TestPerfCollectorEmpty(t *testing.T) {
	p := NewPerfCollector(8)

	stats := p.Stats()
	if stats.Ticks != 0 || stats.TickMean != 0 {
		t.Errorf("empty collector stats = %+v, want zeros", stats)
	}
}
