package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/smash/config"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir           string
	telemetryFile *os.File
	perfFile      *os.File

	// Track if headers have been written
	telemetryHeaderWritten bool
	perfHeaderWritten      bool
}

// NewOutputManager creates an output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	telemetryPath := filepath.Join(dir, "telemetry.csv")
	f, err := os.Create(telemetryPath)
	if err != nil {
		return nil, fmt.Errorf("creating telemetry.csv: %w", err)
	}
	om.telemetryFile = f

	perfPath := filepath.Join(dir, "perf.csv")
	f, err = os.Create(perfPath)
	if err != nil {
		om.telemetryFile.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	om.perfFile = f

	return om, nil
}

// WriteConfig saves the effective configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteTelemetry writes a window stats record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}

	if !om.telemetryHeaderWritten {
		if err := gocsv.Marshal(records, om.telemetryFile); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		om.telemetryHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.telemetryFile); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
	}

	return nil
}

// PerfRecord is the flattened CSV row for perf.csv.
type PerfRecord struct {
	Tick        int32 `csv:"tick"`
	TickMeanUs  int64 `csv:"tick_mean_us"`
	TickMaxUs   int64 `csv:"tick_max_us"`
	IntegrateUs int64 `csv:"integrate_us"`
	GridUs      int64 `csv:"grid_us"`
	CollideUs   int64 `csv:"collide_us"`
	CullUs      int64 `csv:"cull_us"`
	SnapshotUs  int64 `csv:"snapshot_us"`
}

// WritePerf writes averaged perf stats to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, tick int32) error {
	if om == nil {
		return nil
	}

	rec := PerfRecord{
		Tick:        tick,
		TickMeanUs:  stats.TickMean.Microseconds(),
		TickMaxUs:   stats.TickMax.Microseconds(),
		IntegrateUs: stats.Phases[PhaseIntegrate].Microseconds(),
		GridUs:      stats.Phases[PhaseGrid].Microseconds(),
		CollideUs:   stats.Phases[PhaseCollide].Microseconds(),
		CullUs:      stats.Phases[PhaseCull].Microseconds(),
		SnapshotUs:  stats.Phases[PhaseSnapshot].Microseconds(),
	}

	records := []PerfRecord{rec}

	if !om.perfHeaderWritten {
		if err := gocsv.Marshal(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
		om.perfHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
	}

	return nil
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() {
	if om == nil {
		return
	}
	if om.telemetryFile != nil {
		om.telemetryFile.Close()
	}
	if om.perfFile != nil {
		om.perfFile.Close()
	}
}
