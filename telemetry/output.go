package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pthm-cable/pathsnake/config"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir     string
	runFile *os.File

	// Track if headers have been written
	runHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	return newOutputManager(dir, "runs.csv")
}

// NewSweepOutput is like NewOutputManager but writes records to sweep.csv.
func NewSweepOutput(dir string) (*OutputManager, error) {
	return newOutputManager(dir, "sweep.csv")
}

func newOutputManager(dir, name string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}

	return &OutputManager{dir: dir, runFile: f}, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteRun appends a run record.
func (om *OutputManager) WriteRun(r RunRecord) error {
	return om.WriteRuns([]RunRecord{r})
}

// WriteRuns appends several run records.
func (om *OutputManager) WriteRuns(records []RunRecord) error {
	if om == nil || len(records) == 0 {
		return nil
	}

	if !om.runHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.runFile); err != nil {
			return fmt.Errorf("writing runs: %w", err)
		}
		om.runHeaderWritten = true
	} else {
		// Subsequent writes skip headers
		if err := gocsv.MarshalWithoutHeaders(records, om.runFile); err != nil {
			return fmt.Errorf("writing runs: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil || om.runFile == nil {
		return nil
	}
	return om.runFile.Close()
}
