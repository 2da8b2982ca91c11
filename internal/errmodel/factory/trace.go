package factory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"firestige.xyz/erratic/internal/core"
)

// traceFile is the on-disk shape of a UID trace:
//
//	uids:
//	  - 5
//	  - 9
type traceFile struct {
	UIDs []uint64 `yaml:"uids"`
}

// LoadTrace reads a YAML UID trace file for the list model.
func LoadTrace(path string) ([]uint64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trace file: %w", err)
	}
	var doc traceFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrTraceDecode, path, err)
	}
	return doc.UIDs, nil
}
