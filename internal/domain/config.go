package domain

import "fmt"

// ProjectConfig holds the per-project generation defaults read from
// .specforge.yaml. Request fields always win over these.
type ProjectConfig struct {
	JUnitVersion   string `yaml:"junit_version"`
	OutputDir      string `yaml:"output_dir"`
	OmitUnverified bool   `yaml:"omit_unverified"`
}

// DefaultConfig returns the defaults used when no .specforge.yaml exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		JUnitVersion: "5",
		OutputDir:    "src/test/java",
	}
}

// Validate catches typos in user-supplied config before it is merged.
func (c ProjectConfig) Validate() error {
	switch c.JUnitVersion {
	case "", "4", "5":
	default:
		return fmt.Errorf("unknown junit_version %q (valid: 4, 5)", c.JUnitVersion)
	}
	return nil
}
