// Package config decodes generation request documents and the per-project
// .specforge.yaml defaults. yaml.v3 accepts JSON as well, so one decoder
// serves both wire formats.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/specforge/specforge/internal/domain"
)

const fileName = ".specforge.yaml"

// YAMLLoader reads project-level generation defaults.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .specforge.yaml from projectPath. A missing file yields the
// defaults; a malformed or invalid file is an error.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	// Unset fields fall back to defaults.
	defaults := domain.DefaultConfig()
	if cfg.JUnitVersion == "" {
		cfg.JUnitVersion = defaults.JUnitVersion
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaults.OutputDir
	}
	return cfg, nil
}

// requestDoc is the wire shape of a generation request document.
type requestDoc struct {
	ClassUnderTest string     `yaml:"class_under_test"`
	Method         string     `yaml:"method"`
	Params         []paramDoc `yaml:"params"`
	Oracle         string     `yaml:"oracle"`
	Package        string     `yaml:"package"`
	TestClassName  string     `yaml:"test_class_name"`
	OutputDir      string     `yaml:"output_dir"`
	JUnitVersion   string     `yaml:"junit_version"`
}

type paramDoc struct {
	Name       string         `yaml:"name"`
	Type       string         `yaml:"type"`
	Domain     *domainDoc     `yaml:"domain"`
	Classes    []classDoc     `yaml:"equivalence_classes"`
	Boundaries []domain.Value `yaml:"boundaries"`
}

type domainDoc struct {
	Min    *domain.Value  `yaml:"min"`
	Max    *domain.Value  `yaml:"max"`
	Values []domain.Value `yaml:"values"`
}

type classDoc struct {
	Name   string         `yaml:"name"`
	Values []domain.Value `yaml:"values"`
	Range  []domain.Value `yaml:"range"`
}

// ParseRequest decodes a YAML or JSON request document into a validated
// GenerationRequest.
func ParseRequest(data []byte) (domain.GenerationRequest, error) {
	var doc requestDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.GenerationRequest{}, fmt.Errorf("parsing request: %w", err)
	}

	req := domain.GenerationRequest{
		ClassUnderTest: doc.ClassUnderTest,
		Method:         doc.Method,
		Oracle:         doc.Oracle,
		Package:        doc.Package,
		TestClassName:  doc.TestClassName,
		OutputDir:      doc.OutputDir,
		JUnitVersion:   doc.JUnitVersion,
	}

	for _, p := range doc.Params {
		spec, err := p.toSpec()
		if err != nil {
			return domain.GenerationRequest{}, err
		}
		req.Params = append(req.Params, spec)
	}

	if err := req.Validate(); err != nil {
		return domain.GenerationRequest{}, err
	}
	return req, nil
}

func (p paramDoc) toSpec() (domain.ParameterSpec, error) {
	spec := domain.ParameterSpec{Name: p.Name, Boundaries: p.Boundaries}

	d, err := p.toDomain()
	if err != nil {
		return domain.ParameterSpec{}, err
	}
	spec.Domain = d

	for _, c := range p.Classes {
		ec := domain.EquivalenceClass{Name: c.Name, Values: c.Values}
		if len(c.Range) == 2 {
			ec.Range = &domain.ValueRange{Lo: c.Range[0], Hi: c.Range[1]}
		} else if len(c.Range) != 0 {
			return domain.ParameterSpec{}, &domain.ValidationError{
				Param:  p.Name,
				Reason: fmt.Sprintf("equivalence class %s range must have exactly two values", c.Name),
			}
		}
		spec.Classes = append(spec.Classes, ec)
	}
	return spec, nil
}

func (p paramDoc) toDomain() (domain.Domain, error) {
	if p.Domain == nil {
		return nil, &domain.ValidationError{Param: p.Name, Reason: "domain is required"}
	}

	// Untyped parameters are inferred from the domain shape.
	typ := p.Type
	if typ == "" {
		if len(p.Domain.Values) > 0 {
			typ = "enum"
		} else {
			typ = "int"
		}
	}

	switch typ {
	case "int", "long", "short", "byte":
		min, max, err := p.rangeBounds()
		if err != nil {
			return nil, err
		}
		return domain.IntegralDomain{Min: int64(min), Max: int64(max)}, nil
	case "float", "double":
		min, max, err := p.rangeBounds()
		if err != nil {
			return nil, err
		}
		return domain.FloatingDomain{Min: min, Max: max}, nil
	case "enum", "enumeration":
		if len(p.Domain.Values) == 0 {
			return nil, &domain.ValidationError{Param: p.Name, Reason: "enumeration domain has no values"}
		}
		return domain.EnumerationDomain{Values: p.Domain.Values}, nil
	default:
		return nil, &domain.ValidationError{Param: p.Name, Reason: fmt.Sprintf("unknown type %q", p.Type)}
	}
}

func (p paramDoc) rangeBounds() (float64, float64, error) {
	if p.Domain.Min == nil || p.Domain.Max == nil {
		return 0, 0, &domain.ValidationError{Param: p.Name, Reason: "range domain requires min and max"}
	}
	min, ok := p.Domain.Min.Num()
	if !ok {
		return 0, 0, &domain.ValidationError{Param: p.Name, Reason: "range min is not numeric"}
	}
	max, ok := p.Domain.Max.Num()
	if !ok {
		return 0, 0, &domain.ValidationError{Param: p.Name, Reason: "range max is not numeric"}
	}
	return min, max, nil
}
