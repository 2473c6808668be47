package application

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specforge/specforge/internal/domain"
	"github.com/specforge/specforge/internal/domain/render"
	"github.com/specforge/specforge/internal/domain/synth"
)

// GenerateService orchestrates the generation pipeline:
// validate -> synthesize cases -> render -> write.
type GenerateService struct {
	writer  domain.FileWriter
	locator domain.RepoLocator
	config  domain.ProjectConfig
}

func NewGenerateService(writer domain.FileWriter, locator domain.RepoLocator, cfg domain.ProjectConfig) *GenerateService {
	return &GenerateService{
		writer:  writer,
		locator: locator,
		config:  cfg,
	}
}

// GenerateOptions select how far the pipeline runs for one request.
type GenerateOptions struct {
	Render bool   // produce source text
	Write  bool   // persist the source (implies Render)
	Base   string // directory relative output paths are resolved against
}

// Generate runs the pipeline. Validation failures abort with no result. A
// rendering failure is returned together with the already-computed case list:
// the cases stay usable even when the template step fails.
func (s *GenerateService) Generate(req domain.GenerationRequest, opts GenerateOptions) (*domain.GenerationResult, error) {
	syn, err := synth.Synthesize(req)
	if err != nil {
		return nil, err
	}

	result := &domain.GenerationResult{SynthesisResult: *syn}
	if !opts.Render && !opts.Write {
		return result, nil
	}

	src, err := render.JUnit(req, syn.Cases, render.Options{
		JUnitVersion:   s.junitVersion(req),
		OmitUnverified: s.config.OmitUnverified,
	})
	if err != nil {
		return result, err
	}
	result.Source = src
	result.File = s.outputPath(req, opts.Base)

	if opts.Write {
		if err := s.writer.Write(result.File, []byte(src)); err != nil {
			return result, fmt.Errorf("writing %s: %w", result.File, err)
		}
	}
	return result, nil
}

func (s *GenerateService) junitVersion(req domain.GenerationRequest) string {
	if req.JUnitVersion != "" {
		return req.JUnitVersion
	}
	return s.config.JUnitVersion
}

// outputPath resolves where the rendered class lands: the request's output
// dir (or the configured default) anchored at the enclosing repository root
// when one exists, plus the package path and class name.
func (s *GenerateService) outputPath(req domain.GenerationRequest, base string) string {
	outDir := req.OutputDir
	if outDir == "" {
		outDir = s.config.OutputDir
	}
	if base == "" {
		base = "."
	}
	if !filepath.IsAbs(outDir) {
		if root, ok := s.locator.RepoRoot(base); ok {
			base = root
		}
		outDir = filepath.Join(base, outDir)
	}

	pkgPath := strings.ReplaceAll(req.Package, ".", string(filepath.Separator))
	return filepath.Join(outDir, pkgPath, render.ClassName(req)+".java")
}
