package application_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specforge/specforge/internal/application"
	"github.com/specforge/specforge/internal/domain"
)

// fakeWriter records writes in memory.
type fakeWriter struct {
	paths    []string
	contents map[string][]byte
	err      error
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{contents: map[string][]byte{}}
}

func (w *fakeWriter) Write(path string, content []byte) error {
	if w.err != nil {
		return w.err
	}
	w.paths = append(w.paths, path)
	w.contents[path] = content
	return nil
}

// fakeLocator pins the repository root.
type fakeLocator struct {
	root string
	ok   bool
}

func (l fakeLocator) RepoRoot(string) (string, bool) { return l.root, l.ok }

func addRequest() domain.GenerationRequest {
	return domain.GenerationRequest{
		ClassUnderTest: "com.example.Calculator",
		Method:         "add",
		Package:        "example",
		Oracle:         "a + b",
		Params: []domain.ParameterSpec{
			{Name: "a", Domain: domain.IntegralDomain{Min: -10, Max: 10}},
			{Name: "b", Domain: domain.IntegralDomain{Min: -10, Max: 10}},
		},
	}
}

func TestGenerate_CasesOnly(t *testing.T) {
	w := newFakeWriter()
	svc := application.NewGenerateService(w, fakeLocator{}, domain.DefaultConfig())

	res, err := svc.Generate(addRequest(), application.GenerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, 22, res.Summary.Total)
	assert.Empty(t, res.Source)
	assert.Empty(t, res.File)
	assert.Empty(t, w.paths)
}

func TestGenerate_RenderWithoutWrite(t *testing.T) {
	w := newFakeWriter()
	svc := application.NewGenerateService(w, fakeLocator{}, domain.DefaultConfig())

	res, err := svc.Generate(addRequest(), application.GenerateOptions{Render: true, Base: "/proj"})
	require.NoError(t, err)
	assert.Contains(t, res.Source, "public class CalculatorSpecTests")
	assert.Equal(t, filepath.Join("/proj", "src/test/java", "example", "CalculatorSpecTests.java"), res.File)
	assert.Empty(t, w.paths, "nothing is written without Write")
}

func TestGenerate_WriteAnchorsAtRepoRoot(t *testing.T) {
	w := newFakeWriter()
	svc := application.NewGenerateService(w, fakeLocator{root: "/repo", ok: true}, domain.DefaultConfig())

	res, err := svc.Generate(addRequest(), application.GenerateOptions{Write: true, Base: "/repo/sub/dir"})
	require.NoError(t, err)

	want := filepath.Join("/repo", "src/test/java", "example", "CalculatorSpecTests.java")
	assert.Equal(t, want, res.File)
	require.Len(t, w.paths, 1)
	assert.Equal(t, want, w.paths[0])
	assert.Equal(t, res.Source, string(w.contents[want]))
}

func TestGenerate_RequestOutputDirWins(t *testing.T) {
	w := newFakeWriter()
	svc := application.NewGenerateService(w, fakeLocator{}, domain.DefaultConfig())

	req := addRequest()
	req.OutputDir = "/abs/out"
	res, err := svc.Generate(req, application.GenerateOptions{Render: true, Base: "/proj"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/abs/out", "example", "CalculatorSpecTests.java"), res.File)
}

func TestGenerate_ValidationAborts(t *testing.T) {
	svc := application.NewGenerateService(newFakeWriter(), fakeLocator{}, domain.DefaultConfig())

	req := addRequest()
	req.Params = nil
	res, err := svc.Generate(req, application.GenerateOptions{Render: true})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Nil(t, res)
}

func TestGenerate_RenderFailureKeepsCases(t *testing.T) {
	svc := application.NewGenerateService(newFakeWriter(), fakeLocator{}, domain.DefaultConfig())

	req := addRequest()
	req.JUnitVersion = "3"
	res, err := svc.Generate(req, application.GenerateOptions{Render: true})
	var rerr *domain.RenderError
	require.ErrorAs(t, err, &rerr)
	require.NotNil(t, res, "case list survives a render failure")
	assert.Equal(t, 22, res.Summary.Total)
	assert.Empty(t, res.Source)
}
