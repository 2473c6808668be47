package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specforge/specforge/internal/adapters/inbound/cli"
)

const specDoc = `
class_under_test: com.example.Calculator
method: add
package: example
oracle: a + b
params:
  - name: a
    type: int
    domain: { min: -10, max: 10 }
  - name: b
    type: int
    domain: { min: -10, max: 10 }
`

func writeSpec(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "add_spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(specDoc), 0644))
	return path
}

func TestGenerateCommand_JSON(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"generate", writeSpec(t), "--json"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `"total": 22`)
	assert.Contains(t, buf.String(), `"cases"`)
}

func TestGenerateCommand_DryRun(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"generate", writeSpec(t), "--dry-run"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "public class CalculatorSpecTests")
	assert.Contains(t, buf.String(), "assertEquals(-12, obj.add(-6, -6));")
}

func TestGenerateCommand_Write(t *testing.T) {
	spec := writeSpec(t)
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"generate", spec, "--write"})
	require.NoError(t, cmd.Execute())

	out := filepath.Join(filepath.Dir(spec), "src", "test", "java", "example", "CalculatorSpecTests.java")
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "public class CalculatorSpecTests")
}

func TestGenerateCommand_DefaultTUI(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"generate", writeSpec(t)})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "specforge")
	assert.Contains(t, buf.String(), "22 test cases")
}

func TestGenerateCommand_JUnit4(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"generate", writeSpec(t), "--dry-run", "--junit", "4"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "import org.junit.Test;")
}

func TestGenerateCommand_MissingFile(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"generate", "/no/such/spec.yaml"})
	assert.Error(t, cmd.Execute())
}

func TestGenerateCommand_InvalidSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("class_under_test: T\nmethod: f\nparams: []\n"), 0644))

	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"generate", path})
	assert.Error(t, cmd.Execute())
}
