package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand_CleanTree(t *testing.T) {
	dir := t.TempDir()
	src := `def write(path: str):
    """Write.

    Args:
        path (str): Where to write.
    """
    pass
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.py"), []byte(src), 0o644))

	cfgPath := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("cache:\n  enabled: false\n"), 0o644))

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"check", "--config", cfgPath, dir})

	require.NoError(t, rootCmd.Execute())
	assert.Empty(t, out.String())
}

func TestCheckCommand_FindingsReturnExitCodeError(t *testing.T) {
	dir := t.TempDir()
	src := `def read(path: str):
    """Read.

    Args:
        path (int): Stale type.
    """
    pass
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.py"), []byte(src), 0o644))

	cfgPath := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("cache:\n  enabled: false\n"), 0o644))

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"check", "--config", cfgPath, dir})

	err := rootCmd.Execute()
	require.Error(t, err)

	var exitErr *exitCodeError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.code)
	assert.Contains(t, out.String(), `declared type "str" but documented as "int"`)
}

func TestCheckCommand_RequiresTarget(t *testing.T) {
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"check"})

	assert.Error(t, rootCmd.Execute())
}
