package mcp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShivMunagala/pydoccheck/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Cache.Path = filepath.Join(t.TempDir(), "cache.db")
	return cfg
}

func TestNewServer(t *testing.T) {
	t.Run("with cache", func(t *testing.T) {
		srv, err := NewServer(testConfig(t), hclog.NewNullLogger())
		require.NoError(t, err)
		defer func() { _ = srv.storage.Close() }()

		assert.NotNil(t, srv.mcp)
		assert.NotNil(t, srv.storage)
		assert.NotNil(t, srv.checker)
		assert.NotNil(t, srv.runner)
	})

	t.Run("cache disabled", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Cache.Enabled = false

		srv, err := NewServer(cfg, hclog.NewNullLogger())
		require.NoError(t, err)
		assert.Nil(t, srv.storage)
	})

	t.Run("nil config uses defaults", func(t *testing.T) {
		cfg := config.Default()
		cfg.Cache.Enabled = false
		srv, err := NewServer(cfg, nil)
		require.NoError(t, err)
		assert.NotNil(t, srv)
	})
}

func TestValidatePath(t *testing.T) {
	dir := t.TempDir()
	pyFile := filepath.Join(dir, "a.py")
	require.NoError(t, os.WriteFile(pyFile, []byte("def f(): pass\n"), 0o644))

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"directory with python files", dir, nil},
		{"single python file", pyFile, nil},
		{"empty", "", ErrPathRequired},
		{"relative", "some/relative/path", ErrPathNotAbsolute},
		{"missing", filepath.Join(dir, "nope"), ErrPathNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePath(tt.path)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	t.Run("non-python file", func(t *testing.T) {
		txt := filepath.Join(dir, "readme.txt")
		require.NoError(t, os.WriteFile(txt, []byte("hi"), 0o644))
		assert.ErrorIs(t, validatePath(txt), ErrNotPythonFile)
	})

	t.Run("directory without python files", func(t *testing.T) {
		empty := t.TempDir()
		assert.ErrorIs(t, validatePath(empty), ErrNoPythonFiles)
	})
}

func TestArgHelpers(t *testing.T) {
	args := map[string]interface{}{
		"flag":  true,
		"count": float64(7),
		"name":  "value",
	}

	assert.True(t, getBoolDefault(args, "flag", false))
	assert.False(t, getBoolDefault(args, "missing", false))
	assert.Equal(t, 7, getIntDefault(args, "count", 0))
	assert.Equal(t, 3, getIntDefault(args, "missing", 3))
	assert.Equal(t, "value", getStringDefault(args, "name", ""))
	assert.Equal(t, "d", getStringDefault(args, "missing", "d"))
}

func TestMCPError(t *testing.T) {
	err := newMCPError(ErrorCodeInvalidParams, "bad input", nil)
	assert.Contains(t, err.Error(), "-32602")
	assert.Contains(t, err.Error(), "bad input")
}
