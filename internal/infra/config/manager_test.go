package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/taskmaster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_LocalConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		workDir := t.TempDir()
		content := "[log]\nlevel = \"debug\""
		writeFile(t, filepath.Join(workDir, domain.LocalConfigFileName), content)

		info := NewManagerWithGlobalDir(workDir, "").LocalConfigInfo()

		assert.Equal(t, filepath.Join(workDir, domain.LocalConfigFileName), info.Path)
		assert.Equal(t, content, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns info when file does not exist", func(t *testing.T) {
		workDir := t.TempDir()

		info := NewManagerWithGlobalDir(workDir, "").LocalConfigInfo()

		assert.Equal(t, filepath.Join(workDir, domain.LocalConfigFileName), info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})
}

func TestManager_GlobalConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		globalDir := t.TempDir()
		content := "[limits]\ncapacity = 10"
		writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), content)

		info := NewManagerWithGlobalDir("", globalDir).GlobalConfigInfo()

		assert.Equal(t, content, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns empty info without global dir", func(t *testing.T) {
		info := NewManagerWithGlobalDir("", "").GlobalConfigInfo()

		assert.Empty(t, info.Path)
		assert.False(t, info.Exists)
	})
}

func TestManager_InitGlobalConfig(t *testing.T) {
	t.Run("creates config file", func(t *testing.T) {
		globalDir := filepath.Join(t.TempDir(), "taskmaster")
		manager := NewManagerWithGlobalDir("", globalDir)

		path, err := manager.InitGlobalConfig(domain.NewDefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(globalDir, domain.ConfigFileName), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "capacity = 100")
		assert.Contains(t, string(content), "level = \"warn\"")

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("rendered template loads back", func(t *testing.T) {
		globalDir := t.TempDir()
		cfg := domain.NewDefaultConfig()
		cfg.Limits.Capacity = 20
		cfg.Limits.WarnThreshold = 15
		_, err := NewManagerWithGlobalDir("", globalDir).InitGlobalConfig(cfg)
		require.NoError(t, err)

		loaded, err := NewLoaderWithGlobalDir(t.TempDir(), globalDir).Load()
		require.NoError(t, err)
		assert.Equal(t, cfg.Limits, loaded.Limits)
		assert.Empty(t, loaded.Warnings)
	})

	t.Run("returns error if file exists", func(t *testing.T) {
		globalDir := t.TempDir()
		writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), "existing")

		_, err := NewManagerWithGlobalDir("", globalDir).InitGlobalConfig(domain.NewDefaultConfig())
		assert.ErrorIs(t, err, domain.ErrConfigExists)

		content, err := os.ReadFile(filepath.Join(globalDir, domain.ConfigFileName))
		require.NoError(t, err)
		assert.Equal(t, "existing", string(content))
	})

	t.Run("fails without global dir", func(t *testing.T) {
		_, err := NewManagerWithGlobalDir("", "").InitGlobalConfig(domain.NewDefaultConfig())
		assert.Error(t, err)
	})
}
