package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/taskmaster/internal/domain"
	"github.com/runoshun/taskmaster/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfig_Execute(t *testing.T) {
	manager := &testutil.MockConfigManager{
		Global: domain.ConfigInfo{Path: "/home/u/.config/taskmaster/config.toml", Content: "[log]", Exists: true},
		Local:  domain.ConfigInfo{Path: "/work/.taskmaster.toml"},
	}
	cfg := domain.NewDefaultConfig()
	file := testutil.NewMockTaskFile()

	out, err := NewShowConfig(manager, cfg, file).Execute(context.Background())

	require.NoError(t, err)
	assert.Same(t, cfg, out.Effective)
	assert.Equal(t, manager.Global, out.GlobalConfig)
	assert.Equal(t, manager.Local, out.LocalConfig)
	assert.Equal(t, "tasks.jsonl", out.TaskFile)
}

func TestInitConfig_Execute(t *testing.T) {
	manager := &testutil.MockConfigManager{
		Global: domain.ConfigInfo{Path: "/home/u/.config/taskmaster/config.toml"},
	}

	out, err := NewInitConfig(manager).Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, manager.Global.Path, out.Path)
	assert.True(t, manager.InitCalled)
	assert.Equal(t, domain.NewDefaultConfig(), manager.InitConfig)
}

func TestInitConfig_Execute_Exists(t *testing.T) {
	manager := &testutil.MockConfigManager{InitErr: domain.ErrConfigExists}

	_, err := NewInitConfig(manager).Execute(context.Background())

	assert.ErrorIs(t, err, domain.ErrConfigExists)
}
