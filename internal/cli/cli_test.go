package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/runoshun/taskmaster/internal/app"
	"github.com/runoshun/taskmaster/internal/domain"
	"github.com/runoshun/taskmaster/internal/taskstore"
	"github.com/runoshun/taskmaster/internal/testutil"
)

// newTestContainer creates an app.Container backed by an in-memory task file.
func newTestContainer(t *testing.T) (*app.Container, *testutil.MockTaskFile) {
	t.Helper()
	clock := testutil.NewMockClock(2025, time.June, 10)
	cfg := domain.NewDefaultConfig()
	file := testutil.NewMockTaskFile()
	store := taskstore.New(cfg.Limits, clock, nil)
	c := app.NewWithDeps(app.Config{}, store, file, clock, cfg, nil)
	c.ConfigManager = &testutil.MockConfigManager{}
	return c, file
}

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, c *app.Container, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand(c, "test")
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
