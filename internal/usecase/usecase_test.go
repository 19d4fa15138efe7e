package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/runoshun/taskmaster/internal/domain"
	"github.com/runoshun/taskmaster/internal/taskstore"
	"github.com/runoshun/taskmaster/internal/testutil"
)

// today is the reference date of every use case test.
var today = domain.NewDate(2025, time.June, 10)

func newTestStore(t *testing.T) (*taskstore.Store, *testutil.MockTaskFile, *testutil.MockClock) {
	t.Helper()
	clock := testutil.NewMockClock(2025, time.June, 10)
	return taskstore.New(domain.DefaultLimits(), clock, nil), testutil.NewMockTaskFile(), clock
}

func mustCreate(t *testing.T, s *taskstore.Store, title string, p domain.Priority, due *domain.Date) int {
	t.Helper()
	id, err := s.Create(title, p, due)
	if err != nil {
		t.Fatalf("create %q: %v", title, err)
	}
	return id
}

var errDiskFull = errors.New("disk full")
