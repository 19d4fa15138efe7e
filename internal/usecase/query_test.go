package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/taskmaster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTasks_Execute(t *testing.T) {
	store, _, clock := newTestStore(t)
	low := mustCreate(t, store, "Low", domain.PriorityLow, nil)
	crit := mustCreate(t, store, "Critical", domain.PriorityCritical, today.Ptr())
	done := mustCreate(t, store, "Done", domain.PriorityHigh, nil)
	store.Complete(done)

	uc := NewListTasks(store, clock)

	out, err := uc.Execute(context.Background(), ListTasksInput{Status: domain.StatusPending})
	require.NoError(t, err)
	assert.Equal(t, today, out.Today)
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, crit, out.Tasks[0].ID)
	assert.Equal(t, low, out.Tasks[1].ID)

	again, err := uc.Execute(context.Background(), ListTasksInput{Status: domain.StatusPending})
	require.NoError(t, err)
	assert.Equal(t, out.Tasks, again.Tasks)

	all, err := uc.Execute(context.Background(), ListTasksInput{Status: domain.StatusAll})
	require.NoError(t, err)
	assert.Len(t, all.Tasks, 3)
}

func TestNextTask_Execute(t *testing.T) {
	store, _, clock := newTestStore(t)
	uc := NewNextTask(store, clock)

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Nil(t, out.Task)

	mustCreate(t, store, "B", domain.PriorityLow, nil)
	a := mustCreate(t, store, "A", domain.PriorityCritical, today.Ptr())

	out, err = uc.Execute(context.Background())
	require.NoError(t, err)
	require.NotNil(t, out.Task)
	assert.Equal(t, a, out.Task.ID)
	assert.Equal(t, domain.StatusPending, out.Task.Status, "next does not consume the task")
}

func TestShowTask_Execute(t *testing.T) {
	store, _, clock := newTestStore(t)
	past := today.AddDays(-2)
	id := mustCreate(t, store, "Late", domain.PriorityHigh, &past)
	noDue := mustCreate(t, store, "Whenever", domain.PriorityLow, nil)
	uc := NewShowTask(store, clock)

	out, err := uc.Execute(context.Background(), TaskIDInput{TaskID: id})
	require.NoError(t, err)
	assert.True(t, out.HasDue)
	assert.Equal(t, -2, out.DaysUntil)
	assert.True(t, out.Overdue)

	out, err = uc.Execute(context.Background(), TaskIDInput{TaskID: noDue})
	require.NoError(t, err)
	assert.False(t, out.HasDue)
	assert.False(t, out.Overdue)

	_, err = uc.Execute(context.Background(), TaskIDInput{TaskID: 99})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
