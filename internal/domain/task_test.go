package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysUntilDue(t *testing.T) {
	today := NewDate(2025, time.June, 10)

	tests := []struct {
		name     string
		due      *Date
		wantDays int
		wantOK   bool
	}{
		{"no due date", nil, 0, false},
		{"due today", today.Ptr(), 0, true},
		{"due next week", today.AddDays(7).Ptr(), 7, true},
		{"overdue", today.AddDays(-3).Ptr(), -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, ok := DaysUntilDue(Task{ID: 1, Title: "t", Due: tt.due}, today)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantDays, days)
		})
	}
}

func TestIsOverdue(t *testing.T) {
	today := NewDate(2025, time.June, 10)
	yesterday := today.AddDays(-1)

	tests := []struct {
		name   string
		task   Task
		expect bool
	}{
		{"no due date", Task{Status: StatusPending}, false},
		{"due today", Task{Status: StatusPending, Due: today.Ptr()}, false},
		{"due tomorrow", Task{Status: StatusPending, Due: today.AddDays(1).Ptr()}, false},
		{"pending past due", Task{Status: StatusPending, Due: &yesterday}, true},
		{"completed past due", Task{Status: StatusCompleted, Due: &yesterday}, false},
		{"archived past due", Task{Status: StatusArchived, Due: &yesterday}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, IsOverdue(tt.task, today))
		})
	}
}

func TestTask_SameSubmission(t *testing.T) {
	due := NewDate(2025, time.June, 10)
	task := Task{Title: "Read Design of Everyday Things", Due: &due}

	assert.True(t, task.SameSubmission("read design of everyday things", due.Ptr()))
	assert.True(t, task.SameSubmission("  READ DESIGN OF EVERYDAY THINGS ", due.Ptr()))
	assert.False(t, task.SameSubmission("read design of everyday things", nil))
	assert.False(t, task.SameSubmission("read design of everyday things", due.AddDays(1).Ptr()))

	noDue := Task{Title: "PA 1"}
	assert.True(t, noDue.SameSubmission("pa 1", nil))
}

func TestTruncateTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		width int
		want  string
	}{
		{"short", "PA 1", 35, "PA 1"},
		{"exact", "abcde", 5, "abcde"},
		{"long", "Start thinking about idea for PA2 and PA3 next semester", 35, "Start thinking about idea for PA..."},
		{"multibyte", "日本語のタイトルです", 6, "日本語..."},
		{"tiny width", "abcdef", 2, "ab"},
		{"zero width disables", "abcdef", 0, "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateTitle(tt.title, tt.width)
			assert.Equal(t, tt.want, got)
		})
	}
}
