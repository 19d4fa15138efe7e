package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, StatusAll.IsValid(), "all is query-only")
	assert.False(t, Status(-1).IsValid())
	assert.False(t, Status(9).IsValid())
}

func TestStatus_Matches(t *testing.T) {
	assert.True(t, StatusPending.Matches(StatusAll))
	assert.True(t, StatusArchived.Matches(StatusAll))
	assert.True(t, StatusCompleted.Matches(StatusCompleted))
	assert.False(t, StatusCompleted.Matches(StatusPending))
	assert.False(t, StatusPending.Matches(StatusArchived))
}

func TestStatus_Ordinals(t *testing.T) {
	assert.Equal(t, 0, int(StatusPending))
	assert.Equal(t, 1, int(StatusCompleted))
	assert.Equal(t, 2, int(StatusArchived))
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{"pending", StatusPending},
		{"Pending", StatusPending},
		{"done", StatusCompleted},
		{"completed", StatusCompleted},
		{"archived", StatusArchived},
		{"all", StatusAll},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseStatus("someday")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestStatus_Display(t *testing.T) {
	assert.Equal(t, "Pending", StatusPending.Display())
	assert.Equal(t, "Completed", StatusCompleted.Display())
	assert.Equal(t, "Archived", StatusArchived.Display())
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input  string
		want   Priority
		wantOK bool
	}{
		{"low", PriorityLow, true},
		{"L", PriorityLow, true},
		{"medium", PriorityMedium, true},
		{"high", PriorityHigh, true},
		{"3", PriorityHigh, true},
		{"Critical", PriorityCritical, true},
		{"c", PriorityCritical, true},
		{"yeet", PriorityMedium, false},
		{"", PriorityMedium, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParsePriority(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestPriority_Base(t *testing.T) {
	assert.Equal(t, 1, PriorityLow.Base())
	assert.Equal(t, 2, PriorityMedium.Base())
	assert.Equal(t, 3, PriorityHigh.Base())
	assert.Equal(t, 4, PriorityCritical.Base())
	assert.False(t, Priority(4).IsValid())
}
