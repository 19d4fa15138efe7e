package domain

import "strings"

// Priority is the explicit importance level of a task.
// The numeric values are the on-disk ordinals.
type Priority int

const (
	PriorityLow      Priority = iota // 0
	PriorityMedium                   // 1
	PriorityHigh                     // 2
	PriorityCritical                 // 3
)

// DefaultPriority is used when no priority is given on creation.
const DefaultPriority = PriorityMedium

// AllPriorities returns all priorities from lowest to highest.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}
}

// Base returns the ordinal position used by the urgency score (Low=1 .. Critical=4).
func (p Priority) Base() int {
	return int(p) + 1
}

// IsValid returns true if p is one of the known priorities.
func (p Priority) IsValid() bool {
	return p >= PriorityLow && p <= PriorityCritical
}

// String returns the lower-case name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ParsePriority parses a priority token such as "high", "H" or "3".
// Unknown tokens fall back to DefaultPriority with ok=false.
func ParsePriority(token string) (p Priority, ok bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "low", "l", "1":
		return PriorityLow, true
	case "medium", "med", "m", "2":
		return PriorityMedium, true
	case "high", "h", "3":
		return PriorityHigh, true
	case "critical", "crit", "c", "4":
		return PriorityCritical, true
	default:
		return DefaultPriority, false
	}
}
