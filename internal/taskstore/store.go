// Package taskstore provides the in-memory, authoritative task set.
//
// The store owns every task in a map keyed by ID and keeps a ranking index of IDs
// for urgency ordering. Status changes and removals never touch the index; stale
// entries are resolved when the index is read.
package taskstore

import (
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/runoshun/taskmaster/internal/domain"
	"github.com/runoshun/taskmaster/internal/ranking"
)

// Ensure Store implements domain.TaskStore.
var _ domain.TaskStore = (*Store)(nil)

// Store holds tasks and their ranking. It is safe for concurrent use.
// Fields are ordered to minimize memory padding.
type Store struct {
	clock  domain.Clock
	logger *slog.Logger
	tasks  map[int]*domain.Task
	index  *ranking.Index
	limits domain.LimitsConfig
	scorer domain.Scorer
	nextID int
	mu     sync.Mutex
}

// New creates an empty Store. A nil logger discards log output.
func New(limits domain.LimitsConfig, clock domain.Clock, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if clock == nil {
		clock = domain.RealClock{}
	}
	return &Store{
		clock:  clock,
		logger: logger,
		tasks:  make(map[int]*domain.Task),
		index:  ranking.New(),
		limits: limits,
		scorer: domain.NewScorer(limits.RecentWindowDays),
		nextID: 1,
	}
}

// Create validates and adds a new pending task.
func (s *Store) Create(title string, priority domain.Priority, due *domain.Date) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	title = strings.TrimSpace(title)
	if title == "" {
		return 0, &domain.ValidationError{Err: domain.ErrEmptyTitle}
	}
	if len(s.tasks) >= s.limits.Capacity {
		return 0, &domain.ValidationError{Err: domain.ErrCapacityExceeded}
	}
	if s.hasPendingDuplicate(title, due) {
		return 0, &domain.ValidationError{Err: domain.ErrDuplicateTask}
	}
	if !priority.IsValid() {
		priority = domain.DefaultPriority
	}

	task := &domain.Task{
		ID:       s.nextID,
		Title:    title,
		Priority: priority,
		Status:   domain.StatusPending,
		Due:      copyDate(due),
	}
	s.nextID++
	s.insert(task)

	if s.nearCapacity() {
		s.logger.Warn("task store nearing capacity",
			"count", len(s.tasks),
			"capacity", s.limits.Capacity)
	}
	s.logger.Debug("task created", "id", task.ID, "priority", task.Priority.String())

	return task.ID, nil
}

// Complete marks the task completed.
func (s *Store) Complete(id int) bool {
	return s.setStatus(id, domain.StatusCompleted)
}

// Archive marks the task archived.
func (s *Store) Archive(id int) bool {
	return s.setStatus(id, domain.StatusArchived)
}

// Remove deletes the task. Index entries for it are dropped lazily.
func (s *Store) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return false
	}
	delete(s.tasks, id)
	s.logger.Debug("task removed", "id", id)
	return true
}

// Get returns a copy of the task with the given ID.
func (s *Store) Get(id int) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return domain.Task{}, false
	}
	return clone(t), true
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// NextID returns the ID the next created task will get.
func (s *Store) NextID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextID
}

// NearCapacity reports whether the task count is above the warning threshold.
func (s *Store) NearCapacity() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nearCapacity()
}

func (s *Store) nearCapacity() bool {
	return len(s.tasks) > s.limits.WarnThreshold
}

// RetrieveNextPending returns the highest-ranked pending task.
// Entries for tasks that were completed, archived or removed since they were
// pushed are popped and discarded. The entry of the returned task stays in the
// index, so repeated calls return the same task until it changes.
func (s *Store) RetrieveNextPending() (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		e, ok := s.index.Peek()
		if !ok {
			return domain.Task{}, false
		}
		t, exists := s.tasks[e.ID]
		if exists && t.IsPending() {
			return clone(t), true
		}
		s.index.Pop()
		s.logger.Debug("discarded stale ranking entry", "id", e.ID)
	}
}

// ListTasks returns the tasks matching filter in descending urgency order.
// The live index is not modified: the listing drains a copy of it. Tasks whose
// entries were already discarded by RetrieveNextPending are ranked into the copy
// with the same scorer.
func (s *Store) ListTasks(filter domain.Status) []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.index.Clone()
	present := snapshot.IDs()
	today := domain.Today(s.clock)
	for id, t := range s.tasks {
		if _, ok := present[id]; !ok {
			snapshot.Push(ranking.Entry{ID: id, Score: s.scorer.ScoreTask(*t, today)})
		}
	}

	result := make([]domain.Task, 0, len(s.tasks))
	seen := make(map[int]struct{}, len(s.tasks))
	for _, e := range snapshot.Drain() {
		t, ok := s.tasks[e.ID]
		if !ok {
			continue
		}
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}
		if t.Status.Matches(filter) {
			result = append(result, clone(t))
		}
	}
	return result
}

// Restore inserts previously persisted tasks without validation, so historical
// data loads even if current rules would reject it. A later task with an ID
// already present replaces the earlier one. The ID counter moves past the
// highest restored ID.
func (s *Store) Restore(tasks []domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range tasks {
		t := tasks[i]
		t.Due = copyDate(t.Due)
		s.insert(&t)
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	s.logger.Debug("tasks restored", "count", len(tasks), "next_id", s.nextID)
}

// Snapshot returns copies of all tasks ordered by ID.
func (s *Store) Snapshot() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, clone(t))
	}
	slices.SortFunc(out, func(a, b domain.Task) int {
		return a.ID - b.ID
	})
	return out
}

// insert stores t and ranks it.
func (s *Store) insert(t *domain.Task) {
	s.tasks[t.ID] = t
	score := s.scorer.ScoreTask(*t, domain.Today(s.clock))
	s.index.Push(ranking.Entry{ID: t.ID, Score: score})
}

func (s *Store) setStatus(id int, status domain.Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return false
	}
	t.Status = status
	s.logger.Debug("task status changed", "id", id, "status", status.String())
	return true
}

func (s *Store) hasPendingDuplicate(title string, due *domain.Date) bool {
	for _, t := range s.tasks {
		if t.IsPending() && t.SameSubmission(title, due) {
			return true
		}
	}
	return false
}

// clone returns a copy of t that shares no memory with the store.
func clone(t *domain.Task) domain.Task {
	c := *t
	c.Due = copyDate(t.Due)
	return c
}

func copyDate(d *domain.Date) *domain.Date {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
