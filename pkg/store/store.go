// Package store owns the goal collection and the display settings, and
// persists both as JSON files.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"sort"

	"github.com/rs/zerolog"

	"tableflip.dev/goals/pkg/goal"
	"tableflip.dev/goals/pkg/timeutil"
)

// GoalStore is the single owner of the goal collection. The collection is
// kept in List order, so indexes passed to Update and Delete address the
// positions returned by List. A GoalStore is not safe for concurrent use.
type GoalStore struct {
	backend Backend
	key     string
	log     zerolog.Logger

	goals []goal.Goal
}

// NewGoalStore returns an empty store persisting through b. Call Load to read
// existing goals.
func NewGoalStore(b Backend, opts ...Option) *GoalStore {
	o := newOptions(GoalsKey, opts)
	return &GoalStore{
		backend: b,
		key:     o.key,
		log:     o.log,
		goals:   []goal.Goal{},
	}
}

// Load replaces the in-memory collection with the persisted one. A missing
// file yields an empty collection. Unreadable or malformed files also yield
// an empty collection, together with a *PersistenceError the caller should
// surface as a warning.
func (s *GoalStore) Load() ([]goal.Goal, error) {
	s.goals = []goal.Goal{}

	data, err := s.backend.Read(s.key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s.List(), nil
		}
		perr := &PersistenceError{Kind: ReadFailure, Path: s.backend.Path(s.key), Err: err}
		s.log.Warn().Err(err).Str("path", perr.Path).Msg("could not read goals, starting fresh")
		return s.List(), perr
	}

	var loaded []goal.Goal
	if err := json.Unmarshal(data, &loaded); err != nil {
		perr := &PersistenceError{Kind: CorruptData, Path: s.backend.Path(s.key), Err: err}
		s.log.Warn().Err(err).Str("path", perr.Path).Msg("goals file is not valid JSON, starting fresh")
		return s.List(), perr
	}
	if loaded != nil {
		s.goals = loaded
	}
	sortGoals(s.goals)
	s.log.Debug().Int("count", len(s.goals)).Str("path", s.backend.Path(s.key)).Msg("loaded goals")
	return s.List(), nil
}

// Add validates and appends a new goal, then persists. A write failure is
// returned after the goal has been added in memory.
func (s *GoalStore) Add(name, date string) (goal.Goal, error) {
	g := goal.New(name, date)
	if err := goal.Validate(g.Name, s.goals, -1); err != nil {
		return goal.Goal{}, err
	}
	s.goals = append(s.goals, g)
	sortGoals(s.goals)
	return g, s.Persist()
}

// Update renames and re-dates the goal at index, then persists.
func (s *GoalStore) Update(index int, name, date string) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	g := goal.New(name, date)
	if err := goal.Validate(g.Name, s.goals, index); err != nil {
		return err
	}
	s.goals[index] = g
	sortGoals(s.goals)
	return s.Persist()
}

// Delete removes the goal at index, persists, and returns the removed goal.
func (s *GoalStore) Delete(index int) (goal.Goal, error) {
	if err := s.checkIndex(index); err != nil {
		return goal.Goal{}, err
	}
	removed := s.goals[index]
	s.goals = append(s.goals[:index], s.goals[index+1:]...)
	return removed, s.Persist()
}

// List returns the goals ordered by date, oldest first.
func (s *GoalStore) List() []goal.Goal {
	out := make([]goal.Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

// Len is the number of goals.
func (s *GoalStore) Len() int {
	return len(s.goals)
}

// Get returns the goal at index.
func (s *GoalStore) Get(index int) (goal.Goal, error) {
	if err := s.checkIndex(index); err != nil {
		return goal.Goal{}, err
	}
	return s.goals[index], nil
}

// Find returns the index of the goal called name, ignoring case.
func (s *GoalStore) Find(name string) (int, bool) {
	for i, g := range s.goals {
		if goal.SameName(g.Name, name) {
			return i, true
		}
	}
	return -1, false
}

// Persist rewrites the whole goal file. On failure the in-memory collection
// is left as it was.
func (s *GoalStore) Persist() error {
	data, err := json.MarshalIndent(s.goals, "", "    ")
	if err != nil {
		return &PersistenceError{Kind: WriteFailure, Path: s.backend.Path(s.key), Err: err}
	}
	if err := s.backend.Write(s.key, data); err != nil {
		perr := &PersistenceError{Kind: WriteFailure, Path: s.backend.Path(s.key), Err: err}
		s.log.Error().Err(err).Str("path", perr.Path).Msg("could not save goals")
		return perr
	}
	return nil
}

func (s *GoalStore) checkIndex(index int) error {
	if index < 0 || index >= len(s.goals) {
		return &IndexError{Index: index, Len: len(s.goals)}
	}
	return nil
}

// sortGoals orders by parsed date. Malformed dates sort after every real date
// and among themselves by their raw text; equal dates keep insertion order.
func sortGoals(goals []goal.Goal) {
	sort.SliceStable(goals, func(i, j int) bool {
		return less(goals[i], goals[j])
	})
}

func less(a, b goal.Goal) bool {
	ka, okA := timeutil.SortKey(a.Date)
	kb, okB := timeutil.SortKey(b.Date)
	if !ka.Equal(kb) {
		return ka.Before(kb)
	}
	if okA && okB {
		return false
	}
	return a.Date < b.Date
}
