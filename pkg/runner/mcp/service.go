// Package mcp provides the Model Context Protocol server integration for goals.
package mcp

import (
	"context"
	"errors"
	"sync"

	"tableflip.dev/goals/pkg/app"
	"tableflip.dev/goals/pkg/goal"
	"tableflip.dev/goals/pkg/store"
	"tableflip.dev/goals/pkg/timeutil"
)

// Service serialises goal operations for the MCP server, which may call
// tools concurrently. Goal numbers are 1-based, as in "goals list".
type Service struct {
	mu  sync.Mutex
	app *app.Service
}

// MutationResult is returned by tools that change goals. Warning is set when
// the change was applied but could not be written to disk.
type MutationResult struct {
	Goal    app.Row `json:"goal"`
	Warning string  `json:"warning,omitempty"`
}

// DeleteResult reports the goal a delete removed.
type DeleteResult struct {
	Deleted goal.Goal `json:"deleted"`
	Warning string    `json:"warning,omitempty"`
}

// ElapsedResult is the calculator output for an arbitrary date.
type ElapsedResult struct {
	Date    string `json:"date"`
	Elapsed string `json:"elapsed"`
	Days    *int   `json:"days"`
}

// FontSizeResult reports the current font size and its bounds.
type FontSizeResult struct {
	FontSize int   `json:"fontSize"`
	Allowed  []int `json:"allowed"`
}

// NewService builds a service wrapper around an opened app.Service.
func NewService(a *app.Service) *Service {
	return &Service{app: a}
}

func (s *Service) check(ctx context.Context) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if s.app == nil {
		return app.ErrNoStore
	}
	return nil
}

// ListGoals returns every goal, oldest first.
func (s *Service) ListGoals(ctx context.Context) ([]app.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	return s.app.Rows(), nil
}

// GetGoal returns the goal at number.
func (s *Service) GetGoal(ctx context.Context, number int) (app.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return app.Row{}, err
	}
	return s.app.Row(number - 1)
}

// AddGoal creates a goal. An empty date means today.
func (s *Service) AddGoal(ctx context.Context, name, date string) (MutationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return MutationResult{}, err
	}
	iso, err := timeutil.ParseInputDate(date, s.app.Today())
	if err != nil {
		return MutationResult{}, err
	}
	row, err := s.app.Add(name, iso)
	return mutation(row, err)
}

// UpdateGoal changes the goal at number. Empty name or date keep the
// current value.
func (s *Service) UpdateGoal(ctx context.Context, number int, name, date string) (MutationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return MutationResult{}, err
	}
	current, err := s.app.Row(number - 1)
	if err != nil {
		return MutationResult{}, err
	}
	if name == "" {
		name = current.Name
	}
	iso := current.Date
	if date != "" {
		if iso, err = timeutil.ParseInputDate(date, s.app.Today()); err != nil {
			return MutationResult{}, err
		}
	}
	row, err := s.app.Update(number-1, name, iso)
	return mutation(row, err)
}

// DeleteGoal removes the goal at number.
func (s *Service) DeleteGoal(ctx context.Context, number int) (DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return DeleteResult{}, err
	}
	removed, err := s.app.Delete(number - 1)
	if removed.Name == "" {
		return DeleteResult{}, err
	}
	res := DeleteResult{Deleted: removed}
	if err != nil {
		res.Warning = err.Error()
	}
	return res, nil
}

// Elapsed runs the calculator against today.
func (s *Service) Elapsed(ctx context.Context, date string) (ElapsedResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return ElapsedResult{}, err
	}
	text, days, ok := timeutil.Elapsed(date, s.app.Today())
	res := ElapsedResult{Date: date, Elapsed: text}
	if ok {
		res.Days = &days
	}
	return res, nil
}

// FontSize returns the persisted font size.
func (s *Service) FontSize(ctx context.Context) (FontSizeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return FontSizeResult{}, err
	}
	return FontSizeResult{FontSize: s.app.FontSize(), Allowed: store.FontSizes()}, nil
}

// SetFontSize validates and saves size.
func (s *Service) SetFontSize(ctx context.Context, size int) (FontSizeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return FontSizeResult{}, err
	}
	if err := s.app.SetFontSize(size); err != nil {
		return FontSizeResult{}, err
	}
	return FontSizeResult{FontSize: s.app.FontSize(), Allowed: store.FontSizes()}, nil
}

// Encouragement draws a random phrase.
func (s *Service) Encouragement(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return "", err
	}
	if s.app.Catalog == nil {
		return "", errors.New("no encouragement catalog")
	}
	return s.app.Catalog.Random(), nil
}

// mutation keeps a write failure as a warning when the change itself was
// applied.
func mutation(row app.Row, err error) (MutationResult, error) {
	if row.Name == "" {
		if err == nil {
			err = errors.New("goal not changed")
		}
		return MutationResult{}, err
	}
	res := MutationResult{Goal: row}
	if err != nil {
		res.Warning = err.Error()
	}
	return res, nil
}
