package app

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/goals/pkg/encourage"
	"tableflip.dev/goals/pkg/goal"
	"tableflip.dev/goals/pkg/store"
	"tableflip.dev/goals/pkg/timeutil"
)

// Service provides the operations every front end needs on top of the goal
// and settings stores. It also remembers one encouragement per goal for the
// life of the session, so a goal's phrase does not change on every render.
type Service struct {
	Goals    *store.GoalStore
	Settings *store.SettingsStore
	Catalog  *encourage.Catalog
	// Now defaults to time.Now.
	Now func() time.Time

	phrases map[string]string
}

var ErrNoStore = errors.New("app: no goal store configured")

// Row is a goal as presented to people: the stored record plus the derived
// elapsed time and the session's encouragement.
type Row struct {
	// Number is the 1-based position in the sorted list.
	Number        int    `json:"number" yaml:"number"`
	Name          string `json:"name" yaml:"name"`
	Date          string `json:"date" yaml:"date"`
	DisplayDate   string `json:"displayDate" yaml:"displayDate"`
	Elapsed       string `json:"elapsed" yaml:"elapsed"`
	Days          *int   `json:"days" yaml:"days"`
	Encouragement string `json:"encouragement" yaml:"encouragement"`
}

// NewService wires both stores to b with the default catalog and clock.
func NewService(b store.Backend, log zerolog.Logger) *Service {
	return &Service{
		Goals:    store.NewGoalStore(b, store.WithLogger(log)),
		Settings: store.NewSettingsStore(b, store.WithLogger(log)),
		Catalog:  encourage.Default(),
		Now:      time.Now,
	}
}

// Open loads goals and settings. The returned error only carries load
// warnings; the service is usable either way.
func (s *Service) Open() error {
	if s.Goals == nil {
		return ErrNoStore
	}
	_, gerr := s.Goals.Load()
	var serr error
	if s.Settings != nil {
		_, serr = s.Settings.Load()
	}
	s.resetPhrases()
	return errors.Join(gerr, serr)
}

// Reload re-reads the goal file and draws fresh phrases.
func (s *Service) Reload() error {
	if s.Goals == nil {
		return ErrNoStore
	}
	_, err := s.Goals.Load()
	s.resetPhrases()
	return err
}

// Rows lists every goal in date order.
func (s *Service) Rows() []Row {
	if s.Goals == nil {
		return nil
	}
	goals := s.Goals.List()
	rows := make([]Row, len(goals))
	for i, g := range goals {
		rows[i] = s.row(i, g)
	}
	return rows
}

// Row returns the goal at the 0-based index.
func (s *Service) Row(index int) (Row, error) {
	if s.Goals == nil {
		return Row{}, ErrNoStore
	}
	g, err := s.Goals.Get(index)
	if err != nil {
		return Row{}, err
	}
	return s.row(index, g), nil
}

// Add creates a goal and draws its encouragement. On a write failure the
// goal is still added and the returned Row is valid.
func (s *Service) Add(name, date string) (Row, error) {
	if s.Goals == nil {
		return Row{}, ErrNoStore
	}
	g, err := s.Goals.Add(name, date)
	if g.Name == "" {
		return Row{}, err
	}
	s.ensurePhrases()
	s.phrases[goal.Key(g.Name)] = s.draw()
	return s.rowFor(g), err
}

// Update renames and re-dates the goal at index. The goal keeps its
// encouragement.
func (s *Service) Update(index int, name, date string) (Row, error) {
	if s.Goals == nil {
		return Row{}, ErrNoStore
	}
	before, err := s.Goals.Get(index)
	if err != nil {
		return Row{}, err
	}
	err = s.Goals.Update(index, name, date)
	var verr *goal.ValidationError
	if errors.As(err, &verr) {
		return Row{}, err
	}

	after := goal.New(name, date)
	s.ensurePhrases()
	if phrase, ok := s.phrases[goal.Key(before.Name)]; ok {
		delete(s.phrases, goal.Key(before.Name))
		s.phrases[goal.Key(after.Name)] = phrase
	}
	return s.rowFor(after), err
}

// Delete removes the goal at index.
func (s *Service) Delete(index int) (goal.Goal, error) {
	if s.Goals == nil {
		return goal.Goal{}, ErrNoStore
	}
	removed, err := s.Goals.Delete(index)
	if removed.Name != "" || err == nil {
		delete(s.phrases, goal.Key(removed.Name))
	}
	return removed, err
}

// FontSize is the persisted display font size.
func (s *Service) FontSize() int {
	if s.Settings == nil {
		return store.DefaultFontSize
	}
	return s.Settings.FontSize()
}

// SetFontSize validates and persists a new font size.
func (s *Service) SetFontSize(size int) error {
	if s.Settings == nil {
		return errors.New("app: no settings store configured")
	}
	return s.Settings.Save(size)
}

// Today is the current date according to the service clock.
func (s *Service) Today() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Service) rowFor(g goal.Goal) Row {
	if idx, ok := s.Goals.Find(g.Name); ok {
		return s.row(idx, g)
	}
	return s.row(-1, g)
}

func (s *Service) row(index int, g goal.Goal) Row {
	text, days, ok := timeutil.Elapsed(g.Date, s.Today())
	r := Row{
		Number:        index + 1,
		Name:          g.Name,
		Date:          g.Date,
		DisplayDate:   timeutil.DisplayDate(g.Date),
		Elapsed:       text,
		Encouragement: s.phrase(g.Name),
	}
	if ok {
		r.Days = &days
	}
	return r
}

func (s *Service) phrase(name string) string {
	s.ensurePhrases()
	key := goal.Key(name)
	p, ok := s.phrases[key]
	if !ok {
		p = s.draw()
		s.phrases[key] = p
	}
	return p
}

func (s *Service) draw() string {
	if s.Catalog == nil {
		s.Catalog = encourage.Default()
	}
	return s.Catalog.Random()
}

func (s *Service) ensurePhrases() {
	if s.phrases == nil {
		s.phrases = make(map[string]string)
	}
}

func (s *Service) resetPhrases() {
	s.phrases = make(map[string]string, s.Goals.Len())
	for _, g := range s.Goals.List() {
		s.phrases[goal.Key(g.Name)] = s.draw()
	}
}
