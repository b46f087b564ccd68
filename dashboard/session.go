// Package dashboard holds the state of one analytics session: the loaded
// transactions, the user's filter, sort and page selections, and the
// aggregates derived from them.
//
// Every command recomputes the derived state from scratch on a copy and
// swaps it in once complete, so a failing command leaves the session as it
// was.
package dashboard

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/etnz/crowdfolio"
	"github.com/etnz/crowdfolio/date"
	"github.com/etnz/crowdfolio/table"
	"github.com/etnz/crowdfolio/timeline"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrNoValidRows is returned when a loaded dataset has no usable row.
var ErrNoValidRows = errors.New("no valid rows")

// DefaultPageSize is the number of rows per page when Options leaves it unset.
const DefaultPageSize = 20

// Options configures a Session. The zero value is usable.
type Options struct {
	PageSize      int                  // rows per page, DefaultPageSize when 0
	TimelineWidth int                  // months per timeline window, timeline.DefaultWidth when 0
	Taxonomy      *crowdfolio.Taxonomy // nil for crowdfolio.NewTaxonomy()
	Clock         func() date.Date     // reference day of the overview, date.Today when nil
	Logger        *zerolog.Logger      // nil for no logging
}

// Session is the single owner of the analytics state.
type Session struct {
	id       uuid.UUID
	log      zerolog.Logger
	tax      *crowdfolio.Taxonomy
	clock    func() date.Date
	pageSize int

	st *state
}

// state is everything a command may change, plus what is derived from it.
type state struct {
	all      []crowdfolio.Transaction
	total    int // input rows of the last load
	invalid  int
	criteria crowdfolio.Criteria
	sorts    map[View]table.SortState
	pages    map[View]int
	period   date.Period
	width    int

	filtered []crowdfolio.Transaction
	projects []crowdfolio.ProjectRow
	periods  []crowdfolio.PeriodRow
	timeline *timeline.Timeline
}

// New creates an empty session.
func New(opts Options) (*Session, error) {
	s := &Session{
		id:       uuid.New(),
		log:      zerolog.Nop(),
		tax:      opts.Taxonomy,
		clock:    opts.Clock,
		pageSize: opts.PageSize,
	}
	if opts.Logger != nil {
		s.log = opts.Logger.With().Str("session", s.id.String()).Logger()
	}
	if s.tax == nil {
		s.tax = crowdfolio.NewTaxonomy()
	}
	if s.clock == nil {
		s.clock = date.Today
	}
	if s.pageSize <= 0 {
		s.pageSize = DefaultPageSize
	}
	width := opts.TimelineWidth
	if width == 0 {
		width = timeline.DefaultWidth
	}

	st := &state{
		sorts:  defaultSorts(),
		pages:  map[View]int{},
		period: date.Monthly,
		width:  width,
	}
	if err := st.recompute(); err != nil {
		return nil, err
	}
	s.st = st
	return s, nil
}

// ID returns the session identifier, also found in every log line.
func (s *Session) ID() uuid.UUID { return s.id }

// clone returns a copy of st that a command can change without touching st.
func (st *state) clone() *state {
	c := *st
	c.criteria.Types = slices.Clone(st.criteria.Types)
	c.sorts = maps.Clone(st.sorts)
	c.pages = maps.Clone(st.pages)
	return &c
}

// recompute derives the filtered set and the aggregates from the selections.
func (st *state) recompute() error {
	st.filtered = crowdfolio.Filter(st.all, st.criteria)
	st.projects = crowdfolio.ProjectRows(st.filtered)
	st.periods = crowdfolio.PeriodRows(st.filtered, st.period)
	tl, err := timeline.New(timeline.Events(st.filtered), st.width)
	if err != nil {
		return err
	}
	st.timeline = tl
	return nil
}

// apply runs a command on a copy of the state, recomputes it when asked,
// and swaps it in on success.
func (s *Session) apply(command string, recompute bool, change func(st *state) error) error {
	next := s.st.clone()
	if err := change(next); err != nil {
		s.log.Warn().Err(err).Str("command", command).Msg("command rejected")
		return err
	}
	if recompute {
		if err := next.recompute(); err != nil {
			s.log.Warn().Err(err).Str("command", command).Msg("command rejected")
			return err
		}
	}
	s.st = next
	s.log.Debug().Str("command", command).Int("filtered", len(next.filtered)).Msg("state updated")
	return nil
}

// Load replaces the dataset with the normalized records and resets the
// filter and the pages. Sort orders, the period mode and the timeline width
// are kept. A dataset without any valid row is rejected with ErrNoValidRows
// and the session keeps its previous dataset.
func (s *Session) Load(records []crowdfolio.Record) error {
	res := crowdfolio.Normalize(records, s.tax)
	if res.Valid() == 0 {
		err := fmt.Errorf("%w: %d rows read, %d invalid", ErrNoValidRows, res.Total, res.Invalid)
		s.log.Warn().Err(err).Msg("dataset rejected")
		return err
	}
	for _, e := range res.Errors {
		s.log.Debug().Err(e).Msg("row dropped")
	}
	err := s.apply("load", true, func(st *state) error {
		st.all = res.Transactions
		st.total = res.Total
		st.invalid = res.Invalid
		st.criteria = crowdfolio.Criteria{}
		st.pages = map[View]int{}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info().Int("valid", res.Valid()).Int("invalid", res.Invalid).Msg("dataset loaded")
	return nil
}

// LoadCSV decodes a platform export and loads it.
func (s *Session) LoadCSV(r io.Reader) error {
	records, err := crowdfolio.DecodeCSV(r)
	if err != nil {
		s.log.Warn().Err(err).Msg("dataset rejected")
		return err
	}
	return s.Load(records)
}

// Loaded reports whether a dataset has been loaded.
func (s *Session) Loaded() bool { return len(s.st.all) > 0 }

// Counts returns the input rows of the last load and how many were dropped.
func (s *Session) Counts() (total, invalid int) { return s.st.total, s.st.invalid }

// All returns the whole dataset.
func (s *Session) All() []crowdfolio.Transaction { return s.st.all }

// Filtered returns the transactions selected by the criteria, in dataset order.
func (s *Session) Filtered() []crowdfolio.Transaction { return s.st.filtered }

// Criteria returns the current filter.
func (s *Session) Criteria() crowdfolio.Criteria { return s.st.criteria }

// ProjectNames lists the projects of the whole dataset, for the project filter.
func (s *Session) ProjectNames() []string { return s.st.criteria.Projects(s.st.all) }

// SetDateFrom sets the inclusive lower date bound, zero to clear it. A bound
// after the upper bound is rejected with crowdfolio.ErrInvalidRange.
func (s *Session) SetDateFrom(from date.Date) error {
	return s.apply("set-date-from", true, func(st *state) error {
		st.pages = map[View]int{}
		return st.criteria.SetFrom(from)
	})
}

// SetDateTo sets the inclusive upper date bound, zero to clear it. A bound
// before the lower bound is rejected with crowdfolio.ErrInvalidRange.
func (s *Session) SetDateTo(to date.Date) error {
	return s.apply("set-date-to", true, func(st *state) error {
		st.pages = map[View]int{}
		return st.criteria.SetTo(to)
	})
}

// SetTypes restricts the transactions to the given kinds, none for all.
func (s *Session) SetTypes(kinds ...crowdfolio.Kind) error {
	return s.apply("set-types", true, func(st *state) error {
		st.criteria.Types = slices.Clone(kinds)
		st.pages = map[View]int{}
		return nil
	})
}

// SetProject restricts the transactions to one project, "" for all.
func (s *Session) SetProject(project string) error {
	return s.apply("set-project", true, func(st *state) error {
		st.criteria.Project = project
		st.pages = map[View]int{}
		return nil
	})
}

// SetCriteria replaces the whole filter. The range is validated like with
// SetDateFrom and SetDateTo.
func (s *Session) SetCriteria(c crowdfolio.Criteria) error {
	return s.apply("set-criteria", true, func(st *state) error {
		var next crowdfolio.Criteria
		if err := next.SetFrom(c.From); err != nil {
			return err
		}
		if err := next.SetTo(c.To); err != nil {
			return err
		}
		next.Types = slices.Clone(c.Types)
		next.Project = c.Project
		st.criteria = next
		st.pages = map[View]int{}
		return nil
	})
}

// ResetFilters clears every criterion.
func (s *Session) ResetFilters() error {
	return s.apply("reset-filters", true, func(st *state) error {
		st.criteria = crowdfolio.Criteria{}
		st.pages = map[View]int{}
		return nil
	})
}

// SetPeriodMode switches the period rows between months and years.
func (s *Session) SetPeriodMode(p date.Period) error {
	return s.apply("set-period-mode", true, func(st *state) error {
		st.period = p
		delete(st.pages, ViewPeriods)
		return nil
	})
}

// PeriodMode returns the current period mode.
func (s *Session) PeriodMode() date.Period { return s.st.period }

// SetTimelineWidth segments the timeline again with windows of width
// months. The current window index is kept, clamped to the new windows.
func (s *Session) SetTimelineWidth(width int) error {
	return s.apply("set-timeline-width", false, func(st *state) error {
		tl := st.timeline.Clone()
		if err := tl.Resize(width); err != nil {
			return err
		}
		st.width = width
		st.timeline = tl
		return nil
	})
}

// TimelineNext moves the timeline to the following window. It reports
// whether it moved.
func (s *Session) TimelineNext() bool { return s.moveTimeline("timeline-next", (*timeline.Timeline).Next) }

// TimelinePrev moves the timeline to the previous window. It reports
// whether it moved.
func (s *Session) TimelinePrev() bool { return s.moveTimeline("timeline-prev", (*timeline.Timeline).Prev) }

func (s *Session) moveTimeline(command string, move func(*timeline.Timeline) bool) bool {
	moved := false
	s.apply(command, false, func(st *state) error {
		tl := st.timeline.Clone()
		moved = move(tl)
		st.timeline = tl
		return nil
	})
	return moved
}
