// Package table sorts and paginates the rows of tabular views.
//
// A view declares its columns once, each with a semantic type deciding how
// values compare and with the direction it sorts in when first selected.
package table

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/crowdfolio/date"
	"golang.org/x/text/cases"
)

// ErrUnknownField is returned when a view has no column of a given name.
var ErrUnknownField = errors.New("unknown field")

// Direction is a sort order.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// Type is the semantic type of a column's values.
type Type int

const (
	TypeText Type = iota
	TypeNumber
	TypeDate
)

// Column describes one sortable field of rows of type T.
type Column[T any] struct {
	Name    string
	Type    Type
	Default Direction // the direction used when the column is first selected

	text   func(T) string
	number func(T) float64
	date   func(T) date.Date
}

// Text declares a column compared case-insensitively. It sorts ascending by default.
func Text[T any](name string, get func(T) string) Column[T] {
	return Column[T]{Name: name, Type: TypeText, Default: Ascending, text: get}
}

// Number declares a numeric column. It sorts largest first by default.
func Number[T any](name string, get func(T) float64) Column[T] {
	return Column[T]{Name: name, Type: TypeNumber, Default: Descending, number: get}
}

// Date declares a date column. It sorts most recent first by default.
func Date[T any](name string, get func(T) date.Date) Column[T] {
	return Column[T]{Name: name, Type: TypeDate, Default: Descending, date: get}
}

// WithDefault returns the column with another default direction.
func (c Column[T]) WithDefault(d Direction) Column[T] {
	c.Default = d
	return c
}

// compare returns the ascending comparison of the column.
func (c Column[T]) compare() func(a, b T) int {
	switch c.Type {
	case TypeNumber:
		return func(a, b T) int {
			x, y := c.number(a), c.number(b)
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		}
	case TypeDate:
		return func(a, b T) int { return c.date(a).Compare(c.date(b)) }
	default:
		fold := cases.Fold()
		return func(a, b T) int { return strings.Compare(fold.String(c.text(a)), fold.String(c.text(b))) }
	}
}

// Columns is the column set of a view.
type Columns[T any] []Column[T]

// Lookup returns the column named name.
func (cs Columns[T]) Lookup(name string) (Column[T], error) {
	for _, c := range cs {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return Column[T]{}, fmt.Errorf("%w %q", ErrUnknownField, name)
}

// Names lists the column names.
func (cs Columns[T]) Names() []string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name
	}
	return names
}

// Sort returns a copy of rows stably sorted on col. Rows comparing equal
// keep their input order in both directions.
func Sort[T any](rows []T, col Column[T], dir Direction) []T {
	sorted := slices.Clone(rows)
	cmp := col.compare()
	if dir == Descending {
		slices.SortStableFunc(sorted, func(a, b T) int { return cmp(b, a) })
	} else {
		slices.SortStableFunc(sorted, cmp)
	}
	return sorted
}

// SortState is the current sort of a view.
type SortState struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// Toggle returns the state after the user sorts by col: the direction is
// reversed when col is already the sorted field, otherwise col's default
// direction applies.
func Toggle[T any](s SortState, col Column[T]) SortState {
	if strings.EqualFold(s.Field, col.Name) {
		return SortState{Field: col.Name, Direction: s.Direction.Reverse()}
	}
	return SortState{Field: col.Name, Direction: col.Default}
}
