package table

import (
	"errors"
	"reflect"
	"testing"

	"github.com/etnz/crowdfolio/date"
)

type row struct {
	name   string
	amount float64
	on     date.Date
}

var columns = Columns[row]{
	Text("name", func(r row) string { return r.name }),
	Number("amount", func(r row) float64 { return r.amount }),
	Date("date", func(r row) date.Date { return r.on }),
}

var rows = []row{
	{name: "beta", amount: 10, on: date.MustParse("2024-03-01")},
	{name: "Alpha", amount: 30, on: date.MustParse("2024-01-01")},
	{name: "gamma", amount: 10, on: date.MustParse("2024-02-01")},
	{name: "alpha", amount: 20, on: date.MustParse("2024-01-01")},
}

func names(rs []row) []string {
	var out []string
	for _, r := range rs {
		out = append(out, r.name)
	}
	return out
}

func TestSort(t *testing.T) {
	testCases := []struct {
		field string
		dir   Direction
		want  []string
	}{
		{field: "name", dir: Ascending, want: []string{"Alpha", "alpha", "beta", "gamma"}},
		{field: "name", dir: Descending, want: []string{"gamma", "beta", "Alpha", "alpha"}},
		{field: "amount", dir: Descending, want: []string{"Alpha", "alpha", "beta", "gamma"}},
		{field: "amount", dir: Ascending, want: []string{"beta", "gamma", "alpha", "Alpha"}},
		{field: "date", dir: Descending, want: []string{"beta", "gamma", "Alpha", "alpha"}},
	}
	for _, tc := range testCases {
		t.Run(tc.field+" "+tc.dir.String(), func(t *testing.T) {
			col, err := columns.Lookup(tc.field)
			if err != nil {
				t.Fatalf("Lookup() error = %v", err)
			}
			got := names(Sort(rows, col, tc.dir))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Sort() = %v, want %v", got, tc.want)
			}
		})
	}
	if rows[0].name != "beta" {
		t.Errorf("Sort() modified its input")
	}
}

func TestToggle(t *testing.T) {
	name, _ := columns.Lookup("name")
	amount, _ := columns.Lookup("amount")

	s := Toggle(SortState{}, amount)
	if s != (SortState{Field: "amount", Direction: Descending}) {
		t.Errorf("first sort on amount = %+v, want desc", s)
	}
	s = Toggle(s, amount)
	if s.Direction != Ascending {
		t.Errorf("second sort on amount = %+v, want asc", s)
	}
	s = Toggle(s, name)
	if s != (SortState{Field: "name", Direction: Ascending}) {
		t.Errorf("switch to name = %+v, want asc", s)
	}
	s = Toggle(s, name.WithDefault(Descending))
	if s.Direction != Descending {
		t.Errorf("second sort on name = %+v, want desc", s)
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, err := columns.Lookup("nope"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Lookup(nope) error = %v, want ErrUnknownField", err)
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	testCases := []struct {
		page, size int
		want       []int
	}{
		{page: 1, size: 2, want: []int{1, 2}},
		{page: 3, size: 2, want: []int{5}},
		{page: 4, size: 2, want: []int{}},
		{page: 0, size: 2, want: []int{}},
		{page: 1, size: 0, want: []int{}},
		{page: 1, size: 10, want: []int{1, 2, 3, 4, 5}},
	}
	for _, tc := range testCases {
		if got := Paginate(items, tc.page, tc.size); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Paginate(%d, %d) = %v, want %v", tc.page, tc.size, got, tc.want)
		}
	}
}

func TestClampPage(t *testing.T) {
	testCases := []struct {
		page, n, size, want int
	}{
		{page: 3, n: 5, size: 2, want: 3},
		{page: 9, n: 5, size: 2, want: 3},
		{page: 0, n: 5, size: 2, want: 1},
		{page: 2, n: 0, size: 2, want: 1},
	}
	for _, tc := range testCases {
		if got := ClampPage(tc.page, tc.n, tc.size); got != tc.want {
			t.Errorf("ClampPage(%d, %d, %d) = %d, want %d", tc.page, tc.n, tc.size, got, tc.want)
		}
	}
}

func TestView(t *testing.T) {
	p, err := View(rows, columns, SortState{Field: "name", Direction: Ascending}, 5, 3)
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	if p.Page != 2 || p.Pages != 2 || p.Total != 4 || !reflect.DeepEqual(names(p.Rows), []string{"gamma"}) {
		t.Errorf("View() = %+v, want the clamped last page", p)
	}
}
