package table

// Paginate returns the rows of the 1-based page. It is a plain offset slice:
// a page out of range gives an empty slice, clamping is left to the caller
// (see ClampPage).
func Paginate[T any](rows []T, page, size int) []T {
	if page < 1 || size < 1 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(rows) {
		return []T{}
	}
	end := min(start+size, len(rows))
	return rows[start:end:end]
}

// PageCount returns the number of pages needed for n rows, at least 1.
func PageCount(n, size int) int {
	if size < 1 || n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}

// ClampPage brings page into the valid pages for n rows.
func ClampPage(page, n, size int) int {
	return max(1, min(page, PageCount(n, size)))
}

// Page is one page of a sorted view.
type Page[T any] struct {
	Rows  []T       `json:"rows"`
	Page  int       `json:"page"`
	Pages int       `json:"pages"`
	Size  int       `json:"size"`
	Total int       `json:"total"` // rows in the whole view
	Sort  SortState `json:"sort"`
}

// View sorts rows according to state and returns the clamped page.
func View[T any](rows []T, cols Columns[T], state SortState, page, size int) (Page[T], error) {
	if state.Field != "" {
		col, err := cols.Lookup(state.Field)
		if err != nil {
			return Page[T]{}, err
		}
		rows = Sort(rows, col, state.Direction)
	}
	page = ClampPage(page, len(rows), size)
	return Page[T]{
		Rows:  Paginate(rows, page, size),
		Page:  page,
		Pages: PageCount(len(rows), size),
		Size:  size,
		Total: len(rows),
		Sort:  state,
	}, nil
}
