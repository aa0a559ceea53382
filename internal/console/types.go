package console

import "fmt"

// Record is one row of an entity. Identity is the id assigned by the backend.
type Record interface {
	RecordID() int64
}

// Nested is implemented by records that carry their children, such as the
// nodes of a category tree.
type Nested[T Record] interface {
	RecordChildren() []T
}

// Walk calls fn for every record in rows and their nested children, depth
// first. fn returns false to stop.
func Walk[T Record](rows []T, fn func(rec T, depth int) bool) bool {
	var walk func(rows []T, depth int) bool
	walk = func(rows []T, depth int) bool {
		for _, r := range rows {
			if !fn(r, depth) {
				return false
			}
			if n, ok := any(r).(Nested[T]); ok {
				if !walk(n.RecordChildren(), depth+1) {
					return false
				}
			}
		}
		return true
	}
	return walk(rows, 0)
}

// Direction is a sort direction as sent by the table. Values other than
// Ascend and Descend are passed to the backend untouched.
type Direction string

const (
	Ascend  Direction = "ascend"
	Descend Direction = "descend"
)

// QueryParams is the table state translated into a backend query.
// Nil PageSize/Current mean "server default".
type QueryParams struct {
	PageSize *int                 `json:"pageSize,omitempty"`
	Current  *int                 `json:"current,omitempty"`
	Filter   map[string][]any     `json:"filter,omitempty"`
	Sorter   map[string]Direction `json:"sorter,omitempty"`
	Extra    map[string]any       `json:"extra,omitempty"`
}

// Validate rejects non-positive paging values. Filter and sorter values are
// left to the backend.
func (p QueryParams) Validate() error {
	if p.PageSize != nil && *p.PageSize <= 0 {
		return fmt.Errorf("%w: pageSize must be positive, got %d", ErrInvalidParams, *p.PageSize)
	}
	if p.Current != nil && *p.Current <= 0 {
		return fmt.Errorf("%w: current must be positive, got %d", ErrInvalidParams, *p.Current)
	}
	return nil
}

// WithPage returns a copy of p pointing at the given page.
func (p QueryParams) WithPage(current int) QueryParams {
	p.Current = IntPtr(current)
	return p
}

// Pagination is reported by the backend. Fields the server omits stay nil.
type Pagination struct {
	Total    *int `json:"total,omitempty"`
	PageSize *int `json:"pageSize,omitempty"`
	Current  *int `json:"current,omitempty"`
}

// ListResult is one page of records exactly as the backend returned it.
type ListResult[T Record] struct {
	List       []T        `json:"list"`
	Pagination Pagination `json:"pagination"`
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
