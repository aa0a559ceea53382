package console

// Selection holds the checked rows of the table. Every change event replaces
// the whole set.
type Selection[T Record] struct {
	items []T
}

// OnSelectionChange replaces the selection with rows.
func (s *Selection[T]) OnSelectionChange(rows []T) {
	s.items = append([]T(nil), rows...)
}

func (s *Selection[T]) Clear() {
	s.items = nil
}

func (s *Selection[T]) Count() int {
	return len(s.items)
}

// Items returns a copy of the selected rows.
func (s *Selection[T]) Items() []T {
	return append([]T(nil), s.items...)
}

// IDs returns the ids of the selected rows in selection order.
func (s *Selection[T]) IDs() []int64 {
	ids := make([]int64, 0, len(s.items))
	for _, item := range s.items {
		ids = append(ids, item.RecordID())
	}
	return ids
}
