package console

// ModalKind names one of the overlays a page can show.
type ModalKind string

const (
	ModalCreate ModalKind = "create"
	ModalUpdate ModalKind = "update"
	ModalDetail ModalKind = "detail"
)

// ParseModalKind validates a modal name coming from a client.
func ParseModalKind(s string) (ModalKind, bool) {
	switch k := ModalKind(s); k {
	case ModalCreate, ModalUpdate, ModalDetail:
		return k, true
	}
	return "", false
}

// ModalEvent is an input to UIState.Apply.
type ModalEvent[T Record] struct {
	Kind   ModalKind
	Open   bool
	Record T
}

func OpenCreate[T Record]() ModalEvent[T] { return ModalEvent[T]{Kind: ModalCreate, Open: true} }
func OpenUpdate[T Record](r T) ModalEvent[T] {
	return ModalEvent[T]{Kind: ModalUpdate, Open: true, Record: r}
}
func OpenDetail[T Record](r T) ModalEvent[T] {
	return ModalEvent[T]{Kind: ModalDetail, Open: true, Record: r}
}
func Close[T Record](kind ModalKind) ModalEvent[T] { return ModalEvent[T]{Kind: kind} }

// UIState is the visibility of the create modal, update modal and detail
// drawer plus the record the latter two show.
//
// UpdateVisible and DetailVisible both imply a current record. The zero value
// is the initial state: everything closed, no record.
type UIState[T Record] struct {
	CreateVisible bool
	UpdateVisible bool
	DetailVisible bool

	current    T
	hasCurrent bool

	createGen uint64
	updateGen uint64
	detailGen uint64
}

// Current returns the record shown by the update modal or detail drawer.
func (s UIState[T]) Current() (T, bool) {
	return s.current, s.hasCurrent
}

// Generation changes whenever the given overlay opens or closes. Commands
// compare it before and after their network call to detect that the modal
// they came from was closed or reopened meanwhile.
func (s UIState[T]) Generation(kind ModalKind) uint64 {
	switch kind {
	case ModalCreate:
		return s.createGen
	case ModalUpdate:
		return s.updateGen
	case ModalDetail:
		return s.detailGen
	}
	return 0
}

// Visible reports whether the given overlay is open.
func (s UIState[T]) Visible(kind ModalKind) bool {
	switch kind {
	case ModalCreate:
		return s.CreateVisible
	case ModalUpdate:
		return s.UpdateVisible
	case ModalDetail:
		return s.DetailVisible
	}
	return false
}

// Apply is the single transition function of the page overlays. The
// receiver is left untouched; on error the returned state equals it.
func (s UIState[T]) Apply(ev ModalEvent[T]) (UIState[T], error) {
	next := s
	switch {
	case ev.Open && ev.Kind == ModalCreate:
		if s.UpdateVisible {
			return s, ErrModalConflict
		}
		next.CreateVisible = true
		next.createGen++

	case ev.Open && ev.Kind == ModalUpdate:
		if s.CreateVisible {
			return s, ErrModalConflict
		}
		if ev.Record.RecordID() < 1 {
			return s, ErrIDRequired
		}
		next.current, next.hasCurrent = ev.Record, true
		next.UpdateVisible = true
		next.updateGen++

	case ev.Open && ev.Kind == ModalDetail:
		if ev.Record.RecordID() < 1 {
			return s, ErrIDRequired
		}
		next.current, next.hasCurrent = ev.Record, true
		next.DetailVisible = true
		next.detailGen++

	case ev.Kind == ModalCreate:
		next.CreateVisible = false
		next.createGen++
	case ev.Kind == ModalUpdate:
		next.UpdateVisible = false
		next.updateGen++
	case ev.Kind == ModalDetail:
		next.DetailVisible = false
		next.detailGen++
	default:
		return s, nil
	}

	if !next.UpdateVisible && !next.DetailVisible {
		var zero T
		next.current, next.hasCurrent = zero, false
	}
	return next, nil
}
