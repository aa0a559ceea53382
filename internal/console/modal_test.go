package console_test

import (
	"errors"
	"testing"

	"admin-console/internal/console"
)

func mustApply(t *testing.T, s console.UIState[item], ev console.ModalEvent[item]) console.UIState[item] {
	t.Helper()
	next, err := s.Apply(ev)
	if err != nil {
		t.Fatalf("Apply(%+v): %v", ev, err)
	}
	return next
}

func TestUIStateApply(t *testing.T) {
	t.Run("Initial state", func(t *testing.T) {
		var s console.UIState[item]
		if s.CreateVisible || s.UpdateVisible || s.DetailVisible {
			t.Errorf("expected all closed")
		}
		if _, ok := s.Current(); ok {
			t.Errorf("expected no current record")
		}
	})

	t.Run("Close update clears record when detail is closed", func(t *testing.T) {
		var s console.UIState[item]
		s = mustApply(t, s, console.OpenUpdate(item{ID: 5, Name: "five"}))
		cur, ok := s.Current()
		if !ok || cur.ID != 5 || !s.UpdateVisible {
			t.Fatalf("expected update open on 5, got %+v %v", cur, ok)
		}
		s = mustApply(t, s, console.Close[item](console.ModalUpdate))
		if _, ok := s.Current(); ok {
			t.Errorf("expected record cleared")
		}
	})

	t.Run("Close update keeps record for open detail", func(t *testing.T) {
		var s console.UIState[item]
		s = mustApply(t, s, console.OpenDetail(item{ID: 7}))
		s = mustApply(t, s, console.OpenUpdate(item{ID: 7}))
		s = mustApply(t, s, console.Close[item](console.ModalUpdate))
		cur, ok := s.Current()
		if !ok || cur.ID != 7 || !s.DetailVisible {
			t.Errorf("expected detail to keep record 7, got %+v %v", cur, ok)
		}
		s = mustApply(t, s, console.Close[item](console.ModalDetail))
		if _, ok := s.Current(); ok {
			t.Errorf("expected record cleared after detail closed")
		}
	})

	t.Run("Close update then open detail shows the record", func(t *testing.T) {
		var s console.UIState[item]
		rec := item{ID: 3, Name: "three"}
		s = mustApply(t, s, console.OpenUpdate(rec))
		s = mustApply(t, s, console.Close[item](console.ModalUpdate))
		s = mustApply(t, s, console.OpenDetail(rec))
		cur, ok := s.Current()
		if !ok || cur != rec {
			t.Errorf("expected %+v, got %+v", rec, cur)
		}
	})

	t.Run("Create does not need a record", func(t *testing.T) {
		var s console.UIState[item]
		s = mustApply(t, s, console.OpenCreate[item]())
		if !s.CreateVisible {
			t.Fatalf("expected create open")
		}
		if _, ok := s.Current(); ok {
			t.Errorf("create must not set a record")
		}
		s = mustApply(t, s, console.OpenDetail(item{ID: 1}))
		s = mustApply(t, s, console.Close[item](console.ModalCreate))
		if _, ok := s.Current(); !ok {
			t.Errorf("closing create must keep the detail record")
		}
	})

	t.Run("Create and update are exclusive", func(t *testing.T) {
		var s console.UIState[item]
		s = mustApply(t, s, console.OpenCreate[item]())
		next, err := s.Apply(console.OpenUpdate(item{ID: 1}))
		if !errors.Is(err, console.ErrModalConflict) {
			t.Fatalf("expected ErrModalConflict, got %v", err)
		}
		if next != s {
			t.Errorf("rejected transition must not change state")
		}

		var u console.UIState[item]
		u = mustApply(t, u, console.OpenUpdate(item{ID: 1}))
		if _, err := u.Apply(console.OpenCreate[item]()); !errors.Is(err, console.ErrModalConflict) {
			t.Errorf("expected ErrModalConflict, got %v", err)
		}
	})

	t.Run("Record without id is rejected", func(t *testing.T) {
		var s console.UIState[item]
		if _, err := s.Apply(console.OpenDetail(item{})); !errors.Is(err, console.ErrIDRequired) {
			t.Errorf("expected ErrIDRequired, got %v", err)
		}
	})

	t.Run("Generation is tracked per overlay", func(t *testing.T) {
		var s console.UIState[item]
		s = mustApply(t, s, console.OpenCreate[item]())
		create := s.Generation(console.ModalCreate)
		s = mustApply(t, s, console.OpenDetail(item{ID: 1}))
		s = mustApply(t, s, console.Close[item](console.ModalDetail))
		if got := s.Generation(console.ModalCreate); got != create {
			t.Errorf("detail drawer changed the create generation: %d -> %d", create, got)
		}

		s = mustApply(t, s, console.Close[item](console.ModalCreate))
		s = mustApply(t, s, console.OpenCreate[item]())
		if got := s.Generation(console.ModalCreate); got == create {
			t.Errorf("expected a new create generation after close and reopen, still %d", got)
		}
	})
}

func TestParseModalKind(t *testing.T) {
	for _, name := range []string{"create", "update", "detail"} {
		if _, ok := console.ParseModalKind(name); !ok {
			t.Errorf("expected %q to parse", name)
		}
	}
	if _, ok := console.ParseModalKind("drawer"); ok {
		t.Errorf("expected unknown modal to be rejected")
	}
}
