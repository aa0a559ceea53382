package returnreason_test

import (
	"testing"

	"admin-console/internal/console"
	"admin-console/internal/returnreason"
)

func TestStatusLabelIsSharedByTableAndDetail(t *testing.T) {
	e := returnreason.Entity(returnreason.DefaultEndpoints)
	for code, want := range map[int]string{0: "否", 1: "是"} {
		rec := returnreason.ReturnReason{ID: 2, Name: "质量问题", Status: code}
		row := e.Columns.Row(rec)
		detail := e.Columns.Describe(rec)
		if row.Cells[3].Text != want || detail[3].Text != want {
			t.Errorf("status %d: table %q detail %q, want %q", code, row.Cells[3].Text, detail[3].Text, want)
		}
	}
}

func TestByStatus(t *testing.T) {
	p := returnreason.ByStatus(1)
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Extra[returnreason.StatusFilter] != 1 {
		t.Errorf("expected status filter 1, got %v", p.Extra)
	}
	if searchable := e().Columns.Searchable(); len(searchable) != 2 {
		t.Errorf("expected name and status to be searchable, got %v", searchable)
	}
}

func e() console.Entity[returnreason.ReturnReason] {
	return returnreason.Entity(returnreason.DefaultEndpoints)
}
