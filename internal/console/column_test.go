package console_test

import (
	"encoding/json"
	"testing"

	"admin-console/internal/console"
)

func TestEnumFormatter(t *testing.T) {
	format := console.Enum(console.YesNo)
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"int zero", 0, "否"},
		{"int one", 1, "是"},
		{"float from json", float64(1), "是"},
		{"json number", json.Number("0"), "否"},
		{"numeric string", "1", "是"},
		{"unknown code", 7, "7"},
		{"nil", nil, "-"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := format(tc.in).Text; got != tc.want {
				t.Errorf("format(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestThumbnailFormatter(t *testing.T) {
	c := console.Thumbnail(100, 80)("http://cdn/icon.png")
	if c.Image == nil || c.Image.URL != "http://cdn/icon.png" || c.Image.Width != 100 || c.Image.Height != 80 {
		t.Errorf("unexpected image cell: %+v", c)
	}
	if empty := console.Thumbnail(100, 80)(""); empty.Image != nil || empty.Text != "-" {
		t.Errorf("empty url should render as text, got %+v", empty)
	}
}

func TestSchemaTableAndDetailAgree(t *testing.T) {
	rec := item{ID: 4, Name: "四", Status: 0}

	row := testSchema.Row(rec)
	detail := testSchema.Describe(rec)

	if row.ID != 4 {
		t.Errorf("expected row id 4, got %d", row.ID)
	}
	if len(row.Cells) != len(detail) {
		t.Fatalf("table and detail disagree on columns: %d vs %d", len(row.Cells), len(detail))
	}
	for i := range detail {
		if row.Cells[i] != detail[i] {
			t.Errorf("cell %s differs: table %+v detail %+v", detail[i].Key, row.Cells[i], detail[i])
		}
	}
	if row.Cells[2].Text != "否" {
		t.Errorf("expected status label 否, got %q", row.Cells[2].Text)
	}
	if !row.Cells[1].Link {
		t.Errorf("name column should link to detail")
	}
}

func TestSchemaColumns(t *testing.T) {
	infos := testSchema.Columns()
	if len(infos) != 3 || infos[0].Label != "编号" || !infos[0].HideInSearch {
		t.Errorf("unexpected column infos: %+v", infos)
	}
	keys := testSchema.Searchable()
	if len(keys) != 2 || keys[0] != "name" || keys[1] != "status" {
		t.Errorf("unexpected searchable keys: %v", keys)
	}
}

func TestQueryParamsValidate(t *testing.T) {
	cases := []struct {
		name    string
		params  console.QueryParams
		wantErr bool
	}{
		{"empty", console.QueryParams{}, false},
		{"paged", console.QueryParams{PageSize: console.IntPtr(10), Current: console.IntPtr(1)}, false},
		{"zero page size", console.QueryParams{PageSize: console.IntPtr(0)}, true},
		{"negative current", console.QueryParams{Current: console.IntPtr(-1)}, true},
		{"empty direction", console.QueryParams{Sorter: map[string]console.Direction{"sort": ""}}, false},
		{"custom direction", console.QueryParams{Sorter: map[string]console.Direction{"sort": "up"}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.params.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
