package category_test

import (
	"testing"

	"admin-console/internal/category"
)

func TestTree(t *testing.T) {
	flat := []category.Category{
		{ID: 1, ParentID: 0, Name: "服装"},
		{ID: 2, ParentID: 0, Name: "手机"},
		{ID: 3, ParentID: 1, Name: "外套"},
		{ID: 4, ParentID: 1, Name: "T恤"},
		{ID: 5, ParentID: 2, Name: "手机通讯"},
		{ID: 6, ParentID: 42, Name: "孤儿"},
	}

	roots := category.Tree(flat)
	if len(roots) != 3 {
		t.Fatalf("expected 3 roots, got %d: %+v", len(roots), roots)
	}
	if roots[0].ID != 1 || roots[1].ID != 2 || roots[2].ID != 6 {
		t.Errorf("unexpected root order: %d %d %d", roots[0].ID, roots[1].ID, roots[2].ID)
	}
	if kids := roots[0].Children; len(kids) != 2 || kids[0].ID != 3 || kids[1].ID != 4 {
		t.Errorf("unexpected children of 1: %+v", kids)
	}
	if kids := roots[1].Children; len(kids) != 1 || kids[0].ID != 5 {
		t.Errorf("unexpected children of 2: %+v", kids)
	}
}

func TestTreeIgnoresSelfParent(t *testing.T) {
	roots := category.Tree([]category.Category{{ID: 1, ParentID: 1}})
	if len(roots) != 1 || len(roots[0].Children) != 0 {
		t.Errorf("self-parented node should be a leaf root, got %+v", roots)
	}
}

func TestTreeKeepsParentCycles(t *testing.T) {
	roots := category.Tree([]category.Category{
		{ID: 1, ParentID: 2},
		{ID: 2, ParentID: 1},
		{ID: 3, ParentID: 0},
	})
	if len(roots) != 2 || roots[0].ID != 3 || roots[1].ID != 1 {
		t.Fatalf("expected roots 3 and 1, got %+v", roots)
	}
	if kids := roots[1].Children; len(kids) != 1 || kids[0].ID != 2 || len(kids[0].Children) != 0 {
		t.Errorf("expected 2 as the only descendant of 1, got %+v", kids)
	}
}

func TestEntityColumns(t *testing.T) {
	e := category.Entity(category.DefaultEndpoints)
	row := e.Columns.Row(category.Category{ID: 8, Level: 1, NavStatus: 0, ShowStatus: 1, Icon: "http://img/icon.png"})

	labels := map[string]string{}
	for _, c := range row.Cells {
		labels[c.Key] = c.Text
	}
	if labels["level"] != "二级" || labels["navStatus"] != "否" || labels["showStatus"] != "是" {
		t.Errorf("unexpected enum labels: %v", labels)
	}
	if row.Cells[2].Image == nil || row.Cells[2].Image.Width != 100 {
		t.Errorf("icon should render as a 100x80 thumbnail: %+v", row.Cells[2])
	}
	if e.Paginate {
		t.Errorf("category list loads without pagination")
	}
}
