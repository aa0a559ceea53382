package console

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Cell is one formatted value, shared by the table and the detail view.
type Cell struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Text   string `json:"text"`
	Status string `json:"status,omitempty"`
	Image  *Image `json:"image,omitempty"`
	Link   bool   `json:"link,omitempty"`
}

// Image is a thumbnail to render instead of text.
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Formatter turns a raw field value into its display form. Formatters must be
// pure; the table and the detail view call the same one for the same column.
type Formatter func(v any) Cell

// EnumOption is the label of one enum code.
type EnumOption struct {
	Text   string
	Status string
}

const emptyText = "-"

// Text renders the value as-is.
func Text() Formatter {
	return func(v any) Cell {
		if v == nil {
			return Cell{Text: emptyText}
		}
		if s, ok := v.(string); ok && s == "" {
			return Cell{Text: emptyText}
		}
		return Cell{Text: fmt.Sprint(v)}
	}
}

// Enum maps integer codes to labels. Unknown codes fall back to the raw value.
func Enum(options map[int]EnumOption) Formatter {
	return func(v any) Cell {
		code, ok := toInt(v)
		if !ok {
			return Text()(v)
		}
		opt, ok := options[code]
		if !ok {
			return Cell{Text: strconv.Itoa(code)}
		}
		return Cell{Text: opt.Text, Status: opt.Status}
	}
}

// Thumbnail renders an image URL as a width x height preview.
func Thumbnail(width, height int) Formatter {
	return func(v any) Cell {
		url, _ := v.(string)
		if url == "" {
			return Cell{Text: emptyText}
		}
		return Cell{Text: url, Image: &Image{URL: url, Width: width, Height: height}}
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint8:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	case string:
		i, err := strconv.Atoi(n)
		return i, err == nil
	}
	return 0, false
}

// Column declares how one field is shown.
type Column[T Record] struct {
	Key          string
	Label        string
	Value        func(T) any
	Format       Formatter
	HideInSearch bool
	// Link makes the cell open the detail drawer.
	Link bool
}

// ColumnInfo is the renderer-facing description of a Column.
type ColumnInfo struct {
	Key          string `json:"key"`
	Label        string `json:"label"`
	HideInSearch bool   `json:"hideInSearch,omitempty"`
	Link         bool   `json:"link,omitempty"`
}

// Schema is the ordered column list of an entity.
type Schema[T Record] []Column[T]

// Row is one table row. Tree records carry their children.
type Row struct {
	ID       int64  `json:"id"`
	Cells    []Cell `json:"cells"`
	Children []Row  `json:"children,omitempty"`
}

func (s Schema[T]) cell(col Column[T], rec T) Cell {
	format := col.Format
	if format == nil {
		format = Text()
	}
	var v any
	if col.Value != nil {
		v = col.Value(rec)
	}
	c := format(v)
	c.Key, c.Label, c.Link = col.Key, col.Label, col.Link
	return c
}

func (s Schema[T]) cells(rec T) []Cell {
	cells := make([]Cell, 0, len(s))
	for _, col := range s {
		cells = append(cells, s.cell(col, rec))
	}
	return cells
}

// Row renders rec as a table row, including nested children.
func (s Schema[T]) Row(rec T) Row {
	row := Row{ID: rec.RecordID(), Cells: s.cells(rec)}
	if n, ok := any(rec).(Nested[T]); ok {
		for _, child := range n.RecordChildren() {
			row.Children = append(row.Children, s.Row(child))
		}
	}
	return row
}

// Describe renders rec for the read-only detail view.
func (s Schema[T]) Describe(rec T) []Cell {
	return s.cells(rec)
}

func (s Schema[T]) Columns() []ColumnInfo {
	infos := make([]ColumnInfo, 0, len(s))
	for _, col := range s {
		infos = append(infos, ColumnInfo{
			Key:          col.Key,
			Label:        col.Label,
			HideInSearch: col.HideInSearch,
			Link:         col.Link,
		})
	}
	return infos
}

// Searchable returns the keys of the columns offered as search filters.
func (s Schema[T]) Searchable() []string {
	var keys []string
	for _, col := range s {
		if !col.HideInSearch {
			keys = append(keys, col.Key)
		}
	}
	return keys
}
