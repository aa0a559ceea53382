package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"admin-console/internal/console"
)

type formInput struct {
	field console.FormField
	input textinput.Model
}

// form is the create/update modal. It edits the entity's visible form
// fields; on update the hidden form fields of the current record are sent
// back unchanged and everything outside the form is dropped.
type form struct {
	kind   console.ModalKind
	title  string
	base   map[string]any
	keys   map[string]bool
	inputs []formInput
	focus  int
	err    string
}

func newForm(kind console.ModalKind, title string, fields []console.FormField, current any) (*form, error) {
	base := map[string]any{}
	if kind == console.ModalUpdate && current != nil {
		var err error
		if base, err = toMap(current); err != nil {
			return nil, err
		}
	}

	f := &form{kind: kind, title: title, base: base, keys: make(map[string]bool, len(fields))}
	for _, field := range fields {
		f.keys[field.Key] = true
		if field.Hidden {
			continue
		}
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 256
		in.Placeholder = placeholder(field)
		if v, ok := base[field.Key]; ok && v != nil {
			in.SetValue(fmt.Sprint(v))
		}
		f.inputs = append(f.inputs, formInput{field: field, input: in})
	}
	f.setFocus(0)
	return f, nil
}

func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	m := map[string]any{}
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	return m, nil
}

func placeholder(field console.FormField) string {
	if field.Kind != console.FieldEnum {
		return ""
	}
	opts := make([]string, 0, len(field.Choices))
	for _, c := range field.Choices {
		opts = append(opts, fmt.Sprintf("%d=%s", c.Value, c.Label))
	}
	return strings.Join(opts, " ")
}

func (f *form) setFocus(i int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	f.inputs[f.focus].input.Blur()
	f.focus = (i + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].input.Focus()
}

func (f *form) last() bool { return f.focus == len(f.inputs)-1 }

func (f *form) update(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus].input, cmd = f.inputs[f.focus].input.Update(msg)
	return cmd
}

// payload builds the JSON record to submit.
func (f *form) payload() ([]byte, error) {
	out := make(map[string]any, len(f.base)+len(f.inputs))
	for k, v := range f.base {
		if f.keys[k] {
			out[k] = v
		}
	}
	if f.kind == console.ModalCreate {
		delete(out, "id")
	}
	for _, in := range f.inputs {
		s := strings.TrimSpace(in.input.Value())
		if s == "" && in.field.Kind != console.FieldText {
			continue
		}
		v, err := parseField(in.field, s)
		if err != nil {
			return nil, err
		}
		out[in.field.Key] = v
	}
	return json.Marshal(out)
}

func parseField(field console.FormField, s string) (any, error) {
	switch field.Kind {
	case console.FieldInt:
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%s must be a number", field.Label)
		}
		return n, nil
	case console.FieldEnum:
		n, err := strconv.Atoi(s)
		if err == nil {
			for _, c := range field.Choices {
				if c.Value == n {
					return n, nil
				}
			}
		}
		return nil, fmt.Errorf("%s must be one of %s", field.Label, placeholder(field))
	default:
		return s, nil
	}
}

func (f *form) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title) + "\n\n")
	width := 0
	for _, in := range f.inputs {
		width = max(width, len([]rune(in.field.Label)))
	}
	for i, in := range f.inputs {
		cursor := "  "
		if i == f.focus {
			cursor = "> "
		}
		label := in.field.Label + strings.Repeat(" ", width-len([]rune(in.field.Label)))
		b.WriteString(cursor + labelStyle.Render(label) + "  " + in.input.View() + "\n")
	}
	if f.err != "" {
		b.WriteString("\n" + errorStyle.Render(f.err) + "\n")
	}
	b.WriteString("\n" + labelStyle.Render("tab next · enter submit on last field · esc cancel"))
	return panelStyle.Render(b.String())
}
