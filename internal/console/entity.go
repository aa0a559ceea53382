package console

// Endpoints are the backend paths of one entity, relative to the backend URL.
type Endpoints struct {
	Query  string `mapstructure:"query"`
	Create string `mapstructure:"create"`
	Update string `mapstructure:"update"`
	Delete string `mapstructure:"delete"`
}

// Ops lists the mutations an entity page offers.
type Ops struct {
	Create bool `json:"create"`
	Update bool `json:"update"`
	Delete bool `json:"delete"`
}

// FieldKind tells a form how to read an input.
type FieldKind string

const (
	FieldText FieldKind = "text"
	FieldInt  FieldKind = "int"
	FieldEnum FieldKind = "enum"
)

// EnumChoice is one option of an enum form field.
type EnumChoice struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// FormField is one input of the create/update forms.
type FormField struct {
	Key     string       `json:"key"`
	Label   string       `json:"label"`
	Kind    FieldKind    `json:"kind"`
	Choices []EnumChoice `json:"choices,omitempty"`
	// Hidden fields are carried but not editable (the id on update).
	Hidden bool `json:"hidden,omitempty"`
}

// Entity is everything the generic page needs to manage one backend resource.
type Entity[T Record] struct {
	Name      string
	Title     string
	Endpoints Endpoints
	Columns   Schema[T]
	Form      []FormField
	Ops       Ops
	// PageSize is sent on the first load; 0 leaves it to the server.
	PageSize int
	// Paginate false loads everything in one page.
	Paginate bool
	// PostProcess reshapes a fetched page, e.g. into a tree.
	PostProcess func([]T) []T
}

// EntityInfo is the renderer-facing description of an Entity.
type EntityInfo struct {
	Name     string       `json:"name"`
	Title    string       `json:"title"`
	Columns  []ColumnInfo `json:"columns"`
	Form     []FormField  `json:"form,omitempty"`
	Ops      Ops          `json:"ops"`
	PageSize int          `json:"pageSize,omitempty"`
	Paginate bool         `json:"paginate"`
}

func (e Entity[T]) Info() EntityInfo {
	return EntityInfo{
		Name:     e.Name,
		Title:    e.Title,
		Columns:  e.Columns.Columns(),
		Form:     e.Form,
		Ops:      e.Ops,
		PageSize: e.PageSize,
		Paginate: e.Paginate,
	}
}

// InitialParams is the query of the first load.
func (e Entity[T]) InitialParams() QueryParams {
	return e.Info().InitialParams()
}

func (i EntityInfo) InitialParams() QueryParams {
	var p QueryParams
	if i.Paginate {
		p.Current = IntPtr(1)
		if i.PageSize > 0 {
			p.PageSize = IntPtr(i.PageSize)
		}
	}
	return p
}
