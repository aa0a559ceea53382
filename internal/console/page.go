package console

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"admin-console/pkg/log"
)

// Confirmation is a destructive action waiting for the operator's answer.
type Confirmation struct {
	Token   string  `json:"token"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
	IDs     []int64 `json:"ids"`
	Batch   bool    `json:"batch"`
}

// UIView is the renderer-facing UIState.
type UIView struct {
	CreateVisible bool   `json:"createVisible"`
	UpdateVisible bool   `json:"updateVisible"`
	DetailVisible bool   `json:"detailVisible"`
	CurrentID     *int64 `json:"currentId,omitempty"`
}

// Visible reports whether the overlay of kind is shown.
func (v UIView) Visible(kind ModalKind) bool {
	switch kind {
	case ModalCreate:
		return v.CreateVisible
	case ModalUpdate:
		return v.UpdateVisible
	case ModalDetail:
		return v.DetailVisible
	}
	return false
}

// Snapshot is a read-only copy of a page for renderers.
type Snapshot struct {
	Entity     string         `json:"entity"`
	Title      string         `json:"title"`
	Columns    []ColumnInfo   `json:"columns"`
	Rows       []Row          `json:"rows"`
	Pagination Pagination     `json:"pagination"`
	Params     QueryParams    `json:"params"`
	Selected   []int64        `json:"selected"`
	UI         UIView         `json:"ui"`
	Current    any            `json:"current,omitempty"`
	Detail     []Cell         `json:"detail,omitempty"`
	Pending    []Confirmation `json:"pending,omitempty"`
	Busy       bool           `json:"busy"`
	Error      string         `json:"error,omitempty"`
}

// Page owns the lifecycle of one entity table: the fetched rows, the
// selection, the overlays and any pending confirmation. All state is only
// changed through its methods.
type Page[T Record] struct {
	entity Entity[T]
	query  Querier[T]
	cmds   Commands[T]
	l      log.Logger

	mu         sync.Mutex
	params     QueryParams
	rows       []T
	pagination Pagination
	loadErr    error
	loadSeq    uint64
	selection  Selection[T]
	ui         UIState[T]
	busy       bool
	pending    map[string]Confirmation
	order      []string
}

var _ PageHandle = (*Page[Record])(nil)

// NewPage creates a page for entity. Nothing is fetched until Load.
func NewPage[T Record](entity Entity[T], query Querier[T], cmds Commands[T], l log.Logger) *Page[T] {
	return &Page[T]{
		entity:  entity,
		query:   query,
		cmds:    cmds,
		l:       l,
		params:  entity.InitialParams(),
		pending: make(map[string]Confirmation),
	}
}

func (p *Page[T]) Info() EntityInfo {
	return p.entity.Info()
}

// Load fetches a page with params and replaces the table content. The
// selection is always cleared. On failure the table is emptied and the
// error (wrapping ErrQuery or ErrInvalidParams) is returned.
//
// When loads overlap, only the most recently issued one is applied.
func (p *Page[T]) Load(ctx context.Context, params QueryParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	p.loadSeq++
	seq := p.loadSeq
	p.params = params
	p.mu.Unlock()

	result, err := p.query.Query(ctx, params)

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq != p.loadSeq {
		p.l.Debugf(ctx, "console.Page.Load %s: dropping superseded result %d", p.entity.Name, seq)
		return err
	}
	p.selection.Clear()
	if err != nil {
		p.rows, p.pagination, p.loadErr = nil, Pagination{}, err
		return err
	}
	p.rows, p.pagination, p.loadErr = result.List, result.Pagination, nil
	return nil
}

// Refresh reloads with the last params.
func (p *Page[T]) Refresh(ctx context.Context) error {
	p.mu.Lock()
	params := p.params
	p.mu.Unlock()
	return p.Load(ctx, params)
}

// Rows returns a copy of the current table content.
func (p *Page[T]) Rows() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]T(nil), p.rows...)
}

func (p *Page[T]) findLocked(id int64) (T, bool) {
	var found T
	var ok bool
	Walk(p.rows, func(r T, _ int) bool {
		if r.RecordID() == id {
			found, ok = r, true
			return false
		}
		return true
	})
	return found, ok
}

// Select replaces the selection with the current rows carrying ids.
func (p *Page[T]) Select(ids []int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	rows := make([]T, 0, len(ids))
	for _, id := range ids {
		r, ok := p.findLocked(id)
		if !ok {
			return fmt.Errorf("%w: %d", ErrRecordNotFound, id)
		}
		rows = append(rows, r)
	}
	p.selection.OnSelectionChange(rows)
	return nil
}

// SelectRows replaces the selection with rows as given by the table.
func (p *Page[T]) SelectRows(rows []T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selection.OnSelectionChange(rows)
}

func (p *Page[T]) ClearSelection() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selection.Clear()
}

// Selected returns a copy of the selected rows.
func (p *Page[T]) Selected() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.selection.Items()
}

// UI returns the overlay state.
func (p *Page[T]) UI() UIState[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ui
}

func (p *Page[T]) applyLocked(ev ModalEvent[T]) error {
	next, err := p.ui.Apply(ev)
	if err != nil {
		return err
	}
	p.ui = next
	return nil
}

func (p *Page[T]) apply(ev ModalEvent[T]) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.applyLocked(ev)
}

func (p *Page[T]) OpenCreate() error {
	if !p.entity.Ops.Create {
		return ErrOperationNotSupported
	}
	return p.apply(OpenCreate[T]())
}

// OpenUpdate opens the update modal for the row with id.
func (p *Page[T]) OpenUpdate(id int64) error {
	if !p.entity.Ops.Update {
		return ErrOperationNotSupported
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	r, ok := p.findLocked(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrRecordNotFound, id)
	}
	return p.applyLocked(OpenUpdate(r))
}

// OpenDetail opens the detail drawer for the row with id.
func (p *Page[T]) OpenDetail(id int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	r, ok := p.findLocked(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrRecordNotFound, id)
	}
	return p.applyLocked(OpenDetail(r))
}

func (p *Page[T]) CloseCreate() { _ = p.apply(Close[T](ModalCreate)) }
func (p *Page[T]) CloseUpdate() { _ = p.apply(Close[T](ModalUpdate)) }
func (p *Page[T]) CloseDetail() { _ = p.apply(Close[T](ModalDetail)) }

// mutate runs one command with the caller contract around it: on success the
// initiating modal is closed and the table is refreshed exactly once; on
// failure nothing changes. Only one mutation (including its refresh) may be
// in flight per page.
func (p *Page[T]) mutate(ctx context.Context, from ModalKind, run func(context.Context) bool) (bool, error) {
	p.mu.Lock()
	if p.busy {
		p.mu.Unlock()
		return false, ErrBusy
	}
	p.busy = true
	gen := p.ui.Generation(from)
	p.mu.Unlock()

	ok := run(ctx)

	p.mu.Lock()
	if !ok {
		p.busy = false
		p.mu.Unlock()
		return false, nil
	}
	if from != "" {
		if p.ui.Generation(from) == gen {
			_ = p.applyLocked(Close[T](from))
		} else {
			p.l.Infof(ctx, "console.Page %s: %s modal changed while submitting, leaving it open", p.entity.Name, from)
		}
	}
	p.mu.Unlock()

	err := p.Refresh(ctx)

	p.mu.Lock()
	p.busy = false
	p.mu.Unlock()
	return true, err
}

// SubmitCreate creates fields and, on success, closes the create modal and
// refreshes. The returned error is ErrBusy when the submit was rejected, or
// the refresh error after a successful create.
func (p *Page[T]) SubmitCreate(ctx context.Context, fields T) (bool, error) {
	if !p.entity.Ops.Create {
		return false, ErrOperationNotSupported
	}
	return p.mutate(ctx, ModalCreate, func(ctx context.Context) bool {
		return p.cmds.Create(ctx, fields)
	})
}

// SubmitUpdate updates record and, on success, closes the update modal and
// refreshes.
func (p *Page[T]) SubmitUpdate(ctx context.Context, record T) (bool, error) {
	if !p.entity.Ops.Update {
		return false, ErrOperationNotSupported
	}
	return p.mutate(ctx, ModalUpdate, func(ctx context.Context) bool {
		return p.cmds.Update(ctx, record)
	})
}

func decodeRecord[T Record](raw []byte) (T, error) {
	var rec T
	if err := json.Unmarshal(raw, &rec); err != nil {
		return rec, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return rec, nil
}

func (p *Page[T]) SubmitCreateJSON(ctx context.Context, raw []byte) (bool, error) {
	rec, err := decodeRecord[T](raw)
	if err != nil {
		return false, err
	}
	return p.SubmitCreate(ctx, rec)
}

func (p *Page[T]) SubmitUpdateJSON(ctx context.Context, raw []byte) (bool, error) {
	rec, err := decodeRecord[T](raw)
	if err != nil {
		return false, err
	}
	return p.SubmitUpdate(ctx, rec)
}

func (p *Page[T]) addPendingLocked(ids []int64, batch bool) Confirmation {
	c := Confirmation{
		Token:   uuid.NewString(),
		Title:   ConfirmDeleteTitle,
		Content: ConfirmDeleteContent,
		IDs:     ids,
		Batch:   batch,
	}
	p.pending[c.Token] = c
	p.order = append(p.order, c.Token)
	return c
}

// RequestRemove asks for confirmation before deleting ids. Nothing is sent
// to the backend until Confirm.
func (p *Page[T]) RequestRemove(ids []int64) (Confirmation, error) {
	if !p.entity.Ops.Delete {
		return Confirmation{}, ErrOperationNotSupported
	}
	if len(ids) == 0 {
		return Confirmation{}, ErrIDRequired
	}
	for _, id := range ids {
		if id < 1 {
			return Confirmation{}, fmt.Errorf("%w: got %d", ErrIDRequired, id)
		}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.addPendingLocked(append([]int64(nil), ids...), len(ids) > 1), nil
}

// RequestBatchRemove asks for confirmation before deleting the selection.
func (p *Page[T]) RequestBatchRemove() (Confirmation, error) {
	if !p.entity.Ops.Delete {
		return Confirmation{}, ErrOperationNotSupported
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.selection.Count() == 0 {
		return Confirmation{}, ErrNothingSelected
	}
	return p.addPendingLocked(p.selection.IDs(), true), nil
}

func (p *Page[T]) takePending(token string) (Confirmation, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.pending[token]
	if !ok {
		return c, false
	}
	delete(p.pending, token)
	for i, t := range p.order {
		if t == token {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return c, true
}

// Confirm runs the delete behind token. A failed delete is put back so the
// operator can retry or cancel it.
func (p *Page[T]) Confirm(ctx context.Context, token string) (bool, error) {
	c, ok := p.takePending(token)
	if !ok {
		return false, ErrConfirmationNotFound
	}

	ok, err := p.mutate(ctx, "", func(ctx context.Context) bool {
		if c.Batch {
			return p.cmds.RemoveMany(ctx, c.IDs)
		}
		return p.cmds.RemoveOne(ctx, c.IDs[0])
	})
	if !ok {
		p.mu.Lock()
		p.pending[c.Token] = c
		p.order = append(p.order, c.Token)
		p.mu.Unlock()
	}
	return ok, err
}

// Cancel drops a pending confirmation without any action.
func (p *Page[T]) Cancel(token string) error {
	if _, ok := p.takePending(token); !ok {
		return ErrConfirmationNotFound
	}
	return nil
}

// Snapshot renders the page through the entity schema.
func (p *Page[T]) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	schema := p.entity.Columns
	rows := make([]Row, 0, len(p.rows))
	for _, r := range p.rows {
		rows = append(rows, schema.Row(r))
	}

	s := Snapshot{
		Entity:     p.entity.Name,
		Title:      p.entity.Title,
		Columns:    schema.Columns(),
		Rows:       rows,
		Pagination: p.pagination,
		Params:     p.params,
		Selected:   p.selection.IDs(),
		UI: UIView{
			CreateVisible: p.ui.CreateVisible,
			UpdateVisible: p.ui.UpdateVisible,
			DetailVisible: p.ui.DetailVisible,
		},
		Busy: p.busy,
	}
	if cur, ok := p.ui.Current(); ok {
		id := cur.RecordID()
		s.UI.CurrentID = &id
		s.Current = cur
		if p.ui.DetailVisible {
			s.Detail = schema.Describe(cur)
		}
	}
	for _, token := range p.order {
		s.Pending = append(s.Pending, p.pending[token])
	}
	if p.loadErr != nil {
		s.Error = p.loadErr.Error()
	}
	return s
}
