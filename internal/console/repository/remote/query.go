package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"admin-console/internal/console"
	"admin-console/internal/console/repository"
)

// encodeParams translates table state into the query string of the list
// endpoint. filter and sorter travel as JSON objects.
func encodeParams(p console.QueryParams) (url.Values, error) {
	q := url.Values{}
	if p.PageSize != nil {
		q.Set("pageSize", strconv.Itoa(*p.PageSize))
	}
	if p.Current != nil {
		q.Set("current", strconv.Itoa(*p.Current))
	}
	if len(p.Filter) > 0 {
		raw, err := json.Marshal(p.Filter)
		if err != nil {
			return nil, fmt.Errorf("encode filter: %w", err)
		}
		q.Set("filter", string(raw))
	}
	if len(p.Sorter) > 0 {
		raw, err := json.Marshal(p.Sorter)
		if err != nil {
			return nil, fmt.Errorf("encode sorter: %w", err)
		}
		q.Set("sorter", string(raw))
	}

	keys := make([]string, 0, len(p.Extra))
	for k := range p.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := p.Extra[k]; v != nil {
			q.Set(k, fmt.Sprint(v))
		}
	}
	return q, nil
}

type listResp[T console.Record] struct {
	status
	List       []T                `json:"list"`
	Pagination console.Pagination `json:"pagination"`
}

// Query fetches one page. The backend's list and pagination are returned as
// they are, after the entity's PostProcess hook.
func (r *implRepository[T]) Query(ctx context.Context, params console.QueryParams) (console.ListResult[T], error) {
	if err := params.Validate(); err != nil {
		return console.ListResult[T]{}, err
	}
	if r.entity.Endpoints.Query == "" {
		return console.ListResult[T]{}, fmt.Errorf("%w: %v", console.ErrQuery, repository.ErrNoEndpoint)
	}

	q, err := encodeParams(params)
	if err != nil {
		return console.ListResult[T]{}, fmt.Errorf("%w: %v", console.ErrQuery, err)
	}

	var resp listResp[T]
	if err := r.c.get(ctx, r.entity.Endpoints.Query, q, &resp); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Query"), err)
		return console.ListResult[T]{}, fmt.Errorf("%w: %v", console.ErrQuery, err)
	}
	if err := resp.rejected(); err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("Query"), err)
		return console.ListResult[T]{}, fmt.Errorf("%w: %v", console.ErrQuery, err)
	}

	list := resp.List
	if r.entity.PostProcess != nil {
		list = r.entity.PostProcess(list)
	}
	return console.ListResult[T]{List: list, Pagination: resp.Pagination}, nil
}
