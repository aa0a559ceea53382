package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"admin-console/internal/console"
	"admin-console/internal/console/repository"
	"admin-console/internal/console/repository/remote"
	"admin-console/pkg/log"
)

type node struct {
	ID       int64  `json:"id"`
	ParentID int64  `json:"parentId"`
	Name     string `json:"name"`
}

func (n node) RecordID() int64 { return n.ID }

func testEntity() console.Entity[node] {
	return console.Entity[node]{
		Name: "node",
		Endpoints: console.Endpoints{
			Query:  "/api/node/list",
			Create: "/api/node/add",
			Update: "/api/node/update",
			Delete: "/api/node/delete",
		},
	}
}

func TestRemoteRepository(t *testing.T) {
	var lastQuery map[string][]string
	var lastAuth string
	var lastDelete repository.DeleteOptions

	mux := http.NewServeMux()
	mux.HandleFunc("/api/node/list", func(w http.ResponseWriter, r *http.Request) {
		lastQuery = r.URL.Query()
		lastAuth = r.Header.Get("Authorization")
		if r.URL.Query().Get("current") == "99" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if r.URL.Query().Get("current") == "98" {
			w.Write([]byte("not json"))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"list":       []node{{ID: 2, Name: "b"}, {ID: 1, Name: "a"}},
			"pagination": map[string]any{"total": 2, "current": 1},
		})
	})
	mux.HandleFunc("/api/node/add", func(w http.ResponseWriter, r *http.Request) {
		var n node
		json.NewDecoder(r.Body).Decode(&n)
		if n.Name == "dup" {
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "名称重复"})
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/node/update", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	mux.HandleFunc("/api/node/delete", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&lastDelete)
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	ctx := context.Background()
	client := remote.NewClient(ctx, remote.ClientConfig{BaseURL: ts.URL + "/", AccessToken: "test-token"})
	repo := remote.New(client, testEntity(), log.NewNop())

	t.Run("Query translates params", func(t *testing.T) {
		res, err := repo.Query(ctx, console.QueryParams{
			PageSize: console.IntPtr(10),
			Current:  console.IntPtr(1),
			Filter:   map[string][]any{"level": {0}},
			Sorter:   map[string]console.Direction{"sort": console.Descend},
			Extra:    map[string]any{"status": 1},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastQuery["pageSize"][0] != "10" || lastQuery["current"][0] != "1" || lastQuery["status"][0] != "1" {
			t.Errorf("unexpected query: %v", lastQuery)
		}
		if lastQuery["sorter"][0] != `{"sort":"descend"}` || lastQuery["filter"][0] != `{"level":[0]}` {
			t.Errorf("unexpected sorter/filter: %v", lastQuery)
		}
		if lastAuth != "Bearer test-token" {
			t.Errorf("expected bearer token, got %q", lastAuth)
		}
		// Server order is kept.
		if len(res.List) != 2 || res.List[0].ID != 2 {
			t.Errorf("unexpected list: %+v", res.List)
		}
		if res.Pagination.Total == nil || *res.Pagination.Total != 2 {
			t.Errorf("unexpected total: %+v", res.Pagination)
		}
		if res.Pagination.PageSize != nil {
			t.Errorf("omitted pageSize must stay unset")
		}
	})

	t.Run("Query errors wrap ErrQuery", func(t *testing.T) {
		for _, current := range []int{99, 98} {
			_, err := repo.Query(ctx, console.QueryParams{Current: console.IntPtr(current)})
			if !errors.Is(err, console.ErrQuery) {
				t.Errorf("current=%d: expected ErrQuery, got %v", current, err)
			}
		}
	})

	t.Run("Invalid params", func(t *testing.T) {
		_, err := repo.Query(ctx, console.QueryParams{PageSize: console.IntPtr(-1)})
		if !errors.Is(err, console.ErrInvalidParams) {
			t.Errorf("expected ErrInvalidParams, got %v", err)
		}
	})

	t.Run("Create", func(t *testing.T) {
		if err := repo.Create(ctx, node{Name: "ok"}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		err := repo.Create(ctx, node{Name: "dup"})
		if !errors.Is(err, repository.ErrFailedToCreate) {
			t.Errorf("expected ErrFailedToCreate, got %v", err)
		}
	})

	t.Run("Update failure", func(t *testing.T) {
		if err := repo.Update(ctx, node{ID: 1}); !errors.Is(err, repository.ErrFailedToUpdate) {
			t.Errorf("expected ErrFailedToUpdate, got %v", err)
		}
	})

	t.Run("Delete sends ids", func(t *testing.T) {
		if err := repo.Delete(ctx, repository.DeleteOptions{IDs: []int64{3, 7}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := append([]int64(nil), lastDelete.IDs...)
		sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
		if len(got) != 2 || got[0] != 3 || got[1] != 7 {
			t.Errorf("unexpected ids: %v", lastDelete.IDs)
		}
	})

	t.Run("PostProcess runs after decode", func(t *testing.T) {
		e := testEntity()
		e.PostProcess = func(in []node) []node { return in[:1] }
		res, err := remote.New(client, e, log.NewNop()).Query(ctx, console.QueryParams{})
		if err != nil || len(res.List) != 1 {
			t.Errorf("expected post-processed list of 1, got %+v %v", res.List, err)
		}
	})

	t.Run("Missing endpoint", func(t *testing.T) {
		e := testEntity()
		e.Endpoints.Delete = ""
		err := remote.New(client, e, log.NewNop()).Delete(ctx, repository.DeleteOptions{IDs: []int64{1}})
		if !errors.Is(err, repository.ErrFailedToDelete) {
			t.Errorf("expected ErrFailedToDelete, got %v", err)
		}
	})

	t.Run("Server Down", func(t *testing.T) {
		bad := remote.NewClient(ctx, remote.ClientConfig{BaseURL: "http://localhost:59999"})
		_, err := remote.New(bad, testEntity(), log.NewNop()).Query(ctx, console.QueryParams{})
		if !errors.Is(err, console.ErrQuery) {
			t.Errorf("expected ErrQuery, got %v", err)
		}
	})
}
