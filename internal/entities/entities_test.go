package entities_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"admin-console/internal/console"
	"admin-console/internal/console/repository/remote"
	"admin-console/internal/entities"
	"admin-console/pkg/log"
	"admin-console/pkg/notice"
)

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/pms/productCategory/queryProductCategoryList", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"list": []map[string]any{
				{"id": 1, "parentId": 0, "name": "服装"},
				{"id": 2, "parentId": 1, "name": "外套"},
				{"id": 3, "parentId": 0, "name": "手机"},
			},
		})
	})
	mux.HandleFunc("/custom/returnReason/list", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"list":       []map[string]any{{"id": 4, "name": "质量问题", "status": 1}},
			"pagination": map[string]any{"total": 1, "current": 1},
		})
	})
	mux.HandleFunc("/api/oms/returnReason/deleteReturnReason", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewRegistry(t *testing.T) {
	ctx := context.Background()
	srv := newBackend(t)
	c := remote.NewClient(ctx, remote.ClientConfig{BaseURL: srv.URL, Timeout: time.Second})
	reg := entities.NewRegistry(c, entities.Overrides{
		"return_reason": {Query: "/custom/returnReason/list"},
	}, log.NewNop())

	infos := reg.Entities()
	if len(infos) != 4 {
		t.Fatalf("expected 4 entities, got %d", len(infos))
	}

	t.Run("Category tree", func(t *testing.T) {
		page, err := reg.NewPage("category", notice.NewFeed(8, time.Minute, nil))
		if err != nil {
			t.Fatalf("NewPage: %v", err)
		}
		if err := page.Load(ctx, console.QueryParams{}); err != nil {
			t.Fatalf("Load: %v", err)
		}
		snap := page.Snapshot()
		if len(snap.Rows) != 2 || len(snap.Rows[0].Children) != 1 {
			t.Fatalf("expected 2 roots with one child under the first, got %+v", snap.Rows)
		}
		if err := page.OpenDetail(2); err != nil {
			t.Errorf("child rows must be addressable: %v", err)
		}
	})

	t.Run("Override keeps the other endpoints", func(t *testing.T) {
		feed := notice.NewFeed(8, time.Minute, nil)
		page, err := reg.NewPage("return_reason", feed)
		if err != nil {
			t.Fatalf("NewPage: %v", err)
		}
		if err := page.Load(ctx, page.Info().InitialParams()); err != nil {
			t.Fatalf("Load: %v", err)
		}
		conf, err := page.RequestRemove([]int64{4})
		if err != nil {
			t.Fatalf("RequestRemove: %v", err)
		}
		if ok, err := page.Confirm(ctx, conf.Token); !ok || err != nil {
			t.Fatalf("Confirm = %v, %v", ok, err)
		}
		latest, ok := feed.Latest()
		if !ok || latest.Level != notice.LevelSuccess || latest.Message != console.MsgDeleteSuccess {
			t.Errorf("expected delete success notice, got %+v", latest)
		}
	})

	t.Run("Unknown entity", func(t *testing.T) {
		if _, err := reg.NewPage("nope", notice.NewFeed(8, time.Minute, nil)); err == nil {
			t.Errorf("expected error")
		}
	})
}
