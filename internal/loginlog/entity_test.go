package loginlog_test

import (
	"testing"

	"admin-console/internal/loginlog"
)

func TestEntity(t *testing.T) {
	e := loginlog.Entity(loginlog.DefaultEndpoints)

	if e.Ops.Create || e.Ops.Update || !e.Ops.Delete {
		t.Errorf("login logs are delete-only, got %+v", e.Ops)
	}
	p := e.InitialParams()
	if p.PageSize == nil || *p.PageSize != 10 || p.Current == nil || *p.Current != 1 {
		t.Errorf("expected first page of 10, got %+v", p)
	}

	cases := map[int]string{0: "PC", 1: "android", 2: "ios", 3: "小程序"}
	for code, want := range cases {
		row := e.Columns.Row(loginlog.LoginLog{ID: 1, LoginType: code})
		if got := row.Cells[5].Text; got != want {
			t.Errorf("loginType %d: got %q, want %q", code, got, want)
		}
	}
}
