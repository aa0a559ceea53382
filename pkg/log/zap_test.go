package log_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"admin-console/pkg/log"
)

func TestRequestID(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	if got := log.RequestID(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := log.RequestID(context.Background()); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	cases := []log.ZapConfig{
		{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true},
		{Level: "info", Mode: "production", Encoding: "json"},
		{Level: "not-a-level", Mode: "production", Encoding: "json"},
	}
	for _, cfg := range cases {
		l := log.Init(cfg)
		l.Infof(log.WithRequestID(context.Background(), "x"), "hello %s", cfg.Level)
		l.Debug(context.Background(), "debug line")
	}
	log.NewNop().Error(context.Background(), "discarded")
}

func TestOutputCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := log.Init(log.ZapConfig{Level: "info", Mode: "production", Encoding: "json", Output: &buf})
	l.Infof(log.WithRequestID(context.Background(), "req-9"), "loaded %d rows", 3)

	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-9"`) || !strings.Contains(out, "loaded 3 rows") {
		t.Errorf("unexpected log line %q", out)
	}
}
