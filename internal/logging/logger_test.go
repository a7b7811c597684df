package logging

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInit_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "json", Output: &buf})
	t.Cleanup(func() { Init(Config{Level: "info", Format: "json"}) })

	Info().Str("market", "US").Msg("resolved widgets")
	Debug().Msg("hidden")

	out := buf.String()
	if !strings.Contains(out, `"market":"US"`) || !strings.Contains(out, "resolved widgets") {
		t.Fatalf("unexpected log output: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered at info level: %s", out)
	}
}

func TestCtx_FallsBackToGlobal(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "json", Output: &buf})
	t.Cleanup(func() { Init(Config{Level: "info", Format: "json"}) })

	Ctx(context.Background()).Info().Msg("from global")
	if !strings.Contains(buf.String(), "from global") {
		t.Fatalf("expected fallback logger output, got %q", buf.String())
	}

	var reqBuf bytes.Buffer
	child := zerolog.New(&reqBuf).With().Str("request_id", "r-1").Logger()
	ctx := child.WithContext(context.Background())
	Ctx(ctx).Info().Msg("scoped")
	if !strings.Contains(reqBuf.String(), `"request_id":"r-1"`) {
		t.Fatalf("expected request-scoped output, got %q", reqBuf.String())
	}
}

func TestInit_FallbackLoggerIsNotShared(t *testing.T) {
	var first, second bytes.Buffer
	Init(Config{Level: "info", Format: "json", Output: &first})
	t.Cleanup(func() { Init(Config{Level: "info", Format: "json"}) })

	held := Ctx(context.Background())
	Init(Config{Level: "info", Format: "json", Output: &second})

	held.Info().Msg("old")
	Ctx(context.Background()).Info().Msg("new")

	if !strings.Contains(first.String(), "old") || strings.Contains(first.String(), "new") {
		t.Fatalf("first output = %q", first.String())
	}
	if !strings.Contains(second.String(), "new") || strings.Contains(second.String(), "old") {
		t.Fatalf("second output = %q", second.String())
	}
}

func TestInit_ConcurrentWithCtx(t *testing.T) {
	t.Cleanup(func() { Init(Config{Level: "info", Format: "json"}) })

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				Init(Config{Level: "info", Format: "json", Output: io.Discard})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				Ctx(context.Background()).Debug().Msg("concurrent")
			}
		}()
	}
	wg.Wait()
}
