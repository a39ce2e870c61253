package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":    zerolog.TraceLevel,
		"DEBUG":    zerolog.DebugLevel,
		" warn ":   zerolog.WarnLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"":         zerolog.InfoLevel,
		"verbose!": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestInit_OnceAndNamed(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var first, second bytes.Buffer
	Init(Options{Level: "info", Output: &first, Service: "reservations"})
	Init(Options{Level: "debug", Output: &second})

	named := Named("sessions")
	named.Info().Msg("hello")
	global := Get()
	global.Debug().Msg("dropped")

	if second.Len() != 0 {
		t.Fatalf("second Init must not replace the logger")
	}

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(first.Bytes()), &entry); err != nil {
		t.Fatalf("expected a single JSON entry, got %q: %v", first.String(), err)
	}
	if entry["service"] != "reservations" || entry["component"] != "sessions" || entry["message"] != "hello" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	Get()
}
