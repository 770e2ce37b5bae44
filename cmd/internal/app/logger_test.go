package app

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"pwtype/cmd/security/password"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: " error ", want: slog.LevelError},
		{in: "unknown", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
	}

	for _, tc := range cases {
		got := parseLogLevel(tc.in)
		if got != tc.want {
			t.Fatalf("parseLogLevel(%q)=%v want=%v", tc.in, got, tc.want)
		}
	}
}

func TestNewLogger_JSONRedactsPassword(t *testing.T) {
	t.Parallel()

	const raw = "never-print-this-value"
	p, err := password.New(raw)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	var buf bytes.Buffer
	log := NewLogger("info", "json", &buf)
	log.Info("password.accepted", "password", p)

	out := buf.String()
	if strings.Contains(out, raw) {
		t.Fatalf("log leaks plaintext: %s", out)
	}

	var rec struct {
		Password struct {
			Value  string `json:"value"`
			Digest string `json:"digest"`
		} `json:"password"`
	}
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("log is not json: %v", err)
	}
	if rec.Password.Digest != p.Digest() || rec.Password.Value != "[REDACTED]" {
		t.Fatalf("unexpected password group: %+v", rec.Password)
	}
}

func TestNewLogger_TextAndLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewLogger("warn", "TEXT", &buf)
	log.Info("dropped")
	log.Warn("kept", "k", "v")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("info record should be filtered: %s", out)
	}
	if !strings.Contains(out, "msg=kept") || !strings.Contains(out, "k=v") {
		t.Fatalf("expected text record, got: %s", out)
	}
}
