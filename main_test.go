package main

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/olgasafonova/iceland-registry-mcp-server/internal/kennitala"
)

func TestNewGenerator(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		seed string
	}{
		{"no seed", ""},
		{"valid seed", "42"},
		{"invalid seed falls back", "not-a-number"},
		{"negative seed falls back", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.seed == "" {
				_ = os.Unsetenv("KENNITALA_SEED")
			} else {
				_ = os.Setenv("KENNITALA_SEED", tt.seed)
				defer func() { _ = os.Unsetenv("KENNITALA_SEED") }()
			}

			gen := newGenerator(logger)
			if gen == nil {
				t.Fatal("newGenerator returned nil")
			}
			if _, err := gen.Personal(kennitala.GenOptions{}); err != nil {
				t.Errorf("generator unusable: %v", err)
			}
		})
	}
}

func TestSeededGeneratorIsDeterministic(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_ = os.Setenv("KENNITALA_SEED", "1234")
	defer func() { _ = os.Unsetenv("KENNITALA_SEED") }()

	first, err := newGenerator(logger).Personal(kennitala.GenOptions{})
	if err != nil {
		t.Fatalf("Personal error: %v", err)
	}
	second, err := newGenerator(logger).Personal(kennitala.GenOptions{})
	if err != nil {
		t.Fatalf("Personal error: %v", err)
	}
	if first != second {
		t.Errorf("same seed produced %q and %q", first, second)
	}
}
