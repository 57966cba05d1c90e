package config

import (
	"errors"
	"testing"

	"github.com/ivlev/ledmorse/internal/classify"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default configuration invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"zero gamma", func(c *Config) { c.Gamma = 0 }, ErrInvalidGamma},
		{"negative gamma", func(c *Config) { c.Gamma = -0.4 }, ErrInvalidGamma},
		{"zero rows", func(c *Config) { c.Grid.Rows = 0 }, ErrInvalidGrid},
		{"negative slot width", func(c *Config) { c.Grid.SlotWidth = -8 }, ErrInvalidGrid},
		{
			"inverted threshold span",
			func(c *Config) { c.Thresholds.Dot.Sat = classify.Span{Min: 255, Max: 40} },
			classify.ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGridLayout(t *testing.T) {
	g := GridLayout{Rows: 16, WordsPerRow: 2, SlotWidth: 8}
	if g.Cols() != 16 {
		t.Errorf("Cols() = %d, want 16", g.Cols())
	}
	if g.Slots() != 32 {
		t.Errorf("Slots() = %d, want 32", g.Slots())
	}
}
