package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lightbox/internal/cli/styles"
	"github.com/bnema/lightbox/internal/infrastructure/config"
)

func TestTailLines(t *testing.T) {
	input := "one\ntwo\nthree\nfour\n"

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"fewer than available", 2, []string{"three", "four"}},
		{"exactly available", 4, []string{"one", "two", "three", "four"}},
		{"more than available", 10, []string{"one", "two", "three", "four"}},
		{"zero", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tailLines(strings.NewReader(input), tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorizeLogLine(t *testing.T) {
	theme := styles.NewTheme(config.DefaultConfig())

	line := `{"level":"info","time":"2025-01-02T15:04:05Z","component":"view","message":"viewer ready"}`
	got := colorizeLogLine(line, theme)
	assert.Contains(t, got, "viewer ready")
	assert.Contains(t, got, "15:04:05")
	assert.Contains(t, got, "INF")

	plain := "not a log line"
	assert.Equal(t, plain, colorizeLogLine(plain, theme))
}
