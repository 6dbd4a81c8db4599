package cli

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level   string
		verbose bool
		want    slog.Level
	}{
		{"info", false, slog.LevelInfo},
		{"debug", false, slog.LevelDebug},
		{"WARN", false, slog.LevelWarn},
		{"error", false, slog.LevelError},
		{"bogus", false, slog.LevelInfo},
		{"error", true, slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := NewLogger(&bytes.Buffer{}, tt.level, tt.verbose)
			if !logger.Enabled(context.Background(), tt.want) {
				t.Errorf("Expected level %v to be enabled", tt.want)
			}
			if tt.want > slog.LevelDebug && logger.Enabled(context.Background(), tt.want-1) {
				t.Errorf("Expected level below %v to be disabled", tt.want)
			}
		})
	}
}

func TestNewLogger_Output(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, "info", false).Info("resolved", "word", "집")

	if !strings.Contains(buf.String(), "msg=resolved") || !strings.Contains(buf.String(), "word=집") {
		t.Errorf("Unexpected log output: %s", buf.String())
	}
}
