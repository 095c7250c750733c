package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/iw2rmb/compatedit/internal/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level string
		want  log.Level
	}{
		{"debug level", "debug", log.DebugLevel},
		{"info level", "info", log.InfoLevel},
		{"warn level", "warn", log.WarnLevel},
		{"warning level", "warning", log.WarnLevel},
		{"error level", "error", log.ErrorLevel},
		{"invalid defaults to info", "invalid", log.InfoLevel},
		{"empty defaults to info", "", log.InfoLevel},
		{"case insensitive", " DEBUG ", log.DebugLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			logger := logging.New(tc.level)
			if logger == nil {
				t.Fatal("New returned nil logger")
			}
			if got := logger.GetLevel(); got != tc.want {
				t.Fatalf("level=%v, want %v", got, tc.want)
			}
		})
	}
}

func TestNewWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewWriter(&buf, "debug")
	logger.Debug("rebuild", logging.FieldRegions, 3)

	out := buf.String()
	if !strings.Contains(out, "rebuild") || !strings.Contains(out, "regions=3") {
		t.Fatalf("output=%q, want message and field", out)
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	logger := logging.Discard()
	logger.Error("dropped")
	if logger.GetLevel() != log.ErrorLevel {
		t.Fatalf("level=%v, want error", logger.GetLevel())
	}
}

func TestSetDefaultAndSetLevel(t *testing.T) {
	// Not parallel: mutates the default logger.
	original := logging.Default()
	defer logging.SetDefault(original)

	fresh := logging.New("info")
	logging.SetDefault(fresh)
	if logging.Default() != fresh {
		t.Fatal("SetDefault did not change the default logger")
	}

	logging.SetLevel("error")
	if got := logging.Default().GetLevel(); got != log.ErrorLevel {
		t.Fatalf("level=%v, want error", got)
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	logger := logging.Discard()
	ctx := logging.WithLogger(context.Background(), logger)
	if logging.FromContext(ctx) != logger {
		t.Fatal("FromContext did not return the stored logger")
	}
	if logging.FromContext(context.Background()) == nil {
		t.Fatal("FromContext without logger returned nil")
	}
}
