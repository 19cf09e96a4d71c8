package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestConfigureRejectsUnknownFormat(t *testing.T) {
	if _, err := Configure("info", "xml"); err == nil {
		t.Fatal("expected error for unsupported log format")
	}
}

func TestConfigureAppliesLevel(t *testing.T) {
	log, err := Configure("warn", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.GetLevel() != zerolog.WarnLevel {
		t.Fatalf("expected warn level, got %s", log.GetLevel())
	}
}
