package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestLevelControls(t *testing.T) {
	SetLevel(zerolog.WarnLevel)
	if got := Logger().GetLevel(); got != zerolog.WarnLevel {
		t.Fatalf("level = %v, want warn", got)
	}
	Disable()
	if got := Logger().GetLevel(); got != zerolog.Disabled {
		t.Fatalf("level = %v, want disabled", got)
	}
}
