package logx

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestInitWritesFileSink(t *testing.T) {
	name := filepath.Join(t.TempDir(), "resort.log")
	Init(Config{Debug: true, FileName: name, MaxSizeMB: 1})
	t.Cleanup(func() { Init() })

	log.Debug().Str("role", "Restaurant").Msg("routing message")

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"role":"Restaurant"`) {
		t.Fatalf("unexpected log file content: %s", data)
	}
	if log.Logger.GetLevel() != zerolog.DebugLevel {
		t.Fatalf("unexpected level: %s", log.Logger.GetLevel())
	}
}

func TestInitSetsContextFallback(t *testing.T) {
	Init()

	if zerolog.DefaultContextLogger == nil {
		t.Fatal("DefaultContextLogger not set")
	}
	if l := log.Ctx(context.Background()); l.GetLevel() == zerolog.Disabled {
		t.Fatal("log.Ctx without a logger should fall back to the global logger")
	}
}
