package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog/log"

	"tg-roulette/internal/config"
)

func TestInitWritesToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	Init(config.LogConfig{Level: "info", File: path, MaxMB: 1})
	log.Info().Str("k", "v").Msg("hello")

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if len(b) == 0 {
		t.Fatal("expected log output in file")
	}
}

func TestInitDefaultsToStdout(t *testing.T) {
	Init(config.LogConfig{Level: "debug"})
	if Writer() != os.Stdout {
		t.Fatal("expected stdout writer")
	}
}
