package logs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebamiro/bitcoinrpc/internal/config"
	"github.com/sebamiro/bitcoinrpc/internal/logs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLevel(t *testing.T) {
	log, err := logs.New(config.Log{Level: "warn"})
	if err != nil {
		t.Fatal(err)
	}
	if log.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("info must be disabled at warn level")
	}
	if !log.Core().Enabled(zapcore.WarnLevel) {
		t.Fatal("warn must be enabled")
	}
}

func TestNewDefaultLevel(t *testing.T) {
	log, err := logs.New(config.Log{})
	if err != nil {
		t.Fatal(err)
	}
	if log.Core().Enabled(zapcore.DebugLevel) || !log.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("expect info level by default")
	}
}

func TestNewBadLevel(t *testing.T) {
	if _, err := logs.New(config.Log{Level: "loud"}); err == nil {
		t.Fatal("expect error for an unknown level")
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "btcrpc.log")
	log, err := logs.New(config.Log{Level: "debug", JSON: true, File: path, MaxSizeMB: 1})
	if err != nil {
		t.Fatal(err)
	}
	log.Debug("rpc call", zap.String("method", "uptime"))
	if err := log.Sync(); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"method":"uptime"`) {
		t.Fatalf("unexpected log output %s", b)
	}
}
