package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/nelsonberm/go-srtm/internal/logging"
)

func TestNewWritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "srtm_api.log")

	logger, err := logging.New("debug", path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("transaccion iniciada", zap.String("endpoint", "/registro-positivo"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "transaccion iniciada") {
		t.Fatalf("log file missing entry: %q", data)
	}
	if !strings.Contains(string(data), `"endpoint":"/registro-positivo"`) {
		t.Fatalf("log file missing field: %q", data)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := logging.New("chatty", ""); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewConsoleOnly(t *testing.T) {
	logger, err := logging.New("", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("suppressed at info level")
}
