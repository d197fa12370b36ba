package observability

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/riskibarqy/ballpark/internal/config"
	"github.com/riskibarqy/ballpark/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "ballpark-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	var buf bytes.Buffer
	shutdown, err := InitUptrace(cfg, logging.New(logging.LevelInfo, &buf))
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
	if !strings.Contains(buf.String(), "UPTRACE_ENABLED=false") {
		t.Fatalf("expected disabled reason in log, got %q", buf.String())
	}
}

func TestInitUptrace_EnabledWithoutDSN(t *testing.T) {
	cfg := config.Config{UptraceEnabled: true, ServiceName: "ballpark-api"}

	var buf bytes.Buffer
	shutdown, err := InitUptrace(cfg, logging.New(logging.LevelInfo, &buf))
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
	if !strings.Contains(buf.String(), "UPTRACE_DSN empty") {
		t.Fatalf("expected empty dsn reason in log, got %q", buf.String())
	}
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{PyroscopeEnabled: false}, nil)
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}
