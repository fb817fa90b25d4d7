package state

import (
	"context"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"formtree/config"
)

func TestContextWithEnv(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	if ctx == nil {
		t.Fatal("ContextWithEnv() returned nil")
	}

	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}

	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
	if env.Format != config.OutputFmtHtml {
		t.Errorf("default format = %s, want html", env.Format)
	}
}

func TestEnvFromContext(t *testing.T) {
	t.Run("valid context", func(t *testing.T) {
		ctx := ContextWithEnv(context.Background())
		env := EnvFromContext(ctx)

		if env == nil {
			t.Error("Expected non-nil environment")
		}
	})

	t.Run("panic on missing env", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic when env not in context")
			}
		}()

		// Use plain context without env
		EnvFromContext(context.Background())
	})
}

func TestLocalEnv_Uptime(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)

	time.Sleep(10 * time.Millisecond)
	uptime := env.Uptime()

	if uptime < 10*time.Millisecond {
		t.Errorf("Uptime() = %v, expected at least 10ms", uptime)
	}
	if uptime > 1*time.Second {
		t.Errorf("Uptime() = %v, unexpectedly large", uptime)
	}
}

func TestLocalEnv_RedirectStdLog(t *testing.T) {
	t.Run("with logger", func(t *testing.T) {
		env := &LocalEnv{
			Log: zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1))),
		}

		env.RedirectStdLog()
		if env.restoreStdLog == nil {
			t.Error("Expected restoreStdLog to be set")
		}

		env.RestoreStdLog()
	})

	t.Run("without logger", func(t *testing.T) {
		env := &LocalEnv{
			Log: nil,
		}

		// Should not panic
		env.RedirectStdLog()
		if env.restoreStdLog != nil {
			t.Error("Expected restoreStdLog to remain nil")
		}
	})
}

func TestLocalEnv_StdLogToZap(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	env := &LocalEnv{Log: zap.New(core), Format: config.OutputFmtTree}

	env.RedirectStdLog()
	log.Print("form reader warning")
	env.RestoreStdLog()
	log.SetOutput(io.Discard)
	log.Print("after restore")
	log.SetOutput(os.Stderr)

	if n := logs.FilterMessage("form reader warning").Len(); n != 1 {
		t.Errorf("redirected %d entries, want 1", n)
	}
	if n := logs.FilterMessage("after restore").Len(); n != 0 {
		t.Error("standard log still redirected after restore")
	}

	// nil logger is tolerated both ways
	nolog := &LocalEnv{}
	nolog.RedirectStdLog()
	nolog.RestoreStdLog()
	if nolog.restoreStdLog != nil {
		t.Error("restore function set without logger")
	}
}

func TestLocalEnv_Fonts(t *testing.T) {
	env := &LocalEnv{}
	if env.Fonts() != nil {
		t.Error("Fonts() without configuration is not nil")
	}

	env.Cfg = &config.Config{Fonts: config.FontsConfig{
		Generic:  "serif",
		Families: map[string]string{"Minion Pro": "Times New Roman"},
	}}
	fonts := env.Fonts()
	if family, ok := fonts.Find("minion pro"); !ok || family != "Times New Roman" {
		t.Errorf("Find() = %q, %v", family, ok)
	}
	if fonts.Fallback() != "serif" {
		t.Errorf("Fallback() = %q, want serif", fonts.Fallback())
	}
}
