package flexview

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_DefaultIsNop(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Logger() = nil")
	}
	if Logger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("default logger should discard everything")
	}
}

func TestLogger_RecordsRebuilds(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	cfg := newTestConfig(t)
	root, _ := newGrowRow(cfg, 300, 100, 3)

	root.Yoga().ApplyLayout()
	root.Yoga().ApplyLayout()

	rebuilds := logs.FilterMessage("rebuilt layout children")
	if rebuilds.Len() != 1 {
		t.Errorf("rebuild events = %d, want 1", rebuilds.Len())
	}
	if got := rebuilds.All()[0].ContextMap()["children"]; got != int64(3) {
		t.Errorf("children field = %v, want 3", got)
	}
	if applied := logs.FilterMessage("applied layout").Len(); applied != 8 {
		t.Errorf("apply events = %d, want 8", applied)
	}
}

func TestLogger_SetLoggerNilRestoresNop(t *testing.T) {
	SetLogger(zaptest.NewLogger(t))
	SetLogger(nil)

	if Logger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("SetLogger(nil) should restore the no-op logger")
	}
}
