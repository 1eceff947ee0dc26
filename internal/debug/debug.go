package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls rotation of the debug log file.
type Options struct {
	MaxSizeMB  int // Rotate after this many megabytes
	MaxBackups int // Rotated files to keep
	Compress   bool
}

// DefaultOptions keeps a handful of small files around.
var DefaultOptions = Options{MaxSizeMB: 10, MaxBackups: 3}

var (
	mu     sync.Mutex
	logger *zap.Logger
	sink   *lumberjack.Logger
)

// Init starts debug logging to path. If path is empty, uses "flexview-debug.log"
// in the current directory. Calling Init again replaces the previous log.
func Init(path string, opts Options) (*zap.Logger, error) {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path, opts)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string, opts Options) (*zap.Logger, error) {
	if path == "" {
		path = "flexview-debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	if err := closeLocked(); err != nil {
		return nil, fmt.Errorf("failed to close previous debug log: %w", err)
	}

	sink = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		Compress:   opts.Compress,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(sink), zap.DebugLevel)
	logger = zap.New(core).Named("flexview")
	return logger, nil
}

// Logger returns the active debug logger, or a no-op logger before Init.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// Close flushes and closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	if logger == nil {
		return nil
	}
	_ = logger.Sync()
	err := sink.Close()
	logger, sink = nil, nil
	return err
}

// Log writes a formatted debug message.
func Log(format string, args ...any) {
	Logger().Sugar().Debugf(format, args...)
}
