package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRemoveEmptyPanicLog(t *testing.T) {
	tmpDir := t.TempDir()

	conf := &LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger: LoggerConfig{
			Level:       "normal",
			Destination: filepath.Join(tmpDir, "test.log"),
			Mode:        "overwrite",
		},
	}

	log, err := conf.Prepare(nil)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Info("single line to the log file")
	_ = log.Sync()

	panicLog := filepath.Join(tmpDir, "svgray-panic.log")
	if _, err := os.Stat(panicLog); err != nil {
		t.Fatalf("Prepare() did not create panic log capture: %v", err)
	}

	if err := conf.RemoveEmptyPanicLog(); err != nil {
		t.Fatalf("RemoveEmptyPanicLog() error = %v", err)
	}
	if _, err := os.Stat(panicLog); !os.IsNotExist(err) {
		t.Error("empty panic log was not removed after run")
	}
	if _, err := os.Stat(conf.FileLogger.Destination); err != nil {
		t.Errorf("log file disappeared: %v", err)
	}
}

func TestRemoveEmptyPanicLog_KeepsNonEmpty(t *testing.T) {
	tmpDir := t.TempDir()

	conf := &LoggingConfig{
		FileLogger: LoggerConfig{Destination: filepath.Join(tmpDir, "test.log")},
	}

	panicLog := filepath.Join(tmpDir, "svgray-panic.log")
	if err := os.WriteFile(panicLog, []byte("goroutine 1 [running]:\n"), 0644); err != nil {
		t.Fatalf("Failed to write panic log: %v", err)
	}

	if err := conf.RemoveEmptyPanicLog(); err != nil {
		t.Fatalf("RemoveEmptyPanicLog() error = %v", err)
	}
	if _, err := os.Stat(panicLog); err != nil {
		t.Error("non-empty panic log must survive cleanup")
	}
}

func TestRemoveEmptyPanicLog_NoFileLogging(t *testing.T) {
	conf := &LoggingConfig{ConsoleLogger: LoggerConfig{Level: "normal"}}
	if err := conf.RemoveEmptyPanicLog(); err != nil {
		t.Errorf("RemoveEmptyPanicLog() without file destination error = %v", err)
	}
}
