package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLoggingDisabled(t *testing.T) {
	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("expected nil log file without debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("expected log output to be discarded")
	}
}

func TestSetupLoggingDebug(t *testing.T) {
	defer os.RemoveAll(logDir)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("expected a log file with debug")
	}
	defer f.Close()
	defer log.SetOutput(io.Discard)

	log.Println("[ENGINE] hello")

	info, err := os.Stat(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected log file to contain the message")
	}
}

func TestSetupLoggingRotatesLargeFile(t *testing.T) {
	defer os.RemoveAll(logDir)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatal(err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("expected a log file with debug")
	}
	defer f.Close()
	defer log.SetOutput(io.Discard)

	if _, err := os.Stat(logPath + ".old"); err != nil {
		t.Errorf("expected rotated file: %v", err)
	}
	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("expected a fresh log file, size %d", info.Size())
	}
}
