package lock

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAcquireAndRelease(t *testing.T) {
	dir := t.TempDir()

	l, err := Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("read lock file: %v", err)
	}
	if !strings.HasPrefix(string(data), "pid=") {
		t.Errorf("lock file = %q, want pid= prefix", data)
	}

	if err := l.Release(); err != nil {
		t.Errorf("Release() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, FileName)); !os.IsNotExist(err) {
		t.Errorf("lock file still present after Release: %v", err)
	}
}

func TestDoubleAcquireFails(t *testing.T) {
	dir := t.TempDir()

	l1, err := Acquire(dir)
	if err != nil {
		t.Fatalf("first Acquire() error = %v", err)
	}
	defer func() { _ = l1.Release() }()

	_, err = Acquire(dir)
	var held *HeldError
	if !errors.As(err, &held) {
		t.Fatalf("expected HeldError, got %T: %v", err, err)
	}
	if held.PID != os.Getpid() {
		t.Errorf("PID = %d, want %d", held.PID, os.Getpid())
	}
}

func TestHolder(t *testing.T) {
	dir := t.TempDir()

	if _, ok := Holder(dir); ok {
		t.Fatal("Holder() reported a free directory as held")
	}

	l, err := Acquire(dir)
	if err != nil {
		t.Fatal(err)
	}
	pid, ok := Holder(dir)
	if !ok || pid != os.Getpid() {
		t.Errorf("Holder() = %d, %v; want %d, true", pid, ok, os.Getpid())
	}
	_ = l.Release()

	if _, ok := Holder(dir); ok {
		t.Error("Holder() reported a released directory as held")
	}
}

func TestHolderLeavesLockUntouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	Holder(dir)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("Holder() created %s: %v", path, err)
	}

	l, err := Acquire(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = l.Release() }()
	before, _ := os.ReadFile(path)

	Holder(dir)
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("lock file gone after Holder(): %v", err)
	}
	if string(after) != string(before) {
		t.Errorf("lock file = %q after Holder(), want %q", after, before)
	}
}

func TestHolderDoesNotBlockAcquire(t *testing.T) {
	dir := t.TempDir()
	l, err := Acquire(dir)
	if err != nil {
		t.Fatal(err)
	}
	_ = l.Release()

	// A stale file from an earlier owner must not read as held.
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("pid=1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, ok := Holder(dir); ok {
		t.Error("Holder() reported an unlocked stale file as held")
	}
	l, err = Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire() after Holder() error = %v", err)
	}
	_ = l.Release()
}

func TestReleaseNil(t *testing.T) {
	var l *Lock
	if err := l.Release(); err != nil {
		t.Errorf("nil Release() error = %v", err)
	}
}

func TestReleaseIdempotent(t *testing.T) {
	l, err := Acquire(t.TempDir())
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if err := l.Release(); err != nil {
		t.Errorf("first Release() error = %v", err)
	}
	if err := l.Release(); err != nil {
		t.Errorf("second Release() error = %v", err)
	}
}
