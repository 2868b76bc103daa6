package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryFileSystem_ReadWrite(t *testing.T) {
	fs := NewMemoryFileSystem()
	fs.WriteFile("dir/a.json", []byte("hello"))

	if !fs.Exists("dir/a.json") {
		t.Error("expected written file to exist")
	}
	if fs.Exists("dir/b.json") {
		t.Error("expected missing file to not exist")
	}

	data, err := fs.ReadFile("dir/a.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("expected %q, got %q", "hello", data)
	}

	if _, err := fs.ReadFile("dir/b.json"); err == nil {
		t.Error("expected error reading missing file")
	}
}

func TestMemoryFileSystem_ReadFileCopies(t *testing.T) {
	fs := NewMemoryFileSystem()
	fs.WriteFile("f", []byte("abc"))

	data, err := fs.ReadFile("f")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data[0] = 'x'

	again, err := fs.ReadFile("f")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(again) != "abc" {
		t.Errorf("stored data mutated through a returned slice: %q", again)
	}
}

func TestMemoryFileSystem_Glob(t *testing.T) {
	fs := NewMemoryFileSystem()
	fs.WriteFile("data/track-LA_2CH.json", nil)
	fs.WriteFile("data/track-LA_4CH.json", nil)
	fs.WriteFile("data/track-LA_12CH.json", nil)
	fs.WriteFile("data/readme.txt", nil)

	matched, err := fs.Glob("data/track-LA_[0-9]CH.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"data/track-LA_2CH.json", "data/track-LA_4CH.json"}
	if len(matched) != len(want) {
		t.Fatalf("expected %v, got %v", want, matched)
	}
	for i := range want {
		if matched[i] != want[i] {
			t.Errorf("match %d: expected %q, got %q", i, want[i], matched[i])
		}
	}
}

func TestOSFileSystem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.json")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	var fs OSFileSystem
	if !fs.Exists(path) {
		t.Error("expected file to exist")
	}
	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "x" {
		t.Errorf("expected %q, got %q", "x", data)
	}

	matched, err := fs.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matched) != 1 || matched[0] != path {
		t.Errorf("expected [%s], got %v", path, matched)
	}
}
