package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("conf.mcl", []byte("a 1"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	// тот же путь, новое содержимое
	id2 := fs.Add("conf.mcl", []byte("a 2"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	if string(fs.Get(id1).Content) != "a 1" {
		t.Errorf("old version must stay addressable, got %q", fs.Get(id1).Content)
	}
	if fs.Get(id1).Hash == fs.Get(id2).Hash {
		t.Error("different content must hash differently")
	}
	if fs.Len() != 2 {
		t.Errorf("Expected 2 files, got %d", fs.Len())
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.mcl", []byte("ab\ncd\n\nx"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 3}}, // сам '\n' принадлежит первой строке
		{3, LineCol{2, 1}},
		{4, LineCol{2, 2}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
		{8, LineCol{4, 2}}, // EOF
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("offset %d: got %v, want %v", tt.off, start, tt.want)
		}
	}

	pos := fs.Get(id).Position(4)
	if pos.Line != 2 || pos.Col != 2 || pos.Off != 4 {
		t.Errorf("unexpected position %+v", pos)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("test.mcl", []byte("first\nsecond\n")))

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, ""},
		{10, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestGetLineDropsCR(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("win.mcl", []byte("a 1\r\nb 2\r\n")))
	if got := f.GetLine(1); got != "a 1" {
		t.Errorf("GetLine(1) = %q", got)
	}
	if got := f.GetLine(2); got != "b 2" {
		t.Errorf("GetLine(2) = %q", got)
	}
}

func TestLoadKeepsBytesVerbatim(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "win.mcl")
	raw := "\xEF\xBB\xBFa 1\r\nb 2\r\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != raw {
		t.Errorf("content must match the file on disk, got %q", f.Content)
	}
	if f.Flags&FileVirtual != 0 {
		t.Error("loaded file must not be virtual")
	}
	// "b" стоит после "\r\n": смещение 8, строка 2
	if pos := f.Position(8); pos.Line != 2 || pos.Col != 1 {
		t.Errorf("offset 8 resolves to %v", pos.LineCol)
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.mcl")); err == nil {
		t.Fatal("expected error for missing file")
	}
}


func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()
	baseDir := filepath.Join(tmp, "base")
	target := filepath.Join(tmp, "other", "file.mcl")

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if want := normalizePath(target); got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "nested", "file.mcl")

	got, err := RelativePath(target, tmp)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if want := "nested/file.mcl"; got != want {
		t.Fatalf("expected relative path %q, got %q", want, got)
	}
}
