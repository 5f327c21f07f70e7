package fontres

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not a real font"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDirScannerFindsKnownFont(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "truetype", "SimHei.ttf"))

	s := DirScanner{Dirs: []string{dir}, Names: []string{"simhei.ttf"}}
	font, err := s.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if font.Family != "SimHei" {
		t.Errorf("family = %q, want SimHei", font.Family)
	}
	if font.Path != filepath.Join(dir, "truetype", "SimHei.ttf") {
		t.Errorf("path = %q", font.Path)
	}
}

func TestDirScannerSearchOrder(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	writeFile(t, filepath.Join(second, "msyh.ttf"))
	writeFile(t, filepath.Join(first, "simhei.ttf"))

	s := DirScanner{Dirs: []string{first, second}, Names: []string{"msyh.ttf", "simhei.ttf"}}
	font, err := s.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if font.Family != "simhei" {
		t.Errorf("resolved %q, want the match from the first directory", font.Family)
	}
}

func TestDirScannerNotFound(t *testing.T) {
	s := DirScanner{Dirs: []string{t.TempDir(), "/no/such/dir"}, Names: []string{"msyh.ttf"}}
	if _, err := s.Resolve(); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestFileResolver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.ttf")
	writeFile(t, path)

	font, err := File{Path: path}.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if font.Family != "custom" || font.Path != path {
		t.Errorf("font = %+v", font)
	}

	if _, err := (File{Path: path + ".missing"}).Resolve(); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing file error = %v, want ErrNotFound", err)
	}
	if _, err := (File{}).Resolve(); !errors.Is(err, ErrNotFound) {
		t.Errorf("empty path error = %v, want ErrNotFound", err)
	}
}
