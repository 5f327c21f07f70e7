// Package fontres locates TrueType font files able to render report text,
// including CJK glyphs the built-in PDF core fonts cannot draw.
//
// Resolution is injected into the renderer, so the rendering core depends
// only on "a font was found", never on concrete filesystem paths.
package fontres

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrNotFound reports that no usable font file could be located.
var ErrNotFound = errors.New("fontres: no usable font found")

// Font is a text-rendering resource: the family name under which the file
// is registered with the PDF backend, plus its path on disk.
type Font struct {
	Family string
	Path   string
}

// Resolver locates a usable font.
type Resolver interface {
	Resolve() (Font, error)
}

// File resolves to one explicit font file.
type File struct {
	Path string
}

// Resolve returns the configured file, or an error wrapping ErrNotFound
// when it does not exist.
func (f File) Resolve() (Font, error) {
	if f.Path == "" {
		return Font{}, ErrNotFound
	}
	if _, err := os.Stat(f.Path); err != nil {
		return Font{}, fmt.Errorf("fontres: %q: %w", f.Path, ErrNotFound)
	}
	return Font{Family: familyName(f.Path), Path: f.Path}, nil
}

// DirScanner walks directories looking for known font file names and
// resolves to the first match.
type DirScanner struct {
	Dirs  []string
	Names []string // base names, matched case-insensitively
}

// Resolve walks each directory in order. Directories that do not exist are
// skipped; walk errors below a directory are ignored so one unreadable
// subtree cannot hide fonts elsewhere.
func (s DirScanner) Resolve() (Font, error) {
	wanted := make(map[string]bool, len(s.Names))
	for _, n := range s.Names {
		wanted[strings.ToLower(n)] = true
	}

	for _, dir := range s.Dirs {
		var found string
		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if found == "" && !d.IsDir() && wanted[strings.ToLower(d.Name())] {
				found = path
				return filepath.SkipAll
			}
			return nil
		})
		if found != "" {
			return Font{Family: familyName(found), Path: found}, nil
		}
	}
	return Font{}, ErrNotFound
}

// Default returns a scanner over the usual font locations for the current
// OS and the common CJK-capable TrueType files.
func Default() DirScanner {
	var dirs []string
	switch runtime.GOOS {
	case "windows":
		dirs = []string{`C:\Windows\Fonts`}
	case "darwin":
		dirs = []string{"/System/Library/Fonts", "/Library/Fonts"}
	default:
		home, _ := os.UserHomeDir()
		dirs = []string{"/usr/share/fonts", "/usr/local/share/fonts", filepath.Join(home, ".fonts")}
	}
	return DirScanner{
		Dirs: dirs,
		Names: []string{
			"msyh.ttf",
			"simhei.ttf",
			"simfang.ttf",
			"simsun.ttf",
			"NotoSansSC-Regular.ttf",
			"NotoSansCJKsc-Regular.ttf",
			"wqy-microhei.ttf",
		},
	}
}

// familyName derives a registration family from the file name stem.
func familyName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
