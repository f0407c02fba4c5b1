package life3d

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

const tinyPattern = `#N Tiny
#C two slices
! another comment
0 1 2
.*.
**


*.
`

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern(strings.NewReader(tinyPattern))
	if err != nil {
		t.Fatalf("ParsePattern: %v", err)
	}
	if p.Name != "Tiny" {
		t.Fatalf("name = %q, want Tiny", p.Name)
	}
	want := []Point{{1, 1, 2}, {0, 2, 2}, {1, 2, 2}, {0, 1, 3}}
	if !slices.Equal(p.Cells, want) {
		t.Fatalf("cells = %v, want %v", p.Cells, want)
	}
}

func TestParsePatternSingleOrigin(t *testing.T) {
	p, err := ParsePattern(strings.NewReader("-1\nO.o\n"))
	if err != nil {
		t.Fatalf("ParsePattern: %v", err)
	}
	want := []Point{{-1, -1, -1}, {1, -1, -1}}
	if !slices.Equal(p.Cells, want) {
		t.Fatalf("cells = %v, want %v", p.Cells, want)
	}
	if p.Name != "" {
		t.Fatalf("name = %q, want empty", p.Name)
	}
}

func TestParsePatternErrors(t *testing.T) {
	tests := map[string]string{
		"no header":      "#N Empty\n# nothing else\n",
		"bad header":     "1 2\n*\n",
		"word header":    "one\n*\n",
		"bad cell":       "0\n.x.\n",
		"no live cells":  "0\n...\n\n...\n",
		"empty document": "",
	}
	for name, in := range tests {
		if _, err := ParsePattern(strings.NewReader(in)); err == nil {
			t.Fatalf("%s: ParsePattern succeeded, want error", name)
		}
	}
}

func TestLoadPatternFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corner.txt")
	if err := os.WriteFile(path, []byte("0\n**\n*.\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	p, err := LoadPatternFile(path)
	if err != nil {
		t.Fatalf("LoadPatternFile: %v", err)
	}
	if p.Name != "corner" || len(p.Cells) != 3 {
		t.Fatalf("pattern = %q with %d cells, want corner with 3", p.Name, len(p.Cells))
	}

	_, err = LoadPatternFile(filepath.Join(dir, "missing.txt"))
	if err == nil || !strings.Contains(err.Error(), "[LoadPatternFile] failed to open file") {
		t.Fatalf("missing file error = %v", err)
	}
}
