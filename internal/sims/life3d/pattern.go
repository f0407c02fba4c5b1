package life3d

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParsePattern reads a pattern file.
//
// Lines starting with '#' or '!' are comments. The first remaining line is
// the header: either one integer, used as the origin offset on every axis, or
// three integers for x, y and z. The rows that follow mark live cells with
// '*' or 'O' and dead ones with '.'; the column is x and the row is y. A blank
// line starts the next z slice. The returned offsets are shifted by the
// header origin.
func ParsePattern(r io.Reader) (Pattern, error) {
	var (
		p         Pattern
		origin    Point
		haveHdr   bool
		x, y, z   int
		sliceRows int
	)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(text, "#") || strings.HasPrefix(text, "!") {
			if name, ok := strings.CutPrefix(text, "#N"); ok && p.Name == "" {
				p.Name = strings.TrimSpace(name)
			}
			continue
		}
		if !haveHdr {
			if strings.TrimSpace(text) == "" {
				continue
			}
			o, err := parseHeader(text)
			if err != nil {
				return Pattern{}, errors.Wrapf(err, "line %d", line)
			}
			origin = o
			haveHdr = true
			continue
		}
		if strings.TrimSpace(text) == "" {
			if sliceRows > 0 {
				z++
				y = 0
				sliceRows = 0
			}
			continue
		}
		for x = 0; x < len(text); x++ {
			switch text[x] {
			case '*', 'O', 'o':
				p.Cells = append(p.Cells, origin.Add(Point{x, y, z}))
			case '.', ' ':
			default:
				return Pattern{}, errors.Errorf("line %d: unexpected %q", line, text[x])
			}
		}
		y++
		sliceRows++
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, errors.Wrap(err, "reading pattern")
	}
	if !haveHdr {
		return Pattern{}, errors.New("missing header line")
	}
	if len(p.Cells) == 0 {
		return Pattern{}, errors.New("pattern has no live cells")
	}
	return p, nil
}

func parseHeader(text string) (Point, error) {
	fields := strings.Fields(text)
	vals := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Point{}, errors.Wrapf(err, "header %q", text)
		}
		vals[i] = v
	}
	switch len(vals) {
	case 1:
		return Point{vals[0], vals[0], vals[0]}, nil
	case 3:
		return Point{vals[0], vals[1], vals[2]}, nil
	}
	return Point{}, errors.Errorf("header %q: want 1 or 3 integers, got %d", text, len(vals))
}

// LoadPatternFile parses the pattern file at path. A pattern without a "#N"
// name line is named after the file.
func LoadPatternFile(path string) (Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return Pattern{}, errors.Wrapf(err, "[LoadPatternFile] failed to open file: %s", path)
	}
	defer f.Close()
	p, err := ParsePattern(f)
	if err != nil {
		return Pattern{}, errors.Wrapf(err, "[LoadPatternFile] failed to parse file: %s", path)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}
