package session

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wricardo/amazeing/maze/engine"
)

const hexDigits = "0123456789ABCDEF"

// FileExporter implements Exporter by writing the text export format to a file.
type FileExporter struct {
	path string
}

// NewFileExporter creates an exporter writing to path. The parent directory
// is created if needed.
func NewFileExporter(path string) (*FileExporter, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty output path", ErrInvalidExport)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return &FileExporter{path: path}, nil
}

// Export overwrites the output file with the encoded session.
func (fe *FileExporter) Export(s *Session) error {
	if s == nil {
		return fmt.Errorf("session cannot be nil")
	}
	if err := os.WriteFile(fe.path, Encode(s), 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

func (fe *FileExporter) Path() string {
	return fe.path
}

// Encode renders the wall masks as hex digits, one row per line, followed by
// a blank line, the entry, the exit and the solution letters. The last line
// has no trailing newline.
func Encode(s *Session) []byte {
	var buf bytes.Buffer
	g := s.Grid
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			buf.WriteByte(hexDigits[g.Walls(x, y)&engine.AllWalls])
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	fmt.Fprintf(&buf, "%s\n", s.Entry)
	fmt.Fprintf(&buf, "%s\n", s.Exit)
	buf.WriteString(s.DirectionString())
	return buf.Bytes()
}

// ReadExport decodes the export file at path.
func ReadExport(path string) (*Export, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses the text export format. Rows must all have the same width
// and contain only hex digits.
func Decode(r io.Reader) (*Export, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}

	blank := -1
	for i, line := range lines {
		if line == "" {
			blank = i
			break
		}
	}
	if blank <= 0 {
		return nil, fmt.Errorf("%w: missing grid or blank separator line", ErrInvalidExport)
	}

	exp := &Export{Height: blank, Width: len(lines[0])}
	exp.Walls = make([][]uint8, exp.Height)
	for y := 0; y < blank; y++ {
		if len(lines[y]) != exp.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidExport, y, len(lines[y]), exp.Width)
		}
		row := make([]uint8, exp.Width)
		for x, c := range lines[y] {
			v, err := strconv.ParseUint(string(c), 16, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %q is not a hex digit", ErrInvalidExport, y, x, c)
			}
			row[x] = uint8(v)
		}
		exp.Walls[y] = row
	}

	rest := lines[blank+1:]
	if len(rest) < 2 {
		return nil, fmt.Errorf("%w: missing entry or exit line", ErrInvalidExport)
	}

	var err error
	if exp.Entry, err = parsePoint(rest[0]); err != nil {
		return nil, fmt.Errorf("%w: entry: %v", ErrInvalidExport, err)
	}
	if exp.Exit, err = parsePoint(rest[1]); err != nil {
		return nil, fmt.Errorf("%w: exit: %v", ErrInvalidExport, err)
	}

	exp.Directions = []engine.Direction{}
	if len(rest) > 2 {
		if len(rest) > 3 {
			return nil, fmt.Errorf("%w: unexpected content after the path line", ErrInvalidExport)
		}
		if exp.Directions, err = engine.ParseDirections(rest[2]); err != nil {
			return nil, fmt.Errorf("%w: path: %v", ErrInvalidExport, err)
		}
	}

	return exp, nil
}

func parsePoint(s string) (engine.Point, error) {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return engine.Point{}, fmt.Errorf("%q is not x,y", s)
	}
	px, errX := strconv.Atoi(x)
	py, errY := strconv.Atoi(y)
	if errX != nil || errY != nil {
		return engine.Point{}, fmt.Errorf("%q is not x,y", s)
	}
	return engine.Point{X: px, Y: py}, nil
}
