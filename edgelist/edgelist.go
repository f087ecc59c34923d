// Package edgelist reads and writes the plain-text edge-list format used to
// persist graph instances between the generate and run stages.
//
// Format: one edge per line, two whitespace-separated non-negative integers
// (0-based vertex IDs), no header, no attributes. Blank lines are skipped.
// Only vertices that appear in some edge are recovered on read.
package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/divgame/core"
)

// ErrFormat classifies malformed edge-list input. Use errors.Is.
var ErrFormat = errors.New("edgelist: malformed line")

// FormatError reports the offending line. It unwraps to ErrFormat, and to the
// underlying parse or graph error when there is one.
type FormatError struct {
	Path string // file path, empty for Read
	Line int    // 1-based line number
	Text string // raw line
	Err  error  // cause
}

// Error implements error.
func (e *FormatError) Error() string {
	loc := strconv.Itoa(e.Line)
	if e.Path != "" {
		loc = e.Path + ":" + loc
	}

	return fmt.Sprintf("edgelist: %s: %q: %v", loc, e.Text, e.Err)
}

// Unwrap exposes ErrFormat and the cause to errors.Is / errors.As.
func (e *FormatError) Unwrap() []error {
	return []error{ErrFormat, e.Err}
}

// fieldsPerLine is the exact token count of an edge line.
const fieldsPerLine = 2

// commentPrefix starts a comment running to the end of the line.
const commentPrefix = "#"

// Read parses an edge list from r into a new core.Graph.
//
// Blank lines and '#' comments (whole-line or trailing) are skipped. A
// repeated edge (in either orientation) is ignored. A self-loop line "v v"
// adds v without an edge, since core.Graph is simple.
//
// Errors:
//   - *FormatError (errors.Is ErrFormat) for a line that is not exactly two
//     integers, or that names a negative vertex ID.
//   - I/O errors from r, wrapped.
func Read(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	sc := bufio.NewScanner(r)

	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		data, _, _ := strings.Cut(text, commentPrefix)
		fields := strings.Fields(data)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != fieldsPerLine {
			return nil, &FormatError{Line: line, Text: text,
				Err: fmt.Errorf("want %d fields, got %d", fieldsPerLine, len(fields))}
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, &FormatError{Line: line, Text: text, Err: err}
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, &FormatError{Line: line, Text: text, Err: err}
		}
		switch err = g.AddEdge(u, v); {
		case err == nil, errors.Is(err, core.ErrMultiEdgeNotAllowed):
			// repeated edges collapse onto the first
		case errors.Is(err, core.ErrLoopNotAllowed):
			// self-loops are dropped; the vertex itself is kept
			if err = g.AddVertex(u); err != nil {
				return nil, &FormatError{Line: line, Text: text, Err: err}
			}
		default:
			return nil, &FormatError{Line: line, Text: text, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}

	return g, nil
}

// ReadFile opens path and parses it with Read. FormatErrors carry the path.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: open: %w", err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Path = path
		}
		return nil, err
	}

	return g, nil
}

// Write emits g's edges to w, one "u v" line per edge in canonical order.
// Isolated vertices are not representable and are dropped.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e.U, e.V); err != nil {
			return fmt.Errorf("edgelist: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("edgelist: write: %w", err)
	}

	return nil
}

// WriteFile writes g to path, creating parent directories as needed.
func WriteFile(path string, g *core.Graph) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("edgelist: mkdir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("edgelist: create: %w", err)
	}
	if err = Write(f, g); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
