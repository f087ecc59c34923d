package results

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// CSVSink writes rows as CSV, flushing after every row so partial results
// survive an interrupted run.
type CSVSink struct {
	mu     sync.Mutex
	w      *csv.Writer
	closer io.Closer
	closed bool
}

// NewCSVSink writes the header to w and returns a sink over it.
func NewCSVSink(w io.Writer) (*CSVSink, error) {
	s := &CSVSink{w: csv.NewWriter(w)}
	if err := s.writeRecord(Header); err != nil {
		return nil, err
	}
	return s, nil
}

// CreateCSV creates (truncating) the file at path, with parent directories,
// and returns a sink that closes it on Close.
func CreateCSV(path string) (*CSVSink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("results: mkdir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("results: create: %w", err)
	}
	s, err := NewCSVSink(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	s.closer = f
	return s, nil
}

// Write implements Sink.
func (s *CSVSink) Write(_ context.Context, r Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return s.writeRecord(r.Record())
}

func (s *CSVSink) writeRecord(rec []string) error {
	if err := s.w.Write(rec); err != nil {
		return fmt.Errorf("results: csv write: %w", err)
	}
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return fmt.Errorf("results: csv flush: %w", err)
	}
	return nil
}

// Close implements Sink. Closing twice is a no-op.
func (s *CSVSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
