package memory

import (
	"context"
	"strings"
)

// Loader implements ports.TableLoader over in-memory text.
type Loader struct {
	table    []string
	requests []string
}

// NewLoader creates a loader from already split lines.
func NewLoader(table, requests []string) *Loader {
	return &Loader{table: table, requests: requests}
}

// NewLoaderFromText splits both documents on newlines.
func NewLoaderFromText(table, requests string) *Loader {
	return NewLoader(splitLines(table), splitLines(requests))
}

// TableLines returns a copy of the table lines.
func (l *Loader) TableLines(ctx context.Context) ([]string, error) {
	return append([]string(nil), l.table...), nil
}

// RequestLines returns a copy of the request lines.
func (l *Loader) RequestLines(ctx context.Context) ([]string, error) {
	return append([]string(nil), l.requests...), nil
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
