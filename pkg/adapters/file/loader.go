// Package file reads automaton tables and simulation requests from disk.
package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// Loader implements ports.TableLoader over two text files.
type Loader struct {
	TablePath    string
	RequestsPath string
}

// NewLoader creates a loader for the given table and requests files.
func NewLoader(tablePath, requestsPath string) *Loader {
	return &Loader{TablePath: tablePath, RequestsPath: requestsPath}
}

// TableLines reads the table file.
func (l *Loader) TableLines(ctx context.Context) ([]string, error) {
	return ReadLines(ctx, l.TablePath)
}

// RequestLines reads the requests file.
func (l *Loader) RequestLines(ctx context.Context) ([]string, error) {
	return ReadLines(ctx, l.RequestsPath)
}

// ReadLines returns the lines of path without their terminators.
func ReadLines(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}
