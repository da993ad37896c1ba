package automaton

import (
	"io"
	"log/slog"
	"strings"
)

// Delimiter separates the fields of table and request lines.
const Delimiter = ";"

// Option configures parsing.
type Option func(*options)

type options struct {
	trimSpace bool
	sharedRow bool
	logger    *slog.Logger
}

func newOptions(opts []Option) options {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTrimSpace trims surrounding whitespace from every field.
func WithTrimSpace() Option {
	return func(o *options) {
		o.trimSpace = true
	}
}

// WithSharedRow makes every line extend one working row that carries over to the
// next line, instead of starting each state with an empty row. Old table files
// written against that behavior depend on it; new tables should not.
func WithSharedRow() Option {
	return func(o *options) {
		o.sharedRow = true
	}
}

// WithLogger reports parse diagnostics at warn level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func (o options) split(line string) []string {
	line = strings.TrimSuffix(line, "\r")
	fields := strings.Split(line, Delimiter)
	if o.trimSpace {
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
	}
	return fields
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
