package automaton

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/fasim/pkg/domain"
)

// ParseRequest splits a simulation description into its start state and inputs.
// A line with a start state and nothing else is a valid request with no inputs.
func ParseRequest(line string, opts ...Option) (domain.Request, error) {
	if isBlank(line) {
		return domain.Request{}, domain.ErrEmptyRequest
	}
	o := newOptions(opts)
	fields := o.split(line)

	inputs := make([]domain.Symbol, 0, len(fields)-1)
	for _, f := range fields[1:] {
		inputs = append(inputs, domain.Symbol(f))
	}
	return domain.Request{
		Raw:    strings.TrimSuffix(line, "\r"),
		Start:  domain.State(fields[0]),
		Inputs: inputs,
	}, nil
}

// ParseRequests reads one request per line from r, skipping blank lines.
func ParseRequests(r io.Reader, opts ...Option) ([]domain.Request, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read requests: %w", err)
	}
	reqs := make([]domain.Request, 0, len(lines))
	for _, line := range lines {
		req, err := ParseRequest(line, opts...)
		if err != nil {
			continue
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}
