package automaton

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type yamlDocument struct {
	States []yamlState `yaml:"states"`
}

type yamlState struct {
	Name        string           `yaml:"name"`
	Transitions []yamlTransition `yaml:"transitions,omitempty"`
}

type yamlTransition struct {
	Input string `yaml:"input"`
	To    string `yaml:"to"`
}

// MarshalYAML renders the table as a list of states, each with its
// transitions in declaration order.
func (t *Table) MarshalYAML() (interface{}, error) {
	doc := yamlDocument{States: []yamlState{}}
	for _, e := range t.Entries() {
		st := yamlState{Name: string(e.State)}
		for _, sym := range e.Row.Symbols() {
			st.Transitions = append(st.Transitions, yamlTransition{
				Input: string(sym),
				To:    e.Row.Get(sym).String(),
			})
		}
		doc.States = append(doc.States, st)
	}
	return doc, nil
}

// ParseYAML decodes a table written by MarshalYAML. The same rules as Parse
// apply: later states replace earlier ones and None is reserved.
func ParseYAML(data []byte, opts ...Option) (*Table, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode table: %w", err)
	}

	lines := make([]string, 0, len(doc.States))
	for i, st := range doc.States {
		if st.Name == "" {
			return nil, fmt.Errorf("failed to decode table: state %d has no name", i+1)
		}
		fields := []string{st.Name}
		for _, tr := range st.Transitions {
			fields = append(fields, tr.Input, tr.To)
		}
		for _, f := range fields {
			if strings.Contains(f, Delimiter) {
				return nil, fmt.Errorf("failed to decode table: %q contains %q", f, Delimiter)
			}
		}
		lines = append(lines, strings.Join(fields, Delimiter))
	}
	return Parse(lines, opts...), nil
}

var _ yaml.Marshaler = (*Table)(nil)
