/*
Package dsl provides a fluent builder for constructing automaton tables in Go
instead of semicolon-delimited files.

It is mostly useful for tests and for generating tables programmatically.

Example usage:

	b := dsl.New()
	b.State("A").On("0", "B").On("1", "A")
	b.State("B").On("0", "A").On("1", "B")

	table := b.Build()
	engine := fasim.NewFromLines(b.Lines())
*/
package dsl
