/*
Package automaton parses finite automaton descriptions and simulation requests.

A table line names a state followed by (symbol, destination) pairs, all separated
by semicolons:

	A;0;B;1;A
	B;0;A;1;B

A request line names a start state followed by the inputs to feed it:

	A;0;1;1;0

The resulting Table is immutable and safe to share across goroutines.
*/
package automaton
