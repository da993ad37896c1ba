/*
Package fasim simulates deterministic finite automata described by semicolon-delimited tables.

A table line names a state and its (input, next state) pairs. A simulation request names a
start state and the inputs to feed it. The result is a trace with one entry per input; an
input with no transition leads to the "None" sentinel, which absorbs every later input.

# Usage

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/aretw0/fasim"
	)

	func main() {
		eng, err := fasim.New("faparity.txt")
		if err != nil {
			log.Fatal(err)
		}
		if err := eng.Describe(os.Stdout); err != nil {
			log.Fatal(err)
		}

		rec, err := eng.SimulateLine(context.Background(), "even;1;0;1")
		if err != nil {
			log.Fatal(err)
		}
		if err := eng.Print(os.Stdout, rec); err != nil {
			log.Fatal(err)
		}
	}
*/
package fasim
