/*
Package domain contains the core domain models of the fasim automaton simulator.

It defines the vocabulary shared by the parser, the simulator and every adapter.
This package is kept pure and free of external dependencies like I/O or persistence.

# Key Entities

  - State / Symbol: opaque, case-sensitive identifiers read from the table.
  - Destination: the result of a lookup, either a State or Undefined ("None").
  - TransitionRow: the outgoing transitions of one state, in declaration order.
  - Trace: the ordered (input, destination) pairs produced by one simulation run.
  - Request: one simulation description (start state plus inputs).
*/
package domain
