/*
Package ports defines the driven ports (interfaces) of the fasim simulator.

These interfaces decouple the core from external implementations, so the same
automaton can be read from any source and its traces kept in any store.

# Key Interfaces

  - TableLoader: Responsible for reading the raw table and request lines.
  - TraceStore: Responsible for persisting simulation results.
*/
package ports
