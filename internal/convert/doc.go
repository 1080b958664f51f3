// Package convert fans discovered save files out to concurrent conversion
// units and aggregates their outcomes.
//
// Every unit owns exactly one file handle for its lifetime. Units never
// report errors to each other: a failed open, lock, conversion, or display
// name only marks that unit's Outcome as failed.
package convert
