// Package compose turns a validated cluster configuration into the
// declarative compose definition consumed by an external orchestrator
// binary. Generation is deterministic: the proxy service comes first,
// active servers follow in resolved order, and marshalling preserves that
// order so repeated runs produce byte-identical files.
package compose
