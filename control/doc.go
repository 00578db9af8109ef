// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection for simplevector.
//
// Provides concurrent-safe registries for:
//   - Snapshot metrics fed from buffer allocation accounting
//   - Named debug probes, e.g. a vector's size and capacity
//
// The registries are safe for concurrent use; the vectors they observe are not.
package control
