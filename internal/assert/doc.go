// Package assert implements precondition checks for programmer errors.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Checks are active by default and trap with a logged panic. Building with
// the "release" tag compiles them out; violated preconditions are then
// undefined behavior, exactly like unchecked indexing.
package assert
