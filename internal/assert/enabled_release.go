//go:build release

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package assert

const enabled = false
