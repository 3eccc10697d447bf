// File: ring/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"fmt"

	"github.com/momentics/hioload-ring/api"
)

// errCommitRange wraps api.ErrCommitRange with the offending count.
func errCommitRange(n, limit int) error {
	return fmt.Errorf("%w: %d exceeds %d", api.ErrCommitRange, n, limit)
}
