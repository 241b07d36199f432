package harvest

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ComputeHash computes a hash of a retrieved document using xxhash.
// Documents with equal hashes are treated as unchanged.
func ComputeHash(document string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(document))
}
