package rxpermissions

import (
	"math"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// requestTag derives the routing tag for one authority call: a non-negative
// hash over the sorted permission names, so the same set always maps to the
// same tag regardless of enumeration order. Hosts that route callbacks by an
// integer request code pass this through; nothing here depends on it for
// correctness.
func requestTag(permissions []string) int {
	sorted := slices.Clone(permissions)
	slices.Sort(sorted)
	sum := xxhash.Sum64String(strings.Join(sorted, ""))
	return int(sum & math.MaxInt32)
}
