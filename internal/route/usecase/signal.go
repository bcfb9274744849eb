package usecase

import (
	"strings"

	"delivery-route-optimizer/internal/route"
)

// applyAdjustment maps the provider's reordering hint back onto the
// input addresses. Accepts the hint only if it is an exact multiset
// permutation of the input address strings: same length, every entry
// matched, nothing left over. Duplicated input addresses are consumed
// in input order, keeping the mapping stable.
func applyAdjustment(input []route.Address, reordering []string) ([]route.Address, bool) {
	if len(reordering) != len(input) {
		return nil, false
	}

	remaining := make(map[string][]int, len(input))
	for i, a := range input {
		remaining[a.Address] = append(remaining[a.Address], i)
	}

	ordered := make([]route.Address, 0, len(input))
	for _, addr := range reordering {
		key := strings.TrimSpace(addr)
		queue := remaining[key]
		if len(queue) == 0 {
			return nil, false
		}
		ordered = append(ordered, input[queue[0]])
		remaining[key] = queue[1:]
	}

	return ordered, true
}
