package usecase

import (
	"sort"

	"delivery-route-optimizer/internal/route"
)

// baselineOrder returns the deterministic fallback ordering: addresses
// sorted by descending priority, ties keeping original input order.
// Always available without any external dependency.
func baselineOrder(addresses []route.Address) []route.Address {
	ordered := make([]route.Address, len(addresses))
	copy(ordered, addresses)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	return ordered
}
