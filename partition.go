package valedictory

// PartitionMap splits a map in two based on a predicate. Pairs for which pred
// returns false land in falsy, the rest in truthy. The input map is not
// modified.
func PartitionMap[K comparable, V any](m map[K]V, pred func(K, V) bool) (falsy, truthy map[K]V) {
	falsy = make(map[K]V)
	truthy = make(map[K]V)
	for k, v := range m {
		if pred(k, v) {
			truthy[k] = v
		} else {
			falsy[k] = v
		}
	}
	return falsy, truthy
}
