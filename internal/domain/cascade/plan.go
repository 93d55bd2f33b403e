package cascade

import "sort"

// Plan lists the entity kinds affected by removing a root, deepest
// dependents first and the root last. Executing deletes in this order never
// leaves a dangling reference mid-operation; archive uses the same order for
// symmetry.
func Plan(root Kind) ([]Kind, error) {
	switch root {
	case KindProperty, KindClient, KindDeal, KindContract:
	default:
		return nil, ErrUnsupportedRoot
	}

	// BFS recording the deepest level each kind is reached at; payment is
	// reachable through both deal and contract and must sort below both.
	depth := map[Kind]int{root: 0}
	queue := []Kind{root}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, child := range children(current) {
			d := depth[current] + 1
			if existing, ok := depth[child]; !ok || d > existing {
				depth[child] = d
				queue = append(queue, child)
			}
		}
	}

	kinds := make([]Kind, 0, len(depth))
	for k := range depth {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		if depth[kinds[i]] != depth[kinds[j]] {
			return depth[kinds[i]] > depth[kinds[j]]
		}
		return kinds[i] < kinds[j]
	})

	return kinds, nil
}
