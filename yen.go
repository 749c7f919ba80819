package pathfinding

// KShortestPaths enumerates up to k loopless paths between two node ids in
// non-decreasing cost order using Yen's algorithm. Each iteration deviates
// from the previously accepted path at every possible spur node, searching
// under exclusions that force a genuinely new branch. Fewer than k paths are
// returned when the graph runs out of alternatives; no path at all yields an
// empty result.
func (g *Graph) KShortestPaths(source, target string, k int) []Path {
	if k < 1 {
		return nil
	}

	first, ok := g.ShortestPath(source, target)
	if !ok {
		return nil
	}

	accepted := []Path{first}
	var candidates []Path

	for len(accepted) < k {
		prev := accepted[len(accepted)-1]

		// Branch off at every node of the last accepted path except the target.
		for i := 0; i < len(prev.Nodes)-1; i++ {
			spur := prev.Nodes[i]
			rootNodes := prev.Nodes[: i+1 : i+1]
			rootConns := prev.Connections[:i:i]

			// Exclude the connections accepted paths take out of this same
			// prefix, so the spur search cannot regenerate one of them.
			var exConns []string
			for _, p := range accepted {
				if len(p.Connections) > i && sameNodes(p.Nodes[:i+1], rootNodes) {
					exConns = append(exConns, p.Connections[i])
				}
			}

			// Exclude the prefix nodes (spur excepted) so the spur search
			// cannot cycle back into the already-traversed root.
			exNodes := rootNodes[:i]

			spurPath, found := g.ShortestPathExcluding(spur, target, exConns, exNodes)
			if !found {
				continue
			}

			candidate := Path{
				Nodes:       append(append([]string(nil), rootNodes...), spurPath.Nodes[1:]...),
				Connections: append(append([]string(nil), rootConns...), spurPath.Connections...),
				Cost:        g.prefixCost(rootNodes, rootConns) + spurPath.Cost,
			}

			if containsPath(accepted, candidate.Nodes) || containsPath(candidates, candidate.Nodes) {
				continue
			}
			candidates = append(candidates, candidate)
		}

		if len(candidates) == 0 {
			break
		}

		// Accept the cheapest remaining candidate.
		best := 0
		for i := 1; i < len(candidates); i++ {
			if candidates[i].Cost < candidates[best].Cost {
				best = i
			}
		}
		accepted = append(accepted, candidates[best])
		candidates = append(candidates[:best], candidates[best+1:]...)
	}

	return accepted
}

// prefixCost sums the adjacency costs along a path prefix.
func (g *Graph) prefixCost(nodes []string, conns []string) float64 {
	total := 0.0
	for i, connID := range conns {
		from := g.index[nodes[i]]
		to := g.index[nodes[i+1]]
		for _, nb := range g.Nodes[from].Neighbors {
			if nb.Connection == connID && nb.Node == to {
				total += nb.Cost
				break
			}
		}
	}
	return total
}

// containsPath reports whether any path has the given ordered node sequence.
func containsPath(paths []Path, nodes []string) bool {
	for _, p := range paths {
		if sameNodes(p.Nodes, nodes) {
			return true
		}
	}
	return false
}

func sameNodes(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
