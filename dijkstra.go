package pathfinding

import (
	"container/heap"
)

// searchNode tracks the best known route to a graph node during a search.
type searchNode struct {
	node   int     // arena index in the graph
	cost   float64 // tentative cost from the source
	parent *searchNode
	via    string // connection used to reach this node
	index  int    // index in the heap
}

// frontier implements heap.Interface ordered by tentative cost.
type frontier []*searchNode

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	return f[i].cost < f[j].cost
}

func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

func (f *frontier) Push(x interface{}) {
	n := len(*f)
	sn := x.(*searchNode)
	sn.index = n
	*f = append(*f, sn)
}

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	sn := old[n-1]
	old[n-1] = nil
	sn.index = -1
	*f = old[0 : n-1]
	return sn
}

// ShortestPath runs Dijkstra between two node ids. Absence of a path,
// including unknown ids, is reported through the second return, never as an
// error; callers wanting a sharper diagnostic validate ids beforehand.
func (g *Graph) ShortestPath(source, target string) (Path, bool) {
	return g.shortestPath(source, target, nil, nil)
}

// ShortestPathExcluding runs Dijkstra while treating the listed connections
// and nodes as absent. The source and target themselves are never excluded,
// even if listed.
func (g *Graph) ShortestPathExcluding(source, target string, excludedConnections, excludedNodes []string) (Path, bool) {
	exConns := make(map[string]bool, len(excludedConnections))
	for _, id := range excludedConnections {
		exConns[id] = true
	}
	exNodes := make(map[string]bool, len(excludedNodes))
	for _, id := range excludedNodes {
		exNodes[id] = true
	}
	return g.shortestPath(source, target, exConns, exNodes)
}

func (g *Graph) shortestPath(source, target string, excludedConnections, excludedNodes map[string]bool) (Path, bool) {
	srcIdx, ok := g.index[source]
	if !ok {
		return Path{}, false
	}
	dstIdx, ok := g.index[target]
	if !ok {
		return Path{}, false
	}

	open := &frontier{}
	heap.Init(open)

	start := &searchNode{node: srcIdx}
	heap.Push(open, start)

	visited := make(map[int]bool)
	openSet := map[int]*searchNode{srcIdx: start}

	for open.Len() > 0 {
		current := heap.Pop(open).(*searchNode)
		delete(openSet, current.node)

		// Return as soon as the target is expanded; the frontier is ordered,
		// so no cheaper route can still be pending.
		if current.node == dstIdx {
			return g.reconstruct(current), true
		}

		visited[current.node] = true

		for _, nb := range g.Nodes[current.node].Neighbors {
			if visited[nb.Node] {
				continue
			}
			if excludedConnections[nb.Connection] {
				continue
			}
			if nb.Node != srcIdx && nb.Node != dstIdx && excludedNodes[g.Nodes[nb.Node].ID] {
				continue
			}

			tentative := current.cost + nb.Cost

			next, exists := openSet[nb.Node]
			if !exists {
				next = &searchNode{
					node:   nb.Node,
					cost:   tentative,
					parent: current,
					via:    nb.Connection,
				}
				heap.Push(open, next)
				openSet[nb.Node] = next
			} else if tentative < next.cost {
				// Strictly cheaper only: among equal-cost routes the first
				// discovered wins.
				next.cost = tentative
				next.parent = current
				next.via = nb.Connection
				heap.Fix(open, next.index)
			}
		}
	}

	return Path{}, false
}

// reconstruct walks the parent chain back to the source and reverses it.
func (g *Graph) reconstruct(end *searchNode) Path {
	p := Path{Cost: end.cost}
	for sn := end; sn != nil; sn = sn.parent {
		p.Nodes = append(p.Nodes, g.Nodes[sn.node].ID)
		if sn.parent != nil {
			p.Connections = append(p.Connections, sn.via)
		}
	}
	for i, j := 0, len(p.Nodes)-1; i < j; i, j = i+1, j-1 {
		p.Nodes[i], p.Nodes[j] = p.Nodes[j], p.Nodes[i]
	}
	for i, j := 0, len(p.Connections)-1; i < j; i, j = i+1, j-1 {
		p.Connections[i], p.Connections[j] = p.Connections[j], p.Connections[i]
	}
	return p
}
