package motif

import "github.com/BiocomputeLab/mctools/core"

// Extract builds a new graph containing exactly the union of all motif
// instances of m in host: instance nodes, instance edges, and nothing
// else (incidental host edges between instance nodes are not carried).
// The returned slice maps new node IDs to host node IDs (index = new ID).
//
// The output grows one instance at a time so that only motif edges enter
// the graph; duplicate edges from overlapping instances are simplified at
// the end. An empty graph and empty map are returned when the motif does
// not occur.
func Extract(host, m *core.Graph) (*core.Graph, []int, error) {
	set, err := matchValidated(host, m)
	if err != nil {
		return nil, nil, err
	}
	instances := set.dedupByNodeSet()

	out := core.New(0, core.WithDirected(host.Directed()))
	nodeMap := make([]int, 0, len(instances)*m.NodeCount())
	newID := make(map[int]int) // host ID → new ID
	motifEdges := m.Edges()
	local := make([]int, m.NodeCount())

	for _, inst := range instances {
		toAdd := 0
		for pos, hostID := range inst {
			id, ok := newID[hostID]
			if !ok {
				id = len(nodeMap)
				newID[hostID] = id
				nodeMap = append(nodeMap, hostID)
				toAdd++
			}
			local[pos] = id
		}
		out.AddNodes(toAdd)
		for _, e := range motifEdges {
			if err := out.AddEdge(local[e.From], local[e.To]); err != nil {
				return nil, nil, err
			}
		}
	}
	out.Simplify(true, true)

	return out, nodeMap, nil
}
