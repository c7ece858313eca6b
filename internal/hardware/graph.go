package hardware

import (
	"strconv"

	"github.com/emicklei/dot"
)

// Graph returns the capability table of the selected managers as a graph,
// each accessor has an edge to every manager implementing it, labelled with
// the order the manager is tried in.
func Graph(selected []Selected) *dot.Graph {
	g := dot.NewGraph(dot.Directed)

	managers := make(map[string]dot.Node, len(selected))
	for _, s := range selected {
		managers[s.Manager.Name()] = g.Node(s.Manager.Name()).Label(s.Manager.Name() + " (" + s.Support.String() + ")")
	}

	for _, method := range Methods() {
		accessor := g.Node(method)

		order := 0

		for _, s := range selected {
			if !s.Manager.Capabilities().Implements(method) {
				continue
			}

			order++

			edge := g.Edge(accessor, managers[s.Manager.Name()], strconv.Itoa(order))
			if order > 1 {
				edge.Attr("style", "dashed")
			}
		}
	}

	return g
}
