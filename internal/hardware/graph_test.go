package hardware

import (
	"context"
	"testing"

	"github.com/emicklei/dot"
	"github.com/metal-toolbox/hwmanager/internal/fixtures"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph(t *testing.T) {
	selected, err := Select(context.Background(), newFX700Host(t, &fixtures.BMCLan{}), false, logrus.New())
	require.Nil(t, err)

	g := Graph(selected)

	// one node per accessor and per manager
	assert.Len(t, g.FindNodes(), len(Methods())+2)

	// generic implements every accessor, fx700 the three BMC accessors
	edges := 0
	for _, method := range Methods() {
		from, ok := g.FindNodeById(method)
		require.True(t, ok, method)

		edges += len(g.FindEdges(from, mustNode(t, g, GenericManagerName)))
		edges += len(g.FindEdges(from, mustNode(t, g, FX700ManagerName)))
	}

	assert.Equal(t, len(Methods())+3, edges)

	mermaid := dot.MermaidGraph(g, dot.MermaidTopDown)
	assert.Contains(t, mermaid, "graph TD")

	// first and second choice edges carry their try order
	assert.Contains(t, mermaid, `-->|"1"|`)
	assert.Contains(t, mermaid, `-->|"2"|`)
}

func mustNode(t *testing.T, g *dot.Graph, id string) dot.Node {
	t.Helper()

	n, ok := g.FindNodeById(id)
	require.True(t, ok, id)

	return n
}
