package leaguetree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildForest(t *testing.T) {
	t.Parallel()

	nodes := []Node{
		{ID: 1, Name: "Meistriliiga", NodeType: NodeTypeGroup, SortOrder: 2},
		{ID: 2, Name: "Karikavõistlused", NodeType: NodeTypeGroup, SortOrder: 1},
		{ID: 3, ParentID: 1, Name: "Meeste liiga", NodeType: NodeTypeLeague, SortOrder: 1},
		{ID: 4, ParentID: 1, Name: "Naiste liiga", NodeType: NodeTypeLeague, SortOrder: 1},
		{ID: 5, ParentID: 1, Name: "Esiliiga", NodeType: NodeTypeLeague, SortOrder: 0},
	}

	roots := BuildForest(nodes)
	require.Len(t, roots, 2)
	assert.Equal(t, "Karikavõistlused", roots[0].Name)
	assert.Equal(t, "Meistriliiga", roots[1].Name)

	children := roots[1].Children
	require.Len(t, children, 3)
	assert.Equal(t, "Esiliiga", children[0].Name)
	// same sort order, tie broken by name
	assert.Equal(t, "Meeste liiga", children[1].Name)
	assert.Equal(t, "Naiste liiga", children[2].Name)
}

func TestBuildForestOrphanFallsBackToRoot(t *testing.T) {
	t.Parallel()

	nodes := []Node{
		{ID: 1, Name: "Liiga"},
		{ID: 2, ParentID: 99, Name: "Orvuks jäänud alagrupp"},
	}

	roots := BuildForest(nodes)
	require.Len(t, roots, 2)
	assert.Equal(t, int64(2), roots[1].ID)
	assert.Empty(t, roots[1].Children)
}

func TestBuildForestSelfParentDoesNotLoop(t *testing.T) {
	t.Parallel()

	roots := BuildForest([]Node{{ID: 7, ParentID: 7, Name: "Tsükkel"}})
	require.Len(t, roots, 1)
	assert.Empty(t, roots[0].Children)
}
