package leaguetree

import "sort"

// TreeNode is a Node attached to its sorted children, exposed read-only to
// the serving collaborator.
type TreeNode struct {
	Node
	Children []*TreeNode
}

// BuildForest assembles the flat relation into a rooted forest. A node whose
// declared parent is missing from the input is attached at the root instead
// of being dropped, so orphaned rows stay visible. Siblings sort by explicit
// order, ties broken by name.
func BuildForest(nodes []Node) []*TreeNode {
	byID := make(map[int64]*TreeNode, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = &TreeNode{Node: n}
	}

	roots := make([]*TreeNode, 0, len(nodes))
	for _, n := range nodes {
		tn := byID[n.ID]
		parent, ok := byID[n.ParentID]
		if n.ParentID == 0 || !ok || n.ParentID == n.ID {
			roots = append(roots, tn)
			continue
		}
		parent.Children = append(parent.Children, tn)
	}

	sortSiblings(roots)
	return roots
}

func sortSiblings(nodes []*TreeNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].SortOrder != nodes[j].SortOrder {
			return nodes[i].SortOrder < nodes[j].SortOrder
		}
		return nodes[i].Name < nodes[j].Name
	})
	for _, n := range nodes {
		sortSiblings(n.Children)
	}
}
