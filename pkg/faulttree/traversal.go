package faulttree

// AllNodes returns every node reachable from root by following owned
// children links, in depth-first pre-order, each unique id appearing at
// most once. Nodes lying behind a page boundary are excluded: a node
// other than the traversal root is skipped, subtree included, when any
// of its parents is flagged as a page. The root itself is always
// included, even when it is a page.
func (t *Tree) AllNodes(rootID NodeID) ([]*Node, error) {
	root, err := t.GetNode(rootID)
	if err != nil {
		return nil, err
	}

	visited := make(map[NodeID]bool)
	var out []*Node

	var walk func(n *Node)
	walk = func(n *Node) {
		if visited[n.ID] {
			return
		}
		visited[n.ID] = true
		if n.ID != rootID && t.anyParentIsPage(n, rootID) {
			return
		}
		out = append(out, n)
		for _, childID := range n.Children {
			child, err := t.GetNode(childID)
			if err != nil {
				continue // dangling child id, surfaced by constraints checks
			}
			walk(child)
		}
	}
	walk(root)
	return out, nil
}

// anyParentIsPage reports whether any parent of n other than the
// traversal root is a page boundary. The root is exempt: a page root
// still yields its own subtree, only descendant pages truncate.
func (t *Tree) anyParentIsPage(n *Node, rootID NodeID) bool {
	for pid := range n.Parents {
		if pid == rootID {
			continue
		}
		if p, err := t.GetNode(pid); err == nil && p.IsPage {
			return true
		}
	}
	return false
}

// BasicEvents returns the basic-event leaves reachable from root,
// honouring the same page-boundary filter as AllNodes.
func (t *Tree) BasicEvents(rootID NodeID) ([]*Node, error) {
	all, err := t.AllNodes(rootID)
	if err != nil {
		return nil, err
	}
	var out []*Node
	for _, n := range all {
		if n.Type == TypeBasicEvent {
			out = append(out, n)
		}
	}
	return out, nil
}

// Gates returns the gate-type nodes reachable from root.
func (t *Tree) Gates(rootID NodeID) ([]*Node, error) {
	all, err := t.AllNodes(rootID)
	if err != nil {
		return nil, err
	}
	var out []*Node
	for _, n := range all {
		if n.Type.IsGateType() {
			out = append(out, n)
		}
	}
	return out, nil
}
