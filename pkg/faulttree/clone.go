package faulttree

import "fmt"

// maxCloneDepth caps clone-chain resolution. The original back-reference
// is not guaranteed acyclic, so resolution stops at a self-reference or
// after this many hops, whichever comes first.
const maxCloneDepth = 64

// Clone creates a non-primary instance of the node with the given id.
// The clone references the node's primary instance, so cloning a clone
// still yields a single-hop chain.
func (t *Tree) Clone(id NodeID) (*Node, error) {
	src, err := t.ResolveOriginal(id)
	if err != nil {
		return nil, err
	}
	clone := t.CreateNode(src.UserName, src.Type)
	clone.GateType = src.GateType
	clone.Description = src.Description
	clone.Rationale = src.Rationale
	clone.IsPrimaryInstance = false
	clone.Original = src.ID
	return clone, nil
}

// ResolveOriginal walks the clone chain from id until a primary instance
// or a self-reference is found. It is idempotent: resolving an already
// primary node returns that node unchanged.
func (t *Tree) ResolveOriginal(id NodeID) (*Node, error) {
	n, err := t.GetNode(id)
	if err != nil {
		return nil, err
	}
	for depth := 0; !n.IsPrimaryInstance && n.Original != n.ID; depth++ {
		if depth >= maxCloneDepth {
			return nil, fmt.Errorf("resolve original of node %d: %w", id, ErrCloneUnresolved)
		}
		next, err := t.GetNode(n.Original)
		if err != nil {
			return nil, fmt.Errorf("resolve original of node %d: %w", id, err)
		}
		n = next
	}
	return n, nil
}
