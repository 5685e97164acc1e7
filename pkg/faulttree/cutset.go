package faulttree

import "sort"

// IDSet is a set of node ids. Cut sets are IDSets produced fresh on
// each enumeration and never mutated afterwards.
type IDSet map[NodeID]struct{}

// NewIDSet builds a set from the given ids.
func NewIDSet(ids ...NodeID) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports membership of id in s.
func (s IDSet) Contains(id NodeID) bool {
	_, ok := s[id]
	return ok
}

// Union returns a new set holding the members of s and other.
func (s IDSet) Union(other IDSet) IDSet {
	out := make(IDSet, len(s)+len(other))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range other {
		out[id] = struct{}{}
	}
	return out
}

// Equal reports whether s and other hold the same ids.
func (s IDSet) Equal(other IDSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}

// Sorted returns the members of s in ascending order.
func (s IDSet) Sorted() []NodeID {
	out := make([]NodeID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CutSets enumerates the cut sets of the node with the given id under
// AND/OR gate semantics:
//
//   - a node with no children yields exactly one cut set containing
//     only itself;
//   - an OR gate concatenates its children's cut sets, in child order;
//   - everything else (AND gates, gate nodes with no explicit gate
//     type, and non-gate nodes with children) folds the Cartesian
//     set-union product of its children's cut sets, left to right,
//     starting from a single empty accumulator set.
//
// This is a direct structural enumeration, not a minimal-cut-set
// computation: no deduplication or absorption is applied beyond what
// falls out of set union. The AND combination multiplies cut-set counts
// across children, so deeply AND-ed trees with wide OR branches blow up
// exponentially; this is a known scaling limit of the enumeration, not
// something callers should expect to be reduced away.
//
// A node already being expanded on the current path is not expanded
// again, which keeps the enumeration safe on graphs with back edges.
func (t *Tree) CutSets(id NodeID) ([]IDSet, error) {
	if _, err := t.GetNode(id); err != nil {
		return nil, err
	}
	return t.cutSets(id, make(map[NodeID]bool)), nil
}

func (t *Tree) cutSets(id NodeID, onPath map[NodeID]bool) []IDSet {
	n, err := t.GetNode(id)
	if err != nil {
		return nil
	}
	if len(n.Children) == 0 {
		return []IDSet{NewIDSet(id)}
	}

	onPath[id] = true
	defer delete(onPath, id)

	if n.GateType == GateOr {
		var out []IDSet
		for _, childID := range n.Children {
			if onPath[childID] {
				continue
			}
			out = append(out, t.cutSets(childID, onPath)...)
		}
		return out
	}

	// AND semantics: fold the set-union product over children.
	acc := []IDSet{NewIDSet()}
	for _, childID := range n.Children {
		if onPath[childID] {
			continue
		}
		childSets := t.cutSets(childID, onPath)
		next := make([]IDSet, 0, len(acc)*len(childSets))
		for _, a := range acc {
			for _, c := range childSets {
				next = append(next, a.Union(c))
			}
		}
		acc = next
	}
	return acc
}
