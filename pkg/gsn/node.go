package gsn

import "fmt"

// maxAncestorDepth bounds ancestor walks; parent back-references are
// not guaranteed acyclic in legacy data.
const maxAncestorDepth = 256

// AddChild attaches child to n under the given relation, enforcing the
// GSN structure rules:
//
//   - the context relation may not target a Goal or Strategy (context
//     edges carry supporting material, never primary claims);
//   - the solved relation may not target a Context node (Context is
//     attached via the context relation only);
//   - an Assumption never owns children.
//
// On success child joins n's owned children, the context view when
// relation is context, and records n among its parents.
func (n *Node) AddChild(child *Node, relation Relation) error {
	if n.Type == Assumption {
		return fmt.Errorf("%w: %s nodes cannot have children", ErrInvalidRelationship, n.Type)
	}
	switch relation {
	case RelationContext:
		if child.Type == Goal || child.Type == Strategy {
			return fmt.Errorf("%w: cannot attach %s as context", ErrInvalidRelationship, child.Type)
		}
	case RelationSolved:
		if child.Type == Context {
			return fmt.Errorf("%w: %s nodes must be attached via the context relation", ErrInvalidRelationship, child.Type)
		}
	default:
		return fmt.Errorf("%w: unknown relation %q", ErrInvalidRelationship, relation)
	}

	n.Children = append(n.Children, child)
	if relation == RelationContext {
		n.ContextChildren = append(n.ContextChildren, child)
	}
	child.Parents = append(child.Parents, n)
	return nil
}

// Clone returns a non-primary copy of n referencing the same original,
// enabling multiple diagram occurrences in the manner of GSN away
// elements. When parent is non-nil the clone is attached via the
// solved relation.
func (n *Node) Clone(parent *Node) (*Node, error) {
	clone := NewNode(n.UserName, n.Type)
	clone.Description = n.Description
	clone.SPITarget = n.SPITarget
	clone.IsPrimaryInstance = false
	clone.Original = n.ResolveOriginal()
	if parent != nil {
		if err := parent.AddChild(clone, RelationSolved); err != nil {
			return nil, err
		}
	}
	return clone, nil
}

// ResolveOriginal walks the clone chain until a primary instance or a
// self-reference is found. Safe on arbitrary original back-references.
func (n *Node) ResolveOriginal() *Node {
	cur := n
	for depth := 0; !cur.IsPrimaryInstance && cur.Original != nil && cur.Original != cur; depth++ {
		if depth >= maxAncestorDepth {
			return cur
		}
		cur = cur.Original
	}
	return cur
}

// ModuleName resolves the name of the nearest enclosing Module node by
// walking n's ancestor chain. When the chain never reaches a Module,
// the lookup retries from the node's original, covering clones that
// were relocated into a different module. The result is computed live
// on every call, so renaming a Module is reflected immediately.
func (n *Node) ModuleName() (string, bool) {
	if name, ok := moduleNameViaParents(n); ok {
		return name, true
	}
	orig := n.ResolveOriginal()
	if orig != n {
		return moduleNameViaParents(orig)
	}
	return "", false
}

func moduleNameViaParents(n *Node) (string, bool) {
	visited := map[*Node]bool{n: true}
	queue := append([]*Node(nil), n.Parents...)
	for depth := 0; len(queue) > 0 && depth < maxAncestorDepth; depth++ {
		var next []*Node
		for _, p := range queue {
			if visited[p] {
				continue
			}
			visited[p] = true
			if p.Type == Module {
				return p.UserName, true
			}
			next = append(next, p.Parents...)
		}
		queue = next
	}
	return "", false
}
