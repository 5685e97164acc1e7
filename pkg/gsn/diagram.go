package gsn

import "github.com/google/uuid"

// Diagram groups the nodes of one argumentation diagram. The registry
// keeps every node, connected or not, in a stable order so traversal
// and rendering are deterministic.
type Diagram struct {
	ID    string
	Root  *Node
	Nodes []*Node
}

// NewDiagram creates a diagram rooted at root.
func NewDiagram(root *Node) *Diagram {
	return &Diagram{
		ID:    uuid.NewString(),
		Root:  root,
		Nodes: []*Node{root},
	}
}

// AddNode registers node with the diagram without connecting it.
func (d *Diagram) AddNode(node *Node) {
	for _, n := range d.Nodes {
		if n == node {
			return
		}
	}
	d.Nodes = append(d.Nodes, node)
}

// Contains reports whether node is registered with the diagram.
func (d *Diagram) Contains(node *Node) bool {
	for _, n := range d.Nodes {
		if n == node {
			return true
		}
	}
	return false
}

// NodeByID returns the registered node with the given id, if any.
func (d *Diagram) NodeByID(id string) (*Node, bool) {
	for _, n := range d.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return nil, false
}
