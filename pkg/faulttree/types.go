package faulttree

import (
	"fmt"
	"time"
)

// NodeID identifies a node within a single fault-tree model.
type NodeID uint64

// NodeType classifies a fault-tree node. The string values match the
// legacy project-file vocabulary, which is upper-case with spaces.
type NodeType string

const (
	TypeTopEvent        NodeType = "TOP EVENT"
	TypeGate            NodeType = "GATE"
	TypeRigorLevel      NodeType = "RIGOR LEVEL"
	TypeBasicEvent      NodeType = "BASIC EVENT"
	TypeConfidenceLevel NodeType = "CONFIDENCE LEVEL"
	TypeRobustnessScore NodeType = "ROBUSTNESS SCORE"
)

// gateNodeTypes are the node types that carry AND/OR gate semantics.
var gateNodeTypes = map[NodeType]bool{
	TypeTopEvent:   true,
	TypeGate:       true,
	TypeRigorLevel: true,
}

// IsGateType reports whether nodes of this type carry a gate type.
func (t NodeType) IsGateType() bool {
	return gateNodeTypes[t]
}

// Gate types. A gate node created without an explicit type defaults to AND,
// and AND is also the combination fallback for any gate type other than OR.
const (
	GateAnd = "AND"
	GateOr  = "OR"
)

// Requirement is a safety-requirement reference attached to a node.
type Requirement struct {
	ID      string `json:"id"`
	ReqType string `json:"req_type"`
	Text    string `json:"text"`
}

// Node is a single fault-tree node. Children are owned and ordered;
// parents are back-references only, so a node may sit under several
// parents (shared sub-trees). Both are stored as IDs into the owning
// Tree rather than pointers, keeping the model free of reference cycles.
type Node struct {
	ID       NodeID
	UserName string
	Type     NodeType

	// GateType is "AND" or "OR" for gate-type nodes, empty otherwise.
	GateType string

	// QuantValue is the continuous assurance score, nil when unset.
	QuantValue *float64

	Description string
	Rationale   string

	// Severity and Controllability keep the raw legacy value so that
	// non-numeric entries survive a load/save round trip. Parsing is
	// lenient and happens at report time.
	Severity        string
	Controllability string

	SafetyRequirements []Requirement

	// IsPage marks a page boundary: descendants of a page node are
	// excluded from flattened views of an enclosing diagram.
	IsPage bool

	// Clone linkage. A primary instance references itself; a clone holds
	// a non-owning reference to its original. The back-reference may
	// point anywhere, so resolution must be cycle-safe.
	IsPrimaryInstance bool
	Original          NodeID

	Children []NodeID
	Parents  map[NodeID]struct{}

	CreatedAt int64
	UpdatedAt int64
}

// Name returns the display name used in reports: "Node <id>" when the
// user never renamed the node, "Node <id>: <name>" otherwise. Clones
// display the id of their original.
func (n *Node) Name() string {
	id := n.ID
	if !n.IsPrimaryInstance {
		id = n.Original
	}
	def := fmt.Sprintf("Node %d", id)
	if n.UserName == "" || n.UserName == def {
		return def
	}
	return fmt.Sprintf("Node %d: %s", id, n.UserName)
}

// HasParent reports whether id is registered as a parent of n.
func (n *Node) HasParent(id NodeID) bool {
	_, ok := n.Parents[id]
	return ok
}

// Tree is the arena owning all nodes of one fault-tree model, keyed by
// unique id. Insertion order is retained so flattened views and reports
// are deterministic.
type Tree struct {
	nodes  map[NodeID]*Node
	order  []NodeID
	nextID NodeID
}

// NewTree creates an empty fault-tree model.
func NewTree() *Tree {
	return &Tree{nodes: make(map[NodeID]*Node)}
}

// CreateNode allocates the next unique id and adds a node of the given
// type. Gate-type nodes default to an AND gate, matching the behaviour
// of the legacy editor.
func (t *Tree) CreateNode(userName string, typ NodeType) *Node {
	t.nextID++
	id := t.nextID
	if userName == "" {
		userName = fmt.Sprintf("Node %d", id)
	}
	now := time.Now().Unix()
	n := &Node{
		ID:                id,
		UserName:          userName,
		Type:              typ,
		IsPrimaryInstance: true,
		Original:          id,
		Parents:           make(map[NodeID]struct{}),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if typ.IsGateType() {
		n.GateType = GateAnd
	}
	t.nodes[id] = n
	t.order = append(t.order, id)
	return n
}

// AddNode inserts a node with a caller-chosen id. Used by the project
// loader, which must preserve ids from the saved file.
func (t *Tree) AddNode(n *Node) error {
	if n == nil {
		return fmt.Errorf("add node: nil node")
	}
	if n.ID == 0 {
		return fmt.Errorf("add node: zero id")
	}
	if _, exists := t.nodes[n.ID]; exists {
		return fmt.Errorf("add node %d: %w", n.ID, ErrDuplicateID)
	}
	if n.Parents == nil {
		n.Parents = make(map[NodeID]struct{})
	}
	if n.Original == 0 {
		n.Original = n.ID
	}
	t.nodes[n.ID] = n
	t.order = append(t.order, n.ID)
	if n.ID > t.nextID {
		t.nextID = n.ID
	}
	return nil
}

// GetNode returns the node with the given id.
func (t *Tree) GetNode(id NodeID) (*Node, error) {
	n, ok := t.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	return n, nil
}

// Len returns the number of nodes in the model.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NodeIDs returns all node ids in insertion order.
func (t *Tree) NodeIDs() []NodeID {
	out := make([]NodeID, len(t.order))
	copy(out, t.order)
	return out
}

// AddChild appends child to parent's owned children and records the
// parent back-reference. Both nodes must already exist in the tree.
func (t *Tree) AddChild(parentID, childID NodeID) error {
	parent, err := t.GetNode(parentID)
	if err != nil {
		return fmt.Errorf("add child: parent: %w", err)
	}
	child, err := t.GetNode(childID)
	if err != nil {
		return fmt.Errorf("add child: child: %w", err)
	}
	parent.Children = append(parent.Children, childID)
	child.Parents[parentID] = struct{}{}
	parent.UpdatedAt = time.Now().Unix()
	return nil
}

// Roots returns the nodes with no parents, in insertion order.
func (t *Tree) Roots() []*Node {
	var roots []*Node
	for _, id := range t.order {
		if n := t.nodes[id]; len(n.Parents) == 0 {
			roots = append(roots, n)
		}
	}
	return roots
}
