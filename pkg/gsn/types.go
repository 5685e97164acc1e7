package gsn

import (
	"errors"

	"github.com/google/uuid"
)

// NodeType classifies a GSN argumentation node.
type NodeType string

const (
	Goal          NodeType = "Goal"
	Strategy      NodeType = "Strategy"
	Solution      NodeType = "Solution"
	Context       NodeType = "Context"
	Assumption    NodeType = "Assumption"
	Justification NodeType = "Justification"
	AwayGoal      NodeType = "Away Goal"
	AwaySolution  NodeType = "Away Solution"
	AwayModule    NodeType = "Away Module"
	Module        NodeType = "Module"
)

// Relation tags a parent/child edge in an argumentation diagram.
type Relation string

const (
	// RelationSolved is the default supporting relation ("solved by").
	RelationSolved Relation = "solved"

	// RelationContext attaches supporting context ("in context of").
	RelationContext Relation = "context"
)

// ErrInvalidRelationship is returned by AddChild when the requested
// parent/child/relation combination violates GSN structure rules.
var ErrInvalidRelationship = errors.New("invalid relationship")

// Node is a single GSN argumentation node. Children are owned and
// ordered; ContextChildren is a view over the subset of children
// attached via the context relation. Parents are back-references.
type Node struct {
	ID          string
	UserName    string
	Type        NodeType
	Description string

	// SPITarget names the safety performance indicator a Solution
	// reports against, empty for other node types.
	SPITarget string

	Children        []*Node
	ContextChildren []*Node
	Parents         []*Node

	IsPrimaryInstance bool
	Original          *Node
}

// NewNode creates a primary-instance node of the given type.
func NewNode(userName string, typ NodeType) *Node {
	n := &Node{
		ID:                uuid.NewString(),
		UserName:          userName,
		Type:              typ,
		IsPrimaryInstance: true,
	}
	n.Original = n
	return n
}

// contextLike reports whether t is attachable via the context relation.
func contextLike(t NodeType) bool {
	switch t {
	case Context, Assumption, Justification:
		return true
	default:
		return false
	}
}
