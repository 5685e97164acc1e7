package faulttree

import "fmt"

// Severity indicates the importance of a model violation.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

// ViolationType categorizes a model-integrity violation.
type ViolationType int

const (
	DanglingChild ViolationType = iota
	MissingParentBackref
	StrayParentBackref
	UnresolvedClone
	PageUnderPage
	GateWithoutType
)

func (vt ViolationType) String() string {
	switch vt {
	case DanglingChild:
		return "DanglingChild"
	case MissingParentBackref:
		return "MissingParentBackref"
	case StrayParentBackref:
		return "StrayParentBackref"
	case UnresolvedClone:
		return "UnresolvedClone"
	case PageUnderPage:
		return "PageUnderPage"
	case GateWithoutType:
		return "GateWithoutType"
	default:
		return "Unknown"
	}
}

// Violation records one integrity problem found in a model.
type Violation struct {
	Type       ViolationType
	Severity   Severity
	NodeID     NodeID
	Constraint string
	Message    string
}

// Constraint checks one integrity rule over a model.
type Constraint interface {
	// Validate returns the violations found (empty when the model is clean).
	Validate(t *Tree) []Violation

	// Name returns a human-readable name for the constraint.
	Name() string
}

// StructureConstraint verifies that child id lists reference existing
// nodes and that child links and parent back-references agree.
type StructureConstraint struct{}

func (StructureConstraint) Name() string { return "structure" }

func (c StructureConstraint) Validate(t *Tree) []Violation {
	var out []Violation
	for _, id := range t.NodeIDs() {
		n, err := t.GetNode(id)
		if err != nil {
			continue
		}
		for _, childID := range n.Children {
			child, err := t.GetNode(childID)
			if err != nil {
				out = append(out, Violation{
					Type:       DanglingChild,
					Severity:   Error,
					NodeID:     id,
					Constraint: c.Name(),
					Message:    fmt.Sprintf("node %d lists missing child %d", id, childID),
				})
				continue
			}
			if !child.HasParent(id) {
				out = append(out, Violation{
					Type:       MissingParentBackref,
					Severity:   Error,
					NodeID:     childID,
					Constraint: c.Name(),
					Message:    fmt.Sprintf("node %d is a child of %d but has no matching parent back-reference", childID, id),
				})
			}
		}
		for pid := range n.Parents {
			parent, err := t.GetNode(pid)
			if err != nil {
				out = append(out, Violation{
					Type:       StrayParentBackref,
					Severity:   Warning,
					NodeID:     id,
					Constraint: c.Name(),
					Message:    fmt.Sprintf("node %d references missing parent %d", id, pid),
				})
				continue
			}
			if !containsID(parent.Children, id) {
				out = append(out, Violation{
					Type:       StrayParentBackref,
					Severity:   Warning,
					NodeID:     id,
					Constraint: c.Name(),
					Message:    fmt.Sprintf("node %d names %d as parent but is not among its children", id, pid),
				})
			}
		}
	}
	return out
}

// CloneConstraint verifies that every clone chain resolves to a primary
// instance within the depth cap.
type CloneConstraint struct{}

func (CloneConstraint) Name() string { return "clone" }

func (c CloneConstraint) Validate(t *Tree) []Violation {
	var out []Violation
	for _, id := range t.NodeIDs() {
		n, err := t.GetNode(id)
		if err != nil || n.IsPrimaryInstance {
			continue
		}
		if _, err := t.ResolveOriginal(id); err != nil {
			out = append(out, Violation{
				Type:       UnresolvedClone,
				Severity:   Error,
				NodeID:     id,
				Constraint: c.Name(),
				Message:    fmt.Sprintf("clone %d: %v", id, err),
			})
		}
	}
	return out
}

// GateConstraint flags gate-type nodes with children but an unknown
// gate type. Such nodes still enumerate with AND semantics; the flag is
// informational so editors can surface the implicit default.
type GateConstraint struct{}

func (GateConstraint) Name() string { return "gate" }

func (c GateConstraint) Validate(t *Tree) []Violation {
	var out []Violation
	for _, id := range t.NodeIDs() {
		n, err := t.GetNode(id)
		if err != nil {
			continue
		}
		if n.Type.IsGateType() && len(n.Children) > 0 && n.GateType != GateAnd && n.GateType != GateOr {
			out = append(out, Violation{
				Type:       GateWithoutType,
				Severity:   Info,
				NodeID:     id,
				Constraint: c.Name(),
				Message:    fmt.Sprintf("gate node %d has no explicit gate type; AND semantics apply", id),
			})
		}
	}
	return out
}

// DefaultConstraints returns the standard set of model checks.
func DefaultConstraints() []Constraint {
	return []Constraint{StructureConstraint{}, CloneConstraint{}, GateConstraint{}}
}

// Validate runs the given constraints (or DefaultConstraints when none
// are passed) and returns all violations found.
func (t *Tree) Validate(constraints ...Constraint) []Violation {
	if len(constraints) == 0 {
		constraints = DefaultConstraints()
	}
	var out []Violation
	for _, c := range constraints {
		out = append(out, c.Validate(t)...)
	}
	return out
}

func containsID(ids []NodeID, id NodeID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
