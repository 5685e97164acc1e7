package project

import (
	"fmt"

	"github.com/capek-safety/veritree/pkg/faulttree"
	"github.com/capek-safety/veritree/pkg/gsn"
)

// Project is the in-memory form of a loaded project.
type Project struct {
	Name     string
	Tree     *faulttree.Tree
	Diagrams []*gsn.Diagram
}

// Encode converts a project to its saved record. Every root of the
// fault-tree model becomes a nested top-event record.
func Encode(p *Project) Record {
	rec := Record{Name: p.Name, Version: FormatVersion}
	written := make(map[faulttree.NodeID]bool)
	for _, root := range p.Tree.Roots() {
		rec.TopEvents = append(rec.TopEvents, encodeNode(p.Tree, root.ID, written))
	}
	for _, d := range p.Diagrams {
		rec.Diagrams = append(rec.Diagrams, d.Record())
	}
	return rec
}

func encodeNode(t *faulttree.Tree, id faulttree.NodeID, written map[faulttree.NodeID]bool) NodeRecord {
	n, err := t.GetNode(id)
	if err != nil {
		return NodeRecord{ID: uint64(id), Reference: true}
	}
	if written[id] {
		// Shared subtree or back edge: id-only reference.
		return NodeRecord{ID: uint64(id), Reference: true}
	}
	written[id] = true

	nr := NodeRecord{
		ID:              uint64(n.ID),
		UserName:        n.UserName,
		Type:            string(n.Type),
		GateType:        n.GateType,
		QuantValue:      n.QuantValue,
		Description:     n.Description,
		Rationale:       n.Rationale,
		Severity:        n.Severity,
		Controllability: n.Controllability,
		IsPage:          n.IsPage,
		IsPrimary:       n.IsPrimaryInstance,
	}
	if !n.IsPrimaryInstance {
		nr.Original = uint64(n.Original)
	}
	for _, r := range n.SafetyRequirements {
		nr.SafetyRequirements = append(nr.SafetyRequirements, RequirementRecord(r))
	}
	for _, child := range n.Children {
		nr.Children = append(nr.Children, encodeNode(t, child, written))
	}
	return nr
}

// Decode rebuilds a project from its saved record. The walk resolves
// id-only references back to the node written at first occurrence, so
// shared subtrees load as one node with several parents. Clone
// originals resolve after all nodes exist.
func Decode(rec Record) (*Project, error) {
	if rec.Version > FormatVersion {
		return nil, fmt.Errorf("project %q: unsupported format version %d", rec.Name, rec.Version)
	}
	tree := faulttree.NewTree()
	for i := range rec.TopEvents {
		if _, err := decodeNode(tree, &rec.TopEvents[i]); err != nil {
			return nil, fmt.Errorf("project %q: %w", rec.Name, err)
		}
	}

	p := &Project{Name: rec.Name, Tree: tree}
	for _, dr := range rec.Diagrams {
		p.Diagrams = append(p.Diagrams, gsn.LoadDiagram(dr))
	}
	return p, nil
}

func decodeNode(t *faulttree.Tree, nr *NodeRecord) (faulttree.NodeID, error) {
	id := faulttree.NodeID(nr.ID)
	if _, err := t.GetNode(id); err == nil {
		// Already materialized by an earlier occurrence.
		return id, nil
	}
	if nr.Reference {
		return 0, fmt.Errorf("node %d: reference precedes definition", nr.ID)
	}

	n := &faulttree.Node{
		ID:                id,
		UserName:          nr.UserName,
		Type:              faulttree.NodeType(nr.Type),
		GateType:          nr.GateType,
		QuantValue:        nr.QuantValue,
		Description:       nr.Description,
		Rationale:         nr.Rationale,
		Severity:          nr.Severity,
		Controllability:   nr.Controllability,
		IsPage:            nr.IsPage,
		IsPrimaryInstance: nr.IsPrimary,
		Original:          faulttree.NodeID(nr.Original),
	}
	if n.Type.IsGateType() && n.GateType == "" {
		n.GateType = faulttree.GateAnd
	}
	for _, r := range nr.SafetyRequirements {
		n.SafetyRequirements = append(n.SafetyRequirements, faulttree.Requirement(r))
	}
	if err := t.AddNode(n); err != nil {
		return 0, err
	}

	for i := range nr.Children {
		childID, err := decodeNode(t, &nr.Children[i])
		if err != nil {
			return 0, err
		}
		if err := t.AddChild(id, childID); err != nil {
			return 0, err
		}
	}
	return id, nil
}
