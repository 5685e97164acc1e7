package faulttree

import (
	"strings"
	"testing"
)

func TestCommonCauses_NoRepeats(t *testing.T) {
	tree := NewTree()
	root := tree.CreateNode("root", TypeTopEvent)
	a := tree.CreateNode("a", TypeBasicEvent)
	b := tree.CreateNode("b", TypeBasicEvent)
	tree.AddChild(root.ID, a.ID)
	tree.AddChild(root.ID, b.ID)

	causes, err := tree.CommonCauses(root.ID)
	if err != nil {
		t.Fatalf("CommonCauses failed: %v", err)
	}
	if len(causes) != 0 {
		t.Errorf("Expected no common causes, got %d", len(causes))
	}

	report, err := tree.CommonCauseReport(root.ID)
	if err != nil {
		t.Fatalf("CommonCauseReport failed: %v", err)
	}
	lines := strings.Split(report, "\n")
	if lines[len(lines)-1] != "None found." {
		t.Errorf("Expected report body 'None found.', got %q", lines[len(lines)-1])
	}
}

func TestCommonCauses_CountsPaths(t *testing.T) {
	tree := NewTree()
	root := tree.CreateNode("root", TypeTopEvent)
	g1 := tree.CreateNode("g1", TypeGate)
	g2 := tree.CreateNode("g2", TypeGate)
	g3 := tree.CreateNode("g3", TypeGate)
	shared := tree.CreateNode("shared", TypeBasicEvent)
	shared.Description = "common supply rail"
	tree.AddChild(root.ID, g1.ID)
	tree.AddChild(root.ID, g2.ID)
	tree.AddChild(root.ID, g3.ID)
	tree.AddChild(g1.ID, shared.ID)
	tree.AddChild(g2.ID, shared.ID)
	tree.AddChild(g3.ID, shared.ID)

	causes, err := tree.CommonCauses(root.ID)
	if err != nil {
		t.Fatalf("CommonCauses failed: %v", err)
	}
	if len(causes) != 1 {
		t.Fatalf("Expected 1 common cause, got %d", len(causes))
	}
	c := causes[0]
	if c.ID != shared.ID {
		t.Errorf("Expected common cause %d, got %d", shared.ID, c.ID)
	}
	if c.Count != 3 {
		t.Errorf("Expected 3 distinct paths, got %d", c.Count)
	}
	if c.Type != TypeBasicEvent || c.Description != "common supply rail" {
		t.Errorf("Expected type and description carried through, got %+v", c)
	}
}

// Repetition deeper in the tree multiplies path counts: a node under a
// shared gate is reached once per path to that gate.
func TestCommonCauses_NestedPathsMultiply(t *testing.T) {
	tree := NewTree()
	root := tree.CreateNode("root", TypeTopEvent)
	g1 := tree.CreateNode("g1", TypeGate)
	g2 := tree.CreateNode("g2", TypeGate)
	mid := tree.CreateNode("mid", TypeGate)
	leaf := tree.CreateNode("leaf", TypeBasicEvent)
	tree.AddChild(root.ID, g1.ID)
	tree.AddChild(root.ID, g2.ID)
	tree.AddChild(g1.ID, mid.ID)
	tree.AddChild(g2.ID, mid.ID)
	tree.AddChild(mid.ID, leaf.ID)

	causes, err := tree.CommonCauses(root.ID)
	if err != nil {
		t.Fatalf("CommonCauses failed: %v", err)
	}
	counts := make(map[NodeID]int)
	for _, c := range causes {
		counts[c.ID] = c.Count
	}
	if counts[mid.ID] != 2 {
		t.Errorf("Expected mid gate reached via 2 paths, got %d", counts[mid.ID])
	}
	if counts[leaf.ID] != 2 {
		t.Errorf("Expected leaf reached via 2 paths, got %d", counts[leaf.ID])
	}
}

func TestCommonCauses_CycleSafe(t *testing.T) {
	tree := NewTree()
	a := tree.CreateNode("a", TypeGate)
	b := tree.CreateNode("b", TypeGate)
	tree.AddChild(a.ID, b.ID)
	tree.AddChild(b.ID, a.ID)

	// Must terminate; the back edge contributes no extra path because a
	// node is never re-entered while on the current path.
	causes, err := tree.CommonCauses(a.ID)
	if err != nil {
		t.Fatalf("CommonCauses failed: %v", err)
	}
	if len(causes) != 0 {
		t.Errorf("Expected no common causes on a pure 2-cycle, got %v", causes)
	}
}

func TestCommonCauseReport_ListsRepeats(t *testing.T) {
	tree := NewTree()
	root := tree.CreateNode("root", TypeTopEvent)
	g1 := tree.CreateNode("g1", TypeGate)
	g2 := tree.CreateNode("g2", TypeGate)
	shared := tree.CreateNode("power loss", TypeBasicEvent)
	tree.AddChild(root.ID, g1.ID)
	tree.AddChild(root.ID, g2.ID)
	tree.AddChild(g1.ID, shared.ID)
	tree.AddChild(g2.ID, shared.ID)

	report, err := tree.CommonCauseReport(root.ID)
	if err != nil {
		t.Fatalf("CommonCauseReport failed: %v", err)
	}
	if !strings.Contains(report, "power loss") {
		t.Errorf("Expected report to name the repeated node, got %q", report)
	}
	if !strings.Contains(report, "occurs 2 times") {
		t.Errorf("Expected report to carry the path count, got %q", report)
	}
}
