package faulttree

import "testing"

func TestCutSets_Leaf(t *testing.T) {
	tree := NewTree()
	leaf := tree.CreateNode("leaf", TypeBasicEvent)

	sets, err := tree.CutSets(leaf.ID)
	if err != nil {
		t.Fatalf("CutSets failed: %v", err)
	}
	if len(sets) != 1 {
		t.Fatalf("Expected 1 cut set for a leaf, got %d", len(sets))
	}
	if !sets[0].Equal(NewIDSet(leaf.ID)) {
		t.Errorf("Expected cut set {%d}, got %v", leaf.ID, sets[0].Sorted())
	}
}

func TestCutSets_OrConcatenates(t *testing.T) {
	tree := NewTree()
	or := tree.CreateNode("or", TypeGate)
	or.GateType = GateOr
	a := tree.CreateNode("a", TypeBasicEvent)
	b := tree.CreateNode("b", TypeBasicEvent)
	c := tree.CreateNode("c", TypeBasicEvent)
	tree.AddChild(or.ID, a.ID)
	tree.AddChild(or.ID, b.ID)
	tree.AddChild(or.ID, c.ID)

	sets, err := tree.CutSets(or.ID)
	if err != nil {
		t.Fatalf("CutSets failed: %v", err)
	}
	if len(sets) != 3 {
		t.Fatalf("Expected 3 cut sets under OR, got %d", len(sets))
	}
	// Order reflects child order, not size.
	want := []NodeID{a.ID, b.ID, c.ID}
	for i, s := range sets {
		if !s.Equal(NewIDSet(want[i])) {
			t.Errorf("Cut set %d: expected {%d}, got %v", i, want[i], s.Sorted())
		}
	}
}

func TestCutSets_AndProduct(t *testing.T) {
	tree := NewTree()
	and := tree.CreateNode("and", TypeGate) // defaults to AND
	left := tree.CreateNode("left", TypeGate)
	left.GateType = GateOr
	right := tree.CreateNode("right", TypeGate)
	right.GateType = GateOr
	tree.AddChild(and.ID, left.ID)
	tree.AddChild(and.ID, right.ID)

	for i := 0; i < 2; i++ {
		l := tree.CreateNode("", TypeBasicEvent)
		tree.AddChild(left.ID, l.ID)
	}
	for i := 0; i < 3; i++ {
		r := tree.CreateNode("", TypeBasicEvent)
		tree.AddChild(right.ID, r.ID)
	}

	sets, err := tree.CutSets(and.ID)
	if err != nil {
		t.Fatalf("CutSets failed: %v", err)
	}
	if len(sets) != 6 {
		t.Errorf("Expected 2*3=6 cut sets under AND, got %d", len(sets))
	}
	for i, s := range sets {
		if len(s) != 2 {
			t.Errorf("Cut set %d: expected 2 members, got %d", i, len(s))
		}
	}
}

// A gate node with its gate type cleared must still combine with AND
// semantics; OR is the only gate type with OR semantics.
func TestCutSets_UnknownGateTypeDefaultsToAnd(t *testing.T) {
	tree := NewTree()
	g := tree.CreateNode("g", TypeGate)
	g.GateType = ""
	a := tree.CreateNode("a", TypeBasicEvent)
	b := tree.CreateNode("b", TypeBasicEvent)
	tree.AddChild(g.ID, a.ID)
	tree.AddChild(g.ID, b.ID)

	sets, err := tree.CutSets(g.ID)
	if err != nil {
		t.Fatalf("CutSets failed: %v", err)
	}
	if len(sets) != 1 {
		t.Fatalf("Expected 1 combined cut set, got %d", len(sets))
	}
	if !sets[0].Equal(NewIDSet(a.ID, b.ID)) {
		t.Errorf("Expected {%d,%d}, got %v", a.ID, b.ID, sets[0].Sorted())
	}
}

// Root TOP EVENT (AND) with child A (OR over a1, a2) and leaf child b1
// yields [{a1,b1}, {a2,b1}].
func TestCutSets_EndToEndScenario(t *testing.T) {
	tree := NewTree()
	top := tree.CreateNode("top", TypeTopEvent) // AND by default
	childA := tree.CreateNode("A", TypeGate)
	childA.GateType = GateOr
	a1 := tree.CreateNode("a1", TypeBasicEvent)
	a2 := tree.CreateNode("a2", TypeBasicEvent)
	b1 := tree.CreateNode("b1", TypeBasicEvent)
	tree.AddChild(top.ID, childA.ID)
	tree.AddChild(top.ID, b1.ID)
	tree.AddChild(childA.ID, a1.ID)
	tree.AddChild(childA.ID, a2.ID)

	sets, err := tree.CutSets(top.ID)
	if err != nil {
		t.Fatalf("CutSets failed: %v", err)
	}
	if len(sets) != 2 {
		t.Fatalf("Expected 2 cut sets, got %d", len(sets))
	}
	if !sets[0].Equal(NewIDSet(a1.ID, b1.ID)) {
		t.Errorf("Cut set 0: expected {a1,b1}, got %v", sets[0].Sorted())
	}
	if !sets[1].Equal(NewIDSet(a2.ID, b1.ID)) {
		t.Errorf("Cut set 1: expected {a2,b1}, got %v", sets[1].Sorted())
	}
}

// A shared basic event under an AND gate collapses via set union.
func TestCutSets_SharedLeafUnions(t *testing.T) {
	tree := NewTree()
	and := tree.CreateNode("and", TypeGate)
	shared := tree.CreateNode("shared", TypeBasicEvent)
	tree.AddChild(and.ID, shared.ID)
	tree.AddChild(and.ID, shared.ID)

	sets, err := tree.CutSets(and.ID)
	if err != nil {
		t.Fatalf("CutSets failed: %v", err)
	}
	if len(sets) != 1 {
		t.Fatalf("Expected 1 cut set, got %d", len(sets))
	}
	if !sets[0].Equal(NewIDSet(shared.ID)) {
		t.Errorf("Expected union to collapse the repeated leaf, got %v", sets[0].Sorted())
	}
}

// A back edge must not hang the enumeration.
func TestCutSets_CycleSafe(t *testing.T) {
	tree := NewTree()
	a := tree.CreateNode("a", TypeGate)
	a.GateType = GateOr
	b := tree.CreateNode("b", TypeGate)
	b.GateType = GateOr
	leaf := tree.CreateNode("leaf", TypeBasicEvent)
	tree.AddChild(a.ID, b.ID)
	tree.AddChild(b.ID, a.ID) // back edge
	tree.AddChild(b.ID, leaf.ID)

	sets, err := tree.CutSets(a.ID)
	if err != nil {
		t.Fatalf("CutSets failed: %v", err)
	}
	if len(sets) != 1 || !sets[0].Equal(NewIDSet(leaf.ID)) {
		t.Errorf("Expected the single cut set {leaf}, got %v", sets)
	}
}

func TestIDSet_Helpers(t *testing.T) {
	s := NewIDSet(3, 1, 2)
	if !s.Contains(2) || s.Contains(4) {
		t.Error("Contains gave wrong membership answers")
	}
	sorted := s.Sorted()
	if len(sorted) != 3 || sorted[0] != 1 || sorted[2] != 3 {
		t.Errorf("Sorted gave %v", sorted)
	}
	u := s.Union(NewIDSet(4))
	if len(u) != 4 || len(s) != 3 {
		t.Error("Union must return a fresh set without mutating the receiver")
	}
}
