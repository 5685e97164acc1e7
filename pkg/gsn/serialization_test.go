package gsn

import "testing"

func TestLoadDiagram_DuplicateListingCollapsesToContext(t *testing.T) {
	rec := DiagramRecord{
		ID:   "d1",
		Root: "g1",
		Nodes: []NodeRecord{
			{ID: "g1", UserName: "G1", Type: string(Goal), Children: []string{"c1"}, Context: []string{"c1"}},
			{ID: "c1", UserName: "C1", Type: string(Context)},
		},
	}

	d := LoadDiagram(rec)
	goal, ok := d.NodeByID("g1")
	if !ok {
		t.Fatal("Root goal missing after load")
	}
	ctx, _ := d.NodeByID("c1")

	if len(goal.Children) != 1 || goal.Children[0] != ctx {
		t.Errorf("Expected exactly one child edge, got %d", len(goal.Children))
	}
	if len(goal.ContextChildren) != 1 || goal.ContextChildren[0] != ctx {
		t.Error("Collapsed edge must be tagged as context")
	}
	if len(ctx.Parents) != 1 {
		t.Errorf("Expected one parent back-reference, got %d", len(ctx.Parents))
	}
}

func TestLoadDiagram_InvalidLinksDroppedSilently(t *testing.T) {
	rec := DiagramRecord{
		ID:   "d1",
		Root: "g1",
		Nodes: []NodeRecord{
			// Goal listed in a context array: invalid, dropped.
			{ID: "g1", UserName: "G1", Type: string(Goal), Context: []string{"g2"}},
			{ID: "g2", UserName: "G2", Type: string(Goal)},
			// Assumption listed only among generic children: invalid legacy data.
			{ID: "g3", UserName: "G3", Type: string(Goal), Children: []string{"a1"}},
			{ID: "a1", UserName: "A1", Type: string(Assumption)},
			// Assumption parent: children dropped.
			{ID: "a2", UserName: "A2", Type: string(Assumption), Children: []string{"g2"}},
		},
	}

	d := LoadDiagram(rec)
	g1, _ := d.NodeByID("g1")
	g2, _ := d.NodeByID("g2")
	g3, _ := d.NodeByID("g3")
	a1, _ := d.NodeByID("a1")

	if len(g1.Children) != 0 {
		t.Error("Goal-as-context link must be dropped")
	}
	if len(g3.Children) != 0 || len(a1.Parents) != 0 {
		t.Error("Assumption in generic children must be dropped in both directions")
	}
	if len(g2.Parents) != 0 {
		t.Error("Assumption parent's links must be dropped")
	}
	if len(d.Nodes) != 5 {
		t.Errorf("All nodes stay registered even when links drop, got %d", len(d.Nodes))
	}
}

func TestLoadDiagram_CloneLinkage(t *testing.T) {
	rec := DiagramRecord{
		ID:   "d1",
		Root: "g1",
		Nodes: []NodeRecord{
			{ID: "g1", UserName: "G1", Type: string(Goal), Children: []string{"g1c"}},
			{ID: "g1c", UserName: "G1", Type: string(Goal), Original: "orig"},
			{ID: "orig", UserName: "G1", Type: string(Goal)},
		},
	}

	d := LoadDiagram(rec)
	clone, _ := d.NodeByID("g1c")
	orig, _ := d.NodeByID("orig")

	if clone.IsPrimaryInstance {
		t.Error("Node with an original reference must load as non-primary")
	}
	if clone.ResolveOriginal() != orig {
		t.Error("Clone must resolve to its saved original")
	}
}

func TestDiagramRoundTrip(t *testing.T) {
	root := NewNode("G1", Goal)
	strategy := NewNode("S1", Strategy)
	ctx := NewNode("C1", Context)
	if err := root.AddChild(strategy, RelationSolved); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := root.AddChild(ctx, RelationContext); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	d := NewDiagram(root)
	d.AddNode(strategy)
	d.AddNode(ctx)

	reloaded := LoadDiagram(d.Record())

	r2, ok := reloaded.NodeByID(root.ID)
	if !ok {
		t.Fatal("Root missing after round trip")
	}
	if reloaded.Root != r2 {
		t.Error("Root reference must survive the round trip")
	}
	if len(r2.Children) != 2 {
		t.Errorf("Expected 2 children after round trip, got %d", len(r2.Children))
	}
	if len(r2.ContextChildren) != 1 || r2.ContextChildren[0].ID != ctx.ID {
		t.Error("Context tagging must survive the round trip")
	}
}

func TestLoadDiagram_MissingRootFallsBackToFirstNode(t *testing.T) {
	rec := DiagramRecord{
		ID:    "d1",
		Root:  "nope",
		Nodes: []NodeRecord{{ID: "g1", UserName: "G1", Type: string(Goal)}},
	}
	d := LoadDiagram(rec)
	if d.Root == nil || d.Root.ID != "g1" {
		t.Error("Unknown root id must fall back to the first node")
	}
}
