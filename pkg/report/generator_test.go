package report

import (
	"strings"
	"testing"

	"github.com/capek-safety/veritree/pkg/faulttree"
)

func quant(v float64) *float64 { return &v }

func buildBrakingTree(t *testing.T) (*faulttree.Tree, faulttree.NodeID) {
	t.Helper()
	tree := faulttree.NewTree()
	top := tree.CreateNode("Unintended braking", faulttree.TypeTopEvent)
	top.GateType = faulttree.GateAnd
	top.QuantValue = quant(4.7)
	top.Severity = "2"
	top.Description = "Vehicle brakes without driver command"

	gate := tree.CreateNode("Sensor fault", faulttree.TypeGate)
	gate.GateType = faulttree.GateOr
	leafA := tree.CreateNode("Radar ghost target", faulttree.TypeBasicEvent)
	leafA.Description = "Radar reports a phantom obstacle"
	leafA.Rationale = "Observed in track testing"
	leafB := tree.CreateNode("Camera misclassification", faulttree.TypeBasicEvent)
	leafC := tree.CreateNode("Actuator stuck", faulttree.TypeBasicEvent)

	for _, link := range [][2]faulttree.NodeID{
		{top.ID, gate.ID}, {top.ID, leafC.ID}, {gate.ID, leafA.ID}, {gate.ID, leafB.ID},
	} {
		if err := tree.AddChild(link[0], link[1]); err != nil {
			t.Fatalf("AddChild: %v", err)
		}
	}
	return tree, top.ID
}

func TestArgumentation_Content(t *testing.T) {
	tree, topID := buildBrakingTree(t)
	g := NewGenerator(nil)

	text, err := g.Argumentation(tree, topID)
	if err != nil {
		t.Fatalf("Argumentation: %v", err)
	}

	for _, want := range []string{
		"Argumentation for Node 1: Unintended braking",
		"Assurance level: 5",
		"Severity: 2.0, Controllability: 3.0",
		"Cut sets:",
		"Base conditions:",
		"Radar reports a phantom obstacle",
		"Rationale: Observed in track testing",
		"Testing Requirements",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Argumentation missing %q\n%s", want, text)
		}
	}
	// Two cut sets: {radar, actuator} and {camera, actuator}.
	if !strings.Contains(text, "  2. ") || strings.Contains(text, "  3. ") {
		t.Errorf("Expected exactly two cut sets\n%s", text)
	}
	// Name and description mention braking, so the level 5 extra applies.
	if !strings.Contains(text, "Extra Recommendations") {
		t.Errorf("Expected a braking extra recommendation\n%s", text)
	}
}

func TestArgumentation_DefaultsWithoutQuant(t *testing.T) {
	tree := faulttree.NewTree()
	top := tree.CreateNode("Bare event", faulttree.TypeTopEvent)
	top.Severity = "not a number"

	text, err := NewGenerator(nil).Argumentation(tree, top.ID)
	if err != nil {
		t.Fatalf("Argumentation: %v", err)
	}
	if !strings.Contains(text, "Assurance level: 1") {
		t.Errorf("Missing quant value must discretize to level 1\n%s", text)
	}
	if !strings.Contains(text, "Severity: 3.0") {
		t.Errorf("Non-numeric severity must default to 3.0\n%s", text)
	}
}

func TestArgumentation_UnknownNode(t *testing.T) {
	tree := faulttree.NewTree()
	if _, err := NewGenerator(nil).Argumentation(tree, 99); err == nil {
		t.Error("Expected error for unknown node id")
	}
}

func TestHierarchicalArgumentation(t *testing.T) {
	tree, topID := buildBrakingTree(t)

	text, err := NewGenerator(nil).HierarchicalArgumentation(tree, topID)
	if err != nil {
		t.Fatalf("HierarchicalArgumentation: %v", err)
	}

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("Expected 5 lines, got %d\n%s", len(lines), text)
	}
	if !strings.HasPrefix(lines[0], "Node 1") {
		t.Errorf("Root must be unindented: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  Node 2") {
		t.Errorf("Gate must be indented one level: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "    Node 3") {
		t.Errorf("Leaf must be indented two levels: %q", lines[2])
	}
	if !strings.Contains(lines[1], "OR") {
		t.Errorf("Gate line must name its gate type: %q", lines[1])
	}
}

func TestHierarchicalArgumentation_SharedNodeReferencedOnce(t *testing.T) {
	tree := faulttree.NewTree()
	top := tree.CreateNode("Top", faulttree.TypeTopEvent)
	a := tree.CreateNode("A", faulttree.TypeGate)
	b := tree.CreateNode("B", faulttree.TypeGate)
	shared := tree.CreateNode("Shared", faulttree.TypeBasicEvent)
	for _, link := range [][2]faulttree.NodeID{
		{top.ID, a.ID}, {top.ID, b.ID}, {a.ID, shared.ID}, {b.ID, shared.ID},
	} {
		if err := tree.AddChild(link[0], link[1]); err != nil {
			t.Fatalf("AddChild: %v", err)
		}
	}

	text, err := NewGenerator(nil).HierarchicalArgumentation(tree, top.ID)
	if err != nil {
		t.Fatalf("HierarchicalArgumentation: %v", err)
	}
	if got := strings.Count(text, "(see above)"); got != 1 {
		t.Errorf("Shared node must be referenced once, got %d\n%s", got, text)
	}
}

func TestTopEventSummary(t *testing.T) {
	tree, topID := buildBrakingTree(t)

	text, err := NewGenerator(nil).TopEventSummary(tree, topID)
	if err != nil {
		t.Fatalf("TopEventSummary: %v", err)
	}
	if !strings.Contains(text, "assurance level 5") || !strings.Contains(text, "2 cut set(s)") {
		t.Errorf("Unexpected summary: %s", text)
	}
}
