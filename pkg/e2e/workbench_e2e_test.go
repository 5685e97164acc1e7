package e2e

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capek-safety/veritree/pkg/diagnostics"
	"github.com/capek-safety/veritree/pkg/faulttree"
	"github.com/capek-safety/veritree/pkg/gsn"
	"github.com/capek-safety/veritree/pkg/project"
	"github.com/capek-safety/veritree/pkg/report"
)

// TestCompleteAnalysisWorkflow walks a full user journey: author a
// model, save it, reload it, and run every analysis over the reloaded
// copy.
func TestCompleteAnalysisWorkflow(t *testing.T) {
	t.Log("=== E2E Test: Complete Analysis Workflow ===")

	// Step 1: author the fault tree.
	t.Log("Step 1: Building fault-tree model...")
	tree := faulttree.NewTree()
	top := tree.CreateNode("Unintended braking", faulttree.TypeTopEvent)
	top.GateType = faulttree.GateAnd
	q := 3.8
	top.QuantValue = &q
	top.Severity = "2"

	sensors := tree.CreateNode("Sensor fault", faulttree.TypeGate)
	sensors.GateType = faulttree.GateOr
	radar := tree.CreateNode("Radar ghost target", faulttree.TypeBasicEvent)
	radar.Description = "Radar reports a phantom obstacle"
	camera := tree.CreateNode("Camera misclassification", faulttree.TypeBasicEvent)
	power := tree.CreateNode("Power brownout", faulttree.TypeBasicEvent)

	for _, link := range [][2]faulttree.NodeID{
		{top.ID, sensors.ID}, {top.ID, power.ID},
		{sensors.ID, radar.ID}, {sensors.ID, camera.ID},
		// Power also degrades the sensors, making it a common cause.
		{sensors.ID, power.ID},
	} {
		require.NoError(t, tree.AddChild(link[0], link[1]))
	}

	// Step 2: attach the argumentation diagram.
	t.Log("Step 2: Building GSN diagram...")
	goal := gsn.NewNode("Braking is free of unintended activation", gsn.Goal)
	ctx := gsn.NewNode("Highway ODD", gsn.Context)
	strategy := gsn.NewNode("Argue over each sensor channel", gsn.Strategy)
	require.NoError(t, goal.AddChild(ctx, gsn.RelationContext))
	require.NoError(t, goal.AddChild(strategy, gsn.RelationSolved))
	diagram := gsn.NewDiagram(goal)
	diagram.AddNode(ctx)
	diagram.AddNode(strategy)

	p := &project.Project{
		Name:     "brake-safety",
		Tree:     tree,
		Diagrams: []*gsn.Diagram{diagram},
	}

	// Step 3: save and reload the archive.
	t.Log("Step 3: Save and reload project archive...")
	path := filepath.Join(t.TempDir(), "brake.vtpj")
	require.NoError(t, project.SaveFile(path, p))

	loaded, err := project.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "brake-safety", loaded.Name)
	assert.Equal(t, tree.Len(), loaded.Tree.Len())
	require.Len(t, loaded.Diagrams, 1)

	// Step 4: cut sets on the reloaded model.
	t.Log("Step 4: Cut-set enumeration...")
	cutSets, err := loaded.Tree.CutSets(top.ID)
	require.NoError(t, err)
	// AND(top) over OR(radar, camera, power) and power:
	// {radar,power}, {camera,power}, {power}.
	require.Len(t, cutSets, 3)
	assert.True(t, cutSets[2].Contains(power.ID))
	assert.Len(t, cutSets[2], 1)

	// Step 5: common causes.
	t.Log("Step 5: Common-cause detection...")
	causes, err := loaded.Tree.CommonCauses(top.ID)
	require.NoError(t, err)
	require.Len(t, causes, 1)
	assert.Equal(t, power.ID, causes[0].ID)
	assert.Equal(t, 2, causes[0].Count)

	causeReport, err := loaded.Tree.CommonCauseReport(top.ID)
	require.NoError(t, err)
	assert.Contains(t, causeReport, "occurs 2 times")

	// Step 6: argumentation text.
	t.Log("Step 6: Argumentation generation...")
	text, err := report.NewGenerator(nil).Argumentation(loaded.Tree, top.ID)
	require.NoError(t, err)
	assert.Contains(t, text, "Assurance level: 4")
	assert.Contains(t, text, "Severity: 2.0, Controllability: 3.0")
	assert.Contains(t, text, "Radar reports a phantom obstacle")

	// Step 7: diagnostics over the loaded model.
	t.Log("Step 7: Diagnostics...")
	mgr := diagnostics.NewManager(nil)
	mgr.RegisterCheck("model_integrity", diagnostics.ModelIntegrityCheck(loaded.Tree))
	mgr.RegisterCheck("clone_resolution", diagnostics.CloneResolutionCheck(loaded.Tree))
	diag := mgr.Run()
	assert.Equal(t, diagnostics.StatusHealthy, diag.Status)

	t.Log("✓ Workflow complete")
}

// TestCorruptArchiveRejected verifies that a truncated archive is
// rejected before any model is built from it.
func TestCorruptArchiveRejected(t *testing.T) {
	tree := faulttree.NewTree()
	tree.CreateNode("Top", faulttree.TypeTopEvent)
	p := &project.Project{Name: "p", Tree: tree}

	path := filepath.Join(t.TempDir(), "p.vtpj")
	require.NoError(t, project.SaveFile(path, p))

	raw, err := readAndTruncate(path)
	require.NoError(t, err)

	_, err = project.Read(strings.NewReader(string(raw)))
	assert.ErrorIs(t, err, project.ErrCorruptArchive)
}

// readAndTruncate returns the archive bytes with the tail cut off.
func readAndTruncate(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return raw[:len(raw)-4], nil
}
