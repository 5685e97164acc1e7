// Package report renders prose argumentation for fault-tree analysis
// results, combining cut-set enumeration with assurance-level guidance.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/capek-safety/veritree/pkg/assurance"
	"github.com/capek-safety/veritree/pkg/faulttree"
)

// Generator renders argumentation text. The recommendation table is
// explicit configuration; callers may substitute a custom table.
type Generator struct {
	Recs *assurance.Recommendations
}

// NewGenerator returns a Generator backed by the given table. A nil
// table falls back to the built-in defaults.
func NewGenerator(recs *assurance.Recommendations) *Generator {
	if recs == nil {
		recs = assurance.DefaultRecommendations()
	}
	return &Generator{Recs: recs}
}

// nodeLevel discretizes a node's quantitative value. Nodes with no
// value land on level 1.
func nodeLevel(n *faulttree.Node) assurance.Level {
	if n.QuantValue == nil {
		return 1
	}
	return assurance.DiscretizeLevel(*n.QuantValue)
}

// Argumentation produces the full prose argument for a top event or
// gate: discretized assurance level, severity and controllability,
// the cut-set listing, per-node descriptions for every id appearing
// in a cut set, and matching guidance from the recommendation table.
func (g *Generator) Argumentation(t *faulttree.Tree, id faulttree.NodeID) (string, error) {
	node, err := t.GetNode(id)
	if err != nil {
		return "", err
	}
	cutSets, err := t.CutSets(id)
	if err != nil {
		return "", err
	}

	level := nodeLevel(node)
	severity := assurance.ParseMetric(node.Severity)
	controllability := assurance.ParseMetric(node.Controllability)

	var b strings.Builder
	fmt.Fprintf(&b, "Argumentation for %s (%s)\n", node.Name(), node.Type)
	fmt.Fprintf(&b, "Assurance level: %s", level)
	if node.QuantValue != nil {
		fmt.Fprintf(&b, " (quantitative score %.2f)", *node.QuantValue)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Severity: %.1f, Controllability: %.1f\n", severity, controllability)

	b.WriteString("Cut sets:\n")
	if len(cutSets) == 0 {
		b.WriteString("  (none)\n")
	}
	for i, cs := range cutSets {
		names := make([]string, 0, len(cs))
		for _, cid := range cs.Sorted() {
			if cn, err := t.GetNode(cid); err == nil {
				names = append(names, cn.Name())
			}
		}
		fmt.Fprintf(&b, "  %d. %s\n", i+1, strings.Join(names, ", "))
	}

	described := describedNodes(t, cutSets)
	if len(described) > 0 {
		b.WriteString("Base conditions:\n")
		for _, cn := range described {
			fmt.Fprintf(&b, "  %s", cn.Name())
			if cn.Description != "" {
				fmt.Fprintf(&b, ": %s", cn.Description)
			}
			if cn.Rationale != "" {
				fmt.Fprintf(&b, " (Rationale: %s)", cn.Rationale)
			}
			b.WriteString("\n")
		}
	}

	g.writeGuidance(&b, level, node)
	return b.String(), nil
}

// describedNodes collects, in id order, every resolvable node whose id
// appears in any cut set.
func describedNodes(t *faulttree.Tree, cutSets []faulttree.IDSet) []*faulttree.Node {
	seen := make(map[faulttree.NodeID]bool)
	var ids []faulttree.NodeID
	for _, cs := range cutSets {
		for _, id := range cs.Sorted() {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var nodes []*faulttree.Node
	for _, id := range ids {
		if n, err := t.GetNode(id); err == nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func (g *Generator) writeGuidance(b *strings.Builder, level assurance.Level, node *faulttree.Node) {
	guidance, ok := g.Recs.Guidance(level)
	if !ok {
		return
	}
	b.WriteString("Recommendations:\n")
	fmt.Fprintf(b, "  %s: %s\n", assurance.CategoryTesting, guidance.Testing)
	fmt.Fprintf(b, "  %s: %s\n", assurance.CategoryIFTD, guidance.IFTD)
	fmt.Fprintf(b, "  %s: %s\n", assurance.CategoryMaintenance, guidance.Maintenance)
	fmt.Fprintf(b, "  %s: %s\n", assurance.CategoryGuidelines, guidance.Guidelines)
	extras := g.Recs.MatchExtras(level, node.UserName+" "+node.Description)
	if len(extras) > 0 {
		fmt.Fprintf(b, "  %s:\n", assurance.CategoryExtra)
		for _, e := range extras {
			fmt.Fprintf(b, "    - %s\n", e)
		}
	}
}

// HierarchicalArgumentation renders the subtree below id as indented
// prose, one line per node, descending through gates. Shared nodes are
// described at their first occurrence and referenced thereafter.
func (g *Generator) HierarchicalArgumentation(t *faulttree.Tree, id faulttree.NodeID) (string, error) {
	if _, err := t.GetNode(id); err != nil {
		return "", err
	}
	var b strings.Builder
	described := make(map[faulttree.NodeID]bool)
	g.writeHierarchy(&b, t, id, 0, described)
	return b.String(), nil
}

func (g *Generator) writeHierarchy(b *strings.Builder, t *faulttree.Tree, id faulttree.NodeID, depth int, described map[faulttree.NodeID]bool) {
	node, err := t.GetNode(id)
	if err != nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	if described[id] {
		fmt.Fprintf(b, "%s%s (see above)\n", indent, node.Name())
		return
	}
	described[id] = true

	fmt.Fprintf(b, "%s%s (%s", indent, node.Name(), node.Type)
	if node.Type.IsGateType() && node.GateType != "" {
		fmt.Fprintf(b, ", %s", node.GateType)
	}
	b.WriteString(")")
	if node.Description != "" {
		fmt.Fprintf(b, ": %s", node.Description)
	}
	b.WriteString("\n")
	for _, child := range node.Children {
		g.writeHierarchy(b, t, child, depth+1, described)
	}
}

// TopEventSummary renders a one-paragraph summary for a top event: its
// assurance level, the number of cut sets, and the common-cause line.
func (g *Generator) TopEventSummary(t *faulttree.Tree, id faulttree.NodeID) (string, error) {
	node, err := t.GetNode(id)
	if err != nil {
		return "", err
	}
	cutSets, err := t.CutSets(id)
	if err != nil {
		return "", err
	}
	causes, err := t.CommonCauses(id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s resolves to assurance level %s with %d cut set(s) and %d common cause(s).",
		node.Name(), nodeLevel(node), len(cutSets), len(causes)), nil
}
