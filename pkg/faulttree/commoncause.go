package faulttree

import (
	"fmt"
	"sort"
	"strings"
)

// CommonCause describes a node reachable from a root via more than one
// traversal path, indicating a shared dependency across branches.
type CommonCause struct {
	ID          NodeID
	Name        string
	Type        NodeType
	Description string
	Count       int
}

// CommonCauses walks every path from root, tallying how many times each
// unique id is reached. Unlike AllNodes there is no visited-set dedup:
// a node under two parents is counted once per path. Cycle safety comes
// from a per-path ancestor guard only, so shared sub-trees still count
// fully. Ids with a tally above one are returned, ordered by id.
func (t *Tree) CommonCauses(rootID NodeID) ([]CommonCause, error) {
	if _, err := t.GetNode(rootID); err != nil {
		return nil, err
	}

	counts := make(map[NodeID]int)
	onPath := make(map[NodeID]bool)

	var walk func(id NodeID)
	walk = func(id NodeID) {
		if onPath[id] {
			return
		}
		n, err := t.GetNode(id)
		if err != nil {
			return
		}
		counts[id]++
		onPath[id] = true
		for _, childID := range n.Children {
			walk(childID)
		}
		delete(onPath, id)
	}
	walk(rootID)

	var out []CommonCause
	for id, count := range counts {
		if count <= 1 {
			continue
		}
		n, err := t.GetNode(id)
		if err != nil {
			continue
		}
		out = append(out, CommonCause{
			ID:          id,
			Name:        n.Name(),
			Type:        n.Type,
			Description: n.Description,
			Count:       count,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// CommonCauseReport renders the common-cause analysis for root as a
// multi-line report. When no node repeats, the report body is the
// literal line "None found."
func (t *Tree) CommonCauseReport(rootID NodeID) (string, error) {
	causes, err := t.CommonCauses(rootID)
	if err != nil {
		return "", err
	}
	root, err := t.GetNode(rootID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Common cause analysis for %s\n", root.Name())
	if len(causes) == 0 {
		b.WriteString("None found.")
		return b.String(), nil
	}
	for _, c := range causes {
		fmt.Fprintf(&b, "%s (%s) occurs %d times", c.Name, c.Type, c.Count)
		if c.Description != "" {
			fmt.Fprintf(&b, ": %s", c.Description)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
