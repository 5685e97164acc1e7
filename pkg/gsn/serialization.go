package gsn

// NodeRecord is the saved-file shape of one GSN node. Legacy files list
// child ids in a generic "children" array and context ids in a separate
// "context" array; an id may appear in both.
type NodeRecord struct {
	ID          string   `json:"unique_id"`
	UserName    string   `json:"user_name"`
	Type        string   `json:"node_type"`
	Description string   `json:"description,omitempty"`
	SPITarget   string   `json:"spi_target,omitempty"`
	Children    []string `json:"children,omitempty"`
	Context     []string `json:"context,omitempty"`
	Original    string   `json:"original,omitempty"`
}

// DiagramRecord is the saved-file shape of one diagram.
type DiagramRecord struct {
	ID    string       `json:"diag_id"`
	Root  string       `json:"root"`
	Nodes []NodeRecord `json:"nodes"`
}

// LoadDiagram rebuilds a diagram from its saved record, applying the
// legacy leniency rules:
//
//   - an id listed in both "children" and "context" collapses to a
//     single child edge tagged as context;
//   - a context-like node (Context, Assumption, Justification) listed
//     only in "children" is treated as invalid legacy data and the
//     link is dropped, in neither direction;
//   - links that violate the AddChild structure rules (a Goal in a
//     context array, any child under an Assumption) are likewise
//     dropped silently.
//
// The strict rules still apply unchanged to runtime AddChild calls;
// the leniency exists only so older project files keep loading.
func LoadDiagram(rec DiagramRecord) *Diagram {
	byID := make(map[string]*Node, len(rec.Nodes))
	order := make([]*Node, 0, len(rec.Nodes))
	for _, nr := range rec.Nodes {
		n := NewNode(nr.UserName, NodeType(nr.Type))
		if nr.ID != "" {
			n.ID = nr.ID
		}
		n.Description = nr.Description
		n.SPITarget = nr.SPITarget
		byID[n.ID] = n
		order = append(order, n)
	}

	// Clone linkage resolves after all nodes exist.
	for _, nr := range rec.Nodes {
		if nr.Original == "" || nr.Original == nr.ID {
			continue
		}
		if orig, ok := byID[nr.Original]; ok {
			n := byID[nr.ID]
			n.IsPrimaryInstance = false
			n.Original = orig
		}
	}

	for _, nr := range rec.Nodes {
		parent := byID[nr.ID]
		inContext := make(map[string]bool, len(nr.Context))
		for _, id := range nr.Context {
			inContext[id] = true
		}
		linked := make(map[string]bool)

		for _, id := range nr.Context {
			child, ok := byID[id]
			if !ok || linked[id] {
				continue
			}
			// Invalid legacy links drop silently.
			if err := parent.AddChild(child, RelationContext); err == nil {
				linked[id] = true
			}
		}
		for _, id := range nr.Children {
			child, ok := byID[id]
			if !ok || linked[id] || inContext[id] {
				// Duplicate listing collapses to the context edge above.
				continue
			}
			if contextLike(child.Type) {
				// Context-like node in the generic children array with
				// no matching context entry: invalid legacy data.
				continue
			}
			if err := parent.AddChild(child, RelationSolved); err == nil {
				linked[id] = true
			}
		}
	}

	root := byID[rec.Root]
	if root == nil && len(order) > 0 {
		root = order[0]
	}
	d := &Diagram{ID: rec.ID, Root: root}
	for _, n := range order {
		d.AddNode(n)
	}
	return d
}

// Record converts the diagram back to its saved shape. Context children
// are listed in both arrays for compatibility with older readers, which
// LoadDiagram collapses again on the way back in.
func (d *Diagram) Record() DiagramRecord {
	rec := DiagramRecord{ID: d.ID}
	if d.Root != nil {
		rec.Root = d.Root.ID
	}
	for _, n := range d.Nodes {
		nr := NodeRecord{
			ID:          n.ID,
			UserName:    n.UserName,
			Type:        string(n.Type),
			Description: n.Description,
			SPITarget:   n.SPITarget,
		}
		for _, c := range n.Children {
			nr.Children = append(nr.Children, c.ID)
		}
		for _, c := range n.ContextChildren {
			nr.Context = append(nr.Context, c.ID)
		}
		if !n.IsPrimaryInstance && n.Original != nil {
			nr.Original = n.Original.ID
		}
		rec.Nodes = append(rec.Nodes, nr)
	}
	return rec
}
