// Package project persists whole workbench projects: fault-tree models
// and argumentation diagrams, serialized to JSON and framed in a
// checksummed, snappy-compressed archive.
package project

import (
	"github.com/capek-safety/veritree/pkg/gsn"
)

// FormatVersion is written into every saved project and checked on load.
const FormatVersion = 2

// NodeRecord is the saved shape of one fault-tree node. Children nest
// recursively; a shared subtree is written in full at its first
// occurrence and as an id-only reference afterwards, which the loader
// resolves back to a single node.
type NodeRecord struct {
	ID              uint64   `json:"unique_id" validate:"required"`
	UserName        string   `json:"user_name,omitempty"`
	Type            string   `json:"node_type" validate:"required_without=Reference"`
	GateType        string   `json:"gate_type,omitempty" validate:"omitempty,oneof=AND OR"`
	QuantValue      *float64 `json:"quant_value,omitempty"`
	Description     string   `json:"description,omitempty"`
	Rationale       string   `json:"rationale,omitempty"`
	Severity        string   `json:"severity,omitempty"`
	Controllability string   `json:"controllability,omitempty"`
	IsPage          bool     `json:"is_page,omitempty"`
	IsPrimary       bool     `json:"is_primary_instance"`
	Original        uint64   `json:"original,omitempty"`

	SafetyRequirements []RequirementRecord `json:"safety_requirements,omitempty" validate:"dive"`

	// Reference marks an id-only occurrence of an already-written node.
	Reference bool `json:"reference,omitempty"`

	Children []NodeRecord `json:"children,omitempty" validate:"dive"`
}

// RequirementRecord is the saved shape of a safety-requirement link.
type RequirementRecord struct {
	ID      string `json:"id" validate:"required"`
	ReqType string `json:"req_type"`
	Text    string `json:"text"`
}

// Record is the saved shape of a whole project.
type Record struct {
	Name      string              `json:"name" validate:"required"`
	Version   int                 `json:"version" validate:"required,min=1"`
	TopEvents []NodeRecord        `json:"top_events" validate:"dive"`
	Diagrams  []gsn.DiagramRecord `json:"gsn_diagrams,omitempty"`
}
