package faulttree

import "errors"

var (
	// ErrNodeNotFound is returned when an id does not exist in the tree.
	ErrNodeNotFound = errors.New("node not found")

	// ErrDuplicateID is returned when inserting a node whose unique id
	// is already taken.
	ErrDuplicateID = errors.New("duplicate node id")

	// ErrCloneUnresolved is returned when a clone chain does not reach a
	// primary instance within the resolution depth cap.
	ErrCloneUnresolved = errors.New("clone chain does not resolve to a primary instance")
)
