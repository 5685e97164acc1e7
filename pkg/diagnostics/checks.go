package diagnostics

import (
	"fmt"

	"github.com/capek-safety/veritree/pkg/faulttree"
)

// ModelIntegrityCheck adapts the fault-tree constraint set into a
// diagnostics check. Error-severity violations mark the model
// unhealthy; info and warning violations degrade it.
func ModelIntegrityCheck(tree *faulttree.Tree) CheckFunc {
	constraints := faulttree.DefaultConstraints()
	return func() Result {
		violations := tree.Validate(constraints...)
		result := Result{
			Name:   "model_integrity",
			Status: StatusHealthy,
			Details: map[string]any{
				"nodes":      tree.Len(),
				"violations": len(violations),
			},
		}
		if len(violations) == 0 {
			result.Message = "model satisfies all constraints"
			return result
		}

		result.Status = StatusDegraded
		for _, v := range violations {
			if v.Severity == faulttree.Error {
				result.Status = StatusUnhealthy
				break
			}
		}
		result.Message = fmt.Sprintf("%d constraint violation(s)", len(violations))
		return result
	}
}

// CloneResolutionCheck verifies that every non-primary node still
// resolves to a primary instance.
func CloneResolutionCheck(tree *faulttree.Tree) CheckFunc {
	return func() Result {
		var broken int
		for _, id := range tree.NodeIDs() {
			n, err := tree.GetNode(id)
			if err != nil || n.IsPrimaryInstance {
				continue
			}
			if _, err := tree.ResolveOriginal(id); err != nil {
				broken++
			}
		}
		result := Result{
			Name:    "clone_resolution",
			Status:  StatusHealthy,
			Message: "all clones resolve",
			Details: map[string]any{"broken": broken},
		}
		if broken > 0 {
			result.Status = StatusUnhealthy
			result.Message = fmt.Sprintf("%d clone(s) fail to resolve", broken)
		}
		return result
	}
}
