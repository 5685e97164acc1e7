package assurance

import (
	"errors"
	"fmt"
)

// ErrUnsupportedRiskKey is returned when a feasibility, impact, or
// attack-vector key has no table entry. Callers must not substitute a
// fallback level.
var ErrUnsupportedRiskKey = errors.New("unsupported risk table key")

// ImpactLevels orders impact severities from lowest to highest.
var ImpactLevels = []string{"Negligible", "Moderate", "Major", "Severe"}

// riskLevelTable maps feasibility then impact severity to overall risk.
var riskLevelTable = map[string]map[string]string{
	"High": {
		"Severe":     "High",
		"Major":      "High",
		"Moderate":   "Medium",
		"Negligible": "Low",
	},
	"Medium": {
		"Severe":     "High",
		"Major":      "Medium",
		"Moderate":   "Low",
		"Negligible": "Low",
	},
	"Low": {
		"Severe":     "Medium",
		"Major":      "Low",
		"Moderate":   "Low",
		"Negligible": "Low",
	},
}

// calTable maps attack-vector column then impact severity to a
// cybersecurity assurance level.
var calTable = map[string]map[string]string{
	"Physical-Local":   {"Severe": "CAL2", "Major": "CAL1", "Moderate": "CAL1"},
	"Adjacent Network": {"Severe": "CAL3", "Major": "CAL2", "Moderate": "CAL1"},
	"Network-Remote":   {"Severe": "CAL4", "Major": "CAL3", "Moderate": "CAL2"},
}

// RiskLevel computes the overall risk level from attack feasibility and
// impact severity.
func RiskLevel(feasibility, impact string) (string, error) {
	row, ok := riskLevelTable[feasibility]
	if !ok {
		return "", fmt.Errorf("%w: feasibility %q", ErrUnsupportedRiskKey, feasibility)
	}
	level, ok := row[impact]
	if !ok {
		return "", fmt.Errorf("%w: impact %q", ErrUnsupportedRiskKey, impact)
	}
	return level, nil
}

// CAL computes the cybersecurity assurance level from an attack vector
// and impact severity. Physical and Local vectors share a column, as
// does every remote vector.
func CAL(attackVector, impact string) (string, error) {
	var col string
	switch attackVector {
	case "Physical", "Local":
		col = "Physical-Local"
	case "Adjacent":
		col = "Adjacent Network"
	case "Network", "Remote":
		col = "Network-Remote"
	default:
		return "", fmt.Errorf("%w: attack vector %q", ErrUnsupportedRiskKey, attackVector)
	}
	level, ok := calTable[col][impact]
	if !ok {
		return "", fmt.Errorf("%w: impact %q", ErrUnsupportedRiskKey, impact)
	}
	return level, nil
}

// OverallImpact returns the highest-ranked impact among the given
// categories. Unknown names rank lowest.
func OverallImpact(impacts ...string) string {
	order := make(map[string]int, len(ImpactLevels))
	for i, name := range ImpactLevels {
		order[name] = i
	}
	best := ""
	bestRank := -1
	for _, imp := range impacts {
		if r := order[imp]; r > bestRank {
			best, bestRank = imp, r
		}
	}
	return best
}
