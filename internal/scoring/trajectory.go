package scoring

import "strings"

// seniorityOrdinals is the fixed ordinal scale used for seniority distance.
var seniorityOrdinals = map[string]int{
	"intern":    0,
	"junior":    1,
	"mid":       2,
	"senior":    3,
	"lead":      4,
	"manager":   5,
	"director":  6,
	"executive": 7,
}

// defaultOrdinal is the ordinal assumed for unknown or missing labels ("mid").
const defaultOrdinal = 2

// TrajectoryAlignment maps two seniority labels to an alignment score through
// the fixed ordinal scale. This is a lookup with exact breakpoints, not a
// formula: equal levels score 1.0, one level apart 0.8, two apart 0.5, and
// anything further 0.25. The mapping is symmetric in its arguments.
func TrajectoryAlignment(jobLevel, candidateLevel string) float64 {
	a := seniorityOrdinal(jobLevel)
	b := seniorityOrdinal(candidateLevel)

	diff := a - b
	if diff < 0 {
		diff = -diff
	}

	switch diff {
	case 0:
		return 1.0
	case 1:
		return 0.8
	case 2:
		return 0.5
	default:
		return 0.25
	}
}

func seniorityOrdinal(label string) int {
	if ordinal, ok := seniorityOrdinals[strings.ToLower(strings.TrimSpace(label))]; ok {
		return ordinal
	}
	return defaultOrdinal
}
