// Package scoring implements the signal computations and score aggregation
// that turn structured job and candidate profiles into a ranked shortlist.
package scoring

import "math"

// Cosine computes cosine similarity between two embedding vectors.
// Returns 0 for nil, empty, mismatched-length, or zero-norm inputs.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// ExperienceSimilarity maps cosine similarity between a job's responsibility
// embedding and a candidate's experience embedding from [-1,1] to [0,1].
// Either side missing (nil vector) yields 0, not an error: a candidate with no
// comparable experience text simply earns no similarity credit.
func ExperienceSimilarity(jobVec, candidateVec []float32) float64 {
	if len(jobVec) == 0 || len(candidateVec) == 0 {
		return 0
	}
	return (Cosine(jobVec, candidateVec) + 1) / 2
}
