package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/jonathan/talent-intel/internal/types"
)

// Key identifies one (candidate, job, weights) scoring computation.
// Recompute is skipped only on an exact match of all three hashes.
type Key struct {
	CandidateHash string
	JobHash       string
	WeightsHash   string
}

// NewKey builds a key from raw candidate text, raw job text, and the weight
// vector in effect for the batch.
func NewKey(candidateText, jobText string, weights types.WeightVector) Key {
	return Key{
		CandidateHash: ContentHash(candidateText),
		JobHash:       ContentHash(jobText),
		WeightsHash:   WeightsSignature(weights),
	}
}

// ContentHash returns the hex SHA-256 of a text block.
func ContentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// WeightsSignature returns a stable hash of a weight vector. Components are
// rounded to six decimals before hashing so float noise from repeated
// normalization does not defeat cache hits.
func WeightsSignature(w types.WeightVector) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "experience=%.6f;", w.Experience)
	fmt.Fprintf(&sb, "skills=%.6f;", w.Skills)
	fmt.Fprintf(&sb, "trajectory=%.6f", w.Trajectory)
	return ContentHash(sb.String())
}
