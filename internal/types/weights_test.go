package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	assert.Equal(t, WeightVector{Experience: 0.5, Skills: 0.35, Trajectory: 0.15}, w)
	assert.InDelta(t, 1.0, w.Sum(), 1e-9)
}

func TestWeightVector_Normalized(t *testing.T) {
	tests := []struct {
		name  string
		input WeightVector
		want  WeightVector
	}{
		{
			name:  "already normalized",
			input: WeightVector{Experience: 0.5, Skills: 0.35, Trajectory: 0.15},
			want:  WeightVector{Experience: 0.5, Skills: 0.35, Trajectory: 0.15},
		},
		{
			name:  "scales down",
			input: WeightVector{Experience: 1, Skills: 1, Trajectory: 2},
			want:  WeightVector{Experience: 0.25, Skills: 0.25, Trajectory: 0.5},
		},
		{
			name:  "scales up",
			input: WeightVector{Experience: 0.1, Skills: 0.2, Trajectory: 0.2},
			want:  WeightVector{Experience: 0.2, Skills: 0.4, Trajectory: 0.4},
		},
		{
			name:  "single nonzero component",
			input: WeightVector{Skills: 0.3},
			want:  WeightVector{Skills: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.Normalized()
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Experience, got.Experience, 1e-9)
			assert.InDelta(t, tt.want.Skills, got.Skills, 1e-9)
			assert.InDelta(t, tt.want.Trajectory, got.Trajectory, 1e-9)
			assert.InDelta(t, 1.0, got.Sum(), 1e-6)
		})
	}
}

func TestWeightVector_NormalizedZeroSum(t *testing.T) {
	_, err := WeightVector{}.Normalized()
	assert.ErrorIs(t, err, ErrZeroWeightSum)
}

func TestWeightVector_NormalizedNegativeComponent(t *testing.T) {
	_, err := WeightVector{Experience: 0.5, Skills: -0.1, Trajectory: 0.6}.Normalized()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrZeroWeightSum)
}

func TestWeightVector_GetWith(t *testing.T) {
	w := WeightVector{Experience: 0.5, Skills: 0.35, Trajectory: 0.15}

	assert.Equal(t, 0.5, w.Get(SignalExperience))
	assert.Equal(t, 0.35, w.Get(SignalSkills))
	assert.Equal(t, 0.15, w.Get(SignalTrajectory))
	assert.Equal(t, 0.0, w.Get(Signal("unknown")))

	updated := w.With(SignalSkills, 0.7)
	assert.Equal(t, 0.7, updated.Skills)
	// original copy is untouched
	assert.Equal(t, 0.35, w.Skills)
}
