package cube

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Identity(t *testing.T) {
	r := Validate(Identity())
	require.True(t, r.Valid)
	assert.Empty(t, r.Violations)
	assert.NoError(t, r.Err())
	assert.Equal(t, 0, r.CornerParity)
	assert.Equal(t, 0, r.EdgeParity)
}

func TestValidate_DuplicateCorner(t *testing.T) {
	s := Identity()
	s.CornerPerm[1] = 0
	r := Validate(s)
	require.False(t, r.Valid)
	assert.True(t, r.Has(DuplicateOrMissingCorner))
	assert.False(t, r.Has(DuplicateOrMissingEdge))
}

func TestValidate_OutOfRangeEdge(t *testing.T) {
	s := Identity()
	s.EdgePerm[11] = 12
	r := Validate(s)
	require.False(t, r.Valid)
	assert.True(t, r.Has(DuplicateOrMissingEdge))
}

func TestValidate_SingleTwist(t *testing.T) {
	s := Identity()
	s.CornerOrient[URF] = 1
	r := Validate(s)
	require.False(t, r.Valid)
	assert.Equal(t, []Violation{TwistSumInvalid}, r.Violations)
	assert.Equal(t, 1, r.TwistSum)
}

func TestValidate_SingleFlip(t *testing.T) {
	s := Identity()
	s.EdgeOrient[UF] = 1
	r := Validate(s)
	require.False(t, r.Valid)
	assert.Equal(t, []Violation{FlipSumInvalid}, r.Violations)
}

func TestValidate_TwoCornerSwap(t *testing.T) {
	s := Identity()
	s.CornerPerm[URF], s.CornerPerm[UFL] = s.CornerPerm[UFL], s.CornerPerm[URF]
	r := Validate(s)
	require.False(t, r.Valid)
	assert.Equal(t, []Violation{ParityMismatch}, r.Violations)
	assert.Equal(t, 1, r.CornerParity)
	assert.Equal(t, 0, r.EdgeParity)
}

func TestValidate_CornerAndEdgeSwapIsLegal(t *testing.T) {
	s := Identity()
	s.CornerPerm[URF], s.CornerPerm[UFL] = s.CornerPerm[UFL], s.CornerPerm[URF]
	s.EdgePerm[UR], s.EdgePerm[UF] = s.EdgePerm[UF], s.EdgePerm[UR]
	assert.True(t, Validate(s).Valid)
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	s := Identity()
	s.CornerPerm[0] = 1 // duplicate corner
	s.EdgePerm[0] = 1   // duplicate edge
	s.CornerOrient[3] = 2
	s.EdgeOrient[7] = 1
	s.EdgePerm[4], s.EdgePerm[5] = s.EdgePerm[5], s.EdgePerm[4]

	r := Validate(s)
	require.False(t, r.Valid)
	for _, v := range []Violation{
		DuplicateOrMissingCorner,
		DuplicateOrMissingEdge,
		TwistSumInvalid,
		FlipSumInvalid,
	} {
		assert.True(t, r.Has(v), "missing %s", v)
	}

	err := r.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCorruptedState))
	assert.Contains(t, err.Error(), "twist_sum_invalid")
	assert.Contains(t, err.Error(), "flip_sum_invalid")
}

func TestValidate_AllInvariantsBroken(t *testing.T) {
	var s State // all zero: both permutations collapse to piece 0
	s.CornerOrient[0] = 1
	s.EdgeOrient[0] = 1
	s.CornerPerm[1] = 1 // still not a bijection

	r := Validate(s)
	assert.False(t, r.Valid)
	assert.True(t, r.Has(DuplicateOrMissingCorner))
	assert.True(t, r.Has(DuplicateOrMissingEdge))
	assert.True(t, r.Has(TwistSumInvalid))
	assert.True(t, r.Has(FlipSumInvalid))
}

func TestParity(t *testing.T) {
	tests := []struct {
		name string
		p    []uint8
		want int
	}{
		{"identity", []uint8{0, 1, 2, 3}, 0},
		{"transposition", []uint8{1, 0, 2, 3}, 1},
		{"three cycle", []uint8{1, 2, 0, 3}, 0},
		{"four cycle", []uint8{1, 2, 3, 0}, 1},
		{"two transpositions", []uint8{1, 0, 3, 2}, 0},
		{"out of range", []uint8{5, 1, 2, 3}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parity(tt.p))
		})
	}
}

func TestViolationString(t *testing.T) {
	assert.Equal(t, "parity_mismatch", ParityMismatch.String())
	assert.Equal(t, "unknown", Violation(0).String())
}
