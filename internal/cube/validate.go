package cube

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCorruptedState means a state is outside the legal cube group.
var ErrCorruptedState = errors.New("cubegroup: corrupted cube state")

// Violation identifies one broken group invariant.
type Violation int

const (
	DuplicateOrMissingCorner Violation = iota + 1
	DuplicateOrMissingEdge
	TwistSumInvalid
	FlipSumInvalid
	ParityMismatch
)

func (v Violation) String() string {
	switch v {
	case DuplicateOrMissingCorner:
		return "duplicate_or_missing_corner"
	case DuplicateOrMissingEdge:
		return "duplicate_or_missing_edge"
	case TwistSumInvalid:
		return "twist_sum_invalid"
	case FlipSumInvalid:
		return "flip_sum_invalid"
	case ParityMismatch:
		return "parity_mismatch"
	default:
		return "unknown"
	}
}

// MarshalText renders the violation by name.
func (v Violation) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Report is the outcome of Validate.
type Report struct {
	Valid        bool        `json:"valid"`
	Violations   []Violation `json:"violations,omitempty"`
	TwistSum     int         `json:"twist_sum"`
	FlipSum      int         `json:"flip_sum"`
	CornerParity int         `json:"corner_parity"`
	EdgeParity   int         `json:"edge_parity"`
}

// Has reports whether v is among the report's violations.
func (r Report) Has(v Violation) bool {
	for _, got := range r.Violations {
		if got == v {
			return true
		}
	}
	return false
}

// Err returns nil for a valid report and otherwise an error wrapping
// ErrCorruptedState that names every violation.
func (r Report) Err() error {
	if r.Valid {
		return nil
	}
	names := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		names[i] = v.String()
	}
	return fmt.Errorf("%w: %s", ErrCorruptedState, strings.Join(names, ", "))
}

// String summarises the report on one line.
func (r Report) String() string {
	if r.Valid {
		return fmt.Sprintf("valid (parity %d/%d)", r.CornerParity, r.EdgeParity)
	}
	return r.Err().Error()
}

// Validate checks s against every invariant of the cube group. All checks
// run; the report lists each one that fails.
func Validate(s State) Report {
	var r Report

	if !isBijection(s.CornerPerm[:]) {
		r.Violations = append(r.Violations, DuplicateOrMissingCorner)
	}
	if !isBijection(s.EdgePerm[:]) {
		r.Violations = append(r.Violations, DuplicateOrMissingEdge)
	}

	for _, o := range s.CornerOrient {
		r.TwistSum += int(o)
	}
	if r.TwistSum%3 != 0 {
		r.Violations = append(r.Violations, TwistSumInvalid)
	}

	for _, o := range s.EdgeOrient {
		r.FlipSum += int(o)
	}
	if r.FlipSum%2 != 0 {
		r.Violations = append(r.Violations, FlipSumInvalid)
	}

	r.CornerParity = Parity(s.CornerPerm[:])
	r.EdgeParity = Parity(s.EdgePerm[:])
	if r.CornerParity != r.EdgeParity {
		r.Violations = append(r.Violations, ParityMismatch)
	}

	r.Valid = len(r.Violations) == 0
	return r
}

// isBijection reports whether p holds every value 0..len(p)-1 exactly once.
func isBijection(p []uint8) bool {
	var seen [NumEdges]bool
	for _, v := range p {
		if int(v) >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Parity returns the parity of permutation p: the sum over its cycles of
// (length - 1), mod 2. Out-of-range entries end the cycle they appear in,
// so a malformed p still yields 0 or 1.
func Parity(p []uint8) int {
	visited := make([]bool, len(p))
	swaps := 0
	for i := range p {
		if visited[i] {
			continue
		}
		length := 0
		for cur := i; cur < len(p) && !visited[cur]; cur = int(p[cur]) {
			visited[cur] = true
			length++
		}
		swaps += length - 1
	}
	return swaps % 2
}
