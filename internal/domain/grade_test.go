package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradePoints_Scale(t *testing.T) {
	cases := []struct {
		letter string
		points float64
	}{
		{"A", 4.0}, {"A-", 3.7}, {"B+", 3.3}, {"B", 3.0}, {"B-", 2.7},
		{"C+", 2.3}, {"C", 2.0}, {"C-", 1.7}, {"D+", 1.3}, {"D", 1.0}, {"F", 0.0},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.points, GradePoints(tc.letter), 1e-9, "grade=%s", tc.letter)
	}
}

func TestGradePoints_UnknownIsZero(t *testing.T) {
	assert.Equal(t, 0.0, GradePoints(""))
	assert.Equal(t, 0.0, GradePoints("E"))
	assert.Equal(t, 0.0, GradePoints("A+"))
	assert.False(t, IsValidGrade("A+"))
}

func TestGradePoints_NormalizesCaseAndSpace(t *testing.T) {
	assert.Equal(t, 3.7, GradePoints(" a- "))
	assert.True(t, IsValidGrade("b+"))
}

func TestGradeMeets_Monotonic(t *testing.T) {
	letters := []string{"F", "D", "D+", "C-", "C", "C+", "B-", "B", "B+", "A-", "A"}
	// Any grade that satisfies a minimum also satisfies it when replaced by a higher grade.
	for i, minimum := range letters {
		for j, achieved := range letters {
			if !GradeMeets(achieved, minimum) {
				continue
			}
			for _, higher := range letters[j:] {
				assert.True(t, GradeMeets(higher, minimum), "min=%s achieved=%s higher=%s", minimum, achieved, higher)
			}
			assert.GreaterOrEqual(t, j, i)
		}
	}
}

func TestGradeMeets_DBelowC(t *testing.T) {
	assert.False(t, GradeMeets("D", "C"))
	assert.True(t, GradeMeets("B", "C"))
	assert.True(t, GradeMeets("C", "C"))
}
