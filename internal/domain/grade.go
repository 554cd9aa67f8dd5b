package domain

import "strings"

var gradePoints = map[string]float64{
	"A":  4.0,
	"A-": 3.7,
	"B+": 3.3,
	"B":  3.0,
	"B-": 2.7,
	"C+": 2.3,
	"C":  2.0,
	"C-": 1.7,
	"D+": 1.3,
	"D":  1.0,
	"F":  0.0,
}

// GradePoints maps a letter grade to the 4.0 scale. Unknown or empty grades
// map to 0.0.
func GradePoints(letter string) float64 {
	return gradePoints[NormalizeGrade(letter)]
}

// IsValidGrade reports whether letter is one of the known letter grades.
func IsValidGrade(letter string) bool {
	_, ok := gradePoints[NormalizeGrade(letter)]
	return ok
}

// GradeMeets reports whether achieved is numerically at or above minimum.
func GradeMeets(achieved, minimum string) bool {
	return GradePoints(achieved) >= GradePoints(minimum)
}

// NormalizeGrade upper-cases and trims a letter grade.
func NormalizeGrade(letter string) string {
	return strings.ToUpper(strings.TrimSpace(letter))
}
