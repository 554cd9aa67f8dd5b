package domain

import "strings"

type CourseType string

const (
	CourseRequired         CourseType = "required"
	CourseElective         CourseType = "elective"
	CourseGeneralEducation CourseType = "general_education"
)

// ValidCourseTypes is the canonical set of accepted course type strings.
var ValidCourseTypes = map[string]bool{
	"required": true, "elective": true, "general_education": true,
}

// Term is a course offering cadence or a planning term type.
type Term string

const (
	TermFall   Term = "Fall"
	TermSpring Term = "Spring"
	TermSummer Term = "Summer"
	TermBoth   Term = "Both"
)

// ValidTerms is the canonical set of accepted term-offered strings.
var ValidTerms = map[string]bool{
	"Fall": true, "Spring": true, "Summer": true, "Both": true,
}

// ParseTerm normalizes a user-supplied term name ("fall", " SPRING ").
func ParseTerm(s string) (Term, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	normalized := strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	if !ValidTerms[normalized] {
		return "", false
	}
	return Term(normalized), true
}

// OfferedIn reports whether a course offered in t runs during term type season.
func (t Term) OfferedIn(season Term) bool {
	return t == TermBoth || t == season
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ValidDifficulties is the canonical set of accepted difficulty strings.
var ValidDifficulties = map[string]bool{
	"Easy": true, "Medium": true, "Hard": true,
}

// Rank orders difficulties Easy < Medium < Hard. Unknown values sort last.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 2
	default:
		return 3
	}
}
