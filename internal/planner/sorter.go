package planner

import (
	"sort"

	"github.com/alexanderramin/coursepilot/internal/domain"
)

// RankSort orders scored courses deterministically:
// 1. Score: higher first
// 2. Level: lower first
// 3. Course code: lexical ascending
func RankSort(courses []ScoredCourse) {
	sort.SliceStable(courses, func(i, j int) bool {
		a, b := courses[i], courses[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Input.Course.Level != b.Input.Course.Level {
			return a.Input.Course.Level < b.Input.Course.Level
		}
		return a.Input.Course.Code < b.Input.Course.Code
	})
}

// PlacementSort orders pathway candidates for greedy placement:
// 1. Level: lower first
// 2. Difficulty: Easy < Medium < Hard
// 3. Course code: lexical ascending
func PlacementSort(courses []domain.Course) {
	sort.SliceStable(courses, func(i, j int) bool {
		a, b := courses[i], courses[j]
		if a.Level != b.Level {
			return a.Level < b.Level
		}
		if a.Difficulty.Rank() != b.Difficulty.Rank() {
			return a.Difficulty.Rank() < b.Difficulty.Rank()
		}
		return a.Code < b.Code
	})
}
