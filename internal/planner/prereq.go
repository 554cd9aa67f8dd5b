package planner

import (
	"sort"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/alexanderramin/coursepilot/internal/domain"
)

// StrictnessPolicy decides how per-edge strict flags collapse into a single
// strictness for a prerequisite group.
type StrictnessPolicy string

const (
	// StrictnessFirstEdge uses the flag of the first edge in the group, in
	// catalog order. This is the default.
	StrictnessFirstEdge StrictnessPolicy = "first_edge"
	// StrictnessAnyEdge treats the group as strict if any edge is strict.
	StrictnessAnyEdge StrictnessPolicy = "any_edge"
	// StrictnessAllEdges treats the group as strict only if every edge is strict.
	StrictnessAllEdges StrictnessPolicy = "all_edges"
)

const DefaultStrictness = StrictnessFirstEdge

// ParseStrictnessPolicy returns the named policy, or false if unknown.
func ParseStrictnessPolicy(s string) (StrictnessPolicy, bool) {
	switch StrictnessPolicy(s) {
	case StrictnessFirstEdge, StrictnessAnyEdge, StrictnessAllEdges:
		return StrictnessPolicy(s), true
	}
	return "", false
}

func (p StrictnessPolicy) groupStrict(edges []domain.PrerequisiteEdge) bool {
	if len(edges) == 0 {
		return false
	}
	switch p {
	case StrictnessAnyEdge:
		for _, e := range edges {
			if e.IsStrict {
				return true
			}
		}
		return false
	case StrictnessAllEdges:
		for _, e := range edges {
			if !e.IsStrict {
				return false
			}
		}
		return true
	default:
		return edges[0].IsStrict
	}
}

// ResolvePrerequisites evaluates grouped prerequisites for one course.
// completed maps course code to achieved grade. Codes in planned count as
// satisfying any minimum grade; they stand for courses the pathway planner
// already placed in an earlier simulated term. planned may be nil.
func ResolvePrerequisites(
	edges []domain.PrerequisiteEdge,
	completed map[string]string,
	planned map[string]bool,
	policy StrictnessPolicy,
) app.PrerequisiteCheck {
	if len(edges) == 0 {
		return app.PrerequisiteCheck{AllSatisfied: true}
	}

	byGroup := make(map[int][]domain.PrerequisiteEdge)
	var groupIDs []int
	for _, e := range edges {
		if _, seen := byGroup[e.GroupID]; !seen {
			groupIDs = append(groupIDs, e.GroupID)
		}
		byGroup[e.GroupID] = append(byGroup[e.GroupID], e)
	}
	sort.Ints(groupIDs)

	check := app.PrerequisiteCheck{AllSatisfied: true}
	for _, id := range groupIDs {
		group := byGroup[id]
		detail := app.PrerequisiteGroup{
			GroupID:  id,
			IsStrict: policy.groupStrict(group),
		}
		for _, e := range group {
			detail.CandidateCodes = append(detail.CandidateCodes, e.PrerequisiteCode)
			if detail.Satisfied {
				continue
			}
			if edgeSatisfied(e, completed, planned) {
				code := e.PrerequisiteCode
				detail.Satisfied = true
				detail.SatisfiedBy = &code
			}
		}
		if !detail.Satisfied {
			check.AllSatisfied = false
		}
		check.Groups = append(check.Groups, detail)
	}
	return check
}

func edgeSatisfied(e domain.PrerequisiteEdge, completed map[string]string, planned map[string]bool) bool {
	if grade, ok := completed[e.PrerequisiteCode]; ok && domain.GradeMeets(grade, e.MinimumGrade) {
		return true
	}
	return planned[e.PrerequisiteCode]
}

// ResolveFor runs the resolver for a catalog course using the snapshot's ledger.
func (s *Snapshot) ResolveFor(courseCode string, planned map[string]bool, policy StrictnessPolicy) app.PrerequisiteCheck {
	return ResolvePrerequisites(s.Prerequisites[courseCode], s.grades, planned, policy)
}
