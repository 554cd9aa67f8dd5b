package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/alexanderramin/coursepilot/internal/domain"
	"github.com/alexanderramin/coursepilot/internal/planner"
)

// EngineConfig carries the defaults the engine services apply when a request
// leaves a knob unset.
type EngineConfig struct {
	Strictness     planner.StrictnessPolicy
	RecommendLimit int
	CreditsPerTerm int
	// Now overrides the clock for pathway planning. Nil means time.Now.
	Now func() time.Time
}

// DefaultEngineConfig returns the documented defaults.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Strictness:     planner.DefaultStrictness,
		RecommendLimit: app.DefaultRecommendLimit,
		CreditsPerTerm: app.DefaultCreditsPerTerm,
	}
}

func (c EngineConfig) withDefaults() EngineConfig {
	if _, ok := planner.ParseStrictnessPolicy(string(c.Strictness)); !ok {
		c.Strictness = planner.DefaultStrictness
	}
	if c.RecommendLimit < 1 || c.RecommendLimit > app.MaxRecommendLimit {
		c.RecommendLimit = app.DefaultRecommendLimit
	}
	if c.CreditsPerTerm < 1 || c.CreditsPerTerm > app.MaxCreditsPerTerm {
		c.CreditsPerTerm = app.DefaultCreditsPerTerm
	}
	return c
}

func (c EngineConfig) now() time.Time {
	if c.Now != nil {
		return c.Now().UTC()
	}
	return time.Now().UTC()
}

func requireStudentID(id string) (string, *app.Failure) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", app.Invalid("student id is required")
	}
	return id, nil
}

func requireCourseCode(code string) (string, *app.Failure) {
	code = normalizeCourseCode(code)
	if code == "" {
		return "", app.Invalid("course code is required")
	}
	return code, nil
}

// validateStudent rejects snapshots whose stored values fall outside the
// documented ranges.
func validateStudent(s domain.Student) *app.Failure {
	if s.GPA < 0 || s.GPA > 4 {
		return app.Invalid("student %s has GPA %.2f outside 0.0-4.0", s.ID, s.GPA)
	}
	if s.AttendancePct != nil && (*s.AttendancePct < 0 || *s.AttendancePct > 100) {
		return app.Invalid("student %s has attendance %.1f%% outside 0-100", s.ID, *s.AttendancePct)
	}
	if s.Level < 1 {
		return app.Invalid("student %s has level %d, must be at least 1", s.ID, s.Level)
	}
	return nil
}

func validateRange(name string, v, lo, hi int) *app.Failure {
	if v < lo || v > hi {
		return app.Invalid("%s must be between %d and %d, got %d", name, lo, hi, v)
	}
	return nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
