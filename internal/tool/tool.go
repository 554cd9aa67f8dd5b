// Package tool exposes the planning engine as named, JSON-in/JSON-out tools
// for an orchestrator. Every call returns an Envelope; no Go error or panic
// crosses this boundary.
package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/alexanderramin/coursepilot/internal/app"
)

// Name enumerates the tools the registry serves.
type Name string

const (
	ToolCheckEligibility Name = "check_eligibility"
	ToolRecommendCourses Name = "recommend_courses"
	ToolPredictSuccess   Name = "predict_success"
	ToolPlanPathway      Name = "plan_pathway"
)

// Envelope is the response shape of every tool call. ReasonCode is empty on
// success.
type Envelope struct {
	Success    bool   `json:"success"`
	ReasonCode string `json:"reason_code,omitempty"`
	Message    string `json:"message,omitempty"`
	Data       any    `json:"data,omitempty"`
}

// Spec describes one tool for discovery.
type Spec struct {
	Name        Name      `json:"name"`
	Description string    `json:"description"`
	Arguments   []ArgSpec `json:"arguments"`
}

type ArgSpec struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
}

type handler func(ctx context.Context, args map[string]any) Envelope

// Registry dispatches tool calls to the engine use cases.
type Registry struct {
	eligibility app.EligibilityUseCase
	recommend   app.RecommendUseCase
	predict     app.PredictUseCase
	pathway     app.PathwayUseCase
	handlers    map[Name]handler
}

func NewRegistry(
	eligibility app.EligibilityUseCase,
	recommend app.RecommendUseCase,
	predict app.PredictUseCase,
	pathway app.PathwayUseCase,
) *Registry {
	r := &Registry{
		eligibility: eligibility,
		recommend:   recommend,
		predict:     predict,
		pathway:     pathway,
	}
	r.handlers = map[Name]handler{
		ToolCheckEligibility: r.checkEligibility,
		ToolRecommendCourses: r.recommendCourses,
		ToolPredictSuccess:   r.predictSuccess,
		ToolPlanPathway:      r.planPathway,
	}
	return r
}

// Specs lists every tool sorted by name.
func (r *Registry) Specs() []Spec {
	out := make([]Spec, 0, len(toolSpecs))
	for _, s := range toolSpecs {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Invoke runs the named tool with JSON-object arguments. Empty raw means no
// arguments.
func (r *Registry) Invoke(ctx context.Context, name string, raw []byte) (env Envelope) {
	defer func() {
		if p := recover(); p != nil {
			env = internalEnvelope(fmt.Errorf("tool %s panicked: %v", name, p))
		}
	}()

	h, ok := r.handlers[Name(name)]
	if !ok {
		return failureEnvelope(app.Invalid("unknown tool %q", name))
	}

	args := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return failureEnvelope(app.Invalid("arguments must be a JSON object: %v", err))
		}
		if args == nil {
			args = map[string]any{}
		}
	}
	return h(ctx, args)
}

func (r *Registry) checkEligibility(ctx context.Context, args map[string]any) Envelope {
	studentID, courseCode, f := studentAndCourse(args)
	if f != nil {
		return failureEnvelope(f)
	}
	res, err := r.eligibility.CheckEligibility(ctx, app.NewEligibilityRequest(studentID, courseCode))
	if err != nil {
		return internalEnvelope(err)
	}
	if !res.Success {
		return failureEnvelope(res.Failure)
	}
	msg := fmt.Sprintf("%s is eligible for %s", res.StudentID, res.CourseCode)
	if !res.Eligible {
		msg = fmt.Sprintf("%s is not eligible for %s", res.StudentID, res.CourseCode)
	}
	return Envelope{Success: true, Message: msg, Data: eligibilityView(res)}
}

func (r *Registry) recommendCourses(ctx context.Context, args map[string]any) Envelope {
	studentID, f := requireString(args, "student_id")
	if f != nil {
		return failureEnvelope(f)
	}
	// A zero limit lets the service apply its configured default.
	limit, f := optionalInt(args, "limit", 1, app.MaxRecommendLimit)
	if f != nil {
		return failureEnvelope(f)
	}
	term, f := optionalTerm(args, "term")
	if f != nil {
		return failureEnvelope(f)
	}

	res, err := r.recommend.RecommendCourses(ctx, app.RecommendRequest{StudentID: studentID, Limit: limit, Term: term})
	if err != nil {
		return internalEnvelope(err)
	}
	if !res.Success {
		return failureEnvelope(res.Failure)
	}
	return Envelope{
		Success: true,
		Message: fmt.Sprintf("%d of %d candidate courses recommended", len(res.Recommendations), res.CandidateCount),
		Data:    recommendationView(res),
	}
}

func (r *Registry) predictSuccess(ctx context.Context, args map[string]any) Envelope {
	studentID, courseCode, f := studentAndCourse(args)
	if f != nil {
		return failureEnvelope(f)
	}
	res, err := r.predict.PredictSuccess(ctx, app.NewPredictRequest(studentID, courseCode))
	if err != nil {
		return internalEnvelope(err)
	}
	if !res.Success {
		return failureEnvelope(res.Failure)
	}
	return Envelope{
		Success: true,
		Message: fmt.Sprintf("%.0f%% predicted chance of success in %s", res.Probability, res.CourseCode),
		Data:    predictionView(res),
	}
}

func (r *Registry) planPathway(ctx context.Context, args map[string]any) Envelope {
	studentID, f := requireString(args, "student_id")
	if f != nil {
		return failureEnvelope(f)
	}
	credits, f := optionalInt(args, "credits_per_term", 1, app.MaxCreditsPerTerm)
	if f != nil {
		return failureEnvelope(f)
	}
	asOf, f := optionalDate(args, "as_of")
	if f != nil {
		return failureEnvelope(f)
	}

	res, err := r.pathway.PlanPathway(ctx, app.PathwayRequest{StudentID: studentID, CreditsPerTerm: credits, Now: asOf})
	if err != nil {
		return internalEnvelope(err)
	}
	if !res.Success {
		return failureEnvelope(res.Failure)
	}
	msg := fmt.Sprintf("%d terms planned, graduation %s", len(res.Terms), res.GraduationLabel)
	if len(res.Terms) == 0 {
		msg = "no remaining degree courses could be planned"
	}
	if len(res.Unscheduled) > 0 {
		msg += fmt.Sprintf(", %d courses unscheduled", len(res.Unscheduled))
	}
	return Envelope{Success: true, Message: msg, Data: pathwayView(res)}
}

func failureEnvelope(f *app.Failure) Envelope {
	if f == nil {
		f = &app.Failure{Code: app.FailInternal, Message: "result reported failure without a reason"}
	}
	return Envelope{Success: false, ReasonCode: string(f.Code), Message: f.Message}
}

func internalEnvelope(err error) Envelope {
	code := app.FailInternal
	var engErr *app.EngineError
	if errors.As(err, &engErr) {
		code = engErr.Code
	}
	return Envelope{Success: false, ReasonCode: string(code), Message: err.Error()}
}
