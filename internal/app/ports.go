package app

import "context"

type EligibilityUseCase interface {
	CheckEligibility(ctx context.Context, req EligibilityRequest) (*EligibilityResult, error)
}

type RecommendUseCase interface {
	RecommendCourses(ctx context.Context, req RecommendRequest) (*RecommendationResult, error)
}

type PredictUseCase interface {
	PredictSuccess(ctx context.Context, req PredictRequest) (*PredictionResult, error)
}

type PathwayUseCase interface {
	PlanPathway(ctx context.Context, req PathwayRequest) (*PathwayResult, error)
}
