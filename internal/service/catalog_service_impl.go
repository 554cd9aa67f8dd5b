package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/coursepilot/internal/domain"
	"github.com/alexanderramin/coursepilot/internal/repository"
)

type catalogService struct {
	courses repository.CourseRepo
	prereqs repository.PrerequisiteRepo
}

func NewCatalogService(courses repository.CourseRepo, prereqs repository.PrerequisiteRepo) CatalogService {
	return &catalogService{courses: courses, prereqs: prereqs}
}

func (s *catalogService) List(ctx context.Context, filter repository.CourseFilter) ([]*domain.Course, error) {
	filter.Department = strings.TrimSpace(filter.Department)
	return s.courses.List(ctx, filter)
}

func (s *catalogService) Show(ctx context.Context, code string) (*CourseDetail, error) {
	course, err := s.courses.GetByCode(ctx, normalizeCourseCode(code))
	if err != nil {
		return nil, err
	}
	edges, err := s.prereqs.ListForCourse(ctx, course.Code)
	if err != nil {
		return nil, fmt.Errorf("loading prerequisites for %s: %w", course.Code, err)
	}
	return &CourseDetail{Course: course, Prerequisites: edges}, nil
}
