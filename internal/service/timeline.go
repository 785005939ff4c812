package service

import (
	"context"

	"portfolio/internal/models"
	"portfolio/internal/observability"
	"portfolio/internal/repository"
)

// TimelineService assembles the timeline page.
type TimelineService interface {
	GetTimelinePage(ctx context.Context, username string) models.TimelinePage
}

type timelineService struct {
	profiles repository.ProfileRepository
	workExp  repository.WorkExperienceRepository
}

// NewTimelineService creates a new timeline service.
func NewTimelineService(profiles repository.ProfileRepository, workExp repository.WorkExperienceRepository) TimelineService {
	return &timelineService{profiles: profiles, workExp: workExp}
}

func (s *timelineService) GetTimelinePage(ctx context.Context, username string) models.TimelinePage {
	ctx, span := observability.TracePageAggregation(ctx, "timeline", username)
	defer span.End()

	experiences := s.workExp.ByUsername(ctx, username)
	if experiences == nil {
		experiences = []models.Experience{}
	}
	education := s.profiles.Education(ctx, username)
	if education == nil {
		education = []models.Education{}
	}
	return models.TimelinePage{
		Experiences: experiences,
		Education:   education,
		WelcomeText: models.WelcomeTimeline,
	}
}
