package service

import (
	"context"

	"portfolio/internal/models"
	"portfolio/internal/observability"
	"portfolio/internal/repository"
)

// SkillsService assembles the skills page.
type SkillsService interface {
	GetSkillsPage(ctx context.Context, username string) models.SkillsPage
}

type skillsService struct {
	skills repository.SkillRepository
}

// NewSkillsService creates a new skills service.
func NewSkillsService(skills repository.SkillRepository) SkillsService {
	return &skillsService{skills: skills}
}

func (s *skillsService) GetSkillsPage(ctx context.Context, username string) models.SkillsPage {
	ctx, span := observability.TracePageAggregation(ctx, "skills", username)
	defer span.End()

	skills := s.skills.ByUsername(ctx, username)
	if skills == nil {
		skills = []models.Skill{}
	}
	return models.SkillsPage{
		Skills:      skills,
		WelcomeText: models.WelcomeSkills,
	}
}
