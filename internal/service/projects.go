package service

import (
	"context"

	"portfolio/internal/models"
	"portfolio/internal/observability"
	"portfolio/internal/repository"
)

// ProjectsService assembles the projects page and project detail views.
type ProjectsService interface {
	GetProjectsPage(ctx context.Context, username string) models.ProjectsPage
	GetProjectByID(ctx context.Context, username, projectID string) (*models.Project, bool)
}

type projectsService struct {
	projects repository.ProjectRepository
}

// NewProjectsService creates a new projects service.
func NewProjectsService(projects repository.ProjectRepository) ProjectsService {
	return &projectsService{projects: projects}
}

func (s *projectsService) GetProjectsPage(ctx context.Context, username string) models.ProjectsPage {
	ctx, span := observability.TracePageAggregation(ctx, "projects", username)
	defer span.End()

	projects := s.projects.ByUsername(ctx, username)
	if projects == nil {
		projects = []models.ProjectBase{}
	}
	return models.ProjectsPage{
		Projects:    projects,
		WelcomeText: models.WelcomeProjects,
	}
}

func (s *projectsService) GetProjectByID(ctx context.Context, username, projectID string) (*models.Project, bool) {
	ctx, span := observability.TracePageAggregation(ctx, "project_detail", username)
	defer span.End()

	return s.projects.ByID(ctx, username, projectID)
}
