package repository

import (
	"context"
	"strings"

	"portfolio/internal/derive"
	"portfolio/internal/models"
	"portfolio/internal/store"
)

// ProjectRepository defines lookups over the project tables.
type ProjectRepository interface {
	ByUsername(ctx context.Context, username string) []models.ProjectBase
	ByID(ctx context.Context, username, projectID string) (*models.Project, bool)
}

type projectRepository struct {
	store        *store.Store
	skills       SkillRepository
	mlModels     MLModelRepository
	achievements AchievementRepository
	workExp      WorkExperienceRepository
	clock        derive.Clock
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(
	s *store.Store,
	skills SkillRepository,
	mlModels MLModelRepository,
	achievements AchievementRepository,
	workExp WorkExperienceRepository,
	clock derive.Clock,
) ProjectRepository {
	return &projectRepository{
		store:        s,
		skills:       skills,
		mlModels:     mlModels,
		achievements: achievements,
		workExp:      workExp,
		clock:        clock,
	}
}

// ByUsername returns the user's projects in list shape, with duration
// computed from the dates and the company block resolved from the work
// experience reference.
func (r *projectRepository) ByUsername(ctx context.Context, username string) []models.ProjectBase {
	rows := r.store.Fetch(ctx, store.TableProjects, "username", username)

	projects := make([]models.ProjectBase, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, r.baseFromRow(ctx, username, row))
	}
	return projects
}

// ByID resolves one project in full detail: skills, achievements, and ML
// models joined on. The (username, id) pair must match a row exactly;
// absence yields nil.
func (r *projectRepository) ByID(ctx context.Context, username, projectID string) (*models.Project, bool) {
	rows := r.store.Fetch(ctx, store.TableProjects, "username", username)
	for _, row := range rows {
		if row.Get("_id") != projectID {
			continue
		}
		project := models.Project{
			ProjectBase:        r.baseFromRow(ctx, username, row),
			LongDescription:    row.Get("long_description"),
			MLModels:           r.mlModels.ByProject(ctx, projectID),
			Skills:             r.skills.ByProject(ctx, projectID),
			Achievements:       r.achievements.ByProject(ctx, projectID),
			HostingPlatform:    row.Get("hosting_platform"),
			CICDPipeline:       row.Get("cicd_pipeline"),
			MonitoringTracking: row.Get("monitoring_tracking"),
		}
		return &project, true
	}
	return nil, false
}

func (r *projectRepository) baseFromRow(ctx context.Context, username string, row store.Row) models.ProjectBase {
	return models.ProjectBase{
		ID:               row.Get("_id"),
		Title:            row.Get("title"),
		ShortDescription: row.Get("short_description"),
		ProjectType:      models.ParseProjectType(row.Get("project_type")),
		Status:           models.ParseProjectStatus(row.Get("status")),
		GithubURL:        row.Get("github_url"),
		LiveURL:          row.Get("live_url"),
		NotionURL:        row.Get("notion_url"),
		StartDate:        row.Get("start_date"),
		EndDate:          row.Get("end_date"),
		Duration:         derive.ProjectDuration(row.Get("start_date"), row.Get("end_date"), r.clock),
		Role:             row.Get("role"),
		Company:          r.companyBase(ctx, username, row.Get("company")),
		CompanyRef:       strings.TrimSpace(row.Get("company")),
	}
}

// companyBase resolves the project's company reference against the user's
// work experience. References that do not resolve yield no company block.
func (r *projectRepository) companyBase(ctx context.Context, username, companyRef string) *models.CompanyBase {
	companyRef = strings.TrimSpace(companyRef)
	if companyRef == "" {
		return nil
	}
	company, ok := r.workExp.CompanyByID(ctx, username, companyRef)
	if !ok {
		return nil
	}
	return &company.CompanyBase
}
