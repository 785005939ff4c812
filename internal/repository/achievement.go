package repository

import (
	"context"

	"portfolio/internal/models"
	"portfolio/internal/store"
)

// AchievementRepository defines lookups over project achievements.
type AchievementRepository interface {
	ByProject(ctx context.Context, projectID string) []models.AchievementBase
	ByID(ctx context.Context, achievementID string) (*models.Achievement, bool)
}

type achievementRepository struct {
	store *store.Store
}

// NewAchievementRepository creates a new achievement repository.
func NewAchievementRepository(s *store.Store) AchievementRepository {
	return &achievementRepository{store: s}
}

// ByProject returns the baseline achievements for a project.
func (r *achievementRepository) ByProject(ctx context.Context, projectID string) []models.AchievementBase {
	rows := r.store.Fetch(ctx, store.TableProjectAchievements, "project_id", projectID)

	achievements := make([]models.AchievementBase, 0, len(rows))
	for _, row := range rows {
		achievements = append(achievements, models.AchievementBase{
			ID:    row.Get("_id"),
			Title: row.Get("achievement_title"),
		})
	}
	return achievements
}

// ByID returns a full achievement record.
func (r *achievementRepository) ByID(ctx context.Context, achievementID string) (*models.Achievement, bool) {
	row, ok := r.store.FetchOne(ctx, store.TableProjectAchievements, "_id", achievementID)
	if !ok {
		return nil, false
	}
	return &models.Achievement{
		AchievementBase: models.AchievementBase{
			ID:    row.Get("_id"),
			Title: row.Get("achievement_title"),
		},
		Description: row.Get("achievement_description"),
	}, true
}
