package repository

import (
	"context"

	"portfolio/internal/models"
	"portfolio/internal/store"
)

// fallbackCategory is assigned to skills whose category id does not resolve.
const fallbackCategory = "Other"

// SkillRepository defines lookups over the skill and category tables.
type SkillRepository interface {
	ByUsername(ctx context.Context, username string) []models.Skill
	Groups(ctx context.Context) []models.SkillGroup
	ByProject(ctx context.Context, projectID string) []models.SkillBase
	NamesByIDs(ctx context.Context, ids []string) []string
	AllForResume(ctx context.Context) []models.ResumeSkill
}

type skillRepository struct {
	store *store.Store
}

// NewSkillRepository creates a new skill repository.
func NewSkillRepository(s *store.Store) SkillRepository {
	return &skillRepository{store: s}
}

func (r *skillRepository) categories(ctx context.Context) map[string]string {
	rows := r.store.Fetch(ctx, store.TableSkillCategories, "", "")
	names := make(map[string]string, len(rows))
	for _, row := range rows {
		names[row.Get("_id")] = row.Get("name")
	}
	return names
}

// ByUsername returns the user's skills with the 1-5 rating rescaled to a
// 0-100 level and the category name resolved.
func (r *skillRepository) ByUsername(ctx context.Context, username string) []models.Skill {
	categories := r.categories(ctx)
	rows := r.store.Fetch(ctx, store.TableSkills, "username", username)

	skills := make([]models.Skill, 0, len(rows))
	for _, row := range rows {
		name, ok := categories[row.Get("skill_category_id")]
		if !ok {
			name = fallbackCategory
		}
		skills = append(skills, models.Skill{
			ID:       row.Get("_id"),
			Name:     row.Get("name"),
			Level:    int(floatOrZero(row.Get("rating")) * 20),
			Category: name,
		})
	}
	return skills
}

// Groups buckets every skill row by resolved category name, preserving the
// order categories first appear in the skills table.
func (r *skillRepository) Groups(ctx context.Context) []models.SkillGroup {
	categories := r.categories(ctx)
	rows := r.store.Fetch(ctx, store.TableSkills, "", "")

	var order []string
	grouped := make(map[string][]models.RatedSkill)
	for _, row := range rows {
		name, ok := categories[row.Get("skill_category_id")]
		if !ok {
			name = fallbackCategory
		}
		if _, seen := grouped[name]; !seen {
			order = append(order, name)
		}
		grouped[name] = append(grouped[name], models.RatedSkill{
			Name:     row.Get("name"),
			Rating:   floatOrZero(row.Get("rating")),
			Category: name,
		})
	}

	groups := make([]models.SkillGroup, 0, len(order))
	for _, name := range order {
		groups = append(groups, models.SkillGroup{Name: name, Skills: grouped[name]})
	}
	return groups
}

// ByProject resolves the project_skills junction into baseline skill records.
func (r *skillRepository) ByProject(ctx context.Context, projectID string) []models.SkillBase {
	junctions := r.store.Fetch(ctx, store.TableProjectSkills, "project_id", projectID)

	skills := make([]models.SkillBase, 0, len(junctions))
	for _, junction := range junctions {
		row, ok := r.store.FetchOne(ctx, store.TableSkills, "_id", junction.Get("skill_id"))
		if !ok {
			continue
		}
		skills = append(skills, models.SkillBase{
			ID:     row.Get("_id"),
			Name:   row.Get("name"),
			Rating: floatOrZero(row.Get("rating")),
		})
	}
	return skills
}

// NamesByIDs returns the names of the skills in the given ID set, in skill
// table order.
func (r *skillRepository) NamesByIDs(ctx context.Context, ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}

	rows := r.store.Fetch(ctx, store.TableSkills, "", "")
	var names []string
	for _, row := range rows {
		if _, ok := idSet[row.Get("_id")]; ok {
			names = append(names, row.Get("name"))
		}
	}
	return names
}

// AllForResume returns every skill row in the flat resume shape; the
// category field carries the raw category id.
func (r *skillRepository) AllForResume(ctx context.Context) []models.ResumeSkill {
	rows := r.store.Fetch(ctx, store.TableSkills, "", "")

	skills := make([]models.ResumeSkill, 0, len(rows))
	for _, row := range rows {
		skills = append(skills, models.ResumeSkill{
			Name:        row.Get("name"),
			Rating:      floatOrZero(row.Get("rating")),
			Description: row.Get("description"),
			Category:    row.Get("skill_category_id"),
		})
	}
	return skills
}
