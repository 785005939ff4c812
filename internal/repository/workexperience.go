package repository

import (
	"context"
	"sort"

	"portfolio/internal/models"
	"portfolio/internal/store"
)

// Engagement is one raw work-experience row. EndDate is kept verbatim, so
// "Present" and blank survive for callers that need them.
type Engagement struct {
	ID          string
	CompanyName string
	Location    string
	Designation string
	CompanyURL  string
	StartDate   string
	EndDate     string
	References  []string
}

// WorkExperienceRepository defines lookups over the work experience tables.
type WorkExperienceRepository interface {
	Engagements(ctx context.Context, username string) []Engagement
	ByUsername(ctx context.Context, username string) []models.Experience
	CompanyByID(ctx context.Context, username, companyID string) (*models.Company, bool)
	References(ctx context.Context, username string) []models.CompanyReference
}

type workExperienceRepository struct {
	store *store.Store
}

// NewWorkExperienceRepository creates a new work experience repository.
func NewWorkExperienceRepository(s *store.Store) WorkExperienceRepository {
	return &workExperienceRepository{store: s}
}

// Engagements returns the user's raw work-experience rows in table order.
func (r *workExperienceRepository) Engagements(ctx context.Context, username string) []Engagement {
	rows := r.store.Fetch(ctx, store.TableWorkExperience, "username", username)

	engagements := make([]Engagement, 0, len(rows))
	for _, row := range rows {
		engagements = append(engagements, Engagement{
			ID:          row.Get("_id"),
			CompanyName: row.Get("company_name"),
			Location:    row.Get("company_location"),
			Designation: row.Get("designation"),
			CompanyURL:  row.Get("company_url"),
			StartDate:   row.Get("start_date"),
			EndDate:     row.Get("end_date"),
			References:  splitList(row.Get("references"), ","),
		})
	}
	return engagements
}

// ByUsername returns the user's experiences sorted most recent first, with
// references joined on and ongoing end dates normalized to absent.
func (r *workExperienceRepository) ByUsername(ctx context.Context, username string) []models.Experience {
	references := r.References(ctx, username)
	engagements := r.Engagements(ctx, username)

	experiences := make([]models.Experience, 0, len(engagements))
	for _, e := range engagements {
		experiences = append(experiences, models.Experience{
			ID:         e.ID,
			Title:      e.Designation,
			Company:    e.CompanyName,
			CompanyURL: e.CompanyURL,
			StartDate:  e.StartDate,
			EndDate:    normalizeEndDate(e.EndDate),
			References: filterReferences(references, e.References),
		})
	}
	sort.SliceStable(experiences, func(i, j int) bool {
		return experiences[i].StartDate > experiences[j].StartDate
	})
	return experiences
}

// CompanyByID resolves one engagement, scoped to the username.
func (r *workExperienceRepository) CompanyByID(ctx context.Context, username, companyID string) (*models.Company, bool) {
	for _, e := range r.Engagements(ctx, username) {
		if e.ID != companyID {
			continue
		}
		return &models.Company{
			CompanyBase: models.CompanyBase{
				Name:     e.CompanyName,
				Location: e.Location,
			},
			ID:          e.ID,
			Designation: e.Designation,
			CompanyURL:  e.CompanyURL,
			StartDate:   e.StartDate,
			EndDate:     normalizeEndDate(e.EndDate),
			References:  filterReferences(r.References(ctx, username), e.References),
		}, true
	}
	return nil, false
}

func (r *workExperienceRepository) References(ctx context.Context, username string) []models.CompanyReference {
	rows := r.store.Fetch(ctx, store.TableCompanyReferences, "username", username)

	references := make([]models.CompanyReference, 0, len(rows))
	for _, row := range rows {
		references = append(references, models.CompanyReference{
			ID:           row.Get("_id"),
			Name:         row.Get("reference_name"),
			Designation:  row.Get("designation"),
			Email:        row.Get("email"),
			Phone:        row.Get("phone"),
			LinkedinURL:  row.Get("linkedin_url"),
			Relationship: row.Get("relationship"),
		})
	}
	return references
}

// filterReferences keeps the references whose IDs appear in the engagement's
// reference list.
func filterReferences(all []models.CompanyReference, ids []string) []models.CompanyReference {
	if len(ids) == 0 {
		return nil
	}
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}

	var matched []models.CompanyReference
	for _, ref := range all {
		if _, ok := idSet[ref.ID]; ok {
			matched = append(matched, ref)
		}
	}
	return matched
}
