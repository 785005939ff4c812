// Package repository resolves the joins between CSV tables into domain
// models. Every lookup is a nested-loop join over string identifiers; any
// failure inside one join yields that join's empty collection and never
// aborts the caller's aggregation.
package repository

import (
	"context"
	"sort"
	"strings"

	"portfolio/internal/derive"
	"portfolio/internal/models"
	"portfolio/internal/store"
)

// ProfileKind selects one of the fixed social-profile buckets.
type ProfileKind string

const (
	KindSocial       ProfileKind = "social"
	KindProfessional ProfileKind = "professional"
	KindCoding       ProfileKind = "coding"
	KindPersonal     ProfileKind = "personal"
)

// platformKinds is the fixed membership table classifying platforms into
// buckets. A platform may belong to more than one bucket.
var platformKinds = map[ProfileKind][]string{
	KindSocial:       {"linkedin", "twitter", "instagram"},
	KindProfessional: {"linkedin", "portfolio website"},
	KindCoding:       {"github", "kaggle", "hackerrank", "hackerearth", "leetcode", "stack overflow", "cs stack exchange", "gate overflow"},
	KindPersonal:     {"medium", "portfolio website", "tripoto", "google map reviewer profile"},
}

// ProfileRepository defines lookups rooted at the personal profile tables.
type ProfileRepository interface {
	GetByUsername(ctx context.Context, username string) (store.Row, bool)
	ProfilesByKind(ctx context.Context, username string, kind ProfileKind) map[string]models.Profile
	FamilyMembers(ctx context.Context, username string) []models.FamilyMember
	Hobbies(ctx context.Context, username string) []string
	Education(ctx context.Context, username string) []models.Education
}

type profileRepository struct {
	store *store.Store
	clock derive.Clock
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(s *store.Store, clock derive.Clock) ProfileRepository {
	return &profileRepository{store: s, clock: clock}
}

func (r *profileRepository) GetByUsername(ctx context.Context, username string) (store.Row, bool) {
	return r.store.FetchOne(ctx, store.TablePersonalProfiles, "_id", username)
}

// ProfilesByKind classifies the user's social links into one of the fixed
// buckets and keys them by normalized platform name (lowercase, spaces to
// underscores). Later rows on the same platform overwrite earlier ones.
func (r *profileRepository) ProfilesByKind(ctx context.Context, username string, kind ProfileKind) map[string]models.Profile {
	members := platformKinds[kind]
	rows := r.store.Fetch(ctx, store.TableSocialProfiles, "personal_profile_id", username)

	profiles := make(map[string]models.Profile)
	for _, row := range rows {
		platform := strings.ToLower(strings.TrimSpace(row.Get("platform")))
		if !contains(members, platform) {
			continue
		}
		key := strings.ReplaceAll(platform, " ", "_")
		profiles[key] = models.Profile{
			URL:     row.Get("url"),
			Handler: row.Get("handler"),
		}
	}
	return profiles
}

func (r *profileRepository) FamilyMembers(ctx context.Context, username string) []models.FamilyMember {
	rows := r.store.Fetch(ctx, store.TableFamilyMembers, "personal_profile_id", username)

	members := make([]models.FamilyMember, 0, len(rows))
	for _, row := range rows {
		members = append(members, models.FamilyMember{
			Relationship: row.Get("relationship"),
			FullName:     row.Get("name"),
			Occupation:   row.Get("occupation"),
			Age:          derive.Age(row.Get("dob"), r.clock),
		})
	}
	return members
}

func (r *profileRepository) Hobbies(ctx context.Context, username string) []string {
	rows := r.store.Fetch(ctx, store.TableHobbies, "personal_profile_id", username)

	hobbies := make([]string, 0, len(rows))
	for _, row := range rows {
		hobbies = append(hobbies, row.Get("hobby"))
	}
	return hobbies
}

// Education returns the user's education entries, most recent first.
func (r *profileRepository) Education(ctx context.Context, username string) []models.Education {
	rows := r.store.Fetch(ctx, store.TableEducation, "personal_profile_id", username)

	entries := make([]models.Education, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.Education{
			ID:             row.Get("_id"),
			Degree:         row.Get("degree"),
			Institution:    row.Get("institution"),
			InstitutionURL: row.Get("institution_url"),
			FieldOfStudy:   row.Get("field_of_study"),
			StartDate:      row.Get("start_date"),
			EndDate:        row.Get("end_date"),
			GPA:            parseFloat(row.Get("gpa")),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartDate > entries[j].StartDate
	})
	return entries
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
