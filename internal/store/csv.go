// Package store implements read-only access to the flat CSV tables that back
// the portfolio. Every read is a full scan of one file; there are no indexes
// and no caching at this layer. A missing or malformed file degrades to an
// empty result and is logged here, never surfaced to the caller: "not found"
// and "store unreadable" are intentionally indistinguishable.
package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"portfolio/internal/middleware"
	"portfolio/internal/observability"
)

// Table names understood by the store.
const (
	TablePersonalProfiles       = "personal_profiles"
	TableSocialProfiles         = "social_profiles"
	TableFamilyMembers          = "family_members"
	TableHobbies                = "hobbies"
	TableEducation              = "education"
	TableSkillCategories        = "skill_categories"
	TableSkills                 = "skills"
	TableProjects               = "projects"
	TableProjectSkills          = "project_skills"
	TableProjectMLModels        = "project_ml_models"
	TableProjectAchievements    = "project_achievements"
	TableMLModels               = "ml_models"
	TableMLModelMetrics         = "ml_model_evaluation_metrics"
	TableMLModelUseCases        = "ml_model_use_cases"
	TableMLModelTrainingParams  = "ml_model_training_parameters"
	TableWorkExperience         = "work_experience"
	TableCompanyReferences      = "company_references"
	TableCertifications         = "certifications"
	TableCertificationSkills    = "certification_skills"
	TableServices               = "services"
)

// tableFiles maps logical table names to file paths relative to the data root.
var tableFiles = map[string]string{
	TablePersonalProfiles:      "personal/personal_profiles.csv",
	TableSocialProfiles:        "personal/social_profiles.csv",
	TableFamilyMembers:         "personal/family_members.csv",
	TableHobbies:               "personal/hobbies.csv",
	TableEducation:             "personal/education.csv",
	TableSkillCategories:       "skills/skill_categories.csv",
	TableSkills:                "skills/skills.csv",
	TableProjects:              "projects/projects.csv",
	TableProjectSkills:         "projects/project_skills.csv",
	TableProjectMLModels:       "projects/project_ml_models.csv",
	TableProjectAchievements:   "projects/project_achievements.csv",
	TableMLModels:              "projects/ml_models.csv",
	TableMLModelMetrics:        "projects/ml_model_evaluation_metrics.csv",
	TableMLModelUseCases:       "projects/ml_model_use_cases.csv",
	TableMLModelTrainingParams: "projects/ml_model_training_parameters.csv",
	TableWorkExperience:        "work_experience/work_experience.csv",
	TableCompanyReferences:     "work_experience/company_references.csv",
	TableCertifications:        "certifications/certifications.csv",
	TableCertificationSkills:   "certifications/certification_skills.csv",
	TableServices:              "services/services.csv",
}

// TableFile returns the file path for a table relative to the data root.
func TableFile(table string) (string, bool) {
	rel, ok := tableFiles[table]
	return rel, ok
}

// Row is an ordered field/value mapping for one CSV record. Column order
// follows the file header.
type Row struct {
	columns []string
	values  map[string]string
}

// Get returns the value for the named column, or "" when absent.
func (r Row) Get(col string) string {
	return r.values[col]
}

// Has reports whether the row carries the named column.
func (r Row) Has(col string) bool {
	_, ok := r.values[col]
	return ok
}

// Columns returns the column names in file order.
func (r Row) Columns() []string {
	return r.columns
}

// Store reads the CSV tables under a single data root directory.
type Store struct {
	root string
}

// New returns a Store rooted at the given data directory.
func New(root string) *Store {
	return &Store{root: root}
}

// Root returns the data root directory.
func (s *Store) Root() string {
	return s.root
}

// Fetch scans a table and returns every row matching the equality filter, in
// file order. An empty filterColumn returns all rows. Any failure yields an
// empty slice.
func (s *Store) Fetch(ctx context.Context, table, filterColumn, filterValue string) []Row {
	ctx, span := observability.TraceTableScan(ctx, table)
	defer span.End()

	log := observability.NewTableLogger(table)

	rel, ok := tableFiles[table]
	if !ok {
		log.LogError(ctx, fmt.Errorf("unknown table %q", table))
		middleware.StoreScanErrors.WithLabelValues(table).Inc()
		return nil
	}

	rows, err := s.scan(filepath.Join(s.root, rel), filterColumn, filterValue)
	if err != nil {
		log.LogError(ctx, err)
		middleware.StoreScanErrors.WithLabelValues(table).Inc()
		return nil
	}

	log.LogScan(ctx, len(rows), filterColumn)
	return rows
}

// FetchOne returns the first row matching the filter. First match wins.
func (s *Store) FetchOne(ctx context.Context, table, filterColumn, filterValue string) (Row, bool) {
	rows := s.Fetch(ctx, table, filterColumn, filterValue)
	if len(rows) == 0 {
		return Row{}, false
	}
	return rows[0], true
}

func (s *Store) scan(path, filterColumn, filterValue string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Ragged rows are tolerated; short rows leave trailing columns empty.
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows []Row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		values := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				values[col] = record[i]
			} else {
				values[col] = ""
			}
		}

		if filterColumn != "" && values[filterColumn] != filterValue {
			continue
		}
		rows = append(rows, Row{columns: header, values: values})
	}

	return rows, nil
}
