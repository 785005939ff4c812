package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/derive"
	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/store"
	"portfolio/internal/testutil"
)

func fixedClock() derive.Clock {
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return fixed }
}

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	dataset := testutil.NewDataset(t)
	dataset.Seed(t)
	return store.New(dataset.Root())
}

func TestProfileRepositoryByUsername(t *testing.T) {
	s := seededStore(t)
	repo := repository.NewProfileRepository(s, fixedClock())

	row, ok := repo.GetByUsername(context.Background(), testutil.Username)
	require.True(t, ok)
	assert.Equal(t, "Sreeragh S", row.Get("full_name"))

	_, ok = repo.GetByUsername(context.Background(), "nobody")
	assert.False(t, ok)
}

func TestProfilesByKindClassification(t *testing.T) {
	s := seededStore(t)
	repo := repository.NewProfileRepository(s, fixedClock())
	ctx := context.Background()

	tests := []struct {
		kind repository.ProfileKind
		keys []string
	}{
		{repository.KindSocial, []string{"linkedin"}},
		{repository.KindProfessional, []string{"linkedin"}},
		{repository.KindCoding, []string{"github", "stack_overflow"}},
		{repository.KindPersonal, []string{"medium"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			profiles := repo.ProfilesByKind(ctx, testutil.Username, tt.kind)
			require.Len(t, profiles, len(tt.keys))
			for _, key := range tt.keys {
				assert.Contains(t, profiles, key)
			}
		})
	}
}

func TestFamilyMembersDeriveAge(t *testing.T) {
	s := seededStore(t)
	repo := repository.NewProfileRepository(s, fixedClock())

	members := repo.FamilyMembers(context.Background(), testutil.Username)
	require.Len(t, members, 2)
	require.NotNil(t, members[0].Age)
	assert.Equal(t, 60, *members[0].Age)
	assert.Equal(t, "Father", members[0].Relationship)
}

func TestEducationSortedMostRecentFirst(t *testing.T) {
	s := seededStore(t)
	repo := repository.NewProfileRepository(s, fixedClock())

	entries := repo.Education(context.Background(), testutil.Username)
	require.Len(t, entries, 2)
	assert.Equal(t, "MTech", entries[0].Degree)
	require.NotNil(t, entries[0].GPA)
	assert.InDelta(t, 8.9, *entries[0].GPA, 0.001)
}

func TestSkillsByUsernameScalesRatingAndResolvesCategory(t *testing.T) {
	s := seededStore(t)
	repo := repository.NewSkillRepository(s)

	skills := repo.ByUsername(context.Background(), testutil.Username)
	require.Len(t, skills, 4)

	byName := make(map[string]models.Skill)
	for _, skill := range skills {
		byName[skill.Name] = skill
	}
	assert.Equal(t, 100, byName["Python"].Level)
	assert.Equal(t, "Programming Languages", byName["Python"].Category)
	assert.Equal(t, 80, byName["Go"].Level)
	assert.Equal(t, "Other", byName["Airflow"].Category)
}

func TestSkillGroupsFallBackToOther(t *testing.T) {
	s := seededStore(t)
	repo := repository.NewSkillRepository(s)

	groups := repo.Groups(context.Background())
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"Programming Languages", "ML Frameworks", "Other"}, names)
}

func TestProjectsByUsername(t *testing.T) {
	s := seededStore(t)
	repo := newProjectRepo(s)

	projects := repo.ByUsername(context.Background(), testutil.Username)
	require.Len(t, projects, 2)

	forecaster := projects[0]
	assert.Equal(t, models.TypeModelBuilding, forecaster.ProjectType)
	assert.Equal(t, models.StatusCompleted, forecaster.Status)
	assert.Equal(t, "1 year 2 months", forecaster.Duration)
	require.NotNil(t, forecaster.Company)
	assert.Equal(t, "Air India", forecaster.Company.Name)

	site := projects[1]
	assert.Nil(t, site.Company)
	assert.NotEmpty(t, site.Duration)
}

func TestProjectByIDJoinsChildren(t *testing.T) {
	s := seededStore(t)
	repo := newProjectRepo(s)
	ctx := context.Background()

	project, ok := repo.ByID(ctx, testutil.Username, "proj_001")
	require.True(t, ok)
	require.Len(t, project.MLModels, 1)
	assert.Equal(t, "Demand LSTM", project.MLModels[0].Name)
	require.Len(t, project.Skills, 2)
	require.Len(t, project.Achievements, 1)
	assert.Equal(t, "Shipped to production", project.Achievements[0].Title)

	_, ok = repo.ByID(ctx, testutil.Username, "proj_999")
	assert.False(t, ok)

	_, ok = repo.ByID(ctx, "nobody", "proj_001")
	assert.False(t, ok)
}

func TestAchievementByID(t *testing.T) {
	s := seededStore(t)
	repo := repository.NewAchievementRepository(s)

	achievement, ok := repo.ByID(context.Background(), "ach_001")
	require.True(t, ok)
	assert.Equal(t, "Shipped to production", achievement.Title)
	assert.NotEmpty(t, achievement.Description)

	_, ok = repo.ByID(context.Background(), "ach_999")
	assert.False(t, ok)
}

func TestMLModelByIDJoinsChildTables(t *testing.T) {
	s := seededStore(t)
	repo := repository.NewMLModelRepository(s)

	model, ok := repo.ByID(context.Background(), "model_001")
	require.True(t, ok)
	assert.InDelta(t, 0.91, model.Accuracy, 0.001)
	require.Len(t, model.EvaluationMetrics, 1)
	assert.Equal(t, "rmse", model.EvaluationMetrics[0].MetricName)
	require.Len(t, model.UseCases, 1)
	require.Len(t, model.TrainingParameters, 1)
}

func TestWorkExperienceNormalizesAndSorts(t *testing.T) {
	s := seededStore(t)
	repo := repository.NewWorkExperienceRepository(s)

	experiences := repo.ByUsername(context.Background(), testutil.Username)
	require.Len(t, experiences, 2)

	current := experiences[0]
	assert.Equal(t, "Air India", current.Company)
	assert.Empty(t, current.EndDate)
	require.Len(t, current.References, 1)
	assert.Equal(t, "Manager Name", current.References[0].Name)

	previous := experiences[1]
	assert.Equal(t, "NeST Digital", previous.Company)
	assert.Equal(t, "2023-12", previous.EndDate)
	assert.Empty(t, previous.References)
}

func TestCompanyByID(t *testing.T) {
	s := seededStore(t)
	repo := repository.NewWorkExperienceRepository(s)
	ctx := context.Background()

	company, ok := repo.CompanyByID(ctx, testutil.Username, "work_exp_002")
	require.True(t, ok)
	assert.Equal(t, "NeST Digital", company.Name)
	assert.Equal(t, "Thiruvananthapuram", company.Location)

	_, ok = repo.CompanyByID(ctx, testutil.Username, "work_exp_999")
	assert.False(t, ok)
}

func TestCertificationsJoinSkillNames(t *testing.T) {
	s := seededStore(t)
	repo := repository.NewCertificationRepository(s, repository.NewSkillRepository(s))

	certifications := repo.ByUsername(context.Background(), testutil.Username)
	require.Len(t, certifications, 1)
	assert.Equal(t, "AWS ML Specialty", certifications[0].Name)
	assert.Equal(t, []string{"Python", "PyTorch"}, certifications[0].Skills)
}

func TestServicesSkipInvalidRows(t *testing.T) {
	s := seededStore(t)
	repo := repository.NewServiceRepository(s)
	ctx := context.Background()

	services := repo.All(ctx)
	require.Len(t, services, 2)
	assert.Equal(t, []string{"Scoping", "Modeling", "Deployment"}, services[0].Features)

	service, ok := repo.ByID(ctx, 2)
	require.True(t, ok)
	assert.Equal(t, "Backend Development", service.Title)

	_, ok = repo.ByID(ctx, 3)
	assert.False(t, ok)

	aiml := repo.ByCategory(ctx, "AI/ML")
	require.Len(t, aiml, 1)
	assert.Equal(t, "ML Consulting", aiml[0].Title)
}

func newProjectRepo(s *store.Store) repository.ProjectRepository {
	skills := repository.NewSkillRepository(s)
	return repository.NewProjectRepository(
		s,
		skills,
		repository.NewMLModelRepository(s),
		repository.NewAchievementRepository(s),
		repository.NewWorkExperienceRepository(s),
		fixedClock(),
	)
}
