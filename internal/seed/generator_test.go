package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/seed"
	"portfolio/internal/store"
)

func TestGeneratorWritesReadableDataset(t *testing.T) {
	root := t.TempDir()
	g := seed.NewGenerator(root, seed.Options{
		Username: "demo",
		Projects: 3,
		Skills:   5,
		Seed:     42,
	})
	require.NoError(t, g.Run())

	s := store.New(root)
	ctx := context.Background()

	profile, ok := s.FetchOne(ctx, store.TablePersonalProfiles, "_id", "demo")
	require.True(t, ok)
	assert.NotEmpty(t, profile.Get("full_name"))
	assert.NotEmpty(t, profile.Get("work_start_date"))

	projects := s.Fetch(ctx, store.TableProjects, "username", "demo")
	assert.Len(t, projects, 3)

	skills := s.Fetch(ctx, store.TableSkills, "username", "demo")
	assert.Len(t, skills, 5)

	// Every skill must reference a category that exists.
	categories := map[string]bool{}
	for _, row := range s.Fetch(ctx, store.TableSkillCategories, "", "") {
		categories[row.Get("_id")] = true
	}
	for _, row := range skills {
		assert.True(t, categories[row.Get("skill_category_id")],
			"skill %s references missing category", row.Get("_id"))
	}

	// Junction rows must point at seeded projects.
	projectIDs := map[string]bool{}
	for _, row := range projects {
		projectIDs[row.Get("_id")] = true
	}
	for _, row := range s.Fetch(ctx, store.TableProjectSkills, "", "") {
		assert.True(t, projectIDs[row.Get("project_id")])
	}

	services := s.Fetch(ctx, store.TableServices, "", "")
	assert.Len(t, services, 3)
}

func TestGeneratorDeterministicWithSeed(t *testing.T) {
	ctx := context.Background()

	read := func(root string) string {
		g := seed.NewGenerator(root, seed.Options{Username: "demo", Seed: 7})
		require.NoError(t, g.Run())
		row, ok := store.New(root).FetchOne(ctx, store.TablePersonalProfiles, "_id", "demo")
		require.True(t, ok)
		return row.Get("full_name")
	}

	assert.Equal(t, read(t.TempDir()), read(t.TempDir()))
}

func TestGeneratorCleanRemovesStaleTables(t *testing.T) {
	root := t.TempDir()
	ctx := context.Background()

	first := seed.NewGenerator(root, seed.Options{Username: "old", Seed: 1})
	require.NoError(t, first.Run())

	second := seed.NewGenerator(root, seed.Options{Username: "new", Seed: 2, Clean: true})
	require.NoError(t, second.Run())

	s := store.New(root)
	_, ok := s.FetchOne(ctx, store.TablePersonalProfiles, "_id", "old")
	assert.False(t, ok)
	_, ok = s.FetchOne(ctx, store.TablePersonalProfiles, "_id", "new")
	assert.True(t, ok)
}
