package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFetchFiltersAndPreservesOrder(t *testing.T) {
	root := t.TempDir()
	writeTable(t, root, "skills/skills.csv",
		"_id,username,name,rating,description,skill_category_id\n"+
			"skill_001,sreeragh,Python,5,Daily driver,cat_001\n"+
			"skill_002,sreeragh,Go,4,,cat_001\n"+
			"skill_003,other,Rust,3,,cat_001\n")

	s := New(root)
	rows := s.Fetch(context.Background(), TableSkills, "username", "sreeragh")

	require.Len(t, rows, 2)
	assert.Equal(t, "Python", rows[0].Get("name"))
	assert.Equal(t, "Go", rows[1].Get("name"))
	assert.Equal(t, []string{"_id", "username", "name", "rating", "description", "skill_category_id"}, rows[0].Columns())
}

func TestFetchNoFilterReturnsAllRows(t *testing.T) {
	root := t.TempDir()
	writeTable(t, root, "skills/skill_categories.csv",
		"_id,name,description\ncat_001,Languages,\ncat_002,Tools,\n")

	s := New(root)
	rows := s.Fetch(context.Background(), TableSkillCategories, "", "")

	require.Len(t, rows, 2)
	assert.Equal(t, "Languages", rows[0].Get("name"))
}

func TestFetchDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, root string)
		table string
	}{
		{
			name:  "missing file",
			setup: func(t *testing.T, root string) {},
			table: TableProjects,
		},
		{
			name: "malformed quoting",
			setup: func(t *testing.T, root string) {
				writeTable(t, root, "projects/projects.csv",
					"_id,username,title\nproj_001,\"broken,sreeragh\n")
			},
			table: TableProjects,
		},
		{
			name:  "unknown table",
			setup: func(t *testing.T, root string) {},
			table: "no_such_table",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			tt.setup(t, root)

			s := New(root)
			rows := s.Fetch(context.Background(), tt.table, "username", "sreeragh")
			assert.Empty(t, rows)
		})
	}
}

func TestFetchShortRowLeavesTrailingColumnsEmpty(t *testing.T) {
	root := t.TempDir()
	writeTable(t, root, "personal/hobbies.csv",
		"_id,personal_profile_id,hobby\nhob_001,prof_001\n")

	s := New(root)
	rows := s.Fetch(context.Background(), TableHobbies, "", "")

	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].Get("hobby"))
	assert.True(t, rows[0].Has("hobby"))
}

func TestFetchOneFirstMatchWins(t *testing.T) {
	root := t.TempDir()
	writeTable(t, root, "personal/personal_profiles.csv",
		"_id,full_name\nprof_001,First Match\nprof_002,Second Match\n")

	s := New(root)
	row, ok := s.FetchOne(context.Background(), TablePersonalProfiles, "", "")
	require.True(t, ok)
	assert.Equal(t, "First Match", row.Get("full_name"))

	_, ok = s.FetchOne(context.Background(), TablePersonalProfiles, "_id", "missing")
	assert.False(t, ok)
}
