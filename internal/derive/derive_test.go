package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(value string) Clock {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestYearsOfExperience(t *testing.T) {
	tests := []struct {
		name  string
		start string
		now   string
		want  float64
	}{
		{"two years exactly", "2023-06-15", "2025-06-15", 2.0},
		{"half year", "2025-01-01", "2025-07-02", 0.5},
		{"unparseable", "not-a-date", "2025-06-15", 0.0},
		{"empty", "", "2025-06-15", 0.0},
		{"future start clamps to zero", "2026-01-01", "2025-06-15", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, YearsOfExperience(tt.start, fixedClock(tt.now)), 0.001)
		})
	}
}

func TestProjectDuration(t *testing.T) {
	now := fixedClock("2025-06-15")

	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{"no start date", "", "2025-01-01", ""},
		{"bad start date", "soon", "2025-01-01", ""},
		{"bad end date", "2025-01-01", "later", ""},
		{"under a month", "2025-01-01", "2025-01-20", "19 days"},
		{"single day", "2025-01-01", "2025-01-02", "1 day"},
		{"months", "2025-01-01", "2025-06-03", "5 months"},
		{"single month", "2025-01-01", "2025-02-05", "1 month"},
		{"years exactly", "2022-01-01", "2025-01-01", "3 years"},
		{"years with remainder", "2022-01-01", "2025-04-15", "3 years 3 months"},
		{"single year", "2024-01-01", "2025-01-01", "1 year"},
		{"ongoing measures to today", "2025-05-01", "", "45 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProjectDuration(tt.start, tt.end, now))
		})
	}
}

func TestTenureMonths(t *testing.T) {
	tests := []struct {
		name   string
		tenure Tenure
		want   int
		ok     bool
	}{
		{"same year inclusive", Tenure{"2024-01", "2024-06"}, 6, true},
		{"single month", Tenure{"2024-03", "2024-03"}, 1, true},
		{"crosses year", Tenure{"2023-06", "2024-05"}, 12, true},
		{"full year", Tenure{"2023-01", "2024-01"}, 13, true},
		{"ongoing", Tenure{"2023-01", "Present"}, 0, false},
		{"unparseable start", Tenure{"", "2024-01"}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TenureMonths(tt.tenure)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAverageTenure(t *testing.T) {
	tests := []struct {
		name    string
		tenures []Tenure
		want    string
	}{
		{
			"averages to years",
			[]Tenure{{"2023-01", "2023-12"}, {"2022-01", "2023-12"}},
			"1.5 years",
		},
		{
			"stays in months",
			[]Tenure{{"2024-01", "2024-06"}},
			"6 months",
		},
		{
			"ongoing spans excluded",
			[]Tenure{{"2024-01", "2024-06"}, {"2024-01", "Present"}},
			"6 months",
		},
		{"nothing completed", []Tenure{{"2024-01", "Present"}}, "Not specified"},
		{"empty input", nil, "Not specified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AverageTenure(tt.tenures))
		})
	}
}

func TestAge(t *testing.T) {
	now := fixedClock("2025-06-15")

	birthdayPassed := Age("1998-03-10", now)
	require.NotNil(t, birthdayPassed)
	assert.Equal(t, 27, *birthdayPassed)

	birthdayAhead := Age("1998-09-10", now)
	require.NotNil(t, birthdayAhead)
	assert.Equal(t, 26, *birthdayAhead)

	sameDay := Age("1998-06-15", now)
	require.NotNil(t, sameDay)
	assert.Equal(t, 27, *sameDay)

	assert.Nil(t, Age("unknown", now))
}
