package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfolio/internal/derive"
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/observability"
	"portfolio/internal/repository"
)

// defaultHobbies is served when the user has no hobby rows.
var defaultHobbies = []string{"Coding", "Reading", "Gaming"}

// AboutService assembles the about page.
type AboutService interface {
	GetAboutPage(ctx context.Context, username string) models.AboutPage
}

type aboutService struct {
	profiles repository.ProfileRepository
	skills   repository.SkillRepository
	workExp  repository.WorkExperienceRepository
	clock    derive.Clock
}

// NewAboutService creates a new about service.
func NewAboutService(
	profiles repository.ProfileRepository,
	skills repository.SkillRepository,
	workExp repository.WorkExperienceRepository,
	clock derive.Clock,
) AboutService {
	return &aboutService{profiles: profiles, skills: skills, workExp: workExp, clock: clock}
}

func (s *aboutService) GetAboutPage(ctx context.Context, username string) models.AboutPage {
	ctx, span := observability.TracePageAggregation(ctx, "about", username)
	defer span.End()

	row, ok := s.profiles.GetByUsername(ctx, username)
	if !ok {
		middleware.PageDefaults.WithLabelValues("about").Inc()
		return defaultAboutPage()
	}

	years := derive.YearsOfExperience(row.Get("work_start_date"), s.clock)
	engagements := s.workExp.Engagements(ctx, username)

	hobbies := s.profiles.Hobbies(ctx, username)
	if len(hobbies) == 0 {
		hobbies = defaultHobbies
	}

	return models.AboutPage{
		PersonalInfo: models.PersonalInfo{
			FullName:               row.Get("full_name"),
			Tagline:                row.Get("tagline"),
			ShortSummary:           row.Get("short_summary"),
			LongDescriptiveSummary: row.Get("long_descriptive_summary"),
			Designation:            designationFromTagline(row.Get("tagline")),
			TotalYearsExperience:   fmt.Sprintf("%.1f years", years),
			CurrentCompany:         currentCompany(engagements),
			AverageTimeInCompany:   averageTimeInCompany(engagements, years),
			Email:                  row.Get("email"),
			DOB:                    row.Get("dob"),
			PlaceOfBirth:           row.Get("place_of_birth"),
			Address:                composeAddress(row.Get("address_city"), row.Get("address_state"), row.Get("address_country")),
			ProfileImage:           row.Get("profile_image"),
		},
		FamilyInfo:    s.familyInfo(ctx, username),
		Hobbies:       hobbies,
		Skills:        s.skills.Groups(ctx),
		FamilyMembers: s.profiles.FamilyMembers(ctx, username),
		WelcomeText:   models.WelcomeAbout,
	}
}

func (s *aboutService) familyInfo(ctx context.Context, username string) models.FamilyInfo {
	info := models.FamilyInfo{
		FatherName:       derive.NotSpecified,
		FatherOccupation: derive.NotSpecified,
		MotherName:       derive.NotSpecified,
		MotherOccupation: derive.NotSpecified,
	}
	for _, member := range s.profiles.FamilyMembers(ctx, username) {
		switch strings.ToLower(member.Relationship) {
		case "father":
			info.FatherName = member.FullName
			info.FatherOccupation = member.Occupation
		case "mother":
			info.MotherName = member.FullName
			info.MotherOccupation = member.Occupation
		}
	}
	return info
}

// currentCompany prefers the engagement still marked "Present", then the one
// with the latest end date.
func currentCompany(engagements []repository.Engagement) string {
	if len(engagements) == 0 {
		return derive.NotSpecified
	}
	for _, e := range engagements {
		if strings.EqualFold(strings.TrimSpace(e.EndDate), "Present") {
			return e.CompanyName
		}
	}

	latest := engagements[0]
	var latestEnd time.Time
	for _, e := range engagements {
		end, err := time.Parse("2006-01", strings.TrimSpace(e.EndDate))
		if err != nil {
			continue
		}
		if end.After(latestEnd) {
			latestEnd = end
			latest = e
		}
	}
	return latest.CompanyName
}

// averageTimeInCompany averages the completed engagements; with at most one
// engagement, or none completed, the total experience stands in.
func averageTimeInCompany(engagements []repository.Engagement, totalYears float64) string {
	fallback := fmt.Sprintf("%.1f years", totalYears)
	if len(engagements) <= 1 {
		return fallback
	}

	var completed []derive.Tenure
	for _, e := range engagements {
		if strings.EqualFold(strings.TrimSpace(e.EndDate), "Present") {
			continue
		}
		completed = append(completed, derive.Tenure{Start: e.StartDate, End: e.EndDate})
	}

	avg := derive.AverageTenure(completed)
	if avg == derive.NotSpecified {
		return fallback
	}
	return avg
}

func composeAddress(city, state, country string) string {
	return fmt.Sprintf("%s, %s, %s", city, state, country)
}

func defaultAboutPage() models.AboutPage {
	return models.AboutPage{
		PersonalInfo: models.PersonalInfo{
			FullName:               "Default User",
			Tagline:                "Default Tagline",
			ShortSummary:           "Default summary",
			LongDescriptiveSummary: "Default long description",
			Designation:            "Default Role",
			TotalYearsExperience:   "0 years",
			CurrentCompany:         derive.NotSpecified,
			AverageTimeInCompany:   "0 years",
			Email:                  "default@example.com",
			DOB:                    "1990-01-01",
			PlaceOfBirth:           "Default Location",
			Address:                "Default Address",
		},
		FamilyInfo: models.FamilyInfo{
			FatherName:       derive.NotSpecified,
			FatherOccupation: derive.NotSpecified,
			MotherName:       derive.NotSpecified,
			MotherOccupation: derive.NotSpecified,
		},
		Hobbies:     defaultHobbies,
		Skills:      []models.SkillGroup{},
		WelcomeText: models.WelcomeAbout,
	}
}
