// Package service assembles page responses from the repositories and
// derived metrics. Aggregators never error: a missing profile produces the
// page's documented default placeholder.
package service

import (
	"context"
	"fmt"
	"strings"

	"portfolio/internal/derive"
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/observability"
	"portfolio/internal/repository"
)

// endpoints is the navigable API surface advertised on the home page.
var endpoints = map[string]string{
	"home":           "/",
	"about":          "/about",
	"skills":         "/skills",
	"projects":       "/projects",
	"certifications": "/certifications",
	"timeline":       "/timeline",
	"services":       "/services",
	"resume":         "/resume",
	"health":         "/health",
	"metrics":        "/metrics",
}

// HomeService assembles the home page.
type HomeService interface {
	GetHomePage(ctx context.Context, username string) models.HomePage
}

type homeService struct {
	profiles repository.ProfileRepository
	clock    derive.Clock
	version  string
}

// NewHomeService creates a new home service.
func NewHomeService(profiles repository.ProfileRepository, clock derive.Clock, version string) HomeService {
	return &homeService{profiles: profiles, clock: clock, version: version}
}

func (s *homeService) GetHomePage(ctx context.Context, username string) models.HomePage {
	ctx, span := observability.TracePageAggregation(ctx, "home", username)
	defer span.End()

	return models.HomePage{
		Success:   true,
		Message:   fmt.Sprintf("Hello, %s! Welcome to the Portfolio API.", username),
		Status:    "active",
		Version:   s.version,
		Endpoints: endpoints,
		PersonalData: models.PersonalData{
			BasicInfo:            s.basicInfo(ctx, username),
			SocialProfiles:       s.profiles.ProfilesByKind(ctx, username, repository.KindSocial),
			ProfessionalProfiles: s.profiles.ProfilesByKind(ctx, username, repository.KindProfessional),
			CodingProfiles:       s.profiles.ProfilesByKind(ctx, username, repository.KindCoding),
			PersonalProfiles:     s.profiles.ProfilesByKind(ctx, username, repository.KindPersonal),
		},
		PageWelcomeTexts: models.WelcomeHome,
	}
}

func (s *homeService) basicInfo(ctx context.Context, username string) models.BasicInfo {
	row, ok := s.profiles.GetByUsername(ctx, username)
	if !ok {
		middleware.PageDefaults.WithLabelValues("home").Inc()
		return models.BasicInfo{
			FullName:             "Default User",
			Tagline:              "Default Tagline",
			ShortSummary:         "Default summary",
			Designation:          "Default Role",
			TotalYearsExperience: "0.0",
			Email:                "default@example.com",
			ProfileImage:         "",
		}
	}

	years := derive.YearsOfExperience(row.Get("work_start_date"), s.clock)
	return models.BasicInfo{
		FullName:             row.Get("full_name"),
		Tagline:              row.Get("tagline"),
		ShortSummary:         row.Get("short_summary"),
		Designation:          designationFromTagline(row.Get("tagline")),
		TotalYearsExperience: fmt.Sprintf("%.1f", years),
		Email:                row.Get("email"),
		ProfileImage:         row.Get("profile_image"),
	}
}

// designationFromTagline takes the part of "Role at Company" before the
// " at " separator; taglines without one pass through whole.
func designationFromTagline(tagline string) string {
	if role, _, found := strings.Cut(tagline, " at "); found {
		return role
	}
	return tagline
}
