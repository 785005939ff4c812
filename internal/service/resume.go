package service

import (
	"context"
	"strings"

	"portfolio/internal/derive"
	"portfolio/internal/models"
	"portfolio/internal/observability"
	"portfolio/internal/repository"
)

// legacyCompanyNames resolves engagement references that predate the work
// experience table carrying company names for every project.
var legacyCompanyNames = map[string]string{
	"work_exp_001": "Air India",
	"work_exp_002": "NeST Digital",
}

// ResumeService assembles the full resume composition.
type ResumeService interface {
	GetResumeData(ctx context.Context, username string) models.ResumeData
}

type resumeService struct {
	profiles       repository.ProfileRepository
	skills         repository.SkillRepository
	projects       repository.ProjectRepository
	workExp        repository.WorkExperienceRepository
	certifications repository.CertificationRepository
	clock          derive.Clock
}

// NewResumeService creates a new resume service.
func NewResumeService(
	profiles repository.ProfileRepository,
	skills repository.SkillRepository,
	projects repository.ProjectRepository,
	workExp repository.WorkExperienceRepository,
	certifications repository.CertificationRepository,
	clock derive.Clock,
) ResumeService {
	return &resumeService{
		profiles:       profiles,
		skills:         skills,
		projects:       projects,
		workExp:        workExp,
		certifications: certifications,
		clock:          clock,
	}
}

func (s *resumeService) GetResumeData(ctx context.Context, username string) models.ResumeData {
	ctx, span := observability.TracePageAggregation(ctx, "resume", username)
	defer span.End()

	education := s.profiles.Education(ctx, username)
	if education == nil {
		education = []models.Education{}
	}

	return models.ResumeData{
		PersonalInfo:   s.personalInfo(ctx, username),
		Education:      education,
		WorkExperience: s.workExperience(ctx, username),
		Projects:       s.resumeProjects(ctx, username),
		Skills:         s.resumeSkills(ctx),
		Certifications: s.resumeCertifications(ctx, username),
	}
}

func (s *resumeService) personalInfo(ctx context.Context, username string) map[string]any {
	row, ok := s.profiles.GetByUsername(ctx, username)
	if !ok {
		return map[string]any{}
	}
	return map[string]any{
		"full_name":                 row.Get("full_name"),
		"email":                     row.Get("email"),
		"designation":               designationFromTagline(row.Get("tagline")),
		"tagline":                   row.Get("tagline"),
		"short_summary":             row.Get("short_summary"),
		"long_descriptive_summary":  row.Get("long_descriptive_summary"),
		"resume_summary":            row.Get("resume_summary"),
		"phone_num":                 row.Get("phone_num"),
		"address":                   composeAddress(row.Get("address_city"), row.Get("address_state"), row.Get("address_country")),
		"dob":                       row.Get("dob"),
		"place_of_birth":            row.Get("place_of_birth"),
		"work_start_date":           row.Get("work_start_date"),
		"total_years_of_experience": derive.YearsOfExperience(row.Get("work_start_date"), s.clock),
	}
}

func (s *resumeService) workExperience(ctx context.Context, username string) []models.ResumeExperience {
	engagements := s.workExp.Engagements(ctx, username)

	experiences := make([]models.ResumeExperience, 0, len(engagements))
	for _, e := range engagements {
		endDate := strings.TrimSpace(e.EndDate)
		if endDate == "" {
			endDate = "Present"
		}
		experiences = append(experiences, models.ResumeExperience{
			CompanyName:     e.CompanyName,
			CompanyLocation: e.Location,
			Designation:     e.Designation,
			StartDate:       e.StartDate,
			EndDate:         endDate,
			CompanyURL:      e.CompanyURL,
		})
	}
	return experiences
}

func (s *resumeService) resumeProjects(ctx context.Context, username string) []models.ResumeProject {
	bases := s.projects.ByUsername(ctx, username)

	projects := make([]models.ResumeProject, 0, len(bases))
	for _, base := range bases {
		detail, ok := s.projects.ByID(ctx, username, base.ID)
		if !ok {
			continue
		}

		skillNames := make([]string, 0, len(detail.Skills))
		for _, skill := range detail.Skills {
			skillNames = append(skillNames, skill.Name)
		}

		projects = append(projects, models.ResumeProject{
			Title:              base.Title,
			ShortDescription:   base.ShortDescription,
			LongDescription:    detail.LongDescription,
			ProjectType:        string(base.ProjectType),
			Status:             string(base.Status),
			StartDate:          base.StartDate,
			EndDate:            base.EndDate,
			Role:               base.Role,
			Company:            s.resolveCompanyName(base),
			GithubURL:          base.GithubURL,
			LiveURL:            base.LiveURL,
			HostingPlatform:    detail.HostingPlatform,
			CICDPipeline:       detail.CICDPipeline,
			MonitoringTracking: detail.MonitoringTracking,
			Skills:             skillNames,
		})
	}
	return projects
}

// resolveCompanyName prefers the joined company block; engagement references
// that no longer resolve fall back to the legacy name table, then pass
// through verbatim.
func (s *resumeService) resolveCompanyName(base models.ProjectBase) string {
	if base.Company != nil {
		return base.Company.Name
	}
	if base.CompanyRef == "" {
		return ""
	}
	if name, ok := legacyCompanyNames[base.CompanyRef]; ok {
		return name
	}
	return base.CompanyRef
}

func (s *resumeService) resumeSkills(ctx context.Context) []models.ResumeSkill {
	skills := s.skills.AllForResume(ctx)
	if skills == nil {
		return []models.ResumeSkill{}
	}
	return skills
}

func (s *resumeService) resumeCertifications(ctx context.Context, username string) []models.ResumeCertification {
	certifications := s.certifications.ByUsername(ctx, username)

	resumeCerts := make([]models.ResumeCertification, 0, len(certifications))
	for _, cert := range certifications {
		resumeCerts = append(resumeCerts, models.ResumeCertification{
			Name:                cert.Name,
			IssuingOrganization: cert.Issuer,
			IssueDate:           cert.IssueDate,
			ExpiryDate:          cert.ExpiryDate,
			CredentialID:        cert.CredentialID,
			CredentialURL:       cert.CredentialURL,
		})
	}
	return resumeCerts
}
