package models

import "strings"

// ProjectType classifies a project. The set is closed; unknown values fall
// back to TypeProject.
type ProjectType string

const (
	TypePOC                  ProjectType = "POC"
	TypeMVP                  ProjectType = "MVP"
	TypeDataAnalysis         ProjectType = "Data Analysis"
	TypeResearch             ProjectType = "Research"
	TypeModelBuilding        ProjectType = "Model Building"
	TypeAlgorithmDevelopment ProjectType = "Algorithm Development"
	TypeConsultation         ProjectType = "Consultation"
	TypeProject              ProjectType = "Project"
)

var projectTypes = []ProjectType{
	TypePOC, TypeMVP, TypeDataAnalysis, TypeResearch, TypeModelBuilding,
	TypeAlgorithmDevelopment, TypeConsultation, TypeProject,
}

// ParseProjectType resolves a raw CSV value: exact match first, then
// case-insensitive, then the historical "Modeling" synonym. Anything else
// becomes TypeProject.
func ParseProjectType(raw string) ProjectType {
	raw = strings.TrimSpace(raw)
	for _, t := range projectTypes {
		if raw == string(t) {
			return t
		}
	}
	for _, t := range projectTypes {
		if strings.EqualFold(raw, string(t)) {
			return t
		}
	}
	if strings.EqualFold(raw, "Modeling") {
		return TypeModelBuilding
	}
	return TypeProject
}

// ProjectStatus tracks delivery state. Unknown values fall back to
// StatusNotStarted.
type ProjectStatus string

const (
	StatusCompleted  ProjectStatus = "Completed"
	StatusOnHold     ProjectStatus = "On Hold"
	StatusInProgress ProjectStatus = "In Progress"
	StatusNotStarted ProjectStatus = "Not Started"
	StatusCancelled  ProjectStatus = "Cancelled"
)

var projectStatuses = []ProjectStatus{
	StatusCompleted, StatusOnHold, StatusInProgress, StatusNotStarted, StatusCancelled,
}

// ParseProjectStatus resolves a raw CSV value with the same exact-then-fold
// fallback as ParseProjectType.
func ParseProjectStatus(raw string) ProjectStatus {
	raw = strings.TrimSpace(raw)
	for _, s := range projectStatuses {
		if raw == string(s) {
			return s
		}
	}
	for _, s := range projectStatuses {
		if strings.EqualFold(raw, string(s)) {
			return s
		}
	}
	return StatusNotStarted
}

// ProjectBase is the list-view project shape. Duration is derived from the
// dates at read time and never stored.
type ProjectBase struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	ShortDescription string        `json:"short_description,omitempty"`
	ProjectType      ProjectType   `json:"project_type"`
	Status           ProjectStatus `json:"status"`
	GithubURL        string        `json:"github_url,omitempty"`
	LiveURL          string        `json:"live_url,omitempty"`
	NotionURL        string        `json:"notion_url,omitempty"`
	StartDate        string        `json:"start_date,omitempty"`
	EndDate          string        `json:"end_date,omitempty"`
	Duration         string        `json:"duration,omitempty"`
	Role             string        `json:"role,omitempty"`
	Company          *CompanyBase  `json:"company,omitempty"`

	// CompanyRef keeps the raw engagement reference for callers that need
	// to resolve names when the join comes up empty. Never serialized.
	CompanyRef string `json:"-"`
}

// Project is the detail-view shape with every joined child collection.
type Project struct {
	ProjectBase
	LongDescription    string            `json:"long_description,omitempty"`
	MLModels           []MLModel         `json:"ml_models,omitempty"`
	Skills             []SkillBase       `json:"skills,omitempty"`
	Achievements       []AchievementBase `json:"achievements,omitempty"`
	HostingPlatform    string            `json:"hosting_platform,omitempty"`
	CICDPipeline       string            `json:"cicd_pipeline,omitempty"`
	MonitoringTracking string            `json:"monitoring_tracking,omitempty"`
}

// AchievementBase is the baseline project achievement record.
type AchievementBase struct {
	ID    string `json:"id"`
	Title string `json:"achievement_title"`
}

// Achievement carries the full description.
type Achievement struct {
	AchievementBase
	Description string `json:"achievement_description"`
}
