package models

// Per-page welcome texts. The frontend keys page chrome off these values.
const (
	WelcomeHome           = "who_am_i?"
	WelcomeAbout          = "curious_about_me?"
	WelcomeSkills         = "what_can_i_do?"
	WelcomeProjects       = "what_have_i_built?"
	WelcomeCertifications = "proof_of_skills?"
	WelcomeTimeline       = "where_did_i_start?"
)

// PageRequest is the shared POST body for every page endpoint.
type PageRequest struct {
	Username string `json:"username"`
}

// HomePage is the home endpoint response.
type HomePage struct {
	Success          bool              `json:"success"`
	Message          string            `json:"message"`
	Status           string            `json:"status"`
	Version          string            `json:"version"`
	Endpoints        map[string]string `json:"endpoints"`
	PersonalData     PersonalData      `json:"personal_data"`
	PageWelcomeTexts string            `json:"page_welcome_texts"`
}

// AboutPage is the about endpoint response.
type AboutPage struct {
	PersonalInfo  PersonalInfo   `json:"personal_info"`
	FamilyInfo    FamilyInfo     `json:"family_info"`
	Hobbies       []string       `json:"hobbies"`
	Skills        []SkillGroup   `json:"skills"`
	FamilyMembers []FamilyMember `json:"family_members,omitempty"`
	WelcomeText   string         `json:"welcome_text"`
}

// SkillsPage is the skills endpoint response.
type SkillsPage struct {
	Skills      []Skill `json:"skills"`
	WelcomeText string  `json:"welcome_text"`
}

// ProjectsPage is the projects endpoint response.
type ProjectsPage struct {
	Projects    []ProjectBase `json:"projects"`
	WelcomeText string        `json:"welcome_text"`
}

// ProjectDetail is the project detail endpoint response.
type ProjectDetail struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Project Project `json:"project"`
}

// CertificationsPage is the certifications endpoint response.
type CertificationsPage struct {
	Certifications []Certification `json:"certifications"`
	WelcomeText    string          `json:"welcome_text"`
}

// TimelinePage is the timeline endpoint response.
type TimelinePage struct {
	Experiences []Experience `json:"experiences"`
	Education   []Education  `json:"education"`
	WelcomeText string       `json:"welcome_text"`
}

// ServicesPage is the services endpoint response.
type ServicesPage struct {
	Services      []OfferedService `json:"services"`
	Categories    []string         `json:"categories"`
	TotalServices int              `json:"total_services"`
}

// ServiceDetail is the service detail endpoint response.
type ServiceDetail struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Service OfferedService `json:"service"`
}

// ResumeData is the full resume composition.
type ResumeData struct {
	PersonalInfo   map[string]any        `json:"personal_info"`
	Education      []Education           `json:"education"`
	WorkExperience []ResumeExperience    `json:"work_experience"`
	Projects       []ResumeProject       `json:"projects"`
	Skills         []ResumeSkill         `json:"skills"`
	Certifications []ResumeCertification `json:"certifications"`
}

// ResumeProject is the flat project shape embedded in resume data.
type ResumeProject struct {
	Title              string   `json:"title"`
	ShortDescription   string   `json:"short_description"`
	LongDescription    string   `json:"long_description"`
	ProjectType        string   `json:"project_type"`
	Status             string   `json:"status"`
	StartDate          string   `json:"start_date"`
	EndDate            string   `json:"end_date,omitempty"`
	Role               string   `json:"role"`
	Company            string   `json:"company,omitempty"`
	GithubURL          string   `json:"github_url,omitempty"`
	LiveURL            string   `json:"live_url,omitempty"`
	HostingPlatform    string   `json:"hosting_platform,omitempty"`
	CICDPipeline       string   `json:"cicd_pipeline,omitempty"`
	MonitoringTracking string   `json:"monitoring_tracking,omitempty"`
	Skills             []string `json:"skills"`
}

// ResumePage is the resume endpoint response.
type ResumePage struct {
	Success    bool       `json:"success"`
	Message    string     `json:"message"`
	ResumeData ResumeData `json:"resume_data"`
}
