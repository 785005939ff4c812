package models

// CompanyBase is the minimal company block embedded in project views.
type CompanyBase struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Company is a full work-experience entry. EndDate is empty for the
// ongoing engagement.
type Company struct {
	CompanyBase
	ID          string             `json:"id"`
	Designation string             `json:"designation"`
	CompanyURL  string             `json:"company_url,omitempty"`
	StartDate   string             `json:"start_date"`
	EndDate     string             `json:"end_date,omitempty"`
	References  []CompanyReference `json:"references,omitempty"`
}

// CompanyReference is a contactable reference attached to an engagement.
type CompanyReference struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Designation  string `json:"designation"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	LinkedinURL  string `json:"linkedin_url,omitempty"`
	Relationship string `json:"relationship"`
}

// Experience is the timeline-page engagement shape.
type Experience struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	Company    string             `json:"company"`
	CompanyURL string             `json:"company_url,omitempty"`
	StartDate  string             `json:"start_date"`
	EndDate    string             `json:"end_date,omitempty"`
	References []CompanyReference `json:"references,omitempty"`
}

// ResumeExperience is the flat shape embedded in resume data; it keeps
// "Present" literally rather than normalizing it away.
type ResumeExperience struct {
	CompanyName     string `json:"company_name"`
	CompanyLocation string `json:"company_location"`
	Designation     string `json:"designation"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	CompanyURL      string `json:"company_url,omitempty"`
}
