package models

// Education is a single education entry, sorted most recent first at read
// time. GPA is absent when the source value is blank or unparseable.
type Education struct {
	ID             string   `json:"id"`
	Degree         string   `json:"degree"`
	Institution    string   `json:"institution"`
	InstitutionURL string   `json:"institution_url,omitempty"`
	FieldOfStudy   string   `json:"field_of_study"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	GPA            *float64 `json:"gpa,omitempty"`
}
