// Package models defines the response and domain structures served by the
// portfolio API, along with the shared error taxonomy.
package models

// Profile is a single social or professional profile link.
type Profile struct {
	URL     string `json:"url"`
	Handler string `json:"handler"`
}

// BasicInfo is the condensed identity block served on the home page.
//
// The total_years_of_experiece JSON name is misspelled on the wire and the
// frontend binds to it, so it stays.
type BasicInfo struct {
	FullName             string `json:"full_name"`
	Tagline              string `json:"tagline"`
	ShortSummary         string `json:"short_summary"`
	Designation          string `json:"designation"`
	TotalYearsExperience string `json:"total_years_of_experiece"`
	Email                string `json:"email"`
	ProfileImage         string `json:"profile_image"`
}

// PersonalData groups the basic info with every classified profile bucket.
type PersonalData struct {
	BasicInfo            BasicInfo          `json:"basic_info"`
	SocialProfiles       map[string]Profile `json:"social_profiles"`
	ProfessionalProfiles map[string]Profile `json:"professional_profiles"`
	CodingProfiles       map[string]Profile `json:"coding_profiles"`
	PersonalProfiles     map[string]Profile `json:"personal_profiles"`
}

// PersonalInfo is the full identity block served on the about page.
type PersonalInfo struct {
	FullName               string `json:"full_name"`
	Tagline                string `json:"tagline"`
	ShortSummary           string `json:"short_summary"`
	LongDescriptiveSummary string `json:"long_descriptive_summary"`
	Designation            string `json:"designation"`
	TotalYearsExperience   string `json:"total_years_of_experience"`
	CurrentCompany         string `json:"current_company"`
	AverageTimeInCompany   string `json:"average_time_in_company"`
	Email                  string `json:"email"`
	DOB                    string `json:"dob"`
	PlaceOfBirth           string `json:"place_of_birth"`
	Address                string `json:"address"`
	ProfileImage           string `json:"profile_image,omitempty"`
}

// FamilyInfo carries parent details for the about page.
type FamilyInfo struct {
	FatherName       string `json:"father_name"`
	FatherOccupation string `json:"father_occupation"`
	MotherName       string `json:"mother_name"`
	MotherOccupation string `json:"mother_occupation"`
}

// FamilyMember is an individual family record with a derived age.
type FamilyMember struct {
	Relationship string `json:"relationship"`
	FullName     string `json:"full_name"`
	Occupation   string `json:"occupation"`
	Age          *int   `json:"age,omitempty"`
}
