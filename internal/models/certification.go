package models

// Certification is a credential with the skill names it attests, resolved
// through the certification_skills junction.
type Certification struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Issuer        string   `json:"issuer"`
	IssueDate     string   `json:"issue_date"`
	ExpiryDate    string   `json:"expiry_date,omitempty"`
	CredentialID  string   `json:"credential_id,omitempty"`
	CredentialURL string   `json:"credential_url,omitempty"`
	Skills        []string `json:"skills"`
}

// ResumeCertification is the flat certification shape for resume data.
type ResumeCertification struct {
	Name                string `json:"name"`
	IssuingOrganization string `json:"issuing_organization"`
	IssueDate           string `json:"issue_date"`
	ExpiryDate          string `json:"expiry_date,omitempty"`
	CredentialID        string `json:"credential_id,omitempty"`
	CredentialURL       string `json:"credential_url,omitempty"`
}
