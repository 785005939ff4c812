package models

// ServiceCategory is the closed set of offered-service categories.
type ServiceCategory string

const (
	CategoryAIML        ServiceCategory = "AI/ML"
	CategoryDevelopment ServiceCategory = "Development"
	CategoryConsulting  ServiceCategory = "Consulting"
)

// ValidServiceCategory reports whether raw is one of the known categories.
func ValidServiceCategory(raw string) bool {
	switch ServiceCategory(raw) {
	case CategoryAIML, CategoryDevelopment, CategoryConsulting:
		return true
	}
	return false
}

// OfferedService is a single consulting/development offering.
type OfferedService struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    ServiceCategory `json:"category"`
	Email       string          `json:"email"`
	IconName    string          `json:"icon_name"`
	Gradient    string          `json:"gradient"`
	Features    []string        `json:"features"`
}
