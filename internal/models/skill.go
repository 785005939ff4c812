package models

// SkillCategoryBase is the baseline category record.
type SkillCategoryBase struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SkillBase is the baseline skill record used inside project detail views.
type SkillBase struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// Skill is a skill with its resolved category, as served on the skills page.
// Level is the 1-5 rating rescaled to 0-100.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

// RatedSkill is the about-page representation that keeps the raw rating.
type RatedSkill struct {
	Name     string  `json:"name"`
	Rating   float64 `json:"rating"`
	Category string  `json:"category"`
}

// SkillGroup is a category with every skill that resolved into it.
type SkillGroup struct {
	Name   string       `json:"name"`
	Skills []RatedSkill `json:"skills"`
}

// ResumeSkill is the flat skill shape embedded in resume data.
type ResumeSkill struct {
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}
