package content

// CV tables are flat, fully pre-populated configuration records with no
// cross-entity relationships. They need no aggregation, only the standard
// "empty means hidden" handling in the renderer.

// EducationEntry is one degree or program.
type EducationEntry struct {
	Degree      string `json:"degree" yaml:"degree"`
	Institution string `json:"institution" yaml:"institution"`
	Years       string `json:"years" yaml:"years"`
	Description string `json:"description" yaml:"description"`
}

// ExperienceEntry is one position held.
type ExperienceEntry struct {
	Role         string `json:"role" yaml:"role"`
	Organization string `json:"organization" yaml:"organization"`
	Years        string `json:"years" yaml:"years"`
	Description  string `json:"description" yaml:"description"`
}

// SkillEntry is one skill group.
type SkillEntry struct {
	Category string   `json:"category" yaml:"category"`
	Items    []string `json:"items" yaml:"items"`
}

// TeachingEntry is one course taught.
type TeachingEntry struct {
	Course      string `json:"course" yaml:"course"`
	Institution string `json:"institution" yaml:"institution"`
	Term        string `json:"term" yaml:"term"`
	Role        string `json:"role" yaml:"role"`
}
