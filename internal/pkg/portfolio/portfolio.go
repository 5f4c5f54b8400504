// Package portfolio holds the static biographical content of the site:
// skills, projects and work experience, plus the contact submission stub.
// The gallery is the only dynamic subsystem; everything here is fixed data.
package portfolio

// Skill is one entry of the skills section.
type Skill struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Category          string   `json:"category"` // qa, development, tools, soft
	Proficiency       int      `json:"proficiency"`
	YearsOfExperience int      `json:"years_of_experience"`
	Projects          []string `json:"projects,omitempty"`
}

// Project is one portfolio project card.
type Project struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Category     string            `json:"category"` // qa, web, mobile, opensource
	Description  string            `json:"description"`
	Technologies []string          `json:"technologies"`
	Features     []string          `json:"features"`
	Links        map[string]string `json:"links,omitempty"`
	Featured     bool              `json:"featured"`
}

// Experience is one work-history entry, newest first.
type Experience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date,omitempty"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
}

// About is the short bio block at the top of the landing page. The avatar
// is derived from the email, so only the email is configured.
type About struct {
	Name     string `json:"name"`
	Tagline  string `json:"tagline"`
	Email    string `json:"email"`
	Location string `json:"location"`
}

// Content bundles everything the static sections render.
type Content struct {
	About      About
	Skills     []Skill
	Projects   []Project
	Experience []Experience
}

// FilterProjects returns the projects of one category; "all" or an empty
// category returns everything.
func FilterProjects(projects []Project, category string) []Project {
	if category == "" || category == "all" {
		return projects
	}
	filtered := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
