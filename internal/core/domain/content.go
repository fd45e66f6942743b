package domain

// Service is an advisory offering listed on the site.
type Service struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Details     []string `json:"details"`
}

// Insight is a published article teaser.
type Insight struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Date     string `json:"date"`
	ReadTime string `json:"readTime"`
	Excerpt  string `json:"excerpt"`
	ImageURL string `json:"imageUrl"`
}

// CaseStudy summarises a past engagement.
type CaseStudy struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Industry    string   `json:"industry"`
	Results     []string `json:"results"`
	ImageURL    string   `json:"imageUrl"`
}

// TeamMember is a person shown on the team page.
type TeamMember struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Title     string            `json:"title"`
	Bio       string            `json:"bio"`
	ImageURL  string            `json:"imageUrl"`
	Expertise []string          `json:"expertise"`
	Social    map[string]string `json:"social"`
}

// Content types served by the CMS endpoint.
const (
	ContentServices    = "services"
	ContentInsights    = "insights"
	ContentCaseStudies = "case-studies"
	ContentTeam        = "team"
)
