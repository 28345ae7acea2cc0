package content

import "strings"

// Profile is the site owner's configuration record. It is read-only input
// to rendering; the only rule applied to it is "empty means hidden".
type Profile struct {
	// Name is the display name shown on the page.
	Name string `json:"name" yaml:"name"`

	// AuthorName is the exact spelling used in publication author lists,
	// matched case-sensitively for highlighting. Falls back to Name when
	// empty.
	AuthorName string `json:"author_name" yaml:"author_name"`

	// Title is the academic title or position.
	Title string `json:"title" yaml:"title"`

	// Institute is the affiliation shown under the name.
	Institute string `json:"institute" yaml:"institute"`

	// Email is the contact address, empty to hide.
	Email string `json:"email" yaml:"email"`

	// ResearchAreas lists research interests in display order.
	ResearchAreas []string `json:"research_areas" yaml:"research_areas"`

	// Bio is optional long-form introduction text.
	Bio string `json:"bio" yaml:"bio"`
}

// HighlightName returns the author-list spelling used for highlighting:
// AuthorName when configured, otherwise Name.
func (p *Profile) HighlightName() string {
	if name := strings.TrimSpace(p.AuthorName); name != "" {
		return name
	}
	return strings.TrimSpace(p.Name)
}

// Normalize trims fields and guarantees a non-nil ResearchAreas slice.
func (p Profile) Normalize() Profile {
	p.Name = strings.TrimSpace(p.Name)
	p.AuthorName = strings.TrimSpace(p.AuthorName)
	p.Title = strings.TrimSpace(p.Title)
	p.Institute = strings.TrimSpace(p.Institute)
	p.Email = strings.TrimSpace(p.Email)
	p.Bio = strings.TrimSpace(p.Bio)

	areas := make([]string, 0, len(p.ResearchAreas))
	for _, a := range p.ResearchAreas {
		if a = strings.TrimSpace(a); a != "" {
			areas = append(areas, a)
		}
	}
	p.ResearchAreas = areas

	return p
}

// SocialLinks maps platform names to profile URLs. An empty value means
// the platform is hidden, not an error.
type SocialLinks struct {
	GitHub   string `json:"github" yaml:"github"`
	Scholar  string `json:"scholar" yaml:"scholar"`
	ORCID    string `json:"orcid" yaml:"orcid"`
	LinkedIn string `json:"linkedin" yaml:"linkedin"`
	Twitter  string `json:"twitter" yaml:"twitter"`
	Website  string `json:"website" yaml:"website"`
}

// Visible returns the configured platforms in display order, skipping
// empty entries. The renderer iterates this instead of branching per
// platform.
func (s SocialLinks) Visible() []SocialLink {
	all := []SocialLink{
		{Platform: "github", URL: s.GitHub},
		{Platform: "scholar", URL: s.Scholar},
		{Platform: "orcid", URL: s.ORCID},
		{Platform: "linkedin", URL: s.LinkedIn},
		{Platform: "twitter", URL: s.Twitter},
		{Platform: "website", URL: s.Website},
	}

	visible := make([]SocialLink, 0, len(all))
	for _, link := range all {
		if strings.TrimSpace(link.URL) != "" {
			link.URL = strings.TrimSpace(link.URL)
			visible = append(visible, link)
		}
	}
	return visible
}

// SocialLink is one visible platform entry.
type SocialLink struct {
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
}
