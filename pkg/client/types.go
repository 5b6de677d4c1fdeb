package client

// Wire types for the portfolio API. Ids are strings on the wire.

type Profile struct {
	Name              string `json:"name"`
	Title             string `json:"title"`
	Subtitle          string `json:"subtitle"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Location          string `json:"location"`
	Bio               string `json:"bio"`
	ShortBio          string `json:"shortBio"`
	ProfileImage      string `json:"profileImage"`
	ResumeURL         string `json:"resumeUrl"`
	AvailableForHire  bool   `json:"availableForHire"`
	YearsOfExperience int    `json:"yearsOfExperience"`
	ProjectsCompleted int    `json:"projectsCompleted"`
	HappyClients      int    `json:"happyClients"`
	Theme             string `json:"theme"`
}

type SocialLink struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
	Enabled  bool   `json:"enabled"`
}

type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level"`
	Enabled  bool   `json:"enabled"`
}

type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type WorkExperience struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
	Links        []Link   `json:"links"`
	Enabled      bool     `json:"enabled"`
}

type Project struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Technologies    []string `json:"technologies"`
	ImageURL        string   `json:"imageUrl"`
	VideoURL        string   `json:"videoUrl"`
	GithubURL       string   `json:"githubUrl"`
	LiveURL         string   `json:"liveUrl"`
	Category        string   `json:"category"`
	Featured        bool     `json:"featured"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
	Enabled         bool     `json:"enabled"`
}

type Education struct {
	ID           string   `json:"id"`
	Degree       string   `json:"degree"`
	Institution  string   `json:"institution"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Enabled      bool     `json:"enabled"`
}

type Certification struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	URL          string `json:"url"`
	CredentialID string `json:"credentialId"`
	Enabled      bool   `json:"enabled"`
}

type Testimonial struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Company  string `json:"company"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
	Rating   int    `json:"rating"`
	Enabled  bool   `json:"enabled"`
}

type Service struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
	Enabled     bool     `json:"enabled"`
}

type SectionSettings struct {
	Hero             bool `json:"hero"`
	About            bool `json:"about"`
	Skills           bool `json:"skills"`
	Experience       bool `json:"experience"`
	Projects         bool `json:"projects"`
	PersonalProjects bool `json:"personalProjects"`
	Education        bool `json:"education"`
	Certifications   bool `json:"certifications"`
	Services         bool `json:"services"`
	Testimonials     bool `json:"testimonials"`
	Achievements     bool `json:"achievements"`
	Languages        bool `json:"languages"`
	Interests        bool `json:"interests"`
	Publications     bool `json:"publications"`
	Awards           bool `json:"awards"`
	Volunteer        bool `json:"volunteer"`
	Contact          bool `json:"contact"`
	Timeline         bool `json:"timeline"`
}

// Portfolio is the complete content snapshot.
type Portfolio struct {
	Profile         Profile          `json:"profile"`
	SocialLinks     []SocialLink     `json:"socialLinks"`
	Skills          []Skill          `json:"skills"`
	WorkExperience  []WorkExperience `json:"workExperience"`
	Projects        []Project        `json:"projects"`
	Education       []Education      `json:"education"`
	Certifications  []Certification  `json:"certifications"`
	Testimonials    []Testimonial    `json:"testimonials"`
	Services        []Service        `json:"services"`
	SectionSettings SectionSettings  `json:"sectionSettings"`
}

func enabledOnly[T entity](list []T, on func(T) bool) []T {
	out := make([]T, 0, len(list))
	for _, item := range list {
		if on(item) {
			out = append(out, item)
		}
	}
	return out
}

// Read accessors for renderers: only rows marked enabled.

func (p *Portfolio) EnabledSocialLinks() []SocialLink {
	return enabledOnly(p.SocialLinks, func(l SocialLink) bool { return l.Enabled })
}

func (p *Portfolio) EnabledSkills() []Skill {
	return enabledOnly(p.Skills, func(s Skill) bool { return s.Enabled })
}

func (p *Portfolio) EnabledWorkExperience() []WorkExperience {
	return enabledOnly(p.WorkExperience, func(e WorkExperience) bool { return e.Enabled })
}

func (p *Portfolio) EnabledProjects() []Project {
	return enabledOnly(p.Projects, func(pr Project) bool { return pr.Enabled })
}

// FeaturedProjects keeps only enabled projects flagged as featured.
func (p *Portfolio) FeaturedProjects() []Project {
	return enabledOnly(p.Projects, func(pr Project) bool { return pr.Enabled && pr.Featured })
}

func (p *Portfolio) EnabledEducation() []Education {
	return enabledOnly(p.Education, func(e Education) bool { return e.Enabled })
}

func (p *Portfolio) EnabledCertifications() []Certification {
	return enabledOnly(p.Certifications, func(c Certification) bool { return c.Enabled })
}

func (p *Portfolio) EnabledTestimonials() []Testimonial {
	return enabledOnly(p.Testimonials, func(t Testimonial) bool { return t.Enabled })
}

func (p *Portfolio) EnabledServices() []Service {
	return enabledOnly(p.Services, func(s Service) bool { return s.Enabled })
}

// DefaultPortfolio is what consumers render when the API is unreachable:
// minimal profile, every section visible, no content.
func DefaultPortfolio() *Portfolio {
	return &Portfolio{
		Profile: Profile{
			Name:  "Portfolio",
			Title: "Developer",
			Theme: "professional",
		},
		SocialLinks:    []SocialLink{},
		Skills:         []Skill{},
		WorkExperience: []WorkExperience{},
		Projects:       []Project{},
		Education:      []Education{},
		Certifications: []Certification{},
		Testimonials:   []Testimonial{},
		Services:       []Service{},
		SectionSettings: SectionSettings{
			Hero:             true,
			About:            true,
			Skills:           true,
			Experience:       true,
			Projects:         true,
			PersonalProjects: true,
			Education:        true,
			Certifications:   true,
			Services:         true,
			Testimonials:     true,
			Achievements:     true,
			Languages:        true,
			Interests:        true,
			Publications:     true,
			Awards:           true,
			Volunteer:        true,
			Contact:          true,
			Timeline:         true,
		},
	}
}
