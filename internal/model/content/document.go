package content

// Profile is the singleton document describing the site owner.
type Profile struct {
	FirstName         string      `json:"firstName" yaml:"firstName"`
	LastName          string      `json:"lastName" yaml:"lastName"`
	Headline          string      `json:"headline,omitempty" yaml:"headline"`
	ShortBio          string      `json:"shortBio,omitempty" yaml:"shortBio"`
	FullBio           string      `json:"fullBio,omitempty" yaml:"fullBio"`
	ProfileImage      string      `json:"profileImage,omitempty" yaml:"profileImage"`
	ResumeURL         string      `json:"resumeUrl,omitempty" yaml:"resumeUrl"`
	Email             string      `json:"email,omitempty" yaml:"email"`
	Phone             string      `json:"phone,omitempty" yaml:"phone"`
	Location          string      `json:"location,omitempty" yaml:"location"`
	Availability      string      `json:"availability,omitempty" yaml:"availability"`
	SocialLinks       SocialLinks `json:"socialLinks" yaml:"socialLinks"`
	YearsOfExperience int         `json:"yearsOfExperience,omitempty" yaml:"yearsOfExperience"`
	HourlyRate        float64     `json:"hourlyRate,omitempty" yaml:"hourlyRate"`
}

// FullName joins the non-empty name parts.
func (p Profile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

type SocialLinks struct {
	GitHub        string `json:"github,omitempty" yaml:"github"`
	LinkedIn      string `json:"linkedin,omitempty" yaml:"linkedin"`
	Twitter       string `json:"twitter,omitempty" yaml:"twitter"`
	Website       string `json:"website,omitempty" yaml:"website"`
	Medium        string `json:"medium,omitempty" yaml:"medium"`
	DevTo         string `json:"devto,omitempty" yaml:"devto"`
	YouTube       string `json:"youtube,omitempty" yaml:"youtube"`
	StackOverflow string `json:"stackoverflow,omitempty" yaml:"stackoverflow"`
}

type Skill struct {
	Name              string `json:"name" yaml:"name"`
	Category          string `json:"category,omitempty" yaml:"category"`
	Proficiency       string `json:"proficiency,omitempty" yaml:"proficiency"`
	Percentage        int    `json:"percentage,omitempty" yaml:"percentage"`
	YearsOfExperience int    `json:"yearsOfExperience,omitempty" yaml:"yearsOfExperience"`
	Color             string `json:"color,omitempty" yaml:"color"`
}

type Experience struct {
	Company          string   `json:"company" yaml:"company"`
	Position         string   `json:"position" yaml:"position"`
	EmploymentType   string   `json:"employmentType,omitempty" yaml:"employmentType"`
	Location         string   `json:"location,omitempty" yaml:"location"`
	StartDate        string   `json:"startDate,omitempty" yaml:"startDate"`
	EndDate          string   `json:"endDate,omitempty" yaml:"endDate"`
	Current          bool     `json:"current,omitempty" yaml:"current"`
	Description      string   `json:"description,omitempty" yaml:"description"`
	Responsibilities []string `json:"responsibilities,omitempty" yaml:"responsibilities"`
	Achievements     []string `json:"achievements,omitempty" yaml:"achievements"`
	Technologies     []Skill  `json:"technologies,omitempty" yaml:"technologies"`
}

type Project struct {
	Title        string   `json:"title" yaml:"title"`
	Slug         string   `json:"slug" yaml:"slug"`
	Tagline      string   `json:"tagline,omitempty" yaml:"tagline"`
	Category     string   `json:"category,omitempty" yaml:"category"`
	LiveURL      string   `json:"liveUrl,omitempty" yaml:"liveUrl"`
	GitHubURL    string   `json:"githubUrl,omitempty" yaml:"githubUrl"`
	CoverImage   string   `json:"coverImage,omitempty" yaml:"coverImage"`
	Technologies []Skill  `json:"technologies,omitempty" yaml:"technologies"`
	Featured     bool     `json:"featured,omitempty" yaml:"featured"`
	Achievements []string `json:"achievements,omitempty" yaml:"achievements"`
	Order        int      `json:"order,omitempty" yaml:"order"`
}

type Testimonial struct {
	Name        string `json:"name" yaml:"name"`
	Position    string `json:"position,omitempty" yaml:"position"`
	Company     string `json:"company,omitempty" yaml:"company"`
	Testimonial string `json:"testimonial" yaml:"testimonial"`
	Rating      int    `json:"rating,omitempty" yaml:"rating"`
	Date        string `json:"date,omitempty" yaml:"date"`
	Avatar      string `json:"avatar,omitempty" yaml:"avatar"`
	LinkedInURL string `json:"linkedinUrl,omitempty" yaml:"linkedinUrl"`
}

type Education struct {
	Institution  string   `json:"institution" yaml:"institution"`
	Degree       string   `json:"degree,omitempty" yaml:"degree"`
	FieldOfStudy string   `json:"fieldOfStudy,omitempty" yaml:"fieldOfStudy"`
	StartDate    string   `json:"startDate,omitempty" yaml:"startDate"`
	EndDate      string   `json:"endDate,omitempty" yaml:"endDate"`
	Current      bool     `json:"current,omitempty" yaml:"current"`
	GPA          string   `json:"gpa,omitempty" yaml:"gpa"`
	Description  string   `json:"description,omitempty" yaml:"description"`
	Achievements []string `json:"achievements,omitempty" yaml:"achievements"`
	Website      string   `json:"website,omitempty" yaml:"website"`
}

type Certification struct {
	Name          string  `json:"name" yaml:"name"`
	Issuer        string  `json:"issuer,omitempty" yaml:"issuer"`
	IssueDate     string  `json:"issueDate,omitempty" yaml:"issueDate"`
	ExpiryDate    string  `json:"expiryDate,omitempty" yaml:"expiryDate"`
	CredentialID  string  `json:"credentialId,omitempty" yaml:"credentialId"`
	CredentialURL string  `json:"credentialUrl,omitempty" yaml:"credentialUrl"`
	Description   string  `json:"description,omitempty" yaml:"description"`
	Skills        []Skill `json:"skills,omitempty" yaml:"skills"`
}

type Achievement struct {
	Title       string `json:"title" yaml:"title"`
	Type        string `json:"type,omitempty" yaml:"type"`
	Issuer      string `json:"issuer,omitempty" yaml:"issuer"`
	Date        string `json:"date,omitempty" yaml:"date"`
	Description string `json:"description,omitempty" yaml:"description"`
	Image       string `json:"image,omitempty" yaml:"image"`
	URL         string `json:"url,omitempty" yaml:"url"`
	Featured    bool   `json:"featured,omitempty" yaml:"featured"`
	Order       int    `json:"order,omitempty" yaml:"order"`
}

type Service struct {
	Title            string   `json:"title" yaml:"title"`
	Slug             string   `json:"slug,omitempty" yaml:"slug"`
	ShortDescription string   `json:"shortDescription,omitempty" yaml:"shortDescription"`
	Features         []string `json:"features,omitempty" yaml:"features"`
	Technologies     []Skill  `json:"technologies,omitempty" yaml:"technologies"`
	Deliverables     []string `json:"deliverables,omitempty" yaml:"deliverables"`
	Timeline         string   `json:"timeline,omitempty" yaml:"timeline"`
	Featured         bool     `json:"featured,omitempty" yaml:"featured"`
	Order            int      `json:"order,omitempty" yaml:"order"`
}

type BlogPost struct {
	Title         string   `json:"title" yaml:"title"`
	Slug          string   `json:"slug" yaml:"slug"`
	Excerpt       string   `json:"excerpt,omitempty" yaml:"excerpt"`
	Category      string   `json:"category,omitempty" yaml:"category"`
	Tags          []string `json:"tags,omitempty" yaml:"tags"`
	PublishedAt   string   `json:"publishedAt,omitempty" yaml:"publishedAt"`
	ReadTime      int      `json:"readTime,omitempty" yaml:"readTime"`
	FeaturedImage string   `json:"featuredImage,omitempty" yaml:"featuredImage"`
}

// Document bundles every section; it is the shape of a local content file.
type Document struct {
	Profile        *Profile        `json:"profile" yaml:"profile"`
	Skills         []Skill         `json:"skills" yaml:"skills"`
	Experience     []Experience    `json:"experience" yaml:"experience"`
	Projects       []Project       `json:"projects" yaml:"projects"`
	Testimonials   []Testimonial   `json:"testimonials" yaml:"testimonials"`
	Education      []Education     `json:"education" yaml:"education"`
	Certifications []Certification `json:"certifications" yaml:"certifications"`
	Achievements   []Achievement   `json:"achievements" yaml:"achievements"`
	Services       []Service       `json:"services" yaml:"services"`
	Blog           []BlogPost      `json:"blog" yaml:"blog"`
}
