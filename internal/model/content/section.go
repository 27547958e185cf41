package content

import "errors"

// ErrUnknownSection is returned for section names outside the registry.
var ErrUnknownSection = errors.New("unknown section")

// Section names, in the order the page renders them.
const (
	SectionHero           = "hero"
	SectionAbout          = "about"
	SectionSkills         = "skills"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionAchievements   = "achievements"
	SectionServices       = "services"
	SectionTestimonials   = "testimonials"
	SectionBlog           = "blog"
	SectionContact        = "contact"
)

// Section binds a page section to the GROQ query that feeds it.
type Section struct {
	Name   string
	Query  string
	Single bool

	pick func(*Document) any
}

var sections = []Section{
	{
		Name:   SectionHero,
		Single: true,
		Query: `*[_type == "profile"][0]{
  firstName, lastName, headline, shortBio, profileImage, resumeUrl,
  availability, socialLinks, yearsOfExperience
}`,
		pick: func(d *Document) any { return d.Profile },
	},
	{
		Name:   SectionAbout,
		Single: true,
		Query: `*[_type == "profile"][0]{
  firstName, lastName, fullBio, yearsOfExperience, email, phone, location
}`,
		pick: func(d *Document) any { return d.Profile },
	},
	{
		Name: SectionSkills,
		Query: `*[_type == "skill"] | order(category asc, percentage desc){
  name, category, proficiency, percentage, yearsOfExperience, color
}`,
		pick: func(d *Document) any { return d.Skills },
	},
	{
		Name: SectionExperience,
		Query: `*[_type == "experience"] | order(startDate desc){
  company, position, employmentType, location, startDate, endDate, current,
  description, responsibilities, achievements, technologies[]->{name, category}
}`,
		pick: func(d *Document) any { return d.Experience },
	},
	{
		Name: SectionEducation,
		Query: `*[_type == "education"] | order(endDate desc, startDate desc){
  institution, degree, fieldOfStudy, startDate, endDate, current, gpa,
  description, achievements, website
}`,
		pick: func(d *Document) any { return d.Education },
	},
	{
		Name: SectionProjects,
		Query: `*[_type == "project" && featured == true] | order(order asc){
  title, "slug": slug.current, tagline, category, liveUrl, githubUrl,
  coverImage, technologies[]->{name, category, color}, featured, achievements, order
}`,
		pick: func(d *Document) any { return d.Projects },
	},
	{
		Name: SectionCertifications,
		Query: `*[_type == "certification"] | order(issueDate desc){
  name, issuer, issueDate, expiryDate, credentialId, credentialUrl,
  description, skills[]->{name, category}
}`,
		pick: func(d *Document) any { return d.Certifications },
	},
	{
		Name: SectionAchievements,
		Query: `*[_type == "achievement"] | order(featured desc, order asc, date desc){
  title, type, issuer, date, description, image, url, featured, order
}`,
		pick: func(d *Document) any { return d.Achievements },
	},
	{
		Name: SectionServices,
		Query: `*[_type == "service"] | order(order asc, _createdAt desc){
  title, "slug": slug.current, shortDescription, features,
  technologies[]->{name, category}, deliverables, timeline, featured, order
}`,
		pick: func(d *Document) any { return d.Services },
	},
	{
		Name: SectionTestimonials,
		Query: `*[_type == "testimonial" && featured == true] | order(order asc){
  name, position, company, testimonial, rating, date, avatar, linkedinUrl
}`,
		pick: func(d *Document) any { return d.Testimonials },
	},
	{
		Name: SectionBlog,
		Query: `*[_type == "blog"] | order(publishedAt desc)[0...6]{
  title, "slug": slug.current, excerpt, category, tags, publishedAt,
  readTime, featuredImage
}`,
		pick: func(d *Document) any { return d.Blog },
	},
	{
		Name:   SectionContact,
		Single: true,
		Query: `*[_id == "singleton-profile"][0]{
  email, phone, location, socialLinks
}`,
		pick: func(d *Document) any { return d.Profile },
	},
}

// Sections returns the registry in page order.
func Sections() []Section {
	return append([]Section(nil), sections...)
}

// Lookup finds a section by name.
func Lookup(name string) (Section, bool) {
	for _, s := range sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// QueryFor builds the query that feeds the named section.
func QueryFor(name string) (Query, error) {
	s, ok := Lookup(name)
	if !ok {
		return Query{}, ErrUnknownSection
	}
	return Query{Section: s.Name, GROQ: s.Query}, nil
}
