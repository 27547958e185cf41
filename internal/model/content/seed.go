package content

// Seed provides placeholder content so the site renders before a CMS is
// connected.
func Seed() Document {
	return Document{
		Profile: &Profile{
			FirstName:         "John",
			LastName:          "Talsangi",
			Headline:          "Full-Stack Developer",
			ShortBio:          "Experienced developer building web applications with React, Next.js and Node.js.",
			Email:             "john.doe@example.com",
			Phone:             "+1234567890",
			Location:          "New York, USA",
			Availability:      "open",
			YearsOfExperience: 6,
			SocialLinks: SocialLinks{
				GitHub:   "https://github.com/vijay-talsangi",
				LinkedIn: "https://www.linkedin.com/in/vijay-talsangi",
			},
		},
		Skills: []Skill{
			{Name: "JavaScript", Category: "programming-languages", Proficiency: "Advanced", Percentage: 80, YearsOfExperience: 5, Color: "yellow"},
			{Name: "TypeScript", Category: "programming-languages", Proficiency: "Advanced", Percentage: 75, YearsOfExperience: 4, Color: "blue"},
			{Name: "C++", Category: "programming-languages", Proficiency: "Intermediate", Percentage: 75, YearsOfExperience: 3, Color: "purple"},
			{Name: "Java", Category: "programming-languages", Proficiency: "Advanced", Percentage: 80, YearsOfExperience: 4, Color: "red"},
		},
		Projects: []Project{
			{
				Title:     "Project One",
				Slug:      "project-one",
				Tagline:   "An amazing project",
				Category:  "Web Development",
				LiveURL:   "https://example.com",
				GitHubURL: "https://github.com/example/project-one",
				Technologies: []Skill{
					{Name: "Next.js", Category: "framework"},
					{Name: "Tailwind CSS", Category: "css"},
				},
				Featured: true,
				Order:    1,
			},
			{
				Title:     "Project Two",
				Slug:      "project-two",
				Tagline:   "Another great project",
				Category:  "UI/UX Design",
				LiveURL:   "https://example.com",
				GitHubURL: "https://github.com/example/project-two",
				Technologies: []Skill{
					{Name: "Figma", Category: "design"},
					{Name: "Adobe XD", Category: "design"},
				},
				Featured: true,
				Order:    2,
			},
		},
		Achievements: []Achievement{
			{
				Title:       "Best Developer Award",
				Type:        "award",
				Issuer:      "Tech Company",
				Date:        "2022-01-01",
				Description: "Awarded for outstanding performance in software development.",
				URL:         "https://example.com/award",
				Featured:    true,
				Order:       1,
			},
		},
		Blog: []BlogPost{
			{
				Title:       "Understanding React Hooks",
				Slug:        "understanding-react-hooks",
				Excerpt:     "A deep dive into React Hooks and how to use them effectively.",
				Category:    "React",
				Tags:        []string{"React", "Hooks", "JavaScript"},
				PublishedAt: "2022-01-01",
				ReadTime:    5,
			},
		},
	}
}
