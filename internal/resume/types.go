package resume

// Contact holds the contact line of the resume.
type Contact struct {
	Phone    string `yaml:"phone"`
	Email    string `yaml:"email"`
	Location string `yaml:"location"`
}

// Experience is one employment entry.
type Experience struct {
	Title            string   `yaml:"title"`
	Company          string   `yaml:"company"`
	Period           string   `yaml:"period"`
	Location         string   `yaml:"location"`
	Responsibilities []string `yaml:"responsibilities"`
}

// Education is one degree entry. CGPA is optional.
type Education struct {
	Degree      string `yaml:"degree"`
	Institution string `yaml:"institution"`
	Details     string `yaml:"details"`
	CGPA        string `yaml:"cgpa,omitempty"`
}

// Project is a personal project with its description points.
type Project struct {
	Name        string   `yaml:"name"`
	TechStack   string   `yaml:"tech_stack"`
	Description []string `yaml:"description"`
}

// Certification is a certificate name with an optional issuer.
type Certification struct {
	Name   string `yaml:"name"`
	Issuer string `yaml:"issuer,omitempty"`
}

// Resume is the full resume seeded into the virtual filesystem.
type Resume struct {
	Name             string          `yaml:"name"`
	Contact          Contact         `yaml:"contact"`
	Summary          string          `yaml:"summary"`
	Experience       []Experience    `yaml:"experience"`
	TechnicalSkills  []string        `yaml:"technical_skills"`
	Education        []Education     `yaml:"education"`
	PersonalProjects []Project       `yaml:"personal_projects"`
	Certifications   []Certification `yaml:"certifications"`
}
