package resume

import (
	"strings"
)

// Text renders the resume as terminal plain text.
func (r Resume) Text() string {
	var b strings.Builder

	b.WriteString("\n## " + r.Name + " ##\n\n")
	b.WriteString("Contact: " + r.Contact.Phone + " | " + r.Contact.Email + " | " + r.Contact.Location + "\n")
	b.WriteString("\nSummary:\n" + r.Summary + "\n")

	b.WriteString("\n## Experience ##\n")
	for _, exp := range r.Experience {
		b.WriteString("\nTitle: " + exp.Title + "\n")
		b.WriteString("Company: " + exp.Company + " | " + exp.Location + "\n")
		b.WriteString("Period: " + exp.Period + "\n")
		b.WriteString("Responsibilities:\n")
		for _, resp := range exp.Responsibilities {
			b.WriteString("  - " + resp + "\n")
		}
	}

	b.WriteString("\n## Technical Skills ##\n" + strings.Join(r.TechnicalSkills, ", ") + "\n")

	b.WriteString("\n## Education ##\n")
	for _, edu := range r.Education {
		cgpa := edu.CGPA
		if cgpa == "" {
			cgpa = "N/A"
		}
		b.WriteString(edu.Degree + "\n")
		b.WriteString("Institution: " + edu.Institution + " (" + edu.Details + ")\n")
		b.WriteString("CGPA: " + cgpa + "\n")
	}

	b.WriteString("\n## Personal Projects ##\n")
	for _, proj := range r.PersonalProjects {
		b.WriteString("\nProject: " + proj.Name + "\n")
		b.WriteString("Tech: " + proj.TechStack + "\n")
		b.WriteString("Description:\n")
		for _, d := range proj.Description {
			b.WriteString("  - " + d + "\n")
		}
	}

	b.WriteString("\n## Certifications ##\n")
	for _, cert := range r.Certifications {
		b.WriteString("- " + cert.Name)
		if cert.Issuer != "" {
			b.WriteString(" (" + cert.Issuer + ")")
		}
		b.WriteString("\n")
	}

	return b.String()
}
