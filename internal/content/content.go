// Package content holds the text shown in each portfolio section.
package content

import (
	"fmt"
	"net/url"
)

type SkillGroup struct {
	Title  string
	Skills []string
}

// Project is one card in the Projects section. LiveURL stays empty while the
// project is a work in progress.
type Project struct {
	Tag         string
	Title       string
	Description string
	Tech        []string
	RepoURL     string
	LiveURL     string
}

type Link struct {
	Label string
	URL   string
}

type Profile struct {
	Name      string
	Initials  string
	Greeting  string
	Tagline   string
	About     []string
	Skills    []SkillGroup
	Projects  []Project
	Socials   []Link
	Contact   []Link
	ResumeURL string
}

var Default = Profile{
	Name:     "Jalen Chan",
	Initials: "JC",
	Greeting: "Hey there, I'm",
	Tagline:  "Data Science & Information Science Student @ UIUC",
	About: []string{
		`Hi! I'm Jalen Chan, a passionate Data Science and Information Science student at the University of Illinois Urbana-Champaign. I aspire to build a career as either a data scientist or product manager, leveraging my analytical skills and passion for turning data into actionable insights.`,
		`Outside of tech, I'm a Chicago native who loves all Chicago sports (except I do love the Dolphins!). You can also find me weightlifting, running, or in the kitchen making some ice cream with my Ninja Creami.`,
	},
	Skills: []SkillGroup{
		{Title: "Languages", Skills: []string{"Python", "SQL", "HTML/CSS", "TypeScript", "JavaScript", "Java"}},
		{Title: "Developer Tools", Skills: []string{"Power BI", "Git", "Jupyter", "PyCharm", "GitHub", "PostgreSQL", "Databeam", "Excel", "React"}},
		{Title: "Libraries and Frameworks", Skills: []string{"Pandas", "TensorFlow", "Matplotlib", "Plotly", "Scikit-learn", "Seaborn", "NumPy", "Keras"}},
	},
	Projects: []Project{
		{
			Tag:         "PROJECT | WORK IN PROGRESS",
			Title:       "ByteSize | OCR Recipe Suggester",
			Description: `ByteSize is a nutrition tracking app that leverages OCR technology to scan and digitize users' pantry items. By building a comprehensive digital pantry inventory, the app provides personalized recipe recommendations that align with users' specific nutritional goals and available ingredients.`,
			Tech:        []string{"Expo", "React Native", "Node.js", "PostgreSQL", "Supabase"},
			RepoURL:     "https://github.com/jalenchan1/ByteSize",
		},
		{
			Tag:         "BOOTCAMP | WORK IN PROGRESS",
			Title:       "Image Captioning Pipeline using Multimodal ML",
			Description: `This project fine tunes the BLIP vision-language model on the MS COCO dataset to create an automated social media caption generator. Users can upload images and receive AI-generated captions optimized for social media platforms.`,
			Tech:        []string{"TensorFlow", "Keras", "Python", "PyTorch", "React", "FastAPI", "BLIP"},
			RepoURL:     "https://github.com/jalenchan1/Image_Captioning",
		},
	},
	Socials: []Link{
		{Label: "LinkedIn", URL: "https://www.linkedin.com/in/jalenchan1"},
		{Label: "GitHub", URL: "https://www.github.com/jalenchan1"},
		{Label: "Email", URL: "mailto:jalen.chan@gmail.com"},
	},
	Contact: []Link{
		{Label: "Email", URL: "mailto:jalen.chan@gmail.com"},
		{Label: "LinkedIn", URL: "https://www.linkedin.com/in/jalenchan1"},
	},
	ResumeURL: "https://github.com/jalenchan1/Jalen_Chan_Resume/raw/main/Jalen_Chan_Resume_27.pdf",
}

// Validate checks that every link can be handed to the system opener.
func (p Profile) Validate() error {
	check := func(where, raw string) error {
		if raw == "" {
			return nil
		}
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}
		switch u.Scheme {
		case "https":
			if u.Host == "" {
				return fmt.Errorf("%s: missing host in %q", where, raw)
			}
		case "mailto":
			if u.Opaque == "" {
				return fmt.Errorf("%s: missing address in %q", where, raw)
			}
		default:
			return fmt.Errorf("%s: unsupported scheme %q", where, u.Scheme)
		}
		return nil
	}

	if p.ResumeURL == "" {
		return fmt.Errorf("resume: missing url")
	}
	if err := check("resume", p.ResumeURL); err != nil {
		return err
	}
	for _, pr := range p.Projects {
		if err := check(pr.Title, pr.RepoURL); err != nil {
			return err
		}
		if err := check(pr.Title, pr.LiveURL); err != nil {
			return err
		}
	}
	for _, l := range append(append([]Link{}, p.Socials...), p.Contact...) {
		if l.URL == "" {
			return fmt.Errorf("%s: missing url", l.Label)
		}
		if err := check(l.Label, l.URL); err != nil {
			return err
		}
	}
	return nil
}
