package guidance

import (
	"slices"
	"strings"
)

type careerRule struct {
	keywords []string
	label    string
	careers  []string
}

var careerRules = []careerRule{
	{[]string{"tech", "code", "coding", "computer", "robot", "artificial"}, "Technology",
		[]string{"Software Engineer", "Data Scientist", "Robotics Engineer"}},
	{[]string{"science", "physic", "chemi", "biolog", "space"}, "Science",
		[]string{"Research Scientist", "Lab Technician", "Astrophysicist"}},
	{[]string{"math", "number", "statist"}, "Mathematics",
		[]string{"Actuary", "Quantitative Analyst", "Statistician"}},
	{[]string{"art", "design", "draw", "paint"}, "Art & Design",
		[]string{"Graphic Designer", "Architect", "Animator"}},
	{[]string{"music", "sing"}, "Music",
		[]string{"Composer", "Sound Engineer", "Music Teacher"}},
	{[]string{"writ", "literat", "read", "journal"}, "Writing",
		[]string{"Journalist", "Author", "Content Strategist"}},
	{[]string{"business", "entrepreneur", "finance", "money"}, "Business",
		[]string{"Entrepreneur", "Financial Analyst", "Product Manager"}},
	{[]string{"health", "medic", "doctor", "care"}, "Health",
		[]string{"Doctor", "Nurse", "Physiotherapist"}},
	{[]string{"sport", "fitness", "athlet"}, "Sports",
		[]string{"Sports Scientist", "Coach", "Physical Therapist"}},
	{[]string{"environment", "nature", "climate", "animal"}, "Environment",
		[]string{"Environmental Scientist", "Conservationist", "Veterinarian"}},
	{[]string{"history", "social", "politic", "law"}, "Society",
		[]string{"Lawyer", "Historian", "Policy Analyst"}},
	{[]string{"game", "gaming"}, "Games",
		[]string{"Game Developer", "Level Designer", "Esports Analyst"}},
}

var defaultCareers = []string{"Teacher", "Project Coordinator", "Consultant"}

// interestCatalog is the fixed list of tags offered on the interests step.
var interestCatalog = []string{
	"Technology",
	"Science",
	"Mathematics",
	"Art & Design",
	"Music",
	"Writing",
	"Business",
	"Healthcare",
	"Sports",
	"Environment",
	"History & Society",
	"Gaming",
}

// Interests returns the interest tags offered to students.
func Interests() []string {
	return slices.Clone(interestCatalog)
}

// InterestOptions merges suggested tags ahead of the fixed catalog,
// dropping case-insensitive duplicates.
func InterestOptions(suggested []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, list := range [][]string{suggested, interestCatalog} {
		for _, tag := range list {
			tag = strings.TrimSpace(tag)
			key := strings.ToLower(tag)
			if tag == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, tag)
		}
	}
	return out
}

// CareersFor returns the career line for an interest tag. Matching is a
// case-insensitive substring test against each rule's keywords.
func CareersFor(interest string) (label string, careers []string) {
	tag := strings.ToLower(interest)
	for _, r := range careerRules {
		for _, k := range r.keywords {
			if strings.Contains(tag, k) {
				return r.label, slices.Clone(r.careers)
			}
		}
	}
	return interest, slices.Clone(defaultCareers)
}

type technique struct {
	keywords []string
	text     string
}

var techniques = []technique{
	{[]string{"visual", "diagram", "video", "picture"},
		"Use mind maps, color-coded notes and diagrams. Sketch a concept before you read about it."},
	{[]string{"hands", "practic", "doing", "experiment"},
		"Learn by building. Pick a small project each week and try every idea out yourself."},
	{[]string{"listen", "audio", "podcast", "discuss"},
		"Explain topics out loud, join study groups and record short voice summaries to replay."},
	{[]string{"read", "writ", "note"},
		"Rewrite notes in your own words and finish each session with a one-paragraph summary."},
}

const defaultTechnique = "Mix short focused sessions with regular review. Try the Pomodoro method: 25 minutes of work, 5 minutes of rest."

// TechniqueFor picks a study technique by substring match on style.
func TechniqueFor(style string) string {
	s := strings.ToLower(style)
	for _, t := range techniques {
		for _, k := range t.keywords {
			if strings.Contains(s, k) {
				return t.text
			}
		}
	}
	return defaultTechnique
}
