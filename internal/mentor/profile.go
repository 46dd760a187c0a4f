// Package mentor builds the AI mentor persona a student chats with.
package mentor

import (
	"slices"
	"strings"

	"github.com/abhisek/dreamteacher/internal/gateway"
)

// AvatarPlaceholder is the avatar reference set on every profile.
const AvatarPlaceholder = "/placeholder-user.jpg"

// Profile is a generated mentor persona. It is immutable once chat begins.
type Profile struct {
	Name          string   `json:"name"`
	Motto         string   `json:"motto"`
	Subjects      []string `json:"subjects"`
	Personality   string   `json:"personality"`
	Avatar        string   `json:"avatar"`
	TeachingStyle string   `json:"teachingStyle,omitempty"`

	// SuggestedInterests are interest tags proposed alongside the profile.
	SuggestedInterests []string `json:"interestTags,omitempty"`
}

// Valid reports whether every required field is present.
func (p *Profile) Valid() bool {
	if p == nil {
		return false
	}
	return strings.TrimSpace(p.Name) != "" &&
		strings.TrimSpace(p.Motto) != "" &&
		strings.TrimSpace(p.Personality) != "" &&
		len(p.Subjects) > 0
}

// Clone returns a deep copy of p.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	c.Subjects = slices.Clone(p.Subjects)
	c.SuggestedInterests = slices.Clone(p.SuggestedInterests)
	return &c
}

// Persona returns the fields the gateway renders into the prompt preamble.
func (p *Profile) Persona() gateway.Persona {
	if p == nil {
		return gateway.Persona{}
	}
	return gateway.Persona{
		Name:          p.Name,
		Personality:   p.Personality,
		Subjects:      slices.Clone(p.Subjects),
		Motto:         p.Motto,
		TeachingStyle: p.TeachingStyle,
	}
}

// Default is the profile used whenever generation fails.
func Default() *Profile {
	return &Profile{
		Name:          "Professor Alex",
		Motto:         "The journey of a thousand miles begins with a single step.",
		Subjects:      []string{"General Studies", "Life Skills"},
		Personality:   "Encouraging & Supportive",
		Avatar:        AvatarPlaceholder,
		TeachingStyle: "Breaks big ideas into small steps and celebrates every bit of progress.",
	}
}
