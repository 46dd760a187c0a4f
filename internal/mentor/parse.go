package mentor

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/dreamteacher/internal/aptitude"
	"github.com/abhisek/dreamteacher/internal/llm"
)

// ErrMalformedProfile means the generated JSON could not be used.
var ErrMalformedProfile = errors.New("malformed mentor profile")

type profileOutput struct {
	Name              string           `json:"name"`
	Motto             string           `json:"motto"`
	Subjects          []string         `json:"subjects"`
	Personality       string           `json:"personality"`
	TeachingStyle     string           `json:"teachingStyle"`
	AptitudeQuestions []questionOutput `json:"aptitudeQuestions"`
	InterestTags      []string         `json:"interestTags"`
}

type questionOutput struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// Parse decodes a generated profile. A fenced code block around the
// object is tolerated. Generated quiz questions are checked for shape but
// the fixed aptitude catalog stays authoritative.
func Parse(raw string) (*Profile, error) {
	body := llm.StripCodeFence([]byte(strings.TrimSpace(raw)))

	var out profileOutput
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedProfile, err)
	}
	if err := checkQuestions(out.AptitudeQuestions); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedProfile, err)
	}

	p := &Profile{
		Name:               strings.TrimSpace(out.Name),
		Motto:              strings.TrimSpace(out.Motto),
		Subjects:           cleanList(out.Subjects, maxSubjects),
		Personality:        strings.TrimSpace(out.Personality),
		Avatar:             AvatarPlaceholder,
		TeachingStyle:      strings.TrimSpace(out.TeachingStyle),
		SuggestedInterests: cleanList(out.InterestTags, 0),
	}
	if !p.Valid() {
		return nil, fmt.Errorf("%w: missing required fields", ErrMalformedProfile)
	}
	return p, nil
}

func checkQuestions(qs []questionOutput) error {
	if len(qs) == 0 {
		return nil
	}
	if len(qs) != aptitude.Count() {
		return fmt.Errorf("expected %d aptitude questions, got %d", aptitude.Count(), len(qs))
	}
	for i, q := range qs {
		if strings.TrimSpace(q.Question) == "" {
			return fmt.Errorf("aptitude question %d has no text", i)
		}
		if len(q.Options) != aptitude.OptionCount {
			return fmt.Errorf("aptitude question %d has %d options", i, len(q.Options))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= aptitude.OptionCount {
			return fmt.Errorf("aptitude question %d has correct index %d", i, q.CorrectIndex)
		}
	}
	return nil
}

// cleanList trims entries, drops blanks and duplicates, and caps the
// length when limit > 0.
func cleanList(in []string, limit int) []string {
	var out []string
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
