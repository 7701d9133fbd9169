package ai

import (
	"context"
	"fmt"
	"strings"
)

// StaticSource generates suggestions from fixed templates, substituting the
// position into each bullet and picking a skill set by position keyword.
// It stands in for the ai-service in local and offline runs.
type StaticSource struct{}

func NewStaticSource() *StaticSource { return &StaticSource{} }

var bulletTemplates = []string{
	"Led cross-functional team to deliver %s projects on time and under budget",
	"Improved %s processes resulting in 20%% efficiency gain",
	"Collaborated with stakeholders to define requirements for %s initiatives",
	"Mentored junior team members in %s best practices",
	"Implemented innovative solutions to complex %s challenges",
}

// skillsByPosition is checked in order so matching stays deterministic when
// a position mentions more than one role.
var skillsByPosition = []struct {
	role   string
	skills []string
}{
	{"Software Engineer", []string{"JavaScript", "React", "Node.js", "TypeScript", "Git"}},
	{"Data Scientist", []string{"Python", "Machine Learning", "SQL", "Data Visualization", "Statistics"}},
	{"Product Manager", []string{"Product Strategy", "User Research", "Agile", "Roadmapping", "Stakeholder Management"}},
	{"Designer", []string{"UI/UX", "Figma", "Adobe Creative Suite", "Wireframing", "Prototyping"}},
	{"Marketing", []string{"Content Strategy", "SEO", "Social Media", "Analytics", "Email Marketing"}},
}

var defaultSkills = []string{"Communication", "Problem Solving", "Teamwork", "Time Management", "Adaptability"}

// GenerateBullets fills the bullet templates with the position.
func (s *StaticSource) GenerateBullets(_ context.Context, position, _ string) ([]string, error) {
	out := make([]string, 0, len(bulletTemplates))
	for _, tpl := range bulletTemplates {
		out = append(out, fmt.Sprintf(tpl, position))
	}
	return out, nil
}

// SuggestSkills matches the position against the known roles, falling back
// to the generic set when nothing matches.
func (s *StaticSource) SuggestSkills(_ context.Context, position string) ([]string, error) {
	lower := strings.ToLower(position)
	for _, entry := range skillsByPosition {
		if strings.Contains(lower, strings.ToLower(entry.role)) {
			return append([]string(nil), entry.skills...), nil
		}
	}
	return append([]string(nil), defaultSkills...), nil
}
