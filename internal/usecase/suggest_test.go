package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/model"
	"resume-builder/pkg/ai"
)

type fakeSource struct {
	bullets []string
	skills  []string
	err     error
}

func (f *fakeSource) GenerateBullets(context.Context, string, string) ([]string, error) {
	return f.bullets, f.err
}

func (f *fakeSource) SuggestSkills(context.Context, string) ([]string, error) {
	return f.skills, f.err
}

func TestRequestBulletsFallbackOnFailure(t *testing.T) {
	s := NewSuggester(&fakeSource{err: errors.New("service down")}, nil)
	got := s.RequestBullets(context.Background(), "Engineer", "built things")
	assert.Equal(t, []string{"Failed to generate suggestions. Please try again."}, got)

	// an empty result counts as failure too
	s = NewSuggester(&fakeSource{}, nil)
	got = s.RequestBullets(context.Background(), "Engineer", "built things")
	assert.Equal(t, []string{"Failed to generate suggestions. Please try again."}, got)
}

func TestRequestSkillsFallbackOnFailure(t *testing.T) {
	s := NewSuggester(&fakeSource{err: errors.New("service down")}, nil)
	got := s.RequestSkills(context.Background(), "Engineer")
	assert.Equal(t, []string{"Communication", "Problem Solving", "Teamwork"}, got)
}

func TestRequestSkillsPassesThroughSuccess(t *testing.T) {
	s := NewSuggester(&fakeSource{skills: []string{"Go", "SQL"}}, nil)
	got := s.RequestSkills(context.Background(), "Engineer")
	assert.Equal(t, []string{"Go", "SQL"}, got)
}

func TestLatestPosition(t *testing.T) {
	assert.Equal(t, "", LatestPosition(model.New()))

	d := model.AddExperience(model.New())
	d = model.UpdateExperience(d, d.Experience[0].ID, "position", "Staff Engineer")
	d = model.AddExperience(d)
	d = model.UpdateExperience(d, d.Experience[1].ID, "position", "Junior Engineer")
	assert.Equal(t, "Staff Engineer", LatestPosition(d))
}

func TestMergeSkillsDedupesCaseInsensitively(t *testing.T) {
	d := model.AddSkill(model.New())
	d = model.UpdateSkill(d, d.Skills[0].ID, "name", "react")

	merged := MergeSkills(d, []string{"React", "Go", "go", "SQL"})

	names := make([]string, 0, len(merged.Skills))
	for _, s := range merged.Skills {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"react", "Go", "SQL"}, names)

	// merged entries come through the ordinary add path
	for _, s := range merged.Skills {
		assert.NotEmpty(t, s.ID)
		assert.Equal(t, model.LevelIntermediate, s.Level)
	}
	// input snapshot untouched
	require.Len(t, d.Skills, 1)
}

func TestMergeSkillsAllDuplicatesLeavesDocumentUnchanged(t *testing.T) {
	d := model.AddSkill(model.New())
	d = model.UpdateSkill(d, d.Skills[0].ID, "name", "Go")
	assert.Equal(t, d, MergeSkills(d, []string{"GO", "go"}))
}

func TestApplyBulletsOverwrites(t *testing.T) {
	d := model.AddExperience(model.New())
	id := d.Experience[0].ID
	d = model.UpdateExperience(d, id, "bullets", []string{"old one", "old two", "old three"})

	next := ApplyBullets(d, id, []string{"new one", "new two"})
	assert.Equal(t, []string{"new one", "new two"}, next.Experience[0].Bullets)
	// prior bullets are gone, not merged
	assert.NotContains(t, next.Experience[0].Bullets, "old one")
}

func TestApplyBulletsMissingTargetIsNoOp(t *testing.T) {
	d := model.AddExperience(model.New())
	assert.Equal(t, d, ApplyBullets(d, "gone", []string{"x"}))
}

func TestGeneratedBulletsMentionPosition(t *testing.T) {
	d := model.AddExperience(model.New())
	id := d.Experience[0].ID
	d = model.UpdateExperience(d, id, "position", "Engineer")
	d = model.UpdateExperience(d, id, "description", "Built internal tools")

	s := NewSuggester(ai.NewStaticSource(), nil)
	bullets := s.RequestBullets(context.Background(), d.Experience[0].Position, d.Experience[0].Description)
	require.NotEmpty(t, bullets)
	for _, b := range bullets {
		assert.Contains(t, b, "Engineer")
	}

	next := ApplyBullets(d, id, bullets)
	assert.Equal(t, bullets, next.Experience[0].Bullets)
}

func TestSuggestSkillsMatchesKnownRoles(t *testing.T) {
	s := NewSuggester(ai.NewStaticSource(), nil)

	got := s.RequestSkills(context.Background(), "Senior Software Engineer")
	assert.Contains(t, got, "TypeScript")

	got = s.RequestSkills(context.Background(), "Astronaut")
	require.NotEmpty(t, got)
	assert.Contains(t, strings.Join(got, "|"), "Communication")
}
