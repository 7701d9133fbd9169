package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"resume-builder/internal/model"
)

// Source is the external suggestion capability. Implementations live in
// pkg/ai; the suggester only relies on the declared shapes.
type Source interface {
	GenerateBullets(ctx context.Context, position, description string) ([]string, error)
	SuggestSkills(ctx context.Context, position string) ([]string, error)
}

// Suggester wraps a Source and converts every failure into a safe fallback
// value at this boundary. Callers never see an error from it.
type Suggester struct {
	source   Source
	cache    *redis.Client
	cacheTTL time.Duration
}

// NewSuggester builds a suggester. cache may be nil; skill suggestions are
// then fetched from the source every time.
func NewSuggester(source Source, cache *redis.Client) *Suggester {
	return &Suggester{source: source, cache: cache, cacheTTL: 24 * time.Hour}
}

// RequestBullets asks the source for achievement bullets. On failure it
// returns the single-element failure message rather than an error.
func (s *Suggester) RequestBullets(ctx context.Context, position, description string) []string {
	out, err := s.source.GenerateBullets(ctx, position, description)
	if err != nil || len(out) == 0 {
		fmt.Printf("suggester: bullet generation failed: %v\n", err)
		return []string{"Failed to generate suggestions. Please try again."}
	}
	return out
}

// RequestSkills asks the source for skill names for a position. On failure
// it returns a small generic set. Results are cached best-effort.
func (s *Suggester) RequestSkills(ctx context.Context, position string) []string {
	key := "suggest:skills:" + strings.ToLower(strings.TrimSpace(position))
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Result(); err == nil {
			var cached []string
			if json.Unmarshal([]byte(raw), &cached) == nil && len(cached) > 0 {
				return cached
			}
		}
	}

	out, err := s.source.SuggestSkills(ctx, position)
	if err != nil || len(out) == 0 {
		fmt.Printf("suggester: skill suggestion failed: %v\n", err)
		return []string{"Communication", "Problem Solving", "Teamwork"}
	}

	if s.cache != nil {
		if raw, err := json.Marshal(out); err == nil {
			if err := s.cache.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
				fmt.Printf("suggester: cache write failed (non-fatal): %v\n", err)
			}
		}
	}
	return out
}

// LatestPosition returns the position of the first experience entry, the
// one skill suggestions are based on. Empty when there is no experience.
func LatestPosition(d model.Document) string {
	if len(d.Experience) == 0 {
		return ""
	}
	return d.Experience[0].Position
}

// MergeSkills appends suggested skill names through the same add path manual
// entries use, dropping any suggestion whose name matches an existing skill
// case-insensitively. Duplicates within the batch collapse to the first.
func MergeSkills(d model.Document, names []string) model.Document {
	existing := make(map[string]struct{}, len(d.Skills))
	for _, s := range d.Skills {
		existing[strings.ToLower(s.Name)] = struct{}{}
	}
	for _, name := range names {
		lower := strings.ToLower(name)
		if _, dup := existing[lower]; dup {
			continue
		}
		existing[lower] = struct{}{}
		d = model.AddSkill(d)
		d = model.UpdateSkill(d, d.Skills[len(d.Skills)-1].ID, "name", name)
	}
	return d
}

// ApplyBullets replaces the target entry's whole bullet sequence with the
// generated one. Prior bullets are stale once regenerated, so this is an
// overwrite, not a merge. A missing target is a no-op; the entry may have
// been removed while the request was in flight.
func ApplyBullets(d model.Document, experienceID string, bullets []string) model.Document {
	return model.UpdateExperience(d, experienceID, "bullets", bullets)
}
