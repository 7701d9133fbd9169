package model

// Go models for the resume document edited during a session. The same shapes
// are described by templates/resume.schema.json used for payload validation.

import "github.com/google/uuid"

// Level is the self-assessed proficiency attached to a skill entry.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
	LevelExpert       Level = "Expert"
)

type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	Summary  string `json:"summary"`
}

type EducationEntry struct {
	ID           string `json:"id"`
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Description  string `json:"description"`
}

type ExperienceEntry struct {
	ID          string   `json:"id"`
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Current     bool     `json:"current"`
	Description string   `json:"description"`
	Bullets     []string `json:"bullets"`
}

type SkillEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level Level  `json:"level"`
}

type ProjectEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Link         string `json:"link"`
}

// Document is one immutable snapshot of the resume being edited. Mutation
// operations in mutate.go return a fresh snapshot and never touch their input.
type Document struct {
	PersonalInfo PersonalInfo      `json:"personalInfo"`
	Education    []EducationEntry  `json:"education"`
	Experience   []ExperienceEntry `json:"experience"`
	Skills       []SkillEntry      `json:"skills"`
	Projects     []ProjectEntry    `json:"projects"`
}

// New returns the empty document a session starts from.
func New() Document {
	return Document{
		Education:  []EducationEntry{},
		Experience: []ExperienceEntry{},
		Skills:     []SkillEntry{},
		Projects:   []ProjectEntry{},
	}
}

// NewEntryID produces a collection entry id. Entries keep their id across
// edits, so it only has to be unique, not ordered.
func NewEntryID() string {
	return uuid.NewString()
}

// Clone deep-copies the document so a mutation can build the next snapshot
// without aliasing slices of the previous one. Empty collections stay empty
// rather than becoming nil, so snapshots marshal as [] and compare equal to
// the documents they were built from.
func (d Document) Clone() Document {
	out := d
	out.Education = append(d.Education[:0:0], d.Education...)
	out.Experience = append(d.Experience[:0:0], d.Experience...)
	for i := range out.Experience {
		out.Experience[i].Bullets = append(d.Experience[i].Bullets[:0:0], d.Experience[i].Bullets...)
	}
	out.Skills = append(d.Skills[:0:0], d.Skills...)
	out.Projects = append(d.Projects[:0:0], d.Projects...)
	return out
}
