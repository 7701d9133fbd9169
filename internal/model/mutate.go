package model

// Mutation operations over document snapshots. Every operation is
// copy-on-write: it returns the next snapshot and leaves its input intact,
// so a handler can swap the session's document reference atomically.
//
// Operations addressed by entry id fail silently when the id is gone; the
// caller may be acting on a stale render and that must not break the session.

// UpdatePersonalInfo replaces one field of the personal info block.
func UpdatePersonalInfo(d Document, field, value string) Document {
	out := d.Clone()
	switch field {
	case "name":
		out.PersonalInfo.Name = value
	case "email":
		out.PersonalInfo.Email = value
	case "phone":
		out.PersonalInfo.Phone = value
	case "location":
		out.PersonalInfo.Location = value
	case "website":
		out.PersonalInfo.Website = value
	case "summary":
		out.PersonalInfo.Summary = value
	default:
		return d
	}
	return out
}

// AddEducation appends a new empty education entry with a fresh id.
func AddEducation(d Document) Document {
	out := d.Clone()
	out.Education = append(out.Education, EducationEntry{ID: NewEntryID()})
	return out
}

func UpdateEducation(d Document, id, field, value string) Document {
	idx := -1
	for i := range d.Education {
		if d.Education[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return d
	}
	out := d.Clone()
	e := &out.Education[idx]
	switch field {
	case "institution":
		e.Institution = value
	case "degree":
		e.Degree = value
	case "fieldOfStudy":
		e.FieldOfStudy = value
	case "startDate":
		e.StartDate = value
	case "endDate":
		e.EndDate = value
	case "description":
		e.Description = value
	default:
		return d
	}
	return out
}

func RemoveEducation(d Document, id string) Document {
	out := d.Clone()
	kept := out.Education[:0]
	for _, e := range out.Education {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	out.Education = kept
	return out
}

// AddExperience appends a new empty experience entry with a fresh id.
func AddExperience(d Document) Document {
	out := d.Clone()
	out.Experience = append(out.Experience, ExperienceEntry{ID: NewEntryID(), Bullets: []string{}})
	return out
}

// UpdateExperience replaces one field of the entry matching id. Setting
// current to true clears the end date in the same snapshot; the two are one
// transition, never observable half-applied.
func UpdateExperience(d Document, id, field string, value any) Document {
	idx := -1
	for i := range d.Experience {
		if d.Experience[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return d
	}
	out := d.Clone()
	e := &out.Experience[idx]
	switch field {
	case "company":
		s, ok := value.(string)
		if !ok {
			return d
		}
		e.Company = s
	case "position":
		s, ok := value.(string)
		if !ok {
			return d
		}
		e.Position = s
	case "startDate":
		s, ok := value.(string)
		if !ok {
			return d
		}
		e.StartDate = s
	case "endDate":
		s, ok := value.(string)
		if !ok {
			return d
		}
		e.EndDate = s
	case "description":
		s, ok := value.(string)
		if !ok {
			return d
		}
		e.Description = s
	case "current":
		b, ok := value.(bool)
		if !ok {
			return d
		}
		e.Current = b
		if b {
			e.EndDate = ""
		}
	case "bullets":
		bullets, ok := toStringSlice(value)
		if !ok {
			return d
		}
		e.Bullets = bullets
	default:
		return d
	}
	return out
}

func RemoveExperience(d Document, id string) Document {
	out := d.Clone()
	kept := out.Experience[:0]
	for _, e := range out.Experience {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	out.Experience = kept
	return out
}

// AddSkill appends a new empty skill entry; level defaults to Intermediate.
func AddSkill(d Document) Document {
	out := d.Clone()
	out.Skills = append(out.Skills, SkillEntry{ID: NewEntryID(), Level: LevelIntermediate})
	return out
}

func UpdateSkill(d Document, id, field, value string) Document {
	idx := -1
	for i := range d.Skills {
		if d.Skills[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return d
	}
	out := d.Clone()
	switch field {
	case "name":
		out.Skills[idx].Name = value
	case "level":
		out.Skills[idx].Level = Level(value)
	default:
		return d
	}
	return out
}

func RemoveSkill(d Document, id string) Document {
	out := d.Clone()
	kept := out.Skills[:0]
	for _, s := range out.Skills {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	out.Skills = kept
	return out
}

// AddProject appends a new empty project entry with a fresh id.
func AddProject(d Document) Document {
	out := d.Clone()
	out.Projects = append(out.Projects, ProjectEntry{ID: NewEntryID()})
	return out
}

func UpdateProject(d Document, id, field, value string) Document {
	idx := -1
	for i := range d.Projects {
		if d.Projects[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return d
	}
	out := d.Clone()
	p := &out.Projects[idx]
	switch field {
	case "name":
		p.Name = value
	case "description":
		p.Description = value
	case "technologies":
		p.Technologies = value
	case "link":
		p.Link = value
	default:
		return d
	}
	return out
}

func RemoveProject(d Document, id string) Document {
	out := d.Clone()
	kept := out.Projects[:0]
	for _, p := range out.Projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	out.Projects = kept
	return out
}

// AddBullet appends an empty bullet to the experience entry matching id.
// Blank bullets are legal; they exist to be edited in place.
func AddBullet(d Document, id string) Document {
	for _, e := range d.Experience {
		if e.ID == id {
			next := append(append([]string(nil), e.Bullets...), "")
			return UpdateExperience(d, id, "bullets", next)
		}
	}
	return d
}

// UpdateBulletAt replaces the bullet at index. The index is re-checked
// against the current sequence so an edit racing a removal drops silently.
func UpdateBulletAt(d Document, id string, index int, text string) Document {
	for _, e := range d.Experience {
		if e.ID == id {
			if index < 0 || index >= len(e.Bullets) {
				return d
			}
			next := append([]string(nil), e.Bullets...)
			next[index] = text
			return UpdateExperience(d, id, "bullets", next)
		}
	}
	return d
}

// RemoveBulletAt removes the bullet at index, preserving the order of the
// rest. Out-of-range indexes are a no-op.
func RemoveBulletAt(d Document, id string, index int) Document {
	for _, e := range d.Experience {
		if e.ID == id {
			if index < 0 || index >= len(e.Bullets) {
				return d
			}
			next := make([]string, 0, len(e.Bullets)-1)
			next = append(next, e.Bullets[:index]...)
			next = append(next, e.Bullets[index+1:]...)
			return UpdateExperience(d, id, "bullets", next)
		}
	}
	return d
}

// toStringSlice accepts []string directly and []interface{} as produced by
// JSON decoding of handler payloads.
func toStringSlice(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return append([]string(nil), t...), true
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, it := range t {
			s, ok := it.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
