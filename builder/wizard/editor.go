package wizard

import (
	"encoding/json"
	"time"

	"github.com/vitaehq/vitae/builder/resume"
)

// Entry is implemented by every section entry type
type Entry[T any] interface {
	Validate() error
	EntryID() resume.EntryID
	WithID(resume.EntryID) T
}

// Add validates and appends an entry with a fresh pending identifier.
// On a validation failure the list is returned unchanged.
func Add[T Entry[T]](entries []T, entry T) ([]T, error) {
	if err := entry.Validate(); err != nil {
		return entries, err
	}
	out := append([]T(nil), entries...)
	return append(out, entry.WithID(resume.NewPendingEntryID())), nil
}

// Edit validates and replaces the entry at index, preserving its
// existing identifier
func Edit[T Entry[T]](entries []T, index int, entry T) ([]T, error) {
	if index < 0 || index >= len(entries) {
		return entries, ErrEntryIndexOutOfRange().
			WithDetail("index", index).
			WithDetail("length", len(entries))
	}
	if err := entry.Validate(); err != nil {
		return entries, err
	}
	out := append([]T(nil), entries...)
	out[index] = entry.WithID(entries[index].EntryID())
	return out, nil
}

// Delete removes the entry at index unconditionally
func Delete[T Entry[T]](entries []T, index int) ([]T, error) {
	if index < 0 || index >= len(entries) {
		return entries, ErrEntryIndexOutOfRange().
			WithDetail("index", index).
			WithDetail("length", len(entries))
	}
	out := append([]T(nil), entries[:index]...)
	return append(out, entries[index+1:]...), nil
}

// RemoveByID filters out the entry whose identifier matches. Used by
// the skills editor, which removes by identifier rather than position.
// The id is matched in wire form, so negative values address pending
// entries.
func RemoveByID[T Entry[T]](entries []T, id int64) []T {
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		wire := e.EntryID().Int64()
		if e.EntryID().IsPending() {
			wire = -wire
		}
		if wire == id {
			continue
		}
		out = append(out, e)
	}
	return out
}

// AddEntry decodes and appends one entry to the named section of the
// draft. The experience editor clears the end year of an ongoing job
// before validation.
func (s *Session) AddEntry(section string, raw json.RawMessage) error {
	var err error
	switch section {
	case resume.SectionEducations:
		var e resume.Education
		if err = json.Unmarshal(raw, &e); err != nil {
			return resume.ErrInvalidResumeData().WithDetail("section", section)
		}
		s.Document.Educations, err = Add(s.Document.Educations, e)
	case resume.SectionExperiences:
		var e resume.Experience
		if err = json.Unmarshal(raw, &e); err != nil {
			return resume.ErrInvalidResumeData().WithDetail("section", section)
		}
		s.Document.Experiences, err = Add(s.Document.Experiences, e.Normalize())
	case resume.SectionSkills:
		var e resume.Skill
		if err = json.Unmarshal(raw, &e); err != nil {
			return resume.ErrInvalidResumeData().WithDetail("section", section)
		}
		s.Document.Skills, err = Add(s.Document.Skills, e)
	case resume.SectionCertifications:
		var e resume.Certification
		if err = json.Unmarshal(raw, &e); err != nil {
			return resume.ErrInvalidResumeData().WithDetail("section", section)
		}
		s.Document.Certifications, err = Add(s.Document.Certifications, e)
	case resume.SectionAwards:
		var e resume.Award
		if err = json.Unmarshal(raw, &e); err != nil {
			return resume.ErrInvalidResumeData().WithDetail("section", section)
		}
		s.Document.Awards, err = Add(s.Document.Awards, e)
	case resume.SectionProjects:
		var e resume.Project
		if err = json.Unmarshal(raw, &e); err != nil {
			return resume.ErrInvalidResumeData().WithDetail("section", section)
		}
		s.Document.Projects, err = Add(s.Document.Projects, e)
	default:
		return resume.ErrUnknownSection().WithDetail("section", section)
	}
	if err != nil {
		return err
	}
	s.UpdatedAt = time.Now()
	return nil
}

// EditEntry decodes and replaces the entry at index in the named section
func (s *Session) EditEntry(section string, index int, raw json.RawMessage) error {
	var err error
	switch section {
	case resume.SectionEducations:
		var e resume.Education
		if err = json.Unmarshal(raw, &e); err != nil {
			return resume.ErrInvalidResumeData().WithDetail("section", section)
		}
		s.Document.Educations, err = Edit(s.Document.Educations, index, e)
	case resume.SectionExperiences:
		var e resume.Experience
		if err = json.Unmarshal(raw, &e); err != nil {
			return resume.ErrInvalidResumeData().WithDetail("section", section)
		}
		s.Document.Experiences, err = Edit(s.Document.Experiences, index, e.Normalize())
	case resume.SectionSkills:
		var e resume.Skill
		if err = json.Unmarshal(raw, &e); err != nil {
			return resume.ErrInvalidResumeData().WithDetail("section", section)
		}
		s.Document.Skills, err = Edit(s.Document.Skills, index, e)
	case resume.SectionCertifications:
		var e resume.Certification
		if err = json.Unmarshal(raw, &e); err != nil {
			return resume.ErrInvalidResumeData().WithDetail("section", section)
		}
		s.Document.Certifications, err = Edit(s.Document.Certifications, index, e)
	case resume.SectionAwards:
		var e resume.Award
		if err = json.Unmarshal(raw, &e); err != nil {
			return resume.ErrInvalidResumeData().WithDetail("section", section)
		}
		s.Document.Awards, err = Edit(s.Document.Awards, index, e)
	case resume.SectionProjects:
		var e resume.Project
		if err = json.Unmarshal(raw, &e); err != nil {
			return resume.ErrInvalidResumeData().WithDetail("section", section)
		}
		s.Document.Projects, err = Edit(s.Document.Projects, index, e)
	default:
		return resume.ErrUnknownSection().WithDetail("section", section)
	}
	if err != nil {
		return err
	}
	s.UpdatedAt = time.Now()
	return nil
}

// DeleteEntry removes the entry at index from the named section
func (s *Session) DeleteEntry(section string, index int) error {
	var err error
	switch section {
	case resume.SectionEducations:
		s.Document.Educations, err = Delete(s.Document.Educations, index)
	case resume.SectionExperiences:
		s.Document.Experiences, err = Delete(s.Document.Experiences, index)
	case resume.SectionSkills:
		s.Document.Skills, err = Delete(s.Document.Skills, index)
	case resume.SectionCertifications:
		s.Document.Certifications, err = Delete(s.Document.Certifications, index)
	case resume.SectionAwards:
		s.Document.Awards, err = Delete(s.Document.Awards, index)
	case resume.SectionProjects:
		s.Document.Projects, err = Delete(s.Document.Projects, index)
	default:
		return resume.ErrUnknownSection().WithDetail("section", section)
	}
	if err != nil {
		return err
	}
	s.UpdatedAt = time.Now()
	return nil
}

// RemoveSkill drops a skill by identifier
func (s *Session) RemoveSkill(id int64) {
	s.Document.Skills = RemoveByID(s.Document.Skills, id)
	s.UpdatedAt = time.Now()
}
