package resumeinfra

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vitaehq/vitae/builder/resume"
	"github.com/vitaehq/vitae/pkg/kernel"
)

// resumeRow represents a row from the resumes table
type resumeRow struct {
	ID             string    `db:"id"`
	UserID         string    `db:"user_id"`
	Title          string    `db:"title"`
	PersonalInfo   []byte    `db:"personal_info"`
	Educations     []byte    `db:"educations"`
	Experiences    []byte    `db:"experiences"`
	Skills         []byte    `db:"skills"`
	Certifications []byte    `db:"certifications"`
	Awards         []byte    `db:"awards"`
	Projects       []byte    `db:"projects"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// ToDomain converts a resumeRow to a resume.Document
func (r *resumeRow) ToDomain() (*resume.Document, error) {
	doc := &resume.Document{
		ID:        kernel.ResumeID(r.ID),
		UserID:    kernel.UserID(r.UserID),
		Title:     r.Title,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}

	if err := json.Unmarshal(r.PersonalInfo, &doc.PersonalInfo); err != nil {
		return nil, fmt.Errorf("failed to unmarshal personal_info: %w", err)
	}

	if err := json.Unmarshal(r.Educations, &doc.Educations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal educations: %w", err)
	}

	if err := json.Unmarshal(r.Experiences, &doc.Experiences); err != nil {
		return nil, fmt.Errorf("failed to unmarshal experiences: %w", err)
	}

	if err := json.Unmarshal(r.Skills, &doc.Skills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal skills: %w", err)
	}

	if err := json.Unmarshal(r.Certifications, &doc.Certifications); err != nil {
		return nil, fmt.Errorf("failed to unmarshal certifications: %w", err)
	}

	if err := json.Unmarshal(r.Awards, &doc.Awards); err != nil {
		return nil, fmt.Errorf("failed to unmarshal awards: %w", err)
	}

	if err := json.Unmarshal(r.Projects, &doc.Projects); err != nil {
		return nil, fmt.Errorf("failed to unmarshal projects: %w", err)
	}

	return doc, nil
}
