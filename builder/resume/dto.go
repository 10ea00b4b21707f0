package resume

import (
	"time"

	"github.com/vitaehq/vitae/pkg/kernel"
)

// Summary is the dashboard listing projection of a resume
type Summary struct {
	ID        kernel.ResumeID `json:"id" db:"id"`
	Title     string          `json:"title" db:"title"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" db:"updated_at"`
}

// SaveResumeRequest carries the full document body for create and update.
// Sections are always replaced wholesale.
type SaveResumeRequest struct {
	Title          string          `json:"title"`
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Educations     []Education     `json:"educations"`
	Experiences    []Experience    `json:"experiences"`
	Skills         []Skill         `json:"skills"`
	Certifications []Certification `json:"certifications"`
	Awards         []Award         `json:"awards"`
	Projects       []Project       `json:"projects"`
}

// ApplyTo copies the request body onto a document, leaving identity and
// timestamps untouched
func (r SaveResumeRequest) ApplyTo(doc *Document) {
	doc.Title = r.Title
	doc.PersonalInfo = r.PersonalInfo
	doc.Educations = orEmpty(r.Educations)
	doc.Experiences = orEmpty(r.Experiences)
	doc.Skills = orEmpty(r.Skills)
	doc.Certifications = orEmpty(r.Certifications)
	doc.Awards = orEmpty(r.Awards)
	doc.Projects = orEmpty(r.Projects)
}

func orEmpty[T any](entries []T) []T {
	if entries == nil {
		return []T{}
	}
	return entries
}

// ListResumesRequest carries the listing parameters
type ListResumesRequest struct {
	UserID     kernel.UserID
	Pagination kernel.PaginationOptions
}
