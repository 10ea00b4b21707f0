package resumeinfra

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/vitaehq/vitae/builder/resume"
	"github.com/vitaehq/vitae/pkg/kernel"
)

type PostgresResumeRepository struct {
	db *sqlx.DB
}

func NewPostgresResumeRepository(db *sqlx.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

// Create inserts a new resume with its sections as JSONB
func (r *PostgresResumeRepository) Create(ctx context.Context, doc *resume.Document) error {
	query := `
		INSERT INTO resumes (
			id, user_id, title,
			personal_info, educations, experiences, skills,
			certifications, awards, projects,
			created_at, updated_at
		) VALUES (
			$1, $2, $3,
			$4, $5, $6, $7,
			$8, $9, $10,
			$11, $12
		)`

	sections, err := marshalSections(doc)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query,
		doc.ID, doc.UserID, doc.Title,
		sections.personalInfo, sections.educations, sections.experiences, sections.skills,
		sections.certifications, sections.awards, sections.projects,
		doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return resume.ErrResumeExists().WithDetail("resume_id", doc.ID)
		}
		return resume.ErrRegistry.NewWithCause(resume.CodeStorageFailure, err).
			WithDetail("resume_id", doc.ID).
			WithDetail("operation", "insert")
	}

	return nil
}

// GetByID retrieves a full document
func (r *PostgresResumeRepository) GetByID(ctx context.Context, id kernel.ResumeID) (*resume.Document, error) {
	query := `
		SELECT
			id, user_id, title,
			personal_info, educations, experiences, skills,
			certifications, awards, projects,
			created_at, updated_at
		FROM resumes
		WHERE id = $1`

	row := &resumeRow{}
	if err := r.db.GetContext(ctx, row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, resume.ErrResumeNotFound().WithDetail("resume_id", id)
		}
		return nil, resume.ErrRegistry.NewWithCause(resume.CodeStorageFailure, err).
			WithDetail("resume_id", id).
			WithDetail("operation", "get")
	}

	return row.ToDomain()
}

// Update replaces the stored title and all sections
func (r *PostgresResumeRepository) Update(ctx context.Context, id kernel.ResumeID, doc *resume.Document) error {
	query := `
		UPDATE resumes SET
			title = $1,
			personal_info = $2,
			educations = $3,
			experiences = $4,
			skills = $5,
			certifications = $6,
			awards = $7,
			projects = $8,
			updated_at = $9
		WHERE id = $10`

	sections, err := marshalSections(doc)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query,
		doc.Title,
		sections.personalInfo, sections.educations, sections.experiences, sections.skills,
		sections.certifications, sections.awards, sections.projects,
		doc.UpdatedAt, id,
	)
	if err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeStorageFailure, err).
			WithDetail("resume_id", id).
			WithDetail("operation", "update")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeStorageFailure, err).
			WithDetail("resume_id", id)
	}
	if rows == 0 {
		return resume.ErrResumeNotFound().WithDetail("resume_id", id)
	}

	return nil
}

// Delete removes a resume
func (r *PostgresResumeRepository) Delete(ctx context.Context, id kernel.ResumeID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeStorageFailure, err).
			WithDetail("resume_id", id).
			WithDetail("operation", "delete")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeStorageFailure, err).
			WithDetail("resume_id", id)
	}
	if rows == 0 {
		return resume.ErrResumeNotFound().WithDetail("resume_id", id)
	}

	return nil
}

// ListByUserID returns summary projections for the dashboard listing
// plus the user's total resume count
func (r *PostgresResumeRepository) ListByUserID(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) ([]resume.Summary, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM resumes WHERE user_id = $1`, userID)
	if err != nil {
		return nil, 0, resume.ErrRegistry.NewWithCause(resume.CodeStorageFailure, err).
			WithDetail("user_id", userID).
			WithDetail("operation", "count")
	}

	query := `
		SELECT id, title, created_at, updated_at
		FROM resumes
		WHERE user_id = $1
		ORDER BY updated_at DESC
		LIMIT $2 OFFSET $3`

	summaries := []resume.Summary{}
	err = r.db.SelectContext(ctx, &summaries, query, userID, pagination.PageSize, pagination.Offset())
	if err != nil {
		return nil, 0, resume.ErrRegistry.NewWithCause(resume.CodeStorageFailure, err).
			WithDetail("user_id", userID).
			WithDetail("operation", "list")
	}

	return summaries, total, nil
}

// sectionBlobs holds the marshalled JSONB column values of one document
type sectionBlobs struct {
	personalInfo   []byte
	educations     []byte
	experiences    []byte
	skills         []byte
	certifications []byte
	awards         []byte
	projects       []byte
}

func marshalSections(doc *resume.Document) (*sectionBlobs, error) {
	blobs := &sectionBlobs{}

	fields := []struct {
		name string
		dst  *[]byte
		src  any
	}{
		{"personal_info", &blobs.personalInfo, doc.PersonalInfo},
		{"educations", &blobs.educations, doc.Educations},
		{"experiences", &blobs.experiences, doc.Experiences},
		{"skills", &blobs.skills, doc.Skills},
		{"certifications", &blobs.certifications, doc.Certifications},
		{"awards", &blobs.awards, doc.Awards},
		{"projects", &blobs.projects, doc.Projects},
	}

	for _, f := range fields {
		data, err := json.Marshal(f.src)
		if err != nil {
			return nil, resume.ErrInvalidResumeData().
				WithDetail("field", f.name).
				WithDetails(map[string]any{
					"error": err.Error(),
				})
		}
		*f.dst = data
	}

	return blobs, nil
}
