package resumesrv

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vitaehq/vitae/builder/resume"
	"github.com/vitaehq/vitae/pkg/kernel"
	"github.com/vitaehq/vitae/pkg/logx"
)

const MaxResumesPerUser = 20

type Service struct {
	repo resume.Repository
}

// NewService creates a new resume service
func NewService(repo resume.Repository) *Service {
	return &Service{repo: repo}
}

// CreateResume persists a new document for the user, assigning the
// resume ID and replacing placeholder entry IDs with server ones
func (s *Service) CreateResume(ctx context.Context, userID kernel.UserID, req resume.SaveResumeRequest) (*resume.Document, error) {
	_, count, err := s.repo.ListByUserID(ctx, userID, kernel.PaginationOptions{Page: 1, PageSize: 1})
	if err != nil {
		return nil, err
	}
	if count >= MaxResumesPerUser {
		return nil, resume.ErrInvalidResumeData().
			WithDetail("reason", "maximum number of resumes reached").
			WithDetail("max_allowed", MaxResumesPerUser)
	}

	now := time.Now()
	doc := resume.NewDocument(userID)
	req.ApplyTo(doc)
	doc.ID = kernel.NewResumeID(uuid.NewString())
	doc.CreatedAt = now
	doc.UpdatedAt = now
	doc.Normalize()
	doc.AssignEntryIDs()

	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, err
	}

	logx.Infof("Resume %s created for user %s", doc.ID, userID)
	return doc, nil
}

// GetResume fetches a document and enforces ownership
func (s *Service) GetResume(ctx context.Context, userID kernel.UserID, id kernel.ResumeID) (*resume.Document, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !doc.BelongsTo(userID) {
		return nil, resume.ErrOwnerMismatch().WithDetail("resume_id", id)
	}
	return doc, nil
}

// UpdateResume replaces the stored document's title and sections
// wholesale, keeping identity and creation time
func (s *Service) UpdateResume(ctx context.Context, userID kernel.UserID, id kernel.ResumeID, req resume.SaveResumeRequest) (*resume.Document, error) {
	doc, err := s.GetResume(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(doc)
	doc.UpdatedAt = time.Now()
	doc.Normalize()
	doc.AssignEntryIDs()

	if err := s.repo.Update(ctx, id, doc); err != nil {
		return nil, err
	}

	logx.Infof("Resume %s updated for user %s", id, userID)
	return doc, nil
}

// DeleteResume removes a document after the ownership check
func (s *Service) DeleteResume(ctx context.Context, userID kernel.UserID, id kernel.ResumeID) error {
	if _, err := s.GetResume(ctx, userID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logx.Infof("Resume %s deleted for user %s", id, userID)
	return nil
}

// ListResumes returns the user's dashboard summaries
func (s *Service) ListResumes(ctx context.Context, req resume.ListResumesRequest) (kernel.Paginated[resume.Summary], error) {
	pagination := req.Pagination.Normalize()

	summaries, total, err := s.repo.ListByUserID(ctx, req.UserID, pagination)
	if err != nil {
		return kernel.Paginated[resume.Summary]{}, err
	}

	return kernel.NewPaginated(summaries, pagination.Page, pagination.PageSize, total), nil
}
