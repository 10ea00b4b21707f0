package resumesrv

import (
	"context"
	"fmt"
	"testing"

	"github.com/vitaehq/vitae/builder/resume"
	"github.com/vitaehq/vitae/pkg/errx"
	"github.com/vitaehq/vitae/pkg/kernel"
)

type memoryRepo struct {
	docs map[kernel.ResumeID]*resume.Document
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{docs: make(map[kernel.ResumeID]*resume.Document)}
}

func (r *memoryRepo) Create(_ context.Context, doc *resume.Document) error {
	if _, ok := r.docs[doc.ID]; ok {
		return resume.ErrResumeExists()
	}
	r.docs[doc.ID] = doc.Clone()
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, id kernel.ResumeID) (*resume.Document, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, resume.ErrResumeNotFound()
	}
	return doc.Clone(), nil
}

func (r *memoryRepo) Update(_ context.Context, id kernel.ResumeID, doc *resume.Document) error {
	if _, ok := r.docs[id]; !ok {
		return resume.ErrResumeNotFound()
	}
	r.docs[id] = doc.Clone()
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, id kernel.ResumeID) error {
	if _, ok := r.docs[id]; !ok {
		return resume.ErrResumeNotFound()
	}
	delete(r.docs, id)
	return nil
}

func (r *memoryRepo) ListByUserID(_ context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) ([]resume.Summary, int, error) {
	var summaries []resume.Summary
	for _, doc := range r.docs {
		if doc.UserID == userID {
			summaries = append(summaries, resume.Summary{ID: doc.ID, Title: doc.Title})
		}
	}
	total := len(summaries)
	if len(summaries) > pagination.PageSize {
		summaries = summaries[:pagination.PageSize]
	}
	return summaries, total, nil
}

func TestCreateResumeAssignsIdentity(t *testing.T) {
	svc := NewService(newMemoryRepo())
	userID := kernel.NewUserID("u1")

	req := resume.SaveResumeRequest{
		Title: "Backend Resume",
		Skills: []resume.Skill{
			{ID: resume.NewPendingEntryID(), Name: "Go"},
			{Name: "SQL"},
		},
	}

	doc, err := svc.CreateResume(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if doc.ID.IsEmpty() {
		t.Error("resume ID not assigned")
	}
	if doc.UserID != userID {
		t.Errorf("userID = %v", doc.UserID)
	}
	for i, s := range doc.Skills {
		if s.ID.IsPending() || s.ID.IsZero() {
			t.Errorf("skill %d still has a placeholder ID", i)
		}
	}
	if doc.CreatedAt.IsZero() || doc.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}
}

func TestCreateResumeLimit(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	userID := kernel.NewUserID("u1")

	for i := 0; i < MaxResumesPerUser; i++ {
		doc := resume.NewDocument(userID)
		doc.ID = kernel.NewResumeID(fmt.Sprintf("r%d", i))
		repo.docs[doc.ID] = doc
	}

	_, err := svc.CreateResume(context.Background(), userID, resume.SaveResumeRequest{Title: "One too many"})
	if !errx.IsCode(err, resume.CodeInvalidResumeData) {
		t.Errorf("got %v", err)
	}
}

func TestGetResumeOwnership(t *testing.T) {
	svc := NewService(newMemoryRepo())
	owner := kernel.NewUserID("owner")

	doc, err := svc.CreateResume(context.Background(), owner, resume.SaveResumeRequest{Title: "Mine"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.GetResume(context.Background(), kernel.NewUserID("intruder"), doc.ID); !errx.IsCode(err, resume.CodeOwnerMismatch) {
		t.Errorf("got %v", err)
	}

	if _, err := svc.GetResume(context.Background(), owner, kernel.NewResumeID("missing")); !errx.IsCode(err, resume.CodeResumeNotFound) {
		t.Errorf("got %v", err)
	}
}

func TestUpdateResumeKeepsIdentity(t *testing.T) {
	svc := NewService(newMemoryRepo())
	userID := kernel.NewUserID("u1")

	doc, err := svc.CreateResume(context.Background(), userID, resume.SaveResumeRequest{Title: "Draft"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateResume(context.Background(), userID, doc.ID, resume.SaveResumeRequest{
		Title:  "Final",
		Skills: []resume.Skill{{Name: "Go"}},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != doc.ID {
		t.Errorf("update changed the resume ID: %v", updated.ID)
	}
	if updated.Title != "Final" {
		t.Errorf("title = %q", updated.Title)
	}
	if !updated.CreatedAt.Equal(doc.CreatedAt) {
		t.Error("update changed the creation time")
	}
	if updated.Skills[0].ID.IsPending() || updated.Skills[0].ID.IsZero() {
		t.Error("update left a placeholder entry ID")
	}
}

func TestDeleteResume(t *testing.T) {
	svc := NewService(newMemoryRepo())
	userID := kernel.NewUserID("u1")

	doc, err := svc.CreateResume(context.Background(), userID, resume.SaveResumeRequest{Title: "Gone soon"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteResume(context.Background(), kernel.NewUserID("intruder"), doc.ID); !errx.IsCode(err, resume.CodeOwnerMismatch) {
		t.Errorf("delete by intruder: got %v", err)
	}

	if err := svc.DeleteResume(context.Background(), userID, doc.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetResume(context.Background(), userID, doc.ID); !errx.IsCode(err, resume.CodeResumeNotFound) {
		t.Errorf("got %v", err)
	}
}

func TestListResumes(t *testing.T) {
	svc := NewService(newMemoryRepo())
	userID := kernel.NewUserID("u1")

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateResume(context.Background(), userID, resume.SaveResumeRequest{Title: fmt.Sprintf("Resume %d", i)}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	page, err := svc.ListResumes(context.Background(), resume.ListResumesRequest{
		UserID:     userID,
		Pagination: kernel.PaginationOptions{Page: 1, PageSize: 2},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Items) != 2 {
		t.Errorf("items = %d", len(page.Items))
	}
	if page.Page.Total != 3 || page.Page.Pages != 2 {
		t.Errorf("page meta = %+v", page.Page)
	}

	empty, err := svc.ListResumes(context.Background(), resume.ListResumesRequest{UserID: kernel.NewUserID("other")})
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if !empty.Empty {
		t.Error("expected empty listing")
	}
}
