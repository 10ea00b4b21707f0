package wizardsrv

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/vitaehq/vitae/builder/resume"
	"github.com/vitaehq/vitae/builder/resume/resumesrv"
	"github.com/vitaehq/vitae/builder/wizard"
	"github.com/vitaehq/vitae/pkg/kernel"
	"github.com/vitaehq/vitae/pkg/logx"
)

// Service runs wizard sessions on top of the draft store and the
// resume service
type Service struct {
	store     wizard.DraftStore
	resumeSvc *resumesrv.Service
}

func NewService(store wizard.DraftStore, resumeSvc *resumesrv.Service) *Service {
	return &Service{
		store:     store,
		resumeSvc: resumeSvc,
	}
}

// Start opens a new session: create mode with a hollow document, or
// edit mode seeded from an existing resume after the ownership check
func (s *Service) Start(ctx context.Context, userID kernel.UserID, resumeID kernel.ResumeID) (*wizard.Session, error) {
	sessionID := kernel.NewSessionID(uuid.NewString())

	var session *wizard.Session
	if resumeID.IsEmpty() {
		session = wizard.NewSession(sessionID, userID)
	} else {
		doc, err := s.resumeSvc.GetResume(ctx, userID, resumeID)
		if err != nil {
			return nil, err
		}
		session = wizard.NewEditSession(sessionID, userID, doc)
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	logx.Infof("Wizard session %s started for user %s", session.ID, userID)
	return session, nil
}

// Get loads a session owned by the user
func (s *Service) Get(ctx context.Context, userID kernel.UserID, id kernel.SessionID) (*wizard.Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, wizard.ErrSessionForbidden().WithDetail("session_id", id)
	}
	return session, nil
}

// Next advances the session one step
func (s *Service) Next(ctx context.Context, userID kernel.UserID, id kernel.SessionID) (*wizard.Session, error) {
	return s.mutate(ctx, userID, id, func(session *wizard.Session) error {
		return session.Next()
	})
}

// Back returns the session to the previous step
func (s *Service) Back(ctx context.Context, userID kernel.UserID, id kernel.SessionID) (*wizard.Session, error) {
	return s.mutate(ctx, userID, id, func(session *wizard.Session) error {
		return session.Back()
	})
}

// UpdateSection replaces one draft section wholesale
func (s *Service) UpdateSection(ctx context.Context, userID kernel.UserID, id kernel.SessionID, section string, value json.RawMessage) (*wizard.Session, error) {
	return s.mutate(ctx, userID, id, func(session *wizard.Session) error {
		return session.UpdateSection(section, value)
	})
}

// AddEntry appends an entry to a draft section
func (s *Service) AddEntry(ctx context.Context, userID kernel.UserID, id kernel.SessionID, section string, entry json.RawMessage) (*wizard.Session, error) {
	return s.mutate(ctx, userID, id, func(session *wizard.Session) error {
		return session.AddEntry(section, entry)
	})
}

// EditEntry replaces an entry in a draft section by position
func (s *Service) EditEntry(ctx context.Context, userID kernel.UserID, id kernel.SessionID, section string, index int, entry json.RawMessage) (*wizard.Session, error) {
	return s.mutate(ctx, userID, id, func(session *wizard.Session) error {
		return session.EditEntry(section, index, entry)
	})
}

// DeleteEntry removes an entry from a draft section by position
func (s *Service) DeleteEntry(ctx context.Context, userID kernel.UserID, id kernel.SessionID, section string, index int) (*wizard.Session, error) {
	return s.mutate(ctx, userID, id, func(session *wizard.Session) error {
		return session.DeleteEntry(section, index)
	})
}

// RemoveSkill drops a skill from the draft by identifier
func (s *Service) RemoveSkill(ctx context.Context, userID kernel.UserID, id kernel.SessionID, entryID int64) (*wizard.Session, error) {
	return s.mutate(ctx, userID, id, func(session *wizard.Session) error {
		session.RemoveSkill(entryID)
		return nil
	})
}

// Save persists the draft through the resume service and discards it.
// Only the preview step exposes save.
func (s *Service) Save(ctx context.Context, userID kernel.UserID, id kernel.SessionID) (*resume.Document, error) {
	session, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if !session.CanSave() {
		return nil, wizard.ErrNotOnPreviewStep().
			WithDetail("session_id", id).
			WithDetail("step", session.Step.String())
	}

	req := resume.SaveResumeRequest{
		Title:          session.Document.Title,
		PersonalInfo:   session.Document.PersonalInfo,
		Educations:     session.Document.Educations,
		Experiences:    session.Document.Experiences,
		Skills:         session.Document.Skills,
		Certifications: session.Document.Certifications,
		Awards:         session.Document.Awards,
		Projects:       session.Document.Projects,
	}

	var doc *resume.Document
	if session.IsEditing() {
		doc, err = s.resumeSvc.UpdateResume(ctx, userID, session.ResumeID, req)
	} else {
		doc, err = s.resumeSvc.CreateResume(ctx, userID, req)
	}
	if err != nil {
		// The draft stays intact so the user can retry from the same step
		return nil, err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		logx.Warnf("Failed to drop saved wizard draft %s: %v", id, err)
	}

	logx.Infof("Wizard session %s saved as resume %s", id, doc.ID)
	return doc, nil
}

// Cancel discards the draft
func (s *Service) Cancel(ctx context.Context, userID kernel.UserID, id kernel.SessionID) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

func (s *Service) mutate(ctx context.Context, userID kernel.UserID, id kernel.SessionID, fn func(*wizard.Session) error) (*wizard.Session, error) {
	session, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
