package wizard

import (
	"encoding/json"
	"time"

	"github.com/vitaehq/vitae/builder/resume"
	"github.com/vitaehq/vitae/pkg/kernel"
)

// Step is one stop in the ordered editing flow
type Step int

const (
	StepPersonalInfo Step = iota
	StepEducation
	StepExperience
	StepSkills
	StepCertifications
	StepAwards
	StepProjects
	StepPreview
)

const StepCount = 8

func (s Step) String() string {
	switch s {
	case StepPersonalInfo:
		return "Personal Information"
	case StepEducation:
		return "Education"
	case StepExperience:
		return "Experience"
	case StepSkills:
		return "Skills"
	case StepCertifications:
		return "Certifications"
	case StepAwards:
		return "Awards"
	case StepProjects:
		return "Projects"
	case StepPreview:
		return "Preview"
	default:
		return "Unknown"
	}
}

// Session is one in-progress wizard run. It is the single owner of its
// draft document: editors receive snapshots and hand back replacement
// values, never shared references.
type Session struct {
	ID        kernel.SessionID `json:"id"`
	UserID    kernel.UserID    `json:"user_id"`
	ResumeID  kernel.ResumeID  `json:"resume_id,omitempty"`
	Step      Step             `json:"step"`
	Document  *resume.Document `json:"document"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// NewSession starts a create-mode session with a hollow document
func NewSession(id kernel.SessionID, userID kernel.UserID) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		UserID:    userID,
		Step:      StepPersonalInfo,
		Document:  resume.NewDocument(userID),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewEditSession starts an edit-mode session bound to an existing resume
func NewEditSession(id kernel.SessionID, userID kernel.UserID, doc *resume.Document) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		UserID:    userID,
		ResumeID:  doc.ID,
		Step:      StepPersonalInfo,
		Document:  doc.Clone(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsEditing reports whether the session updates an existing resume
func (s *Session) IsEditing() bool {
	return !s.ResumeID.IsEmpty()
}

// Next advances one step. No validation gates the transition.
func (s *Session) Next() error {
	if s.Step >= StepPreview {
		return ErrNoNextStep()
	}
	s.Step++
	return nil
}

// Back returns to the previous step
func (s *Session) Back() error {
	if s.Step <= StepPersonalInfo {
		return ErrNoPreviousStep()
	}
	s.Step--
	return nil
}

// CanSave reports whether the session is on the final step, the only
// one that exposes save
func (s *Session) CanSave() bool {
	return s.Step == StepPreview
}

// Snapshot returns a read-only copy of the draft for rendering
func (s *Session) Snapshot() *resume.Document {
	return s.Document.Clone()
}

// UpdateSection replaces one section of the draft wholesale
func (s *Session) UpdateSection(name string, raw json.RawMessage) error {
	if err := s.Document.UpdateSection(name, raw); err != nil {
		return err
	}
	s.UpdatedAt = time.Now()
	return nil
}
