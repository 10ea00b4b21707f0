package wizard

import (
	"encoding/json"
	"testing"

	"github.com/vitaehq/vitae/builder/resume"
	"github.com/vitaehq/vitae/pkg/errx"
	"github.com/vitaehq/vitae/pkg/kernel"
)

func newTestSession() *Session {
	return NewSession(kernel.NewSessionID("s1"), kernel.NewUserID("u1"))
}

func TestStepFlow(t *testing.T) {
	s := newTestSession()

	if s.Step != StepPersonalInfo {
		t.Fatalf("initial step = %v", s.Step)
	}
	if err := s.Back(); !errx.IsCode(err, CodeNoPreviousStep) {
		t.Errorf("back on first step: got %v", err)
	}

	for i := 0; i < StepCount-1; i++ {
		if s.CanSave() {
			t.Errorf("save exposed on step %v", s.Step)
		}
		if err := s.Next(); err != nil {
			t.Fatalf("next from step %d: %v", i, err)
		}
	}

	if s.Step != StepPreview {
		t.Fatalf("final step = %v", s.Step)
	}
	if !s.CanSave() {
		t.Error("save not exposed on preview step")
	}
	if err := s.Next(); !errx.IsCode(err, CodeNoNextStep) {
		t.Errorf("next on last step: got %v", err)
	}

	if err := s.Back(); err != nil {
		t.Fatalf("back from preview: %v", err)
	}
	if s.Step != StepProjects {
		t.Errorf("step after back = %v", s.Step)
	}
}

func TestNewEditSessionClonesDocument(t *testing.T) {
	doc := resume.NewDocument(kernel.NewUserID("u1"))
	doc.ID = kernel.NewResumeID("r1")
	doc.Skills = []resume.Skill{{ID: resume.PersistedEntryID(1), Name: "Go"}}

	s := NewEditSession(kernel.NewSessionID("s1"), kernel.NewUserID("u1"), doc)

	if !s.IsEditing() {
		t.Error("edit session not flagged as editing")
	}
	if s.ResumeID != doc.ID {
		t.Errorf("session resume ID = %v", s.ResumeID)
	}

	s.Document.Skills[0].Name = "Rust"
	if doc.Skills[0].Name != "Go" {
		t.Error("edit session shares state with the source document")
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	s := newTestSession()
	if err := s.AddEntry(resume.SectionSkills, json.RawMessage(`{"name":"Go"}`)); err != nil {
		t.Fatalf("add skill: %v", err)
	}

	snap := s.Snapshot()
	snap.Skills[0].Name = "Rust"

	if s.Document.Skills[0].Name != "Go" {
		t.Error("snapshot shares state with the draft")
	}
}

func TestSessionJSONRoundTrip(t *testing.T) {
	s := newTestSession()
	if err := s.AddEntry(resume.SectionSkills, json.RawMessage(`{"name":"Go"}`)); err != nil {
		t.Fatalf("add skill: %v", err)
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Session
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.Step != s.Step || got.UserID != s.UserID {
		t.Errorf("round trip changed session header: %+v", got)
	}
	if !got.Document.Skills[0].ID.IsPending() {
		t.Error("pending entry ID lost across a store round trip")
	}
}
