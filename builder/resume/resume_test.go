package resume

import (
	"encoding/json"
	"testing"

	"github.com/vitaehq/vitae/pkg/errx"
	"github.com/vitaehq/vitae/pkg/kernel"
)

func TestEntryIDWireFormat(t *testing.T) {
	tests := []struct {
		name string
		id   EntryID
		want string
	}{
		{"persisted", PersistedEntryID(42), "42"},
		{"zero", EntryID{}, "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.id)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("got %s, want %s", data, tt.want)
			}
		})
	}

	pending := NewPendingEntryID()
	data, err := json.Marshal(pending)
	if err != nil {
		t.Fatalf("marshal pending: %v", err)
	}
	if data[0] != '-' {
		t.Errorf("pending ID should serialize as a negative number, got %s", data)
	}
}

func TestEntryIDRoundTrip(t *testing.T) {
	for _, id := range []EntryID{PersistedEntryID(7), NewPendingEntryID()} {
		data, err := json.Marshal(id)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var got EntryID
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got != id {
			t.Errorf("round trip changed %+v to %+v", id, got)
		}
	}
}

func TestUpdateSection(t *testing.T) {
	doc := NewDocument(kernel.NewUserID("u1"))

	info := json.RawMessage(`{"fullName":"Ada Lovelace","email":"ada@example.com"}`)
	if err := doc.UpdateSection(SectionPersonalInfo, info); err != nil {
		t.Fatalf("update personalInfo: %v", err)
	}
	if doc.PersonalInfo.FullName != "Ada Lovelace" {
		t.Errorf("fullName = %q", doc.PersonalInfo.FullName)
	}

	// Replacing with the same value must be a no-op
	before, _ := json.Marshal(doc)
	if err := doc.UpdateSection(SectionPersonalInfo, info); err != nil {
		t.Fatalf("repeat update: %v", err)
	}
	after, _ := json.Marshal(doc)
	if string(before) != string(after) {
		t.Error("idempotent update changed the document")
	}

	err := doc.UpdateSection("hobbies", json.RawMessage(`[]`))
	if !errx.IsCode(err, CodeUnknownSection) {
		t.Errorf("unknown section: got %v", err)
	}

	err = doc.UpdateSection(SectionSkills, json.RawMessage(`"not a list"`))
	if !errx.IsCode(err, CodeInvalidResumeData) {
		t.Errorf("malformed section: got %v", err)
	}
}

func TestAssignEntryIDs(t *testing.T) {
	doc := NewDocument(kernel.NewUserID("u1"))
	doc.Skills = []Skill{
		{ID: PersistedEntryID(1), Name: "Go"},
		{ID: NewPendingEntryID(), Name: "SQL"},
		{Name: "Redis"},
	}
	doc.Educations = []Education{
		{ID: PersistedEntryID(5), Institution: "MIT", Degree: "BSc", StartYear: "2015"},
		{ID: NewPendingEntryID(), Institution: "CMU", Degree: "MSc", StartYear: "2019"},
	}

	doc.AssignEntryIDs()

	if got := doc.Skills[0].ID; got != PersistedEntryID(1) {
		t.Errorf("persisted skill ID changed to %v", got)
	}
	if got := doc.Educations[0].ID; got != PersistedEntryID(5) {
		t.Errorf("persisted education ID changed to %v", got)
	}

	seen := map[int64]bool{1: true, 5: true}
	for _, id := range []EntryID{doc.Skills[1].ID, doc.Skills[2].ID, doc.Educations[1].ID} {
		if id.IsPending() || id.IsZero() {
			t.Errorf("unassigned entry ID %v", id)
		}
		if id.Int64() <= 5 {
			t.Errorf("assigned ID %d does not continue past the highest persisted value", id.Int64())
		}
		if seen[id.Int64()] {
			t.Errorf("duplicate assigned ID %d", id.Int64())
		}
		seen[id.Int64()] = true
	}
}

func TestExperienceNormalize(t *testing.T) {
	e := Experience{Company: "Acme", Position: "Engineer", StartYear: "2020", EndYear: "2023", CurrentJob: true}
	if got := e.Normalize().EndYear; got != "" {
		t.Errorf("current job kept end year %q", got)
	}

	e.CurrentJob = false
	if got := e.Normalize().EndYear; got != "2023" {
		t.Errorf("past job lost end year, got %q", got)
	}
}

func TestCloneIsolation(t *testing.T) {
	doc := NewDocument(kernel.NewUserID("u1"))
	doc.Skills = []Skill{{ID: PersistedEntryID(1), Name: "Go"}}

	clone := doc.Clone()
	clone.Skills[0].Name = "Rust"
	clone.Skills = append(clone.Skills, Skill{Name: "C"})

	if doc.Skills[0].Name != "Go" {
		t.Error("mutating a clone leaked into the original")
	}
	if len(doc.Skills) != 1 {
		t.Errorf("original skill count = %d", len(doc.Skills))
	}
}

func TestPersonalInfoValidate(t *testing.T) {
	valid := PersonalInfo{FullName: "Ada Lovelace", Email: "ada@example.com"}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid info rejected: %v", err)
	}

	tests := []struct {
		name string
		info PersonalInfo
	}{
		{"missing full name", PersonalInfo{Email: "ada@example.com"}},
		{"bad email", PersonalInfo{FullName: "Ada", Email: "not-an-email"}},
		{"bad phone", PersonalInfo{FullName: "Ada", Email: "ada@example.com", Phone: "12345"}},
		{"bad zip", PersonalInfo{FullName: "Ada", Email: "ada@example.com", ZipCode: "12"}},
		{"bad url", PersonalInfo{FullName: "Ada", Email: "ada@example.com", LinkedinURL: "not a url"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.info.Validate() == nil {
				t.Error("expected validation error")
			}
		})
	}

	// Phone and zip code are optional
	optional := PersonalInfo{FullName: "Ada Lovelace", Email: "ada@example.com", Phone: "", ZipCode: ""}
	if err := optional.Validate(); err != nil {
		t.Errorf("empty optional fields rejected: %v", err)
	}
}
