package preview

import (
	"strings"
	"testing"

	"github.com/vitaehq/vitae/builder/resume"
	"github.com/vitaehq/vitae/pkg/kernel"
)

func testDocument() *resume.Document {
	doc := resume.NewDocument(kernel.NewUserID("u1"))
	doc.PersonalInfo = resume.PersonalInfo{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		City:     "London",
		Country:  "UK",
	}
	return doc
}

func TestRenderHeader(t *testing.T) {
	html, err := NewRenderer().Render(testDocument())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{"Ada Lovelace", "ada@example.com", "London, UK"} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderOmitsEmptySections(t *testing.T) {
	html, err := NewRenderer().Render(testDocument())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	headers := []string{
		"Professional Summary",
		"Work Experience",
		"Education",
		"Certifications &amp; Training",
		"Awards &amp; Achievements",
		"Projects",
		"Skills",
	}
	for _, h := range headers {
		if strings.Contains(html, h) {
			t.Errorf("empty section %q still rendered", h)
		}
	}
}

func TestRenderPopulatedSections(t *testing.T) {
	doc := testDocument()
	doc.PersonalInfo.Summary = "Pioneering analyst."
	doc.Experiences = []resume.Experience{
		{Company: "Analytical Engines Ltd", Position: "Programmer", StartYear: "1842", EndYear: "1843"},
	}
	doc.Skills = []resume.Skill{{Name: "Mathematics", Level: "Expert"}}

	html, err := NewRenderer().Render(doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"Professional Summary", "Pioneering analyst.",
		"Work Experience", "Programmer", "1842 - 1843",
		"Skills", "Mathematics", "(Expert)",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(html, "Education") {
		t.Error("empty education section rendered")
	}
}

func TestRenderCurrentJobShowsPresent(t *testing.T) {
	doc := testDocument()
	doc.Experiences = []resume.Experience{
		{Company: "Acme", Position: "Engineer", StartYear: "2020", EndYear: "2030", CurrentJob: true},
	}

	html, err := NewRenderer().Render(doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(html, "2020 - Present") {
		t.Error("ongoing position not rendered as Present")
	}
	if strings.Contains(html, "2030") {
		t.Error("stored end year leaked into an ongoing position")
	}
}

func TestRenderEscapesContent(t *testing.T) {
	doc := testDocument()
	doc.PersonalInfo.Summary = `<script>alert("x")</script>`

	html, err := NewRenderer().Render(doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Error("summary rendered unescaped")
	}
}
