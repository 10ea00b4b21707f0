package resume

import (
	"encoding/json"
	"time"

	"github.com/vitaehq/vitae/pkg/kernel"
	"github.com/vitaehq/vitae/pkg/validate"
)

// EntryID identifies one section entry. A freshly added entry carries a
// pending, timestamp-derived placeholder; a save replaces every pending
// value with a server-assigned one.
type EntryID struct {
	value   int64
	pending bool
}

// NewPendingEntryID returns a placeholder identifier for a new entry
func NewPendingEntryID() EntryID {
	return EntryID{value: time.Now().UnixMilli(), pending: true}
}

// PersistedEntryID wraps a server-assigned identifier
func PersistedEntryID(v int64) EntryID {
	return EntryID{value: v}
}

func (id EntryID) Int64() int64    { return id.value }
func (id EntryID) IsPending() bool { return id.pending }
func (id EntryID) IsZero() bool    { return id.value == 0 && !id.pending }

// Pending identifiers serialize as negative numbers so the two ID
// spaces stay distinguishable across draft round-trips. Persisted IDs
// are always positive.
func (id EntryID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return []byte("null"), nil
	}
	if id.pending {
		return json.Marshal(-id.value)
	}
	return json.Marshal(id.value)
}

func (id *EntryID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = EntryID{}
		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v < 0 {
		*id = EntryID{value: -v, pending: true}
		return nil
	}
	*id = EntryID{value: v}
	return nil
}

// PersonalInfo is the contact block of a resume. Exactly one per document.
type PersonalInfo struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Country      string `json:"country"`
	LinkedinURL  string `json:"linkedinUrl"`
	GithubURL    string `json:"githubUrl"`
	PortfolioURL string `json:"portfolioUrl"`
	Summary      string `json:"summary"`
}

// Validate checks required fields and the regional/format rules. Phone
// and zip code are optional and only validated when present.
func (p PersonalInfo) Validate() error {
	if err := validate.Required("fullName", p.FullName); err != nil {
		return err
	}
	if err := validate.Email(p.Email); err != nil {
		return err
	}
	if p.Phone != "" {
		if err := validate.Phone(p.Phone); err != nil {
			return err
		}
	}
	if p.ZipCode != "" {
		if err := validate.PostalCode(p.ZipCode); err != nil {
			return err
		}
	}
	if err := validate.URL(p.LinkedinURL); err != nil {
		return err
	}
	if err := validate.URL(p.GithubURL); err != nil {
		return err
	}
	return validate.URL(p.PortfolioURL)
}

// IsEmpty reports whether the contact block has no content at all
func (p PersonalInfo) IsEmpty() bool {
	return p == PersonalInfo{}
}

type Education struct {
	ID           EntryID `json:"id"`
	Institution  string  `json:"institution"`
	Degree       string  `json:"degree"`
	FieldOfStudy string  `json:"fieldOfStudy"`
	StartYear    string  `json:"startYear"`
	EndYear      string  `json:"endYear"`
	Location     string  `json:"location"`
	Description  string  `json:"description"`
}

func (e Education) Validate() error {
	if err := validate.Required("institution", e.Institution); err != nil {
		return err
	}
	if err := validate.Required("degree", e.Degree); err != nil {
		return err
	}
	return validate.Required("startYear", e.StartYear)
}

func (e Education) EntryID() EntryID          { return e.ID }
func (e Education) WithID(id EntryID) Education { e.ID = id; return e }

type Experience struct {
	ID          EntryID `json:"id"`
	Company     string  `json:"company"`
	Position    string  `json:"position"`
	Location    string  `json:"location"`
	StartYear   string  `json:"startYear"`
	EndYear     string  `json:"endYear"`
	CurrentJob  bool    `json:"currentJob"`
	Description string  `json:"description"`
}

func (e Experience) Validate() error {
	if err := validate.Required("company", e.Company); err != nil {
		return err
	}
	if err := validate.Required("position", e.Position); err != nil {
		return err
	}
	return validate.Required("startYear", e.StartYear)
}

// Normalize clears the end year for an ongoing position
func (e Experience) Normalize() Experience {
	if e.CurrentJob {
		e.EndYear = ""
	}
	return e
}

func (e Experience) EntryID() EntryID           { return e.ID }
func (e Experience) WithID(id EntryID) Experience { e.ID = id; return e }

type Skill struct {
	ID    EntryID `json:"id"`
	Name  string  `json:"name"`
	Level string  `json:"level"`
}

func (s Skill) Validate() error {
	return validate.Required("name", s.Name)
}

func (s Skill) EntryID() EntryID      { return s.ID }
func (s Skill) WithID(id EntryID) Skill { s.ID = id; return s }

type Certification struct {
	ID          EntryID `json:"id"`
	Name        string  `json:"name"`
	Issuer      string  `json:"issuer"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

func (c Certification) Validate() error {
	if err := validate.Required("name", c.Name); err != nil {
		return err
	}
	return validate.Required("issuer", c.Issuer)
}

func (c Certification) EntryID() EntryID              { return c.ID }
func (c Certification) WithID(id EntryID) Certification { c.ID = id; return c }

type Award struct {
	ID          EntryID `json:"id"`
	Title       string  `json:"title"`
	Issuer      string  `json:"issuer"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

func (a Award) Validate() error {
	if err := validate.Required("title", a.Title); err != nil {
		return err
	}
	return validate.Required("issuer", a.Issuer)
}

func (a Award) EntryID() EntryID      { return a.ID }
func (a Award) WithID(id EntryID) Award { a.ID = id; return a }

type Project struct {
	ID           EntryID `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Technologies string  `json:"technologies"`
	Link         string  `json:"link"`
	StartYear    string  `json:"startYear"`
	EndYear      string  `json:"endYear"`
}

func (p Project) Validate() error {
	if err := validate.Required("name", p.Name); err != nil {
		return err
	}
	if err := validate.Required("description", p.Description); err != nil {
		return err
	}
	return validate.URL(p.Link)
}

func (p Project) EntryID() EntryID        { return p.ID }
func (p Project) WithID(id EntryID) Project { p.ID = id; return p }

// Section names accepted by UpdateSection
const (
	SectionTitle          = "title"
	SectionPersonalInfo   = "personalInfo"
	SectionEducations     = "educations"
	SectionExperiences    = "experiences"
	SectionSkills         = "skills"
	SectionCertifications = "certifications"
	SectionAwards         = "awards"
	SectionProjects       = "projects"
)

// Document is the aggregate resume being edited and persisted. It is
// serialized wholesale; there is no partial-section persistence.
type Document struct {
	ID             kernel.ResumeID `json:"id"`
	UserID         kernel.UserID   `json:"user_id"`
	Title          string          `json:"title"`
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Educations     []Education     `json:"educations"`
	Experiences    []Experience    `json:"experiences"`
	Skills         []Skill         `json:"skills"`
	Certifications []Certification `json:"certifications"`
	Awards         []Award         `json:"awards"`
	Projects       []Project       `json:"projects"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// NewDocument returns the hollow default a wizard session starts from
func NewDocument(userID kernel.UserID) *Document {
	return &Document{
		UserID:         userID,
		Title:          "My Resume",
		Educations:     []Education{},
		Experiences:    []Experience{},
		Skills:         []Skill{},
		Certifications: []Certification{},
		Awards:         []Award{},
		Projects:       []Project{},
	}
}

// UpdateSection replaces one section wholesale from its JSON value.
// Replacing with an equal value is a no-op, and no cross-section
// validation happens here.
func (d *Document) UpdateSection(name string, raw json.RawMessage) error {
	switch name {
	case SectionTitle:
		var title string
		if err := json.Unmarshal(raw, &title); err != nil {
			return ErrInvalidResumeData().WithDetail("section", name)
		}
		d.Title = title
	case SectionPersonalInfo:
		var info PersonalInfo
		if err := json.Unmarshal(raw, &info); err != nil {
			return ErrInvalidResumeData().WithDetail("section", name)
		}
		d.PersonalInfo = info
	case SectionEducations:
		var entries []Education
		if err := json.Unmarshal(raw, &entries); err != nil {
			return ErrInvalidResumeData().WithDetail("section", name)
		}
		d.Educations = entries
	case SectionExperiences:
		var entries []Experience
		if err := json.Unmarshal(raw, &entries); err != nil {
			return ErrInvalidResumeData().WithDetail("section", name)
		}
		d.Experiences = entries
	case SectionSkills:
		var entries []Skill
		if err := json.Unmarshal(raw, &entries); err != nil {
			return ErrInvalidResumeData().WithDetail("section", name)
		}
		d.Skills = entries
	case SectionCertifications:
		var entries []Certification
		if err := json.Unmarshal(raw, &entries); err != nil {
			return ErrInvalidResumeData().WithDetail("section", name)
		}
		d.Certifications = entries
	case SectionAwards:
		var entries []Award
		if err := json.Unmarshal(raw, &entries); err != nil {
			return ErrInvalidResumeData().WithDetail("section", name)
		}
		d.Awards = entries
	case SectionProjects:
		var entries []Project
		if err := json.Unmarshal(raw, &entries); err != nil {
			return ErrInvalidResumeData().WithDetail("section", name)
		}
		d.Projects = entries
	default:
		return ErrUnknownSection().WithDetail("section", name)
	}
	return nil
}

// AssignEntryIDs replaces every pending entry identifier with a
// server-assigned one, continuing after the highest persisted value
func (d *Document) AssignEntryIDs() {
	next := d.maxPersistedID() + 1

	assign := func(id EntryID) EntryID {
		if id.IsPending() || id.IsZero() {
			assigned := PersistedEntryID(next)
			next++
			return assigned
		}
		return id
	}

	for i := range d.Educations {
		d.Educations[i].ID = assign(d.Educations[i].ID)
	}
	for i := range d.Experiences {
		d.Experiences[i].ID = assign(d.Experiences[i].ID)
	}
	for i := range d.Skills {
		d.Skills[i].ID = assign(d.Skills[i].ID)
	}
	for i := range d.Certifications {
		d.Certifications[i].ID = assign(d.Certifications[i].ID)
	}
	for i := range d.Awards {
		d.Awards[i].ID = assign(d.Awards[i].ID)
	}
	for i := range d.Projects {
		d.Projects[i].ID = assign(d.Projects[i].ID)
	}
}

func (d *Document) maxPersistedID() int64 {
	var max int64
	consider := func(id EntryID) {
		if !id.IsPending() && id.Int64() > max {
			max = id.Int64()
		}
	}
	for _, e := range d.Educations {
		consider(e.ID)
	}
	for _, e := range d.Experiences {
		consider(e.ID)
	}
	for _, s := range d.Skills {
		consider(s.ID)
	}
	for _, c := range d.Certifications {
		consider(c.ID)
	}
	for _, a := range d.Awards {
		consider(a.ID)
	}
	for _, p := range d.Projects {
		consider(p.ID)
	}
	return max
}

// Normalize applies entry-level invariants across the document
func (d *Document) Normalize() {
	for i := range d.Experiences {
		d.Experiences[i] = d.Experiences[i].Normalize()
	}
}

// BelongsTo reports whether the document is owned by the given user
func (d *Document) BelongsTo(userID kernel.UserID) bool {
	return d.UserID == userID
}

// Clone returns a deep copy so wizard sessions can hand out snapshots
func (d *Document) Clone() *Document {
	c := *d
	c.Educations = append([]Education(nil), d.Educations...)
	c.Experiences = append([]Experience(nil), d.Experiences...)
	c.Skills = append([]Skill(nil), d.Skills...)
	c.Certifications = append([]Certification(nil), d.Certifications...)
	c.Awards = append([]Award(nil), d.Awards...)
	c.Projects = append([]Project(nil), d.Projects...)
	return &c
}
