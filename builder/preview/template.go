package preview

// resumeTemplate is the print-oriented projection of a resume document.
// Section order is fixed; sections with no entries render nothing at
// all. An ongoing position shows "Present" no matter what end year the
// entry still carries.
const resumeTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  @page { size: A4; margin: 18mm; }
  body { font-family: Georgia, "Times New Roman", serif; color: #1a1a1a; margin: 0; line-height: 1.45; }
  header { text-align: center; border-bottom: 2px solid #1a1a1a; padding-bottom: 12px; margin-bottom: 18px; }
  header h1 { margin: 0 0 4px; font-size: 26px; letter-spacing: 1px; text-transform: uppercase; }
  header p { margin: 2px 0; font-size: 13px; }
  header a { color: #1a5276; text-decoration: none; }
  section { margin-bottom: 16px; }
  h2 { font-size: 15px; text-transform: uppercase; letter-spacing: 1px; border-bottom: 1px solid #999; padding-bottom: 3px; margin: 0 0 8px; }
  .entry { margin-bottom: 10px; }
  .entry-head { display: flex; justify-content: space-between; font-size: 14px; }
  .entry-head strong { font-weight: bold; }
  .entry-sub { font-size: 13px; font-style: italic; color: #444; }
  .entry p { margin: 3px 0 0; font-size: 13px; }
  .skills span { display: inline-block; font-size: 13px; margin: 0 10px 4px 0; }
</style>
</head>
<body>
<header>
  <h1>{{.PersonalInfo.FullName}}</h1>
  {{with joinNonEmpty .PersonalInfo.City .PersonalInfo.State .PersonalInfo.Country}}<p>{{.}}</p>{{end}}
  {{with joinNonEmpty .PersonalInfo.Email .PersonalInfo.Phone}}<p>{{.}}</p>{{end}}
  <p>
    {{with .PersonalInfo.LinkedinURL}}<a href="{{.}}">LinkedIn</a> {{end}}
    {{with .PersonalInfo.GithubURL}}<a href="{{.}}">GitHub</a> {{end}}
    {{with .PersonalInfo.PortfolioURL}}<a href="{{.}}">Portfolio</a>{{end}}
  </p>
</header>

{{with .PersonalInfo.Summary}}
<section>
  <h2>Professional Summary</h2>
  <p class="entry-sub">{{.}}</p>
</section>
{{end}}

{{if .Experiences}}
<section>
  <h2>Work Experience</h2>
  {{range .Experiences}}
  <div class="entry">
    <div class="entry-head">
      <strong>{{.Position}}</strong>
      <span>{{.StartYear}} - {{if .CurrentJob}}Present{{else}}{{.EndYear}}{{end}}</span>
    </div>
    <div class="entry-sub">{{joinNonEmpty .Company .Location}}</div>
    {{with .Description}}<p>{{.}}</p>{{end}}
  </div>
  {{end}}
</section>
{{end}}

{{if .Educations}}
<section>
  <h2>Education</h2>
  {{range .Educations}}
  <div class="entry">
    <div class="entry-head">
      <strong>{{.Degree}}{{with .FieldOfStudy}}, {{.}}{{end}}</strong>
      <span>{{.StartYear}}{{with .EndYear}} - {{.}}{{end}}</span>
    </div>
    <div class="entry-sub">{{joinNonEmpty .Institution .Location}}</div>
    {{with .Description}}<p>{{.}}</p>{{end}}
  </div>
  {{end}}
</section>
{{end}}

{{if .Certifications}}
<section>
  <h2>Certifications &amp; Training</h2>
  {{range .Certifications}}
  <div class="entry">
    <div class="entry-head">
      <strong>{{.Name}}</strong>
      <span>{{.Date}}</span>
    </div>
    <div class="entry-sub">{{.Issuer}}</div>
    {{with .Description}}<p>{{.}}</p>{{end}}
  </div>
  {{end}}
</section>
{{end}}

{{if .Awards}}
<section>
  <h2>Awards &amp; Achievements</h2>
  {{range .Awards}}
  <div class="entry">
    <div class="entry-head">
      <strong>{{.Title}}</strong>
      <span>{{.Date}}</span>
    </div>
    <div class="entry-sub">{{.Issuer}}</div>
    {{with .Description}}<p>{{.}}</p>{{end}}
  </div>
  {{end}}
</section>
{{end}}

{{if .Projects}}
<section>
  <h2>Projects</h2>
  {{range .Projects}}
  <div class="entry">
    <div class="entry-head">
      <strong>{{.Name}}</strong>
      <span>{{.StartYear}}{{with .EndYear}} - {{.}}{{end}}</span>
    </div>
    {{with .Technologies}}<div class="entry-sub">{{.}}</div>{{end}}
    {{with .Description}}<p>{{.}}</p>{{end}}
    {{with .Link}}<p><a href="{{.}}">{{.}}</a></p>{{end}}
  </div>
  {{end}}
</section>
{{end}}

{{if .Skills}}
<section>
  <h2>Skills</h2>
  <div class="skills">
    {{range .Skills}}<span>{{.Name}}{{with .Level}} ({{.}}){{end}}</span>{{end}}
  </div>
</section>
{{end}}
</body>
</html>
`
