// Package portfolio renders an assembled resume record as a self-contained
// static portfolio page. Rendering is a pure formatting step: it consumes the
// record (plus optional enrichment) and never feeds anything back into the
// pipeline.
package portfolio

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/hyperifyio/foliogen/internal/enrich"
	"github.com/hyperifyio/foliogen/internal/resume"
)

// DefaultTagline is used when enrichment supplied none.
const DefaultTagline = "Professional Developer & Problem Solver"

// view is the template's data model: the record with enrichment overlaid.
type view struct {
	resume.Record
	Tagline         string
	Achievements    []string
	SkillCategories map[string][]string
	// PhoneHref carries the tel: link pre-approved, since html/template's URL
	// filter only passes http, https and mailto schemes.
	PhoneHref template.URL
	Year      int
}

// Render produces the complete portfolio HTML for the record. Enrichment is
// strictly additive: a zero enrich.Result leaves the record's own summary and
// the default tagline in place.
func Render(rec resume.Record, enr enrich.Result) (string, error) {
	v := view{
		Record:          rec,
		Tagline:         enr.Tagline,
		Achievements:    enr.Achievements,
		SkillCategories: enr.SkillCategories,
		Year:            time.Now().Year(),
	}
	if strings.TrimSpace(enr.ImprovedSummary) != "" {
		v.Summary = enr.ImprovedSummary
	}
	if strings.TrimSpace(v.Tagline) == "" {
		v.Tagline = DefaultTagline
	}
	if rec.Phone != "" {
		v.PhoneHref = template.URL("tel:" + strings.Map(keepDialable, rec.Phone))
	}

	var sb strings.Builder
	if err := pageTmpl.Execute(&sb, v); err != nil {
		return "", fmt.Errorf("render portfolio: %w", err)
	}
	return sb.String(), nil
}

// keepDialable strips everything a tel: URI cannot carry.
func keepDialable(r rune) rune {
	if (r >= '0' && r <= '9') || r == '+' || r == '-' {
		return r
	}
	return -1
}

var pageTmpl = template.Must(template.New("portfolio").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Name}} - Portfolio</title>
<link href="https://cdn.jsdelivr.net/npm/bootstrap@5.1.3/dist/css/bootstrap.min.css" rel="stylesheet">
<style>
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; }
.hero-section { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 100px 0; text-align: center; }
.section-title { color: #333; margin-bottom: 30px; font-weight: 600; }
.skill-badge { background: #667eea; color: white; padding: 8px 15px; border-radius: 20px; margin: 5px; display: inline-block; font-size: 0.9em; }
.experience-card, .project-card { border-left: 4px solid #667eea; padding: 20px; margin-bottom: 20px; background: #f8f9fa; border-radius: 8px; }
.achievement-item { background: #e8f4f8; padding: 15px; margin: 10px 0; border-radius: 8px; border-left: 4px solid #667eea; }
.contact-info { background: #333; color: white; padding: 50px 0; }
</style>
</head>
<body>
<section id="home" class="hero-section">
<div class="container">
<h1 class="display-4 fw-bold">{{.Name}}</h1>
<p class="lead mb-4">{{.Tagline}}</p>
</div>
</section>
{{if .Summary}}
<section id="about" class="py-5">
<div class="container">
<h2 class="section-title text-center">About Me</h2>
<p class="lead text-center">{{.Summary}}</p>
{{if .Achievements}}
<div class="mt-4">
<h4 class="text-center mb-3">Key Achievements</h4>
{{range .Achievements}}<div class="achievement-item">{{.}}</div>
{{end}}</div>
{{end}}
</div>
</section>
{{end}}
{{if or .Skills .SkillCategories}}
<section id="skills" class="py-5 bg-light">
<div class="container">
<h2 class="section-title text-center">Skills &amp; Technologies</h2>
{{if .SkillCategories}}
<div class="row">
{{range $category, $skills := .SkillCategories}}<div class="col-md-4 mb-4">
<h5 class="text-center mb-3">{{$category}}</h5>
<div class="text-center">{{range $skills}}<span class="skill-badge">{{.}}</span>{{end}}</div>
</div>
{{end}}</div>
{{else}}
<div class="text-center">{{range .Skills}}<span class="skill-badge">{{.}}</span>{{end}}</div>
{{end}}
</div>
</section>
{{end}}
{{if .Experience}}
<section id="experience" class="py-5">
<div class="container">
<h2 class="section-title text-center">Professional Experience</h2>
{{range .Experience}}<div class="experience-card">
<h4>{{.Title}}</h4>
<h6 class="text-muted">{{if .Company}}{{.Company}}{{end}}{{if .Duration}} | {{.Duration}}{{end}}</h6>
<p>{{.Description}}</p>
</div>
{{end}}</div>
</section>
{{end}}
{{if .Projects}}
<section id="projects" class="py-5 bg-light">
<div class="container">
<h2 class="section-title text-center">Featured Projects</h2>
<div class="row">
{{range .Projects}}<div class="col-md-6 mb-4">
<div class="project-card">
<h4>{{.Name}}</h4>
<p>{{.Description}}</p>
<small class="text-muted">Technologies: {{.Technologies}}</small>
</div>
</div>
{{end}}</div>
</div>
</section>
{{end}}
{{if .Education}}
<section id="education" class="py-5">
<div class="container">
<h2 class="section-title text-center">Education</h2>
{{range .Education}}<div class="experience-card">
<h4>{{.Degree}}</h4>
<h6 class="text-muted">{{.Institution}}{{if .Year}} | {{.Year}}{{end}}</h6>
</div>
{{end}}</div>
</section>
{{end}}
{{if .Certifications}}
<section id="certifications" class="py-5 bg-light">
<div class="container">
<h2 class="section-title text-center">Certifications</h2>
{{range .Certifications}}<div class="achievement-item">{{.}}</div>
{{end}}</div>
</section>
{{end}}
<section id="contact" class="contact-info">
<div class="container text-center">
<h2 class="mb-4">Let's Get In Touch</h2>
{{if .Email}}<a href="mailto:{{.Email}}" class="btn btn-outline-light">{{.Email}}</a>{{end}}
{{if .Phone}}<a href="{{.PhoneHref}}" class="btn btn-outline-light">{{.Phone}}</a>{{end}}
</div>
</section>
<footer class="py-4 bg-dark text-white text-center">
<div class="container"><p>&copy; {{.Year}} {{.Name}}. All rights reserved.</p></div>
</footer>
</body>
</html>
`
