package assemble

import (
	"bytes"
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy

	adminTemplateOnce sync.Once
	adminTemplate     *template.Template
)

const adminSummarySource = `<h2>{{.Title}}</h2>
<p>Reference: {{.Reference}}</p>
<table>
<tbody>
{{- range .Fields}}
<tr>
<td><b>{{.Question}}</b></td>
<td>{{range $i, $line := .AnswerTemplate}}{{if $i}}<br>{{end}}{{$line}}{{end}}</td>
</tr>
{{- end}}
</tbody>
</table>
`

type adminSummary struct {
	Title     string
	Reference string
	Fields    []AdminField
}

// AdminSummaryHTML renders the admin notification body for one
// submission. Questions and answers are stripped of any embedded
// markup before templating.
func AdminSummaryHTML(title, reference string, data SubmissionData) (string, error) {
	summary := adminSummary{
		Title:     sanitizeText(title),
		Reference: sanitizeText(reference),
		Fields:    make([]AdminField, 0, len(data.FormData)),
	}
	for _, f := range data.FormData {
		lines := make([]string, 0, len(f.AnswerTemplate))
		for _, line := range f.AnswerTemplate {
			lines = append(lines, sanitizeText(line))
		}
		summary.Fields = append(summary.Fields, AdminField{
			Question:       sanitizeText(f.Question),
			AnswerTemplate: lines,
			Kind:           f.Kind,
		})
	}
	var buf bytes.Buffer
	if err := summaryTemplate().Execute(&buf, summary); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func summaryTemplate() *template.Template {
	adminTemplateOnce.Do(func() {
		adminTemplate = template.Must(template.New("admin_summary").Parse(adminSummarySource))
	})
	return adminTemplate
}

func sanitizeText(raw string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(textPolicy.Sanitize(raw))
}
