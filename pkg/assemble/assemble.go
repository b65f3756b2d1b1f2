// Package assemble turns a validated, ordered response list into the
// three parallel collections consumed by the outbound mailer and the
// export writer.
package assemble

import (
	"strings"

	"github.com/goliatone/go-formintake/pkg/field"
)

// AdminField is one line of the full admin-facing rendition. The
// question carries every applicable provenance prefix.
type AdminField struct {
	Question       string     `json:"question"`
	Answer         string     `json:"answer"`
	AnswerTemplate []string   `json:"answerTemplate"`
	Kind           field.Kind `json:"fieldType"`
}

// AutoReplyField is one line of the submitter-facing receipt. No
// prefixes; the answer is carried pre-split on newlines for email
// line breaks.
type AutoReplyField struct {
	Question       string   `json:"question"`
	AnswerTemplate []string `json:"answerTemplate"`
}

// CollationField is one line of the machine-readable export.
type CollationField struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SubmissionData is the assembler's full output. The three collections
// are built in one pass and preserve response order.
type SubmissionData struct {
	FormData          []AdminField
	AutoReplyData     []AutoReplyField
	DataCollationData []CollationField
}

// New assembles the collections from validated responses. verifiedIDs
// names the fields whose answers matched a trusted external record;
// those questions gain the external-record prefix in the admin
// rendition only.
//
// Expansion rules: a table yields one line per row with the row's
// cells joined by commas, a checkbox collapses to a single
// comma-joined line, and every other kind yields exactly one line.
// Invisible responses are withheld from the submitter receipt, and
// display-only kinds are withheld from the export.
func New(responses []field.Response, verifiedIDs map[string]struct{}) SubmissionData {
	var data SubmissionData
	for _, resp := range responses {
		for _, answer := range answerLines(resp) {
			data.FormData = append(data.FormData, AdminField{
				Question:       adminQuestion(resp, verifiedIDs),
				Answer:         answer,
				AnswerTemplate: strings.Split(answer, "\n"),
				Kind:           resp.Kind,
			})
			if resp.IsVisible {
				data.AutoReplyData = append(data.AutoReplyData, AutoReplyField{
					Question:       resp.Question,
					AnswerTemplate: strings.Split(answer, "\n"),
				})
			}
			if resp.Kind != field.KindSection && resp.Kind != field.KindStatement {
				data.DataCollationData = append(data.DataCollationData, CollationField{
					Question: kindPrefix(resp.Kind) + resp.Question,
					Answer:   answer,
				})
			}
		}
	}
	return data
}

// answerLines flattens one response into its display lines.
func answerLines(resp field.Response) []string {
	switch resp.Kind {
	case field.KindTable:
		lines := make([]string, 0, len(resp.AnswerRows))
		for _, row := range resp.AnswerRows {
			lines = append(lines, strings.Join(row, ","))
		}
		if len(lines) == 0 {
			return []string{""}
		}
		return lines
	case field.KindCheckbox:
		return []string{strings.Join(resp.AnswerArray, ", ")}
	case field.KindChildren:
		rows := make([]string, 0, len(resp.AnswerRows))
		for _, row := range resp.AnswerRows {
			rows = append(rows, strings.Join(row, ","))
		}
		return []string{strings.Join(rows, "; ")}
	default:
		return []string{resp.Answer}
	}
}

// adminQuestion prefixes the question for the admin rendition. Prefix
// order is fixed: kind, then external record, then user verification.
func adminQuestion(resp field.Response, verifiedIDs map[string]struct{}) string {
	question := resp.Question
	if resp.IsUserVerified {
		question = field.VerifiedPrefix + question
	}
	if _, ok := verifiedIDs[resp.ID]; ok {
		question = field.MyInfoPrefix + question
	}
	return kindPrefix(resp.Kind) + question
}

func kindPrefix(kind field.Kind) string {
	switch kind {
	case field.KindTable:
		return field.TablePrefix
	case field.KindAttachment:
		return field.AttachmentPrefix
	default:
		return ""
	}
}
