package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/goliatone/go-formintake/pkg/field"
)

// answered reports whether the response carries any user data for its
// kind. Unanswered responses never reach a kind-specific chain: they
// are rejected outright when required and visible, accepted otherwise.
func answered(resp field.Response) bool {
	switch resp.Kind {
	case field.KindCheckbox:
		return len(resp.AnswerArray) > 0
	case field.KindTable, field.KindChildren:
		return len(resp.AnswerRows) > 0
	default:
		return resp.Answer != ""
	}
}

// lengthStep enforces a LengthConstraint over the given count function.
// A set mode with a non-positive value is an inconsistent schema and
// fails closed.
func lengthStep(c field.LengthConstraint) step {
	if c.Mode == field.LengthModeNone {
		return accept
	}
	if c.Value <= 0 {
		return rejectWith(CodeSchemaConstraintInvalid, "length constraint has no usable bound")
	}
	return func(resp field.Response) mo.Result[field.Response] {
		n := utf8.RuneCountInString(resp.Answer)
		switch c.Mode {
		case field.LengthModeExact:
			if n != c.Value {
				return rejected(resp, CodeRangeInvalid, "answer does not match the exact length")
			}
		case field.LengthModeMinimum:
			if n < c.Value {
				return rejected(resp, CodeRangeInvalid, "answer is shorter than the minimum length")
			}
		case field.LengthModeMaximum:
			if n > c.Value {
				return rejected(resp, CodeRangeInvalid, "answer is longer than the maximum length")
			}
		default:
			return rejected(resp, CodeSchemaConstraintInvalid, "unknown length mode")
		}
		return mo.Ok(resp)
	}
}

// memberStep accepts only answers present in the given option list.
// Matching is case-sensitive and exact.
func memberStep(options []string) step {
	return func(resp field.Response) mo.Result[field.Response] {
		if lo.Contains(options, resp.Answer) {
			return mo.Ok(resp)
		}
		return rejected(resp, CodeOptionNotAllowed, "answer is not one of the allowed options")
	}
}

// isOthersAnswer reports whether value is a well-formed "others" escape
// answer: enabled, carrying the fixed prefix, with a non-blank
// remainder.
func isOthersAnswer(enabled bool, value string) bool {
	if !enabled || !strings.HasPrefix(value, field.OthersPrefix) {
		return false
	}
	return strings.TrimSpace(strings.TrimPrefix(value, field.OthersPrefix)) != ""
}

// signatureStep authenticates verifiable answers. The signature must
// bind the exact field identifier and answer string within the
// verifier's recency window; schemas that opt out of verification skip
// the check entirely. A missing verifier fails closed.
func (v *Validator) signatureStep(schema field.Schema) step {
	if !schema.IsVerifiable {
		return accept
	}
	return func(resp field.Response) mo.Result[field.Response] {
		if resp.Signature == "" {
			return rejected(resp, CodeSignatureInvalid, "signature is missing")
		}
		if v.verifier == nil || !v.verifier.Verify(resp.Signature, resp.ID, resp.Answer, v.now()) {
			return rejected(resp, CodeSignatureInvalid, "signature did not authenticate")
		}
		return mo.Ok(resp)
	}
}
