package validate

import (
	"time"

	"github.com/goliatone/go-formintake/pkg/field"
	"github.com/goliatone/go-formintake/pkg/verification"
)

// Validator dispatches (schema, response) pairs to the specialized
// per-kind chains. The zero configuration is usable: verifiable fields
// then fail closed because no signature verifier is installed.
type Validator struct {
	verifier verification.Verifier
	now      func() time.Time
}

// Option customises a Validator.
type Option func(*Validator)

// WithVerifier installs the signature verifier consulted for
// verifiable kinds (email, mobile).
func WithVerifier(v verification.Verifier) Option {
	return func(val *Validator) {
		val.verifier = v
	}
}

// WithClock overrides the time source used for date rules and
// signature recency. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(val *Validator) {
		val.now = now
	}
}

// New builds a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

var defaultValidator = New()

// Field validates one response against its schema using the default
// Validator. See Validator.Field.
func Field(schema field.Schema, resp field.Response) error {
	return defaultValidator.Field(schema, resp)
}

// Field validates resp against schema and returns nil on acceptance or
// a *Rejection naming the first failed check. Identifier and kind
// mismatches reject before any specialized logic runs; unanswered
// responses short-circuit on the required/visible rule alone.
func (v *Validator) Field(schema field.Schema, resp field.Response) error {
	if schema.ID != resp.ID || schema.Kind != resp.Kind {
		return &Rejection{
			Code:    CodeSchemaTypeMismatch,
			FieldID: resp.ID,
			Reason:  "response does not match the field schema",
		}
	}
	if !answered(resp) {
		// Display-only kinds carry no answer, so the required flag is
		// meaningless for them.
		if schema.Required && resp.IsVisible && !displayOnly(schema.Kind) {
			return &Rejection{
				Code:    CodeRequiredAnswerMissing,
				FieldID: resp.ID,
				Reason:  "required question has no answer",
			}
		}
		return nil
	}
	validator, ok := v.forKind(schema)
	if !ok {
		return &Rejection{
			Code:    CodeSchemaTypeMismatch,
			FieldID: resp.ID,
			Reason:  "unrecognized field kind " + string(schema.Kind),
		}
	}
	return validator(resp).Error()
}

// displayOnly reports kinds that render content but never collect an
// answer.
func displayOnly(kind field.Kind) bool {
	return kind == field.KindSection || kind == field.KindStatement
}

// forKind selects the specialized chain for the schema's kind. Every
// declared kind has exactly one chain; anything else reports !ok.
func (v *Validator) forKind(schema field.Schema) (step, bool) {
	switch schema.Kind {
	case field.KindShortText, field.KindLongText:
		return textValidator(schema), true
	case field.KindNumber:
		return numberValidator(schema), true
	case field.KindDecimal:
		return decimalValidator(schema), true
	case field.KindDate:
		return v.dateValidator(schema), true
	case field.KindNric:
		return nricValidator(), true
	case field.KindUen:
		return v.uenValidator(), true
	case field.KindEmail:
		return v.emailValidator(schema), true
	case field.KindMobile:
		return v.mobileValidator(schema), true
	case field.KindHomePhone:
		return homePhoneValidator(schema), true
	case field.KindDropdown:
		return memberStep(schema.Options), true
	case field.KindCountryRegion:
		return memberStep(field.Countries), true
	case field.KindRadio:
		return radioValidator(schema), true
	case field.KindCheckbox:
		return checkboxValidator(schema), true
	case field.KindRating:
		return ratingValidator(schema), true
	case field.KindYesNo:
		return yesNoValidator(), true
	case field.KindSection, field.KindStatement:
		return contentOnlyValidator(), true
	case field.KindAttachment:
		return attachmentValidator(schema), true
	case field.KindTable:
		return v.tableValidator(schema), true
	case field.KindChildren:
		return childrenValidator(schema), true
	default:
		return nil, false
	}
}
