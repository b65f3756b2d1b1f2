package validate

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies which class of validation rule a response failed.
type Code string

const (
	CodeSchemaTypeMismatch      Code = "schema_type_mismatch"
	CodeSchemaConstraintInvalid Code = "schema_constraint_invalid"
	CodeRequiredAnswerMissing   Code = "required_answer_missing"
	CodeFormatInvalid           Code = "format_invalid"
	CodeRangeInvalid            Code = "range_invalid"
	CodeOptionNotAllowed        Code = "option_not_allowed"
	CodeDuplicateOption         Code = "duplicate_option_selected"
	CodeOthersTextMissing       Code = "others_text_missing"
	CodeSignatureInvalid        Code = "signature_invalid"
	CodeAttachmentEmpty         Code = "attachment_empty"
	CodeAttachmentTooLarge      Code = "attachment_too_large"
	CodeInvalidFileExtension    Code = "invalid_file_extension"
	CodeTableShapeInvalid       Code = "table_shape_invalid"
	CodeChildrenShapeInvalid    Code = "children_shape_invalid"
)

// Rejection is the typed outcome for an expected-invalid answer. It is
// always returned, never panicked; truly exceptional conditions (for
// example a corrupt archive during scanning) surface as ordinary
// wrapped errors instead.
type Rejection struct {
	Code    Code
	FieldID string
	Reason  string
	// Extensions carries every offending extension found during an
	// attachment scan; empty for all other codes.
	Extensions []string
}

func (r *Rejection) Error() string {
	msg := fmt.Sprintf("validate: %s: %s", r.Code, r.Reason)
	if len(r.Extensions) > 0 {
		msg += " (" + strings.Join(r.Extensions, ", ") + ")"
	}
	if r.FieldID != "" {
		msg += " [field " + r.FieldID + "]"
	}
	return msg
}

// Is reports code equality so callers can match rejections with
// errors.Is against a bare-code template.
func (r *Rejection) Is(target error) bool {
	var other *Rejection
	if !errors.As(target, &other) {
		return false
	}
	return other.Code == r.Code
}

// CodeOf extracts the rejection code from err, or "" when err is not a
// Rejection.
func CodeOf(err error) Code {
	var r *Rejection
	if errors.As(err, &r) {
		return r.Code
	}
	return ""
}
