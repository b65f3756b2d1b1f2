package validate

import (
	"fmt"
	"strings"

	"github.com/samber/mo"

	"github.com/goliatone/go-formintake/pkg/attachment"
	"github.com/goliatone/go-formintake/pkg/field"
)

func attachmentValidator(schema field.Schema) step {
	return chain(
		attachmentContentStep,
		attachmentSizeStep(schema.AttachmentSize),
		attachmentExtensionStep,
	)
}

// attachmentContentStep rejects answered attachments whose upload never
// arrived or arrived empty.
func attachmentContentStep(resp field.Response) mo.Result[field.Response] {
	if len(resp.Content) == 0 {
		return rejected(resp, CodeAttachmentEmpty, "attachment has no content")
	}
	return mo.Ok(resp)
}

// attachmentSizeStep enforces the per-field size limit, configured in
// megabytes. A non-positive limit is an inconsistent schema.
func attachmentSizeStep(sizeMB int) step {
	if sizeMB <= 0 {
		return rejectWith(CodeSchemaConstraintInvalid, "attachment size limit is not configured")
	}
	limit := int64(sizeMB) * field.MB
	return func(resp field.Response) mo.Result[field.Response] {
		if int64(len(resp.Content)) > limit {
			return rejected(resp, CodeAttachmentTooLarge, fmt.Sprintf("attachment exceeds the %d MB limit", sizeMB))
		}
		return mo.Ok(resp)
	}
}

func attachmentExtensionStep(resp field.Response) mo.Result[field.Response] {
	invalid, err := attachment.InvalidExtensions(resp.Filename, resp.Content)
	if err != nil {
		return rejected(resp, CodeInvalidFileExtension, "attachment archive could not be scanned")
	}
	if len(invalid) > 0 {
		return mo.Err[field.Response](&Rejection{
			Code:       CodeInvalidFileExtension,
			FieldID:    resp.ID,
			Reason:     "attachment contains disallowed file types: " + strings.Join(invalid, ", "),
			Extensions: invalid,
		})
	}
	return mo.Ok(resp)
}
