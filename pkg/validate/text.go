package validate

import (
	"regexp"
	"strconv"

	"github.com/samber/mo"

	"github.com/goliatone/go-formintake/pkg/field"
)

var digitsOnly = regexp.MustCompile(`^\d*$`)

// textValidator covers short and long text. The only kind-specific
// rule is the configured length constraint.
func textValidator(schema field.Schema) step {
	return lengthStep(schema.Length)
}

// numberValidator checks the digit format first, then either the
// configured length constraint over the digit count or the configured
// value range, never both.
func numberValidator(schema field.Schema) step {
	return chain(
		numberFormatStep,
		numberConstraintStep(schema),
	)
}

func numberFormatStep(resp field.Response) mo.Result[field.Response] {
	if !digitsOnly.MatchString(resp.Answer) {
		return rejected(resp, CodeFormatInvalid, "answer is not a valid number format")
	}
	return mo.Ok(resp)
}

func numberConstraintStep(schema field.Schema) step {
	if schema.Length.Mode != field.LengthModeNone {
		return lengthStep(schema.Length)
	}
	if schema.Range.Min == nil && schema.Range.Max == nil {
		return accept
	}
	return func(resp field.Response) mo.Result[field.Response] {
		// Format step guarantees the parse.
		val, err := strconv.ParseFloat(resp.Answer, 64)
		if err != nil {
			return rejected(resp, CodeFormatInvalid, "answer is not a valid number format")
		}
		if schema.Range.Min != nil && val < *schema.Range.Min {
			return rejected(resp, CodeRangeInvalid, "answer is below the allowed range")
		}
		if schema.Range.Max != nil && val > *schema.Range.Max {
			return rejected(resp, CodeRangeInvalid, "answer is above the allowed range")
		}
		return mo.Ok(resp)
	}
}
