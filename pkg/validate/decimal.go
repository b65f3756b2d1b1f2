package validate

import (
	"regexp"
	"strconv"

	"github.com/samber/mo"

	"github.com/goliatone/go-formintake/pkg/field"
)

// decimalFormat requires a non-negative integer part with no leading
// zero and no empty leading part, followed by an optional fraction.
var decimalFormat = regexp.MustCompile(`^(0|[1-9]\d*)(\.\d+)?$`)

func decimalValidator(schema field.Schema) step {
	return chain(
		decimalFormatStep,
		decimalRangeStep(schema.Range),
	)
}

func decimalFormatStep(resp field.Response) mo.Result[field.Response] {
	if !decimalFormat.MatchString(resp.Answer) {
		return rejected(resp, CodeFormatInvalid, "answer is not a valid decimal")
	}
	if _, err := strconv.ParseFloat(resp.Answer, 64); err != nil {
		return rejected(resp, CodeFormatInvalid, "answer is not a valid decimal")
	}
	return mo.Ok(resp)
}

func decimalRangeStep(r field.ValueRange) step {
	if r.Min == nil && r.Max == nil {
		return accept
	}
	return func(resp field.Response) mo.Result[field.Response] {
		val, err := strconv.ParseFloat(resp.Answer, 64)
		if err != nil {
			return rejected(resp, CodeFormatInvalid, "answer is not a valid decimal")
		}
		if r.Min != nil && val < *r.Min {
			return rejected(resp, CodeRangeInvalid, "answer is below the allowed range")
		}
		if r.Max != nil && val > *r.Max {
			return rejected(resp, CodeRangeInvalid, "answer is above the allowed range")
		}
		return mo.Ok(resp)
	}
}
