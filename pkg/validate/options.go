package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/goliatone/go-formintake/pkg/field"
)

func radioValidator(schema field.Schema) step {
	return func(resp field.Response) mo.Result[field.Response] {
		if lo.Contains(schema.Options, resp.Answer) {
			return mo.Ok(resp)
		}
		if schema.AllowOthers && strings.HasPrefix(resp.Answer, field.OthersPrefix) {
			if isOthersAnswer(true, resp.Answer) {
				return mo.Ok(resp)
			}
			return rejected(resp, CodeOthersTextMissing, "others answer has no text")
		}
		return rejected(resp, CodeOptionNotAllowed, "answer is not one of the allowed options")
	}
}

func checkboxValidator(schema field.Schema) step {
	return chain(
		checkboxCountStep(schema.Selection),
		checkboxOptionsStep(schema),
	)
}

// checkboxCountStep enforces the configured selection bounds. A zero
// bound means unbounded on that side.
func checkboxCountStep(c field.SelectionConstraint) step {
	if !c.Enabled {
		return accept
	}
	return func(resp field.Response) mo.Result[field.Response] {
		n := len(resp.AnswerArray)
		if c.Min > 0 && n < c.Min {
			return rejected(resp, CodeRangeInvalid, "fewer selections than the minimum")
		}
		if c.Max > 0 && n > c.Max {
			return rejected(resp, CodeRangeInvalid, "more selections than the maximum")
		}
		return mo.Ok(resp)
	}
}

// checkboxOptionsStep checks every selection. At most one "others"
// escape entry is allowed and it must carry text; every other entry
// must be a distinct configured option.
func checkboxOptionsStep(schema field.Schema) step {
	return func(resp field.Response) mo.Result[field.Response] {
		others := 0
		members := make([]string, 0, len(resp.AnswerArray))
		for _, ans := range resp.AnswerArray {
			if schema.AllowOthers && strings.HasPrefix(ans, field.OthersPrefix) {
				if !isOthersAnswer(true, ans) {
					return rejected(resp, CodeOthersTextMissing, "others answer has no text")
				}
				others++
				continue
			}
			members = append(members, ans)
		}
		if others > 1 {
			return rejected(resp, CodeDuplicateOption, "more than one others answer")
		}
		for _, ans := range members {
			if !lo.Contains(schema.Options, ans) {
				return rejected(resp, CodeOptionNotAllowed, "answer is not one of the allowed options")
			}
		}
		if len(lo.Uniq(members)) != len(members) {
			return rejected(resp, CodeDuplicateOption, "the same option was selected twice")
		}
		return mo.Ok(resp)
	}
}

var ratingShape = regexp.MustCompile(`^[1-9]\d*$`)

func ratingValidator(schema field.Schema) step {
	if schema.RatingSteps <= 0 {
		return rejectWith(CodeSchemaConstraintInvalid, "rating scale has no steps")
	}
	return func(resp field.Response) mo.Result[field.Response] {
		if !ratingShape.MatchString(resp.Answer) {
			return rejected(resp, CodeFormatInvalid, "answer is not a valid rating")
		}
		val, err := strconv.Atoi(resp.Answer)
		if err != nil || val > schema.RatingSteps {
			return rejected(resp, CodeRangeInvalid, "rating is outside the scale")
		}
		return mo.Ok(resp)
	}
}

func yesNoValidator() step {
	return func(resp field.Response) mo.Result[field.Response] {
		if resp.Answer == field.YesAnswer || resp.Answer == field.NoAnswer {
			return mo.Ok(resp)
		}
		return rejected(resp, CodeOptionNotAllowed, "answer must be Yes or No")
	}
}

// contentOnlyValidator covers display-only kinds. They carry no answer,
// so anything that reaches the chain is a forged response.
func contentOnlyValidator() step {
	return func(resp field.Response) mo.Result[field.Response] {
		return rejected(resp, CodeFormatInvalid, "field does not accept an answer")
	}
}
