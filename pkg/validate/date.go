package validate

import (
	"regexp"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/goliatone/go-formintake/pkg/field"
)

// Tolerances applied when comparing a submitted date against "today".
// The future window tolerates submitters in timezones ahead of UTC,
// the past window those behind.
const (
	futureTolerance = 14 * time.Hour
	pastTolerance   = 12 * time.Hour
)

var dateShape = regexp.MustCompile(`^\d{2} [A-Z][a-z]{2} \d{4}$`)

func (v *Validator) dateValidator(schema field.Schema) step {
	return chain(
		dateFormatStep,
		v.dateTodayStep(schema.Date),
		dateRangeStep(schema.Date),
		dateWeekdayStep(schema.Date),
	)
}

func dateFormatStep(resp field.Response) mo.Result[field.Response] {
	if _, err := parseDateAnswer(resp.Answer); err != nil {
		return rejected(resp, CodeFormatInvalid, "answer is not a valid date")
	}
	return mo.Ok(resp)
}

func parseDateAnswer(answer string) (time.Time, error) {
	if !dateShape.MatchString(answer) {
		return time.Time{}, &Rejection{Code: CodeFormatInvalid, Reason: "date shape mismatch"}
	}
	return time.ParseInLocation(field.DateAnswerFormat, answer, time.UTC)
}

func (v *Validator) dateTodayStep(rules field.DateRules) step {
	if !rules.NoFuture && !rules.NoPast {
		return accept
	}
	return func(resp field.Response) mo.Result[field.Response] {
		answer, _ := parseDateAnswer(resp.Answer)
		now := v.now().UTC()
		if rules.NoFuture {
			latest := dayOf(now.Add(futureTolerance))
			if answer.After(latest) {
				return rejected(resp, CodeRangeInvalid, "date is in the future")
			}
		}
		if rules.NoPast {
			earliest := dayOf(now.Add(-pastTolerance))
			if answer.Before(earliest) {
				return rejected(resp, CodeRangeInvalid, "date is in the past")
			}
		}
		return mo.Ok(resp)
	}
}

func dateRangeStep(rules field.DateRules) step {
	if rules.Min == nil && rules.Max == nil {
		return accept
	}
	return func(resp field.Response) mo.Result[field.Response] {
		answer, _ := parseDateAnswer(resp.Answer)
		if rules.Min != nil && answer.Before(dayOf(*rules.Min)) {
			return rejected(resp, CodeRangeInvalid, "date is before the allowed range")
		}
		if rules.Max != nil && answer.After(dayOf(*rules.Max)) {
			return rejected(resp, CodeRangeInvalid, "date is after the allowed range")
		}
		return mo.Ok(resp)
	}
}

func dateWeekdayStep(rules field.DateRules) step {
	if len(rules.DisallowedDays) == 0 {
		return accept
	}
	return func(resp field.Response) mo.Result[field.Response] {
		answer, _ := parseDateAnswer(resp.Answer)
		if lo.Contains(rules.DisallowedDays, answer.Weekday()) {
			return rejected(resp, CodeRangeInvalid, "date falls on a disallowed day of the week")
		}
		return mo.Ok(resp)
	}
}

// dayOf truncates t to midnight UTC.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
