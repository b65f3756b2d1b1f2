package validate

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"github.com/samber/mo"

	"github.com/goliatone/go-formintake/pkg/field"
)

// Phone answers arrive in international notation, e.g. "+6598765432".
const localCallingCode = "+65"

var localMobilePattern = regexp.MustCompile(`^[89]\d{7}$`)

func (v *Validator) mobileValidator(schema field.Schema) step {
	return chain(
		phoneStep(phonenumbers.MOBILE, "answer is not a valid mobile number"),
		localMobileStep(schema.AllowIntl),
		v.signatureStep(schema),
	)
}

func homePhoneValidator(schema field.Schema) step {
	return chain(
		phoneStep(phonenumbers.FIXED_LINE, "answer is not a valid landline number"),
		localLandlineStep(schema.AllowIntl),
	)
}

// phoneStep parses and validates the answer as a phone number of the
// wanted line type. Numbers the metadata cannot tell apart
// (FIXED_LINE_OR_MOBILE) pass either way.
func phoneStep(want phonenumbers.PhoneNumberType, reason string) step {
	return func(resp field.Response) mo.Result[field.Response] {
		num, err := phonenumbers.Parse(resp.Answer, "SG")
		if err != nil || !phonenumbers.IsValidNumber(num) {
			return rejected(resp, CodeFormatInvalid, reason)
		}
		switch phonenumbers.GetNumberType(num) {
		case want, phonenumbers.FIXED_LINE_OR_MOBILE:
			return mo.Ok(resp)
		default:
			return rejected(resp, CodeFormatInvalid, reason)
		}
	}
}

// localMobileStep restricts answers to Singapore mobile numbers unless
// the schema allows international ones.
func localMobileStep(allowIntl bool) step {
	if allowIntl {
		return accept
	}
	return func(resp field.Response) mo.Result[field.Response] {
		num, err := phonenumbers.Parse(resp.Answer, "SG")
		if err != nil {
			return rejected(resp, CodeFormatInvalid, "answer is not a valid mobile number")
		}
		national := phonenumbers.GetNationalSignificantNumber(num)
		if !strings.HasPrefix(resp.Answer, localCallingCode) || !localMobilePattern.MatchString(national) {
			return rejected(resp, CodeFormatInvalid, "answer is not a local mobile number")
		}
		return mo.Ok(resp)
	}
}

func localLandlineStep(allowIntl bool) step {
	if allowIntl {
		return accept
	}
	return func(resp field.Response) mo.Result[field.Response] {
		if !strings.HasPrefix(resp.Answer, localCallingCode) {
			return rejected(resp, CodeFormatInvalid, "answer is not a local landline number")
		}
		return mo.Ok(resp)
	}
}
