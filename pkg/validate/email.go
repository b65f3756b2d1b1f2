package validate

import (
	"net/mail"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/goliatone/go-formintake/pkg/field"
)

func (v *Validator) emailValidator(schema field.Schema) step {
	return chain(
		emailFormatStep,
		emailDomainStep(schema.AllowedDomains),
		v.signatureStep(schema),
	)
}

// emailFormatStep accepts a single bare address with a dotted domain.
// Display names and address lists are not answers.
func emailFormatStep(resp field.Response) mo.Result[field.Response] {
	addr, err := mail.ParseAddress(resp.Answer)
	if err != nil || addr.Address != resp.Answer {
		return rejected(resp, CodeFormatInvalid, "answer is not a valid email address")
	}
	domain := resp.Answer[strings.LastIndex(resp.Answer, "@")+1:]
	if !strings.Contains(domain, ".") {
		return rejected(resp, CodeFormatInvalid, "answer is not a valid email address")
	}
	return mo.Ok(resp)
}

// emailDomainStep restricts the address to the schema's allowlist when
// one is configured. Domains compare case-insensitively and entries may
// be written with or without a leading "@".
func emailDomainStep(allowed []string) step {
	if len(allowed) == 0 {
		return accept
	}
	domains := lo.Map(allowed, func(d string, _ int) string {
		return strings.TrimPrefix(strings.ToLower(d), "@")
	})
	return func(resp field.Response) mo.Result[field.Response] {
		domain := strings.ToLower(resp.Answer[strings.LastIndex(resp.Answer, "@")+1:])
		if !lo.Contains(domains, domain) {
			return rejected(resp, CodeOptionNotAllowed, "email domain is not allowed")
		}
		return mo.Ok(resp)
	}
}
