package validate

import (
	"testing"
	"time"

	"github.com/goliatone/go-formintake/pkg/field"
	"github.com/goliatone/go-formintake/pkg/testsupport"
	"github.com/goliatone/go-formintake/pkg/verification"
)

func TestEmailFormat(t *testing.T) {
	t.Parallel()

	schema := testsupport.Schema("f1", field.KindEmail)

	cases := []struct {
		answer   string
		wantCode Code
	}{
		{answer: "user@example.com", wantCode: ""},
		{answer: "first.last@sub.example.com", wantCode: ""},
		{answer: "no-at-sign", wantCode: CodeFormatInvalid},
		{answer: "user@nodot", wantCode: CodeFormatInvalid},
		{answer: "Display Name <user@example.com>", wantCode: CodeFormatInvalid},
	}
	for _, tc := range cases {
		err := Field(schema, testsupport.Response("f1", field.KindEmail, tc.answer))
		if CodeOf(err) != tc.wantCode {
			t.Fatalf("%q: expected code %q, got %v", tc.answer, tc.wantCode, err)
		}
	}
}

func TestEmailDomainAllowlist(t *testing.T) {
	t.Parallel()

	schema := testsupport.Schema("f1", field.KindEmail, func(s *field.Schema) {
		s.AllowedDomains = []string{"@agency.gov.sg"}
	})

	if err := Field(schema, testsupport.Response("f1", field.KindEmail, "officer@Agency.GOV.SG")); err != nil {
		t.Fatalf("allowlisted domain should be accepted, got %v", err)
	}
	err := Field(schema, testsupport.Response("f1", field.KindEmail, "user@example.com"))
	if CodeOf(err) != CodeOptionNotAllowed {
		t.Fatalf("other domains should be rejected, got %v", err)
	}
}

func TestVerifiableSignature(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	verifier := verification.NewHMAC([]byte("sekrit"))
	v := New(
		WithVerifier(verifier),
		WithClock(func() time.Time { return now }),
	)
	schema := testsupport.Schema("f1", field.KindEmail, func(s *field.Schema) {
		s.IsVerifiable = true
	})

	const answer = "user@example.com"

	resp := testsupport.Response("f1", field.KindEmail, answer, func(r *field.Response) {
		r.Signature = verifier.Sign("f1", answer, now.Add(-time.Hour))
	})
	if err := v.Field(schema, resp); err != nil {
		t.Fatalf("fresh signature should authenticate, got %v", err)
	}

	missing := testsupport.Response("f1", field.KindEmail, answer)
	if CodeOf(v.Field(schema, missing)) != CodeSignatureInvalid {
		t.Fatal("missing signature should be rejected")
	}

	stale := testsupport.Response("f1", field.KindEmail, answer, func(r *field.Response) {
		r.Signature = verifier.Sign("f1", answer, now.Add(-5*time.Hour))
	})
	if CodeOf(v.Field(schema, stale)) != CodeSignatureInvalid {
		t.Fatal("stale signature should be rejected")
	}

	wrongField := testsupport.Response("f1", field.KindEmail, answer, func(r *field.Response) {
		r.Signature = verifier.Sign("f2", answer, now.Add(-time.Hour))
	})
	if CodeOf(v.Field(schema, wrongField)) != CodeSignatureInvalid {
		t.Fatal("signature bound to another field should be rejected")
	}
}

func TestVerifiableFailsClosedWithoutVerifier(t *testing.T) {
	t.Parallel()

	schema := testsupport.Schema("f1", field.KindEmail, func(s *field.Schema) {
		s.IsVerifiable = true
	})
	resp := testsupport.Response("f1", field.KindEmail, "user@example.com", func(r *field.Response) {
		r.Signature = "v1:0:deadbeef"
	})

	if CodeOf(Field(schema, resp)) != CodeSignatureInvalid {
		t.Fatal("no installed verifier must reject verifiable answers")
	}
}

func TestMobileValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		allowIntl bool
		answer    string
		wantCode  Code
	}{
		{name: "local mobile", answer: "+6598765432", wantCode: ""},
		{name: "landline as mobile", answer: "+6561234567", wantCode: CodeFormatInvalid},
		{name: "garbage", answer: "not-a-number", wantCode: CodeFormatInvalid},
		{name: "foreign mobile blocked", answer: "+447911123456", wantCode: CodeFormatInvalid},
		{name: "foreign mobile allowed", allowIntl: true, answer: "+447911123456", wantCode: ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			schema := testsupport.Schema("f1", field.KindMobile, func(s *field.Schema) {
				s.AllowIntl = tc.allowIntl
			})
			resp := testsupport.Response("f1", field.KindMobile, tc.answer)

			err := Field(schema, resp)
			if CodeOf(err) != tc.wantCode {
				t.Fatalf("expected code %q, got %v", tc.wantCode, err)
			}
		})
	}
}

func TestHomePhoneValidation(t *testing.T) {
	t.Parallel()

	schema := testsupport.Schema("f1", field.KindHomePhone)

	if err := Field(schema, testsupport.Response("f1", field.KindHomePhone, "+6561234567")); err != nil {
		t.Fatalf("local landline should be accepted, got %v", err)
	}
	if Field(schema, testsupport.Response("f1", field.KindHomePhone, "+6598765432")) == nil {
		t.Fatal("mobile number should be rejected for a landline field")
	}
}
