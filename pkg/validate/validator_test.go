package validate

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formintake/pkg/field"
	"github.com/goliatone/go-formintake/pkg/testsupport"
)

func TestFieldRejectsIdentifierMismatch(t *testing.T) {
	t.Parallel()

	schema := testsupport.Schema("f1", field.KindShortText)
	resp := testsupport.Response("f2", field.KindShortText, "hello")

	err := Field(schema, resp)
	if CodeOf(err) != CodeSchemaTypeMismatch {
		t.Fatalf("expected schema type mismatch, got %v", err)
	}
}

func TestFieldRejectsKindMismatch(t *testing.T) {
	t.Parallel()

	schema := testsupport.Schema("f1", field.KindShortText)
	resp := testsupport.Response("f1", field.KindNumber, "42")

	err := Field(schema, resp)
	if CodeOf(err) != CodeSchemaTypeMismatch {
		t.Fatalf("expected schema type mismatch, got %v", err)
	}
}

func TestFieldRejectsUnknownKind(t *testing.T) {
	t.Parallel()

	schema := testsupport.Schema("f1", field.Kind("hologram"))
	resp := testsupport.Response("f1", field.Kind("hologram"), "hi")

	err := Field(schema, resp)
	if CodeOf(err) != CodeSchemaTypeMismatch {
		t.Fatalf("expected schema type mismatch, got %v", err)
	}
}

func TestFieldRequiredAndVisibility(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		required bool
		visible  bool
		wantCode Code
	}{
		{name: "required and visible", required: true, visible: true, wantCode: CodeRequiredAnswerMissing},
		{name: "required but hidden", required: true, visible: false, wantCode: ""},
		{name: "optional and visible", required: false, visible: true, wantCode: ""},
		{name: "optional and hidden", required: false, visible: false, wantCode: ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			schema := testsupport.Schema("f1", field.KindShortText, func(s *field.Schema) {
				s.Required = tc.required
			})
			resp := testsupport.Response("f1", field.KindShortText, "", func(r *field.Response) {
				r.IsVisible = tc.visible
			})

			err := Field(schema, resp)
			if CodeOf(err) != tc.wantCode {
				t.Fatalf("expected code %q, got %v", tc.wantCode, err)
			}
		})
	}
}

func TestFieldAcceptsRequiredDisplayKinds(t *testing.T) {
	t.Parallel()

	// Sections and statements never carry an answer, so marking them
	// required must not reject the mandatory empty response.
	for _, kind := range []field.Kind{field.KindSection, field.KindStatement} {
		schema := testsupport.Schema("f1", kind, func(s *field.Schema) {
			s.Required = true
		})
		resp := testsupport.Response("f1", kind, "")

		if err := Field(schema, resp); err != nil {
			t.Fatalf("%s: expected acceptance, got %v", kind, err)
		}
	}
}

func TestFieldSkipsConstraintsWhenUnanswered(t *testing.T) {
	t.Parallel()

	// The exact-length constraint would reject an empty answer, but an
	// optional unanswered field never reaches it.
	schema := testsupport.Schema("f1", field.KindShortText, func(s *field.Schema) {
		s.Required = false
		s.Length = field.LengthConstraint{Mode: field.LengthModeExact, Value: 5}
	})
	resp := testsupport.Response("f1", field.KindShortText, "")

	if err := Field(schema, resp); err != nil {
		t.Fatalf("expected acceptance, got %v", err)
	}
}

func TestFieldIsIdempotent(t *testing.T) {
	t.Parallel()

	schema := testsupport.Schema("f1", field.KindCheckbox, func(s *field.Schema) {
		s.Options = []string{"apple", "pear"}
	})
	resp := testsupport.Response("f1", field.KindCheckbox, "", func(r *field.Response) {
		r.AnswerArray = []string{"apple"}
	})
	before := resp

	if err := Field(schema, resp); err != nil {
		t.Fatalf("first validation failed: %v", err)
	}
	if err := Field(schema, resp); err != nil {
		t.Fatalf("second validation failed: %v", err)
	}
	if diff := cmp.Diff(before, resp); diff != "" {
		t.Fatalf("response mutated by validation (-want +got):\n%s", diff)
	}
}

func TestRejectionMatchesByCode(t *testing.T) {
	t.Parallel()

	schema := testsupport.Schema("f1", field.KindNumber)
	resp := testsupport.Response("f1", field.KindNumber, "12a")

	err := Field(schema, resp)
	if !errors.Is(err, &Rejection{Code: CodeFormatInvalid}) {
		t.Fatalf("expected format rejection, got %v", err)
	}
}

func TestEveryDeclaredKindHasAValidator(t *testing.T) {
	t.Parallel()

	v := New()
	for _, kind := range field.Kinds {
		if _, ok := v.forKind(field.Schema{Kind: kind}); !ok {
			t.Fatalf("kind %s has no validator", kind)
		}
	}
}
