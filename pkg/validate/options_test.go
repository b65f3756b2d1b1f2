package validate

import (
	"testing"

	"github.com/goliatone/go-formintake/pkg/field"
	"github.com/goliatone/go-formintake/pkg/testsupport"
)

func TestDropdownMembership(t *testing.T) {
	t.Parallel()

	schema := testsupport.Schema("f1", field.KindDropdown, func(s *field.Schema) {
		s.Options = []string{"red", "green", "blue"}
	})

	if err := Field(schema, testsupport.Response("f1", field.KindDropdown, "green")); err != nil {
		t.Fatalf("member should be accepted, got %v", err)
	}
	err := Field(schema, testsupport.Response("f1", field.KindDropdown, "Green"))
	if CodeOf(err) != CodeOptionNotAllowed {
		t.Fatalf("matching is case-sensitive, got %v", err)
	}
}

func TestCountryRegionMembership(t *testing.T) {
	t.Parallel()

	schema := testsupport.Schema("f1", field.KindCountryRegion)

	if err := Field(schema, testsupport.Response("f1", field.KindCountryRegion, "SINGAPORE")); err != nil {
		t.Fatalf("listed country should be accepted, got %v", err)
	}
	err := Field(schema, testsupport.Response("f1", field.KindCountryRegion, "Atlantis"))
	if CodeOf(err) != CodeOptionNotAllowed {
		t.Fatalf("unlisted country should be rejected, got %v", err)
	}
}

func TestRadioOthersEscape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		allowOthers bool
		answer      string
		wantCode    Code
	}{
		{name: "member", allowOthers: false, answer: "apple", wantCode: ""},
		{name: "non-member", allowOthers: false, answer: "mango", wantCode: CodeOptionNotAllowed},
		{name: "others with text", allowOthers: true, answer: "Others: mango", wantCode: ""},
		{name: "others with blank text", allowOthers: true, answer: "Others:  ", wantCode: CodeOthersTextMissing},
		{name: "others while disabled", allowOthers: false, answer: "Others: mango", wantCode: CodeOptionNotAllowed},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			schema := testsupport.Schema("f1", field.KindRadio, func(s *field.Schema) {
				s.Options = []string{"apple", "pear"}
				s.AllowOthers = tc.allowOthers
			})
			resp := testsupport.Response("f1", field.KindRadio, tc.answer)

			err := Field(schema, resp)
			if CodeOf(err) != tc.wantCode {
				t.Fatalf("expected code %q, got %v", tc.wantCode, err)
			}
		})
	}
}

func TestCheckboxValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		answers  []string
		wantCode Code
	}{
		{name: "two distinct members", answers: []string{"apple", "durian"}, wantCode: ""},
		{name: "duplicate member", answers: []string{"apple", "apple"}, wantCode: CodeDuplicateOption},
		{name: "non-member", answers: []string{"mango"}, wantCode: CodeOptionNotAllowed},
		{name: "others with text", answers: []string{"apple", "Others: rambutan"}, wantCode: ""},
		{name: "others with blank text", answers: []string{"apple", "Others: "}, wantCode: CodeOthersTextMissing},
		{name: "two others entries", answers: []string{"Others: a", "Others: b"}, wantCode: CodeDuplicateOption},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			schema := testsupport.Schema("f1", field.KindCheckbox, func(s *field.Schema) {
				s.Options = []string{"apple", "pear", "orange", "durian"}
				s.AllowOthers = true
			})
			resp := testsupport.Response("f1", field.KindCheckbox, "", func(r *field.Response) {
				r.AnswerArray = tc.answers
			})

			err := Field(schema, resp)
			if CodeOf(err) != tc.wantCode {
				t.Fatalf("expected code %q, got %v", tc.wantCode, err)
			}
		})
	}
}

func TestCheckboxSelectionBounds(t *testing.T) {
	t.Parallel()

	schema := testsupport.Schema("f1", field.KindCheckbox, func(s *field.Schema) {
		s.Options = []string{"a", "b", "c", "d"}
		s.Selection = field.SelectionConstraint{Enabled: true, Min: 2, Max: 3}
	})

	build := func(answers ...string) field.Response {
		return testsupport.Response("f1", field.KindCheckbox, "", func(r *field.Response) {
			r.AnswerArray = answers
		})
	}

	if CodeOf(Field(schema, build("a"))) != CodeRangeInvalid {
		t.Fatal("below minimum selection count should be rejected")
	}
	if CodeOf(Field(schema, build("a", "b", "c", "d"))) != CodeRangeInvalid {
		t.Fatal("above maximum selection count should be rejected")
	}
	if err := Field(schema, build("a", "b")); err != nil {
		t.Fatalf("in-bounds selection should be accepted, got %v", err)
	}
}

func TestRatingValidation(t *testing.T) {
	t.Parallel()

	schema := testsupport.Schema("f1", field.KindRating, func(s *field.Schema) {
		s.RatingSteps = 5
	})

	cases := []struct {
		answer   string
		wantCode Code
	}{
		{answer: "1", wantCode: ""},
		{answer: "5", wantCode: ""},
		{answer: "6", wantCode: CodeRangeInvalid},
		{answer: "0", wantCode: CodeFormatInvalid},
		{answer: "03", wantCode: CodeFormatInvalid},
		{answer: "two", wantCode: CodeFormatInvalid},
	}
	for _, tc := range cases {
		err := Field(schema, testsupport.Response("f1", field.KindRating, tc.answer))
		if CodeOf(err) != tc.wantCode {
			t.Fatalf("%q: expected code %q, got %v", tc.answer, tc.wantCode, err)
		}
	}
}

func TestYesNoValidation(t *testing.T) {
	t.Parallel()

	schema := testsupport.Schema("f1", field.KindYesNo)

	if err := Field(schema, testsupport.Response("f1", field.KindYesNo, field.YesAnswer)); err != nil {
		t.Fatalf("Yes should be accepted, got %v", err)
	}
	if err := Field(schema, testsupport.Response("f1", field.KindYesNo, field.NoAnswer)); err != nil {
		t.Fatalf("No should be accepted, got %v", err)
	}
	if CodeOf(Field(schema, testsupport.Response("f1", field.KindYesNo, "Maybe"))) != CodeOptionNotAllowed {
		t.Fatal("anything else should be rejected")
	}
}

func TestDisplayKindsRejectAnswers(t *testing.T) {
	t.Parallel()

	for _, kind := range []field.Kind{field.KindSection, field.KindStatement} {
		schema := testsupport.Schema("f1", kind, func(s *field.Schema) {
			s.Required = false
		})
		if err := Field(schema, testsupport.Response("f1", kind, "")); err != nil {
			t.Fatalf("%s without an answer should be accepted, got %v", kind, err)
		}
		if Field(schema, testsupport.Response("f1", kind, "sneaky")) == nil {
			t.Fatalf("%s with an answer should be rejected", kind)
		}
	}
}
