package validate

import (
	"testing"

	"github.com/goliatone/go-formintake/pkg/field"
	"github.com/goliatone/go-formintake/pkg/testsupport"
)

func checkNric(t *testing.T, answer string) error {
	t.Helper()

	schema := testsupport.Schema("f1", field.KindNric)
	resp := testsupport.Response("f1", field.KindNric, answer)
	return Field(schema, resp)
}

func TestNricAcceptsValidNumbers(t *testing.T) {
	t.Parallel()

	for _, answer := range []string{"S1234567D", "F1234567N", "T0000001E"} {
		if err := checkNric(t, answer); err != nil {
			t.Fatalf("%s should be accepted, got %v", answer, err)
		}
	}
}

func TestNricRejectsBadShapes(t *testing.T) {
	t.Parallel()

	for _, answer := range []string{"A1234567D", "S123456D", "S12345678D", "s1234567d", "S1234567"} {
		if CodeOf(checkNric(t, answer)) != CodeFormatInvalid {
			t.Fatalf("%s should be rejected", answer)
		}
	}
}

func TestNricTrailingLetterIsUnique(t *testing.T) {
	t.Parallel()

	// Exactly one of the 26 possible trailing letters satisfies the
	// checksum for a given digit prefix.
	const prefix = "S1234567"
	accepted := 0
	for letter := 'A'; letter <= 'Z'; letter++ {
		if checkNric(t, prefix+string(letter)) == nil {
			accepted++
		}
	}
	if accepted != 1 {
		t.Fatalf("expected exactly 1 accepted trailing letter, got %d", accepted)
	}
}
