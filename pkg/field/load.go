package field

import (
	"errors"
	"fmt"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// ErrInvalidForm reports a form definition that cannot be used for
// validation.
var ErrInvalidForm = errors.New("field: invalid form definition")

// LoadForm reads and parses a YAML form definition from disk.
func LoadForm(path string) (Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Form{}, fmt.Errorf("field: read form %s: %w", path, err)
	}
	return ParseForm(data)
}

// ParseForm parses a YAML form definition and checks its basic
// consistency: every field carries a non-empty unique identifier and a
// recognized kind.
func ParseForm(data []byte) (Form, error) {
	var form Form
	if err := yaml.Unmarshal(data, &form); err != nil {
		return Form{}, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}
	seen := make(map[string]struct{}, len(form.Fields))
	for i, schema := range form.Fields {
		if schema.ID == "" {
			return Form{}, fmt.Errorf("%w: field %d has no identifier", ErrInvalidForm, i)
		}
		if _, dup := seen[schema.ID]; dup {
			return Form{}, fmt.Errorf("%w: duplicate field identifier %s", ErrInvalidForm, schema.ID)
		}
		seen[schema.ID] = struct{}{}
		if !lo.Contains(Kinds, schema.Kind) {
			return Form{}, fmt.Errorf("%w: field %s has unrecognized kind %q", ErrInvalidForm, schema.ID, schema.Kind)
		}
	}
	return form, nil
}
