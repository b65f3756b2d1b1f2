package validate

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/goliatone/go-formintake/pkg/field"
)

func childrenValidator(schema field.Schema) step {
	if len(schema.ChildAttrs) == 0 {
		return rejectWith(CodeSchemaConstraintInvalid, "children field has no configured attributes")
	}
	for _, attr := range schema.ChildAttrs {
		if !lo.Contains(field.ChildAttrs, attr) {
			return rejectWith(CodeSchemaConstraintInvalid, "unknown child attribute "+attr)
		}
	}
	return func(resp field.Response) mo.Result[field.Response] {
		if len(resp.ChildAttrs) != len(schema.ChildAttrs) {
			return rejected(resp, CodeChildrenShapeInvalid, "submitted attributes do not match the configured attributes")
		}
		for i, attr := range resp.ChildAttrs {
			if attr != schema.ChildAttrs[i] {
				return rejected(resp, CodeChildrenShapeInvalid, "submitted attributes do not match the configured attributes")
			}
		}
		for i, row := range resp.AnswerRows {
			if len(row) != len(schema.ChildAttrs) {
				return rejected(resp, CodeChildrenShapeInvalid, fmt.Sprintf("child %d has %d values, %d attributes expected", i+1, len(row), len(schema.ChildAttrs)))
			}
			if noChildRow(row) {
				continue
			}
			// A populated row must carry a value for every attribute; a
			// partially filled child is malformed.
			for j, val := range row {
				if val == field.NoChildSelected {
					return rejected(resp, CodeChildrenShapeInvalid, fmt.Sprintf("child %d has no %s", i+1, schema.ChildAttrs[j]))
				}
			}
		}
		return mo.Ok(resp)
	}
}

// noChildRow reports a row in which every value is the unselected
// sentinel, meaning the submitter chose no child for that slot.
func noChildRow(row []string) bool {
	return lo.EveryBy(row, func(v string) bool {
		return v == field.NoChildSelected
	})
}
