package validate

import (
	"errors"
	"fmt"

	"github.com/samber/mo"

	"github.com/goliatone/go-formintake/pkg/field"
)

func (v *Validator) tableValidator(schema field.Schema) step {
	return chain(
		tableShapeStep(schema.Table),
		v.tableCellsStep(schema.Table),
	)
}

// tableShapeStep checks row count and row width. Tables that do not
// allow extra rows must carry exactly the minimum row count.
func tableShapeStep(t field.TableConstraints) step {
	if len(t.Columns) == 0 || t.MinRows <= 0 {
		return rejectWith(CodeSchemaConstraintInvalid, "table has no usable shape")
	}
	return func(resp field.Response) mo.Result[field.Response] {
		rows := len(resp.AnswerRows)
		if rows < t.MinRows {
			return rejected(resp, CodeTableShapeInvalid, fmt.Sprintf("table has %d rows, at least %d required", rows, t.MinRows))
		}
		if !t.AddMoreRows && rows != t.MinRows {
			return rejected(resp, CodeTableShapeInvalid, fmt.Sprintf("table has %d rows, exactly %d required", rows, t.MinRows))
		}
		if t.AddMoreRows && t.MaxRows > 0 && rows > t.MaxRows {
			return rejected(resp, CodeTableShapeInvalid, fmt.Sprintf("table has %d rows, at most %d allowed", rows, t.MaxRows))
		}
		for i, row := range resp.AnswerRows {
			if len(row) != len(t.Columns) {
				return rejected(resp, CodeTableShapeInvalid, fmt.Sprintf("row %d has %d cells, %d columns expected", i+1, len(row), len(t.Columns)))
			}
		}
		return mo.Ok(resp)
	}
}

// tableCellsStep validates each cell as a standalone answer against its
// column. Columns support the text and dropdown kinds only.
func (v *Validator) tableCellsStep(t field.TableConstraints) step {
	for _, col := range t.Columns {
		if col.Kind != field.KindShortText && col.Kind != field.KindDropdown {
			return rejectWith(CodeSchemaConstraintInvalid, "table column kind "+string(col.Kind)+" is not supported")
		}
	}
	return func(resp field.Response) mo.Result[field.Response] {
		for i, row := range resp.AnswerRows {
			for j, cell := range row {
				col := t.Columns[j]
				err := v.Field(columnSchema(col), columnResponse(col, cell))
				if err == nil {
					continue
				}
				var rej *Rejection
				if !errors.As(err, &rej) {
					return mo.Err[field.Response](err)
				}
				return mo.Err[field.Response](&Rejection{
					Code:    rej.Code,
					FieldID: resp.ID,
					Reason:  fmt.Sprintf("row %d column %q: %s", i+1, col.Title, rej.Reason),
				})
			}
		}
		return mo.Ok(resp)
	}
}

func columnSchema(col field.Column) field.Schema {
	return field.Schema{
		ID:       col.ID,
		Kind:     col.Kind,
		Title:    col.Title,
		Required: col.Required,
		Options:  col.Options,
	}
}

func columnResponse(col field.Column, cell string) field.Response {
	return field.Response{
		ID:        col.ID,
		Kind:      col.Kind,
		Question:  col.Title,
		Answer:    cell,
		IsVisible: true,
	}
}
