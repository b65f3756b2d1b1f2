package validate

import (
	"github.com/samber/mo"

	"github.com/goliatone/go-formintake/pkg/field"
)

// step is one check in a validator chain: it either passes the response
// through untouched or rejects it with a typed reason. Steps are pure;
// composing them with chain short-circuits on the first rejection.
type step func(field.Response) mo.Result[field.Response]

// chain composes steps left to right over mo.Result, propagating the
// first rejection without evaluating later steps.
func chain(steps ...step) step {
	return func(resp field.Response) mo.Result[field.Response] {
		out := mo.Ok(resp)
		for _, s := range steps {
			out = out.FlatMap(s)
		}
		return out
	}
}

func accept(resp field.Response) mo.Result[field.Response] {
	return mo.Ok(resp)
}

func rejected(resp field.Response, code Code, reason string) mo.Result[field.Response] {
	return mo.Err[field.Response](&Rejection{Code: code, FieldID: resp.ID, Reason: reason})
}

// rejectWith builds a step that fails every response with the same
// reason. Used for impossible schema configurations, which fail closed.
func rejectWith(code Code, reason string) step {
	return func(resp field.Response) mo.Result[field.Response] {
		return rejected(resp, code, reason)
	}
}
