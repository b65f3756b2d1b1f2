// Package submission runs one submission through the full pipeline:
// schema matching, aggregate attachment limits, per-field validation
// and assembly of the outbound collections.
package submission

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-formintake/pkg/assemble"
	"github.com/goliatone/go-formintake/pkg/attachment"
	"github.com/goliatone/go-formintake/pkg/field"
	"github.com/goliatone/go-formintake/pkg/validate"
)

var (
	// ErrIncompleteSubmission reports a response list that does not
	// cover the form's fields one-to-one.
	ErrIncompleteSubmission = errors.New("submission: responses do not match the form's fields")
	// ErrAttachmentsTooLarge reports a breach of the aggregate
	// attachment size ceiling.
	ErrAttachmentsTooLarge = errors.New("submission: attachments exceed the aggregate size ceiling")
)

// Result is a fully processed, accepted submission.
type Result struct {
	Responses []field.Response
	Data      assemble.SubmissionData
	// EmailRecipients lists the answers of visible email fields, used
	// for submitter receipts.
	EmailRecipients []string
}

// Pipeline processes submissions for any number of forms. It is safe
// for concurrent use.
type Pipeline struct {
	validator *validate.Validator
	logger    *zap.Logger
}

// Option customises a Pipeline.
type Option func(*Pipeline)

// WithValidator installs a configured validator, typically one
// carrying a signature verifier.
func WithValidator(v *validate.Validator) Option {
	return func(p *Pipeline) {
		if v != nil {
			p.validator = v
		}
	}
}

// WithLogger installs a logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New builds a Pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		validator: validate.New(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Process validates every response against its schema and, when all
// are accepted, assembles the outbound collections. The first rejected
// field rejects the whole submission; responses are independent, so
// they validate concurrently, but the reported rejection is always the
// earliest in response order. verifiedIDs names the fields matched
// against a trusted external record.
func (p *Pipeline) Process(ctx context.Context, form field.Form, responses []field.Response, verifiedIDs map[string]struct{}) (*Result, error) {
	schemas, err := matchSchemas(form, responses)
	if err != nil {
		return nil, err
	}
	files := attachment.FromResponses(responses)
	if !attachment.WithinTotalLimit(files) {
		return nil, ErrAttachmentsTooLarge
	}
	if err := p.validateAll(ctx, schemas, responses); err != nil {
		p.logger.Info("submission rejected",
			zap.String("form_id", form.ID),
			zap.String("code", string(validate.CodeOf(err))),
			zap.Error(err))
		return nil, err
	}
	result := &Result{
		Responses:       responses,
		Data:            assemble.New(responses, verifiedIDs),
		EmailRecipients: emailRecipients(responses),
	}
	p.logger.Info("submission accepted",
		zap.String("form_id", form.ID),
		zap.Int("responses", len(responses)),
		zap.Int("attachments", len(files)))
	return result, nil
}

// matchSchemas pairs each response positionally with its schema. Every
// form field must be answered by exactly one response; extra or
// missing responses reject the submission outright.
func matchSchemas(form field.Form, responses []field.Response) ([]field.Schema, error) {
	if len(responses) != len(form.Fields) {
		return nil, fmt.Errorf("%w: form %s has %d fields, got %d responses",
			ErrIncompleteSubmission, form.ID, len(form.Fields), len(responses))
	}
	byID := lo.KeyBy(form.Fields, func(s field.Schema) string { return s.ID })
	schemas := make([]field.Schema, 0, len(responses))
	seen := make(map[string]struct{}, len(responses))
	for _, resp := range responses {
		schema, ok := byID[resp.ID]
		if !ok {
			return nil, fmt.Errorf("%w: response %s answers no field on form %s",
				ErrIncompleteSubmission, resp.ID, form.ID)
		}
		if _, dup := seen[resp.ID]; dup {
			return nil, fmt.Errorf("%w: field %s answered more than once",
				ErrIncompleteSubmission, resp.ID)
		}
		seen[resp.ID] = struct{}{}
		schemas = append(schemas, schema)
	}
	return schemas, nil
}

func (p *Pipeline) validateAll(ctx context.Context, schemas []field.Schema, responses []field.Response) error {
	outcomes := make([]error, len(responses))
	g, ctx := errgroup.WithContext(ctx)
	for i := range responses {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcomes[i] = p.validator.Field(schemas[i], responses[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	// Report the earliest rejection so the outcome does not depend on
	// goroutine scheduling.
	for _, err := range outcomes {
		if err != nil {
			return err
		}
	}
	return nil
}

func emailRecipients(responses []field.Response) []string {
	var recipients []string
	for _, resp := range responses {
		if resp.Kind == field.KindEmail && resp.IsVisible && resp.Answer != "" {
			recipients = append(recipients, resp.Answer)
		}
	}
	return recipients
}
