// Package receiver parses a streamed multipart submission into
// structured responses plus buffered file uploads, and reconciles the
// two once the stream closes.
//
// Wire contract: one part named "body" carries the JSON document
// {"responses": [...]}; every other part is a file upload whose part
// name is the filename and whose part filename is the identifier of
// the attachment field that collected it. The swapped roles are the
// established contract with existing clients and are preserved as-is.
package receiver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"go.uber.org/zap"

	"github.com/goliatone/go-formintake/pkg/attachment"
	"github.com/goliatone/go-formintake/pkg/field"
)

// bodyPartName is the part carrying the JSON responses document.
const bodyPartName = "body"

// State tracks the receiver through one submission stream.
type State string

const (
	StateCollecting State = "collecting"
	StateClosed     State = "closed"
	StateMatched    State = "matched"
	StateErrored    State = "errored"
)

var (
	// ErrParse covers malformed streams: multipart framing errors, a
	// missing or unreadable body part, or an undecodable responses
	// document.
	ErrParse = errors.New("receiver: multipart parse error")
	// ErrLimitExceeded reports a breached byte ceiling. The stream is
	// abandoned the moment the breach is detected.
	ErrLimitExceeded = errors.New("receiver: multipart limit exceeded")
	// ErrNoBoundary reports a request without a usable multipart
	// content type.
	ErrNoBoundary = errors.New("receiver: request has no multipart boundary")
)

// Receiver consumes one multipart submission stream. It is single-use
// and not safe for concurrent access.
type Receiver struct {
	reader *multipart.Reader
	logger *zap.Logger
	state  State
}

// Option customises a Receiver.
type Option func(*Receiver)

// WithLogger installs a logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Receiver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New builds a Receiver over a raw multipart stream.
func New(body io.Reader, boundary string, opts ...Option) *Receiver {
	r := &Receiver{
		reader: multipart.NewReader(body, boundary),
		logger: zap.NewNop(),
		state:  StateCollecting,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// FromRequest builds a Receiver over an HTTP request body, taking the
// boundary from the Content-Type header.
func FromRequest(req *http.Request, opts ...Option) (*Receiver, error) {
	mediaType, params, err := mime.ParseMediaType(req.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/form-data" || params["boundary"] == "" {
		return nil, ErrNoBoundary
	}
	return New(req.Body, params["boundary"], opts...), nil
}

// State reports where the receiver is in its lifecycle.
func (r *Receiver) State() State {
	return r.state
}

// Receive drains the stream and returns the reconciled responses. It
// blocks until the stream's terminal boundary because part ordering is
// not guaranteed; file parts may precede the body part. Breaching a
// byte ceiling aborts immediately with ErrLimitExceeded; everything
// else malformed surfaces as ErrParse.
func (r *Receiver) Receive(ctx context.Context) ([]field.Response, error) {
	responses, files, err := r.collect(ctx)
	if err != nil {
		r.state = StateErrored
		return nil, err
	}
	r.state = StateClosed
	if responses == nil {
		r.state = StateErrored
		return nil, fmt.Errorf("%w: body part was never received", ErrParse)
	}
	r.reconcile(responses, files)
	r.state = StateMatched
	r.logger.Debug("submission received",
		zap.Int("responses", len(responses)),
		zap.Int("files", len(files)))
	return responses, nil
}

func (r *Receiver) collect(ctx context.Context) ([]field.Response, []attachment.Info, error) {
	var (
		responses []field.Response
		files     []attachment.Info
		total     int64
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		part, err := r.reader.NextPart()
		if err == io.EOF {
			return responses, files, nil
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		if part.FormName() == bodyPartName && part.FileName() == "" {
			if responses != nil {
				return nil, nil, fmt.Errorf("%w: duplicate body part", ErrParse)
			}
			responses, err = r.parseBody(part)
			if err != nil {
				return nil, nil, err
			}
			continue
		}
		info, err := r.readFile(part)
		if err != nil {
			return nil, nil, err
		}
		total += int64(len(info.Content))
		if total > field.MaxTotalAttachmentSize {
			return nil, nil, fmt.Errorf("%w: attachments exceed the aggregate size ceiling", ErrLimitExceeded)
		}
		files = append(files, info)
	}
}

// parseBody decodes the JSON responses document, enforcing the
// per-field byte ceiling mid-read.
func (r *Receiver) parseBody(part *multipart.Part) ([]field.Response, error) {
	raw, err := readLimited(part, field.MaxFieldBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: body part exceeds the field size ceiling", ErrLimitExceeded)
	}
	return ParseResponses(raw)
}

// ParseResponses decodes a {"responses": [...]} document into
// responses. Visibility defaults to true when the document omits it.
func ParseResponses(raw []byte) ([]field.Response, error) {
	var doc struct {
		Responses []wireResponse `json:"responses"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode responses: %v", ErrParse, err)
	}
	responses := make([]field.Response, 0, len(doc.Responses))
	for _, wire := range doc.Responses {
		resp, err := wire.response()
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// readFile buffers one upload. The part name carries the filename and
// the part filename carries the owning field identifier.
func (r *Receiver) readFile(part *multipart.Part) (attachment.Info, error) {
	fieldID := part.FileName()
	if fieldID == "" {
		return attachment.Info{}, fmt.Errorf("%w: unexpected part %q", ErrParse, part.FormName())
	}
	content, err := readLimited(part, field.MaxAttachmentBytes)
	if err != nil {
		return attachment.Info{}, fmt.Errorf("%w: file for field %s exceeds the file size ceiling", ErrLimitExceeded, fieldID)
	}
	return attachment.Info{
		FieldID:  fieldID,
		Filename: part.FormName(),
		Content:  content,
	}, nil
}

// readLimited buffers at most limit bytes and errors as soon as the
// source yields one byte more.
func readLimited(src io.Reader, limit int64) ([]byte, error) {
	var buf bytes.Buffer
	n, err := buf.ReadFrom(io.LimitReader(src, limit+1))
	if err != nil {
		return nil, err
	}
	if n > limit {
		return nil, errors.New("limit exceeded")
	}
	return buf.Bytes(), nil
}

// reconcile renames colliding filenames and injects each upload into
// the attachment response that collected it. Uploads without a
// matching response are dropped.
func (r *Receiver) reconcile(responses []field.Response, files []attachment.Info) {
	attachment.DeduplicateNames(files)
	for _, info := range files {
		matched := false
		for i := range responses {
			if responses[i].ID != info.FieldID || responses[i].Kind != field.KindAttachment {
				continue
			}
			responses[i].Filename = info.Filename
			responses[i].Content = info.Content
			responses[i].Answer = info.Filename
			matched = true
			break
		}
		if !matched {
			r.logger.Warn("upload has no matching attachment response",
				zap.String("field_id", info.FieldID),
				zap.String("filename", info.Filename))
		}
	}
}

// wireResponse is the JSON shape of one submitted answer. The
// answerArray member is polymorphic: a string array for checkbox
// answers and an array of string arrays for table and children
// answers.
type wireResponse struct {
	ID             string          `json:"_id"`
	Kind           field.Kind      `json:"fieldType"`
	Question       string          `json:"question"`
	Answer         string          `json:"answer"`
	AnswerArray    json.RawMessage `json:"answerArray"`
	Filename       string          `json:"filename"`
	ChildAttrs     []string        `json:"childSubFieldsArray"`
	IsVisible      *bool           `json:"isVisible"`
	IsUserVerified bool            `json:"isUserVerified"`
	Signature      string          `json:"signature"`
	MyInfoAttr     string          `json:"myInfoAttr"`
}

func (w wireResponse) response() (field.Response, error) {
	resp := field.Response{
		ID:             w.ID,
		Kind:           w.Kind,
		Question:       w.Question,
		Answer:         w.Answer,
		Filename:       w.Filename,
		ChildAttrs:     w.ChildAttrs,
		IsVisible:      w.IsVisible == nil || *w.IsVisible,
		IsUserVerified: w.IsUserVerified,
		Signature:      w.Signature,
		MyInfoAttr:     w.MyInfoAttr,
	}
	if len(w.AnswerArray) == 0 || bytes.Equal(w.AnswerArray, []byte("null")) {
		return resp, nil
	}
	var flat []string
	if err := json.Unmarshal(w.AnswerArray, &flat); err == nil {
		resp.AnswerArray = flat
		return resp, nil
	}
	var rows [][]string
	if err := json.Unmarshal(w.AnswerArray, &rows); err == nil {
		resp.AnswerRows = rows
		return resp, nil
	}
	return field.Response{}, fmt.Errorf("%w: response %s has an undecodable answer array", ErrParse, w.ID)
}
