// Package testsupport carries fixture builders shared by the package
// tests: schemas, responses, zip payloads and multipart submission
// bodies.
package testsupport

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"mime/multipart"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formintake/pkg/field"
)

// Schema builds a required field schema and applies the optional
// mutators. Testing helpers fail the test on error to keep contract
// tests concise.
func Schema(id string, kind field.Kind, mutate ...func(*field.Schema)) field.Schema {
	schema := field.Schema{
		ID:       id,
		Kind:     kind,
		Title:    "Question " + id,
		Required: true,
	}
	for _, m := range mutate {
		m(&schema)
	}
	return schema
}

// Response builds a visible response answering the given field.
func Response(id string, kind field.Kind, answer string, mutate ...func(*field.Response)) field.Response {
	resp := field.Response{
		ID:        id,
		Kind:      kind,
		Question:  "Question " + id,
		Answer:    answer,
		IsVisible: true,
	}
	for _, m := range mutate {
		m(&resp)
	}
	return resp
}

// ZipBytes assembles an in-memory zip archive from entry names to
// contents.
func ZipBytes(t *testing.T, entries map[string][]byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		if _, err := f.Write(content); err != nil {
			t.Fatalf("write zip entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

// FilePart is one upload in a multipart fixture. The wire contract
// names the part after the filename and keys the part's filename to
// the owning field.
type FilePart struct {
	FieldID  string
	Filename string
	Content  []byte
}

// MultipartBody encodes a submission stream: a "body" part carrying
// the responses document plus one part per file. Returns the raw body
// and its boundary.
func MultipartBody(t *testing.T, responses []map[string]any, files []FilePart) ([]byte, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	doc, err := json.Marshal(map[string]any{"responses": responses})
	if err != nil {
		t.Fatalf("encode responses: %v", err)
	}
	body, err := w.CreateFormField("body")
	if err != nil {
		t.Fatalf("create body part: %v", err)
	}
	if _, err := body.Write(doc); err != nil {
		t.Fatalf("write body part: %v", err)
	}

	for _, file := range files {
		part, err := w.CreateFormFile(file.Filename, file.FieldID)
		if err != nil {
			t.Fatalf("create file part %s: %v", file.Filename, err)
		}
		if _, err := part.Write(file.Content); err != nil {
			t.Fatalf("write file part %s: %v", file.Filename, err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return buf.Bytes(), w.Boundary()
}

// RequireEqual fails the test with a diff when got and want differ.
func RequireEqual(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()

	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Fatalf("unexpected value (-want +got):\n%s", diff)
	}
}
