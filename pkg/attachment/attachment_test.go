package attachment

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formintake/pkg/field"
	"github.com/goliatone/go-formintake/pkg/testsupport"
)

func TestFromResponsesKeepsOrderAndSkipsEmpty(t *testing.T) {
	t.Parallel()

	responses := []field.Response{
		{ID: "f1", Kind: field.KindAttachment, Filename: "a.txt", Content: []byte("a")},
		{ID: "f2", Kind: field.KindShortText, Answer: "hello"},
		{ID: "f3", Kind: field.KindAttachment},
		{ID: "f4", Kind: field.KindAttachment, Filename: "b.txt", Content: []byte("b")},
	}

	got := FromResponses(responses)
	want := []Info{
		{FieldID: "f1", Filename: "a.txt", Content: []byte("a")},
		{FieldID: "f4", Filename: "b.txt", Content: []byte("b")},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected infos (-want +got):\n%s", diff)
	}
}

func TestDeduplicateNames(t *testing.T) {
	t.Parallel()

	infos := []Info{
		{FieldID: "f1", Filename: "a.txt"},
		{FieldID: "f2", Filename: "a.txt"},
		{FieldID: "f3", Filename: "a.txt"},
		{FieldID: "f4", Filename: "b.txt"},
	}
	DeduplicateNames(infos)

	want := []string{"2-a.txt", "1-a.txt", "a.txt", "b.txt"}
	for i, info := range infos {
		if info.Filename != want[i] {
			t.Fatalf("position %d: expected %q, got %q", i, want[i], info.Filename)
		}
	}

	names := map[string]struct{}{}
	for _, info := range infos {
		names[info.Filename] = struct{}{}
	}
	if len(names) != len(infos) {
		t.Fatalf("expected %d distinct names, got %d", len(infos), len(names))
	}
}

func TestTotalSizeLimit(t *testing.T) {
	t.Parallel()

	within := []Info{
		{Content: make([]byte, 4*field.MB)},
		{Content: make([]byte, 3*field.MB)},
	}
	if !WithinTotalLimit(within) {
		t.Fatal("7 MB aggregate should fit")
	}

	over := append(within, Info{Content: make([]byte, 1)})
	if WithinTotalLimit(over) {
		t.Fatal("aggregate above 7 MB should not fit")
	}
}

func TestInvalidExtensionsDirectFile(t *testing.T) {
	t.Parallel()

	invalid, err := InvalidExtensions("malware.exe", []byte("MZ"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{".exe"}, invalid); diff != "" {
		t.Fatalf("unexpected extensions (-want +got):\n%s", diff)
	}

	invalid, err = InvalidExtensions("Report.PDF", []byte("%PDF"))
	if err != nil || invalid != nil {
		t.Fatalf("upper-case allowed extension should pass, got %v %v", invalid, err)
	}
}

func TestInvalidExtensionsZip(t *testing.T) {
	t.Parallel()

	archive := testsupport.ZipBytes(t, map[string][]byte{
		"fine.txt":      []byte("ok"),
		"bad.rubbish":   []byte("no"),
		"also.rubbish":  []byte("no"),
		"__MACOSX/x.ds": []byte("meta"),
	})

	invalid, err := InvalidExtensions("bundle.zip", archive)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{".rubbish"}, invalid); diff != "" {
		t.Fatalf("expected deduplicated .rubbish, got (-want +got):\n%s", diff)
	}
}

func TestInvalidExtensionsNestedZip(t *testing.T) {
	t.Parallel()

	inner := testsupport.ZipBytes(t, map[string][]byte{
		"deep.rubbish": []byte("no"),
	})
	outer := testsupport.ZipBytes(t, map[string][]byte{
		"inner.zip": inner,
		"fine.txt":  []byte("ok"),
	})

	invalid, err := InvalidExtensions("bundle.zip", outer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{".rubbish"}, invalid); diff != "" {
		t.Fatalf("unexpected extensions (-want +got):\n%s", diff)
	}
}

func TestInvalidExtensionsDepthLimit(t *testing.T) {
	t.Parallel()

	archive := testsupport.ZipBytes(t, map[string][]byte{"x.txt": []byte("ok")})
	for i := 0; i < maxArchiveDepth; i++ {
		archive = testsupport.ZipBytes(t, map[string][]byte{"nested.zip": archive})
	}

	if _, err := InvalidExtensions("bundle.zip", archive); !errors.Is(err, ErrArchiveTooDeep) {
		t.Fatalf("expected depth error, got %v", err)
	}
}

func TestInvalidExtensionsCorruptArchive(t *testing.T) {
	t.Parallel()

	if _, err := InvalidExtensions("bundle.zip", []byte("not a zip")); err == nil {
		t.Fatal("corrupt archive should error")
	}
}
