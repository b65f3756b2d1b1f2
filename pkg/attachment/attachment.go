// Package attachment inspects uploaded file content: extension
// allowlisting with recursive archive scanning, aggregate size
// accounting and collision-free naming for outbound mail.
package attachment

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/goliatone/go-formintake/pkg/field"
)

// Archives nested deeper than this are treated as unreadable.
const maxArchiveDepth = 5

// ErrArchiveTooDeep reports an archive whose nesting exceeds the scan
// depth limit.
var ErrArchiveTooDeep = errors.New("attachment: archive nesting exceeds scan depth")

// Info is one uploaded file tied to the field that collected it.
type Info struct {
	FieldID  string
	Filename string
	Content  []byte
}

// FromResponses extracts the uploaded files carried by attachment
// responses, preserving response order. Responses without content are
// skipped.
func FromResponses(responses []field.Response) []Info {
	var infos []Info
	for _, resp := range responses {
		if resp.Kind != field.KindAttachment || len(resp.Content) == 0 {
			continue
		}
		infos = append(infos, Info{
			FieldID:  resp.ID,
			Filename: resp.Filename,
			Content:  resp.Content,
		})
	}
	return infos
}

// TotalSize sums the content bytes across all files.
func TotalSize(infos []Info) int64 {
	var total int64
	for _, info := range infos {
		total += int64(len(info.Content))
	}
	return total
}

// WithinTotalLimit reports whether the files together fit the aggregate
// per-submission ceiling.
func WithinTotalLimit(infos []Info) bool {
	return TotalSize(infos) <= field.MaxTotalAttachmentSize
}

// DeduplicateNames renames colliding filenames in place. Earlier
// occurrences of a repeated name gain a decreasing numeric prefix and
// the final occurrence keeps the original name, so three files named
// "a.txt" become "2-a.txt", "1-a.txt" and "a.txt".
func DeduplicateNames(infos []Info) {
	remaining := lo.CountValues(lo.Map(infos, func(info Info, _ int) string {
		return info.Filename
	}))
	for i := range infos {
		name := infos[i].Filename
		if remaining[name] > 1 {
			remaining[name]--
			infos[i].Filename = fmt.Sprintf("%d-%s", remaining[name], name)
		}
	}
}

// Extension returns the lowercased filename extension including the
// leading dot, or "" when there is none.
func Extension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// IsAllowedExtension reports whether ext is on the upload allowlist.
func IsAllowedExtension(ext string) bool {
	return lo.Contains(field.ValidExtensions, ext)
}

// InvalidExtensions returns every disallowed extension reachable from
// the file: the file's own extension when disallowed, or for zip
// archives the disallowed extensions of all entries, scanning nested
// archives up to the depth limit. The list is deduplicated in
// encounter order. Unreadable archives return an error.
func InvalidExtensions(filename string, content []byte) ([]string, error) {
	ext := Extension(filename)
	if !IsAllowedExtension(ext) {
		return []string{ext}, nil
	}
	if ext != ".zip" {
		return nil, nil
	}
	invalid, err := scanArchive(content, 1)
	if err != nil {
		return nil, err
	}
	return lo.Uniq(invalid), nil
}

func scanArchive(content []byte, depth int) ([]string, error) {
	if depth > maxArchiveDepth {
		return nil, ErrArchiveTooDeep
	}
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("attachment: read archive: %w", err)
	}
	var invalid []string
	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() || isMetadataEntry(entry.Name) {
			continue
		}
		ext := Extension(entry.Name)
		if ext == ".zip" {
			nested, err := readArchiveEntry(entry)
			if err != nil {
				return nil, err
			}
			more, err := scanArchive(nested, depth+1)
			if err != nil {
				return nil, err
			}
			invalid = append(invalid, more...)
			continue
		}
		if !IsAllowedExtension(ext) {
			invalid = append(invalid, ext)
		}
	}
	return invalid, nil
}

func readArchiveEntry(entry *zip.File) ([]byte, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("attachment: open archive entry %q: %w", entry.Name, err)
	}
	defer rc.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rc); err != nil {
		return nil, fmt.Errorf("attachment: read archive entry %q: %w", entry.Name, err)
	}
	return buf.Bytes(), nil
}

// isMetadataEntry filters archive bookkeeping entries that carry no
// user content.
func isMetadataEntry(name string) bool {
	return strings.HasPrefix(name, "__MACOSX/") || strings.HasPrefix(filepath.Base(name), ".")
}
