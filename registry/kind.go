package registry

import "github.com/krisalay/mind-reader/types"

// ContentKind is the declared content type of a file.
type ContentKind string

const (
	StructuredRecords ContentKind = "structured_records"
	Image             ContentKind = "image"
	DelimitedRows     ContentKind = "delimited_rows"
	TextLines         ContentKind = "text_lines"
)

// ParseContentKind resolves a declared content kind. Matching is exact; the
// short names json, csv and text are accepted as second spellings.
func ParseContentKind(s string) (ContentKind, error) {
	switch s {
	case string(StructuredRecords), "json":
		return StructuredRecords, nil
	case string(Image):
		return Image, nil
	case string(DelimitedRows), "csv":
		return DelimitedRows, nil
	case string(TextLines), "text":
		return TextLines, nil
	default:
		return "", &types.InvalidArgumentError{Field: "content kind", Value: s}
	}
}

func (k ContentKind) String() string { return string(k) }

// ContentKinds lists every supported content kind.
func ContentKinds() []ContentKind {
	return []ContentKind{StructuredRecords, Image, DelimitedRows, TextLines}
}
