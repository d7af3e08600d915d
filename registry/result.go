package registry

import (
	"github.com/krisalay/mind-reader/decode"
	"github.com/krisalay/mind-reader/seq"
)

// Result is what one read returns. Kind tells which of the other fields is set.
type Result struct {
	Kind    ContentKind
	Records *seq.Sequence[decode.Record]
	Image   decode.Image
	Rows    *seq.Sequence[decode.Row]
	Lines   *seq.Sequence[string]
}

// Len returns the number of items read: records, rows or lines, or 1 for an image.
func (r Result) Len() int {
	switch r.Kind {
	case StructuredRecords:
		return r.Records.Len()
	case DelimitedRows:
		return r.Rows.Len()
	case TextLines:
		return r.Lines.Len()
	case Image:
		if r.Image.Image != nil {
			return 1
		}
	}
	return 0
}
