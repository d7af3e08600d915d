package decode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/krisalay/mind-reader/seq"
)

// Record is one JSON object. Cached records are shared between readers and
// must be treated as read-only.
type Record map[string]any

/*
Records reads a JSON document of records.

  - a top-level array yields one record per element; every element must be an object
  - a top-level object yields a single record
  - anything else is malformed
*/
func Records(ctx context.Context, path string) (*seq.Sequence[Record], error) {
	const op = "read records"

	m, err := openMapped(ctx, op, path)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	dec := json.NewDecoder(m.Reader())
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, malformed(op, path, fmt.Errorf("empty document"))
		}
		return nil, malformed(op, path, err)
	}
	// The document is exactly one value.
	end := dec.InputOffset()
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, malformed(op, path, fmt.Errorf("extra data after offset %d", end))
	}

	switch first(raw) {
	case '{':
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, malformed(op, path, err)
		}
		return seq.Of([]Record{rec}), nil
	case '[':
		var recs []Record
		if err := json.Unmarshal(raw, &recs); err != nil {
			return nil, malformed(op, path, err)
		}
		for i, r := range recs {
			if r == nil {
				return nil, malformed(op, path, fmt.Errorf("element %d is not an object", i))
			}
		}
		return seq.Of(recs), nil
	default:
		return nil, malformed(op, path, fmt.Errorf("top-level value must be an object or an array of objects"))
	}
}

func first(raw json.RawMessage) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}
