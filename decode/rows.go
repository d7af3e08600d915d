package decode

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/krisalay/mind-reader/seq"
)

// Row is one CSV record keyed by the header line. Cached rows are shared
// between readers and must be treated as read-only.
type Row map[string]string

// checkEvery is how many lines a streaming decoder reads between context checks.
const checkEvery = 1024

/*
Rows reads a CSV file whose first line is the header.

Every following line becomes a Row mapping header names to fields. A line
with a different number of fields than the header is malformed. An empty file
yields no rows. When a header name repeats, the rightmost column wins.
*/
func Rows(ctx context.Context, path string) (*seq.Sequence[Row], error) {
	const op = "read rows"

	m, err := openMapped(ctx, op, path)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	r := csv.NewReader(m.Reader())
	r.ReuseRecord = true

	header, err := r.Read()
	if err == io.EOF {
		return seq.Of[Row](nil), nil
	}
	if err != nil {
		return nil, malformed(op, path, err)
	}
	// ReuseRecord recycles the slice, not the strings.
	header = append([]string(nil), header...)
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	var rows []Row
	for n := 0; ; n++ {
		if n%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, &Error{Op: op, Path: path, Err: err}
			}
		}

		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, malformed(op, path, err)
		}

		row := make(Row, len(header))
		for i, name := range header {
			row[name] = rec[i]
		}
		rows = append(rows, row)
	}
	return seq.Of(rows), nil
}
