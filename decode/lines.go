package decode

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/krisalay/mind-reader/seq"
)

// Lines reads a UTF-8 text file line by line. Line endings ("\n" or "\r\n")
// are stripped and a final newline does not produce an empty last line.
func Lines(ctx context.Context, path string) (*seq.Sequence[string], error) {
	const op = "read lines"

	m, err := openMapped(ctx, op, path)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	br := bufio.NewReader(m.Reader())
	var lines []string
	for n := 1; ; n++ {
		if n%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, &Error{Op: op, Path: path, Err: err}
			}
		}

		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, &Error{Op: op, Path: path, Err: err}
		}
		if line == "" && err != nil {
			break
		}
		if !utf8.ValidString(line) {
			return nil, malformed(op, path, fmt.Errorf("line %d is not valid UTF-8", n))
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		lines = append(lines, line)

		if err != nil {
			break
		}
	}
	return seq.Of(lines), nil
}
