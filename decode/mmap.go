package decode

import (
	"context"
	"io"

	"golang.org/x/exp/mmap"
)

/*
mapped is a read-only memory map of one file.

Decoders never see the mapping itself, only an io.Reader over it, and the map
is released before the decoder returns. Nothing derived from the mapped bytes
may outlive Close: decoders copy what they keep (strings, decoded pixels).
*/
type mapped struct {
	ra *mmap.ReaderAt
}

func openMapped(ctx context.Context, op, path string) (*mapped, error) {
	if err := ctx.Err(); err != nil {
		return nil, &Error{Op: op, Path: path, Err: err}
	}
	ra, err := mmap.Open(path)
	if err != nil {
		return nil, &Error{Op: op, Path: path, Err: err}
	}
	return &mapped{ra: ra}, nil
}

func (m *mapped) Reader() io.Reader {
	return io.NewSectionReader(m.ra, 0, int64(m.ra.Len()))
}

func (m *mapped) Close() error { return m.ra.Close() }
