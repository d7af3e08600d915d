package decode

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

//
// ================= RECORDS =================
//

func TestRecordsArray(t *testing.T) {
	path := writeFile(t, "people.json", []byte(`[{"name":"ada","age":36},{"name":"alan"}]`))

	recs, err := Records(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 2, recs.Len())
	assert.Equal(t, "ada", recs.At(0)["name"])
	assert.Equal(t, float64(36), recs.At(0)["age"])
	assert.Equal(t, "alan", recs.At(1)["name"])
}

func TestRecordsTrailingWhitespace(t *testing.T) {
	path := writeFile(t, "ws.json", []byte("[{\"a\":1}]\n\n  \t\n"))

	recs, err := Records(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, recs.Len())
}

func TestRecordsSingleObject(t *testing.T) {
	path := writeFile(t, "one.json", []byte("  {\"id\": 1}\n"))

	recs, err := Records(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 1, recs.Len())
	assert.Equal(t, float64(1), recs.At(0)["id"])
}

func TestRecordsMalformed(t *testing.T) {
	tcs := map[string]string{
		"syntax":     `[{"a":1},`,
		"scalar":     `42`,
		"not object": `[1, 2]`,
		"null item":  `[null]`,
		"empty":      ``,
		"extra data": `[{"a":1}] garbage {"b":2}`,
		"two values": `{"a":1} {"b":2}`,
	}
	for name, body := range tcs {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, "bad.json", []byte(body))
			_, err := Records(context.Background(), path)

			require.ErrorIs(t, err, ErrMalformed)
			var de *Error
			require.ErrorAs(t, err, &de)
			assert.Equal(t, path, de.Path)
		})
	}
}

//
// ================= ROWS =================
//

func TestRows(t *testing.T) {
	path := writeFile(t, "data.csv", []byte("\ufeffid,name\n1,ada\n2,\"turing, alan\"\n"))

	rows, err := Rows(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 2, rows.Len())
	assert.Equal(t, Row{"id": "1", "name": "ada"}, rows.At(0))
	assert.Equal(t, Row{"id": "2", "name": "turing, alan"}, rows.At(1))
}

func TestRowsEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.csv", nil)

	rows, err := Rows(context.Background(), path)
	require.NoError(t, err)
	assert.Zero(t, rows.Len())
}

func TestRowsRagged(t *testing.T) {
	path := writeFile(t, "ragged.csv", []byte("a,b\n1,2,3\n"))

	_, err := Rows(context.Background(), path)
	assert.ErrorIs(t, err, ErrMalformed)
}

//
// ================= LINES =================
//

func TestLines(t *testing.T) {
	tcs := []struct {
		name string
		body string
		want []string
	}{
		{"trailing newline", "one\ntwo\n", []string{"one", "two"}},
		{"no trailing newline", "one\ntwo", []string{"one", "two"}},
		{"crlf", "one\r\ntwo\r\n", []string{"one", "two"}},
		{"blank lines kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"empty", "", nil},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "f.txt", []byte(tc.body))
			lines, err := Lines(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, lines.Slice())
		})
	}
}

func TestLinesInvalidUTF8(t *testing.T) {
	path := writeFile(t, "bin.txt", []byte{'o', 'k', '\n', 0xff, 0xfe, '\n'})

	_, err := Lines(context.Background(), path)
	assert.ErrorIs(t, err, ErrMalformed)
}

//
// ================= IMAGES =================
//

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	return img
}

func TestReadImagePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage()))
	path := writeFile(t, "pic.png", buf.Bytes())

	img, err := ReadImage(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "png", img.Format)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())

	r, _, _, _ := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestReadImageBMP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, testImage()))
	path := writeFile(t, "pic.bmp", buf.Bytes())

	img, err := ReadImage(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "bmp", img.Format)
	assert.Equal(t, 4, img.Bounds().Dx())
}

func TestReadImageUnsupported(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("definitely not an image"))

	_, err := ReadImage(context.Background(), path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

//
// ================= FAILURES =================
//

func TestMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")

	_, err := Records(context.Background(), path)
	require.ErrorIs(t, err, fs.ErrNotExist)

	var de *Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "read records", de.Op)
	assert.Contains(t, err.Error(), path)
}

func TestCancelledContext(t *testing.T) {
	path := writeFile(t, "f.txt", []byte("x\n"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Lines(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}
