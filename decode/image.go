package decode

import (
	"context"
	"errors"
	"image"

	// Registered image formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is a decoded picture together with the name of its format
// ("png", "jpeg", "gif", "bmp", "tiff" or "webp").
type Image struct {
	image.Image
	Format string
}

// ReadImage decodes the image at path. The pixel data is fully decoded, so
// the returned value does not reference the file.
func ReadImage(ctx context.Context, path string) (Image, error) {
	const op = "read image"

	m, err := openMapped(ctx, op, path)
	if err != nil {
		return Image{}, err
	}
	defer m.Close()

	img, format, err := image.Decode(m.Reader())
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return Image{}, &Error{Op: op, Path: path, Err: ErrUnsupportedFormat}
		}
		return Image{}, malformed(op, path, err)
	}
	return Image{Image: img, Format: format}, nil
}
