// Package imaging verifies that submitted bytes are a genuine image and
// derives a file-extension hint from the detected format. Verification reads
// only the header (no full decode), so a later consumer reopens the bytes
// itself.
package imaging

import (
	"bytes"
	"errors"
	"image"
	"strings"

	// Register the decoders the sniffer recognizes.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gabriel-vasile/mimetype"
)

// ErrUnrecognized means no registered decoder claims the byte buffer.
var ErrUnrecognized = errors.New("unrecognized image format")

// Info describes a sniffed image.
type Info struct {
	// Format is the registered decoder name, lower-cased, e.g. "png".
	Format string
	// Ext is the file-extension hint including the leading dot, or empty
	// if the format is undetectable.
	Ext string
}

// Sniff runs the structural verification pass over data. It returns
// ErrUnrecognized when the format is unknown and the underlying decode error
// for recognized but corrupt data.
func Sniff(data []byte) (Info, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return Info{}, ErrUnrecognized
		}
		return Info{}, err
	}
	info := Info{Format: strings.ToLower(format)}
	if ext := mimetype.Detect(data).Extension(); ext != "" {
		info.Ext = ext
	} else if info.Format != "" {
		info.Ext = "." + info.Format
	}
	return info, nil
}
