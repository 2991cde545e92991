// Package icon turns a downloaded picture into the small .ico the browser
// shows for a profile.
package icon

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/distantorigin/edge-profile/internal/download"
	"github.com/distantorigin/edge-profile/internal/failure"
)

// Size is the width and height of the generated icon
const Size = 72

const tempPrefix = "edge-profile-icon-"

// Downloader fetches a URL into a temporary file
type Downloader interface {
	ToTemp(ctx context.Context, rawURL, prefix string) (string, error)
}

type iconDir struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

type iconDirEntry struct {
	Width       uint8
	Height      uint8
	ColorCount  uint8
	Reserved    uint8
	Planes      uint16
	BitCount    uint16
	BytesInRes  uint32
	ImageOffset uint32
}

// Thumbnail scales img to exactly size×size, stretching if the aspect differs
func Thumbnail(img image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Encode writes img as a single-image ICO container with a PNG payload
func Encode(img image.Image) ([]byte, error) {
	b := img.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 || b.Dx() > 256 || b.Dy() > 256 {
		return nil, fmt.Errorf("icon size %dx%d out of range", b.Dx(), b.Dy())
	}

	var payload bytes.Buffer
	if err := png.Encode(&payload, img); err != nil {
		return nil, errors.Wrap(err, "cannot encode PNG payload")
	}

	// 256 is stored as 0
	dim := func(n int) uint8 { return uint8(n % 256) }

	header := iconDir{Type: 1, Count: 1}
	entry := iconDirEntry{
		Width:       dim(b.Dx()),
		Height:      dim(b.Dy()),
		Planes:      1,
		BitCount:    32,
		BytesInRes:  uint32(payload.Len()),
		ImageOffset: uint32(binary.Size(header) + binary.Size(iconDirEntry{})),
	}

	var out bytes.Buffer
	if err := binary.Write(&out, binary.LittleEndian, header); err != nil {
		return nil, err
	}
	if err := binary.Write(&out, binary.LittleEndian, entry); err != nil {
		return nil, err
	}
	out.Write(payload.Bytes())
	return out.Bytes(), nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, "not a supported image")
	}
	if img.Bounds().Empty() {
		return nil, errors.Errorf("%s image has no pixels", format)
	}
	return img, nil
}

// Build downloads the picture at rawURL, converts it to a Size×Size icon
// and writes it to dest on fs. The temporary download is deleted once the
// icon is written; when a step fails after the download it is left behind
// and named in the error.
func Build(ctx context.Context, fs afero.Fs, d Downloader, log logrus.FieldLogger, rawURL, dest string) error {
	if err := download.ValidateURL(rawURL); err != nil {
		return failure.Wrap(failure.Download, "download icon image", err)
	}

	tempPath, err := d.ToTemp(ctx, rawURL, tempPrefix)
	if err != nil {
		return failure.Wrap(failure.Download, "download icon image", err)
	}
	log.WithField("path", tempPath).Debug("Icon image downloaded")

	src, err := decodeFile(tempPath)
	if err != nil {
		return failure.Wrap(failure.Image, "decode "+tempPath, err)
	}

	data, err := Encode(Thumbnail(src, Size))
	if err != nil {
		return failure.Wrap(failure.Image, "convert "+tempPath, err)
	}

	if err := afero.WriteFile(fs, dest, data, 0644); err != nil {
		return failure.Wrap(failure.Image, "write icon "+dest, err)
	}

	if err := os.Remove(tempPath); err != nil {
		log.WithError(err).WithField("path", tempPath).Warn("Could not delete temporary icon download")
	}

	return nil
}
