package media

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"math"
	"strings"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"

	"fitness-planner/internal/domain"
)

// Images are downscaled so neither dimension exceeds MaxDimension, then
// re-encoded as JPEG at Quality. Videos pass through untouched.
const (
	MaxDimension = 800
	Quality      = 60
)

var (
	// ErrTypeMismatch means the file's media type does not match the active
	// upload tab. The caller must not touch any state when this is returned.
	ErrTypeMismatch = errors.New("file type does not match the selected tab")

	// ErrDecode wraps image decode failures (corrupt or unsupported data).
	ErrDecode = errors.New("failed to decode image")
)

// Encoded is the storable representation of an uploaded file.
// For images URL and Thumbnail hold the same re-encoded data URI.
type Encoded struct {
	Kind      domain.MediaKind
	URL       string
	Thumbnail string
}

// Encode converts an uploaded file into its inline storable form.
// contentType is the declared MIME type of the file; tab is the currently
// active upload tab, which the type's prefix must match.
func Encode(contentType string, r io.Reader, tab domain.MediaKind) (Encoded, error) {
	if !tab.Valid() {
		return Encoded{}, fmt.Errorf("unknown upload tab %q", tab)
	}
	if !strings.HasPrefix(contentType, string(tab)+"/") {
		return Encoded{}, ErrTypeMismatch
	}

	switch tab {
	case domain.MediaKindImage:
		return encodeImage(r)
	default:
		return encodeVideo(contentType, r)
	}
}

// encodeImage decodes the image, applies a bounding-box downscale to
// MaxDimension preserving aspect ratio (never upscaling), and re-encodes as
// JPEG at the fixed quality.
func encodeImage(r io.Reader) (Encoded, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Encoded{}, fmt.Errorf("reading image file: %w", err)
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return Encoded{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	scaled := downscale(src)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: Quality}); err != nil {
		return Encoded{}, fmt.Errorf("encoding jpeg: %w", err)
	}

	uri := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	return Encoded{Kind: domain.MediaKindImage, URL: uri, Thumbnail: uri}, nil
}

// encodeVideo reads the raw bytes and re-exposes them inline, unmodified.
// No size limit is enforced; large files inflate the stored document.
func encodeVideo(contentType string, r io.Reader) (Encoded, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Encoded{}, fmt.Errorf("reading video file: %w", err)
	}
	uri := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(raw)
	return Encoded{Kind: domain.MediaKindVideo, URL: uri}, nil
}

func downscale(src image.Image) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= MaxDimension && h <= MaxDimension {
		return src
	}

	// The long side is pinned to MaxDimension exactly; only the short side
	// is derived, so float rounding can never shave a pixel off the cap.
	var dw, dh int
	if w >= h {
		dw = MaxDimension
		dh = int(math.Round(float64(h) * MaxDimension / float64(w)))
	} else {
		dh = MaxDimension
		dw = int(math.Round(float64(w) * MaxDimension / float64(h)))
	}
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return dst
}
