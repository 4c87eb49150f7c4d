package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/pkg/errors"

	"quiz-extension/internal/config"
)

type Style int

const (
	StyleCircle Style = iota
	StyleCheckmark
)

func (s Style) String() string {
	switch s {
	case StyleCircle:
		return "circle"
	case StyleCheckmark:
		return "checkmark"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ColorType returns the PNG color type the style is encoded with.
// The circle is opaque, the checkmark needs an alpha channel.
func (s Style) ColorType() ColorType {
	if s == StyleCheckmark {
		return ColorRGBA
	}
	return ColorRGB
}

// Descriptor describes a single square icon to generate.
type Descriptor struct {
	Size  int
	Style Style
	// Color is the gradient base for StyleCircle. Zero means DefaultColor.
	Color color.NRGBA
}

func (d Descriptor) Render() *image.NRGBA {
	if d.Style == StyleCheckmark {
		return Checkmark(d.Size)
	}
	base := d.Color
	if base == (color.NRGBA{}) {
		base = DefaultColor
	}
	return Circle(d.Size, base)
}

func (d Descriptor) Encode(w io.Writer) error {
	return Encode(w, d.Render(), d.Style.ColorType())
}

// WriteFile encodes the icon and writes it to path, replacing any existing
// file. It returns the number of bytes written.
func (d Descriptor) WriteFile(path string) (int64, error) {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return 0, errors.Wrapf(err, "encode %s icon %dpx", d.Style, d.Size)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, config.FilePerm)
	if err != nil {
		return 0, errors.Wrap(err, "create icon file")
	}

	n, err := f.Write(buf.Bytes())
	if err != nil {
		f.Close()
		return int64(n), errors.Wrapf(err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return int64(n), errors.Wrapf(err, "close %s", path)
	}
	return int64(n), nil
}
