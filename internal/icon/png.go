package icon

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/pkg/errors"
)

// ColorType is the IHDR color type field.
type ColorType uint8

const (
	ColorRGB  ColorType = 2
	ColorRGBA ColorType = 6
)

func (ct ColorType) BytesPerPixel() int {
	if ct == ColorRGBA {
		return 4
	}
	return 3
}

func (ct ColorType) String() string {
	switch ct {
	case ColorRGB:
		return "RGB"
	case ColorRGBA:
		return "RGBA"
	}
	return fmt.Sprintf("ColorType(%d)", uint8(ct))
}

const (
	bitDepth   = 8
	filterNone = 0
)

// Signature is the fixed 8-byte PNG file header.
var Signature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Chunk is one PNG chunk. Length and CRC are derived from Type and Data
// when written, so they always match the payload.
type Chunk struct {
	Type string
	Data []byte
}

// CRC returns the CRC-32 over the type tag followed by the payload.
func (c Chunk) CRC() uint32 {
	h := crc32.NewIEEE()
	h.Write([]byte(c.Type))
	h.Write(c.Data)
	return h.Sum32()
}

// WriteTo writes length, type, payload and CRC.
func (c Chunk) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 0, 12+len(c.Data))
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(c.Data)))
	buf = append(buf, c.Type...)
	buf = append(buf, c.Data...)
	buf = binary.BigEndian.AppendUint32(buf, c.CRC())

	n, err := w.Write(buf)
	return int64(n), err
}

func headerChunk(width, height int, ct ColorType) Chunk {
	data := make([]byte, 13)
	binary.BigEndian.PutUint32(data[0:4], uint32(width))
	binary.BigEndian.PutUint32(data[4:8], uint32(height))
	data[8] = bitDepth
	data[9] = byte(ct)
	// compression, filter and interlace methods are all 0
	return Chunk{Type: "IHDR", Data: data}
}

// Scanlines lays out the image for IDAT: every row is a filter byte (none)
// followed by width*bpp color bytes. For ColorRGB the alpha channel is dropped.
func Scanlines(img *image.NRGBA, ct ColorType) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	bpp := ct.BytesPerPixel()

	out := make([]byte, 0, h*(1+w*bpp))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		out = append(out, filterNone)
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < w; x++ {
			out = append(out, row[x*4:x*4+bpp]...)
		}
	}
	return out
}

func compress(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(raw); err != nil {
		zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes img as a PNG with a single IDAT chunk.
func Encode(w io.Writer, img *image.NRGBA, ct ColorType) error {
	b := img.Bounds()

	idat, err := compress(Scanlines(img, ct))
	if err != nil {
		return errors.Wrap(err, "compress image data")
	}

	if _, err := w.Write(Signature[:]); err != nil {
		return err
	}

	chunks := []Chunk{
		headerChunk(b.Dx(), b.Dy(), ct),
		{Type: "IDAT", Data: idat},
		{Type: "IEND"},
	}
	for _, c := range chunks {
		if _, err := c.WriteTo(w); err != nil {
			return errors.Wrapf(err, "write %s chunk", c.Type)
		}
	}
	return nil
}
