package imshow

import (
	"image"
	"image/color"
)

// Format describes the pixel layout of a Bitmap.
type Format int

const (
	// Gray is a single byte per pixel grayscale format.
	Gray Format = iota
	// RGB is a three byte per pixel color format, channels in RGB order.
	RGB
)

func (f Format) channels() int {
	if f == Gray {
		return 1
	}
	return 3
}

// Bitmap is the native displayable pixel buffer: either grayscale or
// 3-byte color with the channels in RGB order. It implements image.Image
// so it can be handed straight to the paint pipeline or to the stdlib
// encoders.
type Bitmap struct {
	Width  int
	Height int
	Format Format

	// Pix holds the pixel values in row-major order.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

// NewBitmap allocates a zeroed bitmap with the given dimensions and format.
func NewBitmap(w, h int, f Format) *Bitmap {
	stride := w * f.channels()
	return &Bitmap{
		Width:  w,
		Height: h,
		Format: f,
		Pix:    make([]byte, stride*h),
		Stride: stride,
	}
}

func (b *Bitmap) ColorModel() color.Model {
	if b.Format == Gray {
		return color.GrayModel
	}
	return color.NRGBAModel
}

func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

func (b *Bitmap) At(x, y int) color.Color {
	if !(image.Point{x, y}).In(b.Bounds()) {
		if b.Format == Gray {
			return color.Gray{}
		}
		return color.NRGBA{}
	}
	if b.Format == Gray {
		return color.Gray{Y: b.Pix[y*b.Stride+x]}
	}
	i := y*b.Stride + x*3
	return color.NRGBA{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: 0xff}
}

// Bitmap implements the Source interface, a bitmap displays as itself.
func (b *Bitmap) Bitmap() *Bitmap {
	return b
}

// NRGBA converts the bitmap to an *image.NRGBA using a direct byte copy.
func (b *Bitmap) NRGBA() *image.NRGBA {
	dst := image.NewNRGBA(b.Bounds())
	for y := 0; y < b.Height; y++ {
		si := y * b.Stride
		di := y * dst.Stride
		for x := 0; x < b.Width; x++ {
			if b.Format == Gray {
				v := b.Pix[si+x]
				dst.Pix[di+0] = v
				dst.Pix[di+1] = v
				dst.Pix[di+2] = v
			} else {
				dst.Pix[di+0] = b.Pix[si+x*3+0]
				dst.Pix[di+1] = b.Pix[si+x*3+1]
				dst.Pix[di+2] = b.Pix[si+x*3+2]
			}
			dst.Pix[di+3] = 0xff
			di += 4
		}
	}
	return dst
}

// BitmapFromImage converts any image type to a Bitmap. Grayscale images
// yield a Gray bitmap, everything else is flattened to RGB with the alpha
// channel dropped.
func BitmapFromImage(img image.Image) *Bitmap {
	if src, ok := img.(*image.Gray); ok {
		bounds := src.Bounds()
		dst := NewBitmap(bounds.Dx(), bounds.Dy(), Gray)
		for y := 0; y < dst.Height; y++ {
			si := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:(y+1)*dst.Stride], src.Pix[si:si+dst.Stride])
		}
		return dst
	}

	src := imgToNRGBA(img)
	dst := NewBitmap(src.Bounds().Dx(), src.Bounds().Dy(), RGB)
	for y := 0; y < dst.Height; y++ {
		si := y * src.Stride
		di := y * dst.Stride
		for x := 0; x < dst.Width; x++ {
			dst.Pix[di+0] = src.Pix[si+0]
			dst.Pix[di+1] = src.Pix[si+1]
			dst.Pix[di+2] = src.Pix[si+2]
			si += 4
			di += 3
		}
	}
	return dst
}
