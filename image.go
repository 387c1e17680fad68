package imshow

import (
	"image"
	"image/color"
)

// MatrixFromImage converts any image type to a Matrix. Grayscale images
// yield a single channel matrix, everything else is flattened to three
// channels in BGR order with the alpha channel dropped.
func MatrixFromImage(img image.Image) *Matrix {
	if src, ok := img.(*image.Gray); ok {
		bounds := src.Bounds()
		dst := &Matrix{
			Rows:     bounds.Dy(),
			Cols:     bounds.Dx(),
			Channels: 1,
			Data:     make([]byte, bounds.Dx()*bounds.Dy()),
		}
		for y := 0; y < dst.Rows; y++ {
			si := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(dst.Data[y*dst.Cols:(y+1)*dst.Cols], src.Pix[si:si+dst.Cols])
		}
		return dst
	}

	src := imgToNRGBA(img)
	dst := &Matrix{
		Rows:     src.Bounds().Dy(),
		Cols:     src.Bounds().Dx(),
		Channels: 3,
		Data:     make([]byte, src.Bounds().Dx()*src.Bounds().Dy()*3),
	}
	for y := 0; y < dst.Rows; y++ {
		si := y * src.Stride
		di := y * dst.Stride()
		for x := 0; x < dst.Cols; x++ {
			dst.Data[di+0] = src.Pix[si+2]
			dst.Data[di+1] = src.Pix[si+1]
			dst.Data[di+2] = src.Pix[si+0]
			si += 4
			di += 3
		}
	}
	return dst
}

// imgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func imgToNRGBA(img image.Image) *image.NRGBA {
	srcBounds := img.Bounds()
	if srcBounds.Min.X == 0 && srcBounds.Min.Y == 0 {
		if src0, ok := img.(*image.NRGBA); ok {
			return src0
		}
	}
	srcMinX := srcBounds.Min.X
	srcMinY := srcBounds.Min.Y

	dstBounds := srcBounds.Sub(srcBounds.Min)
	dstW := dstBounds.Dx()
	dstH := dstBounds.Dy()
	dst := image.NewNRGBA(dstBounds)

	switch src := img.(type) {
	case *image.NRGBA:
		rowSize := srcBounds.Dx() * 4
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			si := src.PixOffset(srcMinX, srcMinY+dstY)
			copy(dst.Pix[di:di+rowSize], src.Pix[si:si+rowSize])
		}
	case *image.YCbCr:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				srcX := srcMinX + dstX
				srcY := srcMinY + dstY
				siy := src.YOffset(srcX, srcY)
				sic := src.COffset(srcX, srcY)
				r, g, b := color.YCbCrToRGB(src.Y[siy], src.Cb[sic], src.Cr[sic])
				dst.Pix[di+0] = r
				dst.Pix[di+1] = g
				dst.Pix[di+2] = b
				dst.Pix[di+3] = 0xff
				di += 4
			}
		}
	default:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				c := color.NRGBAModel.Convert(img.At(srcMinX+dstX, srcMinY+dstY)).(color.NRGBA)
				dst.Pix[di+0] = c.R
				dst.Pix[di+1] = c.G
				dst.Pix[di+2] = c.B
				dst.Pix[di+3] = c.A
				di += 4
			}
		}
	}

	return dst
}
