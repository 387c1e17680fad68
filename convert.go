package imshow

// Bitmap converts the matrix to a displayable bitmap: Gray format for a
// single channel matrix, RGB otherwise. The raw bytes are copied verbatim
// with no channel reordering, so a BGR color matrix lands unswapped in an
// RGB-typed bitmap. This reproduces the long-standing behavior of the
// original implementation; use BGRToRGB first for correct colors.
func (m *Matrix) Bitmap() *Bitmap {
	f := RGB
	if m.Channels == 1 {
		f = Gray
	}
	b := NewBitmap(m.Cols, m.Rows, f)
	copy(b.Pix, m.Data)
	return b
}

// Matrix converts the bitmap back to a matrix: single channel for Gray
// bitmaps, three channels for RGB. Color results have their first and
// third channel swapped so the matrix ends up in BGR order.
func (b *Bitmap) Matrix() *Matrix {
	m := &Matrix{
		Rows:     b.Height,
		Cols:     b.Width,
		Channels: b.Format.channels(),
		Data:     make([]byte, len(b.Pix)),
	}
	copy(m.Data, b.Pix)
	if m.Channels == 3 {
		swapRB(m.Data)
	}
	return m
}

// BGRToRGB returns a copy of the matrix with the first and third channel
// of every pixel swapped. Single channel matrices are copied unchanged.
func BGRToRGB(m *Matrix) *Matrix {
	dst := &Matrix{
		Rows:     m.Rows,
		Cols:     m.Cols,
		Channels: m.Channels,
		Data:     make([]byte, len(m.Data)),
	}
	copy(dst.Data, m.Data)
	if dst.Channels == 3 {
		swapRB(dst.Data)
	}
	return dst
}

// swapRB swaps the first and third byte of every pixel in a 3-channel buffer.
func swapRB(pix []byte) {
	for i := 0; i+2 < len(pix); i += 3 {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}
}
