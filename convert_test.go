package imshow

import (
	"bytes"
	"testing"
)

func TestConvert_GrayMatrixToBitmap(t *testing.T) {
	data := []byte{
		0x00, 0x10, 0x20,
		0x30, 0x40, 0x50,
	}
	m, err := NewMatrixFromBytes(2, 3, 1, data)
	if err != nil {
		t.Fatalf("could not create the matrix: %v", err)
	}

	b := m.Bitmap()
	if b.Format != Gray {
		t.Errorf("a single channel matrix should convert to a Gray bitmap, got format %v", b.Format)
	}
	if b.Width != 3 || b.Height != 2 {
		t.Errorf("bitmap size expected to be 3x2, got %dx%d", b.Width, b.Height)
	}
	if !bytes.Equal(b.Pix, data) {
		t.Errorf("grayscale conversion should copy the bytes unchanged: got %v want %v", b.Pix, data)
	}
}

func TestConvert_ColorMatrixToBitmap(t *testing.T) {
	// Two pixels in BGR order.
	data := []byte{
		0x01, 0x02, 0x03,
		0x0a, 0x0b, 0x0c,
	}
	m, err := NewMatrixFromBytes(1, 2, 3, data)
	if err != nil {
		t.Fatalf("could not create the matrix: %v", err)
	}

	b := m.Bitmap()
	if b.Format != RGB {
		t.Errorf("a 3-channel matrix should convert to an RGB bitmap, got format %v", b.Format)
	}
	// The bytes are copied verbatim, no BGR to RGB reordering is applied.
	if !bytes.Equal(b.Pix, data) {
		t.Errorf("color conversion should copy the bytes unchanged: got %v want %v", b.Pix, data)
	}
}

func TestConvert_GrayBitmapToMatrix(t *testing.T) {
	b := NewBitmap(3, 2, Gray)
	copy(b.Pix, []byte{0x00, 0x10, 0x20, 0x30, 0x40, 0x50})

	m := b.Matrix()
	if m.Channels != 1 {
		t.Errorf("a Gray bitmap should convert to a single channel matrix, got %d channels", m.Channels)
	}
	if m.Rows != 2 || m.Cols != 3 {
		t.Errorf("matrix size expected to be 2x3, got %dx%d", m.Rows, m.Cols)
	}
	if !bytes.Equal(m.Data, b.Pix) {
		t.Errorf("grayscale conversion should copy the bytes unchanged: got %v want %v", m.Data, b.Pix)
	}
}

func TestConvert_ColorBitmapToMatrix(t *testing.T) {
	b := NewBitmap(2, 1, RGB)
	copy(b.Pix, []byte{0x01, 0x02, 0x03, 0x0a, 0x0b, 0x0c})

	m := b.Matrix()
	if m.Channels != 3 {
		t.Errorf("an RGB bitmap should convert to a 3-channel matrix, got %d channels", m.Channels)
	}
	// Every pixel's first and third byte is swapped to end up in BGR order.
	want := []byte{0x03, 0x02, 0x01, 0x0c, 0x0b, 0x0a}
	if !bytes.Equal(m.Data, want) {
		t.Errorf("color conversion should swap the first and third channel: got %v want %v", m.Data, want)
	}
}

func TestConvert_GrayRoundTrip(t *testing.T) {
	data := []byte{0x11, 0x22, 0x33, 0x44}
	m, err := NewMatrixFromBytes(2, 2, 1, data)
	if err != nil {
		t.Fatalf("could not create the matrix: %v", err)
	}

	res := m.Bitmap().Matrix()
	if !bytes.Equal(res.Data, data) {
		t.Errorf("grayscale round-trip should be the identity: got %v want %v", res.Data, data)
	}
}

func TestConvert_ColorRoundTrip(t *testing.T) {
	// The matrix to bitmap direction copies the bytes verbatim while the
	// reverse direction swaps the first and third channel, so the color
	// round-trip is NOT the identity.
	data := []byte{0x01, 0x02, 0x03, 0x0a, 0x0b, 0x0c}
	m, err := NewMatrixFromBytes(1, 2, 3, data)
	if err != nil {
		t.Fatalf("could not create the matrix: %v", err)
	}

	res := m.Bitmap().Matrix()
	want := []byte{0x03, 0x02, 0x01, 0x0c, 0x0b, 0x0a}
	if !bytes.Equal(res.Data, want) {
		t.Errorf("color round-trip should equal the source with swapped channels: got %v want %v", res.Data, want)
	}
	if bytes.Equal(res.Data, data) {
		t.Errorf("color round-trip should not be the identity")
	}
}

func TestConvert_BGRToRGB(t *testing.T) {
	testCases := []struct {
		name     string
		channels int
		data     []byte
		want     []byte
	}{
		{
			name:     "3-channel",
			channels: 3,
			data:     []byte{0x01, 0x02, 0x03, 0x0a, 0x0b, 0x0c},
			want:     []byte{0x03, 0x02, 0x01, 0x0c, 0x0b, 0x0a},
		},
		{
			name:     "single channel",
			channels: 1,
			data:     []byte{0x01, 0x02},
			want:     []byte{0x01, 0x02},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewMatrixFromBytes(1, 2, tc.channels, tc.data)
			if err != nil {
				t.Fatalf("could not create the matrix: %v", err)
			}

			res := BGRToRGB(m)
			if !bytes.Equal(res.Data, tc.want) {
				t.Errorf("got %v want %v", res.Data, tc.want)
			}
			if &res.Data[0] == &m.Data[0] {
				t.Errorf("the conversion should not alias the source buffer")
			}
		})
	}
}
