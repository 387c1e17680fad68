package imshow

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is an OpenCV style image buffer: a row-major byte matrix with
// explicit row, column and channel metadata. Color matrices hold their
// channels in BGR order, following the OpenCV convention. Only 8-bit
// channel depth is supported, so the per-pixel element size equals the
// channel count.
type Matrix struct {
	Rows     int
	Cols     int
	Channels int
	Data     []byte
}

// NewMatrix allocates a zeroed matrix with the given dimensions.
// The channel count must be 1 (grayscale) or 3 (BGR).
func NewMatrix(rows, cols, channels int) (*Matrix, error) {
	if channels != 1 && channels != 3 {
		return nil, fmt.Errorf("unsupported channel count: %d", channels)
	}
	return &Matrix{
		Rows:     rows,
		Cols:     cols,
		Channels: channels,
		Data:     make([]byte, rows*cols*channels),
	}, nil
}

// NewMatrixFromBytes wraps an existing pixel buffer into a matrix.
// The buffer length must equal rows*cols*channels.
func NewMatrixFromBytes(rows, cols, channels int, data []byte) (*Matrix, error) {
	if channels != 1 && channels != 3 {
		return nil, fmt.Errorf("unsupported channel count: %d", channels)
	}
	if want := rows * cols * channels; len(data) != want {
		return nil, fmt.Errorf("buffer size mismatch: got %d bytes, want %d", len(data), want)
	}
	return &Matrix{
		Rows:     rows,
		Cols:     cols,
		Channels: channels,
		Data:     data,
	}, nil
}

// ElemSize returns the per-pixel element size in bytes.
func (m *Matrix) ElemSize() int {
	return m.Channels
}

// Stride returns the number of bytes between vertically adjacent pixels.
func (m *Matrix) Stride() int {
	return m.Cols * m.Channels
}

// MatrixFromDense adapts a gonum matrix to a single channel image matrix.
// The values are rescaled linearly so that the smallest maps to 0 and the
// largest to 255. A constant valued input yields an all zero matrix.
func MatrixFromDense(src mat.Matrix) *Matrix {
	rows, cols := src.Dims()
	dst := &Matrix{
		Rows:     rows,
		Cols:     cols,
		Channels: 1,
		Data:     make([]byte, rows*cols),
	}

	vmin, vmax := src.At(0, 0), src.At(0, 0)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := src.At(i, j)
			if v < vmin {
				vmin = v
			}
			if v > vmax {
				vmax = v
			}
		}
	}

	vrange := vmax - vmin
	if vrange == 0 {
		return dst
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst.Data[i*cols+j] = byte((src.At(i, j) - vmin) / vrange * 255)
		}
	}
	return dst
}
