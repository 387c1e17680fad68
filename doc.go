/*
Package imshow renders in-memory images in a resizable on-screen window,
filling the gap left by computer vision bindings that ship without a
windowed display function.

It accepts two pixel representations interchangeably: an OpenCV style
byte matrix (row-major, BGR channel order) and a toolkit style bitmap
(RGB or grayscale). Matrices are converted to bitmaps internally; the
bitmap is stretch-drawn to exactly fill the window on every repaint.

The package provides a command line viewer as well. To check the
supported commands type:

	$ imshow --help

In case you wish to integrate the API in a self constructed environment
here is a simple example:

	package main

	import (
		"github.com/AnEmortalKid/Imshow"
	)

	func main() {
		m, _ := imshow.NewMatrixFromBytes(rows, cols, 3, data)

		imshow.Show(m, imshow.Title("preview"), imshow.ExitOnClose())
		imshow.Main()
	}

The window system owns the main thread, so imshow.Main must be called
last from the program's main function.
*/
package imshow
