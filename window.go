package imshow

import (
	"image"
	"image/color"
	"os"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
)

// Default window dimensions, used when no Size option is given.
const (
	DefWidth  = 600
	DefHeight = 800
)

var defaultBkgColor = color.NRGBA{A: 0xff}

// Source is an image representation that can be rendered in a window.
// It is satisfied by both *Matrix and *Bitmap; matrices are converted
// to their bitmap form before display.
type Source interface {
	Bitmap() *Bitmap
}

// Option configures the display window.
type Option func(*Window)

// Title sets the window title. The default title is empty.
func Title(title string) Option {
	return func(w *Window) {
		w.cfg.title = title
	}
}

// Size sets the preferred window dimensions. The default is 600x800.
func Size(width, height int) Option {
	return func(w *Window) {
		w.cfg.width = width
		w.cfg.height = height
	}
}

// ExitOnClose makes closing the window terminate the whole process,
// matching the behavior of the original implementation. Without it the
// window simply goes away and Wait returns.
func ExitOnClose() Option {
	return func(w *Window) {
		w.cfg.exitOnClose = true
	}
}

// Window is a resizable on-screen window holding a single image surface.
// The image is stretch-drawn to exactly fill the window bounds on every
// repaint, without preserving the aspect ratio.
type Window struct {
	cfg struct {
		title         string
		width, height int
		exitOnClose   bool
	}
	src  paint.ImageOp
	done chan error
}

func newWindow(opts ...Option) *Window {
	w := &Window{done: make(chan error, 1)}
	w.cfg.width, w.cfg.height = DefWidth, DefHeight
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Show renders the source in a new resizable window. It returns once the
// window has been issued; repaints happen on the toolkit's event loop.
// The caller's main function must hand over the main thread with Main.
func Show(src Source, opts ...Option) *Window {
	w := newWindow(opts...)
	w.src = paint.NewImageOp(src.Bitmap().NRGBA())

	go func() {
		w.done <- w.run()
	}()
	return w
}

// ShowImage is a convenience wrapper around Show for plain Go images.
func ShowImage(img image.Image, opts ...Option) *Window {
	return Show(BitmapFromImage(img), opts...)
}

// Wait blocks until the window is closed and returns the destroy error.
func (w *Window) Wait() error {
	return <-w.done
}

// Main takes over the main thread and runs the event loops of the windows
// issued by Show. It must be called last from the program's main function
// and does not return.
func Main() {
	app.Main()
}

// run processes the window events until a DestroyEvent or an ESC key
// event is captured.
func (w *Window) run() error {
	win := app.NewWindow(
		app.Title(w.cfg.title),
		app.Size(unit.Dp(w.cfg.width), unit.Dp(w.cfg.height)),
	)

	var ops op.Ops
	for {
		switch e := win.NextEvent().(type) {
		case system.DestroyEvent:
			if w.cfg.exitOnClose {
				os.Exit(0)
			}
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)

			for _, ev := range gtx.Events(win) {
				if e, ok := ev.(key.Event); ok {
					if e.State == key.Press && e.Name == key.NameEscape {
						win.Perform(system.ActionClose)
					}
				}
			}
			key.InputOp{Tag: win, Keys: key.NameEscape}.Add(gtx.Ops)

			paint.Fill(gtx.Ops, defaultBkgColor)
			widget.Image{
				Src:   w.src,
				Fit:   widget.Fill,
				Scale: 1,
			}.Layout(gtx)

			e.Frame(gtx.Ops)
		}
	}
}
