package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"strings"
	"time"

	imshow "github.com/AnEmortalKid/Imshow"
	"github.com/AnEmortalKid/Imshow/utils"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	"golang.org/x/term"
)

const HelpBanner = `
┬┌┬┐┌─┐┬ ┬┌─┐┬ ┬
││││└─┐├─┤│ ││││
┴┴ ┴└─┘┴ ┴└─┘└┴┘

Windowed image viewer for matrix and bitmap buffers.
    Version: %s

`

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source = flag.String("in", pipeName, "Source image, URL or pipe")
	title  = flag.String("title", "", "Window title")
	width  = flag.Int("width", imshow.DefWidth, "Window width")
	height = flag.Int("height", imshow.DefHeight, "Window height")
	gray   = flag.Bool("gray", false, "Display the grayscale rendition")
	mat    = flag.Bool("mat", false, "Route the image through the matrix conversion path")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	img, err := loadImage(*source)
	if err != nil {
		log.Fatalf("%s %s",
			utils.DecorateText("Failed to load the source image:", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	if *gray {
		img = imaging.Grayscale(img)
	}

	opts := []imshow.Option{
		imshow.Title(*title),
		imshow.Size(*width, *height),
	}

	go func() {
		var win *imshow.Window
		if *mat {
			win = imshow.Show(imshow.MatrixFromImage(img), opts...)
		} else {
			win = imshow.ShowImage(img, opts...)
		}

		if err := win.Wait(); err != nil {
			fmt.Fprintf(os.Stderr,
				utils.DecorateText("\nError displaying the image: %v\n", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
			os.Exit(1)
		}
		os.Exit(0)
	}()

	// The window system owns the main thread.
	imshow.Main()
}

// loadImage reads and decodes the source image from a local file,
// an URL or a stdin pipe.
func loadImage(src string) (image.Image, error) {
	var file io.ReadCloser

	switch {
	case utils.IsValidUrl(src):
		spinnerText := fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ IMSHOW", utils.StatusMessage),
			utils.DecorateText("is downloading the image...", utils.DefaultMessage))
		spinner := utils.NewSpinner(spinnerText, time.Millisecond*200, true)
		spinner.Start()

		now := time.Now()
		tmp, err := utils.DownloadImage(src)

		spinner.StopMsg = fmt.Sprintf("%s %s\n",
			utils.DecorateText("⚡ IMSHOW", utils.StatusMessage),
			utils.DecorateText(fmt.Sprintf("downloaded the image in %s ✔", utils.FormatTime(time.Since(now))), utils.DefaultMessage))
		spinner.Stop()

		if err != nil {
			return nil, err
		}
		defer os.Remove(tmp.Name())

		file, err = os.Open(tmp.Name())
		if err != nil {
			return nil, fmt.Errorf("unable to open the temporary image file: %w", err)
		}
	case src == pipeName:
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdin")
		}
		file = os.Stdin
	default:
		ctype, err := utils.DetectContentType(src)
		if err != nil {
			return nil, err
		}
		if !strings.Contains(ctype, "image") {
			return nil, fmt.Errorf("the source should be an image file, got %s", ctype)
		}

		file, err = os.Open(src)
		if err != nil {
			return nil, fmt.Errorf("unable to open the source file: %w", err)
		}
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("could not decode the source image: %w", err)
	}
	return img, nil
}
