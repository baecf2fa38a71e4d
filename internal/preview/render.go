package preview

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"plane-rotator/internal/mathutil"
	"plane-rotator/internal/raster"
)

// Options control the output image. The result is 2·Size wide and Size high.
type Options struct {
	Size        int
	Supersample int
	View        mathutil.Mat3 // zero value selects mathutil.PreviewView
}

var (
	background = color.NRGBA{28, 30, 36, 255}
	labelColor = color.NRGBA{220, 220, 220, 255}
)

// Render draws the scene's before and after panels side by side.
func Render(s Scene, opts Options) (*image.NRGBA, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	if opts.Size <= 0 {
		opts.Size = 384
	}
	if opts.Supersample <= 0 {
		opts.Supersample = 1
	}
	if opts.View == (mathutil.Mat3{}) {
		opts.View = mathutil.PreviewView
	}

	panel := opts.Size * opts.Supersample
	view := raster.View{
		Rot:        opts.View,
		Size:       panel,
		Margin:     8 * opts.Supersample,
		Span:       worldExtent,
		Background: background,
	}

	before := raster.Render(s.Before(opts.View), view)
	after := raster.Render(s.After(opts.View), view)

	out := image.NewNRGBA(image.Rect(0, 0, 2*panel, panel))
	draw.Draw(out, image.Rect(0, 0, panel, panel), before, image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(panel, 0, 2*panel, panel), after, image.Point{}, draw.Src)

	if opts.Supersample > 1 {
		out = Downsample(out, 2*opts.Size, opts.Size)
	}
	label(out, "before", 8, 18)
	label(out, "after", opts.Size+8, 18)
	return out, nil
}

func label(img *image.NRGBA, text string, x, y int) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
