// 6 Mar 2025

// Package logopng draws a sequence logo into a PNG. This is a
// consumer of the analytics core, the same as any external renderer;
// nothing in here feeds back into the pipeline. Letters are set with
// freetype from a ttf the caller supplies, since we do not ship a
// font.
package logopng

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"

	"github.com/andrew-torda/msaview/pkg/stats"
)

// Options controls the geometry. Zero values get defaults.
type Options struct {
	ColWidth int    // pixels per alignment column
	Height   int    // pixels for a full stack
	FontFile string // path to a ttf
}

const (
	dfltColWidth = 14
	dfltHeight   = 120
)

// aaColor follows the usual chemistry colouring: green polar, blue
// basic, red acidic, black hydrophobic.
var aaColor = map[byte]color.RGBA{
	'G': {0, 128, 0, 255}, 'S': {0, 128, 0, 255}, 'T': {0, 128, 0, 255},
	'Y': {0, 128, 0, 255}, 'C': {0, 128, 0, 255}, 'Q': {0, 128, 0, 255},
	'N': {0, 128, 0, 255},
	'K': {0, 0, 204, 255}, 'R': {0, 0, 204, 255}, 'H': {0, 0, 204, 255},
	'D': {204, 0, 0, 255}, 'E': {204, 0, 0, 255},
}

func colorFor(aa byte) color.RGBA {
	if c, ok := aaColor[aa]; ok {
		return c
	}
	return color.RGBA{0, 0, 0, 255} // hydrophobic and anything else
}

// Render draws the logo columns into a fresh image. Each column is a
// stack of letters drawn bottom up, so the last (tallest) letter ends
// on top. Letter height in pixels is the letter's share of the full
// stack height; the stats package has already scaled for mode.
func Render(logo []stats.LogoColumn, opts *Options) (*image.RGBA, error) {
	if opts == nil {
		opts = &Options{}
	}
	colWidth, height := opts.ColWidth, opts.Height
	if colWidth <= 0 {
		colWidth = dfltColWidth
	}
	if height <= 0 {
		height = dfltHeight
	}

	fontBytes, err := os.ReadFile(opts.FontFile)
	if err != nil {
		return nil, fmt.Errorf("logo font: %w", err)
	}
	fnt, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("logo font %s: %w", opts.FontFile, err)
	}

	img := image.NewRGBA(image.Rect(0, 0, colWidth*len(logo), height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	ctx := freetype.NewContext()
	ctx.SetDPI(72) // 1 point = 1 pixel, so font size is letter height
	ctx.SetFont(fnt)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)

	for icol, lc := range logo {
		x := icol * colWidth
		y := height // baseline of the bottom letter
		for _, letter := range lc.Letters {
			h := int(letter.Height * float64(height))
			if h < 1 {
				continue // too small to see, skip it
			}
			ctx.SetFontSize(float64(h))
			ctx.SetSrc(image.NewUniform(colorFor(letter.AA)))
			pt := freetype.Pt(x+1, y)
			if _, err := ctx.DrawString(string(letter.AA), pt); err != nil {
				return nil, fmt.Errorf("drawing %c: %w", letter.AA, err)
			}
			y -= h
		}
	}
	return img, nil
}

// WritePNG encodes a rendered logo.
func WritePNG(fp io.Writer, img *image.RGBA) error { return png.Encode(fp, img) }
