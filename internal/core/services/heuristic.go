package services

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"golang.org/x/image/draw"

	"github.com/ewilliams-labs/moodmix/internal/core/domain"
)

// heuristicSize is the edge length photos are downscaled to before colour analysis.
const heuristicSize = 192

var errEmptyImage = errors.New("image has no pixels")

// flattenOpaque copies img into an opaque NRGBA image. Alpha is dropped and
// the straight colour of each pixel is kept, so fully transparent pixels keep
// their RGB instead of turning black.
func flattenOpaque(img image.Image) (*image.NRGBA, error) {
	if img == nil {
		return nil, errEmptyImage
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, errEmptyImage
	}

	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	if src, ok := img.(*image.NRGBA); ok {
		rowBytes := bounds.Dx() * 4
		for y := 0; y < bounds.Dy(); y++ {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+rowBytes], src.Pix[off:off+rowBytes])
		}
	} else {
		for y := 0; y < bounds.Dy(); y++ {
			for x := 0; x < bounds.Dx(); x++ {
				dst.SetNRGBA(x, y, straightColour(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
			}
		}
	}
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst, nil
}

// straightColour returns c without alpha premultiplication. 16-bit NRGBA is
// narrowed by hand; color.NRGBAModel would go through premultiplied RGBA().
func straightColour(c color.Color) color.NRGBA {
	if c64, ok := c.(color.NRGBA64); ok {
		return color.NRGBA{R: uint8(c64.R >> 8), G: uint8(c64.G >> 8), B: uint8(c64.B >> 8), A: uint8(c64.A >> 8)}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// downscale flattens img to opaque colour and resamples it to a fixed
// heuristicSize square.
func downscale(img image.Image) (*image.NRGBA, error) {
	flat, err := flattenOpaque(img)
	if err != nil {
		return nil, err
	}

	dst := image.NewNRGBA(image.Rect(0, 0, heuristicSize, heuristicSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), flat, flat.Bounds(), draw.Src, nil)
	return dst, nil
}

// colourStats summarises a photo in HSV space.
type colourStats struct {
	SatMedian float64
	ValMedian float64
	HueMean   float64 // degrees in [0, 360)
}

func measureColour(img *image.NRGBA) (colourStats, error) {
	if img == nil || img.Bounds().Empty() {
		return colourStats{}, errEmptyImage
	}

	bounds := img.Bounds()
	n := bounds.Dx() * bounds.Dy()
	sats := make([]float64, 0, n)
	vals := make([]float64, 0, n)
	var hueSum float64

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := img.Pix[(y-bounds.Min.Y)*img.Stride:]
		for x := 0; x < bounds.Dx(); x++ {
			r := float64(row[x*4]) / 255
			g := float64(row[x*4+1]) / 255
			b := float64(row[x*4+2]) / 255

			h, s, v := hsv(r, g, b)
			hueSum += h
			sats = append(sats, s)
			vals = append(vals, v)
		}
	}

	return colourStats{
		SatMedian: median(sats),
		ValMedian: median(vals),
		HueMean:   floorMod(hueSum/float64(n), 360),
	}, nil
}

// hsv converts 0-1 RGB to hue degrees, saturation and value. When channels tie
// for the maximum, blue wins over green and green over red.
func hsv(r, g, b float64) (h, s, v float64) {
	mx := math.Max(r, math.Max(g, b))
	mn := math.Min(r, math.Min(g, b))
	diff := mx - mn + 1e-8

	switch mx {
	case b:
		h = 60 * (4 + (r-g)/diff)
	case g:
		h = 60 * (2 + (b-r)/diff)
	default:
		h = floorMod(60*((g-b)/diff), 360)
	}
	return h, diff / (mx + 1e-8), mx
}

// moodFromColour applies the fixed colour thresholds in order.
func moodFromColour(st colourStats) domain.Mood {
	h := st.HueMean
	switch {
	case st.ValMedian < 0.22:
		return domain.MoodSad
	case st.SatMedian < 0.18:
		return domain.MoodCalm
	case h >= 20 && h < 80:
		return domain.MoodHappy
	case h >= 330 || h < 20:
		return domain.MoodAngry
	case h >= 160 && h < 260:
		return domain.MoodEnergetic
	case h >= 260 && h < 330:
		return domain.MoodRomantic
	default:
		return domain.MoodPeaceful
	}
}

// HeuristicMood classifies a photo by colour alone.
func HeuristicMood(img image.Image) (domain.Mood, error) {
	small, err := downscale(img)
	if err != nil {
		return "", fmt.Errorf("heuristic: %w", err)
	}
	st, err := measureColour(small)
	if err != nil {
		return "", fmt.Errorf("heuristic: %w", err)
	}
	return moodFromColour(st), nil
}

// median sorts xs in place. Even-length input averages the two middle values.
func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sort.Float64s(xs)
	mid := len(xs) / 2
	if len(xs)%2 == 0 {
		return (xs[mid-1] + xs[mid]) / 2
	}
	return xs[mid]
}

// floorMod returns x mod m with the sign of m.
func floorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
