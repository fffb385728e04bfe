package images

import (
	"bytes"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	_ = enc.Encode(&buf, img)
	return buf.Bytes()
}

// FitRatio returns the factor that scales a w x h image to fit within
// maxW x maxH preserving aspect ratio. It never upscales.
func FitRatio(w, h, maxW, maxH int) float64 {
	if w <= 0 || h <= 0 || (w <= maxW && h <= maxH) {
		return 1
	}
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	ratio := float64(maxW) / float64(w)
	if r := float64(maxH) / float64(h); r < ratio {
		ratio = r
	}
	return ratio
}

// ScaleToFit scales src so that the returned image fits within maxW x maxH
// preserving aspect ratio. If the source already fits, the original is returned.
func ScaleToFit(src image.Image, maxW, maxH int) image.Image {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	ratio := FitRatio(b.Dx(), b.Dy(), maxW, maxH)
	if ratio == 1 {
		return src
	}
	newW := max(int(float64(b.Dx())*ratio+0.5), 1)
	newH := max(int(float64(b.Dy())*ratio+0.5), 1)
	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// ToSource maps a point in a display scaled by ratio back to the source
// image whose bounds start at origin.
func ToSource(p image.Point, ratio float64, origin image.Point) image.Point {
	if ratio <= 0 {
		ratio = 1
	}
	return image.Pt(int(float64(p.X)/ratio), int(float64(p.Y)/ratio)).Add(origin)
}
