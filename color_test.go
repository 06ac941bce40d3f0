package shape

import (
	"image/color"
	"testing"
)

func TestRGB(t *testing.T) {
	c := RGB(0.5, 0.25, 1)
	diff(t, RGBA{R: 0.5, G: 0.25, B: 1, A: 1}, c)
}

func TestRGBA_ColorRoundTrip(t *testing.T) {
	c := RGBA{R: 1, G: 0, B: 0.5, A: 1}
	got := FromColor(c.Color())
	if !approx(got.R, 1) || !approx(got.G, 0) || !approx(got.B, 0.5) || !approx(got.A, 1) {
		t.Errorf("round trip = %+v, want approximately %+v", got, c)
	}
}

func TestRGBA_ColorClamps(t *testing.T) {
	c := RGBA{R: 2, G: -1, B: 0, A: 1}
	want := color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	diff(t, want, c.Color())
}

func TestRGBA_Lerp(t *testing.T) {
	a := RGB(0, 0, 0)
	b := RGB(1, 0.5, 0)
	diff(t, RGBA{R: 0.5, G: 0.25, B: 0, A: 1}, a.Lerp(b, 0.5))
}

func TestRGBA_Array(t *testing.T) {
	diff(t, []float64{0.1, 0.2, 0.3, 0.4}, RGBA{R: 0.1, G: 0.2, B: 0.3, A: 0.4}.Array())
}

// approx tolerates 8-bit quantization error.
func approx(got, want float64) bool {
	d := got - want
	if d < 0 {
		d = -d
	}
	return d < 1.0/255
}
