package shape

// Curve evaluation over flattened attribute arrays.
//
// Control points here are whole vertices in their array form, so every
// registered attribute (position, texture coordinates, colors, custom
// scalars and vectors) is interpolated by the same Bernstein
// polynomial that moves the position.

// evalCubic evaluates a cubic Bezier at t, component-wise:
//
//	B(t) = a(1-t)^3 + 3b(1-t)^2 t + 3c(1-t)t^2 + d t^3
//
// The result is written into out, which must have the same length as
// the inputs.
func evalCubic(a, b, c, d []float64, t float64, out []float64) {
	mt := 1 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t
	for i := range out {
		out[i] = mt3*a[i] + 3*mt2*t*b[i] + 3*mt*t2*c[i] + t3*d[i]
	}
}

// evalQuadratic evaluates a quadratic Bezier at t, component-wise:
//
//	B(t) = a(1-t)^2 + 2b(1-t)t + c t^2
func evalQuadratic(a, b, c []float64, t float64, out []float64) {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t
	for i := range out {
		out[i] = mt2*a[i] + 2*mt*t*b[i] + t2*c[i]
	}
}

// bezierTriple holds the two interior control arrays and the end array
// of one cubic sub-segment produced by Catmull-Rom conversion. The
// sub-segment's start is the previous triple's end (or the window's
// second point for the first triple).
type bezierTriple struct {
	c1, c2, end []float64
}

// catmullRomToBezier converts a Catmull-Rom control sequence into
// cubic Bezier sub-segments. With s = 1 - tightness, every consecutive
// 4-window (a, b, c, d) yields the controls
//
//	(b + s/6*(c-a), c + s/6*(b-d), c)
//
// for the sub-segment from b to c. At tightness 1 (s = 0) the controls
// collapse onto the chord endpoints, degenerating each sub-segment to
// the straight line b -> c.
func catmullRomToBezier(points [][]float64, tightness float64) []bezierTriple {
	if len(points) < 4 {
		return nil
	}
	s := 1 - tightness
	triples := make([]bezierTriple, 0, len(points)-3)
	for i := 0; i+3 < len(points); i++ {
		a, b, c, d := points[i], points[i+1], points[i+2], points[i+3]
		n := len(b)
		c1 := make([]float64, n)
		c2 := make([]float64, n)
		end := make([]float64, n)
		for j := 0; j < n; j++ {
			c1[j] = b[j] + s*(c[j]-a[j])/6
			c2[j] = c[j] + s*(b[j]-d[j])/6
			end[j] = c[j]
		}
		triples = append(triples, bezierTriple{c1: c1, c2: c2, end: end})
	}
	return triples
}

// polylineLength returns the length of the polyline through the given
// points in order.
func polylineLength(pts []Vec3) float64 {
	var total float64
	for i := 1; i < len(pts); i++ {
		total += pts[i-1].Distance(pts[i])
	}
	return total
}

// positionAt reads a position out of a flattened vertex array, given
// the offset of the position attribute within the layout.
func positionAt(arr []float64, offset int) Vec3 {
	return Vec3{X: arr[offset], Y: arr[offset+1], Z: arr[offset+2]}
}
