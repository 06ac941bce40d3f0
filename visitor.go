package shape

import (
	"fmt"
	"math"
)

// PrimitiveVisitor dispatches over the closed primitive set. One method
// per variant means a visitor that misses a variant fails to compile
// rather than failing at runtime.
type PrimitiveVisitor interface {
	VisitAnchor(*Anchor) error
	VisitLineSegment(*LineSegment) error
	VisitBezierSegment(*BezierSegment) error
	VisitSplineSegment(*SplineSegment) error
	VisitTriangleStrip(*TriangleStrip) error
}

// TessellationConverter flattens primitives into sampled vertex
// sequences, one output contour per input contour. Curve segments are
// sampled adaptively: the sample count grows with the control-polygon
// length, scaled by CurveDetail.
type TessellationConverter struct {
	// CurveDetail is the number of samples per unit of control-polygon
	// length.
	CurveDetail float64
	// Contours accumulates the flattened output.
	Contours [][]*Vertex
}

// NewTessellationConverter creates a converter with the given curve
// detail. Values <= 0 fall back to 1.
func NewTessellationConverter(curveDetail float64) *TessellationConverter {
	if curveDetail <= 0 {
		curveDetail = 1
	}
	return &TessellationConverter{CurveDetail: curveDetail}
}

// openContour starts a new output contour.
func (tc *TessellationConverter) openContour() {
	tc.Contours = append(tc.Contours, nil)
}

// push appends a vertex to the current output contour.
func (tc *TessellationConverter) push(v *Vertex) {
	i := len(tc.Contours) - 1
	tc.Contours[i] = append(tc.Contours[i], v)
}

// sampleCount sizes a curve's sample count from its control-polygon
// length.
func (tc *TessellationConverter) sampleCount(hullLength float64) int {
	return max(1, int(math.Ceil(hullLength*tc.CurveDetail)))
}

// VisitAnchor opens a new output contour. When the following primitive
// is a spline whose EndExclude mode makes the anchor a phantom control
// point, the spline's first interpolated vertex is pushed instead of
// the anchor's own vertex. A first interpolated vertex that does not
// sit exactly on the anchor is logged as a warning and building
// continues; this stays non-fatal.
func (tc *TessellationConverter) VisitAnchor(a *Anchor) error {
	tc.openContour()
	if sp, ok := a.successor().(*SplineSegment); ok && sp.Ends() == EndExclude {
		first := sp.FirstInterpolatedVertex()
		fp, fok := first.Position()
		ap, aok := a.EndVertex().Position()
		if fok && aok && fp != ap {
			Logger().Warn("shape: spline does not start where the previous segment ends",
				"splineStart", fp, "previousEnd", ap)
		}
		tc.push(first)
		return nil
	}
	tc.push(a.EndVertex())
	return nil
}

// VisitLineSegment appends the segment's end vertex.
func (tc *TessellationConverter) VisitLineSegment(l *LineSegment) error {
	tc.push(l.EndVertex())
	return nil
}

// VisitBezierSegment samples the curve at t = (i+1)/count for i in
// [0, count), where count scales with the hull length. Every attribute
// of the control vertices rides through the evaluation.
func (tc *TessellationConverter) VisitBezierSegment(b *BezierSegment) error {
	if len(b.vertices) != b.order {
		return fmt.Errorf("shape: bezier segment has %d of %d control vertices",
			len(b.vertices), b.order)
	}
	owner := b.shape
	start, err := owner.VertexToArray(b.StartVertex())
	if err != nil {
		return err
	}
	ctrl := make([][]float64, len(b.vertices))
	for i, v := range b.vertices {
		if ctrl[i], err = owner.VertexToArray(v); err != nil {
			return err
		}
	}

	count := tc.sampleCount(b.HullLength())
	buf := make([]float64, len(start))
	for i := 0; i < count; i++ {
		t := float64(i+1) / float64(count)
		switch b.order {
		case 2:
			evalQuadratic(start, ctrl[0], ctrl[1], t, buf)
		case 3:
			evalCubic(start, ctrl[0], ctrl[1], ctrl[2], t, buf)
		default:
			return fmt.Errorf("shape: unsupported bezier order %d", b.order)
		}
		v, err := owner.ArrayToVertex(buf)
		if err != nil {
			return err
		}
		tc.push(v)
	}
	return nil
}

// VisitSplineSegment converts the segment's windowed control points to
// cubic sub-segments and samples each one, sizing every sub-segment's
// sample count by its own control-polygon length.
func (tc *TessellationConverter) VisitSplineSegment(sp *SplineSegment) error {
	window := sp.ControlPoints()
	if len(window) < 4 {
		return nil
	}
	owner := sp.shape
	points := make([][]float64, len(window))
	for i, v := range window {
		arr, err := owner.VertexToArray(v)
		if err != nil {
			return err
		}
		points[i] = arr
	}

	offset := owner.attributeOffset(AttrPosition)
	start := points[1]
	buf := make([]float64, len(start))
	for _, tr := range catmullRomToBezier(points, sp.tightness) {
		hull := polylineLength([]Vec3{
			positionAt(start, offset),
			positionAt(tr.c1, offset),
			positionAt(tr.c2, offset),
			positionAt(tr.end, offset),
		})
		count := tc.sampleCount(hull)
		for i := 0; i < count; i++ {
			t := float64(i+1) / float64(count)
			evalCubic(start, tr.c1, tr.c2, tr.end, t, buf)
			v, err := owner.ArrayToVertex(buf)
			if err != nil {
				return err
			}
			tc.push(v)
		}
		start = tr.end
	}
	return nil
}

// VisitTriangleStrip appends the strip's vertices unchanged; the
// consumer interprets the strip topology. A strip that opens its
// contour starts a new output contour first.
func (tc *TessellationConverter) VisitTriangleStrip(ts *TriangleStrip) error {
	if ts.loc.primitive == 0 {
		tc.openContour()
	}
	for _, v := range ts.vertices {
		tc.push(v)
	}
	return nil
}
