package shape

import "math"

// UnboundedCapacity marks a primitive that accepts any number of
// vertices.
const UnboundedCapacity = math.MaxInt

// primitiveLocation addresses a primitive within its owning shape by
// (contour index, primitive index). Primitives reference neighbors and
// owners through these indices, never through owning pointers.
type primitiveLocation struct {
	contour   int
	primitive int
}

// Primitive is one element of a contour: an Anchor, LineSegment,
// BezierSegment, SplineSegment, or TriangleStrip. The set is closed;
// visitors dispatch over it exhaustively.
type Primitive interface {
	// VertexCapacity returns the maximum number of vertices the
	// primitive may own, or UnboundedCapacity.
	VertexCapacity() int
	// Vertices returns the primitive's owned vertices in order.
	Vertices() []*Vertex
	// Accept dispatches the visitor method for the concrete variant.
	Accept(PrimitiveVisitor) error

	base() *primitiveBase
	isPrimitive()
}

// primitiveBase carries the state shared by every variant: the owned
// vertices, the non-owning back-reference to the shape, and the
// location used for predecessor/successor lookup.
type primitiveBase struct {
	vertices []*Vertex
	shape    *Shape
	loc      primitiveLocation
	attached bool
	closing  bool
}

func (b *primitiveBase) Vertices() []*Vertex  { return b.vertices }
func (b *primitiveBase) base() *primitiveBase { return b }
func (b *primitiveBase) isPrimitive()         {}

// IsClosing reports whether the primitive was emitted by a close
// operation.
func (b *primitiveBase) IsClosing() bool { return b.closing }

// predecessor returns the primitive immediately before this one in the
// same contour, or nil for the contour's first primitive.
func (b *primitiveBase) predecessor() Primitive {
	if !b.attached {
		return nil
	}
	return b.shape.primitiveAt(b.loc.contour, b.loc.primitive-1)
}

// successor returns the primitive immediately after this one in the
// same contour, or nil for the contour's last primitive.
func (b *primitiveBase) successor() Primitive {
	if !b.attached {
		return nil
	}
	return b.shape.primitiveAt(b.loc.contour, b.loc.primitive+1)
}

// endVertex returns the primitive's last vertex.
func (b *primitiveBase) endVertex() *Vertex {
	return b.vertices[len(b.vertices)-1]
}

// startVertex returns the predecessor's end vertex. A segment never
// stores its own start point. Calling this on a segment with no
// predecessor violates the builder's invariants and panics.
func (b *primitiveBase) startVertex() *Vertex {
	pred := b.predecessor()
	if pred == nil {
		panic("shape: segment has no predecessor")
	}
	return pred.base().endVertex()
}

// sameVariant reports whether two primitives are the same concrete
// variant, the precondition for merging during attachment.
func sameVariant(a, b Primitive) bool {
	switch a.(type) {
	case *Anchor:
		_, ok := b.(*Anchor)
		return ok
	case *LineSegment:
		_, ok := b.(*LineSegment)
		return ok
	case *BezierSegment:
		_, ok := b.(*BezierSegment)
		return ok
	case *SplineSegment:
		_, ok := b.(*SplineSegment)
		return ok
	case *TriangleStrip:
		_, ok := b.(*TriangleStrip)
		return ok
	}
	return false
}

// Anchor is the mandatory first primitive of any non-empty path
// contour. It holds the path's starting vertex.
type Anchor struct {
	primitiveBase
}

func newAnchor(vertices ...*Vertex) *Anchor {
	return &Anchor{primitiveBase{vertices: vertices}}
}

// VertexCapacity returns 1.
func (*Anchor) VertexCapacity() int { return 1 }

// Accept dispatches to VisitAnchor.
func (a *Anchor) Accept(v PrimitiveVisitor) error { return v.VisitAnchor(a) }

// EndVertex returns the anchor's vertex.
func (a *Anchor) EndVertex() *Vertex { return a.endVertex() }

// LineSegment is a straight edge from its predecessor's end vertex to
// its own single vertex.
type LineSegment struct {
	primitiveBase
}

func newLineSegment(vertices ...*Vertex) *LineSegment {
	return &LineSegment{primitiveBase{vertices: vertices}}
}

// VertexCapacity returns 1.
func (*LineSegment) VertexCapacity() int { return 1 }

// Accept dispatches to VisitLineSegment.
func (l *LineSegment) Accept(v PrimitiveVisitor) error { return v.VisitLineSegment(l) }

// StartVertex returns the predecessor's end vertex.
func (l *LineSegment) StartVertex() *Vertex { return l.startVertex() }

// EndVertex returns the segment's vertex.
func (l *LineSegment) EndVertex() *Vertex { return l.endVertex() }

// BezierSegment is a Bezier curve of fixed order: its capacity equals
// the order, its start vertex is the predecessor's end vertex, and its
// own vertices are the remaining control points (the last one being the
// curve's end).
type BezierSegment struct {
	primitiveBase
	order      int
	hullLength float64
	hullValid  bool
}

func newBezierSegment(order int, vertices ...*Vertex) *BezierSegment {
	return &BezierSegment{primitiveBase: primitiveBase{vertices: vertices}, order: order}
}

// VertexCapacity returns the curve order.
func (b *BezierSegment) VertexCapacity() int { return b.order }

// Order returns the curve order: 3 for cubic, 2 for quadratic.
func (b *BezierSegment) Order() int { return b.order }

// Accept dispatches to VisitBezierSegment.
func (b *BezierSegment) Accept(v PrimitiveVisitor) error { return v.VisitBezierSegment(b) }

// StartVertex returns the predecessor's end vertex.
func (b *BezierSegment) StartVertex() *Vertex { return b.startVertex() }

// EndVertex returns the curve's end control vertex.
func (b *BezierSegment) EndVertex() *Vertex { return b.endVertex() }

// HullLength returns the polyline length of the control polygon,
// start vertex included. The value is cached until more vertices merge
// into the segment.
func (b *BezierSegment) HullLength() float64 {
	if !b.hullValid {
		pts := make([]Vec3, 0, len(b.vertices)+1)
		if p, ok := b.startVertex().Position(); ok {
			pts = append(pts, p)
		}
		for _, v := range b.vertices {
			if p, ok := v.Position(); ok {
				pts = append(pts, p)
			}
		}
		b.hullLength = polylineLength(pts)
		b.hullValid = true
	}
	return b.hullLength
}

// invalidateHull drops the cached control-polygon length.
func (b *BezierSegment) invalidateHull() { b.hullValid = false }

// SplineSegment is an interpolating Catmull-Rom spline with unbounded
// vertex capacity. It snapshots the shape's spline configuration
// (tightness and end mode) at creation time.
type SplineSegment struct {
	primitiveBase
	tightness float64
	ends      EndMode
}

func newSplineSegment(tightness float64, ends EndMode, vertices ...*Vertex) *SplineSegment {
	return &SplineSegment{
		primitiveBase: primitiveBase{vertices: vertices},
		tightness:     tightness,
		ends:          ends,
	}
}

// VertexCapacity returns UnboundedCapacity.
func (*SplineSegment) VertexCapacity() int { return UnboundedCapacity }

// Accept dispatches to VisitSplineSegment.
func (sp *SplineSegment) Accept(v PrimitiveVisitor) error { return v.VisitSplineSegment(sp) }

// Tightness returns the segment's Catmull-Rom tension snapshot.
func (sp *SplineSegment) Tightness() float64 { return sp.tightness }

// Ends returns the segment's end-mode snapshot.
func (sp *SplineSegment) Ends() EndMode { return sp.ends }

// StartVertex returns the predecessor's end vertex.
func (sp *SplineSegment) StartVertex() *Vertex { return sp.startVertex() }

// handlesClose reports whether the segment closes its contour itself:
// true only when it is the sole segment following the anchor and sits
// at the end of its contour. Closing then switches the end mode to
// EndJoin instead of emitting a new vertex.
func (sp *SplineSegment) handlesClose() bool {
	if !sp.attached || sp.successor() != nil {
		return false
	}
	_, afterAnchor := sp.predecessor().(*Anchor)
	return afterAnchor
}

// close switches the segment's end mode to EndJoin. Calling close on a
// primitive that does not handle closing violates the builder's
// invariants; the builder only delegates here after handlesClose.
func (sp *SplineSegment) close() { sp.ends = EndJoin }

// ControlPoints builds the Catmull-Rom input window: the start vertex
// (duplicated when the predecessor is itself a segment, so the join has
// neighbor data on both sides) followed by the segment's own vertices,
// padded according to the end mode. EndInclude duplicates the first and
// last points so the curve interpolates through them; EndJoin wraps the
// window around itself for a seamless closed loop; EndExclude adds no
// padding, relying on the neighbor data already present.
func (sp *SplineSegment) ControlPoints() []*Vertex {
	win := make([]*Vertex, 0, len(sp.vertices)+4)
	start := sp.startVertex()
	win = append(win, start)
	if _, afterAnchor := sp.predecessor().(*Anchor); !afterAnchor {
		win = append(win, start)
	}
	win = append(win, sp.vertices...)

	switch sp.ends {
	case EndInclude:
		out := make([]*Vertex, 0, len(win)+2)
		out = append(out, win[0])
		out = append(out, win...)
		out = append(out, win[len(win)-1])
		return out
	case EndJoin:
		out := make([]*Vertex, 0, len(win)+3)
		out = append(out, win[len(win)-1])
		out = append(out, win...)
		out = append(out, win[0], win[1])
		return out
	}
	return win
}

// FirstInterpolatedVertex returns the first vertex the sampled curve
// actually passes through: the second point of the control window.
// With EndExclude this overrides the contour's anchor during
// tessellation.
func (sp *SplineSegment) FirstInterpolatedVertex() *Vertex {
	return sp.ControlPoints()[1]
}

// TriangleStrip owns vertices that tessellation passes through
// untouched; the consumer interprets the strip topology.
type TriangleStrip struct {
	primitiveBase
}

func newTriangleStrip(vertices ...*Vertex) *TriangleStrip {
	return &TriangleStrip{primitiveBase{vertices: vertices}}
}

// VertexCapacity returns UnboundedCapacity.
func (*TriangleStrip) VertexCapacity() int { return UnboundedCapacity }

// Accept dispatches to VisitTriangleStrip.
func (ts *TriangleStrip) Accept(v PrimitiveVisitor) error { return v.VisitTriangleStrip(ts) }
