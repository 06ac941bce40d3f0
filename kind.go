package shape

// ShapeKind tags a shape or contour with the topology its vertices
// describe. KindEmptyPath is derived, never set directly: a KindPath
// contour reports it until its first primitive attaches.
type ShapeKind int

const (
	KindPath ShapeKind = iota
	KindEmptyPath
	KindPoints
	KindLines
	KindTriangles
	KindQuads
	KindTriangleFan
	KindTriangleStrip
	KindQuadStrip
)

// String returns the kind's name. The names double as the contour-kind
// half of PrimitiveFactory keys.
func (k ShapeKind) String() string {
	switch k {
	case KindPath:
		return "PATH"
	case KindEmptyPath:
		return "EMPTY_PATH"
	case KindPoints:
		return "POINTS"
	case KindLines:
		return "LINES"
	case KindTriangles:
		return "TRIANGLES"
	case KindQuads:
		return "QUADS"
	case KindTriangleFan:
		return "TRIANGLE_FAN"
	case KindTriangleStrip:
		return "TRIANGLE_STRIP"
	case KindQuadStrip:
		return "QUAD_STRIP"
	}
	return "UNKNOWN"
}

// CloseMode selects whether ending a shape or contour joins the last
// vertex back to the first.
type CloseMode int

const (
	Open CloseMode = iota
	Close
)

// String returns the mode's name.
func (m CloseMode) String() string {
	if m == Close {
		return "CLOSE"
	}
	return "OPEN"
}

// EndMode controls how an interpolating spline treats its boundary
// vertices.
type EndMode int

const (
	// EndInclude interpolates through the first and last vertices.
	EndInclude EndMode = iota
	// EndExclude treats the boundary vertices as phantom control points
	// only; the visible curve starts and ends one vertex in.
	EndExclude
	// EndJoin wraps the ends around each other for a seamless closed
	// loop.
	EndJoin
)

// String returns the mode's name.
func (m EndMode) String() string {
	switch m {
	case EndInclude:
		return "INCLUDE"
	case EndExclude:
		return "EXCLUDE"
	case EndJoin:
		return "JOIN"
	}
	return "UNKNOWN"
}

// BuildOp names a vertex-emitting build operation. The names double as
// the operation half of PrimitiveFactory keys.
type BuildOp string

const (
	OpVertex       BuildOp = "vertex"
	OpBezierVertex BuildOp = "bezierVertex"
	OpSplineVertex BuildOp = "splineVertex"
)
