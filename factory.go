package shape

// PrimitiveConstructor builds a primitive for a shape from the vertices
// a build operation produced. Constructors snapshot whatever shape
// configuration their variant needs (bezier order, spline properties)
// at call time.
type PrimitiveConstructor func(s *Shape, vertices ...*Vertex) Primitive

// PrimitiveFactory maps (build operation, contour kind) pairs to
// primitive constructors. The mapping is mutable so extensions can
// route new pairs to their own primitives.
type PrimitiveFactory struct {
	ctors map[string]PrimitiveConstructor
}

// NewPrimitiveFactory returns a factory pre-populated for the built-in
// operations: every operation on an empty path creates an Anchor, the
// three vertex operations on a path create line, Bezier, and spline
// segments, and every operation on a triangle strip creates a
// TriangleStrip.
func NewPrimitiveFactory() *PrimitiveFactory {
	f := &PrimitiveFactory{ctors: make(map[string]PrimitiveConstructor)}

	anchor := func(_ *Shape, vertices ...*Vertex) Primitive {
		return newAnchor(vertices...)
	}
	strip := func(_ *Shape, vertices ...*Vertex) Primitive {
		return newTriangleStrip(vertices...)
	}
	for _, op := range []BuildOp{OpVertex, OpBezierVertex, OpSplineVertex} {
		f.Set(op, KindEmptyPath, anchor)
		f.Set(op, KindTriangleStrip, strip)
	}

	f.Set(OpVertex, KindPath, func(_ *Shape, vertices ...*Vertex) Primitive {
		return newLineSegment(vertices...)
	})
	f.Set(OpBezierVertex, KindPath, func(s *Shape, vertices ...*Vertex) Primitive {
		return newBezierSegment(s.order[0], vertices...)
	})
	f.Set(OpSplineVertex, KindPath, func(s *Shape, vertices ...*Vertex) Primitive {
		return newSplineSegment(s.tightness, s.ends, vertices...)
	})
	return f
}

func factoryKey(op BuildOp, kind ShapeKind) string {
	return string(op) + "-" + kind.String()
}

// Get returns the constructor for the pair, or nil if none is
// registered.
func (f *PrimitiveFactory) Get(op BuildOp, kind ShapeKind) PrimitiveConstructor {
	return f.ctors[factoryKey(op, kind)]
}

// Set registers a constructor for the pair, replacing any existing one.
func (f *PrimitiveFactory) Set(op BuildOp, kind ShapeKind, ctor PrimitiveConstructor) {
	f.ctors[factoryKey(op, kind)] = ctor
}

// Clear removes every registration.
func (f *PrimitiveFactory) Clear() {
	f.ctors = make(map[string]PrimitiveConstructor)
}
