// Package shape provides a vector-path construction and tessellation
// kernel for the GoGPU ecosystem.
//
// # Overview
//
// shape assembles a stream of path-building operations (straight
// vertices, Bezier curve vertices, interpolating-spline vertices, flat
// triangle strips) into a hierarchy of contours and primitives, and
// flattens that hierarchy into renderer-ready sequences of sampled
// vertices. Every vertex is a named-attribute bag, so arbitrary
// per-vertex data (color, texture coordinates, custom scalars or
// vectors) rides unchanged through curve evaluation.
//
// # Quick Start
//
//	import "github.com/gogpu/shape"
//
//	s := shape.NewShape()
//	s.BeginShape()
//	s.Vertex(shape.V3(0, 0, 0))
//	s.Vertex(shape.V3(1, 0, 0))
//	s.Vertex(shape.V3(1, 1, 0))
//	s.EndShape(shape.Close)
//
//	// One sampled vertex per unit of control-polygon length.
//	contours, err := s.Tessellate(1)
//
// # Architecture
//
// The library is organized around a small number of concerns:
//   - Building: Shape, Contour, and the five primitive variants
//     (Anchor, LineSegment, BezierSegment, SplineSegment, TriangleStrip)
//   - Attributes: Vertex and the Value variants (Scalar, Sequence,
//     Vec2, Vec3, RGBA)
//   - Flattening: PrimitiveVisitor and TessellationConverter
//   - Extension: PrimitiveFactory maps (operation, contour kind) pairs
//     to primitive constructors
//
// Rendering is out of scope: the sole output is an ordered sequence of
// contours, each an ordered sequence of hydrated vertices, suitable for
// handing to a rendering backend such as github.com/gogpu/gg.
//
// # Concurrency
//
// A Shape is fully synchronous and not safe for concurrent use. Build,
// close, and tessellate calls on one Shape must not be interleaved from
// multiple goroutines.
package shape
