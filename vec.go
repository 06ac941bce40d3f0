package shape

import "math"

// Vec2 represents a 2D value such as a texture coordinate.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w, intermediate values interpolate.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// Array returns the vector's components as a flat slice.
func (v Vec2) Array() []float64 {
	return []float64{v.X, v.Y}
}

func (Vec2) isValue() {}

// Vec3 represents a 3D point or vector.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the length (magnitude) of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the distance between two points.
func (v Vec3) Distance(w Vec3) float64 {
	return v.Sub(w).Length()
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the original vector has zero length.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w, intermediate values interpolate.
func (v Vec3) Lerp(w Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
	}
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec3) Approx(w Vec3, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon &&
		math.Abs(v.Y-w.Y) < epsilon &&
		math.Abs(v.Z-w.Z) < epsilon
}

// Array returns the vector's components as a flat slice.
func (v Vec3) Array() []float64 {
	return []float64{v.X, v.Y, v.Z}
}

func (Vec3) isValue() {}

// Rect3 represents an axis-aligned bounding box.
// Min holds the minimum coordinates, Max the maximum.
type Rect3 struct {
	Min, Max Vec3
}

// NewRect3 creates a bounding box from two points.
// The points are normalized so Min <= Max on every axis.
func NewRect3(p1, p2 Vec3) Rect3 {
	return Rect3{
		Min: Vec3{
			X: math.Min(p1.X, p2.X),
			Y: math.Min(p1.Y, p2.Y),
			Z: math.Min(p1.Z, p2.Z),
		},
		Max: Vec3{
			X: math.Max(p1.X, p2.X),
			Y: math.Max(p1.Y, p2.Y),
			Z: math.Max(p1.Z, p2.Z),
		},
	}
}

// Union returns the smallest box containing both r and other.
func (r Rect3) Union(other Rect3) Rect3 {
	return Rect3{
		Min: Vec3{
			X: math.Min(r.Min.X, other.Min.X),
			Y: math.Min(r.Min.Y, other.Min.Y),
			Z: math.Min(r.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			X: math.Max(r.Max.X, other.Max.X),
			Y: math.Max(r.Max.Y, other.Max.Y),
			Z: math.Max(r.Max.Z, other.Max.Z),
		},
	}
}
