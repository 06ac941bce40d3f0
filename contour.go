package shape

// Contour is an ordered group of primitives inside a shape, optionally
// representing a sub-path or hole.
type Contour struct {
	kind       ShapeKind
	primitives []Primitive
}

func newContour(kind ShapeKind) *Contour {
	return &Contour{kind: kind}
}

// Kind returns the contour's kind tag. A KindPath contour with no
// primitives reports KindEmptyPath until its first primitive attaches.
func (c *Contour) Kind() ShapeKind {
	if c.kind == KindPath && len(c.primitives) == 0 {
		return KindEmptyPath
	}
	return c.kind
}

// Primitives returns the contour's primitives in order.
func (c *Contour) Primitives() []Primitive {
	return c.primitives
}

// BoundingBox returns the axis-aligned bounds of every control vertex
// position in the contour. The second return value is false when the
// contour holds no positioned vertices.
func (c *Contour) BoundingBox() (Rect3, bool) {
	var box Rect3
	found := false
	for _, prim := range c.primitives {
		for _, v := range prim.Vertices() {
			p, ok := v.Position()
			if !ok {
				continue
			}
			if !found {
				box = NewRect3(p, p)
				found = true
				continue
			}
			box = box.Union(NewRect3(p, p))
		}
	}
	return box, found
}
