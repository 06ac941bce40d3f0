package shape

import (
	"errors"
	"fmt"
)

// ErrOutsideShape reports a build operation issued outside a
// BeginShape/EndShape pair.
var ErrOutsideShape = errors.New("shape: operation outside BeginShape/EndShape")

// ErrNoConstructor reports a build operation with no primitive
// constructor registered for its (operation, contour kind) pair.
var ErrNoConstructor = errors.New("shape: no primitive constructor registered")

// Shape assembles build operations into contours of primitives. It
// owns the attribute template, the spline configuration, and the curve
// order used to create new vertices and primitives.
//
// A Shape is not safe for concurrent use.
type Shape struct {
	kind     ShapeKind
	contours []*Contour

	// template establishes each attribute's arity and carries the
	// current values snapshotted into every new vertex. Position and
	// texture coordinates always occupy the first two slots.
	template []attribute
	index    map[string]int

	tightness float64
	ends      EndMode
	order     []int

	factory  *PrimitiveFactory
	building bool
}

// NewShape creates an empty shape with the default configuration:
// spline tightness 0 with EndInclude ends, and cubic Bezier order.
func NewShape() *Shape {
	s := &Shape{
		ends:    EndInclude,
		order:   []int{3},
		factory: NewPrimitiveFactory(),
	}
	s.template = []attribute{
		{name: AttrPosition, value: Vec3{}},
		{name: AttrTextureCoordinates, value: Vec2{}},
	}
	s.index = map[string]int{
		AttrPosition:           0,
		AttrTextureCoordinates: 1,
	}
	return s
}

// Kind returns the shape's kind tag.
func (s *Shape) Kind() ShapeKind { return s.kind }

// Contours returns the shape's contours in order.
func (s *Shape) Contours() []*Contour { return s.contours }

// Factory returns the shape's primitive factory. Mutating it reroutes
// subsequent build operations.
func (s *Shape) Factory() *PrimitiveFactory { return s.factory }

// Reset discards every contour and leaves the shape ready for a new
// BeginShape. Registered vertex properties and curve configuration
// survive a reset.
func (s *Shape) Reset() {
	s.contours = nil
	s.kind = KindPath
	s.building = false
}

// BeginShape starts building with the given kind (KindPath by default)
// and implicitly opens the first contour with the same kind. Any
// previously built contours are discarded.
func (s *Shape) BeginShape(kind ...ShapeKind) {
	k := KindPath
	if len(kind) > 0 {
		k = kind[0]
	}
	s.kind = k
	s.contours = []*Contour{newContour(k)}
	s.building = true
}

// EndShape finishes building. With Close it closes contour index 0 —
// and only contour index 0, regardless of how many contours the shape
// holds; use EndContourAt to close a later contour.
func (s *Shape) EndShape(mode ...CloseMode) error {
	if !s.building {
		return ErrOutsideShape
	}
	m := Open
	if len(mode) > 0 {
		m = mode[0]
	}
	var err error
	if m == Close {
		err = s.closeContour(0)
	}
	s.building = false
	return err
}

// BeginContour opens a new contour with the given kind (KindPath by
// default). A trailing contour that is still an empty path is discarded
// first.
func (s *Shape) BeginContour(kind ...ShapeKind) error {
	if !s.building {
		return ErrOutsideShape
	}
	k := KindPath
	if len(kind) > 0 {
		k = kind[0]
	}
	if n := len(s.contours); n > 0 && s.contours[n-1].Kind() == KindEmptyPath {
		s.contours = s.contours[:n-1]
	}
	s.contours = append(s.contours, newContour(k))
	return nil
}

// EndContour ends the last contour. It is a no-op unless mode is Close.
func (s *Shape) EndContour(mode ...CloseMode) error {
	m := Open
	if len(mode) > 0 {
		m = mode[0]
	}
	return s.EndContourAt(m, len(s.contours)-1)
}

// EndContourAt ends the contour at the given index. It is a no-op
// unless mode is Close.
func (s *Shape) EndContourAt(mode CloseMode, index int) error {
	if !s.building {
		return ErrOutsideShape
	}
	if mode != Close {
		return nil
	}
	return s.closeContour(index)
}

// closeContour joins a path contour's last vertex back to its anchor.
// Closing applies only to path contours whose anchor vertex has a
// position. A last primitive that handles closing itself (a spline
// that is the sole segment after the anchor) switches its end mode to
// EndJoin; otherwise one closing vertex is emitted through the generic
// vertex operation, carrying the anchor's position, texture
// coordinates, and user attributes.
func (s *Shape) closeContour(index int) error {
	if index < 0 || index >= len(s.contours) {
		return nil
	}
	c := s.contours[index]
	if c.Kind() != KindPath {
		return nil
	}
	anchor, ok := c.primitives[0].(*Anchor)
	if !ok {
		return nil
	}
	av := anchor.EndVertex()
	pos, ok := av.Position()
	if !ok {
		return nil
	}

	if sp, ok := c.primitives[len(c.primitives)-1].(*SplineSegment); ok && sp.handlesClose() {
		sp.close()
		return nil
	}

	// The generic vertex operation always targets the last contour, so
	// trailing contours are spliced out for the duration of the close
	// and spliced back on every exit path. Their recorded locations
	// stay valid because order and indices are unchanged.
	trailing := append([]*Contour(nil), s.contours[index+1:]...)
	s.contours = s.contours[:index+1]
	defer func() {
		s.contours = append(s.contours, trailing...)
	}()

	restore := s.patchTemplate(av)
	defer restore()

	var tex []Vec2
	if t, ok := av.TextureCoordinates(); ok {
		tex = []Vec2{t}
	}
	return s.addVertex(OpVertex, pos, tex, true)
}

// patchTemplate overwrites every non-reserved template attribute with
// the given vertex's value and returns a restore func that puts the
// prior values back. Callers run the restore via defer so the template
// is never left patched on any exit path.
func (s *Shape) patchTemplate(v *Vertex) func() {
	saved := make([]Value, len(s.template))
	for i, a := range s.template {
		saved[i] = a.value
		if a.name == AttrPosition || a.name == AttrTextureCoordinates {
			continue
		}
		s.template[i].value = v.Get(a.name)
	}
	return func() {
		for i := range s.template {
			s.template[i].value = saved[i]
		}
	}
}

// Vertex emits a straight vertex at the given position, optionally
// with texture coordinates.
func (s *Shape) Vertex(position Vec3, textureCoordinates ...Vec2) error {
	return s.addVertex(OpVertex, position, textureCoordinates, false)
}

// BezierVertex emits a Bezier control vertex. Consecutive calls fill
// one segment up to the configured order; further calls start the next
// segment.
func (s *Shape) BezierVertex(position Vec3, textureCoordinates ...Vec2) error {
	return s.addVertex(OpBezierVertex, position, textureCoordinates, false)
}

// SplineVertex emits an interpolating-spline vertex. Consecutive calls
// extend the same spline segment.
func (s *Shape) SplineVertex(position Vec3, textureCoordinates ...Vec2) error {
	return s.addVertex(OpSplineVertex, position, textureCoordinates, false)
}

// addVertex is the generic vertex operation shared by the straight and
// curve vertex calls: write the position (and texture coordinates, if
// supplied) into the template, snapshot the template into a new vertex,
// construct a primitive via the factory keyed by (operation, current
// contour kind), and attach it.
func (s *Shape) addVertex(op BuildOp, position Vec3, textureCoordinates []Vec2, closing bool) error {
	if !s.building {
		return ErrOutsideShape
	}
	s.template[s.index[AttrPosition]].value = position
	if len(textureCoordinates) > 0 {
		s.template[s.index[AttrTextureCoordinates]].value = textureCoordinates[0]
	}
	v := newVertex(s.template)

	contour := s.contours[len(s.contours)-1]
	ctor := s.factory.Get(op, contour.Kind())
	if ctor == nil {
		return fmt.Errorf("%w: operation %q with kind %s", ErrNoConstructor, op, contour.Kind())
	}
	p := ctor(s, v)
	p.base().closing = closing
	s.addToShape(p)
	return nil
}

// addToShape attaches p to the last contour. If the contour's last
// primitive is the same variant and has spare capacity, as many leading
// vertices as fit move into it; any remainder attaches as a new
// primitive, and a fully merged p is discarded. The total vertex count
// is conserved either way. Returns the primitive the vertices ended in.
func (s *Shape) addToShape(p Primitive) Primitive {
	ci := len(s.contours) - 1
	c := s.contours[ci]

	if n := len(c.primitives); n > 0 {
		last := c.primitives[n-1]
		if sameVariant(last, p) {
			lb, pb := last.base(), p.base()
			spare := last.VertexCapacity() - len(lb.vertices)
			if spare > 0 {
				move := min(spare, len(pb.vertices))
				lb.vertices = append(lb.vertices, pb.vertices[:move]...)
				pb.vertices = pb.vertices[move:]
				if bz, ok := last.(*BezierSegment); ok {
					bz.invalidateHull()
				}
				if len(pb.vertices) == 0 {
					return last
				}
			}
		}
	}

	b := p.base()
	b.shape = s
	b.loc = primitiveLocation{contour: ci, primitive: len(c.primitives)}
	b.attached = true
	c.primitives = append(c.primitives, p)
	return p
}

// primitiveAt resolves a (contour, primitive) location, returning nil
// when either index is out of range.
func (s *Shape) primitiveAt(contour, primitive int) Primitive {
	if contour < 0 || contour >= len(s.contours) {
		return nil
	}
	c := s.contours[contour]
	if primitive < 0 || primitive >= len(c.primitives) {
		return nil
	}
	return c.primitives[primitive]
}

// VertexProperty registers a named vertex attribute, or updates the
// current value of one already registered. The attribute's arity is
// fixed by its first value; later values must flatten to the same
// number of components. The value rides on every vertex emitted until
// it is changed again.
func (s *Shape) VertexProperty(name string, data Value) error {
	if name == AttrPosition || name == AttrTextureCoordinates {
		return fmt.Errorf("shape: %q is a reserved attribute name", name)
	}
	if i, ok := s.index[name]; ok {
		if cur := s.template[i].value; cur != nil && data != nil && arityOf(cur) != arityOf(data) {
			return fmt.Errorf("%w: attribute %q has %d components, got %d",
				ErrTypeMismatch, name, arityOf(cur), arityOf(data))
		}
		s.template[i].value = data
		return nil
	}
	s.index[name] = len(s.template)
	s.template = append(s.template, attribute{name: name, value: data})
	return nil
}

// BezierOrder configures the order of subsequent Bezier segments: 3
// for cubic, 2 for quadratic. Higher-dimensional primitives take more
// than one value; segments use the first.
func (s *Shape) BezierOrder(order ...int) error {
	if len(order) == 0 {
		return fmt.Errorf("shape: bezier order requires at least one value")
	}
	for _, o := range order {
		if o != 2 && o != 3 {
			return fmt.Errorf("shape: unsupported bezier order %d", o)
		}
	}
	s.order = append([]int(nil), order...)
	return nil
}

// Spline property keys accepted by SplineProperty.
const (
	SplineTightness = "tightness"
	SplineEnds      = "ends"
)

// SplineProperty configures subsequent spline segments. Tightness is a
// float64 tension value (0 is a standard Catmull-Rom, 1 degenerates to
// straight interpolation); ends is an EndMode.
func (s *Shape) SplineProperty(key string, value any) error {
	switch key {
	case SplineTightness:
		t, ok := value.(float64)
		if !ok {
			return fmt.Errorf("%w: spline tightness must be float64, got %T", ErrTypeMismatch, value)
		}
		s.tightness = t
	case SplineEnds:
		m, ok := value.(EndMode)
		if !ok {
			return fmt.Errorf("%w: spline ends must be EndMode, got %T", ErrTypeMismatch, value)
		}
		s.ends = m
	default:
		return fmt.Errorf("shape: unknown spline property %q", key)
	}
	return nil
}

// SplineProperties applies several spline properties at once.
func (s *Shape) SplineProperties(props map[string]any) error {
	for key, value := range props {
		if err := s.SplineProperty(key, value); err != nil {
			return err
		}
	}
	return nil
}

// VertexToArray flattens every attribute of v into a single numeric
// slice, in template order. Position and texture coordinates flatten
// exactly like user attributes.
func (s *Shape) VertexToArray(v *Vertex) ([]float64, error) {
	out := make([]float64, 0, s.stride())
	for _, a := range s.template {
		arr, err := SerializeValue(v.Get(a.name))
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", a.name, err)
		}
		out = append(out, arr...)
	}
	return out, nil
}

// ArrayToVertex reconstructs a vertex from a flattened slice, dequeuing
// each attribute's component count from the template's example value.
func (s *Shape) ArrayToVertex(arr []float64) (*Vertex, error) {
	q := &floatQueue{data: arr}
	attrs := make([]attribute, len(s.template))
	for i, a := range s.template {
		val, err := hydrateValue(q, a.value)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", a.name, err)
		}
		attrs[i] = attribute{name: a.name, value: val}
	}
	return &Vertex{attrs: attrs}, nil
}

// stride returns the total component count of a flattened vertex.
func (s *Shape) stride() int {
	n := 0
	for _, a := range s.template {
		n += arityOf(a.value)
	}
	return n
}

// attributeOffset returns the component offset of the named attribute
// within a flattened vertex array.
func (s *Shape) attributeOffset(name string) int {
	off := 0
	for _, a := range s.template {
		if a.name == name {
			break
		}
		off += arityOf(a.value)
	}
	return off
}

// Accept drives a visitor over every primitive of every contour, in
// order.
func (s *Shape) Accept(v PrimitiveVisitor) error {
	for _, c := range s.contours {
		for _, p := range c.primitives {
			if err := p.Accept(v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Tessellate flattens the shape into sampled vertex sequences, one per
// contour. curveDetail scales the number of samples per unit of
// control-polygon length; values <= 0 fall back to 1.
func (s *Shape) Tessellate(curveDetail float64) ([][]*Vertex, error) {
	conv := NewTessellationConverter(curveDetail)
	if err := s.Accept(conv); err != nil {
		return nil, err
	}
	return conv.Contours, nil
}
