package shape

// Reserved attribute names. Both are auto-populated by build
// operations; every other name is user-registered via
// [Shape.VertexProperty].
const (
	AttrPosition           = "position"
	AttrTextureCoordinates = "textureCoordinates"
)

// attribute pairs a name with its value. Attribute order is
// significant: it fixes the layout of flattened vertex arrays.
type attribute struct {
	name  string
	value Value
}

// Vertex is an ordered named-attribute bag. It is immutable after
// creation: build operations snapshot the shape's current attribute
// template into a new Vertex.
type Vertex struct {
	attrs []attribute
}

// newVertex snapshots the given attributes into a Vertex.
func newVertex(attrs []attribute) *Vertex {
	copied := make([]attribute, len(attrs))
	copy(copied, attrs)
	return &Vertex{attrs: copied}
}

// Len returns the number of attributes.
func (v *Vertex) Len() int {
	return len(v.attrs)
}

// Names returns the attribute names in insertion order.
func (v *Vertex) Names() []string {
	names := make([]string, len(v.attrs))
	for i, a := range v.attrs {
		names[i] = a.name
	}
	return names
}

// Get returns the named attribute's value, or nil if the attribute is
// absent.
func (v *Vertex) Get(name string) Value {
	for _, a := range v.attrs {
		if a.name == name {
			return a.value
		}
	}
	return nil
}

// Position returns the reserved position attribute.
// The second return value is false if the position is absent.
func (v *Vertex) Position() (Vec3, bool) {
	p, ok := v.Get(AttrPosition).(Vec3)
	return p, ok
}

// TextureCoordinates returns the reserved texture-coordinate attribute.
// The second return value is false if the attribute is absent.
func (v *Vertex) TextureCoordinates() (Vec2, bool) {
	t, ok := v.Get(AttrTextureCoordinates).(Vec2)
	return t, ok
}
