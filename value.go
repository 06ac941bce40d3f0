package shape

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch reports a value whose shape cannot be flattened or
// reconstructed. It is returned, wrapped with detail, from
// serialization and tessellation calls; it is never recovered
// internally.
var ErrTypeMismatch = errors.New("shape: value type mismatch")

// ArrayConvertible is the contract for collaborator types used as
// vertex attribute values: a zero-argument conversion to the value's
// flattened numeric form. The kernel never calls anything else on a
// collaborator type.
type ArrayConvertible interface {
	Array() []float64
}

// Value is a vertex attribute value: one of Scalar, Sequence, Vec2,
// Vec3, or RGBA. A nil Value marks an absent attribute.
//
// The set is closed so that serialization and hydration dispatch
// exhaustively; foreign types enter through ValueOf.
type Value interface {
	ArrayConvertible
	isValue()
}

// Scalar is a bare numeric attribute value.
type Scalar float64

// Array returns the scalar as a one-element slice.
func (s Scalar) Array() []float64 {
	return []float64{float64(s)}
}

func (Scalar) isValue() {}

// Sequence is a flat numeric attribute value of caller-chosen length.
// The length is fixed the first time the attribute is registered.
type Sequence []float64

// Array returns the sequence's components.
func (q Sequence) Array() []float64 {
	return q
}

func (Sequence) isValue() {}

// ValueOf converts an arbitrary value into the closed Value set:
// nil stays nil, numbers become Scalar, []float64 becomes Sequence,
// Values pass through, and any other ArrayConvertible is flattened
// into a Sequence. Anything else is a type mismatch.
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case Value:
		return x, nil
	case float64:
		return Scalar(x), nil
	case float32:
		return Scalar(x), nil
	case int:
		return Scalar(x), nil
	case []float64:
		return Sequence(x), nil
	case ArrayConvertible:
		return Sequence(x.Array()), nil
	}
	return nil, fmt.Errorf("%w: cannot flatten %T", ErrTypeMismatch, v)
}

// SerializeValue flattens a value to its numeric components: nil to an
// empty slice, a bare number to one element, a slice as-is, and any
// ArrayConvertible to its array form.
func SerializeValue(v any) ([]float64, error) {
	val, err := ValueOf(v)
	if err != nil {
		return nil, err
	}
	if val == nil {
		return nil, nil
	}
	return val.Array(), nil
}

// floatQueue dequeues components from a flattened vertex array during
// hydration.
type floatQueue struct {
	data []float64
}

func (q *floatQueue) take(n int) ([]float64, error) {
	if n > len(q.data) {
		return nil, fmt.Errorf("%w: need %d components, %d left", ErrTypeMismatch, n, len(q.data))
	}
	out := q.data[:n]
	q.data = q.data[n:]
	return out, nil
}

// hydrateValue dequeues the component count implied by the template
// value's shape and reconstructs a value of that same shape.
func hydrateValue(q *floatQueue, template Value) (Value, error) {
	switch tpl := template.(type) {
	case nil:
		return nil, nil
	case Scalar:
		xs, err := q.take(1)
		if err != nil {
			return nil, err
		}
		return Scalar(xs[0]), nil
	case Sequence:
		xs, err := q.take(len(tpl))
		if err != nil {
			return nil, err
		}
		out := make(Sequence, len(xs))
		copy(out, xs)
		return out, nil
	case Vec2:
		xs, err := q.take(2)
		if err != nil {
			return nil, err
		}
		return Vec2{X: xs[0], Y: xs[1]}, nil
	case Vec3:
		xs, err := q.take(3)
		if err != nil {
			return nil, err
		}
		return Vec3{X: xs[0], Y: xs[1], Z: xs[2]}, nil
	case RGBA:
		xs, err := q.take(4)
		if err != nil {
			return nil, err
		}
		return RGBA{R: xs[0], G: xs[1], B: xs[2], A: xs[3]}, nil
	}
	return nil, fmt.Errorf("%w: cannot reconstruct %T", ErrTypeMismatch, template)
}

// arityOf returns the number of components a value occupies in a
// flattened vertex array.
func arityOf(v Value) int {
	if v == nil {
		return 0
	}
	return len(v.Array())
}
