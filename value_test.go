package shape

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// arrayPair is a collaborator type that only exposes array conversion.
type arrayPair struct{ a, b float64 }

func (p arrayPair) Array() []float64 { return []float64{p.a, p.b} }

func TestSerializeValue_Shapes(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []float64
	}{
		{"nil", nil, nil},
		{"scalar", 2.5, []float64{2.5}},
		{"int", 3, []float64{3}},
		{"slice", []float64{1, 2, 3, 4, 5}, []float64{1, 2, 3, 4, 5}},
		{"sequence", Sequence{7, 8}, []float64{7, 8}},
		{"vec2", V2(1, 2), []float64{1, 2}},
		{"vec3", V3(1, 2, 3), []float64{1, 2, 3}},
		{"color", RGBA{R: 0.1, G: 0.2, B: 0.3, A: 0.4}, []float64{0.1, 0.2, 0.3, 0.4}},
		{"convertible", arrayPair{5, 6}, []float64{5, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SerializeValue(tt.in)
			if err != nil {
				t.Fatalf("SerializeValue(%v) error: %v", tt.in, err)
			}
			diff(t, tt.want, got, cmpopts.EquateEmpty())
		})
	}
}

func TestSerializeValue_TypeMismatch(t *testing.T) {
	if _, err := SerializeValue("not a value"); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("SerializeValue(string) = %v, want ErrTypeMismatch", err)
	}
	if _, err := ValueOf(struct{}{}); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("ValueOf(struct{}{}) = %v, want ErrTypeMismatch", err)
	}
}

func TestValueOf_Convertible(t *testing.T) {
	v, err := ValueOf(arrayPair{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	seq, ok := v.(Sequence)
	if !ok {
		t.Fatalf("ValueOf(arrayPair) = %T, want Sequence", v)
	}
	diff(t, Sequence{1, 2}, seq)
}

func TestHydrateValue_RoundTrip(t *testing.T) {
	values := []Value{
		Scalar(4.5),
		Sequence{1, 2, 3},
		V2(0.5, 0.25),
		V3(1, 2, 3),
		RGBA{R: 1, G: 0, B: 0, A: 1},
	}
	var flat []float64
	for _, v := range values {
		flat = append(flat, v.Array()...)
	}
	q := &floatQueue{data: flat}
	for _, want := range values {
		got, err := hydrateValue(q, want)
		if err != nil {
			t.Fatalf("hydrateValue(%T) error: %v", want, err)
		}
		diff(t, want, got)
	}
	if len(q.data) != 0 {
		t.Errorf("queue has %d leftover components", len(q.data))
	}
}

func TestHydrateValue_Underflow(t *testing.T) {
	q := &floatQueue{data: []float64{1, 2}}
	if _, err := hydrateValue(q, V3(0, 0, 0)); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("hydrateValue with short queue = %v, want ErrTypeMismatch", err)
	}
}

func TestHydrateValue_Nil(t *testing.T) {
	q := &floatQueue{data: []float64{1}}
	got, err := hydrateValue(q, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("hydrateValue(nil template) = %v, want nil", got)
	}
	if len(q.data) != 1 {
		t.Errorf("nil template consumed components, %d left", len(q.data))
	}
}
