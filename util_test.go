package shape

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// diff fails the test with a readable diff when got differs from want.
func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}
}

// vertexCmp lets go-cmp look inside vertices and their attributes.
var vertexCmp = cmp.AllowUnexported(Vertex{}, attribute{})

// cmpAllowBezierTriple lets go-cmp look inside Catmull-Rom conversion
// output.
var cmpAllowBezierTriple = cmp.AllowUnexported(bezierTriple{})

// positionsOf extracts the position of every vertex in a tessellated
// contour.
func positionsOf(t *testing.T, vs []*Vertex) []Vec3 {
	t.Helper()
	out := make([]Vec3, len(vs))
	for i, v := range vs {
		p, ok := v.Position()
		if !ok {
			t.Fatalf("vertex %d has no position", i)
		}
		out[i] = p
	}
	return out
}
