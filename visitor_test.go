package shape

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// captureHandler records every log entry for inspection.
type captureHandler struct {
	mu       sync.Mutex
	messages []string
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, r.Message)
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(string) slog.Handler      { return h }

func TestTessellationConverter_CubicSampling(t *testing.T) {
	s := NewShape()
	s.BeginShape()
	s.Vertex(V3(0, 0, 0))
	s.BezierVertex(V3(1, 0, 0))
	s.BezierVertex(V3(2, 0, 0))
	s.BezierVertex(V3(3, 0, 0))

	contours, err := s.Tessellate(1)
	if err != nil {
		t.Fatal(err)
	}
	// Hull length 3 at detail 1 gives 3 samples; equally spaced
	// collinear controls parameterize uniformly.
	want := []Vec3{V3(0, 0, 0), V3(1, 0, 0), V3(2, 0, 0), V3(3, 0, 0)}
	diff(t, want, positionsOf(t, contours[0]), cmpopts.EquateApprox(0, 1e-9))
}

func TestTessellationConverter_QuadraticSampling(t *testing.T) {
	s := NewShape()
	s.BezierOrder(2)
	s.BeginShape()
	s.Vertex(V3(0, 0, 0))
	s.BezierVertex(V3(1, 1, 0))
	s.BezierVertex(V3(2, 0, 0))

	contours, err := s.Tessellate(1)
	if err != nil {
		t.Fatal(err)
	}
	out := positionsOf(t, contours[0])
	// Hull length 2*sqrt(2) at detail 1 gives 3 samples plus the anchor.
	if len(out) != 4 {
		t.Fatalf("got %d output vertices, want 4", len(out))
	}
	if last := out[len(out)-1]; last != V3(2, 0, 0) {
		t.Errorf("final sample = %v, want the end control vertex", last)
	}
	// y(t) = 2t(1-t) stays within [0, 1/2] over the whole curve.
	for _, p := range out {
		if p.Y < 0 || p.Y > 0.5 {
			t.Errorf("sample %v outside the quadratic's range", p)
		}
	}
}

func TestTessellationConverter_SampleCountScalesWithDetail(t *testing.T) {
	build := func() *Shape {
		s := NewShape()
		s.BeginShape()
		s.Vertex(V3(0, 0, 0))
		s.BezierVertex(V3(1, 0, 0))
		s.BezierVertex(V3(2, 0, 0))
		s.BezierVertex(V3(3, 0, 0))
		return s
	}

	coarse, err := build().Tessellate(0.1)
	if err != nil {
		t.Fatal(err)
	}
	fine, err := build().Tessellate(10)
	if err != nil {
		t.Fatal(err)
	}
	// Hull length 3: ceil(0.3) = 1 sample, ceil(30) = 30 samples.
	if n := len(coarse[0]); n != 2 {
		t.Errorf("coarse output has %d vertices, want anchor + 1 sample", n)
	}
	if n := len(fine[0]); n != 31 {
		t.Errorf("fine output has %d vertices, want anchor + 30 samples", n)
	}
}

func TestTessellationConverter_AttributesRideThrough(t *testing.T) {
	s := NewShape()
	s.VertexProperty("tint", RGB(1, 0, 0))
	s.BeginShape()
	s.Vertex(V3(0, 0, 0))
	s.VertexProperty("tint", RGB(0, 0, 1))
	s.BezierVertex(V3(1, 0, 0))
	s.BezierVertex(V3(2, 0, 0))
	s.BezierVertex(V3(3, 0, 0))

	contours, err := s.Tessellate(1)
	if err != nil {
		t.Fatal(err)
	}
	out := contours[0]
	// t=1 reproduces the last control vertex's attributes unchanged.
	diff(t, Value(RGB(0, 0, 1)), out[len(out)-1].Get("tint"))
	// Interior samples interpolate between the endpoint tints.
	mid := out[1].Get("tint").(RGBA)
	if mid.R <= 0 || mid.R >= 1 || mid.B <= 0 || mid.B >= 1 {
		t.Errorf("interior tint %v not interpolated", mid)
	}
}

func TestTessellationConverter_SplineJoinLoops(t *testing.T) {
	s := NewShape()
	s.BeginShape()
	s.SplineVertex(V3(0, 0, 0))
	s.SplineVertex(V3(2, 0, 0))
	s.SplineVertex(V3(2, 2, 0))
	if err := s.EndContour(Close); err != nil {
		t.Fatal(err)
	}

	contours, err := s.Tessellate(1)
	if err != nil {
		t.Fatal(err)
	}
	out := positionsOf(t, contours[0])
	if out[0] != V3(0, 0, 0) {
		t.Errorf("loop starts at %v, want the anchor", out[0])
	}
	last := out[len(out)-1]
	if !last.Approx(V3(0, 0, 0), 1e-9) {
		t.Errorf("loop ends at %v, want to rejoin the anchor", last)
	}
}

func TestTessellationConverter_ExcludeOverridesAnchor(t *testing.T) {
	h := &captureHandler{}
	SetLogger(slog.New(h))
	defer SetLogger(nil)

	s := NewShape()
	s.SplineProperty(SplineEnds, EndExclude)
	s.BeginShape()
	s.SplineVertex(V3(0, 0, 0))
	s.SplineVertex(V3(1, 0, 0))
	s.SplineVertex(V3(2, 0, 0))
	s.SplineVertex(V3(3, 0, 0))

	contours, err := s.Tessellate(1)
	if err != nil {
		t.Fatal(err)
	}
	out := positionsOf(t, contours[0])
	// The anchor is a phantom control point: output starts at the
	// spline's first interpolated vertex.
	if out[0] != V3(1, 0, 0) {
		t.Errorf("output starts at %v, want the first interpolated vertex", out[0])
	}
	if last := out[len(out)-1]; !last.Approx(V3(2, 0, 0), 1e-9) {
		t.Errorf("output ends at %v, want the last interpolated vertex", last)
	}

	// The start mismatch is reported, and stays a warning.
	found := false
	for _, m := range h.messages {
		if strings.Contains(m, "does not start") {
			found = true
		}
	}
	if !found {
		t.Error("no warning emitted for a spline that skips its anchor")
	}
}

func TestTessellationConverter_ExcludeMatchingStartIsSilent(t *testing.T) {
	h := &captureHandler{}
	SetLogger(slog.New(h))
	defer SetLogger(nil)

	s := NewShape()
	s.SplineProperty(SplineEnds, EndExclude)
	s.BeginShape()
	s.SplineVertex(V3(0, 0, 0))
	s.SplineVertex(V3(0, 0, 0))
	s.SplineVertex(V3(1, 0, 0))
	s.SplineVertex(V3(2, 0, 0))

	if _, err := s.Tessellate(1); err != nil {
		t.Fatal(err)
	}
	if len(h.messages) != 0 {
		t.Errorf("unexpected warnings: %v", h.messages)
	}
}

func TestTessellationConverter_StripPassthrough(t *testing.T) {
	s := NewShape()
	s.BeginShape(KindTriangleStrip)
	for i := 0; i < 4; i++ {
		s.Vertex(V3(float64(i), float64(i%2), 0))
	}

	contours, err := s.Tessellate(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(contours))
	}
	in := s.Contours()[0].Primitives()[0].Vertices()
	out := contours[0]
	if len(out) != len(in) {
		t.Fatalf("got %d output vertices, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("output vertex %d is not the input vertex", i)
		}
	}
}

func TestTessellationConverter_MultipleContours(t *testing.T) {
	s := NewShape()
	s.BeginShape()
	s.Vertex(V3(0, 0, 0))
	s.Vertex(V3(1, 0, 0))
	s.BeginContour()
	s.Vertex(V3(5, 5, 0))
	s.Vertex(V3(6, 5, 0))

	contours, err := s.Tessellate(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(contours) != 2 {
		t.Fatalf("got %d output contours, want 2", len(contours))
	}
	diff(t, []Vec3{V3(0, 0, 0), V3(1, 0, 0)}, positionsOf(t, contours[0]))
	diff(t, []Vec3{V3(5, 5, 0), V3(6, 5, 0)}, positionsOf(t, contours[1]))
}

func TestNewTessellationConverter_DetailFallback(t *testing.T) {
	if c := NewTessellationConverter(0); c.CurveDetail != 1 {
		t.Errorf("CurveDetail = %v, want fallback to 1", c.CurveDetail)
	}
	if c := NewTessellationConverter(-2); c.CurveDetail != 1 {
		t.Errorf("CurveDetail = %v, want fallback to 1", c.CurveDetail)
	}
}

func TestTessellationConverter_IncompleteBezier(t *testing.T) {
	s := NewShape()
	s.BeginShape()
	s.Vertex(V3(0, 0, 0))
	s.BezierVertex(V3(1, 0, 0))

	if _, err := s.Tessellate(1); err == nil {
		t.Error("tessellating an incomplete bezier segment succeeded")
	}
}
