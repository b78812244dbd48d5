package plotdraw

import (
	"math"
	"testing"
)

func TestMultiplyAppliesOtherFirst(t *testing.T) {
	tests := []struct {
		name     string
		m, other Matrix
		p        Point
	}{
		{"translate after scale", Translate(10, 20), Scale(2, 3), Pt(1, 1)},
		{"scale after translate", Scale(2, 3), Translate(10, 20), Pt(1, 1)},
		{"rotate after translate", Rotate(math.Pi / 2), Translate(5, 0), Pt(1, 2)},
		{"identity left", Identity(), Scale(4, 4), Pt(-3, 7)},
		{"identity right", Scale(4, 4), Identity(), Pt(-3, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Multiply(tt.other).TransformPoint(tt.p)
			want := tt.m.TransformPoint(tt.other.TransformPoint(tt.p))
			if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 {
				t.Errorf("composed transform = %+v, want %+v", got, want)
			}
		})
	}
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -2), Pt(3, 4), Pt(13, 2)},
		{"scale", Scale(2, 0.5), Pt(3, 4), Pt(6, 2)},
		{"rotate 90", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"rotate 180", Rotate(math.Pi), Pt(1, 0), Pt(-1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.p)
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("TransformPoint(%+v) = %+v, want %+v", tt.p, got, tt.want)
			}
		})
	}
}

func TestTransformVectorIgnoresTranslation(t *testing.T) {
	m := Translate(100, 200).Multiply(Scale(2, 3))
	got := m.TransformVector(Pt(1, 1))
	want := Pt(2, 3)
	if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 {
		t.Errorf("TransformVector = %+v, want %+v", got, want)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"translate", Translate(7, -3)},
		{"scale", Scale(2, 5)},
		{"rotate", Rotate(1.23)},
		{"composed", Translate(7, -3).Multiply(Scale(2, 5)).Multiply(Rotate(0.4))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pt(3.7, -1.2)
			got := tt.m.Invert().TransformPoint(tt.m.TransformPoint(p))
			if math.Abs(got.X-p.X) > 1e-9 || math.Abs(got.Y-p.Y) > 1e-9 {
				t.Errorf("inverse round trip = %+v, want %+v", got, p)
			}
		})
	}
}

func TestInvertSingular(t *testing.T) {
	got := Scale(0, 0).Invert()
	if !got.IsIdentity() {
		t.Errorf("Invert of singular matrix = %+v, want identity", got)
	}
}

func TestIsIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"scale 1,1", Scale(1, 1), true},
		{"translate", Translate(1, 0), false},
		{"scale", Scale(2, 1), false},
		{"zero matrix", Matrix{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsIdentity(); got != tt.want {
				t.Errorf("Matrix%+v.IsIdentity() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}

func TestMatrixEqual(t *testing.T) {
	m := Translate(1, 2).Multiply(Scale(3, 4))
	if !m.Equal(m, 0) {
		t.Error("matrix should equal itself exactly")
	}
	if m.Equal(Identity(), 1e-9) {
		t.Error("distinct matrices reported equal")
	}
	almost := m
	almost.C += 1e-12
	if !m.Equal(almost, 1e-9) {
		t.Error("matrices within eps reported unequal")
	}
}
