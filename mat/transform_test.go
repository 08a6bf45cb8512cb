package mat_test

import (
	"testing"

	"github.com/cwbudde/algo-gmath/internal/testutil"
	"github.com/cwbudde/algo-gmath/mat"
	"github.com/cwbudde/algo-gmath/scalar"
	"github.com/cwbudde/algo-gmath/vec"
)

func TestTranslate(t *testing.T) {
	got := mat.Translate4(vec.New3(3, 4, 5)).MulVec(vec.New4(0, 0, 0, 1))
	if got != vec.New4(3, 4, 5, 1) {
		t.Fatalf("Translate4 origin = %v, want (3, 4, 5, 1)", got)
	}
	dir := mat.Translate4(vec.New3(3, 4, 5)).MulVec(vec.New4(1, 2, 3, 0))
	if dir != vec.New4(1, 2, 3, 0) {
		t.Fatalf("Translate4 must leave directions unchanged, got %v", dir)
	}

	got3 := mat.Translate3(vec.New2(-2, 7)).MulVec(vec.New3(1, 1, 1))
	if got3 != vec.New3(-1, 8, 1) {
		t.Fatalf("Translate3 = %v, want (-1, 8, 1)", got3)
	}
}

func TestScale(t *testing.T) {
	m := mat.Scale4(vec.New3(2, 3, 4))
	if got := m.MulVec(vec.New4(1, 1, 1, 1)); got != vec.New4(2, 3, 4, 1) {
		t.Fatalf("Scale4 = %v, want (2, 3, 4, 1)", got)
	}
	if m.At(3, 3) != 1 {
		t.Fatalf("Scale4 last diagonal = %v, want 1", m.At(3, 3))
	}

	m3 := mat.Scale3(vec.New2(-1, 0.5))
	if got := m3.MulVec(vec.New3(4, 4, 1)); got != vec.New3(-4, 2, 1) {
		t.Fatalf("Scale3 = %v, want (-4, 2, 1)", got)
	}
}

func TestRotate3(t *testing.T) {
	got := mat.Rotate3(scalar.DegToRad(90)).MulVec(vec.New3(1, 0, 1))
	if !got.ApproxEqualEps(vec.New3(0, 1, 1), testutil.Tol) {
		t.Fatalf("Rotate3(90°)·(1,0,1) = %v, want (0, 1, 1)", got)
	}
	if got := mat.Rotate3(0); got != mat.Ident3() {
		t.Fatalf("Rotate3(0) = %v, want identity", got)
	}
	back := mat.Rotate3(0.4).Mul(mat.Rotate3(-0.4))
	if !back.ApproxEqualEps(mat.Ident3(), testutil.Tol) {
		t.Fatalf("Rotate3(a)·Rotate3(-a) =\n%v", back)
	}
}

func TestRotateAxes(t *testing.T) {
	quarter := scalar.DegToRad(90)
	tests := []struct {
		name string
		m    mat.Mat4
		in   vec.Vec4
		want vec.Vec4
	}{
		{"x maps y to z", mat.RotateX4(quarter), vec.New4(0, 1, 0, 1), vec.New4(0, 0, 1, 1)},
		{"y maps z to x", mat.RotateY4(quarter), vec.New4(0, 0, 1, 1), vec.New4(1, 0, 0, 1)},
		{"z maps x to y", mat.RotateZ4(quarter), vec.New4(1, 0, 0, 1), vec.New4(0, 1, 0, 1)},
		{"axis z maps x to y", mat.Rotate4(quarter, vec.New3(0, 0, 1)), vec.New4(1, 0, 0, 1), vec.New4(0, 1, 0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MulVec(tt.in); !got.ApproxEqualEps(tt.want, testutil.Tol) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotate4MatchesAxisRotations(t *testing.T) {
	for _, angle := range []scalar.Float{-2.5, -0.3, 0, 0.7, 1.9, 3} {
		pairs := []struct {
			axis vec.Vec3
			want mat.Mat4
		}{
			{vec.New3(1, 0, 0), mat.RotateX4(angle)},
			{vec.New3(0, 1, 0), mat.RotateY4(angle)},
			{vec.New3(0, 0, 1), mat.RotateZ4(angle)},
		}
		for _, p := range pairs {
			if got := mat.Rotate4(angle, p.axis); !got.ApproxEqualEps(p.want, testutil.Tol) {
				t.Fatalf("Rotate4(%v, %v) =\n%v\nwant\n%v", angle, p.axis, got, p.want)
			}
		}
	}
}

func TestRotate4IsRigid(t *testing.T) {
	axes := []vec.Vec3{
		vec.New3(1, 1, 1).Normalize(),
		vec.New3(-2, 0.5, 3).Normalize(),
		vec.New3(0, -1, 1).Normalize(),
	}
	for _, axis := range axes {
		for _, angle := range []scalar.Float{0.1, 1, 2.8} {
			r := mat.Rotate4(angle, axis)
			tol := 1e-4 + 4*testutil.SqrtTol

			if got := r.Mul(r.Transpose()); !got.ApproxEqualEps(mat.Ident4(), tol) {
				t.Fatalf("R·Rᵀ for axis %v angle %v =\n%v", axis, angle, got)
			}
			testutil.RequireNearlyEqual(t, r.Det(), 1, tol)

			// The axis is a fixed point of the rotation.
			got := r.MulVec(axis.Vec4(0)).Vec3()
			if !got.ApproxEqualEps(axis, tol) {
				t.Fatalf("axis %v moved to %v", axis, got)
			}
		}
	}
}

func TestCompositionOrder(t *testing.T) {
	tr := vec.New3(10, 0, 0)
	sc := vec.New3(2, 2, 2)
	p := vec.New4(1, 1, 1, 1)

	// Right-most factor applies first.
	scaleThenTranslate := mat.Translate4(tr).Mul(mat.Scale4(sc)).MulVec(p)
	if scaleThenTranslate != vec.New4(12, 2, 2, 1) {
		t.Fatalf("T·S·p = %v, want (12, 2, 2, 1)", scaleThenTranslate)
	}
	translateThenScale := mat.Scale4(sc).Mul(mat.Translate4(tr)).MulVec(p)
	if translateThenScale != vec.New4(22, 2, 2, 1) {
		t.Fatalf("S·T·p = %v, want (22, 2, 2, 1)", translateThenScale)
	}

	rt := mat.Translate3(vec.New2(5, 0)).Mul(mat.Rotate3(scalar.DegToRad(90)))
	if got := rt.MulVec(vec.New3(1, 0, 1)); !got.ApproxEqualEps(vec.New3(5, 1, 1), testutil.Tol) {
		t.Fatalf("T·R·p = %v, want (5, 1, 1)", got)
	}
}
