package mat_test

import (
	"testing"

	"github.com/cwbudde/algo-gmath/mat"
	"github.com/cwbudde/algo-gmath/scalar"
	"github.com/cwbudde/algo-gmath/vec"
)

var (
	sinkMat4 mat.Mat4
	sinkVec4 vec.Vec4
)

func BenchmarkMat4Mul(b *testing.B) {
	x := mat.Rotate4(0.5, vec.New3(0, 1, 0))
	y := mat.Translate4(vec.New3(1, 2, 3))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkMat4 = x.Mul(y)
	}
}

func BenchmarkMat4MulVec(b *testing.B) {
	m := mat.Rotate4(0.5, vec.New3(0, 1, 0))
	v := vec.New4(1, 2, 3, 1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkVec4 = m.MulVec(v)
	}
}

func BenchmarkMat4Add(b *testing.B) {
	x := mat.Fill4(1)
	y := mat.Diag4(2)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkMat4 = x.Add(y)
	}
}

func BenchmarkMat4Inverse(b *testing.B) {
	m := mat.Translate4(vec.New3(1, 2, 3)).Mul(mat.Rotate4(0.5, vec.New3(0, 1, 0)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkMat4, _ = m.Inverse()
	}
}

func BenchmarkPerspective(b *testing.B) {
	fov := scalar.DegToRad(60)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkMat4, _ = mat.Perspective(fov, 16.0/9.0, 0.1, 100)
	}
}
