package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	v := Vec3{1, 2, 3}
	if got := q.Rotate(v); !approxVec3(got, v) {
		t.Errorf("identity Rotate = %v, want %v", got, v)
	}
	if q.ToMat4() != Identity() {
		t.Error("identity quaternion should convert to identity matrix")
	}
}

func TestQuatRotate(t *testing.T) {
	tests := []struct {
		name  string
		axis  Vec3
		angle float32
		in    Vec3
		want  Vec3
	}{
		{"x quarter", Vec3{1, 0, 0}, math.Pi / 2, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"y quarter", Vec3{0, 1, 0}, math.Pi / 2, Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{"z half", Vec3{0, 0, 1}, math.Pi, Vec3{1, 0, 0}, Vec3{-1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuatFromAxisAngle(tt.axis, tt.angle)
			if got := q.Rotate(tt.in); !approxVec3(got, tt.want) {
				t.Errorf("Rotate = %v, want %v", got, tt.want)
			}
			if got := q.ToMat4().TransformVec3(tt.in); !approxVec3(got, tt.want) {
				t.Errorf("ToMat4 transform = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuatMulComposes(t *testing.T) {
	a := QuatFromAxisAngle(Vec3{0, 1, 0}, 0.4)
	b := QuatFromAxisAngle(Vec3{1, 0, 0}, 1.1)
	v := Vec3{0.3, -2, 5}

	want := a.Rotate(b.Rotate(v))
	if got := a.Mul(b).Rotate(v); !approxVec3(got, want) {
		t.Errorf("(a*b).Rotate = %v, want %v", got, want)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 0, Y: 2, Z: 0, W: 2}.Normalize()
	l := q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
	if !approx(l, 1) {
		t.Errorf("normalized length squared = %f, want 1", l)
	}
	if (Quat{}).Normalize() != QuatIdentity() {
		t.Error("degenerate quaternion should normalize to identity")
	}
}
