package camera

import "github.com/go-gl/mathgl/mgl32"

// Frustum plane indices.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// Frustum is the six world-space planes of a view volume. Each plane is (nx, ny, nz, d)
// with a unit normal pointing inside, so a point p is inside when n·p + d >= 0.
type Frustum struct {
	Planes [6]mgl32.Vec4
}

// FrustumFromMatrix extracts the frustum planes of a view-projection matrix
// (Gribb/Hartmann plane extraction).
//
// Reference: https://www8.cs.umu.se/kurser/5DV051/HT12/lab/plane_extraction.pdf
//
// Parameters:
//   - viewProj: the combined projection * view matrix
//
// Returns:
//   - Frustum: the frustum with normalized planes
func FrustumFromMatrix(viewProj mgl32.Mat4) Frustum {
	r0, r1, r2, r3 := viewProj.Row(0), viewProj.Row(1), viewProj.Row(2), viewProj.Row(3)

	var f Frustum
	f.Planes[FrustumLeft] = r3.Add(r0)
	f.Planes[FrustumRight] = r3.Sub(r0)
	f.Planes[FrustumBottom] = r3.Add(r1)
	f.Planes[FrustumTop] = r3.Sub(r1)
	f.Planes[FrustumNear] = r3.Add(r2)
	f.Planes[FrustumFar] = r3.Sub(r2)

	for i, p := range f.Planes {
		if l := p.Vec3().Len(); l > 0 {
			f.Planes[i] = p.Mul(1 / l)
		}
	}
	return f
}

// ContainsPoint reports whether p lies inside or on the frustum.
func (f Frustum) ContainsPoint(p mgl32.Vec3) bool {
	return f.IntersectsSphere(p, 0)
}

// IntersectsSphere reports whether a sphere overlaps the frustum.
// Conservative near the corners: some spheres just outside are reported as intersecting.
//
// Parameters:
//   - center: sphere center in world space
//   - radius: sphere radius
//
// Returns:
//   - bool: false only when the sphere is entirely outside one plane
func (f Frustum) IntersectsSphere(center mgl32.Vec3, radius float32) bool {
	for _, p := range f.Planes {
		if p.Vec3().Dot(center)+p.W() < -radius {
			return false
		}
	}
	return true
}
